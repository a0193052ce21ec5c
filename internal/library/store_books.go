package library

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"libris/internal/identifier"
)

// bookColumns is the fixed column list for reads of library rows. Column
// names are never interpolated from runtime data.
const bookColumns = `author_id, author_name, awards_text, book_id,
    dewey_decimal, dewey_normal, edition_info, lib_id, isbn10, isbn13,
    language, lcc_number, marc_enc_level, notes, physical_description_text,
    publisher_id, publisher_name, publisher_text, summary, title,
    title_latin, title_long, urls_text`

// FindByIdentifier looks up stored records matching the classified
// identifier. ISBN kinds match their column exactly and yield zero or one
// result; FreeText performs a case-insensitive substring match on title and
// may yield several. Single-vs-many policy belongs to the engine. Invalid
// identifiers fail with ErrInvalidIdentifier.
func (s *Store) FindByIdentifier(ctx context.Context, id identifier.Identifier) ([]*Book, error) {
	var (
		query string
		arg   any
	)
	switch id.Kind {
	case identifier.ISBN10:
		query = "SELECT " + bookColumns + " FROM library WHERE isbn10 = ?"
		arg = id.Value
	case identifier.ISBN13:
		query = "SELECT " + bookColumns + " FROM library WHERE isbn13 = ?"
		arg = id.Value
	case identifier.FreeText:
		query = "SELECT " + bookColumns + " FROM library WHERE title LIKE ? ORDER BY lib_id"
		arg = "%" + id.Value + "%"
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidIdentifier, id.Value)
	}

	rows, err := s.db.QueryContext(ctx, query, arg)
	if err != nil {
		return nil, fmt.Errorf("query library: %w", err)
	}
	defer rows.Close()

	var books []*Book
	for rows.Next() {
		book, err := scanBook(rows)
		if err != nil {
			return nil, err
		}
		books = append(books, book)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate library rows: %w", err)
	}
	return books, nil
}

// GetByID fetches one record by primary key.
func (s *Store) GetByID(ctx context.Context, libID int64) (*Book, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT "+bookColumns+" FROM library WHERE lib_id = ?", libID)
	book, err := scanBook(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: lib_id %d", ErrNotFound, libID)
	}
	if err != nil {
		return nil, err
	}
	return book, nil
}

// Insert persists a book plus its subject tags and returns the assigned
// primary key. It fails with ErrDuplicateBook when a record with the same
// identity ISBN already exists; the store never overwrites.
func (s *Store) Insert(ctx context.Context, book *Book) (int64, error) {
	key := identifier.Classify(book.Key())
	if key.Kind != identifier.ISBN10 && key.Kind != identifier.ISBN13 {
		return 0, fmt.Errorf("%w: book %q has no usable ISBN", ErrInvalidIdentifier, book.Title)
	}

	existing, err := s.FindByIdentifier(ctx, key)
	if err != nil {
		return 0, err
	}
	if len(existing) > 0 {
		return 0, fmt.Errorf("%w: %s", ErrDuplicateBook, book.Display())
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin insert tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.ExecContext(ctx,
		`INSERT INTO library (
            author_id, author_name, awards_text, book_id,
            dewey_decimal, dewey_normal, edition_info, isbn10, isbn13,
            language, lcc_number, marc_enc_level, notes,
            physical_description_text, publisher_id, publisher_name,
            publisher_text, summary, title, title_latin, title_long,
            urls_text
        ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		nullableString(book.AuthorID),
		nullableString(book.AuthorName),
		nullableString(book.AwardsText),
		nullableString(book.BookID),
		nullableString(book.DeweyDecimal),
		nullableString(book.DeweyNormal),
		nullableString(book.EditionInfo),
		nullableString(book.ISBN10),
		nullableString(book.ISBN13),
		nullableString(book.Language),
		nullableString(book.LCCNumber),
		nullableString(book.MARCEncLevel),
		nullableString(book.Notes),
		nullableString(book.PhysicalDescText),
		nullableString(book.PublisherID),
		nullableString(book.PublisherName),
		nullableString(book.PublisherText),
		nullableString(book.Summary),
		nullableString(book.Title),
		nullableString(book.TitleLatin),
		nullableString(book.TitleLong),
		nullableString(book.URLsText),
	)
	if err != nil {
		return 0, fmt.Errorf("insert book: %w", err)
	}

	libID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("last insert id: %w", err)
	}

	for _, subject := range book.SubjectIDs {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO subjects (subj_lib_id, subject) VALUES (?, ?)",
			libID, subject,
		); err != nil {
			return 0, fmt.Errorf("insert subject: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit insert: %w", err)
	}

	book.LibID = libID
	return libID, nil
}

// Delete removes a library row and cascades to its subjects and price
// quotes in one transaction. Fails with ErrNotFound for unknown keys.
func (s *Store) Delete(ctx context.Context, libID int64) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin delete tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, "DELETE FROM subjects WHERE subj_lib_id = ?", libID); err != nil {
		return fmt.Errorf("delete subjects: %w", err)
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM prices WHERE price_lib_id = ?", libID); err != nil {
		return fmt.Errorf("delete prices: %w", err)
	}

	res, err := tx.ExecContext(ctx, "DELETE FROM library WHERE lib_id = ?", libID)
	if err != nil {
		return fmt.Errorf("delete library row: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: lib_id %d", ErrNotFound, libID)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit delete: %w", err)
	}
	return nil
}

// ListISBN13s enumerates the identity ISBN of every library record in
// insertion order: isbn13 when present, else isbn10. Drives full-catalog
// export.
func (s *Store) ListISBN13s(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT COALESCE(isbn13, isbn10) FROM library ORDER BY lib_id")
	if err != nil {
		return nil, fmt.Errorf("list isbn13s: %w", err)
	}
	defer rows.Close()

	var isbns []string
	for rows.Next() {
		var isbn sql.NullString
		if err := rows.Scan(&isbn); err != nil {
			return nil, fmt.Errorf("scan isbn13: %w", err)
		}
		isbns = append(isbns, stringValue(isbn))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate isbn13s: %w", err)
	}
	return isbns, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

// scanBook builds a Book from a persisted row: flat fields, no nesting.
func scanBook(row rowScanner) (*Book, error) {
	var (
		book Book
		s    [22]sql.NullString
	)
	err := row.Scan(
		&s[0], &s[1], &s[2], &s[3], &s[4], &s[5], &s[6],
		&book.LibID,
		&s[7], &s[8], &s[9], &s[10], &s[11], &s[12], &s[13],
		&s[14], &s[15], &s[16], &s[17], &s[18], &s[19], &s[20], &s[21],
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan book row: %w", err)
	}

	book.AuthorID = stringValue(s[0])
	book.AuthorName = stringValue(s[1])
	book.AwardsText = stringValue(s[2])
	book.BookID = stringValue(s[3])
	book.DeweyDecimal = stringValue(s[4])
	book.DeweyNormal = stringValue(s[5])
	book.EditionInfo = stringValue(s[6])
	book.ISBN10 = stringValue(s[7])
	book.ISBN13 = stringValue(s[8])
	book.Language = stringValue(s[9])
	book.LCCNumber = stringValue(s[10])
	book.MARCEncLevel = stringValue(s[11])
	book.Notes = stringValue(s[12])
	book.PhysicalDescText = stringValue(s[13])
	book.PublisherID = stringValue(s[14])
	book.PublisherName = stringValue(s[15])
	book.PublisherText = stringValue(s[16])
	book.Summary = stringValue(s[17])
	book.Title = stringValue(s[18])
	book.TitleLatin = stringValue(s[19])
	book.TitleLong = stringValue(s[20])
	book.URLsText = stringValue(s[21])
	return &book, nil
}
