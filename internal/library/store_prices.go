package library

import (
	"context"
	"database/sql"
	"fmt"
)

// InsertPriceQuotes persists price observations for a library record.
// Purely additive: a second call for the same key adds more rows. Callers
// that want to avoid duplicate quotes must avoid double-fetching.
func (s *Store) InsertPriceQuotes(ctx context.Context, libID int64, quotes []PriceQuote) error {
	if len(quotes) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin price tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, quote := range quotes {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO prices (
                price_lib_id, currency_code, in_stock, is_historic, is_new,
                price, price_time_unix, store_id, store_title, store_url
            ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			libID,
			quote.CurrencyCode,
			quote.InStock,
			quote.IsHistoric,
			quote.IsNew,
			quote.Price,
			quote.PriceTimeUnix,
			quote.StoreID,
			quote.StoreTitle,
			quote.StoreURL,
		); err != nil {
			return fmt.Errorf("insert price quote: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit prices: %w", err)
	}
	return nil
}

// MinPrice returns the minimum quote amount for a record, or nil when no
// quotes exist. "No price available" is distinct from a zero price.
func (s *Store) MinPrice(ctx context.Context, libID int64) (*float64, error) {
	var minPrice sql.NullFloat64
	err := s.db.QueryRowContext(ctx,
		"SELECT MIN(price) FROM prices WHERE price_lib_id = ?", libID,
	).Scan(&minPrice)
	if err != nil {
		return nil, fmt.Errorf("query min price: %w", err)
	}
	if !minPrice.Valid {
		return nil, nil
	}
	value := minPrice.Float64
	return &value, nil
}

// Subjects returns the subject tags attached to a record.
func (s *Store) Subjects(ctx context.Context, libID int64) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT subject FROM subjects WHERE subj_lib_id = ? ORDER BY subj_id", libID)
	if err != nil {
		return nil, fmt.Errorf("query subjects: %w", err)
	}
	defer rows.Close()

	var subjects []string
	for rows.Next() {
		var subject sql.NullString
		if err := rows.Scan(&subject); err != nil {
			return nil, fmt.Errorf("scan subject: %w", err)
		}
		subjects = append(subjects, stringValue(subject))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate subjects: %w", err)
	}
	return subjects, nil
}
