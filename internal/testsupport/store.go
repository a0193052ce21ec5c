package testsupport

import (
	"context"
	"testing"

	"libris/internal/config"
	"libris/internal/library"
)

// MustOpenStore opens a library.Store for tests and registers cleanup.
func MustOpenStore(t testing.TB, cfg *config.Config) *library.Store {
	t.Helper()

	store, err := library.Open(cfg)
	if err != nil {
		t.Fatalf("library.Open: %v", err)
	}
	t.Cleanup(func() {
		store.Close()
	})
	return store
}

// SampleBook returns a fully populated book for store and engine tests.
func SampleBook(isbn10, isbn13, title string) *library.Book {
	return &library.Book{
		ISBN10:        isbn10,
		ISBN13:        isbn13,
		Title:         title,
		AuthorID:      "tolstoy_leo",
		AuthorName:    "Tolstoy, Leo",
		PublisherID:   "penguin",
		PublisherName: "Penguin Classics",
		Language:      "eng",
		Summary:       "A sample record.",
		SubjectIDs:    []string{"fiction", "russia"},
	}
}

// MustInsert inserts a book via the store and fails the test on error.
func MustInsert(t testing.TB, store *library.Store, book *library.Book) int64 {
	t.Helper()

	libID, err := store.Insert(context.Background(), book)
	if err != nil {
		t.Fatalf("store.Insert: %v", err)
	}
	return libID
}
