package library

// Book is one catalog entry. Instances are built either from an ISBNdb API
// payload or from a persisted library row; the field set is fixed in both
// cases, no reflective copying. At least one of ISBN10/ISBN13 must be
// present before insertion.
type Book struct {
	LibID int64

	ISBN10 string
	ISBN13 string

	AuthorID   string
	AuthorName string

	Title      string
	TitleLatin string
	TitleLong  string

	PublisherID   string
	PublisherName string
	PublisherText string

	AwardsText       string
	BookID           string
	DeweyDecimal     string
	DeweyNormal      string
	EditionInfo      string
	Language         string
	LCCNumber        string
	MARCEncLevel     string
	Notes            string
	PhysicalDescText string
	Summary          string
	URLsText         string

	// SubjectIDs are drained into the subjects table on insert.
	SubjectIDs []string
}

// Key returns the identity ISBN used for store uniqueness: isbn13 when
// present, else isbn10.
func (b *Book) Key() string {
	if b.ISBN13 != "" {
		return b.ISBN13
	}
	return b.ISBN10
}

// Display returns the "Title (isbn)" form used in loop output and logs.
func (b *Book) Display() string {
	return b.Title + " (" + b.Key() + ")"
}

// PriceQuote is one price observation from one vendor at one point in time.
// Quotes are additive: inserted, never updated, and cascade-deleted with
// their owning library row.
type PriceQuote struct {
	CurrencyCode  string
	InStock       bool
	IsHistoric    bool
	IsNew         bool
	Price         float64
	PriceTimeUnix int64
	StoreID       string
	StoreTitle    string
	StoreURL      string
}
