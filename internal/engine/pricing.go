package engine

import (
	"context"
	"math"
	"sort"
)

// Fixed pricing policy: the sells-for price is the cheapest observed quote
// plus a flat markup, and the discounted yours-for price is floored to a
// whole amount. Not configurable.
const (
	sellsForMarkup   = 2.00
	yoursForDiscount = 0.75
)

// PriceReport is the derived pricing for one book. Nil values mean "no
// price available", which is distinct from zero.
type PriceReport struct {
	SellsFor *float64
	YoursFor *float64
}

// PriceReport computes display prices from the stored quotes of a record.
func (e *Engine) PriceReport(ctx context.Context, libID int64) (PriceReport, error) {
	minPrice, err := e.store.MinPrice(ctx, libID)
	if err != nil {
		return PriceReport{}, err
	}
	if minPrice == nil {
		return PriceReport{}, nil
	}

	sellsFor := *minPrice + sellsForMarkup
	yoursFor := math.Floor(sellsFor * yoursForDiscount)
	return PriceReport{SellsFor: &sellsFor, YoursFor: &yoursFor}, nil
}

// CatalogRow is one line of the exported catalog snapshot.
type CatalogRow struct {
	Author    string
	Title     string
	Publisher string
	ISBN13    string
	SellsFor  *float64
	YoursFor  *float64
}

// ExportCatalog produces the full ordered catalog snapshot: every stored
// book with its derived prices, sorted ascending by the (author, title,
// publisher, isbn13) tuple. Regenerated on every call, never persisted.
func (e *Engine) ExportCatalog(ctx context.Context) ([]CatalogRow, error) {
	isbns, err := e.store.ListISBN13s(ctx)
	if err != nil {
		return nil, err
	}

	rows := make([]CatalogRow, 0, len(isbns))
	for _, isbn := range isbns {
		book, err := e.Resolve(ctx, isbn)
		if err != nil {
			return nil, err
		}
		prices, err := e.PriceReport(ctx, book.LibID)
		if err != nil {
			return nil, err
		}
		rows = append(rows, CatalogRow{
			Author:    book.AuthorName,
			Title:     book.Title,
			Publisher: book.PublisherName,
			ISBN13:    book.ISBN13,
			SellsFor:  prices.SellsFor,
			YoursFor:  prices.YoursFor,
		})
	}

	sort.Slice(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if a.Author != b.Author {
			return a.Author < b.Author
		}
		if a.Title != b.Title {
			return a.Title < b.Title
		}
		if a.Publisher != b.Publisher {
			return a.Publisher < b.Publisher
		}
		return a.ISBN13 < b.ISBN13
	})
	return rows, nil
}
