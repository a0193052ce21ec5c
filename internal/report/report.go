package report

import (
	"fmt"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"

	"libris/internal/engine"
)

// noPriceSells and noPriceYours are the sentinels for books without quotes.
// "No price" must stay distinguishable from a zero price.
const (
	noPriceSells = "-"
	noPriceYours = "e-mail for price"
)

// displayRow is one fully formatted catalog line. Field order matches the
// fixed column set: Author, Title, Publisher, ISBN, Sells For, Yours For.
type displayRow struct {
	Author    string
	Title     string
	Publisher string
	ISBN      string
	SellsFor  string
	YoursFor  string
}

var toASCII = runes.Map(func(r rune) rune {
	if r > unicode.MaxASCII {
		return '?'
	}
	return r
})

// displaySafe replaces non-encodable characters instead of dropping them.
func displaySafe(s string) string {
	out, _, err := transform.String(toASCII, s)
	if err != nil {
		return s
	}
	return out
}

func money(amount *float64, missing string) string {
	if amount == nil {
		return missing
	}
	return fmt.Sprintf("$%.2f", *amount)
}

// buildRows formats engine rows for display, preserving their order.
func buildRows(rows []engine.CatalogRow) []displayRow {
	out := make([]displayRow, 0, len(rows))
	for _, row := range rows {
		out = append(out, displayRow{
			Author:    displaySafe(row.Author),
			Title:     displaySafe(row.Title),
			Publisher: displaySafe(row.Publisher),
			ISBN:      row.ISBN13,
			SellsFor:  money(row.SellsFor, noPriceSells),
			YoursFor:  money(row.YoursFor, noPriceYours),
		})
	}
	return out
}
