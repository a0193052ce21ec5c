package report

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"libris/internal/engine"
)

// RenderTable formats the catalog for terminal output. Price columns are
// right-aligned like the HTML export.
func RenderTable(rows []engine.CatalogRow) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Author", "Title", "Publisher", "ISBN", "Sells For", "Yours For"})

	for _, row := range buildRows(rows) {
		tw.AppendRow(table.Row{row.Author, row.Title, row.Publisher, row.ISBN, row.SellsFor, row.YoursFor})
	}

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 5, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Number: 6, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})
	return tw.Render()
}
