package report

import (
	"fmt"
	"html/template"
	"io"
	"os"

	"libris/internal/engine"
)

var catalogTemplate = template.Must(template.New("catalog").Parse(`<table border="1">
<tr><th>Author</th><th>Title</th><th>Publisher</th><th>ISBN</th><th>Sells For</th><th>Yours For</th></tr>
{{range .}}<tr><td>{{.Author}}</td><td style="font-style: italic">{{.Title}}</td><td>{{.Publisher}}</td><td style="font-size: small">{{.ISBN}}</td><td align="right">{{.SellsFor}}</td><td style="font-weight: bold" align="right">{{.YoursFor}}</td></tr>
{{end}}</table>
`))

// WriteHTML renders the catalog table to w in row order.
func WriteHTML(w io.Writer, rows []engine.CatalogRow) error {
	if err := catalogTemplate.Execute(w, buildRows(rows)); err != nil {
		return fmt.Errorf("render catalog: %w", err)
	}
	return nil
}

// WriteFile writes the HTML catalog to path, replacing any previous export.
func WriteFile(path string, rows []engine.CatalogRow) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create catalog file: %w", err)
	}
	defer func() { _ = file.Close() }()

	if err := WriteHTML(file, rows); err != nil {
		return err
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("close catalog file: %w", err)
	}
	return nil
}
