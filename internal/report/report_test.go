package report

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"libris/internal/engine"
)

func price(v float64) *float64 { return &v }

func sampleRows() []engine.CatalogRow {
	return []engine.CatalogRow{
		{
			Author:    "Dostoevsky, Fyodor",
			Title:     "Crime and Punishment",
			Publisher: "Penguin",
			ISBN13:    "9780140449136",
			SellsFor:  price(12.00),
			YoursFor:  price(9.00),
		},
		{
			Author:    "Tolstoy, Leo",
			Title:     "War and Peace",
			Publisher: "Penguin",
			ISBN13:    "9780140447934",
		},
	}
}

func TestWriteHTML(t *testing.T) {
	var sb strings.Builder
	if err := WriteHTML(&sb, sampleRows()); err != nil {
		t.Fatalf("WriteHTML failed: %v", err)
	}
	got := sb.String()

	for _, want := range []string{
		"<th>Author</th>",
		"Crime and Punishment",
		"$12.00",
		"$9.00",
		"-",
		"e-mail for price",
		"9780140447934",
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("output missing %q:\n%s", want, got)
		}
	}

	// Row order is the engine's order; the builder never re-sorts.
	if strings.Index(got, "Dostoevsky") > strings.Index(got, "Tolstoy") {
		t.Fatal("rows reordered by renderer")
	}
}

func TestDisplaySafeReplacesNotDrops(t *testing.T) {
	got := displaySafe("Dostoïevski, Fiodor")
	if got != "Dosto?evski, Fiodor" {
		t.Fatalf("displaySafe = %q", got)
	}
	if len(got) != len("Dostoïevski, Fiodor")-1 {
		// ï is two bytes in UTF-8 and one replacement byte in output.
		t.Fatalf("replacement changed visible length unexpectedly: %q", got)
	}
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.html")
	if err := WriteFile(path, sampleRows()); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read catalog: %v", err)
	}
	if !strings.Contains(string(data), "<table") {
		t.Fatal("catalog file missing table markup")
	}
}

func TestRenderTable(t *testing.T) {
	got := RenderTable(sampleRows())
	if !strings.Contains(got, "War and Peace") || !strings.Contains(got, "e-mail for price") {
		t.Fatalf("unexpected table output:\n%s", got)
	}
}
