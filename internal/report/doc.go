// Package report renders the catalog snapshot for people.
//
// It consumes the engine's ordered rows and produces either the HTML
// catalog file or a console table. Author, title, and publisher values are
// transcoded to a display-safe character set first: non-encodable runes
// are replaced, never dropped, so a stray accent cannot break rendering.
package report
