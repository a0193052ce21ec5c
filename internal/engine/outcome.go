package engine

import (
	"fmt"

	"libris/internal/library"
)

// Status is the terminal state of one identifier's trip through Ingest.
type Status int

const (
	StatusInvalidIdentifier Status = iota
	StatusAlreadyPresent
	StatusInserted
	StatusNotFoundAnywhere
	StatusDisambiguation
)

// Outcome reports how an ingest ended. Non-fatal by construction: the
// command loop renders Message and moves on.
type Outcome struct {
	Status Status
	Raw    string
	Book   *library.Book
	LibID  int64

	// QuoteCount is the number of price quotes attached after insert.
	QuoteCount int
	// PriceErr records a best-effort price fetch or insert failure. The
	// book stays inserted regardless.
	PriceErr error
	// Candidates counts lookup results when Status is StatusDisambiguation.
	Candidates int
	// Detail carries service-reported error text, when any.
	Detail string
}

// Message renders the user-visible result line for the command loop. All
// outcomes share the same output channel as normal results.
func (o *Outcome) Message() string {
	switch o.Status {
	case StatusInvalidIdentifier:
		return fmt.Sprintf("%q is not a valid ISBN.", o.Raw)
	case StatusAlreadyPresent:
		return fmt.Sprintf("Cannot insert %s: already in library.", o.Book.Display())
	case StatusInserted:
		msg := fmt.Sprintf("Inserted %s into library.", o.Book.Display())
		if o.PriceErr != nil {
			return msg + " (prices unavailable)"
		}
		return msg
	case StatusNotFoundAnywhere:
		if o.Detail != "" {
			return fmt.Sprintf("Cannot find %q in library or online: %s", o.Raw, o.Detail)
		}
		return fmt.Sprintf("Cannot find %q in library or online.", o.Raw)
	case StatusDisambiguation:
		return fmt.Sprintf("Found %d matching titles online (currently unsupported).", o.Candidates)
	default:
		return fmt.Sprintf("Unhandled outcome for %q.", o.Raw)
	}
}
