package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"libris/internal/identifier"
	"libris/internal/isbndb"
	"libris/internal/library"
	"libris/internal/logging"
)

// ErrDisambiguation is the engine's refusal to guess among multiple
// equally-valid lookup results. Candidate selection is unsupported.
var ErrDisambiguation = errors.New("multiple matching titles (currently unsupported)")

// MetadataSource is the lookup collaborator contract. Satisfied by
// *isbndb.Client; tests substitute stubs.
type MetadataSource interface {
	LookupISBN(ctx context.Context, id identifier.Identifier) (*library.Book, error)
	SearchTitle(ctx context.Context, query string) ([]*library.Book, error)
	FetchPrices(ctx context.Context, isbn13 string) ([]library.PriceQuote, error)
}

// Engine coordinates the store and the metadata source. The store is
// injected at construction; there is no ambient connection state.
type Engine struct {
	store  *library.Store
	source MetadataSource
	logger *slog.Logger
}

// New constructs an engine over an open store and a metadata source.
func New(store *library.Store, source MetadataSource, logger *slog.Logger) *Engine {
	return &Engine{
		store:  store,
		source: source,
		logger: logging.NewComponentLogger(logger, "engine"),
	}
}

// Store exposes the underlying store for read-side helpers (subjects,
// prices) used by display code.
func (e *Engine) Store() *library.Store {
	return e.store
}

// Resolve looks an identifier up in the store only. It never calls the
// metadata source; fetching is the explicit ingest step. Fails with
// library.ErrInvalidIdentifier, library.ErrNotFound, or ErrDisambiguation
// when a free-text search matches several records.
func (e *Engine) Resolve(ctx context.Context, raw string) (*library.Book, error) {
	id := identifier.Classify(raw)
	books, err := e.store.FindByIdentifier(ctx, id)
	if err != nil {
		return nil, err
	}
	switch len(books) {
	case 0:
		return nil, fmt.Errorf("%w: %q", library.ErrNotFound, raw)
	case 1:
		return books[0], nil
	default:
		return nil, fmt.Errorf("%w: %q matches %d records", ErrDisambiguation, raw, len(books))
	}
}

// Ingest drives one identifier through the insert state machine: classify,
// check the store, and on a miss fetch from the metadata source and insert.
// A store hit short-circuits without any API call, keeping the stored
// record authoritative. Price quotes are attached best-effort after a
// successful insert; a price failure never rolls the book back.
//
// The returned error is reserved for store and transport faults; every
// policy outcome is an Outcome value.
func (e *Engine) Ingest(ctx context.Context, raw string) (*Outcome, error) {
	commandID := uuid.NewString()
	log := e.logger.With(logging.String(logging.FieldCommandID, commandID))

	id := identifier.Classify(raw)
	if id.Kind == identifier.Invalid {
		log.Debug("rejected identifier", logging.String("raw", raw))
		return &Outcome{Status: StatusInvalidIdentifier, Raw: raw}, nil
	}

	stored, err := e.store.FindByIdentifier(ctx, id)
	if err != nil {
		return nil, err
	}
	if len(stored) > 0 {
		log.Debug("store hit", logging.String(logging.FieldISBN, stored[0].Key()))
		return &Outcome{Status: StatusAlreadyPresent, Raw: raw, Book: stored[0], LibID: stored[0].LibID}, nil
	}

	book, outcome, err := e.fetchCandidate(ctx, id, raw, log)
	if book == nil {
		return outcome, err
	}

	libID, err := e.store.Insert(ctx, book)
	if err != nil {
		if errors.Is(err, library.ErrDuplicateBook) {
			// Lost a race against an earlier command for the same book.
			return &Outcome{Status: StatusAlreadyPresent, Raw: raw, Book: book}, nil
		}
		return nil, err
	}
	log.Info("book inserted",
		logging.String(logging.FieldISBN, book.Key()),
		logging.String(logging.FieldTitle, book.Title),
	)

	result := &Outcome{Status: StatusInserted, Raw: raw, Book: book, LibID: libID}
	e.attachPrices(ctx, result, log)
	return result, nil
}

// fetchCandidate queries the metadata source for a store miss. A non-nil
// book means exactly one candidate was found and ingest should proceed.
func (e *Engine) fetchCandidate(ctx context.Context, id identifier.Identifier, raw string, log *slog.Logger) (*library.Book, *Outcome, error) {
	if id.Kind == identifier.FreeText {
		candidates, err := e.source.SearchTitle(ctx, id.Value)
		if err != nil {
			outcome, missErr := e.lookupMiss(raw, err, log)
			return nil, outcome, missErr
		}
		if len(candidates) == 0 {
			return nil, &Outcome{Status: StatusNotFoundAnywhere, Raw: raw}, nil
		}
		if len(candidates) > 1 {
			log.Debug("refusing to disambiguate",
				logging.String("raw", raw),
				logging.Int("candidates", len(candidates)),
			)
			return nil, &Outcome{Status: StatusDisambiguation, Raw: raw, Candidates: len(candidates)}, nil
		}
		return candidates[0], nil, nil
	}

	book, err := e.source.LookupISBN(ctx, id)
	if err != nil {
		outcome, missErr := e.lookupMiss(raw, err, log)
		return nil, outcome, missErr
	}
	return book, nil, nil
}

// lookupMiss folds "no such book" adapter errors into ordinary miss
// outcomes, and passes transport faults through as errors.
func (e *Engine) lookupMiss(raw string, err error, log *slog.Logger) (*Outcome, error) {
	if errors.Is(err, isbndb.ErrNoResults) {
		return &Outcome{Status: StatusNotFoundAnywhere, Raw: raw}, nil
	}
	if errors.Is(err, isbndb.ErrServiceReported) {
		log.Warn("lookup rejected by service", logging.Error(err))
		return &Outcome{Status: StatusNotFoundAnywhere, Raw: raw, Detail: err.Error()}, nil
	}
	return nil, err
}

// attachPrices fetches and stores quotes for a freshly inserted book.
// Failures are recorded on the outcome and logged, never returned: prices
// are advisory.
func (e *Engine) attachPrices(ctx context.Context, result *Outcome, log *slog.Logger) {
	if result.Book.ISBN13 == "" {
		return
	}

	quotes, err := e.source.FetchPrices(ctx, result.Book.ISBN13)
	if err != nil {
		log.Warn("price fetch failed, book kept",
			logging.String(logging.FieldISBN, result.Book.ISBN13),
			logging.Error(err),
		)
		result.PriceErr = err
		return
	}

	if err := e.store.InsertPriceQuotes(ctx, result.LibID, quotes); err != nil {
		log.Warn("price insert failed, book kept", logging.Error(err))
		result.PriceErr = err
		return
	}
	result.QuoteCount = len(quotes)
}

// Remove resolves an identifier against the store and cascade-deletes the
// record. Returns the removed book for reporting.
func (e *Engine) Remove(ctx context.Context, raw string) (*library.Book, error) {
	commandID := uuid.NewString()

	book, err := e.Resolve(ctx, raw)
	if err != nil {
		return nil, err
	}
	if err := e.store.Delete(ctx, book.LibID); err != nil {
		return nil, err
	}

	e.logger.Info("book removed",
		logging.String(logging.FieldCommandID, commandID),
		logging.String(logging.FieldISBN, book.Key()),
		logging.String(logging.FieldTitle, book.Title),
	)
	return book, nil
}
