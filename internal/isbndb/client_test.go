package isbndb

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"libris/internal/identifier"
	"libris/internal/logging"
	"libris/internal/testsupport"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := testsupport.NewConfig(t)
	cfg.ISBNdb.BaseURL = server.URL
	cfg.ISBNdb.APIKey = "test-key"
	return New(cfg, logging.NewNop())
}

func TestLookupISBN(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if !strings.Contains(r.URL.Path, "/v2/json/test-key/book/9780140449136") {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if r.URL.Query().Get("opt") != "keystats" {
			t.Errorf("missing keystats option in %q", r.URL.RawQuery)
		}
		_, _ = w.Write([]byte(`{
            "data": [{
                "title": "The Histories",
                "isbn10": "0140449086",
                "isbn13": "9780140449136",
                "publisher_name": "Penguin",
                "author_data": [{"id": "herodotus", "name": "Herodotus"}],
                "subject_ids": ["history", "greece"]
            }]
        }`))
	})

	book, err := client.LookupISBN(context.Background(), identifier.Classify("9780140449136"))
	if err != nil {
		t.Fatalf("LookupISBN failed: %v", err)
	}
	if book.Title != "The Histories" || book.ISBN13 != "9780140449136" {
		t.Fatalf("unexpected book %#v", book)
	}
	if book.AuthorID != "herodotus" || book.AuthorName != "Herodotus" {
		t.Fatalf("author_data not flattened: %#v", book)
	}
	if len(book.SubjectIDs) != 2 {
		t.Fatalf("unexpected subjects %v", book.SubjectIDs)
	}
}

func TestLookupISBNRejectsFreeText(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected")
	})

	if _, err := client.LookupISBN(context.Background(), identifier.Classify("some title")); err == nil {
		t.Fatal("expected error for free-text identifier")
	}
}

func TestSearchTitleUsesQueryParam(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/v2/json/test-key/books") {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if got := r.URL.Query().Get("q"); got != "war and peace" {
			t.Errorf("q = %q", got)
		}
		_, _ = w.Write([]byte(`{"data": [
            {"title": "War and Peace", "isbn13": "9780140447934"},
            {"title": "War and Peace (abridged)", "isbn13": "9780140449136"}
        ]}`))
	})

	books, err := client.SearchTitle(context.Background(), "war and peace")
	if err != nil {
		t.Fatalf("SearchTitle failed: %v", err)
	}
	if len(books) != 2 {
		t.Fatalf("expected 2 candidates, got %d", len(books))
	}
}

func TestServiceReportedError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"error": "Unable to locate book"}`))
	})

	_, err := client.LookupISBN(context.Background(), identifier.Classify("9780140449136"))
	if !errors.Is(err, ErrServiceReported) {
		t.Fatalf("expected ErrServiceReported, got %v", err)
	}
}

func TestEmptyDataIsNoResults(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data": []}`))
	})

	_, err := client.SearchTitle(context.Background(), "unknown")
	if !errors.Is(err, ErrNoResults) {
		t.Fatalf("expected ErrNoResults, got %v", err)
	}
}

func TestTransportFailure(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := client.FetchPrices(context.Background(), "9780140449136")
	if !errors.Is(err, ErrTransport) {
		t.Fatalf("expected ErrTransport, got %v", err)
	}
}

func TestFetchPrices(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if !strings.Contains(r.URL.Path, "/prices/9780140449136") {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		_, _ = w.Write([]byte(`{"data": [
            {"currency_code": "USD", "in_stock": 1, "is_new": 0,
             "price": 10.00, "price_time_unix": 1400000000,
             "store_id": "abebooks", "store_title": "AbeBooks",
             "store_url": "https://example.com/1"},
            {"currency_code": "USD", "in_stock": 0, "is_new": 1,
             "price": 12.50, "price_time_unix": 1400000100,
             "store_id": "alibris", "store_title": "Alibris",
             "store_url": "https://example.com/2"}
        ]}`))
	})

	quotes, err := client.FetchPrices(context.Background(), "9780140449136")
	if err != nil {
		t.Fatalf("FetchPrices failed: %v", err)
	}
	if len(quotes) != 2 {
		t.Fatalf("expected 2 quotes, got %d", len(quotes))
	}
	if !quotes[0].InStock || quotes[0].IsNew {
		t.Fatalf("boolean mapping wrong: %#v", quotes[0])
	}
	if quotes[1].Price != 12.50 {
		t.Fatalf("unexpected price %v", quotes[1].Price)
	}
}
