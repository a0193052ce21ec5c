package isbndb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"libris/internal/config"
	"libris/internal/identifier"
	"libris/internal/library"
	"libris/internal/logging"
)

var (
	// ErrTransport indicates the request never produced a usable response.
	ErrTransport = errors.New("isbndb transport failure")

	// ErrServiceReported indicates ISBNdb returned its own error payload.
	ErrServiceReported = errors.New("isbndb reported error")

	// ErrNoResults indicates a well-formed response with an empty data list.
	ErrNoResults = errors.New("no results from isbndb")
)

const (
	endpointBook   = "book"
	endpointBooks  = "books"
	endpointPrices = "prices"

	responseFormat = "json"
)

// Client talks to the ISBNdb v2 API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiVersion string
	apiKey     string
	logger     *slog.Logger
}

// New constructs a client from resolved configuration. The base URL is
// injected so tests can point the client at a local server.
func New(cfg *config.Config, logger *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		baseURL:    cfg.ISBNdb.BaseURL,
		apiVersion: cfg.ISBNdb.APIVersion,
		apiKey:     cfg.ISBNdb.APIKey,
		logger:     logging.NewComponentLogger(logger, "isbndb"),
	}
}

// LookupISBN fetches the book record for a classified ISBN. Exactly one
// record is expected from the single-book endpoint; an empty data list maps
// to ErrNoResults.
func (c *Client) LookupISBN(ctx context.Context, id identifier.Identifier) (*library.Book, error) {
	if id.Kind != identifier.ISBN10 && id.Kind != identifier.ISBN13 {
		return nil, fmt.Errorf("lookup requires an ISBN identifier, got %s", id.Kind)
	}

	payloads, err := requestData[bookPayload](ctx, c, endpointBook, id.Value, nil)
	if err != nil {
		return nil, err
	}
	return bookFromPayload(payloads[0]), nil
}

// SearchTitle queries the free-text books endpoint. Zero, one, or many
// records come back; candidate selection is the caller's policy.
func (c *Client) SearchTitle(ctx context.Context, query string) ([]*library.Book, error) {
	params := url.Values{"q": []string{query}}
	payloads, err := requestData[bookPayload](ctx, c, endpointBooks, "", params)
	if err != nil {
		return nil, err
	}

	books := make([]*library.Book, 0, len(payloads))
	for _, payload := range payloads {
		books = append(books, bookFromPayload(payload))
	}
	return books, nil
}

// FetchPrices retrieves current price observations for an ISBN-13.
func (c *Client) FetchPrices(ctx context.Context, isbn13 string) ([]library.PriceQuote, error) {
	payloads, err := requestData[pricePayload](ctx, c, endpointPrices, isbn13, nil)
	if err != nil {
		return nil, err
	}

	quotes := make([]library.PriceQuote, 0, len(payloads))
	for _, payload := range payloads {
		quotes = append(quotes, quoteFromPayload(payload))
	}
	return quotes, nil
}

// requestData performs one API call and unwraps the response envelope.
func requestData[T any](ctx context.Context, c *Client, endpoint, term string, params url.Values) ([]T, error) {
	requestURL := c.buildURL(endpoint, term, params)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTransport, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d from %s", ErrTransport, resp.StatusCode, endpoint)
	}

	var envelope apiResponse[T]
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("%w: decode response: %w", ErrTransport, err)
	}

	if envelope.Error != "" {
		c.logger.Debug("service reported error",
			logging.String("endpoint", endpoint),
			logging.String("detail", envelope.Error),
		)
		return nil, fmt.Errorf("%w: %s", ErrServiceReported, envelope.Error)
	}
	if len(envelope.Data) == 0 {
		return nil, fmt.Errorf("%w: %s %s", ErrNoResults, endpoint, term)
	}
	return envelope.Data, nil
}

// buildURL joins base/version/format/key/endpoint[/term] and appends the
// keystats option the v2 API expects.
func (c *Client) buildURL(endpoint, term string, params url.Values) string {
	segments := []string{c.baseURL, c.apiVersion, responseFormat, c.apiKey, endpoint}
	if term != "" {
		segments = append(segments, url.PathEscape(term))
	}

	query := url.Values{"opt": []string{"keystats"}}
	for key, values := range params {
		query[key] = values
	}
	return strings.Join(segments, "/") + "?" + query.Encode()
}
