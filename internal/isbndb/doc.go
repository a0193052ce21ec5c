// Package isbndb wraps the ISBNdb v2 lookup API behind a stable contract.
//
// Requests are keyed by API version, format, credential, endpoint, and query
// term; responses carry either an error field or a data list of book/price
// records. Book payloads nest author info as a one-element list, which the
// payload constructor flattens into the catalog Book shape.
//
// The client distinguishes transport failures, errors reported by the
// service itself, and empty result sets so the engine can react to each.
// Retries and rate limiting, if ever needed, belong here, not in callers.
package isbndb
