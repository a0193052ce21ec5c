// Package engine orchestrates the catalog store and the metadata source.
//
// It owns the resolve/ingest/remove lifecycle for identifiers, the fixed
// pricing policy, and full-catalog export. Every mutation runs on the single
// consumer goroutine of the command loop, so engine operations are atomic
// with respect to the library without internal locking.
//
// Non-fatal conditions (already present, not found anywhere, multiple
// candidates, invalid identifier) are outcomes, not errors: they carry a
// user-visible message and never terminate the command loop.
package engine
