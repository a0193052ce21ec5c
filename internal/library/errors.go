package library

import "errors"

var (
	// ErrDuplicateBook indicates an insert would collide with a stored record
	// sharing the same identity ISBN. The store never silently overwrites.
	ErrDuplicateBook = errors.New("book already in library")

	// ErrNotFound indicates the requested record does not exist.
	ErrNotFound = errors.New("book not found in library")

	// ErrInvalidIdentifier indicates a lookup was attempted with an
	// identifier the classifier rejected.
	ErrInvalidIdentifier = errors.New("invalid identifier")

	// ErrSchemaMismatch indicates the database was created by an
	// incompatible libris version. Fatal at startup.
	ErrSchemaMismatch = errors.New("schema version mismatch")
)
