// Package library persists the book catalog in SQLite and owns its schema.
//
// The Store manages the database connection, idempotent schema
// initialization, and primitive CRUD over the three tables: library rows,
// subject tags, and price quotes. Deletes cascade to subjects and prices in
// a single transaction; the storage engine is never trusted to do it.
//
// All catalog mutation flows through a single consumer loop, so the Store
// needs no internal locking; a flock lock file next to the database extends
// the single-writer discipline across processes.
package library
