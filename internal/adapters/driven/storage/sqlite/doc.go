// Package sqlite provides the durable record store.
//
// This adapter uses modernc.org/sqlite, a pure Go SQLite implementation that
// requires no CGO. Records live in a single key/value table; each write
// replaces the previous value inside a transaction and stamps a new revision.
//
// # Schema
//
// The schema is managed through versioned migrations embedded from the
// migrations/ directory. Each migration is a pair of .up.sql and .down.sql files.
//
// # Data Location
//
// By default, the database is stored at ~/.ycard/data/ycard.db
package sqlite
