// Package sqlite provides a SQLite-backed implementation of driven.SnapshotStore.
//
// This adapter uses modernc.org/sqlite, a pure Go SQLite implementation that requires
// no CGO, enabling easy cross-compilation.
//
// # Schema
//
// The database schema is managed through versioned migrations stored in the
// migrations/ directory, one forward-only .up.sql file per version.
// Every ReplaceAll rewrites the documents table inside one transaction and
// appends a row to replace_log.
//
// # Data Location
//
// By default, the database is stored at ~/.docspace/data/documents.db
//
// # Thread Safety
//
// All operations are thread-safe. The store uses database-level locking provided
// by SQLite in WAL mode.
package sqlite
