// Package sqlite provides a SQLite-based implementation of the storage ports.
//
// This adapter uses modernc.org/sqlite, a pure Go SQLite implementation that requires
// no CGO, enabling easy cross-compilation. One database file backs both stores:
//
//   - PizzaStore: Pizza documents for the REST API, stored as JSON
//   - LocalWriteStore: The client's offline queue of create payloads
//
// The server and the client each open their own database file; every file
// carries both tables.
//
// # Schema
//
// The database schema is managed through versioned migrations stored in the
// migrations/ directory. Each migration is a pair of .up.sql and .down.sql files.
// Migrations are idempotent, so opening an existing database is a no-op.
//
// # Data Location
//
// By default, the database is stored at ~/.pizzahunt/data/pizza_hunt.db
//
// # Thread Safety
//
// All operations are thread-safe. The store uses database-level locking provided
// by SQLite in WAL mode.
package sqlite
