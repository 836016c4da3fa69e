// Package sqlite provides the SQLite-backed entity store.
//
// The store holds the college directory in two tables (colleges and
// courses) and implements the driven.EntityStore port. The database
// uses WAL mode and embedded migrations so a fresh data directory is
// usable immediately.
package sqlite
