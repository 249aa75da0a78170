// Package database provides SQLite-based storage for render history.
//
// This package implements the HistoryDB, which records every report the
// tool generates so prior renders can be listed and located later without
// walking the filesystem.
//
// Design decision: We use SQLite (via modernc.org/sqlite) instead of other
// databases because:
// 1. No external dependencies - the database is a single file
// 2. CGO-free implementation allows easy cross-compilation
// 3. Sufficient performance for our use case
// 4. WAL mode provides good concurrent read performance
package database
