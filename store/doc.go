// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store persists the vote ledger and the quota table.

Both are whole documents: Load returns the full mapping (empty if nothing
was saved yet) and Save replaces it. A failed Save never leaves a
half-written document behind.

# Backends

  - FileStore: votes.json and limits.json in a data directory. Saves write
    a temp file, fsync it, and rename it over the target.
  - SQLStore: vote_ledger and vote_quota tables. Saves delete and re-insert
    all rows in one transaction. Works with lib/pq and modernc.org/sqlite.
  - MemoryStore: in-process maps for tests, with injectable failures.

	s, err := store.OpenFileStore("data")
	s, err := store.OpenSQLStore(db.DriverSQLite, "votes.db")
	s, err := store.OpenSQLStore(db.DriverPostgres, "postgres://...")

Stores do no locking across Load/Save pairs. Read-modify-write sequences
are serialized by the voting service.
*/
package store
