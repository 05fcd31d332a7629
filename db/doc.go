// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database schema creation.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.
The same DDL runs on PostgreSQL (lib/pq) and SQLite (modernc.org/sqlite).

# Tables

  - vote_ledger: (user_id, vote_key) -> count
  - vote_quota: user_id -> quota

vote_key is the serialized "category:option" form, matching the JSON
document layout used by the file store.

# Placeholders

Queries are written with '?' and passed through Rebind, which converts
them to $N for the postgres driver:

	db.Rebind(db.DriverPostgres, "SELECT ? , ?") // "SELECT $1 , $2"
*/
package db
