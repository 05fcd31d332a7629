// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
	"strconv"
	"strings"
)

// Supported database/sql driver names
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// Rebind rewrites '?' placeholders into the form the driver expects.
// lib/pq only understands $1, $2, ...
func Rebind(driver, query string) string {
	if driver != DriverPostgres {
		return query
	}

	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	for i := 0; i < len(query); i++ {
		if query[i] == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteByte(query[i])
	}
	return b.String()
}

const schema = `
-- Vote ledger: one row per user per vote key
CREATE TABLE IF NOT EXISTS vote_ledger (
    user_id TEXT NOT NULL,
    vote_key TEXT NOT NULL,
    count INTEGER NOT NULL CHECK (count >= 0),
    PRIMARY KEY (user_id, vote_key)
);

CREATE INDEX IF NOT EXISTS idx_vote_ledger_vote_key ON vote_ledger(vote_key);

-- Quotas: one ceiling per user
CREATE TABLE IF NOT EXISTS vote_quota (
    user_id TEXT PRIMARY KEY,
    quota INTEGER NOT NULL CHECK (quota >= 0)
);
`
