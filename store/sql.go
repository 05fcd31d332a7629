// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/danielhkuo/quickly-tally/db"
	"github.com/danielhkuo/quickly-tally/models"
)

// SQLStore keeps the documents as rows. Saves replace every row inside one
// transaction.
type SQLStore struct {
	db     *sql.DB
	driver string
}

// OpenSQLStore opens a database, verifies the connection, and creates the
// schema. driver is db.DriverPostgres or db.DriverSQLite; the caller must
// import the matching driver package.
func OpenSQLStore(driver, dsn string) (*SQLStore, error) {
	if strings.TrimSpace(dsn) == "" {
		return nil, errors.New("database URL is required")
	}
	if driver == db.DriverSQLite && !strings.Contains(dsn, "?") {
		dsn += "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	}

	conn, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s database: %w", driver, err)
	}
	if err := conn.Ping(); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to ping %s database: %w", driver, err)
	}
	if driver == db.DriverSQLite {
		// One writer at a time; avoids SQLITE_BUSY between our own connections
		conn.SetMaxOpenConns(1)
	}
	if err := db.CreateSchema(conn); err != nil {
		_ = conn.Close()
		return nil, err
	}
	return NewSQLStore(conn, driver), nil
}

// NewSQLStore wraps an existing connection whose schema is already in place.
func NewSQLStore(conn *sql.DB, driver string) *SQLStore {
	return &SQLStore{db: conn, driver: driver}
}

func (s *SQLStore) LoadLedger(ctx context.Context) (models.Ledger, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT user_id, vote_key, count FROM vote_ledger`)
	if err != nil {
		return nil, fmt.Errorf("failed to query vote ledger: %w", err)
	}
	defer rows.Close()

	ledger := models.Ledger{}
	for rows.Next() {
		var userID, key string
		var count int
		if err := rows.Scan(&userID, &key, &count); err != nil {
			return nil, fmt.Errorf("failed to scan vote ledger: %w", err)
		}
		entry, ok := ledger[userID]
		if !ok {
			entry = make(map[string]int)
			ledger[userID] = entry
		}
		entry[key] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read vote ledger: %w", err)
	}
	return ledger, nil
}

func (s *SQLStore) SaveLedger(ctx context.Context, ledger models.Ledger) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM vote_ledger`); err != nil {
		return fmt.Errorf("failed to clear vote ledger: %w", err)
	}

	insert := db.Rebind(s.driver, `INSERT INTO vote_ledger (user_id, vote_key, count) VALUES (?, ?, ?)`)
	for userID, entry := range ledger {
		for key, count := range entry {
			if _, err := tx.ExecContext(ctx, insert, userID, key, count); err != nil {
				return fmt.Errorf("failed to insert vote ledger row: %w", err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit vote ledger: %w", err)
	}
	return nil
}

func (s *SQLStore) LoadQuotas(ctx context.Context) (models.QuotaTable, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT user_id, quota FROM vote_quota`)
	if err != nil {
		return nil, fmt.Errorf("failed to query quotas: %w", err)
	}
	defer rows.Close()

	quotas := models.QuotaTable{}
	for rows.Next() {
		var userID string
		var quota int
		if err := rows.Scan(&userID, &quota); err != nil {
			return nil, fmt.Errorf("failed to scan quota: %w", err)
		}
		quotas[userID] = quota
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read quotas: %w", err)
	}
	return quotas, nil
}

func (s *SQLStore) SaveQuotas(ctx context.Context, quotas models.QuotaTable) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM vote_quota`); err != nil {
		return fmt.Errorf("failed to clear quotas: %w", err)
	}

	insert := db.Rebind(s.driver, `INSERT INTO vote_quota (user_id, quota) VALUES (?, ?)`)
	for userID, quota := range quotas {
		if _, err := tx.ExecContext(ctx, insert, userID, quota); err != nil {
			return fmt.Errorf("failed to insert quota: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit quotas: %w", err)
	}
	return nil
}

// Close closes the database handle.
func (s *SQLStore) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}
