// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"

	"github.com/danielhkuo/quickly-tally/models"
)

// LedgerStore persists the vote ledger as a whole document.
// LoadLedger returns an empty ledger when nothing has been saved yet.
// SaveLedger replaces the stored ledger; readers never see a partial write.
type LedgerStore interface {
	LoadLedger(ctx context.Context) (models.Ledger, error)
	SaveLedger(ctx context.Context, ledger models.Ledger) error
}

// QuotaStore persists the quota table as a whole document.
type QuotaStore interface {
	LoadQuotas(ctx context.Context) (models.QuotaTable, error)
	SaveQuotas(ctx context.Context, quotas models.QuotaTable) error
}

// Store is a backend for both documents.
type Store interface {
	LedgerStore
	QuotaStore
	Close() error
}

var (
	_ Store = (*FileStore)(nil)
	_ Store = (*SQLStore)(nil)
	_ Store = (*MemoryStore)(nil)
)
