// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"sync"

	"github.com/danielhkuo/quickly-tally/models"
)

// MemoryStore keeps both documents in memory. Values are cloned on the way
// in and out so callers never share maps with the store.
type MemoryStore struct {
	mu     sync.Mutex
	ledger models.Ledger
	quotas models.QuotaTable

	failLoad error
	failSave error
}

// NewMemoryStore returns an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		ledger: models.Ledger{},
		quotas: models.QuotaTable{},
	}
}

func (s *MemoryStore) LoadLedger(ctx context.Context) (models.Ledger, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failLoad != nil {
		return nil, s.failLoad
	}
	return s.ledger.Clone(), nil
}

func (s *MemoryStore) SaveLedger(ctx context.Context, ledger models.Ledger) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failSave != nil {
		return s.failSave
	}
	s.ledger = ledger.Clone()
	return nil
}

func (s *MemoryStore) LoadQuotas(ctx context.Context) (models.QuotaTable, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failLoad != nil {
		return nil, s.failLoad
	}
	return s.quotas.Clone(), nil
}

func (s *MemoryStore) SaveQuotas(ctx context.Context, quotas models.QuotaTable) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failSave != nil {
		return s.failSave
	}
	s.quotas = quotas.Clone()
	return nil
}

// SetFailures makes subsequent loads and saves return the given errors.
// Pass nil to clear.
func (s *MemoryStore) SetFailures(load, save error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failLoad = load
	s.failSave = save
}

func (s *MemoryStore) Close() error {
	return nil
}
