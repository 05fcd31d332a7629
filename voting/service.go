// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package voting

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync"

	"github.com/danielhkuo/quickly-tally/catalog"
	"github.com/danielhkuo/quickly-tally/models"
	"github.com/danielhkuo/quickly-tally/store"
)

var (
	ErrQuotaUnset    = errors.New("quota not set")
	ErrQuotaExceeded = errors.New("quota exceeded")
	ErrPersistence   = errors.New("persistence failure")
	ErrInvalidQuota  = errors.New("invalid quota")
)

// Service enforces quotas and keeps the vote ledger.
type Service struct {
	catalog *catalog.Catalog
	ledger  store.LedgerStore
	quotas  store.QuotaStore

	// ledgerMu serializes every read-modify-write of the ledger document.
	ledgerMu sync.Mutex
	quotaMu  sync.Mutex
}

func NewService(cat *catalog.Catalog, ledger store.LedgerStore, quotas store.QuotaStore) *Service {
	return &Service{catalog: cat, ledger: ledger, quotas: quotas}
}

// RecordVote adds exactly one vote for key. Repeated calls are repeated votes.
func (s *Service) RecordVote(ctx context.Context, userID string, key models.VoteKey) (models.VoteReceipt, error) {
	s.ledgerMu.Lock()
	defer s.ledgerMu.Unlock()

	// Quota is read inside the critical section so a concurrent vote can
	// never be checked against a stale total.
	quota, err := s.lookupQuota(ctx, userID)
	if err != nil {
		return models.VoteReceipt{}, err
	}

	ledger, err := s.ledger.LoadLedger(ctx)
	if err != nil {
		return models.VoteReceipt{}, fmt.Errorf("%w: load ledger: %w", ErrPersistence, err)
	}

	total := ledger.Total(userID)
	if total+1 > quota {
		return models.VoteReceipt{}, ErrQuotaExceeded
	}

	count := ledger.Add(userID, key)
	if err := s.ledger.SaveLedger(ctx, ledger); err != nil {
		return models.VoteReceipt{}, fmt.Errorf("%w: save ledger: %w", ErrPersistence, err)
	}

	slog.Info("vote recorded", "user_id", userID, "vote_key", key.String(), "count", count)

	return models.VoteReceipt{
		UserID:    userID,
		Key:       key,
		Count:     count,
		Remaining: quota - (total + 1),
	}, nil
}

// RemainingVotes returns quota minus votes cast. The result is negative when
// an operator lowered the quota below what the user had already cast.
func (s *Service) RemainingVotes(ctx context.Context, userID string) (int, error) {
	quota, err := s.lookupQuota(ctx, userID)
	if err != nil {
		return 0, err
	}

	ledger, err := s.ledger.LoadLedger(ctx)
	if err != nil {
		return 0, fmt.Errorf("%w: load ledger: %w", ErrPersistence, err)
	}

	return quota - ledger.Total(userID), nil
}

// UserVotes returns the caller's own ledger entry.
func (s *Service) UserVotes(ctx context.Context, userID string) (map[string]int, error) {
	ledger, err := s.ledger.LoadLedger(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: load ledger: %w", ErrPersistence, err)
	}
	entry := make(map[string]int, len(ledger[userID]))
	for key, count := range ledger[userID] {
		entry[key] = count
	}
	return entry, nil
}

// SetQuota upserts a user's ceiling. Existing votes are never retracted,
// even when the new quota is below the user's total.
func (s *Service) SetQuota(ctx context.Context, userID string, quota int) error {
	if strings.TrimSpace(userID) == "" {
		return fmt.Errorf("%w: user ID is required", ErrInvalidQuota)
	}
	if quota < 0 {
		return fmt.Errorf("%w: %d is negative", ErrInvalidQuota, quota)
	}

	s.quotaMu.Lock()
	defer s.quotaMu.Unlock()

	quotas, err := s.quotas.LoadQuotas(ctx)
	if err != nil {
		return fmt.Errorf("%w: load quotas: %w", ErrPersistence, err)
	}

	previous, existed := quotas[userID]
	quotas[userID] = quota
	if err := s.quotas.SaveQuotas(ctx, quotas); err != nil {
		return fmt.Errorf("%w: save quotas: %w", ErrPersistence, err)
	}

	if existed {
		slog.Info("quota updated", "user_id", userID, "quota", quota, "previous", previous)
	} else {
		slog.Info("quota set", "user_id", userID, "quota", quota)
	}
	return nil
}

// Tally sums all users' votes per key and groups them by category.
//
// Categories follow catalog order, then categories unknown to the catalog
// by name, then "unclassified". Options sort by count descending; ties keep
// catalog declaration order, and unknown options follow by label.
func (s *Service) Tally(ctx context.Context) (models.TallyReport, error) {
	ledger, err := s.ledger.LoadLedger(ctx)
	if err != nil {
		return models.TallyReport{}, fmt.Errorf("%w: load ledger: %w", ErrPersistence, err)
	}

	totals := make(map[string]int)
	grand := 0
	for _, entry := range ledger {
		for key, count := range entry {
			if count <= 0 {
				continue
			}
			totals[key] += count
			grand += count
		}
	}
	if grand == 0 {
		return models.TallyReport{}, nil
	}

	byCategory := make(map[string][]models.OptionTally)
	for raw, count := range totals {
		key := models.ParseVoteKey(raw)
		byCategory[key.Category] = append(byCategory[key.Category], models.OptionTally{
			Option: key.Option,
			Count:  count,
		})
	}

	names := make([]string, 0, len(byCategory))
	for name := range byCategory {
		names = append(names, name)
	}
	slices.SortFunc(names, s.compareCategories)

	report := models.TallyReport{
		Categories: make([]models.CategoryTally, 0, len(names)),
		TotalVotes: grand,
	}
	for _, name := range names {
		options := byCategory[name]
		slices.SortFunc(options, func(a, b models.OptionTally) int {
			if c := cmp.Compare(b.Count, a.Count); c != 0 {
				return c
			}
			return s.compareOptions(name, a.Option, b.Option)
		})
		report.Categories = append(report.Categories, models.CategoryTally{
			Category: name,
			Options:  options,
		})
	}

	return report, nil
}

func (s *Service) lookupQuota(ctx context.Context, userID string) (int, error) {
	quotas, err := s.quotas.LoadQuotas(ctx)
	if err != nil {
		return 0, fmt.Errorf("%w: load quotas: %w", ErrPersistence, err)
	}
	quota, ok := quotas[userID]
	if !ok {
		return 0, ErrQuotaUnset
	}
	return quota, nil
}

func (s *Service) compareCategories(a, b string) int {
	// unclassified always sorts last
	if a == models.Unclassified || b == models.Unclassified {
		return cmp.Compare(boolRank(a == models.Unclassified), boolRank(b == models.Unclassified))
	}
	ai, aok := s.catalog.CategoryIndex(a)
	bi, bok := s.catalog.CategoryIndex(b)
	switch {
	case aok && bok:
		return cmp.Compare(ai, bi)
	case aok:
		return -1
	case bok:
		return 1
	}
	return strings.Compare(a, b)
}

func (s *Service) compareOptions(category, a, b string) int {
	ai, aok := s.catalog.OptionIndex(category, a)
	bi, bok := s.catalog.OptionIndex(category, b)
	switch {
	case aok && bok:
		return cmp.Compare(ai, bi)
	case aok:
		return -1
	case bok:
		return 1
	}
	return strings.Compare(a, b)
}

func boolRank(b bool) int {
	if b {
		return 1
	}
	return 0
}
