// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/danielhkuo/quickly-tally/models"
)

// Document file names inside the data directory
const (
	LedgerFile = "votes.json"
	QuotaFile  = "limits.json"
)

// FileStore keeps each document in its own JSON file.
type FileStore struct {
	dir string
}

// OpenFileStore prepares dir and seeds empty documents if they are missing.
func OpenFileStore(dir string) (*FileStore, error) {
	if strings.TrimSpace(dir) == "" {
		return nil, errors.New("data directory is required")
	}
	dir = filepath.Clean(dir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	s := &FileStore{dir: dir}
	for _, name := range []string{LedgerFile, QuotaFile} {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
			if err := writeFileAtomic(path, []byte("{}")); err != nil {
				return nil, err
			}
		} else if err != nil {
			return nil, fmt.Errorf("failed to stat %s: %w", name, err)
		}
	}
	return s, nil
}

func (s *FileStore) LoadLedger(ctx context.Context) (models.Ledger, error) {
	ledger := models.Ledger{}
	if err := s.load(ctx, LedgerFile, &ledger); err != nil {
		return nil, err
	}
	if ledger == nil {
		ledger = models.Ledger{}
	}
	// A hand-edited "user": null entry decodes as a nil map
	for userID, entry := range ledger {
		if entry == nil {
			delete(ledger, userID)
		}
	}
	return ledger, nil
}

func (s *FileStore) SaveLedger(ctx context.Context, ledger models.Ledger) error {
	return s.save(ctx, LedgerFile, ledger)
}

func (s *FileStore) LoadQuotas(ctx context.Context) (models.QuotaTable, error) {
	quotas := models.QuotaTable{}
	if err := s.load(ctx, QuotaFile, &quotas); err != nil {
		return nil, err
	}
	if quotas == nil {
		quotas = models.QuotaTable{}
	}
	return quotas, nil
}

func (s *FileStore) SaveQuotas(ctx context.Context, quotas models.QuotaTable) error {
	return s.save(ctx, QuotaFile, quotas)
}

// Close is a no-op; files are not held open between calls.
func (s *FileStore) Close() error {
	return nil
}

func (s *FileStore) load(ctx context.Context, name string, v any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", name, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to decode %s: %w", name, err)
	}
	return nil
}

func (s *FileStore) save(ctx context.Context, name string, v any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := json.MarshalIndent(v, "", "    ")
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", name, err)
	}
	return writeFileAtomic(filepath.Join(s.dir, name), data)
}

// writeFileAtomic writes to a temp file in the target's directory and
// renames it over the target, so the old content survives any failure.
func writeFileAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) // no-op after a successful rename

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("failed to replace %s: %w", filepath.Base(path), err)
	}
	return nil
}
