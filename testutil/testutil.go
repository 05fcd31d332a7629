// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	_ "modernc.org/sqlite"

	"github.com/danielhkuo/quickly-tally/auth"
	"github.com/danielhkuo/quickly-tally/catalog"
	"github.com/danielhkuo/quickly-tally/cliparse"
	"github.com/danielhkuo/quickly-tally/db"
	"github.com/danielhkuo/quickly-tally/middleware"
	"github.com/danielhkuo/quickly-tally/models"
	"github.com/danielhkuo/quickly-tally/panel"
	"github.com/danielhkuo/quickly-tally/store"
	"github.com/danielhkuo/quickly-tally/voting"
)

// TestPanelSecret signs control IDs in tests
const TestPanelSecret = "test-panel-secret"

// TestCategories is a small catalog with three pages
var TestCategories = []catalog.Category{
	{Name: "cat1", Options: []string{"x", "y"}},
	{Name: "cat2", Options: []string{"p", "q", "r"}},
	{Name: "cat3", Options: []string{"solo"}},
}

// SetupTestDB creates a fresh SQLite database with the full schema
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := sql.Open(db.DriverSQLite, filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	conn.SetMaxOpenConns(1)
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         3318,
		DatabaseType: cliparse.DatabaseSQLite,
		DatabaseURL:  "test.db",
		PanelSecret:  TestPanelSecret,
		PanelTitle:   "Test Election",
	}
}

// TestCatalog builds the catalog from TestCategories
func TestCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()

	cat, err := catalog.New(TestCategories)
	if err != nil {
		t.Fatalf("Failed to build test catalog: %v", err)
	}
	return cat
}

// NewTestSigner returns a signer using TestPanelSecret
func NewTestSigner(t *testing.T) *auth.Signer {
	t.Helper()

	signer, err := auth.NewSigner(TestPanelSecret)
	if err != nil {
		t.Fatalf("Failed to create signer: %v", err)
	}
	return signer
}

// NewTestBuilder returns a panel builder over the test catalog
func NewTestBuilder(t *testing.T) *panel.Builder {
	t.Helper()
	return panel.NewBuilder(TestCatalog(t), NewTestSigner(t), GetTestConfig().PanelTitle)
}

// NewTestService returns a voting service backed by an in-memory store.
// The store is returned so tests can inspect it or inject failures.
func NewTestService(t *testing.T) (*voting.Service, *store.MemoryStore) {
	t.Helper()

	mem := store.NewMemoryStore()
	return voting.NewService(TestCatalog(t), mem, mem), mem
}

// NewSQLTestService returns a voting service backed by a SQLite store
func NewSQLTestService(t *testing.T) (*voting.Service, *store.SQLStore) {
	t.Helper()

	s := store.NewSQLStore(SetupTestDB(t), db.DriverSQLite)
	return voting.NewService(TestCatalog(t), s, s), s
}

// SetTestQuota gives a user a quota
func SetTestQuota(t *testing.T, svc *voting.Service, userID string, quota int) {
	t.Helper()

	if err := svc.SetQuota(context.Background(), userID, quota); err != nil {
		t.Fatalf("Failed to set test quota: %v", err)
	}
}

// CastTestVotes records n votes for one key
func CastTestVotes(t *testing.T, svc *voting.Service, userID, category, option string, n int) {
	t.Helper()

	key := models.VoteKey{Category: category, Option: option}
	for i := 0; i < n; i++ {
		if _, err := svc.RecordVote(context.Background(), userID, key); err != nil {
			t.Fatalf("Failed to cast test vote %d: %v", i+1, err)
		}
	}
}

// FindControl returns the first control of a panel matching kind and option
func FindControl(t *testing.T, p *models.Panel, kind models.ControlKind, option string) models.Control {
	t.Helper()

	if p == nil {
		t.Fatal("Panel is nil")
	}
	for _, c := range p.Controls {
		if c.Kind == kind && (option == "" || c.Option == option) {
			return c
		}
	}
	t.Fatalf("No %s control for %q on page %d", kind, option, p.Page)
	return models.Control{}
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AsUser returns headers identifying the caller
func AsUser(userID string) map[string]string {
	return map[string]string{middleware.HeaderUserID: userID}
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
