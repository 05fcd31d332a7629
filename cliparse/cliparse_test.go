// cliparse/cliparse_test.go
package cliparse

import (
	"testing"
)

func TestParseFlags_EnvVars(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("DATABASE_TYPE", "sqlite")
	t.Setenv("DATABASE_URL", "votes.db")
	t.Setenv("PANEL_SECRET", "test-secret")
	t.Setenv("PANEL_TITLE", "Summer Vote")

	cfg, err := ParseFlags([]string{})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 9000 {
		t.Errorf("expected port 9000, got %d", cfg.Port)
	}
	if cfg.DatabaseType != DatabaseSQLite || cfg.DatabaseURL != "votes.db" {
		t.Errorf("unexpected database config: %s %s", cfg.DatabaseType, cfg.DatabaseURL)
	}
	if cfg.PanelTitle != "Summer Vote" {
		t.Errorf("expected title from env, got %q", cfg.PanelTitle)
	}
}

func TestParseFlags_Defaults(t *testing.T) {
	t.Setenv("PANEL_SECRET", "test-secret")

	cfg, err := ParseFlags([]string{})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 3318 {
		t.Errorf("expected default port 3318, got %d", cfg.Port)
	}
	if cfg.DatabaseType != DatabaseFile || cfg.DatabaseURL != "data" {
		t.Errorf("expected file backend in ./data, got %s %s", cfg.DatabaseType, cfg.DatabaseURL)
	}
	if cfg.PanelTitle != DefaultPanelTitle {
		t.Errorf("expected default title, got %q", cfg.PanelTitle)
	}
}

func TestParseFlags_CLIOverridesEnv(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("PANEL_SECRET", "env-secret")

	cfg, err := ParseFlags([]string{"-p", "8080", "-t", "postgres", "-d", "postgres://test", "-panel-secret", "s1", "-catalog", "cats.json"})
	if err != nil {
		t.Fatal(err)
	}

	// CLI should override env
	if cfg.Port != 8080 {
		t.Errorf("CLI should override env: expected 8080, got %d", cfg.Port)
	}
	if cfg.PanelSecret != "s1" {
		t.Errorf("CLI should override env: expected s1, got %q", cfg.PanelSecret)
	}
	if cfg.CatalogPath != "cats.json" {
		t.Errorf("expected catalog path, got %q", cfg.CatalogPath)
	}
}

func TestParseFlags_Errors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		args []string
	}{
		{"missing secret", nil, []string{}},
		{"sqlite without url", map[string]string{"PANEL_SECRET": "s"}, []string{"-t", "sqlite"}},
		{"unknown backend", map[string]string{"PANEL_SECRET": "s"}, []string{"-t", "mongo"}},
		{"bad port env", map[string]string{"PANEL_SECRET": "s", "PORT": "abc"}, []string{}},
		{"port out of range", map[string]string{"PANEL_SECRET": "s"}, []string{"-p", "70000"}},
		{"unknown flag", map[string]string{"PANEL_SECRET": "s"}, []string{"-x"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("PANEL_SECRET", "")
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			if _, err := ParseFlags(tt.args); err == nil {
				t.Error("expected error")
			}
		})
	}
}
