package cliparse

import (
	"errors"
	"flag"
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Storage backends
const (
	DatabaseFile     = "file"
	DatabaseSQLite   = "sqlite"
	DatabasePostgres = "postgres"
)

const DefaultPanelTitle = "🏖 水着総選挙"

type Config struct {
	Port         int    `env:"PORT" envDefault:"3318"`
	DatabaseURL  string `env:"DATABASE_URL"`
	DatabaseType string `env:"DATABASE_TYPE" envDefault:"file"`
	CatalogPath  string `env:"CATALOG_PATH"`
	PanelSecret  string `env:"PANEL_SECRET"`
	PanelTitle   string `env:"PANEL_TITLE"`
}

// ParseFlags reads the environment, then lets CLI flags override it
func ParseFlags(args []string) (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, errors.New("invalid environment: " + err.Error())
	}

	fs := flag.NewFlagSet("quickly-tally", flag.ContinueOnError)

	// Network and storage config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", cfg.Port, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", cfg.DatabaseURL, "Database URL, or data directory for the file backend")
	fs.StringVar(&cfg.DatabaseType, "t", cfg.DatabaseType, "Storage backend (file, sqlite or postgres)")
	fs.StringVar(&cfg.CatalogPath, "catalog", cfg.CatalogPath, "Category catalog JSON file (default: built-in)")
	fs.StringVar(&cfg.PanelTitle, "title", cfg.PanelTitle, "Panel title")

	// Secrets (prefer env variables, but allow CLI for dev)
	fs.StringVar(&cfg.PanelSecret, "panel-secret", cfg.PanelSecret, "Panel control signing secret (prefer env)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if cfg.Port <= 0 || cfg.Port > 65535 {
		return Config{}, fmt.Errorf("invalid port %d", cfg.Port)
	}

	switch cfg.DatabaseType {
	case DatabaseFile:
		if cfg.DatabaseURL == "" {
			cfg.DatabaseURL = "data" // default
		}
	case DatabaseSQLite, DatabasePostgres:
		if cfg.DatabaseURL == "" {
			return Config{}, errors.New("database URL required (use -d or DATABASE_URL env)")
		}
	default:
		return Config{}, fmt.Errorf("unknown database type %q", cfg.DatabaseType)
	}

	if cfg.PanelTitle == "" {
		cfg.PanelTitle = DefaultPanelTitle
	}

	// Secrets - MUST be provided
	if cfg.PanelSecret == "" {
		return Config{}, errors.New("PANEL_SECRET required")
	}

	return cfg, nil
}
