// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3318)
  - DatabaseType: Storage backend: file, sqlite or postgres (default: file)
  - DatabaseURL: Data directory for file, DSN for sqlite/postgres (default for file: data)
  - CatalogPath: Category catalog JSON file (default: built-in catalog)
  - PanelTitle: First line of every panel header
  - PanelSecret: Secret for signing panel control IDs (required)

# CLI Flags

	-p             Server port
	-t             Storage backend
	-d             Database URL or data directory
	-catalog       Category catalog file
	-title         Panel title
	-panel-secret  Panel control signing secret

# Environment Variables

The environment is parsed with github.com/caarlos0/env; main loads a .env
file first if one exists.

	PORT          → -p
	DATABASE_TYPE → -t
	DATABASE_URL  → -d
	CATALOG_PATH  → -catalog
	PANEL_TITLE   → -title
	PANEL_SECRET  → -panel-secret

CLI flags take precedence over environment variables.

# Validation

ParseFlags returns an error if:

  - PANEL_SECRET is missing
  - DATABASE_URL is missing for sqlite or postgres
  - DATABASE_TYPE is not one of file, sqlite, postgres
  - the port is outside 1-65535
*/
package cliparse
