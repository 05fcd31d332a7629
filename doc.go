// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Quickly Tally API server.

Quickly Tally runs a category election for a chat community. Members vote
through paged button panels, one page per category, within a vote limit set
by an operator. Results are tallied per category.

# Starting the Server

	PANEL_SECRET=... go run .

Or with flags:

	go run . -p 3318 -t sqlite -d tally.db -panel-secret ...

A .env file in the working directory is loaded first if present.

# Configuration

Required settings:

  - PANEL_SECRET (--panel-secret): Secret for signing panel control IDs

Optional settings:

  - PORT (-p): Server port (default: 3318)
  - DATABASE_TYPE (-t): file, sqlite or postgres (default: file)
  - DATABASE_URL (-d): Data directory for file, DSN otherwise (default: data)
  - CATALOG_PATH (--catalog): Category catalog JSON (default: built-in)
  - PANEL_TITLE (--title): Panel header title

# Architecture

  - handlers: HTTP request handlers (commands, interactions)
  - router: Route definitions using Go 1.22+ routing
  - middleware: Logging, request IDs, JSON helpers
  - voting: Vote accounting and quota enforcement
  - panel: Paged button panels and control decoding
  - catalog: Categories and their options
  - store: Ledger and quota persistence (file, SQL, memory)
  - db: SQL schema creation
  - auth: Control ID signing
  - models: Domain and request/response types
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
