package main

import (
	"errors"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/danielhkuo/quickly-tally/auth"
	"github.com/danielhkuo/quickly-tally/catalog"
	"github.com/danielhkuo/quickly-tally/cliparse"
	"github.com/danielhkuo/quickly-tally/db"
	"github.com/danielhkuo/quickly-tally/panel"
	"github.com/danielhkuo/quickly-tally/router"
	"github.com/danielhkuo/quickly-tally/store"
	"github.com/danielhkuo/quickly-tally/voting"
)

func main() {
	var err error

	// .env is optional
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Error("Error loading .env", "error", err)
		os.Exit(1)
	}

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	// Load categories
	cat, err := loadCatalog(cfg.CatalogPath)
	if err != nil {
		slog.Error("catalog load failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Catalog ready", "categories", cat.Len(), "fingerprint", cat.Fingerprint())

	// Open storage
	st, err := openStore(cfg)
	if err != nil {
		slog.Error("storage open failed", "type", cfg.DatabaseType, "error", err)
		os.Exit(1)
	}
	defer st.Close()
	slog.Info("Storage ready", "type", cfg.DatabaseType)

	signer, err := auth.NewSigner(cfg.PanelSecret)
	if err != nil {
		slog.Error("signer setup failed", "error", err)
		os.Exit(1)
	}

	svc := voting.NewService(cat, st, st)
	builder := panel.NewBuilder(cat, signer, cfg.PanelTitle)

	// Create router
	mux := router.NewRouter(svc, builder)

	// Create server
	server := http.Server{
		Handler: mux,
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		server.Close()
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}

func loadCatalog(path string) (*catalog.Catalog, error) {
	if path == "" {
		return catalog.Default()
	}
	return catalog.Load(path)
}

func openStore(cfg cliparse.Config) (store.Store, error) {
	switch cfg.DatabaseType {
	case cliparse.DatabaseSQLite:
		return store.OpenSQLStore(db.DriverSQLite, cfg.DatabaseURL)
	case cliparse.DatabasePostgres:
		return store.OpenSQLStore(db.DriverPostgres, cfg.DatabaseURL)
	default:
		return store.OpenFileStore(cfg.DatabaseURL)
	}
}
