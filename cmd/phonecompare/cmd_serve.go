package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/denisok6893-rgb/ai-phone-comparison/internal/comparison"
	"github.com/denisok6893-rgb/ai-phone-comparison/internal/config"
	httpapi "github.com/denisok6893-rgb/ai-phone-comparison/internal/http"
	"github.com/denisok6893-rgb/ai-phone-comparison/internal/storage"
)

func newServeCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the comparison HTTP API",
		Long: `Start the comparison HTTP API.

Configuration comes from the environment (and a .env file when present):
  API_ADDRESS    listen address (default :8080)
  DATABASE_PATH  SQLite phone catalog (default data/phones.db)
  CATALOG_PATH   catalog file used to seed an empty database (default data/phones.json)
  WEIGHTS_PATH   category weights file (default configs/weights.yaml)
  LOG_LEVEL      debug, info, warn or error`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.Address = addr
			}
			if !cmd.Flags().Changed("debug") {
				slog.SetLogLoggerLevel(cfg.LogLevel)
			}

			store, err := openStore(cfg.DatabasePath)
			if err != nil {
				return err
			}
			defer store.Close()

			if err := seedIfEmpty(cmd.Context(), store, cfg.CatalogPath); err != nil {
				return err
			}

			engine := comparison.NewEngine(loadWeights(cfg.WeightsPath))
			srv := &http.Server{
				Addr:              cfg.Address,
				Handler:           httpapi.NewServer(engine, store).Routes(),
				ReadHeaderTimeout: 10 * time.Second,
			}
			return serve(cmd.Context(), srv)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (overrides API_ADDRESS)")

	return cmd
}

func openStore(path string) (*storage.SQLiteStore, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create database directory: %w", err)
		}
	}
	store, err := storage.OpenSQLite(path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := store.EnsureSchema(); err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("ensure schema: %w", err)
	}
	return store, nil
}

// seedIfEmpty imports the catalog file into an empty database. A missing
// catalog file leaves the database empty.
func seedIfEmpty(ctx context.Context, store *storage.SQLiteStore, catalogPath string) error {
	n, err := store.CountPhones(ctx)
	if err != nil {
		return fmt.Errorf("count phones: %w", err)
	}
	if n > 0 || catalogPath == "" {
		return nil
	}

	phones, err := storage.LoadPhonesFromFile(catalogPath)
	if errors.Is(err, fs.ErrNotExist) {
		slog.Warn("catalog file not found, starting with an empty catalog", "path", catalogPath)
		return nil
	}
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}
	if err := store.UpsertMany(ctx, phones); err != nil {
		return fmt.Errorf("seed catalog: %w", err)
	}
	slog.Info("seeded phone catalog", "path", catalogPath, "phones", len(phones))
	return nil
}

func serve(ctx context.Context, srv *http.Server) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		slog.Info("API listening", "addr", srv.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
	}

	slog.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
