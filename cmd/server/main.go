// Forestview - Decision Forest Training Browser
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/forestview

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/tomtom215/forestview/internal/api"
	"github.com/tomtom215/forestview/internal/config"
	"github.com/tomtom215/forestview/internal/forestgen"
	"github.com/tomtom215/forestview/internal/logging"
	"github.com/tomtom215/forestview/internal/metrics"
	"github.com/tomtom215/forestview/internal/store"
	"github.com/tomtom215/forestview/internal/supervisor"
	"github.com/tomtom215/forestview/internal/supervisor/services"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		Caller:    cfg.Logging.Caller,
		Timestamp: true,
	})
	metrics.SetAppInfo(version)

	logging.Info().
		Str("version", version).
		Str("environment", cfg.Server.Environment).
		Str("store_path", cfg.Store.Path).
		Bool("store_in_memory", cfg.Store.InMemory).
		Msg("Starting Forestview")

	if err := run(cfg); err != nil {
		logging.Fatal().Err(err).Msg("Forestview stopped with error")
	}
	logging.Info().Msg("Application stopped gracefully")
}

func run(cfg *config.Config) error {
	st, err := store.Open(store.Options{
		Path:       cfg.Store.Path,
		InMemory:   cfg.Store.InMemory,
		SyncWrites: cfg.Store.SyncWrites,
	})
	if err != nil {
		return err
	}
	defer func() {
		if err := st.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing store")
		}
	}()
	logging.Info().Msg("Store opened")

	if cfg.Store.SeedMockData {
		if err := seedIfEmpty(context.Background(), st, cfg.Store); err != nil {
			return err
		}
	}

	var reader store.Reader = st
	if cfg.Breaker.Enabled {
		reader = store.NewGuarded(st, store.BreakerConfig{
			FailureThreshold: cfg.Breaker.FailureThreshold,
			Timeout:          cfg.Breaker.Timeout,
			MaxRequests:      cfg.Breaker.MaxRequests,
		})
		logging.Info().
			Uint32("failure_threshold", cfg.Breaker.FailureThreshold).
			Dur("timeout", cfg.Breaker.Timeout).
			Msg("Store circuit breaker enabled")
	}

	if cfg.HasWildcardCORS() && cfg.IsProduction() {
		logging.Warn().Msg("CORS allows any origin in production")
	}

	mw := api.DefaultChiMiddlewareConfig()
	mw.CORSAllowedOrigins = cfg.Security.CORSOrigins
	mw.RateLimitRequests = cfg.Security.RateLimitReqs
	mw.RateLimitWindow = cfg.Security.RateLimitWindow
	mw.RateLimitDisabled = cfg.Security.RateLimitDisabled

	router := api.NewRouter(api.NewHandler(reader, reader), mw)
	server := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      router.SetupChi(),
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
	}

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	if err != nil {
		return err
	}
	if !cfg.Store.InMemory {
		tree.AddDataService(services.NewStoreGCService(st, cfg.Store.GCInterval, cfg.Store.GCDiscardRatio))
	}
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.Addr(), cfg.Server.Timeout))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logging.Info().Str("addr", server.Addr).Msg("Starting supervisor tree")
	if err := tree.Serve(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logging.Error().Err(err).Msg("Supervisor tree error")
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	for _, svc := range unstopped {
		logging.Warn().Str("service", svc.Name).Msg("Service failed to stop within timeout")
	}
	return nil
}

// seedIfEmpty fills an empty store with generated rows. A store that already
// holds documents is left alone.
func seedIfEmpty(ctx context.Context, st *store.Store, cfg config.StoreConfig) error {
	n, err := st.Count(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		logging.Info().Int("rows", n).Msg("Store already populated, skipping mock data")
		return nil
	}

	ids, err := forestgen.Seed(ctx, st, forestgen.SeedOptions{
		Rows:     cfg.SeedRows,
		NumTrees: cfg.SeedTrees,
		Height:   cfg.SeedHeight,
		Seed:     uint64(os.Getpid()),
	})
	if err != nil {
		return err
	}
	logging.Info().Int("rows", len(ids)).Msg("Seeded store with mock data")
	return nil
}
