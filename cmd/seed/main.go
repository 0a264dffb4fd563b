// Forestview - Decision Forest Training Browser
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/forestview

// Command seed clears the decisiontrees collection and fills it with randomly
// generated training rows.
//
// The store location comes from the usual configuration (config.yaml,
// STORE_PATH, STORE_IN_MEMORY). Flags size the generated data:
//
//	seed --num_rows 50 --num_trees 5 --height 5
//	seed --num_rows 10 --seed 42
//
// With --delete it removes the single row with that id and leaves the rest of
// the collection alone:
//
//	seed --delete 3f2b8c1e-5d4a-4e7b-9c6f-0a1b2c3d4e5f
//
// The server must not be running against the same store path; badger holds
// an exclusive directory lock.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tomtom215/forestview/internal/config"
	"github.com/tomtom215/forestview/internal/forestgen"
	"github.com/tomtom215/forestview/internal/logging"
	"github.com/tomtom215/forestview/internal/store"
)

// seedFlags holds the parsed command line.
type seedFlags struct {
	opts      forestgen.SeedOptions
	storePath string
	deleteID  store.ObjectID
}

func parseFlags(args []string, output io.Writer) (seedFlags, error) {
	var f seedFlags
	fs := flag.NewFlagSet("seed", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.IntVar(&f.opts.NumTrees, "num_trees", 5, "number of trees per forest")
	fs.IntVar(&f.opts.Height, "height", 5, "maximum height of each generated tree")
	fs.IntVar(&f.opts.Rows, "num_rows", 50, "number of training rows to insert")
	fs.Uint64Var(&f.opts.Seed, "seed", uint64(time.Now().UnixNano()), "random seed")
	fs.StringVar(&f.storePath, "store_path", "", "badger directory (overrides STORE_PATH)")
	fs.Func("delete", "remove the row with this id instead of reseeding", func(s string) error {
		return f.deleteID.UnmarshalText([]byte(s))
	})
	if err := fs.Parse(args); err != nil {
		return seedFlags{}, err
	}
	if fs.NArg() > 0 {
		return seedFlags{}, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	if err := f.opts.Validate(); err != nil {
		return seedFlags{}, err
	}
	return f, nil
}

func main() {
	f, err := parseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

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
	if f.storePath != "" {
		cfg.Store.Path = f.storePath
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg.Store, f); err != nil {
		logging.Fatal().Err(err).Msg("Seeding failed")
	}
}

func run(ctx context.Context, cfg config.StoreConfig, f seedFlags) error {
	st, err := store.Open(store.Options{
		Path:       cfg.Path,
		InMemory:   cfg.InMemory,
		SyncWrites: cfg.SyncWrites,
	})
	if err != nil {
		return err
	}
	defer func() {
		if err := st.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing store")
		}
	}()

	if !f.deleteID.IsZero() {
		if err := deleteRow(ctx, st, f.deleteID); err != nil {
			return err
		}
		logging.Info().
			Stringer("id", f.deleteID).
			Str("store_path", cfg.Path).
			Msg("Deleted training row")
		return nil
	}

	opts := f.opts
	removed, err := reseed(ctx, st, opts)
	if err != nil {
		return err
	}
	logging.Info().
		Int("removed", removed).
		Int("inserted", opts.Rows).
		Int("num_trees", opts.NumTrees).
		Int("height", opts.Height).
		Uint64("seed", opts.Seed).
		Str("store_path", cfg.Path).
		Msg("Seeded decisiontrees collection")
	return nil
}

// reseed empties st and inserts freshly generated rows. It returns the
// number of documents removed.
func reseed(ctx context.Context, st *store.Store, opts forestgen.SeedOptions) (int, error) {
	removed, err := st.DeleteAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("clear collection: %w", err)
	}
	if _, err := forestgen.Seed(ctx, st, opts); err != nil {
		return removed, err
	}
	return removed, nil
}

// deleteRow removes the document with the given id.
func deleteRow(ctx context.Context, st *store.Store, id store.ObjectID) error {
	if err := st.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete %s: %w", id, err)
	}
	return nil
}
