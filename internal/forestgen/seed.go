// Forestview - Decision Forest Training Browser
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/forestview

package forestgen

import (
	"context"
	"errors"
	"fmt"

	"github.com/tomtom215/forestview/internal/logging"
	"github.com/tomtom215/forestview/internal/metrics"
	"github.com/tomtom215/forestview/internal/models"
	"github.com/tomtom215/forestview/internal/store"
)

// Inserter is the write side the seeder needs.
type Inserter interface {
	Insert(ctx context.Context, row *models.TrainingRow) (store.ObjectID, error)
}

// SeedOptions sizes a seeding run.
type SeedOptions struct {
	Rows     int
	NumTrees int
	Height   int
	Seed     uint64
}

// Validate checks the sizes are usable.
func (o SeedOptions) Validate() error {
	var errs []error
	if o.Rows < 0 {
		errs = append(errs, fmt.Errorf("rows must be >= 0, got %d", o.Rows))
	}
	if o.NumTrees < 0 {
		errs = append(errs, fmt.Errorf("num_trees must be >= 0, got %d", o.NumTrees))
	}
	if o.Height < 0 || o.Height > 20 {
		errs = append(errs, fmt.Errorf("height must be between 0 and 20, got %d", o.Height))
	}
	return errors.Join(errs...)
}

// Seed inserts opts.Rows random rows and returns their identifiers in
// insertion order.
func Seed(ctx context.Context, dst Inserter, opts SeedOptions) ([]store.ObjectID, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid seed options: %w", err)
	}

	gen := New(opts.Seed)
	ids := make([]store.ObjectID, 0, opts.Rows)
	for i := 0; i < opts.Rows; i++ {
		id, err := dst.Insert(ctx, gen.Row(opts.Height, opts.NumTrees))
		if err != nil {
			return ids, fmt.Errorf("insert row %d: %w", i, err)
		}
		metrics.SeedRowsInserted.Inc()
		ids = append(ids, id)
	}

	logging.Ctx(ctx).Info().
		Int("rows", opts.Rows).
		Int("num_trees", opts.NumTrees).
		Int("height", opts.Height).
		Uint64("seed", opts.Seed).
		Msg("Seeded random training rows")
	return ids, nil
}
