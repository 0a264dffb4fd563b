// Forestview - Decision Forest Training Browser
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/forestview

package services

import (
	"context"
	"time"

	"github.com/tomtom215/forestview/internal/logging"
	"github.com/tomtom215/forestview/internal/metrics"
)

// ValueLogCollector is satisfied by *store.Store.
type ValueLogCollector interface {
	RunValueLogGC(discardRatio float64) (int, error)
}

// GC pass outcomes recorded in store_gc_runs_total.
const (
	GCResultRewritten = "rewritten"
	GCResultNoop      = "noop"
	GCResultError     = "error"
)

// StoreGCService periodically reclaims space in the store's value log.
//
// A failed pass is logged and counted but does not stop the service; the
// next tick simply tries again.
//
//	tree.AddDataService(services.NewStoreGCService(st, cfg.Store.GCInterval, cfg.Store.GCDiscardRatio))
type StoreGCService struct {
	collector    ValueLogCollector
	interval     time.Duration
	discardRatio float64
	name         string
}

// NewStoreGCService creates the GC service. A non-positive interval means 10m,
// and a discard ratio outside (0, 1) means 0.5.
func NewStoreGCService(collector ValueLogCollector, interval time.Duration, discardRatio float64) *StoreGCService {
	if interval <= 0 {
		interval = 10 * time.Minute
	}
	if discardRatio <= 0 || discardRatio >= 1 {
		discardRatio = 0.5
	}
	return &StoreGCService{
		collector:    collector,
		interval:     interval,
		discardRatio: discardRatio,
		name:         "store-gc",
	}
}

// Serve implements suture.Service. It blocks until ctx is canceled.
func (s *StoreGCService) Serve(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	logging.Debug().Dur("interval", s.interval).Float64("discard_ratio", s.discardRatio).Msg("Store GC started")

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			s.collect()
		}
	}
}

// collect runs one GC pass and returns the recorded outcome.
func (s *StoreGCService) collect() string {
	start := time.Now()
	rewritten, err := s.collector.RunValueLogGC(s.discardRatio)

	result := GCResultNoop
	switch {
	case err != nil:
		result = GCResultError
		logging.Error().Err(err).Msg("Store value log GC failed")
	case rewritten > 0:
		result = GCResultRewritten
		logging.Info().
			Int("rewritten", rewritten).
			Dur("duration", time.Since(start)).
			Msg("Store value log GC reclaimed space")
	}

	metrics.RecordStoreGC(result)
	return result
}

// String implements fmt.Stringer.
func (s *StoreGCService) String() string {
	return s.name
}
