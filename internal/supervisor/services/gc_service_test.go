// Forestview - Decision Forest Training Browser
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/forestview

package services

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/thejerf/suture/v4"

	"github.com/tomtom215/forestview/internal/metrics"
	"github.com/tomtom215/forestview/internal/store"
)

var (
	_ suture.Service    = (*StoreGCService)(nil)
	_ ValueLogCollector = (*store.Store)(nil)
)

type fakeCollector struct {
	rewritten int
	err       error
	calls     atomic.Int32
	ratio     atomic.Value
}

func (f *fakeCollector) RunValueLogGC(discardRatio float64) (int, error) {
	f.calls.Add(1)
	f.ratio.Store(discardRatio)
	return f.rewritten, f.err
}

func TestNewStoreGCService_Defaults(t *testing.T) {
	t.Parallel()

	svc := NewStoreGCService(&fakeCollector{}, 0, 1.5)
	if svc.interval != 10*time.Minute {
		t.Errorf("interval = %v, want 10m", svc.interval)
	}
	if svc.discardRatio != 0.5 {
		t.Errorf("discardRatio = %v, want 0.5", svc.discardRatio)
	}
	if svc.String() != "store-gc" {
		t.Errorf("String() = %q, want store-gc", svc.String())
	}

	svc = NewStoreGCService(&fakeCollector{}, time.Second, 0.7)
	if svc.interval != time.Second || svc.discardRatio != 0.7 {
		t.Errorf("got interval=%v ratio=%v, want 1s and 0.7", svc.interval, svc.discardRatio)
	}
}

func TestStoreGCService_Collect(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		collector *fakeCollector
		want      string
	}{
		{"rewritten", &fakeCollector{rewritten: 2}, GCResultRewritten},
		{"nothing to rewrite", &fakeCollector{}, GCResultNoop},
		{"failure", &fakeCollector{err: errors.New("disk full")}, GCResultError},
		{"closed store", &fakeCollector{err: store.ErrClosed}, GCResultError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			counter := metrics.StoreGCRuns.WithLabelValues(tt.want)
			before := testutil.ToFloat64(counter)

			svc := NewStoreGCService(tt.collector, time.Minute, 0.25)
			if got := svc.collect(); got != tt.want {
				t.Errorf("collect() = %q, want %q", got, tt.want)
			}
			if got := tt.collector.ratio.Load(); got != 0.25 {
				t.Errorf("discard ratio passed = %v, want 0.25", got)
			}
			if delta := testutil.ToFloat64(counter) - before; delta < 1 {
				t.Errorf("store_gc_runs_total{result=%q} delta = %v, want >= 1", tt.want, delta)
			}
		})
	}
}

func TestStoreGCService_ServeTicksUntilCanceled(t *testing.T) {
	t.Parallel()

	collector := &fakeCollector{}
	svc := NewStoreGCService(collector, 10*time.Millisecond, 0.5)

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- svc.Serve(ctx) }()

	deadline := time.After(2 * time.Second)
	for collector.calls.Load() < 2 {
		select {
		case <-deadline:
			t.Fatalf("GC ran %d times, want at least 2", collector.calls.Load())
		case <-time.After(5 * time.Millisecond):
		}
	}
	cancel()

	select {
	case err := <-errCh:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Serve() = %v, want context.Canceled", err)
		}
	case <-time.After(time.Second):
		t.Fatal("Serve did not return after cancel")
	}
}

func TestStoreGCService_ErrorsDoNotStopService(t *testing.T) {
	t.Parallel()

	collector := &fakeCollector{err: errors.New("transient")}
	svc := NewStoreGCService(collector, 5*time.Millisecond, 0.5)

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	if err := svc.Serve(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Serve() = %v, want context.DeadlineExceeded", err)
	}
	if collector.calls.Load() < 2 {
		t.Errorf("GC ran %d times, want repeated attempts after failures", collector.calls.Load())
	}
}

func TestStoreGCService_InMemoryStore(t *testing.T) {
	t.Parallel()

	st, err := store.Open(store.Options{InMemory: true})
	if err != nil {
		t.Fatalf("store.Open() error = %v", err)
	}
	t.Cleanup(func() { _ = st.Close() })

	if got := NewStoreGCService(st, time.Minute, 0.5).collect(); got != GCResultNoop {
		t.Errorf("collect() on in-memory store = %q, want %q", got, GCResultNoop)
	}
}
