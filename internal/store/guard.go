// Forestview - Decision Forest Training Browser
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/forestview

package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/forestview/internal/logging"
	"github.com/tomtom215/forestview/internal/metrics"
	"github.com/tomtom215/forestview/internal/models"
)

// Reader is the read side of the collection.
type Reader interface {
	Get(ctx context.Context, id ObjectID) (*Document, error)
	List(ctx context.Context) ([]Document, error)
	Ping(ctx context.Context) error
}

// BreakerConfig configures the circuit breaker in front of a Reader.
type BreakerConfig struct {
	// Name identifies the breaker in logs and metrics.
	Name string

	// FailureThreshold is the number of consecutive store faults before opening.
	FailureThreshold uint32

	// Timeout is how long the breaker stays open before probing again.
	Timeout time.Duration

	// MaxRequests is the number of probes allowed while half-open.
	MaxRequests uint32
}

// Guarded wraps a Reader in a circuit breaker. Lookups that simply find
// nothing do not count against the breaker; only store faults do. While the
// breaker is open every call fails immediately with ErrUnavailable.
type Guarded struct {
	reader Reader
	cb     *gobreaker.CircuitBreaker[any]
}

// NewGuarded wraps reader.
func NewGuarded(reader Reader, cfg BreakerConfig) *Guarded {
	if cfg.Name == "" {
		cfg.Name = "store"
	}
	if cfg.FailureThreshold == 0 {
		cfg.FailureThreshold = 5
	}
	if cfg.MaxRequests == 0 {
		cfg.MaxRequests = 1
	}

	settings := gobreaker.Settings{
		Name:        cfg.Name,
		MaxRequests: cfg.MaxRequests,
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= cfg.FailureThreshold
		},
		IsSuccessful: isBreakerSuccess,
		OnStateChange: func(name string, from, to gobreaker.State) {
			metrics.RecordCircuitBreakerTransition(from.String(), to.String())
			logging.Warn().
				Str("breaker", name).
				Str("from", from.String()).
				Str("to", to.String()).
				Msg("Store circuit breaker state changed")
		},
	}

	return &Guarded{
		reader: reader,
		cb:     gobreaker.NewCircuitBreaker[any](settings),
	}
}

// isBreakerSuccess reports outcomes that say nothing about store health.
func isBreakerSuccess(err error) bool {
	if err == nil {
		return true
	}
	var de *models.DecodeError
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrInvalidID) ||
		errors.Is(err, context.Canceled) ||
		errors.As(err, &de)
}

// guard runs fn through the breaker and converts breaker rejections to
// ErrUnavailable.
func guard[T any](cb *gobreaker.CircuitBreaker[any], fn func() (T, error)) (T, error) {
	var zero T
	res, err := cb.Execute(func() (any, error) {
		return fn()
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return zero, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if err != nil {
		return zero, err
	}
	return res.(T), nil
}

// Get implements Reader.
func (g *Guarded) Get(ctx context.Context, id ObjectID) (*Document, error) {
	return guard(g.cb, func() (*Document, error) {
		return g.reader.Get(ctx, id)
	})
}

// List implements Reader.
func (g *Guarded) List(ctx context.Context) ([]Document, error) {
	return guard(g.cb, func() ([]Document, error) {
		return g.reader.List(ctx)
	})
}

// Ping reports ErrUnavailable while the breaker is open and otherwise pings
// the underlying reader without counting the result.
func (g *Guarded) Ping(ctx context.Context) error {
	if g.cb.State() == gobreaker.StateOpen {
		return ErrUnavailable
	}
	return g.reader.Ping(ctx)
}

// State returns the breaker state name: "closed", "half-open" or "open".
func (g *Guarded) State() string {
	return g.cb.State().String()
}
