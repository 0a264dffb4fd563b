// Forestview - Decision Forest Training Browser
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/forestview

package logging

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type requestScopeKey struct{}

// requestScope is what the request middleware attaches to a request context.
type requestScope struct {
	requestID     string
	correlationID string
	logger        zerolog.Logger
}

// NewCorrelationID returns a short random ID (the first 8 characters of a UUID).
func NewCorrelationID() string {
	return uuid.NewString()[:8]
}

// WithRequest returns a context carrying requestID, a fresh correlation ID,
// and a derived logger that stamps both on every line written through Ctx.
// The derived logger is taken from the global logger at call time.
func WithRequest(ctx context.Context, requestID string) context.Context {
	scope := &requestScope{
		requestID:     requestID,
		correlationID: NewCorrelationID(),
	}
	scope.logger = current.Load().With().
		Str("request_id", scope.requestID).
		Str("correlation_id", scope.correlationID).
		Logger()
	return context.WithValue(ctx, requestScopeKey{}, scope)
}

func scopeFrom(ctx context.Context) *requestScope {
	scope, _ := ctx.Value(requestScopeKey{}).(*requestScope)
	return scope
}

// RequestIDFromContext returns the request ID, or "" outside a request.
func RequestIDFromContext(ctx context.Context) string {
	if scope := scopeFrom(ctx); scope != nil {
		return scope.requestID
	}
	return ""
}

// CorrelationIDFromContext returns the correlation ID, or "" outside a request.
func CorrelationIDFromContext(ctx context.Context) string {
	if scope := scopeFrom(ctx); scope != nil {
		return scope.correlationID
	}
	return ""
}

// Ctx returns the request logger carried by ctx, falling back to the global
// logger.
//
//	logging.Ctx(r.Context()).Warn().Str("task_id", id).Msg("Task lookup failed")
func Ctx(ctx context.Context) *zerolog.Logger {
	if scope := scopeFrom(ctx); scope != nil {
		return &scope.logger
	}
	l := Logger()
	return &l
}
