// Forestview - Decision Forest Training Browser
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/forestview

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tomtom215/forestview/internal/middleware"
)

// compressionLevel is the gzip level passed to chi's Compress middleware.
const compressionLevel = 5

// rateLimitGroupDecisionTrees labels rate limit rejections on /api/decisiontrees.
const rateLimitGroupDecisionTrees = "decisiontrees"

// Router wires the handler into a chi route table.
type Router struct {
	handler       *Handler
	chiMiddleware *ChiMiddleware
}

// NewRouter creates a router. A nil middleware config uses DefaultChiMiddlewareConfig.
func NewRouter(handler *Handler, cfg *ChiMiddlewareConfig) *Router {
	return &Router{
		handler:       handler,
		chiMiddleware: NewChiMiddleware(cfg),
	}
}

// SetupChi builds the HTTP handler for all routes.
func (router *Router) SetupChi() http.Handler {
	r := chi.NewRouter()

	// ========================
	// Global Middleware Stack
	// ========================
	r.Use(middleware.RequestID)         // X-Request-ID plus logging context
	r.Use(chimiddleware.RealIP)         // Extract real IP from X-Forwarded-For
	r.Use(middleware.AccessLog)         // One log line per request
	r.Use(middleware.PrometheusMetrics) // Keyed by route pattern
	r.Use(Recoverer)                    // Panics become JSON 500s
	r.Use(router.chiMiddleware.CORS())  // Must be global to answer preflights
	r.Use(chimiddleware.Compress(compressionLevel, "application/json"))

	r.NotFound(notFoundHandler)
	r.MethodNotAllowed(methodNotAllowedHandler)

	// ========================
	// Health Endpoints
	// ========================
	r.Route("/api/health", func(r chi.Router) {
		r.Get("/live", router.handler.HealthLive)
		r.Get("/ready", router.handler.HealthReady)
	})

	// ========================
	// Decision Tree Endpoints
	// ========================
	r.Route("/api/decisiontrees", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimit(rateLimitGroupDecisionTrees))
		r.Use(chimiddleware.StripSlashes)

		r.Get("/", router.handler.ListTasks)
		r.Options("/", router.handler.Options)

		r.Get("/{taskID}", router.handler.GetTask)
		r.Options("/{taskID}", router.handler.Options)

		r.Get("/{taskID}/trees/{treeID}", router.handler.GetTree)
		r.Options("/{taskID}/trees/{treeID}", router.handler.Options)
	})

	// ========================
	// Prometheus Metrics
	// ========================
	r.Handle("/metrics", promhttp.Handler())

	return r
}
