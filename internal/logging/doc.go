// Forestview - Decision Forest Training Browser
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/forestview

// Package logging provides centralized zerolog-based structured logging for Forestview.
//
// A single global logger is configured once at startup from the LOG_LEVEL,
// LOG_FORMAT and LOG_CALLER settings in the config package. JSON output is the
// default; console output is meant for local development.
//
// # Quick Start
//
//	logging.Init(logging.Config{Level: "info", Format: "json"})
//
//	logging.Info().Str("path", cfg.Store.Path).Msg("Store opened")
//	logging.Error().Err(err).Msg("Seeding failed")
//
// # Request Context
//
// The API middleware stores the request ID in the request context. Handlers
// and the store log through Ctx so that every line for one request carries
// the same request_id:
//
//	logging.Ctx(r.Context()).Warn().Str("task_id", id).Msg("Task lookup failed")
//
// # slog Bridge
//
// The supervisor tree uses sutureslog, which expects a *slog.Logger.
// NewSlogLogger returns one that writes into the global zerolog logger.
//
// Always terminate log chains with .Msg() or .Send(); an unterminated event
// is never written.
package logging
