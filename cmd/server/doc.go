// Forestview - Decision Forest Training Browser
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/forestview

/*
Package main is the entry point for the Forestview server.

Forestview serves a read-only JSON API over a collection of decision-forest
training rows: the forest configuration, the trained trees, and per-epoch
evaluation results.

# Startup

 1. Configuration: Koanf v2 with defaults, config.yaml, and environment variables
 2. Logging: zerolog initialized from the logging section
 3. Store: badger opened on disk (STORE_PATH) or in memory (STORE_IN_MEMORY)
 4. Seeding: an empty store is filled with generated rows when SEED_MOCK_DATA=true
 5. Circuit breaker: gobreaker in front of store reads (STORE_BREAKER_ENABLED)
 6. Router: chi with CORS, rate limiting, and Prometheus instrumentation
 7. Supervisor: suture tree running value log GC and the HTTP server

# Endpoints

	GET /api/decisiontrees/                          all training rows
	GET /api/decisiontrees/{taskID}                  one training row
	GET /api/decisiontrees/{taskID}/trees/{treeID}   one tree of a row
	GET /api/health/live
	GET /api/health/ready
	GET /metrics

# Signal Handling

SIGINT and SIGTERM cancel the supervisor context. The HTTP server drains
in-flight requests for up to HTTP_TIMEOUT, then the store is closed.

# Example Usage

	export STORE_IN_MEMORY=true
	export SEED_MOCK_DATA=true
	export LOG_FORMAT=console
	./forestview

	curl -s localhost:8080/api/decisiontrees/ | jq '.[0]._id'
*/
package main
