// Forestview - Decision Forest Training Browser
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/forestview

/*
Package api provides the read-only HTTP API over the decision tree collection.

# Routes

	GET     /api/decisiontrees/                          every training row
	GET     /api/decisiontrees/{taskID}                  one training row
	GET     /api/decisiontrees/{taskID}/trees/{treeID}   one tree of a row's forest
	OPTIONS (each of the above)                          204, empty body
	GET     /api/health/live                             liveness
	GET     /api/health/ready                            readiness (pings the store)
	GET     /metrics                                     Prometheus exposition

The list route also answers without the trailing slash, and detail routes
tolerate one.

# Responses

Successful responses are the documents themselves, with no envelope, so the
same unchanged document always produces the same bytes (and ETag). Each
training row carries its identifier as a string in "_id":

	{"_id":"01920c4e-...","forestConfig":{...},"forest":{"trees":[...]}}

Errors use a JSON envelope:

	{"success":false,"error":{"code":"NOT_FOUND","message":"Task 0 doesn't exist","request_id":"..."},"meta":{...}}

Error mapping:
  - malformed or unknown task ID: 404 NOT_FOUND
  - tree index not an integer in [0, len(trees)): 404 NOT_FOUND
  - store failure: 500 DATABASE_ERROR
  - store circuit breaker open: 503 SERVICE_UNAVAILABLE
  - handler panic: 500 INTERNAL_ERROR
  - unknown route / wrong method: 404 / 405

# Middleware

Request ID, real IP, access log, Prometheus, panic recovery, CORS (go-chi/cors)
and gzip apply globally; the decision tree routes are also rate limited per
client IP (go-chi/httprate).

# Usage

	handler := api.NewHandler(reader, pinger)
	router := api.NewRouter(handler, &api.ChiMiddlewareConfig{...})
	srv := &http.Server{Addr: ":8080", Handler: router.SetupChi()}
*/
package api
