// Forestview - Decision Forest Training Browser
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/forestview

// Package metrics holds the Prometheus collectors for Forestview.
//
// Collectors are registered on the default registry through promauto and are
// exposed by the API at /metrics. Two families matter operationally:
//
//	store_operation_duration_seconds{operation}   histogram per store call
//	store_operation_errors_total{operation}       store faults (not-found is not a fault)
//	api_requests_total{method,endpoint,status_code}
//	api_request_duration_seconds{method,endpoint}
//
// The endpoint label is the chi route pattern (for example
// "/api/decisiontrees/{taskID}") so that task identifiers never become
// label values.
package metrics
