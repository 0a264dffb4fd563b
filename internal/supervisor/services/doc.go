// Forestview - Decision Forest Training Browser
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/forestview

/*
Package services provides suture.Service wrappers for Forestview components.

Each wrapper implements the suture.Service interface and fmt.Stringer:

	type Service interface {
	    Serve(ctx context.Context) error
	}

Serve blocks until its context is canceled and then returns ctx.Err(). A
non-context error tells the supervisor the service failed and should be
restarted with backoff.

# Available Services

HTTPServerService wraps *http.Server. It binds the listen address on every
start, so bind errors go straight back to the supervisor, then serves in a
goroutine. Cancellation triggers Shutdown with a bounded drain timeout. A
server closed outside that path ends the service with suture.ErrDoNotRestart.

StoreGCService runs badger value log GC on a ticker. Failed passes are logged
and counted in store_value_log_gc_runs_total but never stop the service.

# Usage

	tree.AddDataService(services.NewStoreGCService(st, cfg.Store.GCInterval, cfg.Store.GCDiscardRatio))
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.Addr(), cfg.Server.Timeout))
*/
package services
