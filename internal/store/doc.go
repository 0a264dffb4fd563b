// Forestview - Decision Forest Training Browser
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/forestview

// Package store persists training rows in an embedded BadgerDB.
//
// All rows live in a single "decisiontrees" collection. Each key is the
// collection prefix followed by the 16 raw bytes of the row's ObjectID and
// each value is the row encoded as JSON. ObjectIDs are UUIDv7, so a prefix
// scan returns rows in insertion order and listing is deterministic for a
// fixed collection.
//
// The HTTP layer only reads. Writes (Insert, Delete, DeleteAll) exist for the
// seeder and for test setup and teardown.
//
//	st, err := store.Open(store.Options{Path: "/data/forestview"})
//	id, err := st.Insert(ctx, row)
//	doc, err := st.Get(ctx, id)
//	if errors.Is(err, store.ErrNotFound) { ... }
//
// Guarded puts a gobreaker circuit breaker in front of the read side so that a
// failing store answers with ErrUnavailable instead of queueing requests.
package store
