// Forestview - Decision Forest Training Browser
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/forestview

package store

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"

	"github.com/tomtom215/forestview/internal/logging"
	"github.com/tomtom215/forestview/internal/metrics"
	"github.com/tomtom215/forestview/internal/models"
)

// collectionPrefix namespaces the training rows inside the badger keyspace.
const collectionPrefix = "decisiontrees:"

var (
	// ErrNotFound is returned when no document has the requested identifier.
	ErrNotFound = errors.New("document not found")

	// ErrInvalidID is returned when an identifier string is not a valid ObjectID.
	ErrInvalidID = errors.New("invalid object id")

	// ErrUnavailable is returned when the store is failing fast behind its
	// circuit breaker.
	ErrUnavailable = errors.New("store unavailable")

	// ErrClosed is returned for operations on a closed store.
	ErrClosed = errors.New("store closed")
)

// Document is a stored training row together with its identifier.
type Document struct {
	ID  ObjectID
	Row *models.TrainingRow
}

// Options configures Open.
type Options struct {
	// Path is the badger directory. Ignored when InMemory is set.
	Path string

	// InMemory keeps all data in memory. Used by tests and demo runs.
	InMemory bool

	// SyncWrites fsyncs every write.
	SyncWrites bool
}

// Store is the badger-backed decisiontrees collection.
type Store struct {
	db       *badger.DB
	inMemory bool
	closed   atomic.Bool
}

// Open opens (or creates) the collection.
func Open(opts Options) (*Store, error) {
	var bopts badger.Options
	if opts.InMemory {
		bopts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		if opts.Path == "" {
			return nil, errors.New("store path is required unless running in memory")
		}
		bopts = badger.DefaultOptions(opts.Path)
	}
	bopts.SyncWrites = opts.SyncWrites
	bopts.Logger = newBadgerLogger(logging.WithComponent("badger"))

	db, err := badger.Open(bopts)
	if err != nil {
		return nil, fmt.Errorf("open BadgerDB: %w", err)
	}

	logging.Info().
		Str("path", opts.Path).
		Bool("in_memory", opts.InMemory).
		Bool("sync_writes", opts.SyncWrites).
		Msg("Store opened")

	return &Store{db: db, inMemory: opts.InMemory}, nil
}

// InMemory reports whether the store keeps no files.
func (s *Store) InMemory() bool {
	return s.inMemory
}

func (s *Store) check(ctx context.Context) error {
	if s.closed.Load() {
		return ErrClosed
	}
	return ctx.Err()
}

// observe records the operation, treating lookups that found nothing as
// successful calls.
func observe(op string, start time.Time, err error) {
	fault := err
	if errors.Is(err, ErrNotFound) || errors.Is(err, context.Canceled) {
		fault = nil
	}
	metrics.RecordStoreOperation(op, time.Since(start), fault)
}

// Insert validates row, assigns it a new identifier and persists it.
func (s *Store) Insert(ctx context.Context, row *models.TrainingRow) (id ObjectID, err error) {
	start := time.Now()
	defer func() { observe("insert", start, err) }()

	if err := s.check(ctx); err != nil {
		return NilObjectID, err
	}
	if err := row.Validate(); err != nil {
		return NilObjectID, fmt.Errorf("insert: %w", err)
	}

	data, err := json.Marshal(row)
	if err != nil {
		return NilObjectID, fmt.Errorf("marshal training row: %w", err)
	}

	id, err = NewObjectID()
	if err != nil {
		return NilObjectID, err
	}

	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(id.key(), data)
	})
	if err != nil {
		return NilObjectID, fmt.Errorf("set training row: %w", err)
	}
	return id, nil
}

// Get returns the document with the given identifier, or ErrNotFound.
func (s *Store) Get(ctx context.Context, id ObjectID) (doc *Document, err error) {
	start := time.Now()
	defer func() { observe("get", start, err) }()

	if err := s.check(ctx); err != nil {
		return nil, err
	}

	var row *models.TrainingRow
	err = s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(id.key())
		if errors.Is(err, badger.ErrKeyNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return fmt.Errorf("get training row: %w", err)
		}
		return item.Value(func(val []byte) error {
			decoded, derr := models.Decode(val)
			if derr != nil {
				return fmt.Errorf("document %s: %w", id, derr)
			}
			row = decoded
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return &Document{ID: id, Row: row}, nil
}

// List returns every document in key order, which for UUIDv7 identifiers is
// insertion order. An empty collection yields an empty, non-nil slice.
func (s *Store) List(ctx context.Context) (docs []Document, err error) {
	start := time.Now()
	defer func() { observe("list", start, err) }()

	if err := s.check(ctx); err != nil {
		return nil, err
	}

	docs = make([]Document, 0)
	err = s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = true
		opts.Prefix = []byte(collectionPrefix)
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			if err := ctx.Err(); err != nil {
				return err
			}
			item := it.Item()
			id, err := idFromKey(item.Key())
			if err != nil {
				return err
			}
			err = item.Value(func(val []byte) error {
				row, derr := models.Decode(val)
				if derr != nil {
					return fmt.Errorf("document %s: %w", id, derr)
				}
				docs = append(docs, Document{ID: id, Row: row})
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return docs, nil
}

// Count returns the number of documents and refreshes the store_documents gauge.
func (s *Store) Count(ctx context.Context) (n int, err error) {
	start := time.Now()
	defer func() { observe("count", start, err) }()

	if err := s.check(ctx); err != nil {
		return 0, err
	}

	err = s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		opts.Prefix = []byte(collectionPrefix)
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			n++
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("count training rows: %w", err)
	}
	metrics.StoreDocuments.Set(float64(n))
	return n, nil
}

// Delete removes one document. Deleting an absent identifier returns ErrNotFound.
func (s *Store) Delete(ctx context.Context, id ObjectID) (err error) {
	start := time.Now()
	defer func() { observe("delete", start, err) }()

	if err := s.check(ctx); err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		if _, err := txn.Get(id.key()); errors.Is(err, badger.ErrKeyNotFound) {
			return ErrNotFound
		} else if err != nil {
			return fmt.Errorf("get training row: %w", err)
		}
		if err := txn.Delete(id.key()); err != nil {
			return fmt.Errorf("delete training row: %w", err)
		}
		return nil
	})
}

// DeleteAll clears the collection and returns how many documents it held.
func (s *Store) DeleteAll(ctx context.Context) (n int, err error) {
	start := time.Now()
	defer func() { observe("delete_all", start, err) }()

	n, err = s.Count(ctx)
	if err != nil {
		return 0, err
	}
	if err := s.db.DropPrefix([]byte(collectionPrefix)); err != nil {
		return 0, fmt.Errorf("drop collection: %w", err)
	}
	metrics.StoreDocuments.Set(0)
	return n, nil
}

// Ping reports whether the store can serve reads.
func (s *Store) Ping(ctx context.Context) error {
	if err := s.check(ctx); err != nil {
		return err
	}
	if s.db.IsClosed() {
		return ErrClosed
	}
	return s.db.View(func(_ *badger.Txn) error { return nil })
}

// RunValueLogGC runs value log GC passes until badger reports nothing left
// to rewrite. It returns the number of rewritten files.
func (s *Store) RunValueLogGC(discardRatio float64) (int, error) {
	if s.closed.Load() {
		return 0, ErrClosed
	}
	if s.inMemory {
		return 0, nil
	}

	rewritten := 0
	for {
		err := s.db.RunValueLogGC(discardRatio)
		switch {
		case errors.Is(err, badger.ErrNoRewrite), errors.Is(err, badger.ErrRejected):
			return rewritten, nil
		case err != nil:
			return rewritten, fmt.Errorf("run value log GC: %w", err)
		}
		rewritten++
	}
}

// Close closes the underlying database. It is safe to call more than once.
func (s *Store) Close() error {
	if !s.closed.CompareAndSwap(false, true) {
		return nil
	}
	if err := s.db.Close(); err != nil {
		return fmt.Errorf("close BadgerDB: %w", err)
	}
	logging.Info().Msg("Store closed")
	return nil
}
