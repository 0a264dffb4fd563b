// Forestview - Decision Forest Training Browser
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/forestview

package api

import (
	"context"
	"time"

	"github.com/tomtom215/forestview/internal/models"
	"github.com/tomtom215/forestview/internal/store"
)

// TrainingRowReader is the read side of the training row collection.
// *store.Store and *store.Guarded both satisfy it.
type TrainingRowReader interface {
	Get(ctx context.Context, id store.ObjectID) (*store.Document, error)
	List(ctx context.Context) ([]store.Document, error)
}

// Pinger reports whether the backing store can serve requests.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Handler serves the decision tree and health endpoints.
type Handler struct {
	rows      TrainingRowReader
	pinger    Pinger
	startTime time.Time
}

// NewHandler creates a handler over rows. pinger may be nil, in which case
// readiness always reports not ready.
func NewHandler(rows TrainingRowReader, pinger Pinger) *Handler {
	return &Handler{
		rows:      rows,
		pinger:    pinger,
		startTime: time.Now(),
	}
}

// taskDocument is a training row as sent to clients: the stored row with
// its identifier rendered as a string under "_id", ahead of the row fields.
type taskDocument struct {
	ID string `json:"_id"`
	*models.TrainingRow
}

func newTaskDocument(doc *store.Document) taskDocument {
	return taskDocument{ID: doc.ID.String(), TrainingRow: doc.Row}
}

func newTaskDocuments(docs []store.Document) []taskDocument {
	out := make([]taskDocument, 0, len(docs))
	for i := range docs {
		out = append(out, newTaskDocument(&docs[i]))
	}
	return out
}
