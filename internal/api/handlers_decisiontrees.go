// Forestview - Decision Forest Training Browser
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/forestview

package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/forestview/internal/logging"
	"github.com/tomtom215/forestview/internal/models"
	"github.com/tomtom215/forestview/internal/store"
)

// ListTasks returns every training row in the collection.
//
// GET /api/decisiontrees/
func (h *Handler) ListTasks(w http.ResponseWriter, r *http.Request) {
	docs, err := h.rows.List(r.Context())
	if err != nil {
		h.storeError(w, r, err)
		return
	}

	respondDocument(w, r, newTaskDocuments(docs))
}

// GetTask returns one training row. Malformed and unknown identifiers are
// both reported as not found.
//
// GET /api/decisiontrees/{taskID}
func (h *Handler) GetTask(w http.ResponseWriter, r *http.Request) {
	taskID := chi.URLParam(r, "taskID")

	doc, ok := h.lookupTask(w, r, taskID)
	if !ok {
		return
	}

	respondDocument(w, r, newTaskDocument(doc))
}

// GetTree returns a single tree of a training row's forest. A tree index
// that is not a non-negative integer below the number of trees is reported
// as not found.
//
// GET /api/decisiontrees/{taskID}/trees/{treeID}
func (h *Handler) GetTree(w http.ResponseWriter, r *http.Request) {
	taskID := chi.URLParam(r, "taskID")
	treeID := chi.URLParam(r, "treeID")

	doc, ok := h.lookupTask(w, r, taskID)
	if !ok {
		return
	}

	index, ok := parseTreeIndex(treeID)
	if !ok {
		treeNotFound(w, r, treeID, taskID)
		return
	}

	tree, err := doc.Row.Forest.Tree(index)
	if err != nil {
		logging.Ctx(r.Context()).Debug().
			Str("task_id", taskID).
			Int("tree_index", index).
			Int("trees", doc.Row.Forest.Len()).
			Msg("Tree index out of range")
		treeNotFound(w, r, treeID, taskID)
		return
	}

	if e := logging.Ctx(r.Context()).Debug(); e.Enabled() {
		e.Str("task_id", taskID).
			Int("tree_index", index).
			Int("depth", tree.Depth()).
			Int("nodes", tree.NodeCount()).
			Msg("Serving tree")
	}
	respondDocument(w, r, tree)
}

// parseTreeIndex accepts only canonical decimal indexes: digits, no sign,
// and no leading zeros except for "0" itself. Each tree has one URL.
func parseTreeIndex(s string) (int, bool) {
	if s == "" || (len(s) > 1 && s[0] == '0') {
		return 0, false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}

// Options answers non-preflight OPTIONS requests with an empty success.
// CORS preflights are answered earlier by the CORS middleware.
func (h *Handler) Options(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Allow", "GET, OPTIONS")
	w.WriteHeader(http.StatusNoContent)
}

// lookupTask resolves taskID to a document, writing the error response and
// returning false when that is not possible.
func (h *Handler) lookupTask(w http.ResponseWriter, r *http.Request, taskID string) (*store.Document, bool) {
	id, err := store.ParseObjectID(taskID)
	if err != nil {
		taskNotFound(w, r, taskID)
		return nil, false
	}

	doc, err := h.rows.Get(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		taskNotFound(w, r, taskID)
		return nil, false
	}
	if err != nil {
		h.storeError(w, r, err)
		return nil, false
	}
	return doc, true
}

func taskNotFound(w http.ResponseWriter, r *http.Request, taskID string) {
	NewResponseWriter(w, r).NotFound(fmt.Sprintf("Task %s doesn't exist", taskID))
}

func treeNotFound(w http.ResponseWriter, r *http.Request, treeID, taskID string) {
	NewResponseWriter(w, r).NotFound(fmt.Sprintf("Tree %s doesn't exist in task %s", treeID, taskID))
}

// storeError maps a store failure to a response.
func (h *Handler) storeError(w http.ResponseWriter, r *http.Request, err error) {
	rw := NewResponseWriter(w, r)

	var decodeErr *models.DecodeError
	switch {
	case errors.Is(err, store.ErrUnavailable):
		logging.Ctx(r.Context()).Warn().Err(err).Msg("Store unavailable")
		rw.ServiceUnavailable("The document store is temporarily unavailable")
	case errors.Is(err, context.Canceled):
		// Client went away; nobody will read the response.
		logging.Ctx(r.Context()).Debug().Msg("Request canceled during store call")
	case errors.As(err, &decodeErr):
		logging.Ctx(r.Context()).Error().
			Str("path", decodeErr.Path).
			Str("error", sanitizeLogValue(err.Error())).
			Msg("Stored document failed to decode")
		rw.Error(http.StatusInternalServerError, ErrCodeDatabaseError, "A stored document is malformed")
	default:
		rw.DatabaseError(err)
	}
}
