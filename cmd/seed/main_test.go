// Forestview - Decision Forest Training Browser
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/forestview

package main

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/tomtom215/forestview/internal/forestgen"
	"github.com/tomtom215/forestview/internal/store"
)

func TestParseFlags(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		args    []string
		want    forestgen.SeedOptions
		path    string
		wantErr bool
	}{
		{
			name: "defaults",
			args: []string{"--seed", "1"},
			want: forestgen.SeedOptions{Rows: 50, NumTrees: 5, Height: 5, Seed: 1},
		},
		{
			name: "overrides",
			args: []string{"--num_rows", "3", "--num_trees", "2", "--height", "1", "--seed", "9", "--store_path", "/tmp/x"},
			want: forestgen.SeedOptions{Rows: 3, NumTrees: 2, Height: 1, Seed: 9},
			path: "/tmp/x",
		},
		{name: "negative rows", args: []string{"--num_rows", "-1"}, wantErr: true},
		{name: "unknown flag", args: []string{"--trees", "3"}, wantErr: true},
		{name: "stray argument", args: []string{"extra"}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := parseFlags(tt.args, io.Discard)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseFlags() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if got.opts != tt.want {
				t.Errorf("opts = %+v, want %+v", got.opts, tt.want)
			}
			if got.storePath != tt.path {
				t.Errorf("storePath = %q, want %q", got.storePath, tt.path)
			}
			if !got.deleteID.IsZero() {
				t.Errorf("deleteID = %s, want zero", got.deleteID)
			}
		})
	}
}

func TestParseFlags_Delete(t *testing.T) {
	t.Parallel()

	const id = "0190b6d2-7c1a-7e3f-8a4b-5c6d7e8f9a0b"
	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{name: "canonical id", value: id},
		{name: "uppercase", value: "0190B6D2-7C1A-7E3F-8A4B-5C6D7E8F9A0B", wantErr: true},
		{name: "nil id", value: "00000000-0000-0000-0000-000000000000", wantErr: true},
		{name: "garbage", value: "row-1", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := parseFlags([]string{"--delete", tt.value, "--seed", "1"}, io.Discard)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseFlags() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if got.deleteID.String() != id {
				t.Errorf("deleteID = %s, want %s", got.deleteID, id)
			}
		})
	}
}

func TestDeleteRow(t *testing.T) {
	t.Parallel()

	st, err := store.Open(store.Options{InMemory: true})
	if err != nil {
		t.Fatalf("store.Open() error = %v", err)
	}
	t.Cleanup(func() { _ = st.Close() })
	ctx := context.Background()

	if _, err := reseed(ctx, st, forestgen.SeedOptions{Rows: 3, NumTrees: 1, Height: 1, Seed: 7}); err != nil {
		t.Fatalf("reseed() error = %v", err)
	}
	docs, err := st.List(ctx)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	target := docs[1].ID

	if err := deleteRow(ctx, st, target); err != nil {
		t.Fatalf("deleteRow() error = %v", err)
	}
	if n, err := st.Count(ctx); err != nil || n != 2 {
		t.Errorf("Count() = %d, %v; want 2, nil", n, err)
	}
	if _, err := st.Get(ctx, target); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("Get(deleted) error = %v, want ErrNotFound", err)
	}
	if err := deleteRow(ctx, st, target); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("second deleteRow() error = %v, want ErrNotFound", err)
	}
}

func TestReseed_ReplacesCollection(t *testing.T) {
	t.Parallel()

	st, err := store.Open(store.Options{InMemory: true})
	if err != nil {
		t.Fatalf("store.Open() error = %v", err)
	}
	t.Cleanup(func() { _ = st.Close() })
	ctx := context.Background()

	first := forestgen.SeedOptions{Rows: 4, NumTrees: 2, Height: 2, Seed: 1}
	if removed, err := reseed(ctx, st, first); err != nil || removed != 0 {
		t.Fatalf("first reseed() = %d, %v; want 0, nil", removed, err)
	}

	second := forestgen.SeedOptions{Rows: 2, NumTrees: 3, Height: 1, Seed: 2}
	removed, err := reseed(ctx, st, second)
	if err != nil {
		t.Fatalf("second reseed() error = %v", err)
	}
	if removed != 4 {
		t.Errorf("removed = %d, want 4", removed)
	}

	docs, err := st.List(ctx)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(docs) != 2 {
		t.Fatalf("len(docs) = %d, want 2", len(docs))
	}
	for _, doc := range docs {
		if got := len(doc.Row.Forest.Trees); got != 3 {
			t.Errorf("trees = %d, want 3", got)
		}
	}
}
