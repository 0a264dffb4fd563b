// Forestview - Decision Forest Training Browser
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/forestview

package store

import (
	"fmt"

	"github.com/google/uuid"
)

// ObjectID is the store-assigned identifier of a training row. It is a
// UUIDv7, so identifiers sort in insertion order.
type ObjectID uuid.UUID

// NilObjectID is the zero identifier. It is never assigned to a document.
var NilObjectID ObjectID

// NewObjectID returns a fresh time-ordered identifier.
func NewObjectID() (ObjectID, error) {
	u, err := uuid.NewV7()
	if err != nil {
		return NilObjectID, fmt.Errorf("generate object id: %w", err)
	}
	return ObjectID(u), nil
}

// ParseObjectID parses the canonical string form produced by String.
// Anything else, including other UUID spellings, yields ErrInvalidID.
func ParseObjectID(s string) (ObjectID, error) {
	if len(s) != 36 {
		return NilObjectID, fmt.Errorf("%w: %q", ErrInvalidID, s)
	}
	u, err := uuid.Parse(s)
	if err != nil || u.String() != s || ObjectID(u).IsZero() {
		return NilObjectID, fmt.Errorf("%w: %q", ErrInvalidID, s)
	}
	return ObjectID(u), nil
}

// String returns the canonical lowercase hyphenated form.
func (id ObjectID) String() string {
	return uuid.UUID(id).String()
}

// IsZero reports whether id is NilObjectID.
func (id ObjectID) IsZero() bool {
	return id == NilObjectID
}

// MarshalText implements encoding.TextMarshaler so IDs serialize as strings.
func (id ObjectID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (id *ObjectID) UnmarshalText(data []byte) error {
	parsed, err := ParseObjectID(string(data))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

func (id ObjectID) key() []byte {
	k := make([]byte, 0, len(collectionPrefix)+16)
	k = append(k, collectionPrefix...)
	return append(k, id[:]...)
}

func idFromKey(k []byte) (ObjectID, error) {
	var id ObjectID
	if len(k) != len(collectionPrefix)+16 {
		return NilObjectID, fmt.Errorf("malformed key of length %d", len(k))
	}
	copy(id[:], k[len(collectionPrefix):])
	return id, nil
}
