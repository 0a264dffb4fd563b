// Forestview - Decision Forest Training Browser
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/forestview

package validation

import (
	"strings"
	"testing"
)

func TestGetValidator_Singleton(t *testing.T) {
	t.Parallel()

	v1 := GetValidator()
	v2 := GetValidator()
	if v1 == nil {
		t.Fatal("GetValidator() should not return nil")
	}
	if v1 != v2 {
		t.Error("GetValidator() should return the same singleton instance")
	}
}

type innerDoc struct {
	Levels int     `json:"maximumLevels" validate:"gte=0"`
	Rate   float64 `json:"rate,omitempty" validate:"gte=0,lte=1"`
}

type outerDoc struct {
	Name   string    `json:"name" validate:"required"`
	Inner  *innerDoc `json:"inner" validate:"omitempty"`
	Hidden int       `json:"-" validate:"gte=0"`
}

func TestValidateStruct(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    outerDoc
		wantErr  bool
		wantPath string
		wantTag  string
	}{
		{name: "valid", input: outerDoc{Name: "a", Inner: &innerDoc{Levels: 3, Rate: 0.5}}},
		{name: "nil nested pointer", input: outerDoc{Name: "a"}},
		{name: "missing required", input: outerDoc{}, wantErr: true, wantPath: "name", wantTag: "required"},
		{name: "nested gte", input: outerDoc{Name: "a", Inner: &innerDoc{Levels: -1}}, wantErr: true, wantPath: "inner.maximumLevels", wantTag: "gte"},
		{name: "nested lte", input: outerDoc{Name: "a", Inner: &innerDoc{Rate: 1.5}}, wantErr: true, wantPath: "inner.rate", wantTag: "lte"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := ValidateStruct(&tt.input)
			if !tt.wantErr {
				if err != nil {
					t.Fatalf("ValidateStruct() = %v, want nil", err)
				}
				return
			}
			if err == nil {
				t.Fatal("ValidateStruct() = nil, want error")
			}
			first := err.First()
			if first.Path() != tt.wantPath {
				t.Errorf("Path() = %q, want %q", first.Path(), tt.wantPath)
			}
			if first.Tag() != tt.wantTag {
				t.Errorf("Tag() = %q, want %q", first.Tag(), tt.wantTag)
			}
			if !strings.Contains(err.Error(), tt.wantPath) {
				t.Errorf("Error() = %q, want it to mention %q", err.Error(), tt.wantPath)
			}
		})
	}
}

func TestValidateStruct_MultipleErrors(t *testing.T) {
	t.Parallel()

	err := ValidateStruct(&outerDoc{Inner: &innerDoc{Levels: -2, Rate: 2}, Hidden: -1})
	if err == nil {
		t.Fatal("expected errors")
	}
	if got := len(err.Errors()); got != 4 {
		t.Errorf("len(Errors()) = %d, want 4: %v", got, err)
	}
	if !strings.Contains(err.Error(), "; ") {
		t.Errorf("expected joined message, got %q", err.Error())
	}
}

func TestStructError_Empty(t *testing.T) {
	t.Parallel()

	var se StructError
	if se.Error() != "validation failed" {
		t.Errorf("Error() = %q", se.Error())
	}
	if se.First() != nil {
		t.Error("First() on empty error should be nil")
	}
}
