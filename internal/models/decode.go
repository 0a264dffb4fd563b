// Forestview - Decision Forest Training Browser
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/forestview

package models

import (
	"errors"
	"fmt"

	"github.com/goccy/go-json"

	"github.com/tomtom215/forestview/internal/validation"
)

// DecodeError reports a training row that could not be decoded or failed
// validation. Path is the JSON path of the offending value, e.g.
// "forest.trees[2].left.right", and is empty for syntax errors.
type DecodeError struct {
	Path string
	Err  error
}

func newDecodeError(path, msg string) *DecodeError {
	return &DecodeError{Path: path, Err: errors.New(msg)}
}

func (e *DecodeError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("decode training row: %v", e.Err)
	}
	return fmt.Sprintf("decode training row: %s: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// rawRow mirrors TrainingRow with the forest left in its permissive form.
type rawRow struct {
	ForestConfig     *ForestConfig     `json:"forestConfig"`
	Forest           *rawForest        `json:"forest"`
	TrainingResults  *TrainingResults  `json:"trainingResults"`
	TrainingStatus   *TrainingStatus   `json:"trainingStatus"`
	DataSourceConfig *DataSourceConfig `json:"dataSourceConfig"`
}

type rawForest struct {
	Trees     []*rawNode `json:"trees"`
	Rescaling *Rescaling `json:"rescaling"`
}

// Decode parses and validates a training row document.
//
// Any failure is returned as *DecodeError: malformed JSON, unknown enum
// values, tree nodes that are not exactly a leaf or a branch, and constraint
// violations such as a negative numWeakLearners.
func Decode(data []byte) (*TrainingRow, error) {
	var raw rawRow
	if err := json.Unmarshal(data, &raw); err != nil {
		var de *DecodeError
		if errors.As(err, &de) {
			return nil, de
		}
		return nil, &DecodeError{Err: err}
	}

	row := &TrainingRow{
		ForestConfig:     raw.ForestConfig,
		TrainingResults:  raw.TrainingResults,
		TrainingStatus:   raw.TrainingStatus,
		DataSourceConfig: raw.DataSourceConfig,
	}

	if raw.Forest != nil {
		row.Forest = &Forest{
			Trees:     make([]*TreeNode, len(raw.Forest.Trees)),
			Rescaling: raw.Forest.Rescaling,
		}
		for i, rn := range raw.Forest.Trees {
			node, err := rn.toNode(fmt.Sprintf("forest.trees[%d]", i))
			if err != nil {
				return nil, err
			}
			row.Forest.Trees[i] = node
		}
	}

	if err := validateRow(row); err != nil {
		return nil, err
	}
	return row, nil
}

// Validate checks a row built in Go code against the same rules Decode
// applies. The store calls it before persisting.
func (r *TrainingRow) Validate() error {
	if r == nil {
		return newDecodeError("", "training row is nil")
	}
	for i, tree := range r.Forest.treesOrNil() {
		if err := tree.checkShape(fmt.Sprintf("forest.trees[%d]", i)); err != nil {
			return err
		}
	}
	return validateRow(r)
}

func (f *Forest) treesOrNil() []*TreeNode {
	if f == nil {
		return nil
	}
	return f.Trees
}

func validateRow(row *TrainingRow) error {
	if verr := validation.ValidateStruct(row); verr != nil {
		path := ""
		if first := verr.First(); first != nil {
			path = first.Path()
		}
		return &DecodeError{Path: path, Err: verr}
	}
	return nil
}
