// Forestview - Decision Forest Training Browser
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/forestview

package models

import (
	"errors"
	"fmt"

	"github.com/goccy/go-json"
)

// ErrTreeIndexOutOfRange is returned by Forest.Tree for an index outside
// [0, len(Trees)).
var ErrTreeIndexOutOfRange = errors.New("tree index out of range")

// Forest is the ordered sequence of trees produced by one training run.
type Forest struct {
	Trees     []*TreeNode `json:"trees" validate:"dive,required"`
	Rescaling *Rescaling  `json:"rescaling,omitempty"`
}

// Tree returns the tree at index i. A nil Forest has no trees.
func (f *Forest) Tree(i int) (*TreeNode, error) {
	if f == nil || i < 0 || i >= len(f.Trees) {
		return nil, fmt.Errorf("%w: %d", ErrTreeIndexOutOfRange, i)
	}
	return f.Trees[i], nil
}

// Len returns the number of trees. A nil Forest has none.
func (f *Forest) Len() int {
	if f == nil {
		return 0
	}
	return len(f.Trees)
}

// TreeNode is a tagged variant: a leaf carrying LeafValue, or a branch
// carrying Feature, SplitValue and exactly two children. A node is a branch
// exactly when it has children.
//
// The JSON tags only name fields for validation messages; encoding is
// handled by MarshalJSON and emits either
//
//	{"leafValue": 0.25}
//
// or
//
//	{"feature": 3, "splitValue": 0.5, "left": {...}, "right": {...}}
type TreeNode struct {
	Feature    int64       `json:"feature" validate:"gte=0"`
	SplitValue float64     `json:"splitValue"`
	LeafValue  float64     `json:"leafValue"`
	Left       *TreeNode   `json:"left"`
	Right      *TreeNode   `json:"right"`
	Annotation *Annotation `json:"annotation,omitempty" validate:"omitempty"`
}

// Annotation carries training-time statistics for a branch.
type Annotation struct {
	LeftFraction float64 `json:"leftFraction" validate:"gte=0,lte=1"`
}

// Leaf returns a leaf node.
func Leaf(value float64) *TreeNode {
	return &TreeNode{LeafValue: value}
}

// Branch returns a branch node splitting feature at splitValue.
func Branch(feature int64, splitValue float64, left, right *TreeNode) *TreeNode {
	return &TreeNode{Feature: feature, SplitValue: splitValue, Left: left, Right: right}
}

// IsLeaf reports whether n is a leaf.
func (n *TreeNode) IsLeaf() bool {
	return n.Left == nil && n.Right == nil
}

// Depth returns the number of edges on the longest root-to-leaf path.
func (n *TreeNode) Depth() int {
	if n == nil || n.IsLeaf() {
		return 0
	}
	return 1 + max(n.Left.Depth(), n.Right.Depth())
}

// NodeCount returns the number of nodes in the subtree rooted at n.
func (n *TreeNode) NodeCount() int {
	if n == nil {
		return 0
	}
	return 1 + n.Left.NodeCount() + n.Right.NodeCount()
}

type leafJSON struct {
	LeafValue  float64     `json:"leafValue"`
	Annotation *Annotation `json:"annotation,omitempty"`
}

type branchJSON struct {
	Feature    int64       `json:"feature"`
	SplitValue float64     `json:"splitValue"`
	Left       *TreeNode   `json:"left"`
	Right      *TreeNode   `json:"right"`
	Annotation *Annotation `json:"annotation,omitempty"`
}

// MarshalJSON emits the leaf or branch form of n.
func (n *TreeNode) MarshalJSON() ([]byte, error) {
	if n.IsLeaf() {
		return json.Marshal(leafJSON{LeafValue: n.LeafValue, Annotation: n.Annotation})
	}
	if n.Left == nil || n.Right == nil {
		return nil, errors.New("branch node must have both children")
	}
	return json.Marshal(branchJSON{
		Feature:    n.Feature,
		SplitValue: n.SplitValue,
		Left:       n.Left,
		Right:      n.Right,
		Annotation: n.Annotation,
	})
}

// UnmarshalJSON decodes a single tree, rejecting nodes that are not exactly
// one of leaf or branch. Errors are *DecodeError with a path relative to the
// tree root.
func (n *TreeNode) UnmarshalJSON(data []byte) error {
	var raw rawNode
	if err := json.Unmarshal(data, &raw); err != nil {
		return &DecodeError{Err: err}
	}
	node, err := raw.toNode("")
	if err != nil {
		return err
	}
	*n = *node
	return nil
}

// rawNode is the permissive wire form of a tree node. Presence of each field
// is tracked so that the variant can be checked after decoding.
type rawNode struct {
	Feature    *int64      `json:"feature"`
	SplitValue *float64    `json:"splitValue"`
	LeafValue  *float64    `json:"leafValue"`
	Left       *rawNode    `json:"left"`
	Right      *rawNode    `json:"right"`
	Annotation *Annotation `json:"annotation"`
}

func (r *rawNode) toNode(path string) (*TreeNode, error) {
	if r == nil {
		return nil, newDecodeError(path, "tree node is null")
	}

	hasChildren := r.Left != nil || r.Right != nil
	switch {
	case r.LeafValue != nil && hasChildren:
		return nil, newDecodeError(path, "node has both a leaf value and children")
	case r.LeafValue != nil:
		if r.Feature != nil || r.SplitValue != nil {
			return nil, newDecodeError(path, "leaf node carries split fields")
		}
		return &TreeNode{LeafValue: *r.LeafValue, Annotation: r.Annotation}, nil
	case !hasChildren:
		return nil, newDecodeError(path, "node is neither a leaf nor a branch")
	case r.Left == nil:
		return nil, newDecodeError(path, "branch node is missing its left child")
	case r.Right == nil:
		return nil, newDecodeError(path, "branch node is missing its right child")
	case r.Feature == nil:
		return nil, newDecodeError(path, "branch node is missing feature")
	case r.SplitValue == nil:
		return nil, newDecodeError(path, "branch node is missing splitValue")
	}

	left, err := r.Left.toNode(joinPath(path, "left"))
	if err != nil {
		return nil, err
	}
	right, err := r.Right.toNode(joinPath(path, "right"))
	if err != nil {
		return nil, err
	}
	return &TreeNode{
		Feature:    *r.Feature,
		SplitValue: *r.SplitValue,
		Left:       left,
		Right:      right,
		Annotation: r.Annotation,
	}, nil
}

// checkShape verifies a tree built in Go code has the same variant
// guarantees that decoding enforces.
func (n *TreeNode) checkShape(path string) error {
	if n == nil {
		return newDecodeError(path, "tree node is null")
	}
	if n.IsLeaf() {
		return nil
	}
	if n.Left == nil {
		return newDecodeError(path, "branch node is missing its left child")
	}
	if n.Right == nil {
		return newDecodeError(path, "branch node is missing its right child")
	}
	if err := n.Left.checkShape(joinPath(path, "left")); err != nil {
		return err
	}
	return n.Right.checkShape(joinPath(path, "right"))
}

func joinPath(parent, child string) string {
	if parent == "" {
		return child
	}
	return parent + "." + child
}
