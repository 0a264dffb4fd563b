// Forestview - Decision Forest Training Browser
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/forestview

/*
Package models defines the statically typed schema of a decision-forest
training row.

A TrainingRow groups three things recorded by one training run:

  - ForestConfig: hyperparameters (number of weak learners, splitting
    constraints, loss function, shrinkage, sampling, influence trimming)
  - Forest: the ordered trees, each a TreeNode tagged variant
  - TrainingResults: one EpochResult (ROC, log score, normalized entropy,
    calibration) per weak learner added

Enums (TrainingStatus, DataSource, Algorithm, Rescaling, LossFunction) encode
as their names and decode from either the name or the number used by the
trainer, so documents produced by either representation are accepted.

Decode is the only way documents enter the process from bytes. It rejects
malformed input with a *DecodeError naming the JSON path:

	row, err := models.Decode(body)
	var de *models.DecodeError
	if errors.As(err, &de) {
	    log.Printf("bad document at %s: %v", de.Path, de.Err)
	}

Tree access is bounds checked:

	tree, err := row.Forest.Tree(3)
	if errors.Is(err, models.ErrTreeIndexOutOfRange) { ... }
*/
package models
