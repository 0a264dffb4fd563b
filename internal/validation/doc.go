// Forestview - Decision Forest Training Browser
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/forestview

// Package validation wraps a singleton go-playground/validator instance.
//
// The models package runs ValidateStruct on every decoded training row. Field
// names are reported using their json tags, so a failure reads
// "forestConfig.numWeakLearners must be greater than or equal to 0" rather
// than using Go field names.
package validation
