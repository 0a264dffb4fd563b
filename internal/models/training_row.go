// Forestview - Decision Forest Training Browser
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/forestview

package models

// TrainingRow is one persisted forest-training run: the hyperparameters the
// run was configured with, the trees it produced and its per-epoch metrics.
//
// Rows are written by the external trainer (or by forestgen in demos) and are
// never modified by this service. The store identifier is not part of the
// document body; the API attaches it as "_id" when responding.
//
// Example document:
//
//	{
//	  "forestConfig": {"numWeakLearners": 5, "splittingConstraints": {"maximumLevels": 6},
//	                   "lossFunctionConfig": {"lossFunction": "LOGIT"}},
//	  "forest": {"trees": [{"feature": 12, "splitValue": 0.4,
//	                        "left": {"leafValue": 0.1}, "right": {"leafValue": 0.7}}]},
//	  "trainingResults": {"epochResults": [{"roc": 0.21, "calibration": 1.01, "normalizedEntropy": 0.9}]}
//	}
type TrainingRow struct {
	ForestConfig     *ForestConfig     `json:"forestConfig" validate:"required"`
	Forest           *Forest           `json:"forest,omitempty" validate:"omitempty"`
	TrainingResults  *TrainingResults  `json:"trainingResults,omitempty" validate:"omitempty"`
	TrainingStatus   *TrainingStatus   `json:"trainingStatus,omitempty"`
	DataSourceConfig *DataSourceConfig `json:"dataSourceConfig,omitempty" validate:"omitempty"`
}

// ForestConfig holds the training hyperparameters for one run.
//
// Only NumWeakLearners is always present; every sub-configuration is optional
// and left nil when the trainer used its defaults.
type ForestConfig struct {
	NumWeakLearners         int64                    `json:"numWeakLearners" validate:"gte=0"`
	Algorithm               *Algorithm               `json:"algorithm,omitempty"`
	SplittingConstraints    *SplittingConstraints    `json:"splittingConstraints,omitempty" validate:"omitempty"`
	LossFunctionConfig      *LossFunctionConfig      `json:"lossFunctionConfig,omitempty" validate:"omitempty"`
	ShrinkageConfig         *ShrinkageConfig         `json:"shrinkageConfig,omitempty" validate:"omitempty"`
	StochasticityConfig     *StochasticityConfig     `json:"stochasticityConfig,omitempty" validate:"omitempty"`
	InfluenceTrimmingConfig *InfluenceTrimmingConfig `json:"influenceTrimmingConfig,omitempty" validate:"omitempty"`
}

// SplittingConstraints bounds tree growth.
type SplittingConstraints struct {
	MaximumLevels        int64   `json:"maximumLevels" validate:"gte=0"`
	MinimumAverageGain   float64 `json:"minimumAverageGain,omitempty"`
	MinimumSamplesAtLeaf int64   `json:"minimumSamplesAtLeaf,omitempty" validate:"gte=0"`
}

// LossFunctionConfig selects the loss and its parameters.
type LossFunctionConfig struct {
	LossFunction *LossFunction `json:"lossFunction,omitempty"`
	HuberAlpha   float64       `json:"huberAlpha,omitempty" validate:"gte=0,lte=1"`
}

// ShrinkageConfig is the learning rate applied to each weak learner.
type ShrinkageConfig struct {
	Shrinkage float64 `json:"shrinkage" validate:"gte=0,lte=1"`
}

// StochasticityConfig controls row and feature sampling per round.
type StochasticityConfig struct {
	PerRoundSamplingRate      float64 `json:"perRoundSamplingRate,omitempty" validate:"gte=0,lte=1"`
	FeatureSampleSize         int64   `json:"featureSampleSize,omitempty" validate:"gte=0"`
	ExampleBoostrapProportion float64 `json:"exampleBoostrapProportion,omitempty" validate:"gte=0,lte=1"`
}

// InfluenceTrimmingConfig drops low-influence examples after a warmup.
type InfluenceTrimmingConfig struct {
	Alpha        float64 `json:"alpha,omitempty" validate:"gte=0,lte=1"`
	WarmupRounds int64   `json:"warmupRounds,omitempty" validate:"gte=0"`
}

// TrainingResults are the per-epoch metrics, one entry per weak learner added.
type TrainingResults struct {
	EpochResults []EpochResult `json:"epochResults" validate:"dive"`
}

// EpochResult is the evaluation of the forest after one training epoch.
type EpochResult struct {
	ROC               float64 `json:"roc" validate:"gte=0,lte=1"`
	LogScore          float64 `json:"logScore,omitempty"`
	NormalizedEntropy float64 `json:"normalizedEntropy"`
	Calibration       float64 `json:"calibration"`
}

// DataSourceConfig records where the trainer read its examples from. It is
// carried through unchanged.
type DataSourceConfig struct {
	DataSource   *DataSource   `json:"dataSource,omitempty"`
	GridFsConfig *GridFsConfig `json:"gridFsConfig,omitempty"`
}

// GridFsConfig locates a training file in a GridFS bucket.
type GridFsConfig struct {
	Database   string `json:"database,omitempty"`
	Collection string `json:"collection,omitempty"`
	File       string `json:"file,omitempty"`
}

// Ptr returns a pointer to v. It keeps optional enum fields readable in
// literals: Algorithm: models.Ptr(models.AlgorithmBoosting).
func Ptr[T any](v T) *T {
	return &v
}
