// Forestview - Decision Forest Training Browser
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/forestview

// Package forestgen produces random but well-formed training rows for demos
// and tests. Output is fully determined by the seed.
package forestgen

import (
	"math/rand/v2"

	"github.com/tomtom215/forestview/internal/models"
)

const (
	minLevels     = 4
	maxLevels     = 8
	maxFeature    = 100
	leafChance    = 0.2
	seedStreamKey = 0x9e3779b97f4a7c15
)

// Generator draws random forest artifacts. A Generator is not safe for
// concurrent use.
type Generator struct {
	rng *rand.Rand
}

// New returns a Generator seeded with seed.
func New(seed uint64) *Generator {
	return &Generator{rng: rand.New(rand.NewPCG(seed, seed^seedStreamKey))}
}

// Config returns a forest configuration requesting numTrees weak learners
// with maximumLevels drawn from [4, 8] and the logit loss.
func (g *Generator) Config(numTrees int) *models.ForestConfig {
	return &models.ForestConfig{
		NumWeakLearners: int64(numTrees),
		SplittingConstraints: &models.SplittingConstraints{
			MaximumLevels: int64(minLevels + g.rng.IntN(maxLevels-minLevels+1)),
		},
		LossFunctionConfig: &models.LossFunctionConfig{
			LossFunction: models.Ptr(models.LossFunctionLogit),
		},
	}
}

// Tree returns a random tree no deeper than height edges. Each node becomes
// a leaf when the remaining height is exhausted, or otherwise with
// probability 0.2.
func (g *Generator) Tree(height int) *models.TreeNode {
	if height <= 0 || g.rng.Float64() < leafChance {
		return models.Leaf(g.rng.Float64())
	}
	split := g.rng.Float64()
	feature := int64(g.rng.IntN(maxFeature + 1))
	left := g.Tree(height - 1)
	right := g.Tree(height - 1)
	return models.Branch(feature, split, left, right)
}

// Forest returns numTrees random trees of at most height.
func (g *Generator) Forest(height, numTrees int) *models.Forest {
	trees := make([]*models.TreeNode, numTrees)
	for i := range trees {
		trees[i] = g.Tree(height)
	}
	return &models.Forest{Trees: trees}
}

// Results returns one epoch per tree with noisy, trending metrics: ROC rises
// from 0.2 towards 0.9, calibration stays near 1.0 and normalized entropy
// falls from 0.9 towards 0.75.
func (g *Generator) Results(numTrees int) *models.TrainingResults {
	roc := g.trend(0.2, 0.9, 0.02, numTrees)
	calibration := g.trend(1.0, 1.0, 0.02, numTrees)
	entropy := g.trend(0.9, 0.75, 0.01, numTrees)

	epochs := make([]models.EpochResult, numTrees)
	for i := range epochs {
		epochs[i] = models.EpochResult{
			ROC:               clamp01(roc(i)),
			Calibration:       calibration(i),
			NormalizedEntropy: entropy(i),
		}
	}
	return &models.TrainingResults{EpochResults: epochs}
}

// trend returns f(i) = start + (end-start)*i/n + u*variance with u uniform in [-1, 1).
func (g *Generator) trend(start, end, variance float64, n int) func(i int) float64 {
	return func(i int) float64 {
		uniform := 2*g.rng.Float64() - 1
		return start + (end-start)*float64(i)/float64(n) + uniform*variance
	}
}

func clamp01(v float64) float64 {
	return min(max(v, 0), 1)
}

// Row composes a complete training row.
func (g *Generator) Row(height, numTrees int) *models.TrainingRow {
	return &models.TrainingRow{
		ForestConfig:    g.Config(numTrees),
		Forest:          g.Forest(height, numTrees),
		TrainingResults: g.Results(numTrees),
	}
}
