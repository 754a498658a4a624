// Copyright ©2014 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package objective

import (
	"gonum.org/v1/sdca/numeric"
	"gonum.org/v1/sdca/prox"
	"gonum.org/v1/sdca/prox/twoblock"
)

// L2EntropyNNFeatures is the single-label softmax loss objective used
// when training non-negative feature representations: mathematically
// the numLabels == 1 case of L2MultilabelEntropy, exposed as a
// SingleLabel objective since the ground-truth class is always at
// index 0.
type L2EntropyNNFeatures struct {
	C float64

	cLogC float64
}

// NewL2EntropyNNFeatures returns an L2EntropyNNFeatures with its
// internal constants precomputed.
func NewL2EntropyNNFeatures(c float64) L2EntropyNNFeatures {
	return L2EntropyNNFeatures{C: c, cLogC: numeric.XLogX(c)}
}

// UpdateDual performs one dual coordinate step. variables[0] and
// scores[0] belong to the ground-truth class.
func (o L2EntropyNNFeatures) UpdateDual(norm2 float64, variables, scores []float64) {
	pos := variables[:1]
	neg := variables[1:]

	axpby(1, scores, -norm2, variables)

	alpha := o.C * norm2
	thPos, thNeg := twoblock.Entropy(pos, neg, alpha)
	prox.Apply(pos, thPos)
	prox.Apply(neg, thNeg)

	pos[0] = -o.C*pos[0] + o.C
	for i := range neg {
		neg[i] *= -o.C
	}
}

// PrimalLoss returns log-sum-exp(scores) - scores[0].
func (o L2EntropyNNFeatures) PrimalLoss(scores []float64) float64 {
	return numeric.LogSumExp(scores) - scores[0]
}

// DualLoss returns the per-example dual objective.
func (o L2EntropyNNFeatures) DualLoss(variables []float64) float64 {
	d := o.cLogC - numeric.XLogX(o.C-variables[0])
	for _, a := range variables[1:] {
		d -= numeric.XLogX(-a)
	}
	return d
}
