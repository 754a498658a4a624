// Copyright ©2014 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package objective

import (
	"math"

	"gonum.org/v1/sdca/numeric"
	"gonum.org/v1/sdca/prox"
	"gonum.org/v1/sdca/prox/twoblock"
)

// L2MultilabelEntropy is the l2-regularized multilabel softmax loss
// objective: the primal loss is the log-sum-exp over all classes minus
// the average score of the relevant classes.
type L2MultilabelEntropy struct {
	C float64

	cLogC float64
}

// NewL2MultilabelEntropy returns an L2MultilabelEntropy with its
// internal constants precomputed.
func NewL2MultilabelEntropy(c float64) L2MultilabelEntropy {
	return L2MultilabelEntropy{C: c, cLogC: numeric.XLogX(c)}
}

// UpdateDual performs one dual coordinate step. The first numLabels
// entries of variables and scores belong to the relevant classes.
func (o L2MultilabelEntropy) UpdateDual(norm2 float64, numLabels int, variables, scores []float64) {
	pos := variables[:numLabels]
	neg := variables[numLabels:]

	axpby(1, scores, -norm2, variables)

	alpha := o.C * norm2
	thPos, thNeg := twoblock.Entropy(pos, neg, alpha)
	prox.Apply(pos, thPos)
	prox.Apply(neg, thNeg)

	b := o.C / float64(numLabels)
	for i := range pos {
		pos[i] = -o.C*pos[i] + b
	}
	for i := range neg {
		neg[i] *= -o.C
	}
}

// PrimalLoss returns log-sum-exp(scores) - mean(scores[:numLabels]).
func (o L2MultilabelEntropy) PrimalLoss(numLabels int, scores []float64) float64 {
	lse := numeric.LogSumExp(scores)
	avg := sum(scores[:numLabels]) / float64(numLabels)
	return lse - avg
}

// DualLoss returns the per-example dual objective.
func (o L2MultilabelEntropy) DualLoss(numLabels int, variables []float64) float64 {
	p := float64(numLabels)
	var d float64
	for _, a := range variables[:numLabels] {
		d -= numeric.XLogX(o.C - p*a)
	}
	d /= p
	for _, a := range variables[numLabels:] {
		d -= numeric.XLogX(-a)
	}
	d += o.cLogC + math.Log(p)*(o.C-sum(variables[:numLabels]))
	return d
}
