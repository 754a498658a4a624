// Copyright ©2014 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package objective

import (
	"math"

	"gonum.org/v1/sdca/prox"
	"gonum.org/v1/sdca/prox/twoblock"
)

// L2MultilabelHinge is the l2-regularized multilabel hinge loss
// objective: the primal loss penalizes the largest margin violation
// between any relevant (positive) class and any irrelevant (negative)
// class.
type L2MultilabelHinge struct {
	C float64
}

// UpdateDual performs one dual coordinate step. The first numLabels
// entries of variables and scores belong to the relevant classes; the
// remainder belong to the irrelevant classes.
func (o L2MultilabelHinge) UpdateDual(norm2 float64, numLabels int, variables, scores []float64) {
	pos := variables[:numLabels]
	neg := variables[numLabels:]

	a := 1 / norm2
	axpby(a, scores, -1, variables)
	a /= 2
	for i := range pos {
		pos[i] = a - pos[i]
	}
	for i := range neg {
		neg[i] += a
	}

	// Simplex reorders both of its inputs while restricting them to
	// their shared-sum feasible set, so the search runs on scratch
	// copies and the resulting Thresholds are applied back onto the
	// original, unpermuted slices: the driver keeps reusing this same
	// variables block across epochs under a fixed classOrder, so its
	// layout must never change.
	scratchPos := append([]float64(nil), pos...)
	scratchNeg := append([]float64(nil), neg...)
	thPos, thNeg := twoblock.Simplex(scratchPos, scratchNeg, o.C)
	prox.Apply(pos, thPos)
	prox.Apply(neg, thNeg)

	for i := range neg {
		neg[i] = -neg[i]
	}
}

// PrimalLoss returns max(0, 1 + max(negative scores) - min(positive
// scores)).
func (o L2MultilabelHinge) PrimalLoss(numLabels int, scores []float64) float64 {
	pos := scores[:numLabels]
	neg := scores[numLabels:]

	minPos := pos[0]
	for _, v := range pos[1:] {
		if v < minPos {
			minPos = v
		}
	}
	maxNeg := neg[0]
	for _, v := range neg[1:] {
		if v > maxNeg {
			maxNeg = v
		}
	}
	return math.Max(0, maxNeg-minPos+1)
}

// DualLoss returns the sum of the relevant-class dual variables.
func (o L2MultilabelHinge) DualLoss(numLabels int, variables []float64) float64 {
	return sum(variables[:numLabels])
}
