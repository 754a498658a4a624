// Copyright ©2014 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package objective

import (
	"math"

	"gonum.org/v1/sdca/prox"
	"gonum.org/v1/sdca/prox/topk"
)

// L2HingeTopK is the l2-regularized top-k hinge loss objective: the
// primal loss penalizes a margin violation whenever the true class score
// falls below any of the k highest-scoring competing classes.
type L2HingeTopK struct {
	C float64
	K int
}

// UpdateDual performs one dual coordinate step. variables[0] and
// scores[0] belong to the ground-truth class; the remaining entries
// hold the competing classes.
func (o L2HingeTopK) UpdateDual(norm2 float64, variables, scores []float64) {
	first := variables[1:]
	a := 1 / norm2
	axpby(a, scores, -1, variables)
	shift := a - variables[0]
	for i := range first {
		first[i] += shift
	}

	// SimplexBiased reorders its input while searching for the
	// threshold, so the search runs on a scratch copy and the resulting
	// Thresholds — whose apply formula is elementwise and therefore
	// order-independent — is applied back onto the original, unpermuted
	// slice that gatherScores/scatterUpdate expect to stay aligned with
	// classOrder across epochs.
	scratch := append([]float64(nil), first...)
	th := topk.SimplexBiased(scratch, o.K, o.C, 1)
	prox.Apply(first, th)

	variables[0] = math.Min(o.C, sum(first))
	for i := range first {
		first[i] = -first[i]
	}
}

// PrimalLoss returns max(0, sum of the k largest entries of
// 1 - scores[0] + scores[1:]). scores is reordered in place.
func (o L2HingeTopK) PrimalLoss(scores []float64) float64 {
	first := scores[1:]
	shift := 1 - scores[0]
	for i := range first {
		first[i] += shift
	}
	prox.SortDescending(first, 0, len(first))
	return math.Max(0, prox.Sum(first, 0, o.K))
}

// DualLoss returns the dual objective value variables[0] for this
// objective (the hinge dual has no additional term beyond the
// reserved slot).
func (o L2HingeTopK) DualLoss(variables []float64) float64 {
	return variables[0]
}
