// Copyright ©2014 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package objective

import (
	"math"

	"gonum.org/v1/sdca/numeric"
	"gonum.org/v1/sdca/prox"
	"gonum.org/v1/sdca/prox/entropy"
)

// L2EntropyTopK is the l2-regularized top-k softmax (entropy) loss
// objective.
type L2EntropyTopK struct {
	C float64
	K int

	cLogC float64
}

// NewL2EntropyTopK returns an L2EntropyTopK with its internal constants
// precomputed.
func NewL2EntropyTopK(c float64, k int) L2EntropyTopK {
	return L2EntropyTopK{C: c, K: k, cLogC: numeric.XLogX(c)}
}

// UpdateDual performs one dual coordinate step. variables[0] and
// scores[0] belong to the ground-truth class.
func (o L2EntropyTopK) UpdateDual(norm2 float64, variables, scores []float64) {
	first := variables[1:]
	axpby(1, scores, -norm2, variables)
	shift := -variables[0]
	for i := range first {
		first[i] += shift
	}

	// TopKBiased swaps entries of its input while growing its saturated
	// set, so the search runs on a scratch copy and the resulting
	// Thresholds is applied back onto the original, unpermuted slice:
	// the driver keeps reusing this same variables block across epochs
	// under a fixed classOrder, so its layout must never change.
	alpha := o.C * norm2
	scratch := append([]float64(nil), first...)
	th := entropy.TopKBiased(scratch, o.K, alpha)
	prox.Apply(first, th)

	variables[0] = o.C * math.Min(1, sum(first))
	for i := range first {
		first[i] *= -o.C
	}
}

// PrimalLoss returns the per-example top-k softmax loss. scores is
// reordered in place.
func (o L2EntropyTopK) PrimalLoss(scores []float64) float64 {
	first := scores[1:]
	shift := -scores[0]
	for i := range first {
		first[i] += shift
	}

	th := entropy.TopK(first, o.K)
	if th.First == 0 {
		return th.T
	}
	numHi := float64(th.First)
	sumHi := prox.Sum(first, 0, th.First)
	s := th.Hi * float64(o.K)
	return th.Hi*(sumHi+th.T*(float64(o.K)-numHi)) -
		numeric.XLogX(1-s) - numHi*numeric.XLogX(th.Hi)
}

// DualLoss returns the per-example dual objective.
func (o L2EntropyTopK) DualLoss(variables []float64) float64 {
	d := o.cLogC - numeric.XLogX(o.C-variables[0])
	for _, a := range variables[1:] {
		d -= numeric.XLogX(-a)
	}
	return d
}
