// Copyright ©2014 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package objective wires the proximal operators of prox/topk,
// prox/entropy and prox/twoblock into the five concrete SDCA loss
// objectives: per-example dual coordinate block updates plus the primal
// and dual loss terms used to track the duality gap.
//
// Every objective expects its dual block and score block laid out with
// the relevant classes first: a single reserved slot at index 0 holding
// the ground-truth class for the single-label objectives, or a
// contiguous prefix of numLabels slots for the multilabel objectives.
// Arranging a per-example block into this shape is the caller's
// responsibility (see the sdca driver).
package objective

// SingleLabel is implemented by objectives whose per-example dual block
// reserves index 0 for the ground-truth class and treats the remaining
// entries as the negative classes.
type SingleLabel interface {
	// UpdateDual performs one proximal dual coordinate step in place.
	// variables and scores must have equal, matching length; scores
	// holds margins (or log-scores) at the current primal iterate.
	UpdateDual(norm2 float64, variables, scores []float64)
	// PrimalLoss returns the per-example primal loss at scores. scores
	// may be reordered in place.
	PrimalLoss(scores []float64) float64
	// DualLoss returns the per-example dual objective at variables.
	DualLoss(variables []float64) float64
}

// Multilabel is implemented by objectives whose per-example dual block
// splits into a prefix of numLabels relevant ("positive") classes and a
// suffix of the remaining ("negative") classes.
type Multilabel interface {
	UpdateDual(norm2 float64, numLabels int, variables, scores []float64)
	PrimalLoss(numLabels int, scores []float64) float64
	DualLoss(numLabels int, variables []float64) float64
}

// axpby sets y := a*x + b*y elementwise. x and y must have equal length.
func axpby(a float64, x []float64, b float64, y []float64) {
	for i, v := range x {
		y[i] = a*v + b*y[i]
	}
}

func sum(x []float64) float64 {
	var s float64
	for _, v := range x {
		s += v
	}
	return s
}
