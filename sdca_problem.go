// Copyright ©2014 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sdca

import (
	"gonum.org/v1/sdca/dataset"
	"gonum.org/v1/sdca/objective"
)

// rotateLabelFirst returns the permutation of [0, numClasses) with label
// moved to position 0 and every other class index following in
// ascending order.
func rotateLabelFirst(label, numClasses int) []int {
	order := make([]int, numClasses)
	order[0] = label
	j := 1
	for c := 0; c < numClasses; c++ {
		if c == label {
			continue
		}
		order[j] = c
		j++
	}
	return order
}

// rotateLabelSetFirst returns the permutation of [0, numClasses) with
// the classes in labels moved to the front, in the order given, followed
// by every remaining class in ascending order.
func rotateLabelSetFirst(labels []int, numClasses int) []int {
	inSet := make([]bool, numClasses)
	order := make([]int, 0, numClasses)
	for _, l := range labels {
		if !inSet[l] {
			inSet[l] = true
			order = append(order, l)
		}
	}
	for c := 0; c < numClasses; c++ {
		if !inSet[c] {
			order = append(order, c)
		}
	}
	return order
}

func dot(a, b []float64) float64 {
	var s float64
	for i, v := range a {
		s += v * b[i]
	}
	return s
}

// gatherScores fills scores[j] with the dot product of example row and
// the weight row of class order[j], for a weight matrix stored as
// numClasses contiguous blocks of numFeatures.
func gatherScores(weights, row []float64, numFeatures int, order []int, scores []float64) {
	for j, c := range order {
		scores[j] = dot(weights[c*numFeatures:(c+1)*numFeatures], row)
	}
}

// scatterUpdate adds delta[j]*row to the weight row of class order[j].
func scatterUpdate(weights, row []float64, numFeatures int, order []int, delta []float64) {
	for j, c := range order {
		if delta[j] == 0 {
			continue
		}
		w := weights[c*numFeatures : (c+1)*numFeatures]
		for i, x := range row {
			w[i] += delta[j] * x
		}
	}
}

// identityOrder returns the identity permutation of n elements; callers
// reuse it across epochs to avoid reallocating.
func identityOrder(n int) []int {
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	return order
}

// Problem bundles a dense Dataset with a single-label objective: one
// where every example has exactly one ground-truth class.
type Problem struct {
	Data      *dataset.Dataset
	Objective objective.SingleLabel
}

// MultilabelProblem bundles a dense Dataset with a multilabel
// objective: one where every example has a set of relevant classes.
type MultilabelProblem struct {
	Data      *dataset.Dataset
	Objective objective.Multilabel
}
