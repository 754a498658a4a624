// Copyright ©2014 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package entropy implements the entropy-regularized family of proximal
// operators: plain entropy, entropy with a quadratic norm term,
// and their top-k-constrained counterparts, all solved by partitioning
// out the entries that saturate against the box and recomputing a
// log-sum-exp or Lambert-W threshold on the remainder.
package entropy

import (
	"math"

	"gonum.org/v1/sdca/numeric"
	"gonum.org/v1/sdca/numeric/lambert"
	"gonum.org/v1/sdca/prox"
)

const epsilon = 2.220446049250313e-16

func indexOfMax(a []float64, first, last int) int {
	m := first
	for i := first + 1; i < last; i++ {
		if a[i] > a[m] {
			m = i
		}
	}
	return m
}

// Entropy returns the Thresholds solving
//
//	min ⟨x, log x⟩ - ⟨a, x⟩  s.t.  ⟨1,x⟩ = rhs,  0 ≤ xᵢ ≤ hi
//
// The solution shape is xᵢ = clamp(0, exp(aᵢ - t), hi); entries
// that would saturate at hi are partitioned out and the threshold is
// recomputed on the unsaturated remainder until none new saturate.
// a is reordered in place.
func Entropy(a []float64, hi, rhs float64) prox.Thresholds {
	n := len(a)
	eps := 16 * epsilon * math.Max(1, rhs)
	lo := 0.0
	r := rhs
	u := math.Log(hi) + eps

	t := numeric.LogSumExp(a) - math.Log(rhs)

	mFirst := 0
	for {
		tt := t + u
		it := prox.PartitionGreater(a, mFirst, n, tt)
		if it == mFirst {
			break
		}
		r -= hi * float64(it-mFirst)
		mFirst = it
		if it == n {
			break
		}
		if r <= eps {
			t = prox.Max(a, mFirst, n) - numeric.Float64ExpMinArg + 1
			break
		}
		t = numeric.LogSumExp(a[mFirst:n]) - math.Log(r)
	}

	return prox.Thresholds{T: t, Lo: lo, Hi: hi, First: mFirst, Last: n, Map: prox.Exp}
}

// Norm returns the Thresholds solving
//
//	min ½⟨x,x⟩ + ⟨x, log x⟩ - ⟨a, x⟩  s.t.  ⟨1,x⟩ = rhs,  0 ≤ xᵢ ≤ hi
//
// The entropy prox augmented with a quadratic norm term. The
// solution shape is xᵢ = clamp(0, W₀(exp(aᵢ - t)), hi), found by the
// same partition-and-recompute loop as Entropy but solving for t via
// lambert.SolveSumWExp on each remainder. a is reordered in place.
func Norm(a []float64, hi, rhs float64) prox.Thresholds {
	n := len(a)
	eps := 16 * epsilon * math.Max(1, rhs)
	lo := 0.0
	r := rhs
	u := hi + math.Log(hi) + eps

	t := lambert.SolveSumWExp(a, rhs)

	mFirst := 0
	for {
		tt := t + u
		it := prox.PartitionGreater(a, mFirst, n, tt)
		if it == mFirst {
			break
		}
		r -= hi * float64(it-mFirst)
		mFirst = it
		if it == n {
			break
		}
		if r <= eps {
			t = prox.Max(a, mFirst, n) - numeric.Float64ExpMinArg + 1
			break
		}
		t = lambert.SolveSumWExp(a[mFirst:n], r)
	}

	return prox.Thresholds{T: t, Lo: lo, Hi: hi, First: mFirst, Last: n, Map: prox.Lambert}
}
