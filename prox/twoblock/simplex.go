// Copyright ©2014 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package twoblock

import (
	"math"

	"gonum.org/v1/sdca/prox"
)

// restrictToSimplex repeatedly shifts and partitions a[0:last] until the
// shift t = (Σ a[0:last] - rhs)/last also satisfies a_i > t for every
// remaining i, the fixed point of the equality-knapsack [0,+inf) search
// with no upper bound. It returns the final t and the shrunk length.
func restrictToSimplex(a []float64, last int, rhs float64) (float64, int) {
	var t float64
	for {
		t = (prox.Sum(a, 0, last) - rhs) / float64(last)
		it := prox.PartitionGreater(a, 0, last, t)
		if it == last {
			return t, last
		}
		last = it
	}
}

// Simplex returns the Thresholds pair solving
//
//	min ‖x - a‖² + ‖y - b‖²  s.t.  ⟨1,x⟩ = ⟨1,y⟩ ≤ rhs,  0 ≤ xᵢ, 0 ≤ yⱼ
//
// The pair of simplex projections coupled by a shared sum. It
// first projects a and b onto the rhs-simplex independently; if their
// thresholds already satisfy t+s ≥ 0 the shared sum rhs is feasible and
// both stand. Otherwise it searches for the common r < rhs at which
// ⟨1,x⟩ = ⟨1,y⟩ = r by growing the excluded sets of both sides under a
// single shift t (with y's shift equal to -t). a and b are reordered in
// place.
func Simplex(a, b []float64, rhs float64) (prox.Thresholds, prox.Thresholds) {
	lo, hi := 0.0, rhs
	eps := epsilon * math.Max(1, rhs)

	t, xLast := restrictToSimplex(a, len(a), rhs)
	s, yLast := restrictToSimplex(b, len(b), rhs)

	if t+s >= -eps {
		return prox.NewRange(t, lo, hi, 0, xLast), prox.NewRange(s, lo, hi, 0, yLast)
	}

	m := xLast + yLast
	t = (prox.Sum(a, 0, xLast) - prox.Sum(b, 0, yLast)) / float64(m)
	for {
		xIt := prox.PartitionGreater(a, 0, xLast, t)
		sumX := prox.Sum(a, xIt, xLast)
		nX := xLast - xIt

		yIt := prox.PartitionGreater(b, 0, yLast, -t)
		sumY := prox.Sum(b, yIt, yLast)
		nY := yLast - yIt

		infeas := sumX - sumY - float64(nX+nY)*t

		var tt float64
		switch {
		case nY > 0 && infeas > eps:
			yLast = yIt
			tt = float64(m)*t + sumY
			m -= nY
		case nX > 0 && infeas < -eps:
			xLast = xIt
			tt = float64(m)*t - sumX
			m -= nX
		default:
			xLast, yLast = xIt, yIt
			return prox.NewRange(t, lo, hi, 0, xLast), prox.NewRange(-t, lo, hi, 0, yLast)
		}

		if m <= 0 {
			return prox.NewRange(t, lo, hi, 0, xLast), prox.NewRange(-t, lo, hi, 0, yLast)
		}
		t = tt / float64(m)
	}
}
