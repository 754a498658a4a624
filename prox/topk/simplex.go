// Copyright ©2014 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package topk

import (
	"math"

	"gonum.org/v1/sdca/prox"
	"gonum.org/v1/sdca/prox/knapsack"
)

// isSimplexBelowCone reports whether the knapsack-equality candidate
// (with its saturated prefix a[:uLast] shifted by t) certifies as lying
// strictly inside the top-k cone, in which case the general-case search
// must run instead of returning the candidate directly.
func isSimplexBelowCone(a []float64, uLast int, t, k, rhs float64) bool {
	if uLast == 0 {
		return t < 0
	}
	numU := float64(uLast)
	sumU := prox.Sum(a, 0, uLast)
	return k*(sumU+(k-numU)*t) < rhs*numU
}

// Simplex returns the Thresholds solving
//
//	min ½‖x - a‖²  s.t.  0 ≤ xᵢ ≤ ⟨1,x⟩/k,  ⟨1,x⟩ ≤ rhs
//
// the top-k simplex projection. It inspects the top-k cone's own
// special cases first; in the zero and constant cases it only falls back
// to a box-constrained knapsack equality when the cone's hi would exceed
// rhs/k, and in the general case it tries that same knapsack equality
// before falling back to the full cone search. a is reordered in place.
func Simplex(a []float64, k int, rhs float64) prox.Thresholds {
	n := len(a)
	checkK(k, n)
	K := float64(k)

	kase, th := coneSpecialCases(a, k, K)
	switch kase {
	case caseZero:
		return th
	case caseConstant:
		if K*th.Hi > rhs {
			return knapsack.Eq(a, 0, rhs/K, rhs)
		}
		return th
	}

	t := knapsack.Eq(a, 0, rhs/K, rhs)
	if isSimplexBelowCone(a, t.First, t.T, K, rhs) {
		return coneSearch(a, k, 0)
	}
	return t
}

// isSimplexBiasedBelowCone is the biased counterpart of
// isSimplexBelowCone, with the same eps-tolerant comparison used by the
// biased cone search.
func isSimplexBiasedBelowCone(a []float64, uLast int, t, k, rhs, rho, eps float64) bool {
	if uLast == 0 {
		return t < rho*rhs-eps
	}
	numU := float64(uLast)
	sumU := prox.Sum(a, 0, uLast)
	return k*(sumU+(k-numU)*t) < rhs*(numU+rho*k*k)-eps
}

// SimplexBiased returns the Thresholds solving
//
//	min ½(⟨x,x⟩ + ρ⟨1,x⟩²) - ⟨a,x⟩  s.t.  0 ≤ xᵢ ≤ ⟨1,x⟩/k,  ⟨1,x⟩ ≤ rhs
//
// the biased variant of the top-k simplex projection. a is reordered in
// place.
func SimplexBiased(a []float64, k int, rhs, rho float64) prox.Thresholds {
	n := len(a)
	checkK(k, n)
	if rho < 0 {
		panic("topk: rho must be non-negative")
	}
	K := float64(k)
	eps := epsilon * max(1, math.Abs(rhs))

	kase, th := coneSpecialCases(a, k, K+rho*K*K)
	switch kase {
	case caseZero:
		return th
	case caseConstant:
		if K*th.Hi > rhs+eps {
			return knapsack.Eq(a, 0, rhs/K, rhs)
		}
		return th
	}

	t := knapsack.Eq(a, 0, rhs/K, rhs)
	if isSimplexBiasedBelowCone(a, t.First, t.T, K, rhs, rho, eps) {
		return coneSearch(a, k, rho)
	}
	return t
}
