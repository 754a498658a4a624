// Copyright ©2014 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package knapsack implements the continuous quadratic knapsack family of
// proximal operators: projection onto a box intersected with an
// equality or inequality sum constraint, via Kiwiel's variable-fixing
// algorithm.
package knapsack

import (
	"math"

	"gonum.org/v1/sdca/prox"
)

const epsilon = 2.220446049250313e-16

func checkBounds(lo, hi float64) {
	if lo > hi {
		panic("knapsack: lo must not exceed hi")
	}
}

// Eq returns the Thresholds solving
//
//	min ½‖x - a‖²  s.t.  ⟨1,x⟩ = rhs,  lo ≤ xᵢ ≤ hi
//
// using Kiwiel's variable-fixing algorithm (Kiwiel, K.C., "Variable fixing
// algorithms for the continuous quadratic knapsack problem", JOTA 136.3
// (2008)). a is reordered in place.
func Eq(a []float64, lo, hi, rhs float64) prox.Thresholds {
	checkBounds(lo, hi)
	n := len(a)
	if n == 0 {
		panic("knapsack: a must not be empty")
	}
	eps := epsilon * math.Max(1, math.Abs(rhs))

	t := (prox.Sum(a, 0, n) - rhs) / float64(n)

	mFirst, mLast := 0, n
	for {
		tt := lo + t
		loIt := prox.PartitionGreater(a, mFirst, mLast, tt)
		infeasLo := math.Max(0, tt*float64(mLast-loIt)-prox.Sum(a, loIt, mLast))

		tt = hi + t
		hiIt := prox.PartitionGreater(a, mFirst, loIt, tt)
		infeasHi := math.Max(0, -tt*float64(hiIt-mFirst)+prox.Sum(a, mFirst, hiIt))

		if math.Abs(infeasHi-infeasLo) <= eps {
			mFirst, mLast = hiIt, loIt
			break
		} else if infeasLo < infeasHi {
			mFirst = hiIt
			tt = -infeasHi
		} else {
			mLast = loIt
			tt = infeasLo
		}
		if mFirst == mLast {
			break
		}
		t += tt / float64(mLast-mFirst)
	}

	// Recompute t directly from the final partition for numerical accuracy
	// (Lemma 5.3 of Kiwiel 2008).
	tLo := math.Inf(-1)
	tHi := math.Inf(1)
	if mLast != n {
		tLo = prox.Max(a, mLast, n) - lo
	}
	if mFirst != 0 {
		tHi = prox.Min(a, 0, mFirst) - hi
	}
	if mFirst != mLast {
		t = (prox.Sum(a, mFirst, mLast) - rhs +
			hi*float64(mFirst) + lo*float64(n-mLast)) / float64(mLast-mFirst)
		t = math.Max(tLo, math.Min(t, tHi))
	} else {
		t = 0.5 * (tLo + tHi)
	}

	return prox.NewRange(t, lo, hi, mFirst, mLast)
}

// LE returns the Thresholds solving
//
//	min ½‖x - a‖²  s.t.  ⟨1,x⟩ ≤ rhs,  lo ≤ xᵢ ≤ hi
//
// If the unconstrained box projection already satisfies the sum
// constraint, the inequality is inactive and T = 0; otherwise this
// defers to Eq. a is reordered in place.
func LE(a []float64, lo, hi, rhs float64) prox.Thresholds {
	checkBounds(lo, hi)
	n := len(a)
	eps := epsilon * math.Max(1, math.Abs(rhs))

	mFirst := partitionAtLeast(a, 0, n, hi)
	mLast := prox.PartitionGreater(a, mFirst, n, lo)

	s := prox.Sum(a, mFirst, mLast) + hi*float64(mFirst) + lo*float64(n-mLast)
	if s > rhs+eps {
		return Eq(a, lo, hi, rhs)
	}
	return prox.NewRange(0, lo, hi, mFirst, mLast)
}

// partitionAtLeast reorders a[first:last] so that every element >= t
// precedes every element < t, returning the boundary.
func partitionAtLeast(a []float64, first, last int, t float64) int {
	i, j := first, last-1
	for {
		for i < last && a[i] >= t {
			i++
		}
		for j >= first && a[j] < t {
			j--
		}
		if i >= j {
			return i
		}
		a[i], a[j] = a[j], a[i]
		i++
		j--
	}
}

// LEBiased returns the Thresholds solving
//
//	min ½(⟨x,x⟩ + ρ⟨1,x⟩²) - ⟨a,x⟩  s.t.  ⟨1,x⟩ ≤ rhs,  lo ≤ xᵢ ≤ hi
//
// If rho is 0 this defers to LE. Otherwise it first tries Eq, and falls
// back to an exhaustive descending-sort U/M search if Eq's multiplier
// would violate the inequality. a is reordered in place.
func LEBiased(a []float64, lo, hi, rhs, rho float64) prox.Thresholds {
	checkBounds(lo, hi)
	if rho < 0 {
		panic("knapsack: rho must be non-negative")
	}
	if rho == 0 {
		return LE(a, lo, hi, rhs)
	}

	eps := epsilon * math.Max(1, math.Abs(rhs))
	t := Eq(a, lo, hi, rhs)
	if t.T >= rho*rhs-eps {
		return t
	}
	return leBiasedSearch(a, lo, hi, rhs, rho)
}

func leBiasedSearch(a []float64, lo, hi, rhs, rho float64) prox.Thresholds {
	n := len(a)
	eps := epsilon * math.Max(1, math.Abs(rhs))
	prox.SortDescending(a, 0, n)

	rhoRhs := rho * rhs
	rhoInverse := 1 / rho
	numX := float64(n)
	numU, minU := 0.0, math.Inf(1)

	for mFirst := 0; ; {
		minM, maxM := math.Inf(1), math.Inf(-1)
		numM, sumM := 0.0, 0.0
		numL := numX - numU

		for mLast := mFirst; ; {
			t := (lo*numL + hi*numU + sumM) / (rhoInverse + numM)
			if t <= rhoRhs+eps {
				tt := hi + t
				if maxM-eps <= tt && tt <= minU+eps {
					tt = lo + t
					atEnd := mLast == n
					if tt <= minM+eps && (atEnd || a[mLast]-eps <= tt) {
						return prox.NewRange(t, lo, hi, mFirst, mLast)
					}
				}
			}

			if mLast == n {
				break
			}
			minM = a[mLast]
			maxM = a[mFirst]
			sumM += minM
			numL--
			numM++
			mLast++
		}

		if mFirst == n {
			break
		}
		minU = a[mFirst]
		numU++
		mFirst++
	}

	return prox.NewRange(0, 0, 0, 0, 0)
}
