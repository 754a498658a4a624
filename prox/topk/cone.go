// Copyright ©2014 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package topk implements the top-k cone and top-k simplex families of
// proximal operators: projection onto the set of vectors in which no
// coordinate exceeds 1/k of the total sum, optionally also capped by a
// sum constraint.
package topk

import (
	"math"

	"gonum.org/v1/sdca/prox"
)

const epsilon = 2.220446049250313e-16

func checkK(k, n int) {
	if k < 1 || k > n {
		panic("topk: k must satisfy 1 <= k <= len(a)")
	}
}

type coneCase int

const (
	caseZero coneCase = iota
	caseConstant
	caseGeneral
)

// coneSpecialCases sorts a[0:n] in descending order and checks the two
// closed-form special cases of the top-k cone projection: an
// all-zero projection when the k-largest sum is non-positive, and a
// constant-hi projection on the k largest entries when that hi certifies
// against the remainder. divConst is k for the unbiased cone and
// k + rho*k² for the biased one.
func coneSpecialCases(a []float64, k int, divConst float64) (coneCase, prox.Thresholds) {
	n := len(a)
	prox.SortDescending(a, 0, n)

	eps := 16 * epsilon
	sumK := prox.Sum(a, 0, k)
	if sumK <= eps {
		return caseZero, prox.NewRange(0, 0, 0, 0, 0)
	}

	hi := sumK / divConst
	t := a[k-1] - hi
	if k == n || t >= prox.Max(a, k, n)-eps {
		return caseConstant, prox.NewRange(t, 0, hi, k, k)
	}
	return caseGeneral, prox.Thresholds{}
}

// Cone returns the Thresholds solving
//
//	min ½‖x - a‖²  s.t.  0 ≤ xᵢ ≤ ⟨1,x⟩/k
//
// the projection onto the top-k cone. a is reordered in place.
func Cone(a []float64, k int) prox.Thresholds {
	n := len(a)
	checkK(k, n)
	kase, th := coneSpecialCases(a, k, float64(k))
	if kase != caseGeneral {
		return th
	}
	return coneSearch(a, k, 0)
}

// ConeBiased returns the Thresholds solving
//
//	min ½(⟨x,x⟩ + ρ⟨1,x⟩²) - ⟨a,x⟩  s.t.  0 ≤ xᵢ ≤ ⟨1,x⟩/k
//
// the biased variant, which additionally penalizes the squared sum of x.
// a is reordered in place.
func ConeBiased(a []float64, k int, rho float64) prox.Thresholds {
	n := len(a)
	checkK(k, n)
	if rho < 0 {
		panic("topk: rho must be non-negative")
	}
	K := float64(k)
	kase, th := coneSpecialCases(a, k, K+rho*K*K)
	if kase != caseGeneral {
		return th
	}
	return coneSearch(a, k, rho)
}

// coneSearch sorts a[0:n] descending and performs the exhaustive U/M
// partition search common to Cone and ConeBiased's general cases; it
// re-sorts unconditionally since callers such as Simplex may have
// scrambled a's order in between. rho == 0 recovers the unbiased cone.
func coneSearch(a []float64, k int, rho float64) prox.Thresholds {
	n := len(a)
	prox.SortDescending(a, 0, n)
	eps := 16 * epsilon
	K := float64(k)

	kMinusNumU := K
	numUTerm := rho * K * K // added to numU in the biased D formula
	minU := math.Inf(1)
	numU, sumU := 0.0, 0.0

	for mFirst := 0; ; {
		minM, maxM := math.Inf(1), math.Inf(-1)
		sumM, numMSumU := 0.0, 0.0
		// D = (k - numU)^2 + (numU + rho*k^2) * numM, accumulated as numM grows.
		base := kMinusNumU * kMinusNumU
		coef := numU + numUTerm
		D := base
		kMinusNumUSumU := kMinusNumU * sumU

		for mLast := mFirst; ; {
			t := (coef*sumM - kMinusNumUSumU) / D
			hi := (numMSumU + kMinusNumU*sumM) / D
			tt := hi + t
			if maxM-eps <= tt && tt <= minU+eps {
				atEnd := mLast == n
				if t <= minM+eps && (atEnd || a[mLast]-eps <= t) {
					return prox.NewRange(t, 0, hi, mFirst, mLast)
				}
			}

			if mLast == n {
				break
			}
			minM = a[mLast]
			maxM = a[mFirst]
			sumM += minM
			numMSumU += sumU
			D += coef
			mLast++
		}

		if mFirst == k {
			break
		}
		minU = a[mFirst]
		sumU += minU
		kMinusNumU--
		numU++
		mFirst++
	}

	return prox.NewRange(0, 0, 0, 0, 0)
}
