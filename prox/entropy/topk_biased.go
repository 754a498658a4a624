// Copyright ©2014 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package entropy

import (
	"math"

	"gonum.org/v1/sdca/numeric"
	"gonum.org/v1/sdca/numeric/lambert"
	"gonum.org/v1/sdca/prox"
)

// kktStep performs one Newton update of the (s, t) system
//
//	f1(s,t) = (1 + ρ/k)·α·s + ρ·log(s) - log(1-s) - (1-ρ)·t + ρ·log(α/k) - Σ_U aᵢ/k
//	f2(s,t) = (1-ρ)·α·s - Σ_M V(aᵢ - t),  ρ = numU/k,  V(x) = W₀(exp(x))
//
// arising from the KKT conditions of TopKBiased, given s and t
// near 0 and 1 separately to keep the update numerically stable.
func kktStep(a []float64, mFirst, last int, k, alpha, numU, beta, s, t float64) (float64, float64) {
	var sum0, sum1 float64
	for _, v := range a[mFirst:last] {
		x := lambert.WExp(v - t)
		sum0 += x
		sum1 += x / (1 + x)
	}

	var A, B, C float64
	if s < 0.5 {
		k1s := k / (1 - s)
		A = s*(k*k1s+(k*k+numU)*alpha) + k*numU
		B = s*(s*k1s+k*math.Log1p(-s)+beta) - numU*numeric.XLogX(s)
		C = s
	} else {
		z := 1 - s
		A = k*(k-numU+numU/(1-z)) + (k*k+numU)*alpha*z
		B = k*((1-z)+numeric.XLogX(z)) + z*(beta-numU*math.Log1p(-z))
		C = z
	}

	sum0TSum1 := sum0 + t*sum1
	kU := k - numU
	denom := A*sum1 + alpha*(kU*kU)*C

	newS := k * (sum0TSum1*kU*C + B*sum1) / denom
	newT := (A*sum0TSum1 - alpha*kU*B) / denom
	return newS, newT
}

// kktIterate runs up to lambert.MaxIterations Newton steps of kktStep
// from the initial guess (s, t), clamping s to [0, 1] between steps.
func kktIterate(a []float64, mFirst, last int, k, alpha, logAlphaK, numU, sumU, s, t float64) (float64, float64) {
	const lb, ub = 0, 1
	eps := 16 * epsilon
	beta := sumU + numU + numU*logAlphaK

	for iter := 0; iter < lambert.MaxIterations; iter++ {
		s1, t1 := s, t
		if s < lb {
			s = lb
		} else if s > ub {
			s = ub
		}
		s, t = kktStep(a, mFirst, last, k, alpha, numU, beta, s, t)
		if math.Abs(s1-s)+math.Abs(t1-t) <= eps {
			break
		}
	}
	if s < lb {
		s = lb
	} else if s > ub {
		s = ub
	}
	return s, t
}

// TopKBiased returns the Thresholds solving
//
//	min ½α(⟨x,x⟩ + s²) + ⟨x, log x⟩ + (1-s)log(1-s) - ⟨a, x⟩
//	    s.t.  ⟨1,x⟩ = s ≤ 1,  0 ≤ xᵢ ≤ s/k
//
// The hardest prox in the family to solve. The solution shape is
// xᵢ = clamp(0, W₀(exp(aᵢ-t))/α, s/k); each candidate saturated-set size
// is solved for (s,t) by kktIterate and tested for feasibility before
// growing the saturated set further. a is reordered in place.
func TopKBiased(a []float64, k int, alpha float64) prox.Thresholds {
	n := len(a)
	checkK(k, n)
	if alpha <= 0 {
		panic("entropy: alpha must be positive")
	}
	K := float64(k)
	alphaK := alpha / K
	logAlphaK := math.Log(alphaK)

	maxIdx := indexOfMax(a, 0, n)
	eps := 16 * epsilon * math.Max(1, a[maxIdx])

	var s, t float64
	sumU := 0.0
	minU := math.Inf(1)
	mFirst := 0
	for numU := 0; ; {
		a[mFirst], a[maxIdx] = a[maxIdx], a[mFirst]

		s, t = 1, a[mFirst]
		s, t = kktIterate(a, mFirst, n, K, alpha, logAlphaK, float64(numU), sumU, s, t)

		numU++
		if numU >= k {
			break
		}

		tt := lambert.WExpInverse(alphaK*s) + t
		if a[mFirst]-eps <= tt && tt <= minU+eps {
			break
		}

		minU = a[mFirst]
		sumU += a[mFirst]
		mFirst++
		maxIdx = indexOfMax(a, mFirst, n)
	}

	hi := s / K
	return prox.Thresholds{T: t, Lo: 0, Hi: hi, First: mFirst, Last: n, Map: prox.AlphaLambert, Alpha: 1 / alpha}
}
