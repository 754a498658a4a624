// Copyright ©2014 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package entropy

import (
	"math"

	"gonum.org/v1/sdca/numeric"
	"gonum.org/v1/sdca/prox"
)

func checkK(k, n int) {
	if k < 1 || k > n {
		panic("entropy: k must satisfy 1 <= k <= len(a)")
	}
}

// TopK returns the Thresholds solving
//
//	min ⟨x, log x⟩ + (1-s)log(1-s) - ⟨a, x⟩  s.t.  ⟨1,x⟩ = s ≤ 1,  0 ≤ xᵢ ≤ s/k
//
// the top-k-constrained entropy prox. It grows a saturated set
// U by repeatedly moving the current maximum to the front and testing
// feasibility of the log-sum-exp threshold on the remainder, the same
// coordinate-selection pattern as topk.Cone's general case but driven by
// log-sum-exp rather than linear sums. a is reordered in place.
func TopK(a []float64, k int) prox.Thresholds {
	n := len(a)
	checkK(k, n)
	eps := 16 * epsilon
	K := float64(k)

	maxIdx := indexOfMax(a, 0, n)
	logZ, logZ1, z := numeric.LogSumExpBoth(a)
	t := logZ1
	if k <= 1 || a[maxIdx]-eps <= logZ-math.Log(K) {
		return prox.Thresholds{T: t, Lo: 0, Hi: 1, First: 0, Last: n, Map: prox.Exp}
	}

	minU, sumU, kU := 0.0, 0.0, K
	mFirst := 0
	for numU := 1; numU < k; numU++ {
		minU = a[maxIdx]
		sumU += minU
		a[mFirst], a[maxIdx] = a[maxIdx], a[mFirst]
		mFirst++
		kU--
		maxIdx = indexOfMax(a, mFirst, n)
		logZ, _, z = numeric.LogSumExpBoth(a[mFirst:n])

		tt := logZ - math.Log(kU)
		if a[maxIdx]-eps <= tt && tt <= minU+eps {
			break
		}
	}

	maxVal := a[maxIdx]
	tmp := ((K-kU)*logZ + kU*math.Log(kU) - sumU) / K
	b := math.Exp(tmp-maxVal) / K
	t = maxVal + math.Log1p(z+b) - math.Log(kU/K)
	hi := (1 + z) / ((1 + z + b) * K)

	return prox.Thresholds{T: t, Lo: 0, Hi: hi, First: mFirst, Last: n, Map: prox.Exp}
}
