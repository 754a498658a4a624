// Copyright ©2014 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package twoblock implements the coupled two-block proximal operators:
// a pair of probability-simplex or entropy projections linked by a
// shared budget, solved jointly rather than independently.
package twoblock

import (
	"math"

	"gonum.org/v1/sdca/numeric/lambert"
	"gonum.org/v1/sdca/prox"
)

const epsilon = 2.220446049250313e-16
const minNormalFloat64 = 2.2250738585072014e-308

// Entropy returns the Thresholds pair solving
//
//	min ½α‖x - a/α - 1/p‖² + ⟨x,log x⟩ + ½α‖y - b/α‖² + ⟨y,log y⟩
//	s.t.  ⟨1,x⟩ + ⟨1,y⟩ = 1,  0 ≤ xᵢ, 0 ≤ yⱼ
//
// where p = len(a). The solution shape is x = W₀(exp(a-t))/α,
// y = W₀(exp(b-s))/α with s = t + α/p, found by a single order-4
// Householder iteration over the coupled equation
//
//	Σ W₀(exp(aᵢ-t)) + Σ W₀(exp(bⱼ-t-c)) = α,  c = α/p.
func Entropy(a, b []float64, alpha float64) (prox.Thresholds, prox.Thresholds) {
	c := alpha / float64(len(a))
	t := math.Max(prox.Max(a, 0, len(a)), prox.Max(b, 0, len(b))-c)

	for iter := 0; iter < lambert.MaxIterations; iter++ {
		t1 := t

		f0a, f1a, f2a, f3a := lambert.SumWExpDerivatives4(a, -t)
		f0b, f1b, f2b, f3b := lambert.SumWExpDerivatives4(b, -t-c)
		f0 := f0a + f0b - alpha
		f1 := f1a + f1b
		f2 := f2a + f2b
		f3 := f3a + f3b

		f02, f11 := f0*f2, f1*f1
		d := 6*f1*(f02-f11) - f0*(f0*f3)
		if math.Abs(d) > 64*minNormalFloat64 {
			t -= 3 * f0 * (2*f11 - f02) / d
		}
		if math.Abs(t1-t) <= epsilon {
			break
		}
	}

	lo, hi := 0.0, 1.0
	alphaInv := 1 / alpha
	return prox.Thresholds{T: t, Lo: lo, Hi: hi, First: 0, Last: len(a), Map: prox.AlphaLambert, Alpha: alphaInv},
		prox.Thresholds{T: t + c, Lo: lo, Hi: hi, First: 0, Last: len(b), Map: prox.AlphaLambert, Alpha: alphaInv}
}
