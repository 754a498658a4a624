// Copyright ©2014 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package lambert computes the principal branch of the Lambert W function
// composed with exp, W₀(exp(x)), and the Householder root finder built on
// top of it that the entropy-regularized prox operators use to solve
// Σ W₀(exp(a_i − t)) = r for t.
package lambert

import "math"

// Omega is W₀(1), the unique solution of w·exp(w) = 1 (equivalently
// w + log(w) = 0). It is also lambert.WExp(0).
const Omega = 0.5671432904097838729999686622103555497538157871865125081351310792230457930866

// ExpApprox is a fast, crude approximation of exp(x) as (1 + x/1024)^1024.
// It is accurate to about 0.1% on [-1024, 1] and is only intended as a
// seed for the Householder iteration in WExp, never as a general exp
// replacement.
func ExpApprox(x float64) float64 {
	y := 1 + x/1024
	y *= y
	y *= y
	y *= y
	y *= y
	y *= y
	y *= y
	y *= y
	y *= y
	y *= y
	y *= y
	return y
}

// iter5 performs one step of the order-5 Householder iteration for
// w - z*exp(-w) = 0, given the current estimate w and y = z*exp(-w).
func iter5(w, y float64) float64 {
	f0 := w - y
	f1 := 1 + y
	f11 := f1 * f1
	f0y := f0 * y
	f00y := f0 * f0y
	return w - 4*f0*(6*f1*(f11+f0y)+f00y)/
		(f11*(24*f11+36*f0y)+f00y*(14*y+f0+8))
}

// WExp returns w = W₀(exp(x)), the principal branch of the Lambert W
// function of exp(x), satisfying w + log(w) = x (equivalently
// w·exp(w) = exp(x)). For positive x the result satisfies
// |w + log(w) - x| ≤ 4·eps·max(1, x); for x ≤ 0 it satisfies
// |w·exp(w) - exp(x)| ≤ 4·eps, where eps is float64 machine epsilon.
func WExp(x float64) float64 {
	var w float64
	switch {
	case x > 0:
		if x <= 4 {
			w = iter5(x, 1)
		} else if x <= 576460752303423488.0 {
			w = x - math.Log(x)
			w = iter5(w, x)
		} else {
			return x
		}
	case x > -36:
		w = ExpApprox(x)
		if x > -20 {
			w = iter5(w, ExpApprox(x-w))
		}
	default:
		if x > -746 {
			return math.Exp(x)
		}
		return 0
	}
	return iter5(w, math.Exp(x-w))
}

// WExpInverse returns the inverse of WExp: x = w + log(w).
func WExpInverse(w float64) float64 {
	return w + math.Log(w)
}

// SumWExp returns Σ W₀(exp(a_i + t)).
func SumWExp(a []float64, t float64) float64 {
	var f0 float64
	for _, v := range a {
		f0 += WExp(v + t)
	}
	return f0
}

// SumWExpDerivatives2 returns f0 = Σ W₀(exp(a_i + t)) and f1 = df0/dt.
func SumWExpDerivatives2(a []float64, t float64) (f0, f1 float64) {
	for _, v := range a {
		w := WExp(v + t)
		f0 += w
		f1 += w / (1 + w)
	}
	return f0, f1
}

// SumWExpDerivatives3 additionally returns f2 = d²f0/dt².
func SumWExpDerivatives3(a []float64, t float64) (f0, f1, f2 float64) {
	for _, v := range a {
		w := WExp(v + t)
		d := 1 + w
		f0 += w
		f1 += w / d
		f2 += w / (d * d * d)
	}
	return f0, f1, f2
}

// SumWExpDerivatives4 additionally returns f3 = d³f0/dt³.
func SumWExpDerivatives4(a []float64, t float64) (f0, f1, f2, f3 float64) {
	for _, v := range a {
		w := WExp(v + t)
		d := 1 + w
		d3 := d * d * d
		f0 += w
		f1 += w / d
		f2 += w / d3
		f3 += w * (1 - 2*w) / (d3 * d * d)
	}
	return f0, f1, f2, f3
}
