// Copyright ©2014 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package numeric

import "math"

// LogSumExp returns log(Σ exp(a_i)), computed by shifting out the maximum
// element of a so that the remaining exponentials cannot overflow. It
// returns 0 if a is empty.
func LogSumExp(a []float64) float64 {
	if len(a) == 0 {
		return 0
	}
	m := argmax(a)
	return logSumExpAt(a, m)
}

// Log1SumExp returns log(1 + Σ exp(a_i)). It returns 0 if a is empty. When
// exp(-a_m) (a_m the maximum of a) overflows to +Inf, every exp(a_i) is far
// below 1 and the result is computed directly as log1p(Σ exp(a_i)).
func Log1SumExp(a []float64) float64 {
	if len(a) == 0 {
		return 0
	}
	m := argmax(a)
	return log1SumExpAt(a, m)
}

// LogSumExpBoth computes LogSumExp and Log1SumExp in a single pass and also
// returns s = Σ_{i != argmax} exp(a_i - a_m) for reuse by the caller. It
// returns lse = lse1 = s = 0 if a is empty.
func LogSumExpBoth(a []float64) (lse, lse1, s float64) {
	if len(a) == 0 {
		return 0, 0, 0
	}
	m := argmax(a)
	am := a[m]
	for i, v := range a {
		if i == m {
			continue
		}
		s += math.Exp(v - am)
	}
	lse = am + math.Log1p(s)
	e := math.Exp(-am)
	if math.IsInf(e, 0) || math.IsNaN(e) {
		lse1 = math.Log1p(math.Exp(am) * (1 + s))
	} else {
		lse1 = am + math.Log1p(s+e)
	}
	return lse, lse1, s
}

func logSumExpAt(a []float64, m int) float64 {
	am := a[m]
	var s float64
	for i, v := range a {
		if i == m {
			continue
		}
		s += math.Exp(v - am)
	}
	return am + math.Log1p(s)
}

func log1SumExpAt(a []float64, m int) float64 {
	am := a[m]
	var s float64
	for i, v := range a {
		if i == m {
			continue
		}
		s += math.Exp(v - am)
	}
	e := math.Exp(-am)
	if math.IsInf(e, 0) || math.IsNaN(e) {
		return math.Log1p(math.Exp(am) * (1 + s))
	}
	return am + math.Log1p(s+e)
}

func argmax(a []float64) int {
	m := 0
	for i, v := range a {
		if v > a[m] {
			m = i
		}
	}
	return m
}
