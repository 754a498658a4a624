// Copyright ©2014 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package entropy

import (
	"math"
	"testing"

	"gonum.org/v1/sdca/prox"
)

func project(a []float64, th prox.Thresholds) []float64 {
	b := append([]float64(nil), a...)
	prox.Apply(b, th)
	return b
}

func sum(x []float64) float64 {
	var s float64
	for _, v := range x {
		s += v
	}
	return s
}

func maxOf(x []float64) float64 {
	m := x[0]
	for _, v := range x[1:] {
		if v > m {
			m = v
		}
	}
	return m
}

func TestEntropyScenario(t *testing.T) {
	a := []float64{1, 0, -1}
	th := Entropy(append([]float64(nil), a...), 1, 1)
	x := project(a, th)

	want := []float64{0.665, 0.245, 0.090}
	for i := range want {
		if math.Abs(x[i]-want[i]) > 2e-3 {
			t.Errorf("x[%d] = %v, want ~%v", i, x[i], want[i])
		}
	}
	if s := sum(x); math.Abs(s-1) > 1e-9 {
		t.Errorf("sum(x) = %v, want 1", s)
	}
	if maxOf(x) >= 1 {
		t.Errorf("no entry should saturate at hi=1: %v", x)
	}
}

func TestEntropyFeasibility(t *testing.T) {
	cases := []struct {
		a  []float64
		hi float64
	}{
		{[]float64{10, 10, 10, 10}, 1},
		{[]float64{100, -100, 0}, 1},
		{[]float64{1, 1, 0}, 0.4},
	}
	for _, c := range cases {
		th := Entropy(append([]float64(nil), c.a...), c.hi, 1)
		x := project(c.a, th)
		if s := sum(x); math.Abs(s-1) > 1e-6 {
			t.Errorf("Entropy(%v): sum = %v, want 1", c.a, s)
		}
		for _, v := range x {
			if v < -1e-9 || v > c.hi+1e-9 {
				t.Errorf("Entropy(%v): x out of [0,%v]: %v", c.a, c.hi, v)
			}
		}
	}
}

func TestNormFeasibility(t *testing.T) {
	cases := [][]float64{
		{1, 0, -1},
		{10, 10, 10, 10},
		{5, -5, 0, 2},
	}
	for _, a := range cases {
		th := Norm(append([]float64(nil), a...), 1, 1)
		x := project(a, th)
		if s := sum(x); math.Abs(s-1) > 1e-6 {
			t.Errorf("Norm(%v): sum = %v, want 1", a, s)
		}
		for _, v := range x {
			if v < -1e-9 || v > 1+1e-9 {
				t.Errorf("Norm(%v): x out of [0,1]: %v", a, v)
			}
		}
	}
}

func TestTopKScenario(t *testing.T) {
	a := []float64{5, 4, 0, 0}
	th := TopK(append([]float64(nil), a...), 2)
	x := project(a, th)

	s := sum(x)
	capVal := s / 2
	for _, v := range x {
		if v < -1e-9 || v > capVal+1e-6 {
			t.Errorf("x out of [0, s/2]: %v > %v", v, capVal)
		}
	}
	if x[0] < x[2]-1e-9 || x[1] < x[3]-1e-9 {
		t.Errorf("expected top two entries at least as large as bottom two: %v", x)
	}
}

func TestTopKTrivialWhenKIsOne(t *testing.T) {
	a := []float64{1, 2, 3}
	th := TopK(append([]float64(nil), a...), 1)
	x := project(a, th)
	// With k = 1 the cap s/k = s never binds, and the (1-s)log(1-s) term
	// keeps s below 1: s = z/(1+z) with z = Σ exp(aᵢ).
	var z float64
	for _, v := range a {
		z += math.Exp(v)
	}
	if s, want := sum(x), z/(1+z); math.Abs(s-want) > 1e-9 {
		t.Errorf("sum(x) = %v, want %v", s, want)
	}
}

func TestTopKBiasedFeasibility(t *testing.T) {
	a := []float64{5, 4, 0, 0}
	th := TopKBiased(append([]float64(nil), a...), 2, 1)
	x := project(a, th)
	s := sum(x)
	capVal := s / 2
	for _, v := range x {
		if v < -1e-9 || v > capVal+1e-6 {
			t.Errorf("x out of [0, s/2]: %v > %v (s=%v)", v, capVal, s)
		}
	}
	if s > 1+1e-6 {
		t.Errorf("sum(x) = %v, want <= 1", s)
	}
}

func TestTopKBiasedPanicsOnNonPositiveAlpha(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("TopKBiased did not panic on alpha <= 0")
		}
	}()
	TopKBiased([]float64{1, 2}, 1, 0)
}
