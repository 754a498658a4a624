// Copyright ©2014 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package numeric

import (
	"math"
	"testing"
)

func TestLogSumExpEmpty(t *testing.T) {
	if got := LogSumExp(nil); got != 0 {
		t.Errorf("LogSumExp(nil) = %v, want 0", got)
	}
	if got := Log1SumExp(nil); got != 0 {
		t.Errorf("Log1SumExp(nil) = %v, want 0", got)
	}
	lse, lse1, s := LogSumExpBoth(nil)
	if lse != 0 || lse1 != 0 || s != 0 {
		t.Errorf("LogSumExpBoth(nil) = (%v, %v, %v), want (0, 0, 0)", lse, lse1, s)
	}
}

func TestLogSumExpSingle(t *testing.T) {
	a := []float64{3.5}
	if got, want := LogSumExp(a), 3.5; math.Abs(got-want) > 1e-12 {
		t.Errorf("LogSumExp(%v) = %v, want %v", a, got, want)
	}
	if got, want := Log1SumExp(a), math.Log1p(math.Exp(3.5)); math.Abs(got-want) > 1e-12 {
		t.Errorf("Log1SumExp(%v) = %v, want %v", a, got, want)
	}
}

func TestLogSumExpMatchesNaive(t *testing.T) {
	cases := [][]float64{
		{1, 2, 3},
		{-1000, -1000.5, -999},
		{0, 0, 0, 0},
		{1e3, -1e3},
	}
	for _, a := range cases {
		var naive, naive1 float64
		for _, v := range a {
			naive += math.Exp(v)
			naive1 += math.Exp(v)
		}
		want := math.Log(naive)
		want1 := math.Log1p(naive1)
		if got := LogSumExp(a); math.Abs(got-want) > 1e-9*math.Max(1, math.Abs(want)) {
			t.Errorf("LogSumExp(%v) = %v, want %v", a, got, want)
		}
		if got := Log1SumExp(a); math.Abs(got-want1) > 1e-9*math.Max(1, math.Abs(want1)) {
			t.Errorf("Log1SumExp(%v) = %v, want %v", a, got, want1)
		}
	}
}

func TestLogSumExpBothConsistent(t *testing.T) {
	a := []float64{4, 1, 0, -3, 2.5}
	lse, lse1, _ := LogSumExpBoth(a)
	if got := LogSumExp(a); math.Abs(got-lse) > 1e-12 {
		t.Errorf("LogSumExpBoth lse = %v, want %v", lse, got)
	}
	if got := Log1SumExp(a); math.Abs(got-lse1) > 1e-12 {
		t.Errorf("LogSumExpBoth lse1 = %v, want %v", lse1, got)
	}
}

func TestXLogX(t *testing.T) {
	if got := XLogX(0); got != 0 {
		t.Errorf("XLogX(0) = %v, want 0", got)
	}
	if got, want := XLogX(1), 0.0; got != want {
		t.Errorf("XLogX(1) = %v, want %v", got, want)
	}
	if got, want := XLogX(math.E), math.E; math.Abs(got-want) > 1e-9 {
		t.Errorf("XLogX(e) = %v, want %v", got, want)
	}
}

func TestXExpX(t *testing.T) {
	if got, want := XExpX(0), 0.0; got != want {
		t.Errorf("XExpX(0) = %v, want %v", got, want)
	}
	if got, want := XExpX(1), math.E; math.Abs(got-want) > 1e-9 {
		t.Errorf("XExpX(1) = %v, want %v", got, want)
	}
}
