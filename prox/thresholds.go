// Copyright ©2014 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package prox defines the Thresholds representation shared by every
// proximal operator in the sdca module and the apply layer that
// materializes a projected vector from it.
package prox

import (
	"math"

	"gonum.org/v1/sdca/numeric/lambert"
)

// MapKind selects the elementwise post-map a Thresholds value applies
// after shifting by T and before clamping to [Lo, Hi]. The zero value,
// Identity, is the map used by every quadratic-objective operator
// (knapsack, top-k cone/simplex); the entropic operators use Exp, Lambert
// or AlphaLambert instead.
type MapKind int

const (
	// Identity leaves x - t unchanged; used by quadratic objectives.
	Identity MapKind = iota
	// Exp applies exp(x - t); used by entropy.Entropy and entropy.TopK.
	Exp
	// Lambert applies W₀(exp(x - t)); used by entropy.Norm.
	Lambert
	// AlphaLambert applies Alpha·W₀(exp(x - t)); used by entropy.TopKBiased
	// and twoblock.Entropy.
	AlphaLambert
)

// Thresholds is the compact, immutable record returned by a prox
// computation and consumed by Apply: a shift T, saturation bounds
// [Lo, Hi], the half-open index range [First, Last) of the partitioned
// input slice that was left unsaturated, and an optional post-map.
//
// The effective elementwise rule is
//
//	x ↦ clamp(Lo, map(x - T), Hi)
//
// Positions before First saturated to Hi (or to the zero/constant special
// case thresholds produced by the top-k cone search); positions at or
// after Last saturated to Lo. Ill is a flag for a root finder that hit its
// iteration limit before reaching tolerance; no operator in this module
// sets it, so it is false in every Thresholds they return, and hitting the
// iteration limit is not reported.
type Thresholds struct {
	T, Lo, Hi   float64
	First, Last int
	Map         MapKind
	Alpha       float64
	Ill         bool
}

// New returns a Thresholds with Map set to Identity and the given shift
// and saturation bounds, covering the whole range [0, n).
func New(t, lo, hi float64, n int) Thresholds {
	return Thresholds{T: t, Lo: lo, Hi: hi, First: 0, Last: n}
}

// NewRange is like New but restricts the non-saturated range to
// [first, last).
func NewRange(t, lo, hi float64, first, last int) Thresholds {
	return Thresholds{T: t, Lo: lo, Hi: hi, First: first, Last: last}
}

func (t Thresholds) apply(x float64) float64 {
	var y float64
	switch t.Map {
	case Identity:
		y = x - t.T
	case Exp:
		y = math.Exp(x - t.T)
	case Lambert:
		y = lambert.WExp(x - t.T)
	case AlphaLambert:
		y = t.Alpha * lambert.WExp(x-t.T)
	}
	if y < t.Lo {
		return t.Lo
	}
	if y > t.Hi {
		return t.Hi
	}
	return y
}

// Apply overwrites a in place with the projection described by t. It is
// the in-place, no-scratch call shape used by every objective update.
func Apply(a []float64, t Thresholds) {
	for i, x := range a {
		a[i] = t.apply(x)
	}
}

// ApplyTo writes the projection described by t for src into dst. dst and
// src must have the same length and must not overlap.
func ApplyTo(dst, src []float64, t Thresholds) {
	if len(dst) != len(src) {
		panic("prox: length of destination does not match length of the source")
	}
	for i, x := range src {
		dst[i] = t.apply(x)
	}
}

// ApplyStrided applies one Thresholds per column of a dim-row,
// len(a)/dim-column matrix stored column-major in a (each column is a
// contiguous block of dim elements), where len(ts) == len(a)/dim.
// It is the batched call shape used when applying a different threshold
// to each class column.
func ApplyStrided(a []float64, dim int, ts []Thresholds) {
	if dim <= 0 {
		panic("prox: dim must be positive")
	}
	if len(a)%dim != 0 {
		panic("prox: length of a is not a multiple of dim")
	}
	if len(ts) != len(a)/dim {
		panic("prox: length of ts does not match number of columns")
	}
	for col, t := range ts {
		start := col * dim
		Apply(a[start:start+dim], t)
	}
}

// DotProxProx returns ⟨prox(x), prox(x)⟩ without materializing prox(x)
// explicitly, using the partition and shift recorded in t. It requires
// t.Map == Identity (the quadratic-objective operators), since entropic
// maps do not admit a closed form in terms of the raw sums.
func DotProxProx(a []float64, t Thresholds) float64 {
	numHi := float64(t.First)
	numMi := float64(t.Last - t.First)
	numLo := float64(len(a) - t.Last)
	var sumMi, dotMi float64
	for _, x := range a[t.First:t.Last] {
		sumMi += x
		dotMi += x * x
	}
	return t.Hi*t.Hi*numHi + t.T*t.T*numMi + t.Lo*t.Lo*numLo +
		dotMi - 2*t.T*sumMi
}

// DotXProx returns ⟨a, prox(a)⟩ without materializing prox(a) explicitly.
// It requires t.Map == Identity, as DotProxProx does.
func DotXProx(a []float64, t Thresholds) float64 {
	var sumHi, sumMi, sumLo, dotMi float64
	for _, x := range a[:t.First] {
		sumHi += x
	}
	for _, x := range a[t.First:t.Last] {
		sumMi += x
		dotMi += x * x
	}
	for _, x := range a[t.Last:] {
		sumLo += x
	}
	return t.Hi*sumHi - t.T*sumMi + t.Lo*sumLo + dotMi
}
