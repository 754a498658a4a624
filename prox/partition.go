// Copyright ©2014 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package prox

import "sort"

// PartitionGreater reorders a[first:last] in place so that every element
// greater than t comes before every element not greater than t, and
// returns the boundary index (relative to the start of a, not of the
// slice a[first:last]). It is the partition step shared by the knapsack,
// top-k and entropy search loops (the "grow U/M" pattern common to all
// of the saturating proximal operators).
func PartitionGreater(a []float64, first, last int, t float64) int {
	i, j := first, last-1
	for {
		for i < last && a[i] > t {
			i++
		}
		for j >= first && !(a[j] > t) {
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

// SortDescending sorts a[first:last] in place in decreasing order, the
// pre-processing step used by every exhaustive U/M search (topk.Cone's
// general case, knapsack.LEBiased's search, etc.).
func SortDescending(a []float64, first, last int) {
	sort.Sort(sort.Reverse(sort.Float64Slice(a[first:last])))
}

// Sum returns Σ a[first:last].
func Sum(a []float64, first, last int) float64 {
	var s float64
	for _, v := range a[first:last] {
		s += v
	}
	return s
}

// Max returns the maximum value in a[first:last]. It panics if the range
// is empty.
func Max(a []float64, first, last int) float64 {
	m := a[first]
	for _, v := range a[first+1 : last] {
		if v > m {
			m = v
		}
	}
	return m
}

// Min returns the minimum value in a[first:last]. It panics if the range
// is empty.
func Min(a []float64, first, last int) float64 {
	m := a[first]
	for _, v := range a[first+1 : last] {
		if v < m {
			m = v
		}
	}
	return m
}
