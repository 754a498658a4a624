// Copyright ©2014 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package twoblock

import "gonum.org/v1/sdca/prox"

// marginAt returns a[r] if r is still within bounds, or a "pseudo point"
// C below the last element otherwise — the sentinel the grid search in
// SimplexSort uses to terminate growth past the end of a sorted slice.
func marginAt(a []float64, r int, c float64) float64 {
	if r < len(a) {
		return a[r]
	}
	return a[len(a)-1] - c
}

// SimplexSort is an alternative algorithm for the same problem as
// Simplex, ported from the bipartite margin solver of
// Shalev-Shwartz's SOPOPO: sort both sides descending and walk a grid of
// candidate "active set size" pairs (r, s), advancing whichever side's
// next grid point is smaller until the optimal shared level c falls
// inside the current interval. a and b are reordered in place.
func SimplexSort(a, b []float64, rhs float64) (prox.Thresholds, prox.Thresholds) {
	lo, hi := 0.0, rhs
	eps := epsilon * max(1, rhs)

	prox.SortDescending(a, 0, len(a))
	prox.SortDescending(b, 0, len(b))

	c, bigC := 0.0, rhs
	bestC := rhs
	sumMu, sumNu := a[0], b[0]
	r, s := 1, 1

	aR := marginAt(a, r, bigC)
	bS := marginAt(b, s, bigC)

	for c < bigC {
		cOpt := (float64(s)*sumMu + float64(r)*sumNu) / float64(r+s)

		nextCr := (sumMu + aR) - float64(r+1)*aR
		nextCs := (sumNu + bS) - float64(s+1)*bS
		nextC := min(nextCr, nextCs, bigC)

		if c <= cOpt && cOpt < nextC {
			bestC = cOpt
			break
		}
		if nextC >= bigC-eps {
			bestC = bigC
			break
		}

		if nextCr < nextCs {
			sumMu += aR
			r++
			aR = marginAt(a, r, bigC)
		} else {
			sumNu += bS
			s++
			bS = marginAt(b, s, bigC)
		}
		c = nextC
	}

	thetaA := (sumMu - bestC) / float64(r)
	thetaB := (sumNu - bestC) / float64(s)

	return prox.NewRange(thetaA, lo, hi, 0, r), prox.NewRange(thetaB, lo, hi, 0, s)
}
