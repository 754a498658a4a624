// Copyright ©2014 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package numeric provides the elementary floating-point kernels shared by
// the prox packages: the valid argument ranges of log and exp per type,
// x·log(x) and x·exp(x), and numerically stable log-sum-exp reductions.
package numeric

import "math"

// Float64ExpMinArg and Float64ExpMaxArg bound the arguments for which
// math.Exp returns a finite, non-zero float64. Outside this range a caller
// should substitute a saturating value (0 or +Inf) rather than call Exp.
const (
	Float64ExpMinArg = -7.450332961407e+02 // exp of this is the smallest subnormal float64
	Float64ExpMaxArg = 7.097827128933e+02  // log(largest float64)
)

// Float32ExpMinArg and Float32ExpMaxArg are the float32 analogues of
// Float64ExpMinArg and Float64ExpMaxArg. float32 underflows and overflows
// well inside the range a naive log(MinFloat32)/log(MaxFloat32) would
// suggest, so these are the conservative, measured bounds used throughout
// the reference implementation rather than derived ones.
const (
	Float32ExpMinArg = -8.733654022216796875e+01
	Float32ExpMaxArg = 8.872283172607421875e+01
)

// Float64LogMinArg and Float64LogMaxArg bound the arguments for which
// math.Log returns a finite, normal value: the smallest positive normal
// float64 and the largest finite float64.
const (
	Float64LogMinArg = 2.2250738585072014e-308 // smallest normal float64
	Float64LogMaxArg = 1.7976931348623157e+308 // largest float64
)

// Float32LogMinArg and Float32LogMaxArg are the float32 analogues of
// Float64LogMinArg and Float64LogMaxArg.
const (
	Float32LogMinArg = 1.17549435e-38 // smallest normal float32
	Float32LogMaxArg = 3.4028235e+38  // largest float32
)

// XLogX returns x·log(x), defined to be 0 at x == 0 (the continuous
// extension of t·log(t) at the origin).
func XLogX(x float64) float64 {
	if x > 0 {
		return x * math.Log(x)
	}
	return 0
}

// XExpX returns x·exp(x).
func XExpX(x float64) float64 {
	return x * math.Exp(x)
}
