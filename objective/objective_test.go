// Copyright ©2014 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package objective

import (
	"math"
	"testing"
)

func TestL2HingeTopKDualFeasible(t *testing.T) {
	o := L2HingeTopK{C: 1, K: 2}
	variables := []float64{0.1, -0.2, -0.1, -0.3}
	scores := []float64{0.5, 0.2, -0.1, 0.4}
	o.UpdateDual(2, variables, scores)

	if variables[0] < 0 || variables[0] > o.C {
		t.Errorf("variables[0] = %v, want in [0, %v]", variables[0], o.C)
	}
	for _, v := range variables[1:] {
		if v > 0 {
			t.Errorf("negative-class dual %v should be <= 0", v)
		}
	}
}

func TestL2EntropyTopKDualFeasible(t *testing.T) {
	o := NewL2EntropyTopK(1, 2)
	variables := []float64{0.2, -0.1, -0.2, -0.05}
	scores := []float64{0.5, 0.2, -0.1, 0.4}
	o.UpdateDual(1.5, variables, scores)

	if variables[0] < 0 || variables[0] > o.C {
		t.Errorf("variables[0] = %v, want in [0, %v]", variables[0], o.C)
	}
	for _, v := range variables[1:] {
		if v > 1e-9 {
			t.Errorf("negative-class dual %v should be <= 0", v)
		}
	}
}

func TestL2MultilabelHingePrimalLoss(t *testing.T) {
	o := L2MultilabelHinge{C: 1}
	scores := []float64{0.5, 0.6, 0.1, -0.3}
	loss := o.PrimalLoss(2, scores)
	want := math.Max(0, 0.1-0.5+1)
	if math.Abs(loss-want) > 1e-9 {
		t.Errorf("PrimalLoss = %v, want %v", loss, want)
	}
}

func TestL2MultilabelEntropyDualFeasible(t *testing.T) {
	o := NewL2MultilabelEntropy(1)
	variables := []float64{0.3, 0.1, -0.2, -0.05}
	scores := []float64{0.5, 0.2, -0.1, 0.4}
	o.UpdateDual(2, 2, variables, scores)

	for _, v := range variables[2:] {
		if v > 1e-9 {
			t.Errorf("negative-class dual %v should be <= 0", v)
		}
	}
}

func TestL2EntropyNNFeaturesDualFeasible(t *testing.T) {
	o := NewL2EntropyNNFeatures(1)
	variables := []float64{0.2, -0.1, -0.2, -0.05}
	scores := []float64{0.5, 0.2, -0.1, 0.4}
	o.UpdateDual(2, variables, scores)

	if variables[0] < 0 || variables[0] > o.C+1e-9 {
		t.Errorf("variables[0] = %v, want in [0, %v]", variables[0], o.C)
	}
	for _, v := range variables[1:] {
		if v > 1e-9 {
			t.Errorf("negative-class dual %v should be <= 0", v)
		}
	}
}
