// Copyright ©2014 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dataset

import "testing"

func TestNewAndRow(t *testing.T) {
	data := []float64{1, 2, 3, 4, 5, 6}
	d := New(data, 2, 3, 4)

	if d.NumExamples() != 2 || d.NumFeatures() != 3 || d.NumClasses() != 4 {
		t.Fatalf("unexpected dimensions: %d %d %d", d.NumExamples(), d.NumFeatures(), d.NumClasses())
	}
	row := d.Row(1)
	want := []float64{4, 5, 6}
	for i, v := range want {
		if row[i] != v {
			t.Errorf("Row(1)[%d] = %v, want %v", i, row[i], v)
		}
	}
}

func TestLabels(t *testing.T) {
	d := New([]float64{1, 2, 3, 4}, 2, 2, 3)
	d.SetLabels([]int{0, 2})
	if d.Label(0) != 0 || d.Label(1) != 2 {
		t.Errorf("unexpected labels: %d %d", d.Label(0), d.Label(1))
	}
}

func TestLabelSets(t *testing.T) {
	d := New([]float64{1, 2, 3, 4}, 2, 2, 3)
	d.SetLabelSets([][]int{{0, 1}, {2}})
	if len(d.LabelSet(0)) != 2 || len(d.LabelSet(1)) != 1 {
		t.Errorf("unexpected label sets")
	}
}

func TestLabelPanicsOnOutOfRange(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for out-of-range label")
		}
	}()
	d := New([]float64{1, 2}, 1, 2, 2)
	d.SetLabels([]int{5})
}

func TestLabelPanicsWhenUnset(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic calling Label on a label-set dataset")
		}
	}()
	d := New([]float64{1, 2}, 1, 2, 2)
	d.SetLabelSets([][]int{{0}})
	d.Label(0)
}
