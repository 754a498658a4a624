// Copyright ©2014 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dataset provides a minimal dense training-set view consumed by
// the sdca driver: per-example feature rows paired with either a single
// class label or a set of relevant labels, stored row-major with no
// sparse format and no file I/O.
package dataset

// Dataset is a dense, row-major matrix of NumExamples rows by NumFeatures
// columns, one row per training example.
type Dataset struct {
	data         []float64
	numExamples  int
	numFeatures  int
	numClasses   int
	labels       []int   // one label per example, used by single-label objectives
	labelSets    [][]int // relevant labels per example, used by multilabel objectives
}

// New returns a Dataset wrapping data, a row-major matrix of shape
// (numExamples, numFeatures). data is not copied and must not be modified
// afterwards through any other reference.
func New(data []float64, numExamples, numFeatures, numClasses int) *Dataset {
	if numExamples <= 0 || numFeatures <= 0 || numClasses <= 0 {
		panic("dataset: numExamples, numFeatures and numClasses must be positive")
	}
	if len(data) != numExamples*numFeatures {
		panic("dataset: length of data does not match numExamples*numFeatures")
	}
	return &Dataset{
		data:        data,
		numExamples: numExamples,
		numFeatures: numFeatures,
		numClasses:  numClasses,
	}
}

// SetLabels attaches one ground-truth class index per example, for
// single-label objectives (hinge/entropy top-k, entropy with
// non-negative features). len(labels) must equal NumExamples, and every
// label must satisfy 0 <= label < NumClasses.
func (d *Dataset) SetLabels(labels []int) {
	if len(labels) != d.numExamples {
		panic("dataset: length of labels does not match NumExamples")
	}
	for _, y := range labels {
		if y < 0 || y >= d.numClasses {
			panic("dataset: label out of range")
		}
	}
	d.labels = labels
	d.labelSets = nil
}

// SetLabelSets attaches a set of relevant labels per example, for the
// multilabel objectives. len(sets) must equal NumExamples.
func (d *Dataset) SetLabelSets(sets [][]int) {
	if len(sets) != d.numExamples {
		panic("dataset: length of sets does not match NumExamples")
	}
	for _, s := range sets {
		for _, y := range s {
			if y < 0 || y >= d.numClasses {
				panic("dataset: label out of range")
			}
		}
	}
	d.labelSets = sets
	d.labels = nil
}

// NumExamples returns the number of training examples.
func (d *Dataset) NumExamples() int { return d.numExamples }

// NumFeatures returns the dimensionality of each example's feature row.
func (d *Dataset) NumFeatures() int { return d.numFeatures }

// NumClasses returns the number of classes, i.e. the number of dual
// variables allocated per example.
func (d *Dataset) NumClasses() int { return d.numClasses }

// Row returns the feature row of example i without copying.
func (d *Dataset) Row(i int) []float64 {
	return d.data[i*d.numFeatures : (i+1)*d.numFeatures]
}

// Label returns the ground-truth class of example i. It panics if the
// dataset was built with label sets instead of single labels.
func (d *Dataset) Label(i int) int {
	if d.labels == nil {
		panic("dataset: dataset has no single-label targets")
	}
	return d.labels[i]
}

// LabelSet returns the relevant label set of example i. It panics if the
// dataset was built with single labels instead of label sets.
func (d *Dataset) LabelSet(i int) []int {
	if d.labelSets == nil {
		panic("dataset: dataset has no multilabel targets")
	}
	return d.labelSets[i]
}
