// Copyright ©2014 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sdca

import (
	"time"

	"golang.org/x/exp/rand"
)

// TrainMultilabel is the multilabel counterpart of Train: each
// example's relevant classes are gathered to the front of its score and
// dual blocks before calling p.Objective.
func TrainMultilabel(p MultilabelProblem, s Settings) (Result, error) {
	if s.Epochs <= 0 {
		panic("sdca: Epochs must be positive")
	}

	start := time.Now()

	d := p.Data
	n, numFeatures, numClasses := d.NumExamples(), d.NumFeatures(), d.NumClasses()

	src := s.Source
	if src == nil {
		src = rand.NewSource(1)
	}
	rnd := rand.New(src)

	weights := make([]float64, numClasses*numFeatures)
	variables := make([]float64, n*numClasses)
	order := identityOrder(n)
	scores := make([]float64, numClasses)
	old := make([]float64, numClasses)
	delta := make([]float64, numClasses)

	var result Result
	result.Status = EpochLimit
	for epoch := 1; epoch <= s.Epochs; epoch++ {
		rnd.Shuffle(n, func(i, j int) { order[i], order[j] = order[j], order[i] })

		for _, idx := range order {
			row := d.Row(idx)
			norm2 := dot(row, row)
			if norm2 == 0 {
				continue
			}

			labels := d.LabelSet(idx)
			classOrder := rotateLabelSetFirst(labels, numClasses)
			vars := variables[idx*numClasses : (idx+1)*numClasses]
			copy(old, vars)
			gatherScores(weights, row, numFeatures, classOrder, scores)

			p.Objective.UpdateDual(norm2, len(labels), vars, scores)

			for j := range delta {
				delta[j] = vars[j] - old[j]
			}
			scatterUpdate(weights, row, numFeatures, classOrder, delta)
		}

		gap := dualityGapMultilabel(p, weights, variables, numFeatures, numClasses)
		if s.Recorder != nil {
			if err := s.Recorder.Record(epoch, gap); err != nil {
				return result, err
			}
		}
		result.Gap = gap
		result.Stats.Epochs = epoch
		if s.Tol > 0 && gap <= s.Tol {
			result.Status = GapConverged
			break
		}
	}

	result.Weights = weights
	result.Stats.Runtime = time.Since(start)
	return result, nil
}

func dualityGapMultilabel(p MultilabelProblem, weights, variables []float64, numFeatures, numClasses int) float64 {
	d := p.Data
	n := d.NumExamples()
	scores := make([]float64, numClasses)

	var pLoss, dLoss, regul float64
	for idx := 0; idx < n; idx++ {
		row := d.Row(idx)
		labels := d.LabelSet(idx)
		classOrder := rotateLabelSetFirst(labels, numClasses)
		gatherScores(weights, row, numFeatures, classOrder, scores)
		pLoss += p.Objective.PrimalLoss(len(labels), scores)

		vars := variables[idx*numClasses : (idx+1)*numClasses]
		dLoss += p.Objective.DualLoss(len(labels), vars)
	}
	for c := 0; c < numClasses; c++ {
		w := weights[c*numFeatures : (c+1)*numFeatures]
		regul += dot(w, w)
	}

	gap := pLoss + 0.5*regul - dLoss
	return gap / float64(n)
}
