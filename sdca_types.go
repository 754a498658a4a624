// Copyright ©2014 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sdca

import (
	"time"

	"golang.org/x/exp/rand"
)

// Status describes why Train stopped.
type Status int

const (
	// NotTerminated is never returned by Train; it is the zero value.
	NotTerminated Status = iota
	// GapConverged indicates the duality gap fell to or below Tol.
	GapConverged
	// EpochLimit indicates Epochs epochs ran without reaching Tol.
	EpochLimit
)

func (s Status) String() string {
	switch s {
	case GapConverged:
		return "GapConverged"
	case EpochLimit:
		return "EpochLimit"
	default:
		return "NotTerminated"
	}
}

// Stats records counters taken during a Train run.
type Stats struct {
	Epochs  int
	Runtime time.Duration
}

// Result is the outcome of a Train run: the learned primal weights, the
// final duality gap, and the stopping Status.
type Result struct {
	Weights []float64
	Gap     float64
	Status  Status
	Stats   Stats
}

// Recorder records per-epoch progress during Train. A nil Recorder
// records nothing.
type Recorder interface {
	Record(epoch int, gap float64) error
}

// Settings controls a Train run.
type Settings struct {
	// Epochs bounds the number of passes over the dataset. It must be
	// positive.
	Epochs int
	// Tol stops training once the duality gap falls to or below this
	// value. A non-positive Tol disables this check and Train always
	// runs for Epochs epochs.
	Tol float64
	// Source seeds the per-epoch example shuffle. If nil, a fixed
	// default source is used.
	Source rand.Source
	// Recorder, if non-nil, is called once per epoch with the current
	// duality gap.
	Recorder Recorder
}

// DefaultSettings returns the Settings used when none are supplied
// explicitly: 50 epochs and a 1e-3 duality gap tolerance.
func DefaultSettings() Settings {
	return Settings{Epochs: 50, Tol: 1e-3}
}
