// Copyright ©2014 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package sdca implements a thin stochastic dual coordinate ascent
// driver over the proximal operators of prox/knapsack, prox/topk,
// prox/entropy and prox/twoblock, wired into one of the loss objectives
// of the objective package through a dataset.Dataset.
//
// The driver is intentionally small: it owns the epoch loop, per-example
// shuffling and the rank-one primal update, and delegates every
// nontrivial piece of math to the objective and the packages it wraps.
package sdca
