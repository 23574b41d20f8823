// SPDX-License-Identifier: MIT

// Package enum: sentinel error set.
//
// Every message is prefixed with "enum: ". Load wraps a sentinel with the
// offending level or index when that context matters; match with errors.Is.
// Nothing inside the walk itself returns an error: once a problem is loaded,
// infeasible bounds simply produce no callbacks.

package enum

import "errors"

var (
	// ErrEmptyBasis is returned when the problem has no levels.
	ErrEmptyBasis = errors.New("enum: empty basis")

	// ErrDimensionTooLarge signals d > MaxDim.
	ErrDimensionTooLarge = errors.New("enum: dimension exceeds MaxDim")

	// ErrDimensionMismatch signals inconsistent slice lengths between
	// Mu, RDiag, Bounds, Target or a pruning profile.
	ErrDimensionMismatch = errors.New("enum: dimension mismatch")

	// ErrSubtreeTooDeep signals a subtree prefix longer than the dimension.
	ErrSubtreeTooDeep = errors.New("enum: subtree longer than dimension")

	// ErrNonFinite signals NaN or ±Inf where finite input is required.
	ErrNonFinite = errors.New("enum: NaN or Inf encountered")

	// ErrNonPositiveNorm signals a Gram–Schmidt squared norm ≤ 0.
	ErrNonPositiveNorm = errors.New("enum: non-positive Gram-Schmidt norm")

	// ErrNonIntegral signals a subtree coordinate that is not an integer.
	ErrNonIntegral = errors.New("enum: subtree coordinate is not integral")

	// ErrLevelOutOfRange signals a level index outside [0, d).
	ErrLevelOutOfRange = errors.New("enum: level out of range")

	// ErrNotLoaded is returned by Enumerate when no problem has been loaded
	// since the previous run.
	ErrNotLoaded = errors.New("enum: no problem loaded")

	// ErrReentrant is returned when Load or Enumerate is called from inside
	// a sink callback.
	ErrReentrant = errors.New("enum: re-entrant call from sink")
)
