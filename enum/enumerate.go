// SPDX-License-Identifier: MIT

package enum

import (
	"fmt"

	"github.com/katalvlaran/latenum/fpround"
)

// Enumerate walks the subtree prepared by the last Load and reports to the
// sink. It consumes the loaded state: call Load again before the next run.
//
// The walk runs with the floating-point rounding mode forced to nearest;
// the previous mode is restored on return, including when the sink panics.
//
// Errors:
//   - ErrNotLoaded if no problem is loaded.
//   - ErrReentrant if called from inside a sink callback.
//   - the rounding controller's error if nearest rounding cannot be forced.
//
// Bounds that admit nothing are not an error: the walk returns with no
// callbacks.
func (e *Kernel) Enumerate() (Stats, error) {
	if e.running {
		return Stats{}, ErrReentrant
	}
	if !e.loaded {
		return Stats{}, ErrNotLoaded
	}
	g, err := fpround.Acquire(e.rounding)
	if err != nil {
		return Stats{}, fmt.Errorf("enum: force round-to-nearest: %w", err)
	}
	defer g.Release()

	e.loaded = false
	e.running = true
	defer func() { e.running = false }()

	start := e.nodes
	if e.kEnd > 0 {
		s := e.strategyFor(e.variant)
		walkers[e.walk](e, &s)
	}
	st := Stats{Nodes: e.nodes - start, MaxLevel: e.kMax, Variant: e.variant}

	e.log.Debug("enumeration finished",
		"dim", e.d,
		"kEnd", e.kEnd,
		"variant", e.variant.String(),
		"walk", e.walk.String(),
		"nodes", st.Nodes,
		"rounding", g.Saved().String(),
	)

	return st, nil
}
