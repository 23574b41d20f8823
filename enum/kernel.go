// SPDX-License-Identifier: MIT

package enum

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/katalvlaran/latenum/fpround"
)

// Kernel is a reusable lattice enumeration engine.
//
// A Kernel owns all of its search state; the arrays are allocated once at
// MaxDim capacity and reused by every Load/Enumerate cycle. It is neither
// re-entrant nor safe for concurrent use: run one Kernel per goroutine,
// each with its own copy of the problem data.
type Kernel struct {
	sink     Sink
	log      *slog.Logger
	walk     Walk
	rounding fpround.Controller

	// problem data, read-only during a walk (bounds excepted)
	mut   []float64 // mut[k*MaxDim+j] = Mu[k][j], j > k
	rdiag []float64
	bound []float64

	lv        levels
	cc        centerCache
	noSubsols []float64 // −Inf ceiling used when subsolutions are off

	d, kEnd, kMax int
	symmetric     bool
	variant       Variant
	loaded        bool
	running       bool

	nodes uint64
}

// NewKernel allocates a kernel reporting to sink. Panics if sink is nil.
func NewKernel(sink Sink, opts ...Option) *Kernel {
	if sink == nil {
		panic(panicSinkNil)
	}
	o := gatherOptions(opts...)
	e := &Kernel{
		sink:      sink,
		log:       o.logger,
		walk:      o.walk,
		rounding:  o.rounding,
		mut:       make([]float64, MaxDim*MaxDim),
		rdiag:     make([]float64, MaxDim),
		bound:     make([]float64, MaxDim),
		lv:        newLevels(),
		cc:        newCenterCache(),
		noSubsols: make([]float64, MaxDim),
	}
	for i := range e.noSubsols {
		e.noSubsols[i] = math.Inf(-1)
	}

	return e
}

// Nodes returns the number of nodes accepted over the kernel's lifetime.
// Candidates rejected by the bound test are not counted. The counter is
// advisory and wraps silently on overflow.
func (e *Kernel) Nodes() uint64 { return e.nodes }

// Dim returns the dimension of the loaded (or last run) problem.
func (e *Kernel) Dim() int { return e.d }

// SubtreeEnd returns kEnd: the walk explores levels [0, kEnd).
func (e *Kernel) SubtreeEnd() int { return e.kEnd }

// MaxLevel returns the highest level at which the last walk advanced an
// all-zero prefix.
func (e *Kernel) MaxLevel() int { return e.kMax }

// Variant returns the specialisation of the loaded problem.
func (e *Kernel) Variant() Variant { return e.variant }

// Walk returns the configured walker.
func (e *Kernel) Walk() Walk { return e.walk }

// Coordinates copies the current coordinates x[0:d] into dst (grown if
// needed) and returns it. Inside ProcessSolution this is the reported vector
// in basis coordinates.
func (e *Kernel) Coordinates(dst []float64) []float64 {
	if cap(dst) < e.d {
		dst = make([]float64, e.d)
	}
	dst = dst[:e.d]
	copy(dst, e.lv.x[:e.d])

	return dst
}

// SubsolutionDistance returns the smallest non-zero partial distance
// recorded at level k, or +Inf when none was (or tracking is off).
func (e *Kernel) SubsolutionDistance(k int) float64 {
	if k < 0 || k >= e.d {
		return math.Inf(1)
	}

	return e.lv.subsoldist[k]
}

// Bound returns the pruning bound of level k.
func (e *Kernel) Bound(k int) float64 {
	if k < 0 || k >= e.d {
		return math.NaN()
	}

	return e.bound[k]
}

// SetBound replaces the pruning bound of level k. Sinks use it to tighten
// the remaining search; the new value takes effect at the next node test.
func (e *Kernel) SetBound(k int, v float64) error {
	if k < 0 || k >= e.d {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrLevelOutOfRange, k, e.d)
	}
	if isNonFinite(v) {
		return fmt.Errorf("%w: bound[%d]=%v", ErrNonFinite, k, v)
	}
	e.bound[k] = v

	return nil
}

// SetBounds sets bound[k] = pruning[k]·maxDist for every level. A nil
// pruning profile means no pruning: every bound equals maxDist.
func (e *Kernel) SetBounds(maxDist float64, pruning []float64) error {
	if isNonFinite(maxDist) {
		return fmt.Errorf("%w: maxDist=%v", ErrNonFinite, maxDist)
	}
	if pruning != nil && len(pruning) != e.d {
		return fmt.Errorf("%w: pruning has %d coefficients, dimension is %d", ErrDimensionMismatch, len(pruning), e.d)
	}
	var k int
	if pruning != nil {
		for k = 0; k < e.d; k++ {
			if isNonFinite(maxDist * pruning[k]) {
				return fmt.Errorf("%w: pruning[%d]=%v", ErrNonFinite, k, pruning[k])
			}
		}
	}
	for k = 0; k < e.d; k++ {
		e.bound[k] = maxDist
		if pruning != nil {
			e.bound[k] *= pruning[k]
		}
	}

	return nil
}
