// SPDX-License-Identifier: MIT

package enum

// Variant is one of the four specialisations of the walk, formed by the two
// independent axes dual/primal and subsolutions on/off.
type Variant uint8

const (
	// Primal drives the centers with x and reports solutions only.
	Primal Variant = iota
	// PrimalSubsolutions adds per-level subsolution tracking to Primal.
	PrimalSubsolutions
	// Dual drives the centers with alpha, the offsets from each center.
	Dual
	// DualSubsolutions adds per-level subsolution tracking to Dual.
	DualSubsolutions
)

// VariantOf combines the two axes.
func VariantOf(dual, subsolutions bool) Variant {
	var v Variant
	if dual {
		v |= Dual
	}
	if subsolutions {
		v |= PrimalSubsolutions
	}

	return v
}

// Dual reports whether v enumerates in dual coordinates.
func (v Variant) Dual() bool { return v&Dual != 0 }

// Subsolutions reports whether v tracks per-level subsolutions.
func (v Variant) Subsolutions() bool { return v&PrimalSubsolutions != 0 }

func (v Variant) String() string {
	switch v {
	case Primal:
		return "primal"
	case PrimalSubsolutions:
		return "primal+subsolutions"
	case Dual:
		return "dual"
	case DualSubsolutions:
		return "dual+subsolutions"
	default:
		return "unknown"
	}
}

// strategy is the per-call specialisation of the walk. The variant axes
// are resolved here, once, into the data the hot loop reads; the loop
// itself never tests a flag.
//
//   - src feeds the center recurrence: x for primal, alpha for dual.
//   - ceil gates subsolution reports: the live subsoldist array, or a row
//     of −Inf that no partial distance can undercut.
type strategy struct {
	src  []float64
	ceil []float64
}

func (e *Kernel) strategyFor(v Variant) strategy {
	s := strategy{src: e.lv.x, ceil: e.noSubsols}
	if v.Dual() {
		s.src = e.lv.alpha
	}
	if v.Subsolutions() {
		s.ceil = e.lv.subsoldist
	}

	return s
}

// walkers is the dispatch table from Walk to walker.
var walkers = [...]func(*Kernel, *strategy){
	Iterative: (*Kernel).walkIterative,
	Recursive: (*Kernel).walkRecursive,
}
