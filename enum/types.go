// SPDX-License-Identifier: MIT

package enum

// MaxDim is the largest supported dimension. Every per-level array of a
// Kernel is allocated at this capacity once, in NewKernel.
const MaxDim = 256

// Sink receives the results of a walk. The kernel calls it synchronously
// from the search loop; implementations must not call Load or Enumerate on
// the same kernel, but may read Coordinates and tighten bounds through
// SetBound or SetBounds to shrink the remaining search.
type Sink interface {
	// ProcessSolution is called for every accepted leaf with its squared
	// distance. In symmetric (SVP) mode the zero vector is never reported.
	ProcessSolution(dist float64)

	// ProcessSubsolution is called when the smallest non-zero partial
	// distance seen at level offset improves. Only invoked by the
	// subsolution variants.
	ProcessSubsolution(offset int, dist float64)
}

// Problem is the per-call input of a Kernel.
//
// Levels run 0 … d−1 with d = len(RDiag); level d−1 is the root of the
// search tree and level 0 its leaves.
type Problem struct {
	// Mu holds the Gram–Schmidt coefficients, upper-triangular: Mu[k][j]
	// for j > k couples level k to the outer level j, and the center of
	// level k is Target[k] − Σ_{j>k} Mu[k][j]·x[j]. Entries on or below the
	// diagonal are ignored. Every row but the last needs d entries.
	Mu [][]float64

	// RDiag holds the squared norms of the Gram–Schmidt vectors (> 0).
	RDiag []float64

	// Bounds holds the per-level pruning bound on the squared partial
	// distance. Must be finite.
	Bounds []float64

	// Target, when non-nil, is the point to enumerate around, expressed in
	// Gram–Schmidt coordinates (closest-vector mode). Nil means the origin
	// and enables the ±v symmetry of shortest-vector search.
	Target []float64

	// Subtree fixes the coordinates of the top len(Subtree) levels:
	// Subtree[i] is the coordinate of level d−len(Subtree)+i. The walk
	// explores the subtree below them.
	Subtree []float64

	// SubtreeReset excludes the fixed levels' own distance from the partial
	// distances of the levels below.
	SubtreeReset bool

	// Dual enumerates in the dual coordinate system: the center recurrence
	// consumes alpha (the offset from each level's center) instead of x.
	Dual bool

	// Subsolutions enables per-level tracking of the best partial distance
	// and the ProcessSubsolution callback.
	Subsolutions bool
}

// Stats summarises one Enumerate call.
type Stats struct {
	// Nodes is the number of nodes accepted during this call. Candidates
	// rejected by the bound test are not counted.
	Nodes uint64
	// MaxLevel is the highest level at which the walk advanced an all-zero
	// prefix (symmetric mode); 0 when never.
	MaxLevel int
	// Variant is the specialisation the call ran with.
	Variant Variant
}
