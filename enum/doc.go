// SPDX-License-Identifier: MIT

// Package enum enumerates the integer coordinate vectors of a lattice whose
// projected length stays under per-level bounds.
//
// The input is the Gram–Schmidt data of a basis (coefficients Mu and squared
// norms RDiag) and a bound per level. Mu is upper-triangular: Mu[k][j], j > k,
// is the weight of outer coordinate j in the center of level k. The kernel walks the coefficient tree
// depth-first from the top level down to level 0, visiting each level's
// candidates in zig-zag order around its projected center
// (round(c), then ±1, ±2, … alternating towards the nearer side), so that the
// most promising nodes come first. Centers and partial distances are updated
// incrementally; descending one level costs O(levels changed), not O(d).
//
//   - Complexity: exponential in the dimension; the number of visited nodes
//     is bounded by the volume of the pruned search region.
//   - Memory:     O(MaxDim²), allocated once by NewKernel.
//
// Four variants are selected once per Enumerate call:
//
//   - Primal / Dual: which coordinate vector drives the center recurrence.
//   - with or without subsolutions: whether the shortest accepted projection
//     at every level is reported.
//
// Results are pushed into a Sink as they are found. A Sink may read the
// current coordinates and tighten the bounds from inside a callback, which is
// how an outer driver turns enumeration into a shortest-vector search.
//
// With no Target and an all-zero (or empty) Subtree the search is symmetric:
// only one of ±v is visited and the zero vector is never reported.
//
// Each Enumerate call forces round-to-nearest on the current OS thread and
// restores the caller's mode on return (see package fpround).
//
// A Kernel is not safe for concurrent use; run one per worker.
package enum
