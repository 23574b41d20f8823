// SPDX-License-Identifier: MIT

// Package latenum is a lattice enumeration kernel: the inner loop of
// shortest-vector, closest-vector and BKZ-style searches.
//
// What is in here?
//
//	Given the Gram–Schmidt data of a basis and a squared radius per level,
//	the kernel visits every integer coordinate vector whose projections fit
//	under those radii, nearest candidates first, and hands each hit to a
//	caller-supplied sink.
//		• Zig-zag visiting order around every projected center
//		• Incremental centers and partial distances (no O(d²) recompute)
//		• Primal and dual enumeration, with optional per-level subsolutions
//		• Closest-vector targets and fixed top-level subtrees
//		• Bound tightening from inside the sink
//		• Round-to-nearest forced for the walk, caller's mode restored after
//
// Under the hood, everything is organized under two subpackages:
//
//	enum/    — Kernel, Problem, Sink, walkers and variants
//	fpround/ — per-thread floating-point rounding guard
//
// Quick example (the 2-dimensional basis with r = [4, 1], μ₀₁ = 0.5; μ is
// upper-triangular, μ[k][j] for j > k):
//
//	k := enum.NewKernel(sink)
//	_ = k.Load(enum.Problem{
//		Mu:     [][]float64{{1, 0.5}, {0, 1}},
//		RDiag:  []float64{4, 1},
//		Bounds: []float64{4, 4},
//	})
//	st, _ := k.Enumerate() // sink sees 4, 2, 2, 4; st.Nodes == 8
//
// Computing Gram–Schmidt data, choosing pruning coefficients and lifting
// coordinates back to lattice vectors are left to the caller.
//
//	go get github.com/katalvlaran/latenum/enum
package latenum
