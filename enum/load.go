// SPDX-License-Identifier: MIT

package enum

import "math"

// Load validates p, copies it into the kernel's preallocated arrays and
// places the walk at the root of the subtree below the fixed levels.
//
// Preparation, from the top level down:
//   - a fixed level (k ≥ kEnd) takes its subtree coordinate and pushes its
//     contribution into the center seed of every level below it;
//   - a free level (k < kEnd) starts at the integer nearest to its center
//     (the Babai point), with the zig-zag primed toward the center.
//
// The search is symmetric, visiting only one of ±v and never reporting
// the zero vector, when there is no target and the subtree is all zero.
//
// Load reuses the arrays allocated by NewKernel.
func (e *Kernel) Load(p Problem) error {
	if e.running {
		return ErrReentrant
	}
	d, err := validateProblem(p)
	if err != nil {
		return err
	}

	var k, j int
	e.d = d
	e.kEnd = d - len(p.Subtree)
	e.kMax = 0
	e.variant = VariantOf(p.Dual, p.Subsolutions)
	e.symmetric = p.Target == nil

	for k = 0; k < d; k++ {
		e.rdiag[k] = p.RDiag[k]
		e.bound[k] = p.Bounds[k]
		if k < d-1 {
			copy(e.mut[k*MaxDim+k+1:k*MaxDim+d], p.Mu[k][k+1:d])
		}
		e.cc.seed[k] = 0
		if p.Target != nil {
			e.cc.seed[k] = p.Target[k]
		}
		e.lv.subsoldist[k] = math.Inf(1)
	}

	var (
		lv   = &e.lv
		src  = lv.x
		dist float64
		c    float64
	)
	if p.Dual {
		src = lv.alpha
	}
	for k = d - 1; k >= 0; k-- {
		c = e.cc.seed[k]
		if k >= e.kEnd {
			lv.x[k] = p.Subtree[k-e.kEnd]
			if lv.x[k] != 0 {
				e.symmetric = false
			}
			lv.center[k] = c
			lv.alpha[k] = lv.x[k] - c
			for j = 0; j < k; j++ {
				e.cc.seed[j] -= src[k] * e.mut[j*MaxDim+k]
			}
		} else {
			for j = k + 1; j < e.kEnd; j++ {
				c -= src[j] * e.mut[k*MaxDim+j]
			}
			lv.reset(k, c, dist)
			lv.alpha[k] = lv.x[k] - c
		}
		if !p.SubtreeReset || k < e.kEnd {
			dist += lv.alpha[k] * lv.alpha[k] * e.rdiag[k]
		}
	}
	e.loaded = true

	e.log.Debug("enumeration loaded",
		"dim", d,
		"kEnd", e.kEnd,
		"variant", e.variant.String(),
		"symmetric", e.symmetric,
	)

	return nil
}
