// SPDX-License-Identifier: MIT

package enum

import (
	"fmt"
	"math"
)

func isNonFinite(x float64) bool { return math.IsNaN(x) || math.IsInf(x, 0) }

// validateProblem enforces the kernel's preconditions once per Load so the
// walk can run without checks. Returns the dimension.
//
// Order: shape (empty, capacity, lengths) → subtree depth → values.
func validateProblem(p Problem) (int, error) {
	d := len(p.RDiag)
	if d == 0 {
		return 0, ErrEmptyBasis
	}
	if d > MaxDim {
		return 0, fmt.Errorf("%w: d=%d, MaxDim=%d", ErrDimensionTooLarge, d, MaxDim)
	}
	if len(p.Mu) != d {
		return 0, fmt.Errorf("%w: len(Mu)=%d, d=%d", ErrDimensionMismatch, len(p.Mu), d)
	}
	if len(p.Bounds) != d {
		return 0, fmt.Errorf("%w: len(Bounds)=%d, d=%d", ErrDimensionMismatch, len(p.Bounds), d)
	}
	if p.Target != nil && len(p.Target) != d {
		return 0, fmt.Errorf("%w: len(Target)=%d, d=%d", ErrDimensionMismatch, len(p.Target), d)
	}
	if len(p.Subtree) > d {
		return 0, fmt.Errorf("%w: len(Subtree)=%d, d=%d", ErrSubtreeTooDeep, len(p.Subtree), d)
	}

	var i, j int
	for i = 0; i < d; i++ {
		if i < d-1 && len(p.Mu[i]) < d {
			return 0, fmt.Errorf("%w: len(Mu[%d])=%d, d=%d", ErrDimensionMismatch, i, len(p.Mu[i]), d)
		}
		for j = i + 1; j < d; j++ {
			if isNonFinite(p.Mu[i][j]) {
				return 0, fmt.Errorf("%w: Mu[%d][%d]", ErrNonFinite, i, j)
			}
		}
		if isNonFinite(p.RDiag[i]) {
			return 0, fmt.Errorf("%w: RDiag[%d]", ErrNonFinite, i)
		}
		if p.RDiag[i] <= 0 {
			return 0, fmt.Errorf("%w: RDiag[%d]=%g", ErrNonPositiveNorm, i, p.RDiag[i])
		}
		if isNonFinite(p.Bounds[i]) {
			return 0, fmt.Errorf("%w: Bounds[%d]", ErrNonFinite, i)
		}
		if p.Target != nil && isNonFinite(p.Target[i]) {
			return 0, fmt.Errorf("%w: Target[%d]", ErrNonFinite, i)
		}
	}
	for i = range p.Subtree {
		if isNonFinite(p.Subtree[i]) {
			return 0, fmt.Errorf("%w: Subtree[%d]", ErrNonFinite, i)
		}
		if p.Subtree[i] != math.Trunc(p.Subtree[i]) {
			return 0, fmt.Errorf("%w: Subtree[%d]=%g", ErrNonIntegral, i, p.Subtree[i])
		}
	}

	return d, nil
}
