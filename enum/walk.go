// SPDX-License-Identifier: MIT

package enum

// visit evaluates the current candidate of level k against bound[k].
// An accepted node is counted, its subsolution recorded and, at level 0,
// reported as a solution. Returns the node's partial distance.
func (e *Kernel) visit(k int, s *strategy) (float64, bool) {
	lv := &e.lv
	a := lv.x[k] - lv.center[k]
	nd := lv.partdist[k] + a*a*e.rdiag[k]
	if !(nd <= e.bound[k]) {
		return nd, false
	}
	e.nodes++
	lv.alpha[k] = a
	if nd < s.ceil[k] && nd != 0 {
		lv.subsoldist[k] = nd
		e.sink.ProcessSubsolution(k, nd)
	}
	if k == 0 && (nd != 0 || !e.symmetric) {
		e.sink.ProcessSolution(nd)
	}

	return nd, true
}

// next advances level k to its next candidate. It fails once k has left
// the explored subtree.
//
// Under symmetry a level whose whole prefix is zero (partdist == 0) only
// counts upward: its negative candidates are the mirror images of vectors
// already covered. Everywhere else the zig-zag runs in both directions.
func (e *Kernel) next(k int) bool {
	if k >= e.kEnd {
		return false
	}
	if e.symmetric && e.lv.partdist[k] == 0 {
		e.kMax = k
		e.lv.x[k]++

		return true
	}
	e.lv.zigzag(k)

	return true
}

// walkIterative runs the depth-first search with the frontier level held
// in a loop variable.
func (e *Kernel) walkIterative(s *strategy) {
	e.cc.prime(e.kEnd)
	k := e.kEnd - 1
	for {
		nd, ok := e.visit(k, s)
		switch {
		case !ok:
			// Pruned: the rest of this level is farther still, move up.
			k++
			if !e.next(k) {
				return
			}
		case k == 0:
			e.next(0)
		default:
			k--
			e.lv.reset(k, e.cc.refresh(k, s.src, e.mut), nd)
		}
	}
}

// walkRecursive runs the same search with one call frame per level.
func (e *Kernel) walkRecursive(s *strategy) {
	e.cc.prime(e.kEnd)
	e.descend(e.kEnd-1, s)
}

// descend explores every candidate of level k and the subtrees below them.
// Siblings after the first only move coordinate k, so the child's center
// needs a single cache term.
func (e *Kernel) descend(k int, s *strategy) {
	nd, ok := e.visit(k, s)
	if !ok {
		return
	}
	if k > 0 {
		e.lv.reset(k-1, e.cc.refresh(k-1, s.src, e.mut), nd)
	}
	for {
		if k > 0 {
			e.descend(k-1, s)
		}
		e.next(k)
		if nd, ok = e.visit(k, s); !ok {
			return
		}
		if k > 0 {
			e.lv.reset(k-1, e.cc.shift(k-1, s.src, e.mut), nd)
		}
	}
}
