// SPDX-License-Identifier: MIT

package enum

import "math"

// levels is the per-level search record. Every slice has MaxDim entries;
// only the first d are live during a call.
type levels struct {
	x          []float64 // current integer coordinate
	dx         []float64 // next offset to apply (zig-zag)
	ddx        []float64 // sign of the next offset (zig-zag)
	partdist   []float64 // squared distance accumulated from the levels above
	center     []float64 // projected center
	alpha      []float64 // x − center of the accepted candidate
	subsoldist []float64 // smallest non-zero partial distance seen per level
}

func newLevels() levels {
	return levels{
		x:          make([]float64, MaxDim),
		dx:         make([]float64, MaxDim),
		ddx:        make([]float64, MaxDim),
		partdist:   make([]float64, MaxDim),
		center:     make([]float64, MaxDim),
		alpha:      make([]float64, MaxDim),
		subsoldist: make([]float64, MaxDim),
	}
}

// reset enters level k with projected center c and partial distance dist:
// x[k] becomes the integer nearest to c and the zig-zag is primed to step
// first toward the side of the rounding on which c lies.
func (l *levels) reset(k int, c, dist float64) {
	xk := math.RoundToEven(c)
	l.center[k] = c
	l.partdist[k] = dist
	l.x[k] = xk
	if c >= xk {
		l.dx[k], l.ddx[k] = 1, 1
	} else {
		l.dx[k], l.ddx[k] = -1, -1
	}
}

// zigzag moves x[k] to the next candidate in order of distance from the
// center. From a fresh reset the offsets relative to the rounded center
// are 0, +1, −1, +2, −2, … (signs mirrored when the center lies below).
func (l *levels) zigzag(k int) {
	l.x[k] += l.dx[k]
	l.ddx[k] = -l.ddx[k]
	l.dx[k] = l.ddx[k] - l.dx[k]
}
