package enum

// White-box bridges for enum_test. Compiled only with the tests.

// CenterAt returns the projected center currently stored for level k.
func (e *Kernel) CenterAt(k int) float64 { return e.lv.center[k] }

// PartDistAt returns the partial distance currently stored for level k.
func (e *Kernel) PartDistAt(k int) float64 { return e.lv.partdist[k] }

// Symmetric reports whether the loaded search exploits ±v symmetry.
func (e *Kernel) Symmetric() bool { return e.symmetric }

// ZigZagOffsets resets a scratch level at center c and returns the first n
// candidate offsets relative to the rounded center.
func ZigZagOffsets(c float64, n int) []float64 {
	l := newLevels()
	l.reset(0, c, 1)
	x0 := l.x[0]
	out := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, l.x[0]-x0)
		l.zigzag(0)
	}

	return out
}

// RoundedCenter returns the starting coordinate reset picks for center c.
func RoundedCenter(c float64) float64 {
	l := newLevels()
	l.reset(0, c, 0)

	return l.x[0]
}
