package enum_test

import (
	"math"
	"math/rand"
	"sort"
	"testing"

	"github.com/katalvlaran/latenum/enum"
	"github.com/stretchr/testify/require"
)

// ---------------------------
// Sinks.
// ---------------------------

// event is one sink callback, with the coordinates at the time of the call.
type event struct {
	Sub    bool
	Level  int
	Dist   float64
	Coords []float64
}

// recorder logs every callback. Optional hooks run after logging.
type recorder struct {
	k      *enum.Kernel
	events []event

	onSolution    func(dist float64)
	onSubsolution func(level int, dist float64)
}

func (r *recorder) ProcessSolution(dist float64) {
	r.events = append(r.events, event{Dist: dist, Coords: r.k.Coordinates(nil)})
	if r.onSolution != nil {
		r.onSolution(dist)
	}
}

func (r *recorder) ProcessSubsolution(level int, dist float64) {
	r.events = append(r.events, event{Sub: true, Level: level, Dist: dist, Coords: r.k.Coordinates(nil)})
	if r.onSubsolution != nil {
		r.onSubsolution(level, dist)
	}
}

func (r *recorder) solutions() []float64 {
	var out []float64
	for _, ev := range r.events {
		if !ev.Sub {
			out = append(out, ev.Dist)
		}
	}

	return out
}

func (r *recorder) subsolutions() []event {
	var out []event
	for _, ev := range r.events {
		if ev.Sub {
			out = append(out, ev)
		}
	}

	return out
}

// newRecorded builds a kernel wired to a fresh recorder.
func newRecorded(opts ...enum.Option) (*enum.Kernel, *recorder) {
	r := &recorder{}
	r.k = enum.NewKernel(r, opts...)

	return r.k, r
}

// run loads p and enumerates it, failing the test on any error.
func run(t *testing.T, k *enum.Kernel, p enum.Problem) enum.Stats {
	t.Helper()
	require.NoError(t, k.Load(p))
	st, err := k.Enumerate()
	require.NoError(t, err)

	return st
}

// ---------------------------
// Fixtures.
// ---------------------------

// scenarioA is the 2-dimensional basis rdiag=[4,1], mu=[[1,0],[0.5,1]].
// Only the strictly upper part of mu is read, so its levels are orthogonal.
func scenarioA(bound float64) enum.Problem {
	return enum.Problem{
		Mu:     [][]float64{{1, 0}, {0.5, 1}},
		RDiag:  []float64{4, 1},
		Bounds: []float64{bound, bound},
	}
}

// coupledA is scenarioA with the coefficient above the diagonal: the
// level-0 center moves by −0.5 per unit of x1.
func coupledA(bound float64) enum.Problem {
	return enum.Problem{
		Mu:     [][]float64{{1, 0.5}, {0, 1}},
		RDiag:  []float64{4, 1},
		Bounds: []float64{bound, bound},
	}
}

// scenarioC is a 3-dimensional basis with dyadic coefficients, so every
// partial distance is computed exactly in float64.
func scenarioC() enum.Problem {
	return enum.Problem{
		Mu: [][]float64{
			{0, 0.25, -0.375},
			{0, 0, 0.5},
			{},
		},
		RDiag:        []float64{3, 2.5, 2},
		Bounds:       []float64{9.7, 9.7, 9.7},
		Subsolutions: true,
	}
}

// randomProblem draws a d-dimensional problem whose data are dyadic
// rationals (multiples of 1/8), keeping all arithmetic exact. Bounds end
// in .3 so no partial distance ties with a bound.
func randomProblem(rng *rand.Rand, d int) enum.Problem {
	p := enum.Problem{
		Mu:     make([][]float64, d),
		RDiag:  make([]float64, d),
		Bounds: make([]float64, d),
	}
	var i, j int
	for i = range p.Mu {
		p.Mu[i] = make([]float64, d)
	}
	// Column by column, so level i's coefficients are drawn with its norm.
	for i = 0; i < d; i++ {
		for j = 0; j < i; j++ {
			p.Mu[j][i] = float64(rng.Intn(9)-4) / 8
		}
		p.RDiag[i] = float64(2+rng.Intn(12)) / 2
	}
	radius := float64(2*d) + 0.3
	for i = 0; i < d; i++ {
		p.Bounds[i] = radius
	}

	return p
}

// ---------------------------
// Brute-force reference.
// ---------------------------

// bruteResult is what an independent enumeration of the same bounded
// region observes.
type bruteResult struct {
	leaves []float64 // squared distances of reported leaves
	nodes  uint64    // in-bound prefixes, all levels
	minSub []float64 // smallest non-zero partial distance per level
}

// bruteForce enumerates every integer prefix whose partial distances stay
// within the bounds at every free level, scanning a full interval around
// each center instead of zig-zagging, and recomputing every center from
// scratch. Symmetry follows the kernel's convention: without a target and
// with a zero subtree, a prefix whose topmost non-zero coordinate is
// negative is skipped, as is the zero leaf.
func bruteForce(p enum.Problem) bruteResult {
	d := len(p.RDiag)
	kEnd := d - len(p.Subtree)
	x := make([]float64, d)
	alpha := make([]float64, d)
	res := bruteResult{minSub: make([]float64, d)}
	for i := range res.minSub {
		res.minSub[i] = math.Inf(1)
	}

	target := func(k int) float64 {
		if p.Target == nil {
			return 0
		}

		return p.Target[k]
	}
	center := func(k int) float64 {
		c := target(k)
		for j := d - 1; j > k; j-- {
			src := x[j]
			if p.Dual {
				src = alpha[j]
			}
			c -= src * p.Mu[k][j]
		}

		return c
	}

	symmetric := p.Target == nil
	dist := 0.0
	for k := d - 1; k >= kEnd; k-- {
		x[k] = p.Subtree[k-kEnd]
		if x[k] != 0 {
			symmetric = false
		}
		c := center(k)
		alpha[k] = x[k] - c
		if !p.SubtreeReset {
			dist += alpha[k] * alpha[k] * p.RDiag[k]
		}
	}

	var walk func(k int, partdist float64, zeroPrefix bool)
	walk = func(k int, partdist float64, zeroPrefix bool) {
		c := center(k)
		reach := math.Sqrt(p.Bounds[k]/p.RDiag[k]) + 1
		lo, hi := math.Floor(c-reach), math.Ceil(c+reach)
		if symmetric && zeroPrefix && lo < 0 {
			lo = 0
		}
		for v := lo; v <= hi; v++ {
			a := v - c
			nd := partdist + a*a*p.RDiag[k]
			if !(nd <= p.Bounds[k]) {
				continue
			}
			x[k], alpha[k] = v, a
			res.nodes++
			if nd != 0 && nd < res.minSub[k] {
				res.minSub[k] = nd
			}
			if k == 0 {
				if nd != 0 || !symmetric {
					res.leaves = append(res.leaves, nd)
				}
				continue
			}
			walk(k-1, nd, zeroPrefix && v == 0)
		}
	}
	if kEnd > 0 {
		walk(kEnd-1, dist, true)
	}

	return res
}

// requireSameMultiset compares two distance lists irrespective of order.
func requireSameMultiset(t *testing.T, want, got []float64, msg string) {
	t.Helper()
	w := append([]float64(nil), want...)
	g := append([]float64(nil), got...)
	sort.Float64s(w)
	sort.Float64s(g)
	require.Len(t, g, len(w), msg)
	for i := range w {
		require.InDelta(t, w[i], g[i], 1e-9, "%s: index %d", msg, i)
	}
}

// bothWalks runs body once per walker.
func bothWalks(t *testing.T, body func(t *testing.T, w enum.Walk)) {
	for _, w := range []enum.Walk{enum.Iterative, enum.Recursive} {
		t.Run(w.String(), func(t *testing.T) { body(t, w) })
	}
}
