// SPDX-License-Identifier: MIT

package enum

// centerCache keeps, for every level i, the partial sums
//
//	sums[i][j] = seed[i] − Σ_{j ≤ l < kEnd} src[l]·mut[i][l]
//
// so that the projected center of level i is sums[i][i+1]. Row i is valid
// for every column above begin[i+1]; columns at or below it were computed
// with coordinates that have since moved and must be refreshed before use.
type centerCache struct {
	sums  []float64 // MaxDim × (MaxDim+1), row-major
	begin []int     // MaxDim+1
	seed  []float64 // center contribution of the target and the fixed subtree
}

const cacheStride = MaxDim + 1

func newCenterCache() centerCache {
	return centerCache{
		sums:  make([]float64, MaxDim*cacheStride),
		begin: make([]int, MaxDim+1),
		seed:  make([]float64, MaxDim),
	}
}

func (c *centerCache) row(i int) []float64 {
	return c.sums[i*cacheStride : (i+1)*cacheStride]
}

// prime invalidates every row below kEnd: each starts from its seed in
// column kEnd and must be rebuilt from column kEnd−1 downward.
func (c *centerCache) prime(kEnd int) {
	for i := 0; i < kEnd; i++ {
		c.begin[i+1] = kEnd - 1
		c.sums[i*cacheStride+kEnd] = c.seed[i]
	}
}

// refresh brings row k up to date after any coordinate above k moved and
// returns the center of level k. Only the stale columns are recomputed;
// the staleness is handed down to row k−1.
func (c *centerCache) refresh(k int, src, mut []float64) float64 {
	row := c.row(k)
	m := mut[k*MaxDim : (k+1)*MaxDim]
	for j := c.begin[k+1]; j > k; j-- {
		row[j] = row[j+1] - src[j]*m[j]
	}
	if c.begin[k+1] > c.begin[k] {
		c.begin[k] = c.begin[k+1]
	}
	c.begin[k+1] = k + 1

	return row[k+1]
}

// shift is refresh for the case where only coordinate k+1 moved since row
// k was last refreshed: one term.
func (c *centerCache) shift(k int, src, mut []float64) float64 {
	row := c.row(k)
	row[k+1] = row[k+2] - src[k+1]*mut[k*MaxDim+k+1]
	if k+1 > c.begin[k] {
		c.begin[k] = k + 1
	}

	return row[k+1]
}
