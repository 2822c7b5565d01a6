// Package combinatorics provides exact integer helpers used by the subgraph counters.
package combinatorics

// BinomialCache memoizes binomial coefficients as rows of Pascal's triangle.
//
// A cache is owned by a single graph or search session and is not safe for
// concurrent use. Rows are added on demand, so the table only grows as far as
// the largest n actually requested.
type BinomialCache struct {
	rows [][]int64
}

// NewBinomialCache creates a cache with rows 0..maxN precomputed.
func NewBinomialCache(maxN int) *BinomialCache {
	c := &BinomialCache{rows: [][]int64{{1}}}
	c.grow(maxN)
	return c
}

// Choose returns C(n, k). It is 0 when k < 0, n < 0 or k > n.
func (c *BinomialCache) Choose(n, k int) int64 {
	if n < 0 || k < 0 || k > n {
		return 0
	}
	if n >= len(c.rows) {
		c.grow(n)
	}
	return c.rows[n][k]
}

// MaxN returns the largest n currently held in the table.
func (c *BinomialCache) MaxN() int {
	return len(c.rows) - 1
}

func (c *BinomialCache) grow(maxN int) {
	for n := len(c.rows); n <= maxN; n++ {
		prev := c.rows[n-1]
		row := make([]int64, n+1)
		row[0], row[n] = 1, 1
		for k := 1; k < n; k++ {
			row[k] = prev[k-1] + prev[k]
		}
		c.rows = append(c.rows, row)
	}
}
