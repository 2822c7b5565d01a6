package combinatorics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChoose(t *testing.T) {
	c := NewBinomialCache(10)

	tests := []struct {
		n, k int
		want int64
	}{
		{0, 0, 1},
		{5, 0, 1},
		{5, 5, 1},
		{5, 2, 10},
		{10, 3, 120},
		{4, 5, 0},
		{3, -1, 0},
		{-1, 0, 0},
		{30, 15, 155117520},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, c.Choose(tt.n, tt.k), "C(%d,%d)", tt.n, tt.k)
	}
}

func TestChooseGrowsOnDemand(t *testing.T) {
	c := NewBinomialCache(2)
	assert.Equal(t, 2, c.MaxN())

	assert.Equal(t, int64(190), c.Choose(20, 2))
	assert.Equal(t, 20, c.MaxN())

	// Requests below the current size never shrink the table.
	assert.Equal(t, int64(6), c.Choose(4, 2))
	assert.Equal(t, 20, c.MaxN())
}

func TestChooseSymmetry(t *testing.T) {
	c := NewBinomialCache(25)
	for n := 0; n <= 25; n++ {
		for k := 0; k <= n; k++ {
			assert.Equal(t, c.Choose(n, k), c.Choose(n, n-k))
		}
	}
}
