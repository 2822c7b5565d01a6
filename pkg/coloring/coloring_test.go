package coloring

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandomIsValid(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	for _, colors := range []int{1, 2, 3} {
		m := Random(9, colors, rng)
		require.NoError(t, m.Validate(colors))
		assert.Equal(t, 9, m.Size())
	}
}

func TestRandomIsDeterministicForSeed(t *testing.T) {
	a := Random(12, 3, rand.New(rand.NewPCG(42, 42)))
	b := Random(12, 3, rand.New(rand.NewPCG(42, 42)))
	assert.True(t, a.Equal(b))
}

func TestValidate(t *testing.T) {
	t.Run("not square", func(t *testing.T) {
		m := Matrix{{0, 1}, {1}}
		assert.ErrorIs(t, m.Validate(2), ErrNotSquare)
	})

	t.Run("diagonal", func(t *testing.T) {
		m := Matrix{{1, 0}, {0, 0}}
		assert.ErrorIs(t, m.Validate(2), ErrDiagonal)
	})

	t.Run("asymmetric", func(t *testing.T) {
		m := Matrix{{0, 1}, {0, 0}}
		assert.ErrorIs(t, m.Validate(2), ErrAsymmetric)
	})

	t.Run("color range", func(t *testing.T) {
		m := Matrix{{0, 2}, {2, 0}}
		assert.ErrorIs(t, m.Validate(2), ErrColorRange)
	})

	t.Run("empty graph", func(t *testing.T) {
		assert.NoError(t, New(0).Validate(2))
	})
}

func TestCanonicalTextRoundTrip(t *testing.T) {
	m := Matrix{
		{0, 1, 0},
		{1, 0, 2},
		{0, 2, 0},
	}
	assert.Equal(t, "0,1,0\n1,0,2\n0,2,0", m.String())

	parsed, err := Parse(m.String())
	require.NoError(t, err)
	assert.True(t, m.Equal(parsed))
}

func TestParseIgnoresTrailingLabels(t *testing.T) {
	text := "0,1\n1,0\n\nstructure = books\nseed = 3"
	m, err := Parse(text)
	require.NoError(t, err)
	assert.True(t, Matrix{{0, 1}, {1, 0}}.Equal(m))
}

func TestParseArrayStyle(t *testing.T) {
	m, err := Parse("[[0,1,1],\n [1,0,0],\n [1,0,0]]")
	require.NoError(t, err)
	assert.True(t, Matrix{{0, 1, 1}, {1, 0, 0}, {1, 0, 0}}.Equal(m))
}

func TestParseErrors(t *testing.T) {
	_, err := Parse("")
	assert.ErrorIs(t, err, ErrParse)

	_, err = Parse("0,x\n1,0")
	assert.ErrorIs(t, err, ErrParse)

	_, err = Parse("0,1,1\n1,0")
	assert.ErrorIs(t, err, ErrNotSquare)
}

func TestPermute(t *testing.T) {
	m := Matrix{
		{0, 1, 2},
		{1, 0, 0},
		{2, 0, 0},
	}
	p, err := m.Permute([]int{2, 0, 1})
	require.NoError(t, err)
	require.NoError(t, p.Validate(3))

	// Edge {0,1} moves to {2,0}, edge {0,2} to {2,1}.
	assert.Equal(t, 1, p[2][0])
	assert.Equal(t, 2, p[2][1])
	assert.Equal(t, 0, p[0][1])

	_, err = m.Permute([]int{0, 0, 1})
	assert.ErrorIs(t, err, ErrPermutation)
	_, err = m.Permute([]int{0, 1})
	assert.ErrorIs(t, err, ErrPermutation)
}

func TestCloneIsIndependent(t *testing.T) {
	m := Matrix{{0, 1}, {1, 0}}
	c := m.Clone()
	c.Set(0, 1, 0)
	assert.Equal(t, 1, m[0][1])
	assert.Equal(t, 0, c[1][0])
}
