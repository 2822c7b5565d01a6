package ramsey

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dd0wney/ramsey-tabu/pkg/coloring"
)

// bruteBooks counts books by enumerating every vertex set of the right size and
// every spine inside it. It shares no code with the indexed counters.
func bruteBooks(m coloring.Matrix, sizes []int) int64 {
	var total int64
	n := m.Size()
	for c, size := range sizes {
		forEachSubset(n, size, func(set []int) {
			for i := 0; i < len(set); i++ {
				for j := i + 1; j < len(set); j++ {
					a, b := set[i], set[j]
					if m[a][b] != c {
						continue
					}
					ok := true
					for _, p := range set {
						if p != a && p != b && (m[a][p] != c || m[b][p] != c) {
							ok = false
							break
						}
					}
					if ok {
						total++
					}
				}
			}
		})
	}
	return total
}

// bruteWheels counts wheels by enumerating every center, every rim vertex set
// and every cyclic order of the rim up to rotation and reflection.
func bruteWheels(m coloring.Matrix, sizes []int) int64 {
	var total int64
	n := m.Size()
	for c, size := range sizes {
		for center := 0; center < n; center++ {
			forEachSubset(n, size-1, func(rim []int) {
				for _, r := range rim {
					if r == center || m[center][r] != c {
						return
					}
				}
				total += hamiltonianCycles(m, rim, c)
			})
		}
	}
	return total
}

// hamiltonianCycles counts cycles in color c through every vertex of set.
func hamiltonianCycles(m coloring.Matrix, set []int, c int) int64 {
	var count int64
	order := make([]int, 0, len(set))
	used := make([]bool, len(set))
	order = append(order, set[0])
	used[0] = true

	var walk func()
	walk = func() {
		if len(order) == len(set) {
			// set[0] is fixed first; second < last removes the reflection.
			if order[1] < order[len(order)-1] && m[order[len(order)-1]][order[0]] == c {
				count++
			}
			return
		}
		prev := order[len(order)-1]
		for i, v := range set {
			if used[i] || m[prev][v] != c {
				continue
			}
			used[i] = true
			order = append(order, v)
			walk()
			order = order[:len(order)-1]
			used[i] = false
		}
	}
	walk()
	return count
}

func forEachSubset(n, k int, fn func([]int)) {
	set := make([]int, 0, k)
	var rec func(start int)
	rec = func(start int) {
		if len(set) == k {
			fn(set)
			return
		}
		for v := start; v <= n-(k-len(set)); v++ {
			set = append(set, v)
			rec(v + 1)
			set = set[:len(set)-1]
		}
	}
	rec(0)
}

func bruteCount(kind Kind, m coloring.Matrix, sizes []int) int64 {
	if kind == Books {
		return bruteBooks(m, sizes)
	}
	return bruteWheels(m, sizes)
}

// randomSetup derives a coloring and forbidden sizes from seed.
func randomSetup(seed uint64, n, colors int, kind Kind) (coloring.Matrix, []int, *rand.Rand) {
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	sizes := make([]int, colors)
	for c := range sizes {
		sizes[c] = kind.MinSize() + rng.IntN(2)
	}
	return coloring.Random(n, colors, rng), sizes, rng
}

func mustGraph(t *testing.T, m coloring.Matrix, sizes []int, kind Kind) *Graph {
	t.Helper()
	g, err := New(m, sizes, kind)
	require.NoError(t, err)
	return g
}

func randomMove(g *Graph, rng *rand.Rand) Move {
	return g.Catalog().At(rng.IntN(g.Catalog().Len()))
}

func uniform(n, color int) coloring.Matrix {
	m := coloring.New(n)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			m.Set(i, j, color)
		}
	}
	return m
}
