package ramsey

import (
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"

	"github.com/dd0wney/ramsey-tabu/pkg/coloring"
)

// vertexSet is an ordered set of vertex indices. Ordered iteration keeps seeded
// searches reproducible.
type vertexSet struct {
	tree *treeset.Set
}

func newVertexSet() vertexSet {
	return vertexSet{tree: treeset.NewWith(utils.IntComparator)}
}

func (s vertexSet) add(v int)      { s.tree.Add(v) }
func (s vertexSet) remove(v int)   { s.tree.Remove(v) }
func (s vertexSet) has(v int) bool { return s.tree.Contains(v) }
func (s vertexSet) size() int      { return s.tree.Size() }

// each calls fn for every member in ascending order. fn must not modify s.
func (s vertexSet) each(fn func(v int)) {
	it := s.tree.Iterator()
	for it.Next() {
		fn(it.Value().(int))
	}
}

// appendTo appends the members in ascending order to dst.
func (s vertexSet) appendTo(dst []int) []int {
	it := s.tree.Iterator()
	for it.Next() {
		dst = append(dst, it.Value().(int))
	}
	return dst
}

func (s vertexSet) equal(other vertexSet) bool {
	if s.size() != other.size() {
		return false
	}
	same := true
	s.each(func(v int) {
		if same && !other.has(v) {
			same = false
		}
	})
	return same
}

// intersect returns a new set holding the members common to a and b.
func intersect(a, b vertexSet) vertexSet {
	if a.size() > b.size() {
		a, b = b, a
	}
	out := newVertexSet()
	a.each(func(v int) {
		if b.has(v) {
			out.add(v)
		}
	})
	return out
}

// state is the coloring plus its derived neighbor indices.
//
// nbrs[c][v] holds every u with M[u][v] == c. common[c][p] holds
// nbrs[c][i] ∩ nbrs[c][j] for the pair p = {i,j}; there is exactly one set per
// unordered pair, so (c,i,j) and (c,j,i) always resolve to the same storage.
type state struct {
	n      int
	colors int
	sizes  []int
	m      coloring.Matrix
	nbrs   [][]vertexSet
	common [][]vertexSet
}

func newState(m coloring.Matrix, sizes []int) *state {
	n, colors := m.Size(), len(sizes)
	s := &state{
		n:      n,
		colors: colors,
		sizes:  sizes,
		m:      m,
		nbrs:   make([][]vertexSet, colors),
		common: make([][]vertexSet, colors),
	}

	for c := 0; c < colors; c++ {
		s.nbrs[c] = make([]vertexSet, n)
		for v := 0; v < n; v++ {
			s.nbrs[c][v] = newVertexSet()
		}
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			c := m[i][j]
			s.nbrs[c][i].add(j)
			s.nbrs[c][j].add(i)
		}
	}

	for c := 0; c < colors; c++ {
		s.common[c] = make([]vertexSet, numPairs(n))
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			p := pairIndex(n, i, j)
			for c := 0; c < colors; c++ {
				s.common[c][p] = intersect(s.nbrs[c][i], s.nbrs[c][j])
			}
		}
	}
	return s
}

func (s *state) color(i, j int) int {
	return s.m[i][j]
}

// commonOf returns the common neighbors of i and j in color c. Both argument
// orders address the same set.
func (s *state) commonOf(c, i, j int) vertexSet {
	return s.common[c][pairIndex(s.n, i, j)]
}

// recolor changes the color of edge {u,v} and repairs both indices. The step
// order matters: pruning the old color must see the neighbor sets after u–v is
// removed, and additions in the new color must see them before u–v is added.
func (s *state) recolor(u, v, from, to int) {
	s.m.Set(u, v, to)

	s.nbrs[from][u].remove(v)
	s.nbrs[from][v].remove(u)

	// u is no longer a common neighbor of v and w in the old color, and vice versa.
	s.nbrs[from][u].each(func(w int) {
		s.commonOf(from, v, w).remove(u)
	})
	s.nbrs[from][v].each(func(w int) {
		s.commonOf(from, u, w).remove(v)
	})

	s.nbrs[to][u].each(func(w int) {
		s.commonOf(to, v, w).add(u)
	})
	s.nbrs[to][v].each(func(w int) {
		s.commonOf(to, u, w).add(v)
	})

	s.nbrs[to][u].add(v)
	s.nbrs[to][v].add(u)
}
