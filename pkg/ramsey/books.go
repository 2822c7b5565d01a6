package ramsey

import "github.com/dd0wney/ramsey-tabu/pkg/combinatorics"

// bookCounter counts books: a spine edge of color c plus sizes[c]-2 pages, each
// page adjacent to both spine ends in color c.
type bookCounter struct {
	binom *combinatorics.BinomialCache
}

// Count sums, over every edge taken as the spine, the ways to choose the pages
// from the common neighbors of its ends in the edge's color.
func (b *bookCounter) Count(s *state) int64 {
	var total int64
	for i := 0; i < s.n; i++ {
		for j := i + 1; j < s.n; j++ {
			c := s.color(i, j)
			total += b.binom.Choose(s.commonOf(c, i, j).size(), s.sizes[c]-2)
		}
	}
	return total
}

// Delta counts the books gained in m.To and lost in m.From, with the edge as
// the spine or as the edge joining a page to one spine end.
func (b *bookCounter) Delta(s *state, m Move) int64 {
	u, v := m.Edge.U, m.Edge.V
	toSize, fromSize := s.sizes[m.To], s.sizes[m.From]
	toCommon := s.commonOf(m.To, u, v)
	fromCommon := s.commonOf(m.From, u, v)

	delta := b.binom.Choose(toCommon.size(), toSize-2) -
		b.binom.Choose(fromCommon.size(), fromSize-2)

	// w with one of u,v forms the spine; the other end is a page.
	toCommon.each(func(w int) {
		delta += b.binom.Choose(s.commonOf(m.To, u, w).size(), toSize-3)
		delta += b.binom.Choose(s.commonOf(m.To, v, w).size(), toSize-3)
	})

	// u, v and w are a triangle in m.From, so the page end of the edge is
	// already among the spine's common neighbors and must not be chosen again.
	fromCommon.each(func(w int) {
		delta -= b.binom.Choose(s.commonOf(m.From, u, w).size()-1, fromSize-3)
		delta -= b.binom.Choose(s.commonOf(m.From, v, w).size()-1, fromSize-3)
	})

	return delta
}
