package ramsey

import "fmt"

// Verify rebuilds the indices, the move catalog and the identity hash from the
// current coloring and reports the first difference from the maintained ones.
func (g *Graph) Verify() error {
	fresh := newState(g.state.m.Clone(), g.state.sizes)
	n, colors := g.state.n, g.state.colors

	for c := 0; c < colors; c++ {
		for v := 0; v < n; v++ {
			if !fresh.nbrs[c][v].equal(g.state.nbrs[c][v]) {
				return fmt.Errorf("%w: neighbors of %d in color %d", ErrIndexMismatch, v, c)
			}
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if !fresh.commonOf(c, i, j).equal(g.state.commonOf(c, i, j)) {
					return fmt.Errorf("%w: common neighbors of %d,%d in color %d", ErrIndexMismatch, i, j, c)
				}
			}
		}
	}

	catalog := newMoveCatalog(fresh.m, colors)
	for i := 0; i < catalog.Len(); i++ {
		if catalog.At(i) != g.catalog.At(i) {
			return fmt.Errorf("%w: move %d is %v, want %v", ErrIndexMismatch, i, g.catalog.At(i), catalog.At(i))
		}
	}

	if h := g.hasher.sum(fresh.m); h != g.hash {
		return fmt.Errorf("%w: identity hash %#x, want %#x", ErrIndexMismatch, g.hash, h)
	}
	return nil
}
