package ramsey

import (
	"iter"

	"github.com/dd0wney/ramsey-tabu/pkg/coloring"
)

// MoveCatalog holds every legal single-edge recoloring of the current coloring:
// colors-1 moves per edge, one for each color other than the edge's own.
//
// Each edge owns a fixed run of slots, so recoloring an edge rewrites only
// that run.
type MoveCatalog struct {
	n      int
	colors int
	moves  []Move
}

func newMoveCatalog(m coloring.Matrix, colors int) *MoveCatalog {
	n := m.Size()
	c := &MoveCatalog{
		n:      n,
		colors: colors,
		moves:  make([]Move, numPairs(n)*(colors-1)),
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			c.recolor(Edge{U: i, V: j}, m[i][j])
		}
	}
	return c
}

// recolor replaces the moves of e with those leaving its new color current.
func (c *MoveCatalog) recolor(e Edge, current int) {
	slot := pairIndex(c.n, e.U, e.V) * (c.colors - 1)
	for color := 0; color < c.colors; color++ {
		if color == current {
			continue
		}
		c.moves[slot] = Move{Edge: e, To: color, From: current}
		slot++
	}
}

// Len returns the number of legal moves.
func (c *MoveCatalog) Len() int {
	return len(c.moves)
}

// At returns the i-th move.
func (c *MoveCatalog) At(i int) Move {
	return c.moves[i]
}

// All yields every legal move.
func (c *MoveCatalog) All() iter.Seq[Move] {
	return func(yield func(Move) bool) {
		for _, m := range c.moves {
			if !yield(m) {
				return
			}
		}
	}
}

// Moves returns a copy of the catalog contents.
func (c *MoveCatalog) Moves() []Move {
	out := make([]Move, len(c.moves))
	copy(out, c.moves)
	return out
}
