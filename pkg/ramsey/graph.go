// Package ramsey holds the incremental state behind the local search for
// Ramsey-type lower-bound colorings: an edge-colored complete graph with
// per-color neighbor and common-neighbor indices, the catalog of legal
// single-edge recolorings, an XOR-composable identity hash, and exact full and
// incremental counts of monochromatic books or wheels.
//
// A Graph is not safe for concurrent use. Parallel searches each own a Graph.
package ramsey

import (
	"fmt"
	"iter"

	"github.com/dd0wney/ramsey-tabu/pkg/coloring"
)

// Graph is an edge-colored complete graph scored against one family of
// forbidden monochromatic structures.
type Graph struct {
	kind    Kind
	state   *state
	counter counter
	catalog *MoveCatalog
	hasher  *edgeHasher
	hash    uint64
}

// New builds a graph from a coloring and the forbidden size (in vertices) for
// each color; the number of colors is len(sizes). The coloring is copied.
//
// Construction fails with a *ConfigError when kind is not Books or Wheels, when
// sizes is empty, when any size is below kind.MinSize(), or when the coloring
// is not a valid symmetric matrix over len(sizes) colors.
func New(m coloring.Matrix, sizes []int, kind Kind) (*Graph, error) {
	if !kind.Valid() {
		return nil, &ConfigError{Op: "New", Field: "structure", Value: int(kind), Cause: ErrUnknownKind}
	}
	if len(sizes) == 0 {
		return nil, &ConfigError{Op: "New", Field: "sizes", Value: sizes, Cause: ErrNoColors}
	}
	for c, size := range sizes {
		if size < kind.MinSize() {
			return nil, &ConfigError{
				Op:    "New",
				Field: fmt.Sprintf("sizes[%d]", c),
				Value: size,
				Cause: fmt.Errorf("%w: %s need at least %d vertices", ErrSizeTooSmall, kind, kind.MinSize()),
			}
		}
	}
	if err := m.Validate(len(sizes)); err != nil {
		return nil, &ConfigError{Op: "New", Field: "coloring", Cause: fmt.Errorf("%w: %w", ErrBadColoring, err)}
	}

	owned := m.Clone()
	ownedSizes := append([]int(nil), sizes...)

	ctr, err := newCounter(kind, owned.Size())
	if err != nil {
		return nil, err
	}

	g := &Graph{
		kind:    kind,
		state:   newState(owned, ownedSizes),
		counter: ctr,
		catalog: newMoveCatalog(owned, len(ownedSizes)),
		hasher:  newEdgeHasher(owned.Size(), len(ownedSizes)),
	}
	g.hash = g.hasher.sum(owned)
	return g, nil
}

// Kind returns the forbidden structure family.
func (g *Graph) Kind() Kind { return g.kind }

// NumVertices returns n.
func (g *Graph) NumVertices() int { return g.state.n }

// NumColors returns the number of edge colors.
func (g *Graph) NumColors() int { return g.state.colors }

// Sizes returns a copy of the per-color forbidden sizes.
func (g *Graph) Sizes() []int { return append([]int(nil), g.state.sizes...) }

// Color returns the color of edge {i,j}.
func (g *Graph) Color(i, j int) int { return g.state.color(i, j) }

// Coloring returns a copy of the current coloring.
func (g *Graph) Coloring() coloring.Matrix { return g.state.m.Clone() }

// String renders the current coloring in canonical text form.
func (g *Graph) String() string { return g.state.m.String() }

// Score recounts every forbidden monochromatic structure from scratch.
func (g *Graph) Score() int64 {
	return g.counter.Count(g.state)
}

// MoveDelta returns the score change that applying m would cause. The graph is
// not modified. m must be a legal move of the current coloring.
func (g *Graph) MoveDelta(m Move) int64 {
	return g.counter.Delta(g.state, m)
}

// IdentityHash returns the XOR-composed hash of the current coloring.
func (g *Graph) IdentityHash() uint64 {
	return g.hash
}

// HashAfter returns the identity hash of the coloring that applying m would
// produce. The graph is not modified.
func (g *Graph) HashAfter(m Move) uint64 {
	return g.hasher.after(g.hash, m)
}

// LegalMoves yields every legal move of the current coloring. The sequence must
// not be held across Apply.
func (g *Graph) LegalMoves() iter.Seq[Move] {
	return g.catalog.All()
}

// Catalog returns the move catalog. It reflects the current coloring and is
// rewritten by Apply.
func (g *Graph) Catalog() *MoveCatalog {
	return g.catalog
}

// Apply recolors one edge and updates the indices, the move catalog and the
// identity hash together. Deltas and hashes computed before Apply describe the
// previous coloring and must not be reused.
func (g *Graph) Apply(m Move) error {
	if err := g.checkMove(m); err != nil {
		return err
	}
	g.hash = g.hasher.after(g.hash, m)
	g.state.recolor(m.Edge.U, m.Edge.V, m.From, m.To)
	g.catalog.recolor(m.Edge, m.To)
	return nil
}

func (g *Graph) checkMove(m Move) error {
	e, n, colors := m.Edge, g.state.n, g.state.colors
	switch {
	case e.U < 0 || e.V >= n || e.U >= e.V:
		return fmt.Errorf("%w %v: edge outside %d vertices", ErrIllegalMove, m, n)
	case m.To < 0 || m.To >= colors:
		return fmt.Errorf("%w %v: color outside 0..%d", ErrIllegalMove, m, colors-1)
	case m.To == m.From:
		return fmt.Errorf("%w %v: edge already has that color", ErrIllegalMove, m)
	case g.state.color(e.U, e.V) != m.From:
		return fmt.Errorf("%w %v: edge is colored %d", ErrIllegalMove, m, g.state.color(e.U, e.V))
	}
	return nil
}
