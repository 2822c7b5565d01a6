package ramsey

import "fmt"

// Edge is an unordered vertex pair stored with U < V.
type Edge struct {
	U, V int
}

// NewEdge returns the edge {i,j} in canonical order.
func NewEdge(i, j int) Edge {
	if i > j {
		i, j = j, i
	}
	return Edge{U: i, V: j}
}

// Move recolors one edge from its current color From to a different color To.
type Move struct {
	Edge Edge
	To   int
	From int
}

// Inverse returns the move that undoes m.
func (m Move) Inverse() Move {
	return Move{Edge: m.Edge, To: m.From, From: m.To}
}

func (m Move) String() string {
	return fmt.Sprintf("(%d,%d):%d->%d", m.Edge.U, m.Edge.V, m.From, m.To)
}

// pairIndex maps i < j to a dense index over the n(n-1)/2 unordered pairs.
func pairIndex(n, i, j int) int {
	if i > j {
		i, j = j, i
	}
	return i*n - i*(i+1)/2 + j - i - 1
}

func numPairs(n int) int {
	return n * (n - 1) / 2
}
