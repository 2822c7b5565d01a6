package ramsey

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"

	"github.com/dd0wney/ramsey-tabu/pkg/coloring"
)

// edgeHasher holds one 64-bit key per (pair, color). The identity hash of a
// coloring is the XOR of the keys of its edges, so one recolored edge updates
// it with two XORs.
type edgeHasher struct {
	n      int
	colors int
	keys   []uint64
}

func newEdgeHasher(n, colors int) *edgeHasher {
	h := &edgeHasher{
		n:      n,
		colors: colors,
		keys:   make([]uint64, numPairs(n)*colors),
	}
	var buf [12]byte
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			p := pairIndex(n, i, j)
			for c := 0; c < colors; c++ {
				binary.LittleEndian.PutUint32(buf[0:4], uint32(i))
				binary.LittleEndian.PutUint32(buf[4:8], uint32(j))
				binary.LittleEndian.PutUint32(buf[8:12], uint32(c))
				h.keys[p*colors+c] = xxhash.Sum64(buf[:])
			}
		}
	}
	return h
}

func (h *edgeHasher) key(e Edge, color int) uint64 {
	return h.keys[pairIndex(h.n, e.U, e.V)*h.colors+color]
}

// sum hashes a full coloring.
func (h *edgeHasher) sum(m coloring.Matrix) uint64 {
	var total uint64
	for i := 0; i < h.n; i++ {
		for j := i + 1; j < h.n; j++ {
			total ^= h.key(Edge{U: i, V: j}, m[i][j])
		}
	}
	return total
}

// after returns the hash that results from applying m to a coloring hashing to current.
func (h *edgeHasher) after(current uint64, m Move) uint64 {
	return current ^ h.key(m.Edge, m.From) ^ h.key(m.Edge, m.To)
}
