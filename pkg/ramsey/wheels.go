package ramsey

// wheelCounter counts wheels: a center adjacent in color c to every vertex of
// a rim cycle of length sizes[c]-1, the rim also colored c.
//
// The scratch buffers make a counter single-goroutine; every Graph owns its own.
type wheelCounter struct {
	outer []int // common neighbors, or the shrinking cycle pool
	inner []int // a neighborhood, or the fixed vertex's neighbors in the pool
	pool  []int // candidate internal path vertices
	via   []int // the chosen internal vertex set
}

// Count adds, for every center and color, the rim cycles induced on the
// center's neighborhood in that color.
func (w *wheelCounter) Count(s *state) int64 {
	var total int64
	for center := 0; center < s.n; center++ {
		for c := 0; c < s.colors; c++ {
			w.outer = s.nbrs[c][center].appendTo(w.outer[:0])
			total += w.cyclesWithin(s, w.outer, s.sizes[c]-1, c)
		}
	}
	return total
}

// Delta splits the wheels through the edge into those where it lies on the rim
// (the center is a common neighbor of its ends) and those where it is a spoke
// (u or v is the center, and the rim neighbors of the other end are common
// neighbors of both).
func (w *wheelCounter) Delta(s *state, m Move) int64 {
	u, v := m.Edge.U, m.Edge.V
	var delta int64

	delta += w.rimWheels(s, u, v, m.To)
	delta -= w.rimWheels(s, u, v, m.From)
	delta += w.spokeWheels(s, u, v, m.To)
	delta -= w.spokeWheels(s, u, v, m.From)

	return delta
}

// rimWheels counts wheels in color c whose rim contains the edge {u,v}: for each
// center, the paths from u to v through the rest of the center's neighborhood.
func (w *wheelCounter) rimWheels(s *state, u, v, c int) int64 {
	var total int64
	w.outer = s.commonOf(c, u, v).appendTo(w.outer[:0])
	for _, center := range w.outer {
		w.pool = appendExcept(w.pool[:0], s.nbrs[c][center], u, v)
		total += w.pathsWithin(s, u, v, w.pool, s.sizes[c]-3, c)
	}
	return total
}

// spokeWheels counts wheels in color c where {u,v} is a spoke. With u as the
// center, v's two rim neighbors a and b are common neighbors of u and v, and the
// rim closes with a path from a to b through u's other neighbors. When c is the
// edge's current color v is itself in u's neighborhood and is excluded.
func (w *wheelCounter) spokeWheels(s *state, u, v, c int) int64 {
	var total int64
	w.outer = s.commonOf(c, u, v).appendTo(w.outer[:0])
	for _, center := range [2]int{u, v} {
		w.inner = appendExcept(w.inner[:0], s.nbrs[c][center], u, v)
		for i := 0; i < len(w.outer); i++ {
			for j := i + 1; j < len(w.outer); j++ {
				a, b := w.outer[i], w.outer[j]
				w.pool = appendWithout(w.pool[:0], w.inner, a, b)
				total += w.pathsWithin(s, a, b, w.pool, s.sizes[c]-4, c)
			}
		}
	}
	return total
}

// cyclesWithin counts cycles of the given length in color c using only vertices
// of members. Each cycle is counted once: its first vertex (in member order) is
// fixed, and its two neighbors on the cycle are taken as an unordered pair.
// members is consumed.
func (w *wheelCounter) cyclesWithin(s *state, members []int, length, c int) int64 {
	var total int64
	remaining := members
	for len(remaining) >= length {
		first := remaining[0]
		remaining = remaining[1:]

		w.inner = w.inner[:0]
		for _, x := range remaining {
			if s.color(first, x) == c {
				w.inner = append(w.inner, x)
			}
		}

		for i := 0; i < len(w.inner); i++ {
			for j := i + 1; j < len(w.inner); j++ {
				a, b := w.inner[i], w.inner[j]
				w.pool = appendWithout(w.pool[:0], remaining, a, b)
				total += w.pathsWithin(s, a, b, w.pool, length-3, c)
			}
		}
	}
	return total
}

// pathsWithin counts paths in color c from a to b whose k internal vertices are
// drawn from pool, by enumerating every k-subset of pool.
func (w *wheelCounter) pathsWithin(s *state, a, b int, pool []int, k, c int) int64 {
	if k < 0 || k > len(pool) {
		return 0
	}
	if cap(w.via) < k {
		w.via = make([]int, k)
	}
	return w.chooseVia(s, a, b, pool, w.via[:k], 0, 0, c)
}

func (w *wheelCounter) chooseVia(s *state, a, b int, pool, via []int, depth, start, c int) int64 {
	if depth == len(via) {
		return pathsVia(s, a, b, via, c)
	}
	var total int64
	for i := start; i <= len(pool)-(len(via)-depth); i++ {
		via[depth] = pool[i]
		total += w.chooseVia(s, a, b, pool, via, depth+1, i+1, c)
	}
	return total
}

// pathsVia counts paths in color c from a to b whose internal vertices are
// exactly the set via, in any order. It picks the vertex adjacent to b and
// recurses with that vertex as the new endpoint. via is reordered during the
// call and restored before returning.
func pathsVia(s *state, a, b int, via []int, c int) int64 {
	if len(via) == 0 {
		if s.color(a, b) == c {
			return 1
		}
		return 0
	}

	var total int64
	last := len(via) - 1
	for i := range via {
		x := via[i]
		if s.color(x, b) != c {
			continue
		}
		via[i], via[last] = via[last], via[i]
		total += pathsVia(s, a, x, via[:last], c)
		via[i], via[last] = via[last], via[i]
	}
	return total
}

// appendExcept appends the members of set other than x and y.
func appendExcept(dst []int, set vertexSet, x, y int) []int {
	set.each(func(v int) {
		if v != x && v != y {
			dst = append(dst, v)
		}
	})
	return dst
}

// appendWithout appends the elements of src other than x and y.
func appendWithout(dst, src []int, x, y int) []int {
	for _, v := range src {
		if v != x && v != y {
			dst = append(dst, v)
		}
	}
	return dst
}
