// Package coloring holds the edge-coloring of a complete graph as a symmetric
// matrix of small color indices, along with its canonical text form.
//
// The canonical form has one row per line with comma-separated entries and is
// never truncated. It is what the search prints for improvements and what
// saved constructions contain.
package coloring

import (
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"strconv"
	"strings"
)

var (
	ErrNotSquare   = errors.New("coloring matrix is not square")
	ErrAsymmetric  = errors.New("coloring matrix is not symmetric")
	ErrDiagonal    = errors.New("coloring matrix has a non-zero diagonal entry")
	ErrColorRange  = errors.New("color out of range")
	ErrParse       = errors.New("malformed coloring text")
	ErrPermutation = errors.New("invalid vertex permutation")
)

// Matrix is an n×n edge-coloring: M[i][j] is the color of edge {i,j}.
// Valid matrices are symmetric with a zero diagonal.
type Matrix [][]int

// New returns an all-zero n×n matrix.
func New(n int) Matrix {
	m := make(Matrix, n)
	cells := make([]int, n*n)
	for i := range m {
		m[i] = cells[i*n : (i+1)*n : (i+1)*n]
	}
	return m
}

// Size returns the number of vertices.
func (m Matrix) Size() int {
	return len(m)
}

// Set colors edge {i,j}, keeping the matrix symmetric.
func (m Matrix) Set(i, j, color int) {
	m[i][j] = color
	m[j][i] = color
}

// Clone returns a deep copy.
func (m Matrix) Clone() Matrix {
	out := New(len(m))
	for i, row := range m {
		copy(out[i], row)
	}
	return out
}

// Equal reports whether both matrices hold the same coloring.
func (m Matrix) Equal(other Matrix) bool {
	if len(m) != len(other) {
		return false
	}
	for i := range m {
		if len(m[i]) != len(other[i]) {
			return false
		}
		for j := range m[i] {
			if m[i][j] != other[i][j] {
				return false
			}
		}
	}
	return true
}

// Validate checks shape, symmetry, the zero diagonal and that every off-diagonal
// entry lies in [0, numColors).
func (m Matrix) Validate(numColors int) error {
	n := len(m)
	for i, row := range m {
		if len(row) != n {
			return fmt.Errorf("%w: row %d has %d entries, want %d", ErrNotSquare, i, len(row), n)
		}
	}
	for i := 0; i < n; i++ {
		if m[i][i] != 0 {
			return fmt.Errorf("%w: M[%d][%d] = %d", ErrDiagonal, i, i, m[i][i])
		}
		for j := i + 1; j < n; j++ {
			if m[i][j] != m[j][i] {
				return fmt.Errorf("%w: M[%d][%d] = %d, M[%d][%d] = %d", ErrAsymmetric, i, j, m[i][j], j, i, m[j][i])
			}
			if c := m[i][j]; c < 0 || c >= numColors {
				return fmt.Errorf("%w: M[%d][%d] = %d, colors are 0..%d", ErrColorRange, i, j, c, numColors-1)
			}
		}
	}
	return nil
}

// Permute relabels vertices so that vertex i becomes perm[i].
func (m Matrix) Permute(perm []int) (Matrix, error) {
	n := len(m)
	if len(perm) != n {
		return nil, fmt.Errorf("%w: length %d for %d vertices", ErrPermutation, len(perm), n)
	}
	seen := make([]bool, n)
	for _, p := range perm {
		if p < 0 || p >= n || seen[p] {
			return nil, fmt.Errorf("%w: %v", ErrPermutation, perm)
		}
		seen[p] = true
	}

	out := New(n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			out[perm[i]][perm[j]] = m[i][j]
		}
	}
	return out, nil
}

// String renders the canonical text form.
func (m Matrix) String() string {
	var b strings.Builder
	m.WriteTo(&b)
	return b.String()
}

// WriteTo writes the canonical text form: rows separated by newlines, entries
// by commas, without a trailing newline.
func (m Matrix) WriteTo(w io.Writer) (int64, error) {
	var buf []byte
	for i, row := range m {
		if i > 0 {
			buf = append(buf, '\n')
		}
		for j, c := range row {
			if j > 0 {
				buf = append(buf, ',')
			}
			buf = strconv.AppendInt(buf, int64(c), 10)
		}
	}
	n, err := w.Write(buf)
	return int64(n), err
}

// Parse reads a matrix in canonical text form. Reading stops at the first blank
// line, so label lines appended after a saved construction are ignored.
// Brackets and spaces are tolerated so array-style dumps parse as well.
func Parse(text string) (Matrix, error) {
	var rows [][]int
	for lineNo, line := range strings.Split(text, "\n") {
		line = strings.Trim(strings.TrimSpace(line), "[]")
		if line == "" {
			if len(rows) > 0 {
				break
			}
			continue
		}

		fields := strings.Split(strings.TrimRight(line, ",]"), ",")
		row := make([]int, 0, len(fields))
		for _, f := range fields {
			f = strings.Trim(strings.TrimSpace(f), "[]")
			v, err := strconv.Atoi(f)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: %q", ErrParse, lineNo+1, f)
			}
			row = append(row, v)
		}
		rows = append(rows, row)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: no rows", ErrParse)
	}

	m := New(len(rows))
	for i, row := range rows {
		if len(row) != len(rows) {
			return nil, fmt.Errorf("%w: row %d has %d entries, want %d", ErrNotSquare, i, len(row), len(rows))
		}
		copy(m[i], row)
	}
	return m, nil
}

// Random returns a uniformly random coloring: every pair independently takes a
// color in [0, colors).
func Random(n, colors int, rng *rand.Rand) Matrix {
	m := New(n)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			m.Set(i, j, rng.IntN(colors))
		}
	}
	return m
}
