package render

import (
	"bytes"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dd0wney/ramsey-tabu/pkg/coloring"
	"github.com/dd0wney/ramsey-tabu/pkg/tabu"
)

func triangle() coloring.Matrix {
	m := coloring.New(3)
	m.Set(0, 1, 1)
	m.Set(0, 2, 2)
	return m
}

// A bytes.Buffer is not a terminal, so the printer must fall back to plain text.
func TestMatrixPlainMatchesCanonicalText(t *testing.T) {
	p := NewPrinter(&bytes.Buffer{}, false)
	assert.Equal(t, triangle().String(), p.Matrix(triangle()))
}

func TestHeader(t *testing.T) {
	imp := tabu.Improvement{SearchID: 3, Step: 12, Score: 5}

	assert.Equal(t, "step 12, score 5", NewPrinter(&bytes.Buffer{}, false).Header(imp))
	assert.Equal(t, "search 3, step 12, score 5", NewPrinter(&bytes.Buffer{}, true).Header(imp))
}

func TestAnnounce(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, true)
	p.Announce(tabu.Improvement{SearchID: 1, Step: 4, Score: 0, Coloring: triangle()})

	assert.Equal(t, "search 1, step 4, score 0\n0,1,2\n1,0,0\n2,0,0\n\n", buf.String())
}

func TestLockedAnnounceKeepsBlocksWhole(t *testing.T) {
	var buf bytes.Buffer
	l := NewLocked(NewPrinter(&buf, true))

	var wg sync.WaitGroup
	for id := 0; id < 4; id++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for step := int64(1); step <= 20; step++ {
				l.Announce(tabu.Improvement{SearchID: id, Step: step, Score: 20 - step, Coloring: triangle()})
			}
		}(id)
	}
	wg.Wait()

	blocks := strings.Split(strings.TrimSuffix(buf.String(), "\n\n"), "\n\n")
	require.Len(t, blocks, 80)
	for _, b := range blocks {
		lines := strings.Split(b, "\n")
		require.Len(t, lines, 4)
		assert.True(t, strings.HasPrefix(lines[0], "search "), lines[0])
		assert.Equal(t, triangle().String(), strings.Join(lines[1:], "\n"))
	}
}
