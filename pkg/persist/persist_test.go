package persist

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dd0wney/ramsey-tabu/pkg/coloring"
	"github.com/dd0wney/ramsey-tabu/pkg/metrics"
	"github.com/dd0wney/ramsey-tabu/pkg/ramsey"
)

func sample() coloring.Matrix {
	m := coloring.New(3)
	m.Set(0, 1, 1)
	m.Set(1, 2, 1)
	return m
}

func TestEncode(t *testing.T) {
	body := Encode(sample(), []Label{{"random_seed", 7}, {"steps", int64(12)}})
	assert.Equal(t, "0,1,0\n1,0,1\n0,1,0\n\nrandom_seed = 7\nsteps = 12", string(body))

	assert.Equal(t, "0,1,0\n1,0,1\n0,1,0\n", string(Encode(sample(), nil)))
}

func TestFileName(t *testing.T) {
	body := Encode(sample(), nil)
	name := FileName(ramsey.Wheels, []int{5, 6}, 3, body)

	assert.True(t, strings.HasPrefix(name, "final_adj_matrix_wheels_5-6_3vertices_"), name)
	assert.True(t, strings.HasSuffix(name, ".txt"))
	assert.Equal(t, name, FileName(ramsey.Wheels, []int{5, 6}, 3, body), "name is a function of the content")
	assert.NotEqual(t, name, FileName(ramsey.Wheels, []int{5, 6}, 3, Encode(sample(), []Label{{"seed", 1}})))
}

func TestSaveOnceThenNoOp(t *testing.T) {
	dir := t.TempDir()
	reg := metrics.NewRegistry()
	s := Saver{Dir: dir, Metrics: reg}

	path, created, err := s.Save(sample(), ramsey.Books, []int{4, 4}, Label{"random_seed", 3})
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, dir, filepath.Dir(path))

	again, created, err := s.Save(sample(), ramsey.Books, []int{4, 4}, Label{"random_seed", 3})
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, path, again)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)

	var metric dto.Metric
	require.NoError(t, reg.SavedColoringsTotal.WithLabelValues("exists").Write(&metric))
	assert.Equal(t, float64(1), metric.Counter.GetValue())
}

func TestSaveDoesNotOverwrite(t *testing.T) {
	dir := t.TempDir()
	body := Encode(sample(), nil)
	path := filepath.Join(dir, FileName(ramsey.Books, []int{4, 4}, 3, body))
	require.NoError(t, os.WriteFile(path, []byte("keep me"), 0o644))

	_, created, err := Save(dir, sample(), ramsey.Books, []int{4, 4})
	require.NoError(t, err)
	assert.False(t, created)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "keep me", string(data))
}

func TestSaveMissingDir(t *testing.T) {
	_, _, err := Save(filepath.Join(t.TempDir(), "nope"), sample(), ramsey.Books, []int{4, 4})
	require.Error(t, err)
}

func TestLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path, _, err := Save(dir, sample(), ramsey.Wheels, []int{5, 5}, Label{"random_seed", 99}, Label{"num_vertices", 3})
	require.NoError(t, err)

	m, err := Load(path)
	require.NoError(t, err)
	assert.True(t, m.Equal(sample()))
}

func TestLoadRejectsGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.txt")
	require.NoError(t, os.WriteFile(path, []byte("0,x\nx,0\n"), 0o644))

	_, err := Load(path)
	require.ErrorIs(t, err, coloring.ErrParse)
}
