package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dd0wney/ramsey-tabu/pkg/logging"
	"github.com/dd0wney/ramsey-tabu/pkg/ramsey"
)

func valid() *Config {
	cfg := Default()
	cfg.Vertices = 14
	cfg.Structure = "wheels"
	cfg.Sizes = []int{5, 7}
	return cfg
}

func TestParseYAML(t *testing.T) {
	cfg, err := Parse([]byte(`
vertices: 14
structure: wheels
sizes: [5, 7]
workers: 4
seed: 0
save: true
output_dir: /tmp/out
log_level: debug
metrics_addr: ":9090"
`))
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 14, cfg.Vertices)
	assert.Equal(t, []int{5, 7}, cfg.Sizes)
	assert.Equal(t, 4, cfg.Workers)
	require.NotNil(t, cfg.Seed, "an explicit zero seed is still a seed")
	assert.Equal(t, uint64(0), *cfg.Seed)
	assert.True(t, cfg.Save)
	assert.True(t, cfg.Parallel())
	assert.Equal(t, logging.DebugLevel, cfg.Level())

	p, err := cfg.Problem()
	require.NoError(t, err)
	assert.Equal(t, ramsey.Wheels, p.Structure)
	assert.Equal(t, 14, p.Vertices)
}

func TestParseKeepsDefaults(t *testing.T) {
	cfg, err := Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	cfg, err = Parse([]byte("vertices: 9\n"))
	require.NoError(t, err)
	assert.Equal(t, 1, cfg.Workers)
	assert.Equal(t, ".", cfg.OutputDir)
	assert.Nil(t, cfg.Seed)
	assert.False(t, cfg.Parallel())
}

func TestParseRejectsUnknownKeys(t *testing.T) {
	_, err := Parse([]byte("vertices: 9\nthreads: 4\n"))
	require.ErrorIs(t, err, ErrInvalid)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	require.NoError(t, os.WriteFile(path, []byte("vertices: 9\nstructure: books\nsizes: [4, 4]\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())
	kind, err := cfg.Kind()
	require.NoError(t, err)
	assert.Equal(t, ramsey.Books, kind)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		errMsg string
	}{
		{"valid", func(*Config) {}, ""},
		{"no vertices", func(c *Config) { c.Vertices = 0 }, "Vertices: field is required"},
		{"no structure", func(c *Config) { c.Structure = "" }, "Structure: field is required"},
		{"no sizes", func(c *Config) { c.Sizes = nil }, "Sizes: field is required"},
		{"size below any minimum", func(c *Config) { c.Sizes = []int{3, 5} }, "must be at least 4"},
		{"size below wheel minimum", func(c *Config) { c.Sizes = []int{4, 5} }, "below the wheels minimum of 5"},
		{"unknown structure", func(c *Config) { c.Structure = "fans" }, "unknown"},
		{"zero workers", func(c *Config) { c.Workers = 0 }, "Workers: must be at least 1"},
		{"too many workers", func(c *Config) { c.Workers = 5000 }, "Workers: must not exceed 4096"},
		{"concurrency above workers", func(c *Config) { c.Concurrency = 3 }, "Concurrency: value 3 exceeds maximum 1"},
		{"bad log level", func(c *Config) { c.LogLevel = "loud" }, "LogLevel: must be one of"},
		{"bad metrics addr", func(c *Config) { c.MetricsAddr = "nope" }, "is not a host:port address"},
		{"save without dir", func(c *Config) { c.Save = true; c.OutputDir = "" }, "OutputDir: required field is empty"},
		{"structure is case-insensitive", func(c *Config) { c.Structure = "Wheel" }, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.modify(cfg)
			err := cfg.Validate()
			if tt.errMsg == "" {
				assert.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, ErrInvalid)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestValidateUnknownStructureKeepsCause(t *testing.T) {
	cfg := valid()
	cfg.Structure = "fans"
	err := cfg.Validate()
	require.ErrorIs(t, err, ramsey.ErrUnknownKind)
}

func TestConfigValidatorCollectsAll(t *testing.T) {
	cv := NewConfigValidator("Test")
	cv.Required("A", "").MaxInt("B", 3, 2).When(false, func(cv *ConfigValidator) {
		cv.Required("C", "")
	})
	assert.Len(t, cv.Errors(), 2)
	assert.Error(t, cv.Validate())
	assert.NoError(t, NewConfigValidator("Test").Validate())
}

func TestDefaultOr(t *testing.T) {
	assert.Equal(t, "info", DefaultOr("", "info"))
	assert.Equal(t, "debug", DefaultOr("debug", "info"))
	assert.Equal(t, 3, DefaultOr(0, 3))
}
