package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/dd0wney/ramsey-tabu/pkg/config"
)

// flags holds raw flag values; only flags the user set override the config file.
type flags struct {
	configPath  string
	vertices    int
	structure   string
	sizes       []int
	workers     int
	concurrency int
	seed        uint64
	quiet       bool
	save        bool
	outDir      string
	logLevel    string
	metricsAddr string
	maxSteps    int64
	maxAttempts int
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	f := &flags{}
	root := &cobra.Command{
		Use:   "ramsey-search [extra sizes...]",
		Short: "Search for edge-colorings of K_n with no monochromatic books or wheels",
		Long: `Uses tabu search to find an edge-colored complete graph avoiding
monochromatic copies of the given books or wheels.

Example:
	ramsey-search -n 14 -b wheels -k 5 7

finds a 14-vertex coloring with no 5-vertex wheel in color 0 and no
7-vertex wheel in color 1. The book B_i has i+2 vertices, so "-b books -k 4 5"
forbids B_2 in color 0 and B_3 in color 1.`,
		Args:         cobra.ArbitraryArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := f.resolve(cmd, args)
			if err != nil {
				return err
			}
			return runSearch(cmd.Context(), cfg, stdout, stderr)
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	fs := root.Flags()
	fs.StringVar(&f.configPath, "config", "", "YAML config file; flags override its values")
	fs.IntVarP(&f.vertices, "vertices", "n", 0, "number of vertices of the complete graph")
	fs.StringVarP(&f.structure, "structure", "b", "", `forbidden structure: "books" or "wheels"`)
	fs.IntSliceVarP(&f.sizes, "sizes", "k", nil, "forbidden size in vertices for each color")
	fs.IntVarP(&f.workers, "workers", "p", 1, "number of independent searches to run in parallel")
	fs.IntVar(&f.concurrency, "concurrency", 0, "maximum searches running at once (0 = all)")
	fs.Uint64VarP(&f.seed, "seed", "r", 0, "random seed (default: drawn at random and logged)")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "print only final colorings, not intermediate records")
	fs.BoolVarP(&f.save, "save", "s", false, "save final colorings to text files")
	fs.StringVar(&f.outDir, "out", ".", "directory for saved colorings")
	fs.StringVar(&f.logLevel, "log-level", "info", "log level: debug, info, warn or error")
	fs.StringVar(&f.metricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address, e.g. :9090")
	fs.Int64Var(&f.maxSteps, "max-steps", 0, "restart a search from a fresh random coloring after this many steps (0 = never)")
	fs.IntVar(&f.maxAttempts, "max-attempts", 0, "give up after this many restarts (0 = never)")

	root.AddCommand(newScoreCmd(stdout))
	return root
}

// resolve layers defaults, the config file, set flags and trailing sizes.
func (f *flags) resolve(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.Default()
	if f.configPath != "" {
		loaded, err := config.Load(f.configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	set := cmd.Flags().Changed
	if set("vertices") {
		cfg.Vertices = f.vertices
	}
	if set("structure") {
		cfg.Structure = f.structure
	}
	if set("sizes") {
		cfg.Sizes = append([]int(nil), f.sizes...)
	}
	extra, err := parseSizes(args)
	if err != nil {
		return nil, err
	}
	cfg.Sizes = append(cfg.Sizes, extra...)
	if set("workers") {
		cfg.Workers = f.workers
	}
	if set("concurrency") {
		cfg.Concurrency = f.concurrency
	}
	if set("seed") {
		seed := f.seed
		cfg.Seed = &seed
	}
	if set("quiet") {
		cfg.Quiet = f.quiet
	}
	if set("save") {
		cfg.Save = f.save
	}
	if set("out") {
		cfg.OutputDir = f.outDir
	}
	if set("log-level") {
		cfg.LogLevel = f.logLevel
	}
	if set("metrics-addr") {
		cfg.MetricsAddr = f.metricsAddr
	}
	if set("max-steps") {
		cfg.MaxSteps = f.maxSteps
	}
	if set("max-attempts") {
		cfg.MaxAttempts = f.maxAttempts
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// parseSizes accepts "-k 5 7" style trailing sizes.
func parseSizes(args []string) ([]int, error) {
	sizes := make([]int, 0, len(args))
	for _, a := range args {
		n, err := strconv.Atoi(a)
		if err != nil {
			return nil, fmt.Errorf("unexpected argument %q: extra arguments must be sizes", a)
		}
		sizes = append(sizes, n)
	}
	return sizes, nil
}
