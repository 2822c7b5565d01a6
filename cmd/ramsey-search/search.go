package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dd0wney/ramsey-tabu/pkg/config"
	"github.com/dd0wney/ramsey-tabu/pkg/logging"
	"github.com/dd0wney/ramsey-tabu/pkg/metrics"
	"github.com/dd0wney/ramsey-tabu/pkg/persist"
	"github.com/dd0wney/ramsey-tabu/pkg/render"
	"github.com/dd0wney/ramsey-tabu/pkg/runner"
)

func runSearch(ctx context.Context, cfg *config.Config, stdout, stderr io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger := logging.NewJSONLogger(stderr, cfg.Level())
	logging.SetDefaultLogger(logger)

	problem, err := cfg.Problem()
	if err != nil {
		return err
	}

	reg := metrics.NewRegistry()
	if cfg.MetricsAddr != "" {
		shutdown := serveMetrics(ctx, cfg.MetricsAddr, reg, logger)
		defer shutdown()
	}

	printer := render.NewPrinter(stdout, cfg.Parallel())
	announcer := render.NewLocked(printer)
	opts := runner.Options{
		Announce:    !cfg.Quiet,
		OnImprove:   announcer.Announce,
		MaxSteps:    cfg.MaxSteps,
		MaxAttempts: cfg.MaxAttempts,
		Concurrency: cfg.Concurrency,
		Logger:      logger,
		Metrics:     reg,
	}
	if cfg.Save {
		opts.Saver = &persist.Saver{Dir: cfg.OutputDir, Logger: logger, Metrics: reg}
	}

	seed := runner.RandomSeed()
	if cfg.Seed != nil {
		seed = *cfg.Seed
	}
	logger.Info("configuration",
		logging.Structure(problem.Structure),
		logging.Sizes(problem.Sizes),
		logging.Vertices(problem.Vertices),
		logging.Workers(cfg.Workers),
		logging.Seed(seed),
	)

	if !cfg.Parallel() {
		out, err := runner.SearchUntilSuccess(ctx, problem, seed, 0, opts)
		if err != nil {
			return err
		}
		printFinal(stdout, printer, out, false)
		return nil
	}

	run, err := runner.Parallel(ctx, problem, cfg.Workers, seed, opts)
	if err != nil {
		return err
	}
	for _, out := range run.Outcomes {
		printFinal(stdout, printer, out, true)
	}
	return nil
}

func printFinal(w io.Writer, p *render.Printer, out *runner.Outcome, showID bool) {
	if showID {
		fmt.Fprintf(w, "Search #%d finished (seed %d, %d steps). Final coloring:\n", out.SearchID, out.Seed, out.TotalSteps)
	} else {
		fmt.Fprintf(w, "Finished (seed %d, %d steps). Final coloring:\n", out.Seed, out.TotalSteps)
	}
	fmt.Fprintf(w, "%s\n", p.Matrix(out.Result.Coloring))
	if out.SavedPath != "" {
		fmt.Fprintf(w, "saved to %s\n", out.SavedPath)
	}
	fmt.Fprintln(w)
}

// serveMetrics exposes reg on addr until the returned function is called.
func serveMetrics(ctx context.Context, addr string, reg *metrics.Registry, logger logging.Logger) func() {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg.GetPrometheusRegistry(), promhttp.HandlerOpts{}))
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		logger.Info("metrics server starting", logging.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server error", logging.Error(err))
		}
	}()

	start := time.Now()
	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(5 * time.Second)
		defer ticker.Stop()
		for {
			reg.UpdateSystemMetrics(start)
			select {
			case <-ticker.C:
			case <-ctx.Done():
				return
			case <-done:
				return
			}
		}
	}()

	return func() {
		close(done)
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Warn("metrics server shutdown", logging.Error(err))
		}
	}
}
