package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rrumana/game-of-life-reverse/internal/config"
	"github.com/rrumana/game-of-life-reverse/internal/engine"
	"github.com/rrumana/game-of-life-reverse/internal/estimate"
	"github.com/rrumana/game-of-life-reverse/internal/grid"
	"github.com/rrumana/game-of-life-reverse/internal/gridio"
	"github.com/rrumana/game-of-life-reverse/internal/satbackend"
	"github.com/rrumana/game-of-life-reverse/internal/stats"
)

type solveArgs struct {
	inputPath    string
	configPath   string
	generations  int
	boundary     string
	maxSolutions int
	timeout      time.Duration
	backend      string
	effort       string
	metricsAddr  string
	skipEstimate bool
}

func newSolveCmd() *cobra.Command {
	a := &solveArgs{}

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Compute predecessor grids for a target Game of Life grid",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(cmd, a)
		},
	}

	cmd.Flags().StringVarP(&a.inputPath, "input", "i", "", "path to a target grid file ('-' for stdin)")
	cmd.Flags().StringVarP(&a.configPath, "config", "c", "", "path to a YAML config file (spec §6)")
	cmd.Flags().IntVarP(&a.generations, "generations", "g", 0, "number of generations to reverse (overrides config)")
	cmd.Flags().StringVarP(&a.boundary, "boundary", "b", "", "boundary discipline: dead, wrap, mirror (overrides config)")
	cmd.Flags().IntVarP(&a.maxSolutions, "max-solutions", "k", 0, "maximum predecessors to return (overrides config)")
	cmd.Flags().DurationVar(&a.timeout, "timeout", 0, "solver timeout (overrides config)")
	cmd.Flags().StringVar(&a.backend, "backend", "", "sat backend: sequential, portfolio (overrides config)")
	cmd.Flags().StringVar(&a.effort, "effort", "", "solver effort: fast, balanced, thorough (overrides config)")
	cmd.Flags().StringVar(&a.metricsAddr, "metrics-addr", "", "if set, serve Prometheus metrics on this address while solving")
	cmd.Flags().BoolVar(&a.skipEstimate, "no-estimate", false, "skip the advisory solvability hint")
	if err := cmd.MarkFlagRequired("input"); err != nil {
		log.Fatal(err)
	}

	return cmd
}

func runSolve(cmd *cobra.Command, a *solveArgs) error {
	cfg := config.Default()
	if a.configPath != "" {
		loaded, err := config.LoadFile(a.configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	applyOverrides(&cfg, a)

	target, err := readTarget(a.inputPath, cfg.Boundary)
	if err != nil {
		return err
	}

	if !a.skipEstimate {
		report := estimate.Assess(target)
		log.Infof("solvability hint: %s (density=%.2f, edge-density=%.2f)", report.Hint, report.Density, report.EdgeDensity)
	}

	if a.metricsAddr != "" {
		stats.Register()
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		srv := &http.Server{Addr: a.metricsAddr, Handler: mux}
		go func() {
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				log.Warnf("metrics server stopped: %v", err)
			}
		}()
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}

	result, err := engine.Reduce(ctx, target, cfg)
	if err != nil {
		log.WithError(err).Error("reduction failed")
		return err
	}

	if result.Incomplete {
		log.Warn("search timed out before the requested solution count was reached")
	}

	for _, sol := range result.Solutions {
		fmt.Printf("--- predecessor %s (live cells: %d, solve time: %dms) ---\n", sol.ID, sol.LiveCellCount, sol.SolveTimeMS)
		fmt.Println(gridio.Write(sol.Predecessor))
		if !sol.Valid {
			fmt.Printf("WARNING: predecessor %s failed re-simulation validation (%d violation(s))\n", sol.ID, len(sol.Violations))
		}
	}
	fmt.Printf("found %d predecessor(s)\n", len(result.Solutions))

	return nil
}

func readTarget(path string, boundary grid.Boundary) (*grid.Grid, error) {
	var data []byte
	var err error
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("reading target %s: %w", path, err)
	}
	return gridio.Parse(string(data), boundary)
}

func applyOverrides(cfg *config.Config, a *solveArgs) {
	if a.generations > 0 {
		cfg.Generations = a.generations
	}
	if a.maxSolutions > 0 {
		cfg.MaxSolutions = a.maxSolutions
	}
	if a.timeout > 0 {
		cfg.Timeout = a.timeout
	}
	if b, ok := parseBoundaryFlag(a.boundary); ok {
		cfg.Boundary = b
	}
	if k, ok := parseBackendFlag(a.backend); ok {
		cfg.Backend = k
	}
	if e, ok := parseEffortFlag(a.effort); ok {
		cfg.Effort = e
	}
}

func parseBoundaryFlag(s string) (grid.Boundary, bool) {
	switch s {
	case "dead":
		return grid.Dead, true
	case "wrap":
		return grid.Wrap, true
	case "mirror":
		return grid.Mirror, true
	default:
		return 0, false
	}
}

func parseBackendFlag(s string) (satbackend.Kind, bool) {
	switch s {
	case "sequential":
		return satbackend.Sequential, true
	case "portfolio":
		return satbackend.Portfolio, true
	default:
		return 0, false
	}
}

func parseEffortFlag(s string) (satbackend.Effort, bool) {
	switch s {
	case "fast":
		return satbackend.Fast, true
	case "balanced":
		return satbackend.Balanced, true
	case "thorough":
		return satbackend.Thorough, true
	default:
		return 0, false
	}
}
