package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"runtime"
	"sort"
	"time"

	"github.com/charmbracelet/log"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"termlife/internal/core"
	"termlife/internal/sims/life"
)

type sweepConfig struct {
	runs    int
	steps   int
	width   int
	height  int
	seed    int64
	density float64
	workers int
}

type runResult struct {
	seed           int64
	initialDensity float64
	finalPop       int
	peakPop        int
	extinctAt      int // -1 when the run never died out
}

func main() {
	cfg := sweepConfig{}
	flag.IntVar(&cfg.runs, "runs", 32, "number of independent simulations")
	flag.IntVar(&cfg.steps, "steps", 500, "generations to simulate per run")
	flag.IntVar(&cfg.width, "w", 80, "grid width")
	flag.IntVar(&cfg.height, "h", 40, "grid height")
	flag.Int64Var(&cfg.seed, "seed", 1, "seed of the first run; run i uses seed+i")
	flag.Float64Var(&cfg.density, "density", life.DefaultDensity, "initial alive probability")
	flag.IntVar(&cfg.workers, "workers", runtime.NumCPU(), "number of worker goroutines")
	flag.Parse()

	logger := log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: true, Prefix: "sweep"})

	fmt.Printf("Sweeping %d runs (%d workers, %d steps, %dx%d, density %.2f)\n",
		cfg.runs, cfg.workers, cfg.steps, cfg.width, cfg.height, cfg.density)

	start := time.Now()
	results, err := sweep(context.Background(), cfg)
	if err != nil {
		logger.Fatal("sweep failed", "err", err)
	}
	report(os.Stdout, results, time.Since(start))
}

// sweep runs cfg.runs simulations, at most cfg.workers at a time. Results
// come back in seed order.
func sweep(ctx context.Context, cfg sweepConfig) ([]runResult, error) {
	if cfg.runs < 0 || cfg.steps < 0 || cfg.width < 0 || cfg.height < 0 {
		return nil, errors.Errorf("negative sweep parameter in %+v", cfg)
	}
	if cfg.density < 0 || cfg.density > 1 {
		return nil, errors.Errorf("density %v outside [0,1]", cfg.density)
	}
	workers := cfg.workers
	if workers <= 0 {
		workers = 1
	}

	results := make([]runResult, cfg.runs)
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	for i := range cfg.runs {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return errors.Wrapf(err, "run %d", i)
			}
			results[i] = runOne(cfg.seed+int64(i), cfg)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func runOne(seed int64, cfg sweepConfig) runResult {
	game := life.Seed(core.NewGrid(cfg.height, cfg.width), core.NewRNG(seed), cfg.density)
	res := runResult{
		seed:           seed,
		initialDensity: life.Density(game.Grid()),
		extinctAt:      -1,
	}
	res.peakPop = life.Population(game.Grid())
	if res.peakPop == 0 {
		res.extinctAt = 0
	}
	for step := 1; step <= cfg.steps && res.extinctAt < 0; step++ {
		pop := life.Population(game.Step())
		if pop > res.peakPop {
			res.peakPop = pop
		}
		if pop == 0 {
			res.extinctAt = step
		}
	}
	res.finalPop = life.Population(game.Grid())
	return res
}

func report(w io.Writer, results []runResult, elapsed time.Duration) {
	if len(results) == 0 {
		fmt.Fprintln(w, "No runs.")
		return
	}
	extinct := 0
	var totalFinal int
	for _, r := range results {
		if r.extinctAt >= 0 {
			extinct++
		}
		totalFinal += r.finalPop
	}

	top := append([]runResult(nil), results...)
	sort.Slice(top, func(i, j int) bool { return top[i].finalPop > top[j].finalPop })

	fmt.Fprintf(w, "\nTop 5 runs (elapsed %s):\n", elapsed.Round(time.Millisecond))
	for i := 0; i < len(top) && i < 5; i++ {
		r := top[i]
		fmt.Fprintf(w, "%2d) seed=%d initial=%.3f final=%d peak=%d extinct=%d\n",
			i+1, r.seed, r.initialDensity, r.finalPop, r.peakPop, r.extinctAt)
	}
	fmt.Fprintf(w, "\nRuns: %d  extinct: %d  mean final population: %.1f\n",
		len(results), extinct, float64(totalFinal)/float64(len(results)))
}
