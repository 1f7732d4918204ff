package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"sync"
	"time"

	"mad-maze/internal/app"
	"mad-maze/internal/core"
	"mad-maze/internal/maze"

	"go.uber.org/zap"
)

type job struct {
	rows, cols         int
	startRow, startCol int
	order              maze.HuntOrder
	seed               int64
}

type result struct {
	seed  int64
	start maze.Position
	stats maze.Stats
	grid  *maze.Grid
	err   error
}

func generate(j job) result {
	rng := core.NewRNG(j.seed)
	res := result{seed: j.seed}

	grid, err := maze.New(j.rows, j.cols)
	if err != nil {
		res.err = err
		return res
	}
	res.grid = grid
	res.start = maze.Position{Row: j.startRow, Col: j.startCol}
	if j.startRow < 0 || j.startCol < 0 {
		res.start = maze.RandomStart(j.rows, j.cols, rng)
	}

	gen, err := maze.NewGenerator(grid, res.start, maze.Options{Rand: rng, Order: j.order})
	if err != nil {
		res.err = err
		return res
	}
	if err := gen.Run(); err != nil {
		res.err = err
		return res
	}
	res.stats = gen.Stats()
	res.err = grid.Verify()
	return res
}

func main() {
	rows := flag.Int("rows", 10, "maze rows")
	cols := flag.Int("cols", 16, "maze columns")
	seed := flag.Int64("seed", time.Now().UnixNano(), "seed for the first maze")
	startRow := flag.Int("start-row", -1, "row of the first walk (-1 for random)")
	startCol := flag.Int("start-col", -1, "column of the first walk (-1 for random)")
	hunt := flag.String("hunt", "random", "hunt scan order: random, row or column")
	count := flag.Int("count", 1, "number of mazes to generate")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	quiet := flag.Bool("quiet", false, "do not print the maze")
	debug := flag.Bool("debug", false, "log every maze")
	flag.Parse()

	log := app.NewLogger(*debug)
	defer func() { _ = log.Sync() }()

	order, err := maze.ParseHuntOrder(*hunt)
	if err != nil {
		log.Fatal("invalid hunt order", zap.Error(err))
	}
	if *count < 1 {
		log.Fatal("count must be at least 1", zap.Int("count", *count))
	}
	base := job{rows: *rows, cols: *cols, startRow: *startRow, startCol: *startCol, order: order, seed: *seed}

	if *count == 1 {
		res := generate(base)
		if res.err != nil {
			log.Fatal("generation failed", zap.Int64("seed", res.seed), zap.Error(res.err))
		}
		if !*quiet {
			fmt.Print(res.grid.String())
		}
		log.Info("maze generated",
			zap.Int64("seed", res.seed),
			zap.Int("rows", *rows),
			zap.Int("cols", *cols),
			zap.Stringer("start", res.start),
			zap.Stringer("hunt", order),
			zap.Int("walks", res.stats.Walks),
			zap.Int("hunts", res.stats.Hunts),
		)
		return
	}

	if *workers < 1 {
		*workers = 1
	}
	log.Info("generating batch",
		zap.Int("count", *count),
		zap.Int("workers", *workers),
		zap.Int("rows", *rows),
		zap.Int("cols", *cols),
	)

	jobs := make(chan job)
	results := make(chan result)
	var wg sync.WaitGroup

	for i := 0; i < *workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				res := generate(j)
				res.grid = nil
				results <- res
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for i := 0; i < *count; i++ {
			j := base
			j.seed = base.seed + int64(i)
			jobs <- j
		}
		close(jobs)
	}()

	start := time.Now()
	var (
		failures   int
		totalWalks int
		minHunts   = -1
		maxHunts   int
	)
	for res := range results {
		if res.err != nil {
			failures++
			log.Error("generation failed", zap.Int64("seed", res.seed), zap.Error(res.err))
			continue
		}
		log.Debug("maze generated", zap.Int64("seed", res.seed), zap.Int("walks", res.stats.Walks))
		totalWalks += res.stats.Walks
		if minHunts < 0 || res.stats.Hunts < minHunts {
			minHunts = res.stats.Hunts
		}
		if res.stats.Hunts > maxHunts {
			maxHunts = res.stats.Hunts
		}
	}

	ok := *count - failures
	mean := 0.0
	if ok > 0 {
		mean = float64(totalWalks) / float64(ok)
	}
	log.Info("batch complete",
		zap.Int("ok", ok),
		zap.Int("failed", failures),
		zap.Float64("mean_walks", mean),
		zap.Int("min_hunts", minHunts),
		zap.Int("max_hunts", maxHunts),
		zap.Duration("elapsed", time.Since(start)),
	)
	if failures > 0 {
		_ = log.Sync()
		os.Exit(1)
	}
}
