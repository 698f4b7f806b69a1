package pipeline

import (
	"fmt"
	"runtime"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/mvaleed/pidigits/internal/spigot"
)

// Config scopes one pipeline run. All state (slot arena, worker pool) lives
// inside Run; nothing survives the call.
type Config struct {
	// Total is the number of digits of pi to produce, starting at position 1.
	Total int64

	// Workers bounds the pool. Zero or negative means runtime.NumCPU().
	Workers int

	// Logger receives per-task failure reports. Nil means no logging.
	Logger *zap.Logger

	// Extract overrides the digit extractor. Nil means spigot.Extract.
	// Tests substitute failing extractors here.
	Extract func(offset int64) (int64, error)
}

// Timings reports the wall-clock duration of the parallel compute phase.
type Timings struct {
	Parallel time.Duration
}

/*
  DISPATCH: Arena of Slots
  ------------------------------------------------------------------
  Offsets are 1, 10, 19, ... (step 9), one task each. Results land in a
  pre-sized slice indexed by (offset-1)/9, so ascending slice order IS
  ascending offset order and no sort pass is needed after the barrier.

  CONCURRENCY CONTRACT: each slot has exactly one writer (its own task
  goroutine, bounded by the errgroup limit) and is read only after
  g.Wait(). No slot is touched by two goroutines, so no lock is needed.
*/

// Run partitions cfg.Total digits into chunk tasks, computes them across the
// worker pool, and returns the slots in ascending offset order together with
// the parallel-phase duration.
//
// A failing task records its cause on its slot and the run continues; only
// construction-time validation aborts the whole run.
func Run(cfg Config) ([]Slot, Timings, error) {
	if cfg.Total < 1 {
		return nil, Timings{}, fmt.Errorf("digit count must be positive, got %d", cfg.Total)
	}

	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	extract := cfg.Extract
	if extract == nil {
		extract = func(offset int64) (int64, error) {
			return spigot.Extract(offset), nil
		}
	}

	// ceil((Total-1)/9), and always at least the chunk at offset 1.
	count := (cfg.Total + ChunkWidth - 2) / ChunkWidth
	if count < 1 {
		count = 1
	}

	// Validate every offset up front, before any work is dispatched.
	tasks := make([]Task, count)
	for i := range tasks {
		task, err := NewTask(int64(i)*ChunkWidth + 1)
		if err != nil {
			return nil, Timings{}, err
		}
		tasks[i] = task
	}

	slots := make([]Slot, count)
	start := time.Now()

	var g errgroup.Group
	g.SetLimit(workers)
	for i := range tasks {
		i := i
		g.Go(func() error {
			slot := &slots[i]
			slot.Task = tasks[i]

			defer func() {
				if r := recover(); r != nil {
					slot.Err = fmt.Errorf("digit computation at offset %d panicked: %v", tasks[i].Offset, r)
					logger.Error("task panicked",
						zap.Int64("offset", tasks[i].Offset),
						zap.Any("cause", r))
				}
			}()

			chunk, err := extract(tasks[i].Offset)
			if err != nil {
				slot.Err = err
				logger.Error("task failed",
					zap.Int64("offset", tasks[i].Offset),
					zap.Error(err))
				return nil
			}
			slot.Result = Result{Offset: tasks[i].Offset, Chunk: chunk}
			return nil
		})
	}

	// Completion barrier. Workers record failures on their slots and never
	// return errors, so Wait cannot fail.
	_ = g.Wait()

	return slots, Timings{Parallel: time.Since(start)}, nil
}
