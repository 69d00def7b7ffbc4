// Package wavefront runs a dependency-driven wavefront computation over a 2D
// grid. Every interior cell owns a worker goroutine that waits for the
// cell's east, south and southeast neighbors to publish, publishes the sum
// into its own cell, and rendezvous with all other workers at a reusable
// barrier. Border cells along the last row and last column are seeded rather
// than computed; re-seeding them at the end of a barrier cycle is what
// launches the next wave.
package wavefront

import (
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/creastat/wavefront/core"
)

// Runner wires one worker per interior cell to a shared state table and a
// reusable barrier, and drives the configured number of rounds.
type Runner struct {
	cfg     Config
	logger  zerolog.Logger
	table   *core.Table
	barrier *core.Barrier

	// result is written only by the barrier's last-arriver action and read
	// by Run between cycles, while every worker is still inside the
	// barrier. The barrier itself is the ordering mechanism; no extra lock
	// guards it.
	result int
}

// NewRunner validates the configuration and assembles a run: the state
// table, and a barrier sized for every interior worker plus one. The extra
// participant is Run itself, which rendezvous each round so that it observes
// the captured result only after all workers have quiesced.
//
// The barrier's last-arriver action captures cell (0,0) as the round result,
// resets the table, and reseeds the borders, priming the next wave before
// any participant is released.
func NewRunner(cfg Config) (*Runner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	table, err := core.NewTable(cfg.Rows, cfg.Cols)
	if err != nil {
		return nil, fmt.Errorf("creating state table: %w", err)
	}

	r := &Runner{
		cfg:    cfg,
		logger: cfg.logger(),
		table:  table,
	}

	interior := (cfg.Rows - 1) * (cfg.Cols - 1)
	barrier, err := core.NewBarrier(interior+1, r.endOfRound)
	if err != nil {
		return nil, fmt.Errorf("creating barrier: %w", err)
	}
	r.barrier = barrier

	return r, nil
}

// endOfRound is the barrier's last-arriver action. It runs under the barrier
// lock, exactly once per cycle, before any participant is released.
func (r *Runner) endOfRound() {
	r.result = r.table.Value(0)
	r.table.Reset()
	r.table.SeedBorders(BorderValue)
}

// Run executes all configured rounds and returns the per-round results. It
// blocks until every worker has finished. The core has no timeouts: a
// dependency cell that is never published would deadlock the run rather than
// fail it, which cannot happen for a table and worker set built by NewRunner.
//
// Run must be called at most once per Runner.
func (r *Runner) Run() *Summary {
	rows, cols, rounds := r.cfg.Rows, r.cfg.Cols, r.cfg.Rounds
	r.logger.Info().
		Int("rows", rows).
		Int("cols", cols).
		Int("rounds", rounds).
		Msg("starting wavefront run")

	// Round 0 has no completed barrier cycle behind it to seed the
	// borders, so they are seeded here. Workers that start early simply
	// block in Await until the cells they need are published.
	r.table.SeedBorders(BorderValue)

	var wg sync.WaitGroup
	workers := 0
	for row := 0; row < rows-1; row++ {
		for col := 0; col < cols-1; col++ {
			idx := r.table.Index(row, col)
			wg.Add(1)
			go func() {
				defer wg.Done()
				r.work(idx)
			}()
			workers++
		}
	}
	r.logger.Debug().Int("workers", workers).Msg("interior workers launched")

	summary := &Summary{
		Rows:    rows,
		Cols:    cols,
		Rounds:  rounds,
		Results: make([]int, 0, rounds),
	}
	for round := 0; round < rounds; round++ {
		r.barrier.Wait()

		res := RoundResult{Round: round, Value: r.result}
		summary.Results = append(summary.Results, res.Value)
		r.logger.Debug().
			Int("round", res.Round).
			Int("result", res.Value).
			Msg("round complete")
		if r.cfg.OnRound != nil {
			r.cfg.OnRound(res)
		}
	}

	wg.Wait()
	r.logger.Info().Msg("wavefront run complete")
	return summary
}
