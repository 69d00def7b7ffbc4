package wavefront

import (
	"testing"
	"time"

	"pgregory.net/rapid"
)

// sequentialResult evaluates the wavefront recurrence without concurrency:
// borders hold 1, every interior cell is the sum of its east, south and
// southeast neighbors, evaluated from the southeast corner outward.
func sequentialResult(rows, cols int) int {
	grid := make([][]int, rows)
	for r := range grid {
		grid[r] = make([]int, cols)
	}
	for r := rows - 1; r >= 0; r-- {
		for c := cols - 1; c >= 0; c-- {
			if r == rows-1 || c == cols-1 {
				grid[r][c] = BorderValue
			} else {
				grid[r][c] = grid[r][c+1] + grid[r+1][c] + grid[r+1][c+1]
			}
		}
	}
	return grid[0][0]
}

// TestRunnerTwoByTwo tests the degenerate single-worker grid: the one
// interior cell sums three borders
func TestRunnerTwoByTwo(t *testing.T) {
	runner, err := NewRunner(Config{Rows: 2, Cols: 2, Rounds: 5})
	if err != nil {
		t.Fatalf("NewRunner failed: %v", err)
	}

	summary := runner.Run()
	if len(summary.Results) != 5 {
		t.Fatalf("expected 5 results, got %d", len(summary.Results))
	}
	for round, got := range summary.Results {
		if got != 3 {
			t.Errorf("round %d: expected 3, got %d", round, got)
		}
	}
}

// TestRunnerThreeByThree tests the four-worker grid against the hand-computed
// value: the corner cell converges to 13
func TestRunnerThreeByThree(t *testing.T) {
	runner, err := NewRunner(Config{Rows: 3, Cols: 3, Rounds: 4})
	if err != nil {
		t.Fatalf("NewRunner failed: %v", err)
	}

	summary := runner.Run()
	for round, got := range summary.Results {
		if got != 13 {
			t.Errorf("round %d: expected 13, got %d", round, got)
		}
	}
}

// TestRunnerResultsIdenticalAcrossRounds tests that rounds are independent
// duplicates: the same borders converge to the same value every time
func TestRunnerResultsIdenticalAcrossRounds(t *testing.T) {
	cases := []struct {
		rows, cols, rounds int
	}{
		{2, 2, 10},
		{3, 5, 7},
		{6, 4, 3},
		{8, 8, 5},
	}

	for _, tc := range cases {
		runner, err := NewRunner(Config{Rows: tc.rows, Cols: tc.cols, Rounds: tc.rounds})
		if err != nil {
			t.Fatalf("%dx%d: NewRunner failed: %v", tc.rows, tc.cols, err)
		}

		want := sequentialResult(tc.rows, tc.cols)
		summary := runner.Run()
		if len(summary.Results) != tc.rounds {
			t.Fatalf("%dx%d: expected %d results, got %d", tc.rows, tc.cols, tc.rounds, len(summary.Results))
		}
		for round, got := range summary.Results {
			if got != want {
				t.Errorf("%dx%d round %d: expected %d, got %d", tc.rows, tc.cols, round, want, got)
			}
		}
	}
}

// TestRunnerOnRoundCallback tests that the callback sees every round in
// order, with the same values the summary records
func TestRunnerOnRoundCallback(t *testing.T) {
	var seen []RoundResult
	runner, err := NewRunner(Config{
		Rows:   3,
		Cols:   3,
		Rounds: 6,
		OnRound: func(res RoundResult) {
			seen = append(seen, res)
		},
	})
	if err != nil {
		t.Fatalf("NewRunner failed: %v", err)
	}

	summary := runner.Run()
	if len(seen) != 6 {
		t.Fatalf("expected 6 callbacks, got %d", len(seen))
	}
	for i, res := range seen {
		if res.Round != i {
			t.Errorf("callback %d: expected round %d, got %d", i, i, res.Round)
		}
		if res.Value != summary.Results[i] {
			t.Errorf("round %d: callback value %d != summary value %d", i, res.Value, summary.Results[i])
		}
	}
}

// TestRunnerManyRoundsSmallGrid stresses barrier reuse: a thousand
// consecutive cycles over the same participant set must neither deadlock nor
// double-release
func TestRunnerManyRoundsSmallGrid(t *testing.T) {
	const rounds = 1000

	runner, err := NewRunner(Config{Rows: 2, Cols: 2, Rounds: rounds})
	if err != nil {
		t.Fatalf("NewRunner failed: %v", err)
	}

	done := make(chan *Summary, 1)
	go func() {
		done <- runner.Run()
	}()

	select {
	case summary := <-done:
		if len(summary.Results) != rounds {
			t.Fatalf("expected %d results, got %d", rounds, len(summary.Results))
		}
		for round, got := range summary.Results {
			if got != 3 {
				t.Fatalf("round %d: expected 3, got %d", round, got)
			}
		}
	case <-time.After(60 * time.Second):
		t.Fatal("run deadlocked during barrier reuse stress")
	}
}

// Property: the concurrent wavefront always matches the sequential
// evaluation of the recurrence, for every round
func TestPropertyRunnerMatchesSequentialOracle(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		rows := rapid.IntRange(2, 8).Draw(rt, "rows")
		cols := rapid.IntRange(2, 8).Draw(rt, "cols")
		rounds := rapid.IntRange(1, 10).Draw(rt, "rounds")

		runner, err := NewRunner(Config{Rows: rows, Cols: cols, Rounds: rounds})
		if err != nil {
			rt.Fatalf("NewRunner failed: %v", err)
		}

		want := sequentialResult(rows, cols)
		summary := runner.Run()
		for round, got := range summary.Results {
			if got != want {
				rt.Fatalf("%dx%d round %d: expected %d, got %d", rows, cols, round, want, got)
			}
		}
	})
}
