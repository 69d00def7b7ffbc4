package wavefront

// RoundResult is the converged value of one completed round: the value of
// cell (0,0) captured while every worker was quiesced at the barrier.
type RoundResult struct {
	Round int
	Value int
}

// Summary reports a completed run
type Summary struct {
	// Rows, Cols and Rounds echo the configuration the run was built from.
	Rows   int
	Cols   int
	Rounds int

	// Results holds one converged value per round, in round order. For
	// fixed dimensions the borders are identical every round, so every
	// entry is the same value.
	Results []int
}
