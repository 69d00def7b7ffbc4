package wavefront

// work is the per-cell worker loop: one interior cell, all rounds. Each
// round it waits for the east, south and southeast neighbors to publish,
// publishes their sum into its own cell, and rendezvous at the barrier.
//
// The rendezvous is what makes the publish safe to reset: a worker reaches
// the barrier only after publishing, and a dependent publishes only after
// reading, so by the time the last arriver resets the table every read of
// the current round has completed.
func (r *Runner) work(idx int) {
	east := r.table.East(idx)
	south := r.table.South(idx)
	southeast := r.table.SouthEast(idx)

	for round := 0; round < r.cfg.Rounds; round++ {
		sum := r.table.Await(east) + r.table.Await(south) + r.table.Await(southeast)
		r.table.Publish(idx, sum)
		r.barrier.Wait()
	}
}
