// Package core holds the synchronization primitives of the wavefront
// computation: the shared state table of condition-variable cells and the
// reusable cyclic barrier that the driver and the per-cell workers
// rendezvous at between rounds.
//
// The table is a rectangular grid stored row-major. Cells in the last row
// and the last column are border cells: they are never computed, only seeded.
// For a 6x6 table the borders (B) sit along the east and south edges, with
// cell 0 in the north-west corner:
//
//	0 * * * * B
//	* * * * * B
//	* * * * * B
//	* * * * * B
//	* * * * * B
//	B B B B B B
package core

import "sync"

// cell is one synchronized slot of the table. Its mutex guards only its own
// value and condition variable, so unrelated cells never contend.
type cell struct {
	mu    sync.Mutex
	cond  *sync.Cond
	value int
}

// Table is a fixed-size array of synchronized cells. Within one round a
// cell's value moves from unset (zero) to exactly one published value; all
// published values are positive, so zero doubles as the unset sentinel.
//
// A cell is written by exactly one owner, a worker for interior cells or the
// border seeder for border cells, and read by the owner's dependents through
// Await.
type Table struct {
	rows, cols int
	cells      []cell
}

// NewTable allocates a rows x cols table with every cell unset and its
// condition variable initialized. Returns ErrGridTooSmall if either
// dimension is below 2: such a grid has no interior region to compute.
func NewTable(rows, cols int) (*Table, error) {
	if rows < 2 || cols < 2 {
		return nil, ErrGridTooSmall
	}
	t := &Table{
		rows:  rows,
		cols:  cols,
		cells: make([]cell, rows*cols),
	}
	for i := range t.cells {
		t.cells[i].cond = sync.NewCond(&t.cells[i].mu)
	}
	return t, nil
}

// Rows returns the number of rows in the table.
func (t *Table) Rows() int {
	return t.rows
}

// Cols returns the number of columns in the table.
func (t *Table) Cols() int {
	return t.cols
}

// Len returns the total number of cells.
func (t *Table) Len() int {
	return len(t.cells)
}

// Publish sets the value of cell idx and wakes every goroutine blocked in
// Await on that cell. It broadcasts rather than signalling a single waiter:
// any number of dependents may be asleep on the same cell.
func (t *Table) Publish(idx, value int) {
	c := &t.cells[idx]
	c.mu.Lock()
	c.value = value
	c.cond.Broadcast()
	c.mu.Unlock()
}

// Await blocks until cell idx holds a published value and returns it. The
// predicate is re-checked in a loop after every wakeup, so a wakeup that
// fires before the waiter sleeps, or a spurious one, cannot produce a stale
// read. An out-of-range index panics.
func (t *Table) Await(idx int) int {
	c := &t.cells[idx]
	c.mu.Lock()
	for c.value == 0 {
		c.cond.Wait()
	}
	v := c.value
	c.mu.Unlock()
	return v
}

// Value returns the current value of cell idx without waiting, zero if the
// cell is unset.
func (t *Table) Value(idx int) int {
	c := &t.cells[idx]
	c.mu.Lock()
	v := c.value
	c.mu.Unlock()
	return v
}

// Reset clears every cell back to the unset state. Each cell's lock is taken
// even though the caller is expected to hold the whole system quiesced at a
// barrier; the locking keeps the table correct under looser callers.
func (t *Table) Reset() {
	for i := range t.cells {
		c := &t.cells[i]
		c.mu.Lock()
		c.value = 0
		c.mu.Unlock()
	}
}

// SeedBorders publishes value to every border cell, waking any workers
// already waiting on them. This is what triggers a wave: the first interior
// cells to run are those whose three neighbors are all borders.
func (t *Table) SeedBorders(value int) {
	for r := 0; r < t.rows; r++ {
		t.Publish(t.Index(r, t.cols-1), value)
	}
	for c := 0; c < t.cols-1; c++ {
		t.Publish(t.Index(t.rows-1, c), value)
	}
}
