package core

import "sync"

// Barrier is a reusable rendezvous point for a fixed set of participants.
// Each cycle, every participant blocks in Wait until all of them have
// arrived; then all are released together and the barrier is ready for the
// next cycle with the same participant set.
//
// An optional action runs exactly once per cycle, executed by the last
// participant to arrive while the barrier lock is held. It is therefore
// mutually exclusive with arrivals for the following cycle and is guaranteed
// to have completed before any participant of the current cycle is released.
type Barrier struct {
	mu   sync.Mutex
	cond *sync.Cond

	capacity   int
	arrived    int
	generation uint64
	action     func()
}

// NewBarrier creates a barrier for the given number of participants.
// action may be nil. Returns ErrBarrierCapacity if capacity is not positive.
func NewBarrier(capacity int, action func()) (*Barrier, error) {
	if capacity <= 0 {
		return nil, ErrBarrierCapacity
	}
	b := &Barrier{
		capacity: capacity,
		action:   action,
	}
	b.cond = sync.NewCond(&b.mu)
	return b, nil
}

// Wait blocks until capacity participants have called Wait for the current
// cycle, then releases them all. It reports whether the caller was the last
// to arrive (the one that ran the action).
//
// The wait predicate is the generation counter, not the arrival count: a
// released participant may re-enter Wait for the next cycle before a slow
// participant of the previous cycle has woken, and the count alone cannot
// tell the two cycles apart.
func (b *Barrier) Wait() bool {
	b.mu.Lock()
	gen := b.generation

	b.arrived++
	if b.arrived == b.capacity {
		if b.action != nil {
			b.action()
		}
		b.arrived = 0
		b.generation++
		b.mu.Unlock()
		b.cond.Broadcast()
		return true
	}

	for b.generation == gen {
		b.cond.Wait()
	}
	b.mu.Unlock()
	return false
}

// Capacity returns the number of participants per cycle.
func (b *Barrier) Capacity() int {
	return b.capacity
}

// Generation returns the number of completed cycles.
func (b *Barrier) Generation() uint64 {
	b.mu.Lock()
	gen := b.generation
	b.mu.Unlock()
	return gen
}
