package core

import "errors"

// Sentinel errors for the synchronization core.
var (
	// ErrGridTooSmall indicates the requested grid has no interior region.
	ErrGridTooSmall = errors.New("core: grid must have at least 2 rows and 2 columns")

	// ErrBarrierCapacity indicates a non-positive participant count.
	ErrBarrierCapacity = errors.New("core: barrier capacity must be positive")
)
