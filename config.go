package wavefront

import (
	"fmt"

	"github.com/rs/zerolog"
)

// BorderValue is the value seeded into every border cell at the start of
// each round. It is fixed by the computation, not a tuning knob.
const BorderValue = 1

// ValidationError represents a configuration validation error with context
type ValidationError struct {
	Message string
	Details string
}

func (e ValidationError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Message, e.Details)
	}
	return e.Message
}

// Config describes one wavefront run
type Config struct {
	// Rows and Cols are the state table dimensions. The last row and last
	// column hold border cells; the interior (Rows-1) x (Cols-1) region is
	// computed, one worker per cell.
	Rows int
	Cols int

	// Rounds is the number of independent repetitions of the wave.
	Rounds int

	// OnRound, if set, is called with each round's result after every
	// worker of that round has quiesced at the barrier.
	OnRound func(RoundResult)

	// Logger receives progress logging. Nil disables logging.
	Logger *zerolog.Logger
}

// Validate checks that the configuration describes a runnable grid
func (c Config) Validate() error {
	if c.Rows < 2 || c.Cols < 2 {
		return ValidationError{
			Message: "config validation failed",
			Details: fmt.Sprintf("grid %dx%d has no interior cells; need at least 2x2", c.Rows, c.Cols),
		}
	}
	if c.Rounds < 1 {
		return ValidationError{
			Message: "config validation failed",
			Details: fmt.Sprintf("rounds must be at least 1, got %d", c.Rounds),
		}
	}
	return nil
}

// logger returns the configured logger, or a disabled one
func (c Config) logger() zerolog.Logger {
	if c.Logger != nil {
		return *c.Logger
	}
	return zerolog.Nop()
}
