// Command wavefront runs a parallel wavefront computation over a 2D grid
// and prints the converged result of every round.
//
// Usage:
//
//	wavefront rows cols rounds
//
// All three arguments are positive integers. One line per round is written
// to stdout in the form "Round <r>, result is <value>". Set WAVEFRONT_LOG
// to a zerolog level name (debug, info, ...) to enable progress logging on
// stderr.
package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/creastat/wavefront"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	os.Exit(run(os.Args, os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	if len(args) != 4 {
		fmt.Fprintf(stderr, "Usage: %s rows cols rounds\n", args[0])
		return exitUsage
	}

	rows, err := parsePositive("rows", args[1])
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitUsage
	}
	cols, err := parsePositive("cols", args[2])
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitUsage
	}
	rounds, err := parsePositive("rounds", args[3])
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitUsage
	}

	logger := newLogger(stderr)
	runner, err := wavefront.NewRunner(wavefront.Config{
		Rows:   rows,
		Cols:   cols,
		Rounds: rounds,
		Logger: &logger,
		OnRound: func(res wavefront.RoundResult) {
			fmt.Fprintf(stdout, "Round %d, result is %d\n", res.Round, res.Value)
		},
	})
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitError
	}

	runner.Run()
	return exitOK
}

// parsePositive parses a positive integer argument.
func parsePositive(name, s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("%s must be a positive integer, got %q", name, s)
	}
	return n, nil
}

// newLogger builds a console logger on stderr. The level comes from the
// WAVEFRONT_LOG environment variable and defaults to disabled, so the round
// results stay the only output of a normal run.
func newLogger(stderr io.Writer) zerolog.Logger {
	level := zerolog.Disabled
	if s := os.Getenv("WAVEFRONT_LOG"); s != "" {
		if parsed, err := zerolog.ParseLevel(s); err == nil {
			level = parsed
		}
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: stderr}).
		Level(level).
		With().Timestamp().Logger()
}
