package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"seasonbrake/internal/runlock"
	"seasonbrake/internal/sequencer"
)

// Exit codes: 0 success, 1 unclassified failure, 2 configuration problem
// (including a held run lock), 3 invalid source path, 4 engine invocation
// failure.
const (
	exitOK            = 0
	exitFailure       = 1
	exitConfiguration = 2
	exitInvalidSource = 3
	exitEngine        = 4
)

func main() {
	cmd := newRootCommand()
	if err := cmd.Execute(); err != nil {
		if !errors.Is(err, context.Canceled) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(exitCode(err))
	}
}

func exitCode(err error) int {
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, sequencer.ErrInvalidSource):
		return exitInvalidSource
	case errors.Is(err, sequencer.ErrEngine):
		return exitEngine
	case errors.Is(err, errConfiguration), errors.Is(err, runlock.ErrHeld):
		return exitConfiguration
	default:
		return exitFailure
	}
}
