package sequencer

import "errors"

var (
	// ErrInvalidSource marks a configured input path that is neither a
	// regular file nor a directory. It aborts the whole run: a bad source
	// path is a misconfiguration, not something to skip past.
	ErrInvalidSource = errors.New("invalid source path")

	// ErrEngine marks a failed invocation of the external transcoding engine.
	ErrEngine = errors.New("engine invocation failed")
)
