package sequencer

import (
	"context"
	"fmt"
	"io"
	"log/slog"
)

// Transcoder is the engine surface the runner drives for each job.
type Transcoder interface {
	TranscodeCommand(folder, title, output string) []string
	CommandLine(args []string) string
	Transcode(ctx context.Context, folder, title, output string, onLine func(string)) error
}

// Result summarizes a completed run.
type Result struct {
	Transcoded  int
	LastOutput  string
	NextEpisode int
	Executed    bool
}

// Runner executes a plan one job at a time, in plan order. When execute is
// false it reports the constructed command lines without invoking the engine.
type Runner struct {
	transcoder Transcoder
	logger     *slog.Logger
	execute    bool
}

// NewRunner constructs a Runner.
func NewRunner(transcoder Transcoder, logger *slog.Logger, execute bool) *Runner {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Runner{transcoder: transcoder, logger: logger, execute: execute}
}

// Run processes every job in the plan sequentially. The first engine failure
// aborts the run; jobs are never retried or rolled back.
func (r *Runner) Run(ctx context.Context, plan *Plan) (*Result, error) {
	result := &Result{NextEpisode: plan.NextEpisode, Executed: r.execute}

	for _, job := range plan.Jobs {
		args := r.transcoder.TranscodeCommand(job.Folder, job.Title, job.OutputPath)
		r.logger.Info("transcode command",
			"episode", job.Episode,
			"title", job.Title,
			"command", r.transcoder.CommandLine(args),
		)

		if r.execute {
			err := r.transcoder.Transcode(ctx, job.Folder, job.Title, job.OutputPath, func(line string) {
				r.logger.Debug("handbrake output", "line", line)
			})
			if err != nil {
				return nil, fmt.Errorf("%w: episode %d: %v", ErrEngine, job.Episode, err)
			}
			result.Transcoded++
			r.logger.Info("transcode finished", "episode", job.Episode, "output", job.OutputPath)
		}

		result.LastOutput = job.OutputPath
	}

	return result, nil
}
