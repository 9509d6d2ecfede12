package sequencer

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

// Scanner yields the title identifiers of one backup folder, in the order the
// engine reports them.
type Scanner interface {
	ScanTitles(ctx context.Context, folder string) ([]string, error)
}

// Job describes one transcode of a single title into a numbered episode file.
type Job struct {
	Folder     string
	Title      string
	Episode    int
	OutputName string
	OutputPath string
}

// Plan is the full set of jobs for a run, in execution order.
type Plan struct {
	Jobs []Job
	// Skipped lists configured inputs that were regular files instead of
	// backup folders. They never consume episode numbers.
	Skipped []string
	// NextEpisode is the first episode number not assigned by this plan.
	NextEpisode int
}

// Options carries the sequencing configuration for one run.
type Options struct {
	Inputs       []string
	OutputDir    string
	Prefix       string
	StartEpisode int
	Extension    string
}

// Build scans every configured source folder and assigns episode numbers.
// Folders are visited in configuration order and titles in scan order; the
// counter never resets between folders. A source path that is neither a file
// nor a directory aborts the build with ErrInvalidSource, leaving later
// folders unscanned.
func Build(ctx context.Context, opts Options, scanner Scanner, logger *slog.Logger) (*Plan, error) {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	plan := &Plan{NextEpisode: opts.StartEpisode}
	episode := opts.StartEpisode

	for _, input := range opts.Inputs {
		info, err := os.Stat(input)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrInvalidSource, input, err)
		}

		switch {
		case info.IsDir():
			logger.Info("scanning source folder", "path", input)
			titles, err := scanner.ScanTitles(ctx, input)
			if err != nil {
				return nil, fmt.Errorf("%w: %v", ErrEngine, err)
			}
			logger.Info("scan finished", "path", input, "titles", titles)

			for _, title := range titles {
				name := EpisodeFileName(opts.Prefix, episode, opts.Extension)
				plan.Jobs = append(plan.Jobs, Job{
					Folder:     input,
					Title:      title,
					Episode:    episode,
					OutputName: name,
					OutputPath: filepath.Join(opts.OutputDir, name),
				})
				episode++
			}

		case info.Mode().IsRegular():
			// Single video files are not backup folders; skip without
			// consuming an episode number.
			logger.Warn("skipping source: path is a file, not a backup folder", "path", input)
			plan.Skipped = append(plan.Skipped, input)

		default:
			return nil, fmt.Errorf("%w: %s is neither a file nor a directory", ErrInvalidSource, input)
		}
	}

	plan.NextEpisode = episode
	return plan, nil
}
