package main

import (
	"context"
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"seasonbrake/internal/logging"
	"seasonbrake/internal/notifications"
	"seasonbrake/internal/runlock"
	"seasonbrake/internal/sequencer"
)

func newRunCommand(ctx *commandContext) *cobra.Command {
	var executeFlag bool

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Scan all source folders and process the episode sequence",
		Long: `Scans every configured source folder for titles, numbers them into one
continuous season, and reports the transcode command for each job. Commands
are only executed when handbrake.execute is enabled in the configuration or
--execute is passed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			execute := cfg.HandBrake.Execute || executeFlag

			runID := uuid.NewString()
			logFile := fmt.Sprintf("seasonbrake-%s.log", time.Now().UTC().Format("20060102T150405"))
			logger, err := logging.NewFromConfig(cfg, logFile)
			if err != nil {
				return fmt.Errorf("init logger: %w", err)
			}
			logger = logger.With("run_id", runID)

			lock, err := runlock.Acquire(cfg.Paths.OutputDir)
			if err != nil {
				return err
			}
			defer func() {
				if err := lock.Release(); err != nil {
					logger.Warn("failed to release run lock", "error", err)
				}
			}()

			client, err := ctx.engineClient()
			if err != nil {
				return err
			}
			notify := notifications.NewService(cfg)

			signalCtx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			logger.Info("run started",
				"sources", len(cfg.Season.Inputs),
				"output_dir", cfg.Paths.OutputDir,
				"start_episode", cfg.Season.StartEpisode,
				"execute", execute,
			)

			plan, err := sequencer.Build(signalCtx, sequencerOptions(cfg), client, logging.WithComponent(logger, "scan"))
			if err != nil {
				notifyError(logger, notify, err, "scan")
				return err
			}

			runner := sequencer.NewRunner(client, logging.WithComponent(logger, "transcode"), execute)
			result, err := runner.Run(signalCtx, plan)
			if err != nil {
				notifyError(logger, notify, err, "transcode")
				return err
			}

			out := cmd.OutOrStdout()
			if !execute {
				fmt.Fprintf(out, "Dry run: %d transcode commands constructed but not executed (enable with --execute or handbrake.execute).\n", len(plan.Jobs))
			} else {
				fmt.Fprintf(out, "Transcoded %d titles.\n", result.Transcoded)
			}
			for _, skipped := range plan.Skipped {
				fmt.Fprintf(out, "Skipped (not a backup folder): %s\n", skipped)
			}
			if result.LastOutput != "" {
				fmt.Fprintf(out, "Last output: %s\n", result.LastOutput)
			}
			fmt.Fprintf(out, "Next episode would be #%d\n", result.NextEpisode)

			logger.Info("run finished",
				"jobs", len(plan.Jobs),
				"transcoded", result.Transcoded,
				"last_output", result.LastOutput,
				"next_episode", result.NextEpisode,
			)

			// Best effort only; a run is not failed by a missed notification.
			if err := notify.NotifyRunCompleted(signalCtx, result.Transcoded, result.LastOutput, result.NextEpisode); err != nil {
				logger.Warn("completion notification failed", "error", err)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&executeFlag, "execute", false, "Run the transcode commands instead of only constructing them")
	return cmd
}

func notifyError(logger *slog.Logger, notify notifications.Service, cause error, label string) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := notify.NotifyError(ctx, cause, label); err != nil {
		logger.Warn("error notification failed", "error", err)
	}
}
