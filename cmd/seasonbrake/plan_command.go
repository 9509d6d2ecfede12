package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"seasonbrake/internal/logging"
	"seasonbrake/internal/sequencer"
)

func newPlanCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "plan",
		Short: "Scan all source folders and show the episode sequence without transcoding",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			client, err := ctx.engineClient()
			if err != nil {
				return err
			}
			logger, err := logging.New(logging.Options{Level: cfg.Logging.Level, Format: cfg.Logging.Format, OutputPaths: []string{"stderr"}})
			if err != nil {
				return fmt.Errorf("init logger: %w", err)
			}

			plan, err := sequencer.Build(cmd.Context(), sequencerOptions(cfg), client, logging.WithComponent(logger, "scan"))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(plan.Jobs) == 0 {
				fmt.Fprintln(out, "No titles found; nothing to transcode.")
			} else {
				fmt.Fprintln(out, planTable(plan.Jobs))
			}
			for _, skipped := range plan.Skipped {
				fmt.Fprintf(out, "Skipped (not a backup folder): %s\n", skipped)
			}
			fmt.Fprintf(out, "Next episode would be #%d\n", plan.NextEpisode)
			return nil
		},
	}
}
