package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"seasonbrake/internal/config"
)

func newScanCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "scan <folder>",
		Short: "List the titles HandBrake finds in one backup folder",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := ctx.engineClient()
			if err != nil {
				return err
			}
			folder, err := config.ExpandPath(args[0])
			if err != nil {
				return err
			}

			titles, err := client.ScanTitles(cmd.Context(), folder)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(titles) == 0 {
				fmt.Fprintf(out, "No titles above the minimum duration in %s\n", folder)
				return nil
			}
			fmt.Fprintln(out, titlesTable(titles))
			fmt.Fprintf(out, "%d titles found\n", len(titles))
			return nil
		},
	}
}
