package cmd

import (
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/fnpack/internal/controller"
	"github.com/mouse-blink/fnpack/internal/domain"
	m "github.com/mouse-blink/fnpack/internal/model"
)

var watchSourceMapsFlag bool

// watchCmd represents the watch command.
var watchCmd = newWatchCmd()

func newWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch [dir]",
		Short: "Rebuild whenever a source file changes",
		Long:  "Bundle the functions directory, then rebuild on every change until interrupted.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			buildArgs := domain.BuildArgs{
				DiscoverArgs: discoverArgs(cmd, args),
				SourceMaps:   cfg.SourceMaps,
			}
			if cmd.Flags().Changed("sourcemaps") {
				buildArgs.SourceMaps = watchSourceMapsFlag
			}

			ui := controller.NewSimpleUI(cmd)

			return workflow.Watch(ctx, domain.WatchArgs{
				BuildArgs: buildArgs,
				OnBuild: func(result m.BuildResult, err error) {
					_ = ui.DisplayBuild(result, err)
				},
			})
		},
	}
	cmd.Flags().BoolVar(&watchSourceMapsFlag, "sourcemaps", false, "emit external source maps")

	return cmd
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
