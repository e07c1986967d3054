package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/fnpack/internal/adapter"
	"github.com/mouse-blink/fnpack/internal/domain"
	m "github.com/mouse-blink/fnpack/internal/model"
)

const bundleLongDescription = `Bundle both environments of the functions directory. Isolate entry points
are bundled for the browser platform, "use node" entry points for node.

With --out the modules are written to a source package zip holding
modules/<path>, optional .map files and metadata.json. With --strict an
error diagnostic (such as an unreadable file) fails the command.`

var bundleOutFlag string
var bundleSourceMapsFlag bool
var bundleStrictFlag bool

// bundleCmd represents the bundle command.
var bundleCmd = newBundleCmd()

func newBundleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bundle [dir]",
		Short: "Bundle entry points per environment",
		Long:  bundleLongDescription,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			buildArgs := domain.BuildArgs{
				DiscoverArgs: discoverArgs(cmd, args),
				SourceMaps:   cfg.SourceMaps,
			}
			if cmd.Flags().Changed("sourcemaps") {
				buildArgs.SourceMaps = bundleSourceMapsFlag
			}

			output := cfg.Output
			if cmd.Flags().Changed("out") {
				output = bundleOutFlag
			}

			var (
				result m.BuildResult
				info   adapter.PackageInfo
				err    error
			)

			if output != "" {
				result, info, err = workflow.Package(cmd.Context(), domain.PackageArgs{BuildArgs: buildArgs, Output: m.Path(output)})
			} else {
				result, err = workflow.Build(cmd.Context(), buildArgs)
			}

			ui := newUI(cmd)
			if err := ui.DisplayBuild(result, err); err != nil {
				// The TUI owns the terminal until it exits.
				ui.Wait()

				return err
			}

			if output != "" {
				ui.DisplayPackage(m.Path(output), info)
			}

			ui.Wait()

			if bundleStrictFlag && m.HasErrors(result.Diagnostics) {
				return errStrict
			}

			return nil
		},
	}
	cmd.Flags().StringVarP(&bundleOutFlag, "out", "o", "", "write a source package zip to this path")
	cmd.Flags().BoolVar(&bundleSourceMapsFlag, "sourcemaps", false, "emit external source maps")
	cmd.Flags().BoolVar(&bundleStrictFlag, "strict", false, "fail when discovery reports an error diagnostic")

	return cmd
}

func init() {
	rootCmd.AddCommand(bundleCmd)
}
