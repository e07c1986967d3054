package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/fnpack/internal/controller"
)

const listLongDescription = `List the entry points found under the functions directory (default from
the config's functions_dir), with their kind and runtime environment.

Diagnostics are written to stderr. Use --format yaml for a machine-readable
manifest.`

var listFormatFlag string

// listCmd represents the list command.
var listCmd = newListCmd()

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list [dir]",
		Short: "List entry points and their environments",
		Long:  listLongDescription,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			da := discoverArgs(cmd, args)

			discovery, err := workflow.Discover(cmd.Context(), da)
			if err != nil {
				return err
			}

			switch listFormatFlag {
			case "yaml":
				return controller.WriteManifest(cmd.OutOrStdout(), da.Root, discovery)
			case "table":
				ui := newUI(cmd)
				err := ui.DisplayDiscovery(discovery)
				ui.Wait()

				return err
			default:
				return fmt.Errorf("unknown format %q (want table or yaml)", listFormatFlag)
			}
		},
	}
	cmd.Flags().StringVarP(&listFormatFlag, "format", "f", "table", "output format: table or yaml")

	return cmd
}

func init() {
	rootCmd.AddCommand(listCmd)
}
