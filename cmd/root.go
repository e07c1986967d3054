// Package cmd provides the root command and CLI setup for fnpack.
package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mouse-blink/fnpack/internal/adapter"
	"github.com/mouse-blink/fnpack/internal/config"
	"github.com/mouse-blink/fnpack/internal/controller"
	"github.com/mouse-blink/fnpack/internal/domain"
	m "github.com/mouse-blink/fnpack/internal/model"
)

// errStrict fails bundle --strict when discovery reported an error diagnostic.
var errStrict = errors.New("discovery reported errors")

var cfg *config.Config
var logger = zap.NewNop()
var workflow domain.Workflow

// newUI picks the output adapter for a command. Tests replace it.
var newUI = func(cmd *cobra.Command) controller.UI {
	return controller.NewCommandUI(cmd)
}

var configFlag string
var verboseFlag bool
var serverModuleFlag string
var excludeFlags []string
var parallelFlag int

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fnpack",
		Short: "Discover and bundle server function modules",
		Long: `fnpack walks a functions directory, classifies every entry point into the
isolate or the extended ("use node") runtime, and bundles each environment
with its dependency closure.

Shared dependencies are emitted once under _deps/. Authoring problems such as
a misnamed https.ts router or duplicate reserved files are reported as
diagnostics without stopping the build.`,
		SilenceUsage:      true,
		PersistentPreRunE: setup,
	}

	flags := cmd.PersistentFlags()
	flags.StringVarP(&configFlag, "config", "c", "", "config file (default is ./fnpack.yaml)")
	flags.BoolVarP(&verboseFlag, "verbose", "v", false, "enable debug logging")
	flags.StringVar(&serverModuleFlag, "server-module", domain.DefaultServerModule, "module the HTTP router is imported from")
	flags.StringArrayVarP(&excludeFlags, "exclude", "x", nil, "additional directory name to skip (can be repeated)")
	flags.IntVarP(&parallelFlag, "parallel", "p", 0, "number of files read concurrently (0 uses all CPUs)")

	return cmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// setup loads configuration and wires the workflow unless one is already
// installed.
func setup(_ *cobra.Command, _ []string) error {
	loaded, err := config.Load(configFlag)
	if err != nil {
		return err
	}

	cfg = loaded

	if verboseFlag {
		devLogger, err := zap.NewDevelopment()
		if err != nil {
			return fmt.Errorf("failed to create logger: %w", err)
		}

		logger = devLogger
	}

	if workflow == nil {
		workflow = newWorkflow(cfg, logger)
	}

	return nil
}

func newWorkflow(cfg *config.Config, logger *zap.Logger) domain.Workflow {
	fsAdapter := adapter.NewLocalSourceFSAdapter()

	return domain.NewWorkflow(
		fsAdapter,
		adapter.NewPackageStore(),
		adapter.NewFSNotifyWatcher(cfg.Watch.Debounce, logger),
		domain.NewDiscoverer(fsAdapter, logger),
		domain.NewOrchestrator(adapter.NewEsbuildBundler(logger), logger),
		logger,
	)
}

// discoverArgs merges the positional root, global flags and configuration.
func discoverArgs(cmd *cobra.Command, args []string) domain.DiscoverArgs {
	root := cfg.FunctionsDir
	if len(args) > 0 {
		root = args[0]
	}

	serverModule := cfg.ServerModule
	if cmd.Flags().Changed("server-module") {
		serverModule = serverModuleFlag
	}

	parallel := cfg.Parallel
	if cmd.Flags().Changed("parallel") {
		parallel = parallelFlag
	}

	return domain.DiscoverArgs{
		Root:         m.Path(root),
		Ignore:       cfg.IgnorePolicy().Merge(domain.IgnorePolicy{Dirs: excludeFlags}),
		ServerModule: serverModule,
		Parallel:     parallel,
	}
}
