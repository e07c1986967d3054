package cmd

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/fnpack/internal/controller"
	controllermocks "github.com/mouse-blink/fnpack/internal/controller/mocks"
	"github.com/mouse-blink/fnpack/internal/domain"
	domainmocks "github.com/mouse-blink/fnpack/internal/domain/mocks"
	m "github.com/mouse-blink/fnpack/internal/model"
)

// installMocks swaps the package-level workflow and UI factory for mocks.
func installMocks(t *testing.T) (*domainmocks.MockWorkflow, *controllermocks.MockUI) {
	t.Helper()

	mockWorkflow := domainmocks.NewMockWorkflow(t)
	mockUI := controllermocks.NewMockUI(t)

	originalWorkflow, originalUI := workflow, newUI
	workflow = mockWorkflow
	newUI = func(*cobra.Command) controller.UI { return mockUI }

	t.Cleanup(func() {
		workflow = originalWorkflow
		newUI = originalUI
	})

	return mockWorkflow, mockUI
}

// newTestRoot builds a root command with every subcommand attached.
func newTestRoot() (*cobra.Command, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer

	cmd := newRootCmd()
	cmd.AddCommand(newListCmd(), newBundleCmd(), newWatchCmd())
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)

	return cmd, &out, &errOut
}

func TestNewRootCmd(t *testing.T) {
	cmd := newRootCmd()

	assert.Equal(t, "fnpack", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.NotEmpty(t, cmd.Long)

	for _, name := range []string{"config", "verbose", "server-module", "exclude", "parallel"} {
		assert.NotNilf(t, cmd.PersistentFlags().Lookup(name), "missing --%s flag", name)
	}
}

func TestInit_RegistersSubcommands(t *testing.T) {
	names := make([]string, 0, len(rootCmd.Commands()))
	for _, c := range rootCmd.Commands() {
		names = append(names, c.Name())
	}

	assert.Subset(t, names, []string{"list", "bundle", "watch"})
}

func TestSetup_WiresWorkflow(t *testing.T) {
	originalWorkflow, originalCfg := workflow, cfg
	workflow = nil

	t.Cleanup(func() {
		workflow = originalWorkflow
		cfg = originalCfg
	})

	require.NoError(t, setup(newRootCmd(), nil))
	assert.NotNil(t, workflow)
	require.NotNil(t, cfg)
	assert.Equal(t, domain.DefaultServerModule, cfg.ServerModule)
}

func TestRootCmd_ConfigFile(t *testing.T) {
	mockWorkflow, mockUI := installMocks(t)

	configFile := filepath.Join(t.TempDir(), "fnpack.yaml")
	require.NoError(t, os.WriteFile(configFile, []byte("functions_dir: backend\nserver_module: \"@acme/server\"\nparallel: 3\nignore:\n  dirs: [generated]\n"), 0o644))

	mockWorkflow.EXPECT().
		Discover(mock.Anything, mock.MatchedBy(func(args domain.DiscoverArgs) bool {
			return args.Root == m.Path("backend") &&
				args.ServerModule == "@acme/server" &&
				args.Parallel == 3 &&
				args.Ignore.SkipDir("generated") &&
				args.Ignore.SkipDir("node_modules")
		})).
		Return(m.Discovery{}, nil)
	mockUI.EXPECT().DisplayDiscovery(m.Discovery{}).Return(nil)
	mockUI.EXPECT().Wait().Return()

	cmd, _, _ := newTestRoot()
	cmd.SetArgs([]string{"--config", configFile, "list"})
	require.NoError(t, cmd.Execute())
}

func TestRootCmd_FlagsOverrideConfig(t *testing.T) {
	mockWorkflow, mockUI := installMocks(t)

	mockWorkflow.EXPECT().
		Discover(mock.Anything, mock.MatchedBy(func(args domain.DiscoverArgs) bool {
			return args.Root == m.Path("./functions") &&
				args.ServerModule == "custom/server" &&
				args.Parallel == 2 &&
				args.Ignore.SkipDir("legacy")
		})).
		Return(m.Discovery{}, nil)
	mockUI.EXPECT().DisplayDiscovery(mock.Anything).Return(nil)
	mockUI.EXPECT().Wait().Return()

	cmd, _, _ := newTestRoot()
	cmd.SetArgs([]string{"list", "--server-module", "custom/server", "-p", "2", "-x", "legacy", "./functions"})
	require.NoError(t, cmd.Execute())
}

func TestRootCmd_BadConfigFile(t *testing.T) {
	installMocks(t)

	cmd, _, _ := newTestRoot()
	cmd.SetArgs([]string{"--config", filepath.Join(t.TempDir(), "missing.yaml"), "list"})
	require.Error(t, cmd.Execute())
}

func TestExecute(t *testing.T) {
	originalRootCmd := rootCmd
	defer func() { rootCmd = originalRootCmd }()

	mockCmd := &cobra.Command{
		Use: "test",
		RunE: func(cmd *cobra.Command, args []string) error {
			return nil
		},
	}
	mockCmd.SetOut(&bytes.Buffer{})
	mockCmd.SetErr(&bytes.Buffer{})

	rootCmd = mockCmd

	Execute()
}

func TestExecute_ProcessLevel_Failure(t *testing.T) {
	if os.Getenv("TEST_EXECUTE_SUBPROCESS_FAIL") == "1" {
		mockCmd := &cobra.Command{
			Use: "test",
			RunE: func(cmd *cobra.Command, args []string) error {
				fmt.Fprintln(os.Stderr, "error occurred")
				return fmt.Errorf("command failed")
			},
		}
		mockCmd.SetOut(os.Stdout)
		mockCmd.SetErr(os.Stderr)
		rootCmd = mockCmd

		Execute() // This should call os.Exit(1)
		return
	}

	cmd := exec.Command(os.Args[0], "-test.run=TestExecute_ProcessLevel_Failure")
	cmd.Env = append(os.Environ(), "TEST_EXECUTE_SUBPROCESS_FAIL=1")
	output, err := cmd.CombinedOutput()

	exitErr, ok := err.(*exec.ExitError)
	if !ok {
		t.Fatalf("Expected exec.ExitError, got %T (%v)", err, err)
	}

	if exitErr.ExitCode() != 1 {
		t.Errorf("Expected exit code 1, got %d", exitErr.ExitCode())
	}

	if !strings.Contains(string(output), "error occurred") {
		t.Logf("Output: %s", output)
	}
}
