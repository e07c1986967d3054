package controller

import (
	"bytes"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/mouse-blink/fnpack/internal/adapter"
	m "github.com/mouse-blink/fnpack/internal/model"
)

var (
	warningLabel = color.New(color.FgYellow, color.Bold)
	errorLabel   = color.New(color.FgRed, color.Bold)
	successLabel = color.New(color.FgGreen)
)

// SimpleUI implements UI using the cobra command's output streams. Tables
// go to stdout, diagnostics to stderr.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Close finalizes the UI.
func (s *SimpleUI) Close() {}

// Wait returns immediately.
func (s *SimpleUI) Wait() {}

// DisplayDiscovery prints the discovered entry points and their diagnostics.
func (s *SimpleUI) DisplayDiscovery(discovery m.Discovery) error {
	var (
		tableBuffer bytes.Buffer
		extended    int
	)

	table := newTable(&tableBuffer, []string{"Path", "Kind", "Environment"})

	for _, ep := range discovery.EntryPoints {
		if ep.Environment == m.EnvironmentExtended {
			extended++
		}

		table.Append([]string{string(ep.Path), string(ep.Kind), string(ep.Environment)})
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total %d", len(discovery.EntryPoints)),
		"",
		fmt.Sprintf("%d extended", extended),
	})

	table.Render()
	s.printf("\n%s", tableBuffer.String())
	s.DisplayDiagnostics(discovery.Diagnostics)

	return nil
}

// DisplayBuild prints the bundled modules of both environments, or the
// build error.
func (s *SimpleUI) DisplayBuild(result m.BuildResult, err error) error {
	s.DisplayDiagnostics(result.Diagnostics)

	if err != nil {
		s.errorf("%s %v\n", errorLabel.Sprint("build error:"), err)

		return err
	}

	var (
		tableBuffer bytes.Buffer
		totalBytes  int
	)

	table := newTable(&tableBuffer, []string{"Module", "Environment", "Size", "Source Map"})

	modules := result.Modules()
	for _, module := range modules {
		sourceMap := "-"
		if module.SourceMap != nil {
			sourceMap = "yes"
		}

		totalBytes += len(module.Content)
		table.Append([]string{string(module.Path), string(module.Environment), formatBytes(len(module.Content)), sourceMap})
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Modules %d", len(modules)),
		"",
		formatBytes(totalBytes),
		"",
	})

	table.Render()
	s.printf("\n%s", tableBuffer.String())

	return nil
}

// DisplayPackage prints where a source package was written.
func (s *SimpleUI) DisplayPackage(output m.Path, info adapter.PackageInfo) {
	s.printf("%s %d modules (%s unzipped) to %s\n",
		successLabel.Sprint("wrote"), len(info.Files), formatBytes(info.UnzippedSizeBytes), output)
}

// DisplayDiagnostics prints one line per diagnostic to stderr.
func (s *SimpleUI) DisplayDiagnostics(diagnostics []m.Diagnostic) {
	for _, d := range diagnostics {
		s.errorf("%s %s: %s\n", severityLabel(d.Severity), d.Path, d.Message)
	}
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

func (s *SimpleUI) errorf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.ErrOrStderr(), format, args...)
}

func newTable(w io.Writer, header []string) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)

	return table
}

func severityLabel(severity m.Severity) string {
	if severity == m.SeverityError {
		return errorLabel.Sprint("error:")
	}

	return warningLabel.Sprint("warning:")
}

func formatBytes(n int) string {
	const unit = 1024

	if n < unit {
		return fmt.Sprintf("%d B", n)
	}

	div, exp := unit, 0
	for v := n / unit; v >= unit; v /= unit {
		div *= unit
		exp++
	}

	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}
