package controller

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

// NewUI returns the interactive browser when interactive is set and the
// plain-text renderer otherwise.
func NewUI(cmd *cobra.Command, interactive bool) UI {
	if interactive {
		return NewTUI(cmd.OutOrStdout())
	}

	return NewSimpleUI(cmd)
}

// NewCommandUI picks the renderer for cmd from its output stream. Dumb
// terminals get plain text.
func NewCommandUI(cmd *cobra.Command) UI {
	return NewUI(cmd, IsTTY(cmd.OutOrStdout()) && os.Getenv("TERM") != "dumb")
}

// IsTTY reports whether w is an interactive terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
