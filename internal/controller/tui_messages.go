package controller

import (
	m "github.com/mouse-blink/fnpack/internal/model"
)

// Message types.
type listingMsg struct {
	title       string
	summary     string
	items       []browserItem
	diagnostics []m.Diagnostic
}

type diagnosticsMsg struct {
	diagnostics []m.Diagnostic
}

type statusMsg struct {
	text string
	err  bool
}

// List item types.
type browserItem struct {
	path   string
	badge  string
	detail string
}

func (b browserItem) FilterValue() string {
	return b.path
}
