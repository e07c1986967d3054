package controller

import (
	"fmt"
	"io"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mouse-blink/fnpack/internal/adapter"
	m "github.com/mouse-blink/fnpack/internal/model"
)

// TUI implements UI using Bubble Tea for interactive display.
type TUI struct {
	output  io.Writer
	options []tea.ProgramOption

	mu      sync.Mutex
	program *tea.Program
	started bool
	done    chan struct{}
}

// NewTUI creates a new TUI rendering to output.
func NewTUI(output io.Writer, options ...tea.ProgramOption) *TUI {
	return &TUI{output: output, options: options}
}

// DisplayDiscovery opens the entry-point browser.
func (t *TUI) DisplayDiscovery(discovery m.Discovery) error {
	t.ensureStarted()

	items := make([]browserItem, 0, len(discovery.EntryPoints))
	extended := 0

	for _, ep := range discovery.EntryPoints {
		if ep.Environment == m.EnvironmentExtended {
			extended++
		}

		detail := ""
		if ep.Kind != m.KindFunction {
			detail = string(ep.Kind)
		}

		items = append(items, browserItem{path: string(ep.Path), badge: string(ep.Environment), detail: detail})
	}

	t.send(listingMsg{
		title: "Entry Points",
		summary: fmt.Sprintf("Entry points: %d   Isolate: %d   Extended: %d",
			len(discovery.EntryPoints), len(discovery.EntryPoints)-extended, extended),
		items:       items,
		diagnostics: discovery.Diagnostics,
	})

	return nil
}

// DisplayBuild opens the module browser, or reports the build error.
func (t *TUI) DisplayBuild(result m.BuildResult, err error) error {
	t.ensureStarted()

	modules := result.Modules()
	items := make([]browserItem, 0, len(modules))

	for _, module := range modules {
		detail := formatBytes(len(module.Content))
		if module.SourceMap != nil {
			detail += ", map"
		}

		items = append(items, browserItem{path: string(module.Path), badge: string(module.Environment), detail: detail})
	}

	t.send(listingMsg{
		title: "Bundle",
		summary: fmt.Sprintf("Modules: %d   Isolate: %d   Extended: %d",
			len(modules), len(result.Isolate), len(result.Extended)),
		items:       items,
		diagnostics: result.Diagnostics,
	})

	if err != nil {
		t.send(statusMsg{text: fmt.Sprintf("build error: %v", err), err: true})
	}

	return err
}

// DisplayPackage reports the written package in the status line.
func (t *TUI) DisplayPackage(output m.Path, info adapter.PackageInfo) {
	t.send(statusMsg{text: fmt.Sprintf("wrote %d modules (%s unzipped) to %s",
		len(info.Files), formatBytes(info.UnzippedSizeBytes), output)})
}

// DisplayDiagnostics adds diagnostics to the current view.
func (t *TUI) DisplayDiagnostics(diagnostics []m.Diagnostic) {
	t.ensureStarted()
	t.send(diagnosticsMsg{diagnostics: diagnostics})
}

// Wait blocks until the user quits the program.
func (t *TUI) Wait() {
	t.mu.Lock()
	done := t.done
	t.mu.Unlock()

	if done != nil {
		<-done
	}
}

// Close quits the program and waits for it to exit.
func (t *TUI) Close() {
	t.mu.Lock()
	program := t.program
	t.mu.Unlock()

	if program != nil {
		program.Quit()
	}

	t.Wait()
}

func (t *TUI) ensureStarted() {
	t.mu.Lock()
	started := t.started
	t.mu.Unlock()

	if started {
		return
	}

	_ = t.startWithModel(newBrowserModel())
}

func (t *TUI) startWithModel(model tea.Model) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.started {
		return fmt.Errorf("tui already started")
	}

	options := append([]tea.ProgramOption{tea.WithOutput(t.output)}, t.options...)
	t.program = tea.NewProgram(model, options...)
	t.done = make(chan struct{})
	t.started = true

	go func(program *tea.Program, done chan struct{}) {
		defer close(done)

		_, _ = program.Run()
	}(t.program, t.done)

	return nil
}

func (t *TUI) send(msg tea.Msg) {
	t.mu.Lock()
	program := t.program
	t.mu.Unlock()

	if program == nil {
		return
	}

	program.Send(msg)
}
