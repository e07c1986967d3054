package controller

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	m "github.com/mouse-blink/fnpack/internal/model"
)

const badgeWidth = 10

type tickMsg time.Time

// browserDelegate renders one entry point or module per line.
type browserDelegate struct {
	offset int
}

func (d browserDelegate) Height() int  { return 1 }
func (d browserDelegate) Spacing() int { return 0 }
func (d browserDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d browserDelegate) Render(w io.Writer, lm list.Model, index int, item list.Item) {
	entry, ok := item.(browserItem)
	if !ok {
		return
	}

	isSelected := index == lm.Index()

	var pathStyle, badgeStyle lipgloss.Style

	var displayPath string

	width := lm.Width() - badgeWidth - 2

	if isSelected {
		pathStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("6")).
			Bold(true)
		badgeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("6")).
			Bold(true).
			Width(badgeWidth)

		displayPath = animateScroll(entry.label(), width, d.offset)
	} else {
		pathStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
		badgeStyle = lipgloss.NewStyle().
			Foreground(badgeColor(entry.badge)).
			Bold(true).
			Width(badgeWidth)

		displayPath = truncateToWidth(entry.label(), width)
	}

	line := fmt.Sprintf("%s  %s",
		badgeStyle.Render(entry.badge),
		pathStyle.Render(displayPath),
	)
	_, _ = fmt.Fprint(w, line)
}

func (b browserItem) label() string {
	if b.detail == "" {
		return b.path
	}

	return fmt.Sprintf("%s  (%s)", b.path, b.detail)
}

func badgeColor(badge string) lipgloss.Color {
	if badge == string(m.EnvironmentExtended) {
		return lipgloss.Color("13")
	}

	return lipgloss.Color("11")
}

func animateScroll(text string, width int, offset int) string {
	if width <= 0 {
		return ""
	}

	if lipgloss.Width(text) <= width {
		return text
	}

	gap := "   "
	pause := 5

	if offset < pause {
		return truncateToWidth(text, width)
	}

	runes := []rune(text + gap)
	n := len(runes)

	start := (offset - pause) % n

	res := make([]rune, 0, width)
	for i := 0; i < width; i++ {
		res = append(res, runes[(start+i)%n])
	}

	return string(res)
}

func truncateToWidth(text string, width int) string {
	if width <= 0 {
		return ""
	}

	if lipgloss.Width(text) <= width {
		return text
	}

	const ellipsis = "…"

	maxWidth := width - lipgloss.Width(ellipsis)
	if maxWidth <= 0 {
		return ellipsis
	}

	currentWidth := 0

	result := make([]rune, 0, len(text))
	for _, r := range text {
		rWidth := lipgloss.Width(string(r))
		if currentWidth+rWidth > maxWidth {
			break
		}

		result = append(result, r)
		currentWidth += rWidth
	}

	return string(result) + ellipsis
}

// browserModel lists entry points or modules with a filterable list.
type browserModel struct {
	width        int
	height       int
	list         list.Model
	delegate     browserDelegate
	title        string
	summary      string
	status       string
	statusErr    bool
	diagnostics  []m.Diagnostic
	rendered     bool
	animOffset   int
	lastSelected int
}

func newBrowserModel() browserModel {
	delegate := browserDelegate{}
	items := list.New([]list.Item{}, delegate, 80, 20)
	items.SetShowPagination(false)
	items.SetShowFilter(true)
	items.SetShowHelp(false)
	items.SetShowTitle(false)
	items.SetShowStatusBar(false)
	items.FilterInput.Placeholder = "Filter by path…"

	return browserModel{
		list:         items,
		delegate:     delegate,
		lastSelected: -1,
	}
}

func (bm browserModel) Init() tea.Cmd {
	return tea.Tick(time.Second/2, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (bm browserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		bm.width = msg.Width
		bm.height = msg.Height
		bm.list.SetWidth(bm.width)

	case tickMsg:
		if bm.list.FilterState() != list.Filtering && bm.rendered {
			bm.animOffset++
			bm.delegate.offset = bm.animOffset
			bm.list.SetDelegate(bm.delegate)

			return bm, tea.Tick(time.Millisecond*150, func(t time.Time) tea.Msg {
				return tickMsg(t)
			})
		}

		return bm, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return bm, tea.Quit
		default:
			bm.list, cmd = bm.list.Update(msg)

			if bm.list.Index() != bm.lastSelected {
				bm.lastSelected = bm.list.Index()
				bm.animOffset = 0
				bm.delegate.offset = 0
				bm.list.SetDelegate(bm.delegate)
			}

			return bm, cmd
		}

	case listingMsg:
		bm = bm.handleListingMsg(msg)

	case diagnosticsMsg:
		bm.diagnostics = append(bm.diagnostics, msg.diagnostics...)
		bm.rendered = true

	case statusMsg:
		bm.status = msg.text
		bm.statusErr = msg.err
	}

	return bm, cmd
}

func (bm browserModel) handleListingMsg(msg listingMsg) browserModel {
	items := make([]list.Item, 0, len(msg.items))
	for _, item := range msg.items {
		items = append(items, item)
	}

	bm.list.SetItems(items)
	bm.title = msg.title
	bm.summary = msg.summary
	bm.diagnostics = append(bm.diagnostics, msg.diagnostics...)
	bm.rendered = true

	if len(items) > 0 && bm.lastSelected == -1 {
		bm.lastSelected = 0
	}

	return bm
}

func (bm browserModel) View() string {
	if !bm.rendered {
		return "Discovering entry points…\n"
	}

	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("205")).
		Bold(true).
		Padding(1, 0, 0, 2)

	summaryStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252")).
		Padding(0, 0, 1, 2)

	sections := []string{
		titleStyle.Render("fnpack " + bm.title),
		summaryStyle.Render(bm.summary),
		bm.renderTable(),
	}

	if len(bm.diagnostics) > 0 {
		sections = append(sections, bm.renderDiagnostics())
	}

	if bm.status != "" {
		statusColor := lipgloss.Color("10")
		if bm.statusErr {
			statusColor = lipgloss.Color("9")
		}

		sections = append(sections, lipgloss.NewStyle().Foreground(statusColor).Padding(0, 0, 0, 2).Render(bm.status))
	}

	footerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Align(lipgloss.Center).
		Width(bm.width)

	sections = append(sections, footerStyle.Render("↑/k up • ↓/j down • g/G top/bottom • / filter • q quit"))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (bm browserModel) renderTable() string {
	listHeight := bm.height - 9 - len(bm.diagnostics)
	if listHeight < 5 {
		listHeight = 5
	}

	listWidth := bm.width - 6

	bm.list.SetHeight(listHeight)
	bm.list.SetWidth(listWidth)

	headerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Bold(true).
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color("8")).
		Width(listWidth)

	headers := headerStyle.Render(fmt.Sprintf("%-*s  %s", badgeWidth, "Env", "Path"))

	tableContainer := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("6")).
		Margin(0, 1).
		Padding(0, 1)

	return tableContainer.Render(
		lipgloss.JoinVertical(lipgloss.Left,
			headers,
			bm.list.View(),
		),
	)
}

func (bm browserModel) renderDiagnostics() string {
	warningStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	errorStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)

	lines := make([]string, 0, len(bm.diagnostics))

	for _, d := range bm.diagnostics {
		label := warningStyle.Render("warning")
		if d.Severity == m.SeverityError {
			label = errorStyle.Render("error")
		}

		lines = append(lines, fmt.Sprintf("%s %s: %s", label, d.Path, d.Message))
	}

	return lipgloss.NewStyle().Padding(0, 0, 0, 2).Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}
