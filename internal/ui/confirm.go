package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Nomadcxx/zeropad/internal/reporter"
)

// ConfirmModel shows a rename plan in a scrollable viewport and asks the
// user to confirm or abort before anything touches the filesystem.
type ConfirmModel struct {
	report    reporter.Report
	viewport  viewport.Model
	ready     bool
	width     int
	height    int
	confirmed bool
}

// NewConfirmModel creates the confirmation view for a plan report
func NewConfirmModel(report reporter.Report) ConfirmModel {
	return ConfirmModel{report: report}
}

// Confirmed reports whether the user chose to apply the plan
func (m ConfirmModel) Confirmed() bool {
	return m.confirmed
}

// SetSize sets the terminal dimensions (used by tests; normally driven by
// tea.WindowSizeMsg)
func (m *ConfirmModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.resizeViewport()
}

// Init initializes the TUI
func (m ConfirmModel) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m ConfirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizeViewport()
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "y", "Y", "enter":
			m.confirmed = true
			return m, tea.Quit
		case "n", "N", "q", "esc", "ctrl+c":
			m.confirmed = false
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View renders the confirmation screen
func (m ConfirmModel) View() string {
	if !m.ready {
		return "Loading plan..."
	}

	header := HeaderStyle.Render("zeropad — rename plan")
	question := fmt.Sprintf("Apply %d renames in %s?", len(m.report.Plan.Renames()), m.report.Dir)
	footer := FooterStyle.Render(strings.Join([]string{
		FormatKeybinding("y/enter", "apply"),
		FormatKeybinding("n/q", "abort"),
		FormatKeybinding("↑/↓", "scroll"),
	}, "  "))

	return header + "\n" + m.viewport.View() + "\n" + TitleStyle.Render(question) + "\n" + footer
}

func (m *ConfirmModel) resizeViewport() {
	if m.width <= 0 || m.height <= 0 {
		return
	}

	// Header, question, footer and their blank lines take up 5 rows.
	contentHeight := m.height - 5
	if contentHeight < 3 {
		contentHeight = 3
	}

	if !m.ready {
		m.viewport = viewport.New(m.width, contentHeight)
		m.viewport.SetContent(m.report.Summary())
		m.ready = true
		return
	}
	m.viewport.Width = m.width
	m.viewport.Height = contentHeight
}

// Confirm runs the confirmation TUI and reports whether the user accepted
// the plan.
func Confirm(report reporter.Report) (bool, error) {
	p := tea.NewProgram(NewConfirmModel(report))
	finalModel, err := p.Run()
	if err != nil {
		return false, fmt.Errorf("failed to run confirmation prompt: %w", err)
	}

	return finalModel.(ConfirmModel).Confirmed(), nil
}
