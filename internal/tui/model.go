package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sgl-umons/rabbit/internal/features"
	"github.com/sgl-umons/rabbit/internal/model"
)

// Model is the Bubble Tea model for the results browser: a contributor
// list on the left, the selected contributor's features on the right.
type Model struct {
	results []model.ContributorResult
	cursor  int
	detail  viewport.Model

	windowWidth  int
	windowHeight int
	ready        bool
	quitting     bool
}

// NewModel creates the browser over the given results.
func NewModel(results []model.ContributorResult) Model {
	return Model{
		results: results,
		detail:  viewport.New(0, 0),
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			m.quitting = true
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
				m.refreshDetail()
			}
			return m, nil
		case "down", "j":
			if m.cursor < len(m.results)-1 {
				m.cursor++
				m.refreshDetail()
			}
			return m, nil
		case "g", "home":
			m.cursor = 0
			m.refreshDetail()
			return m, nil
		case "G", "end":
			m.cursor = len(m.results) - 1
			m.refreshDetail()
			return m, nil
		case "pgup":
			m.detail.HalfViewUp()
			return m, nil
		case "pgdown":
			m.detail.HalfViewDown()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.windowWidth = msg.Width
		m.windowHeight = msg.Height
		m.detail.Width = m.detailWidth()
		m.detail.Height = m.contentHeight()
		m.ready = true
		m.refreshDetail()
		return m, nil
	}

	var cmd tea.Cmd
	m.detail, cmd = m.detail.Update(msg)
	return m, cmd
}

func (m *Model) listWidth() int {
	w := m.windowWidth / 2
	if w < 30 {
		w = 30
	}
	return w
}

func (m *Model) detailWidth() int {
	w := m.windowWidth - m.listWidth() - 3
	if w < 20 {
		w = 20
	}
	return w
}

// contentHeight is the window height minus title and footer chrome.
func (m *Model) contentHeight() int {
	h := m.windowHeight - 4
	if h < 3 {
		h = 3
	}
	return h
}

// refreshDetail rebuilds the feature pane for the selected contributor.
func (m *Model) refreshDetail() {
	if m.cursor < 0 || m.cursor >= len(m.results) {
		m.detail.SetContent("")
		return
	}
	r := m.results[m.cursor]
	if len(r.Features) == 0 {
		m.detail.SetContent("No features: no activities could be derived.")
		return
	}

	var b strings.Builder
	for _, name := range features.Names() {
		fmt.Fprintf(&b, "%-32s %10.3f\n", name, r.Features[name])
	}
	m.detail.SetContent(b.String())
	m.detail.GotoTop()
}

func userTypeLabel(t model.UserType) string {
	switch t {
	case model.UserTypeBot:
		return botStyle.Render(string(t))
	case model.UserTypeHuman:
		return humanStyle.Render(string(t))
	case model.UserTypeUnknown:
		return unknownStyle.Render(string(t))
	default:
		return invalidStyle.Render(string(t))
	}
}

// View renders the browser.
func (m Model) View() string {
	if m.quitting || !m.ready {
		return ""
	}
	if len(m.results) == 0 {
		return titleStyle.Render("rabbit") + "\n\nNo contributors classified.\n"
	}

	var list strings.Builder
	list.WriteString(headerStyle.Render(fmt.Sprintf("%-24s %-8s %s", "Contributor", "Type", "Conf")))
	list.WriteString("\n")

	top, bottom := m.visibleRange()
	for i := top; i < bottom; i++ {
		r := m.results[i]
		// Pad the plain text first so ANSI codes don't skew widths.
		typeCell := fmt.Sprintf("%-8s", r.UserType)
		line := fmt.Sprintf("%-24s %s %s", truncate(r.Contributor, 24), typeCell, r.Confidence)
		if i == m.cursor {
			list.WriteString(selectedStyle.Render("> " + line))
		} else {
			styled := strings.Replace(typeCell, string(r.UserType), userTypeLabel(r.UserType), 1)
			list.WriteString("  " + fmt.Sprintf("%-24s %s %s", truncate(r.Contributor, 24), styled, r.Confidence))
		}
		list.WriteString("\n")
	}

	body := lipgloss.JoinHorizontal(
		lipgloss.Top,
		lipgloss.NewStyle().Width(m.listWidth()).Render(list.String()),
		detailBorderStyle.Render(m.detail.View()),
	)

	footer := footerStyle.Render("↑/↓ select · pgup/pgdn scroll features · q quit")
	return titleStyle.Render("rabbit — contributor classification") + "\n" + body + "\n" + footer
}

// visibleRange keeps the cursor inside the scrolled list window.
func (m *Model) visibleRange() (int, int) {
	visible := m.contentHeight() - 1
	if len(m.results) <= visible {
		return 0, len(m.results)
	}
	top := m.cursor - visible/2
	if top < 0 {
		top = 0
	}
	bottom := top + visible
	if bottom > len(m.results) {
		bottom = len(m.results)
		top = bottom - visible
	}
	return top, bottom
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	if n <= 3 {
		return s[:n]
	}
	return s[:n-3] + "..."
}
