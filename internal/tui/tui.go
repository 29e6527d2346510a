// Package tui implements the interactive results browser.
package tui

import (
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/sgl-umons/rabbit/internal/model"
)

// Run starts the results browser and blocks until the user quits.
func Run(results []model.ContributorResult) error {
	p := tea.NewProgram(NewModel(results), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// CanRun returns true if the environment supports the TUI.
func CanRun() bool {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return false
	}

	// CI environments get plain output even when a TTY is emulated
	ciVars := []string{
		"CI",
		"GITHUB_ACTIONS",
		"JENKINS_URL",
		"TRAVIS",
		"CIRCLECI",
		"GITLAB_CI",
		"BUILDKITE",
	}
	for _, v := range ciVars {
		if os.Getenv(v) != "" {
			return false
		}
	}
	return true
}
