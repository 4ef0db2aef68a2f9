package controller

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// restoreModel lists the documents whose backups were put back.
type restoreModel struct {
	paths    []string
	err      error
	rendered bool
}

func newRestoreModel() restoreModel {
	return restoreModel{}
}

func (r restoreModel) Init() tea.Cmd {
	return nil
}

func (r restoreModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return r, tea.Quit
		}

	case restoreMsg:
		r.paths = msg.paths
		r.err = msg.err
		r.rendered = true

	case finishedMsg:
		return r, tea.Quit
	}

	return r, nil
}

func (r restoreModel) View() string {
	if !r.rendered {
		return "Looking for backups…\n"
	}

	title := titleStyle.Render("mdcover restore")

	summary := summaryStyle.Render(fmt.Sprintf(
		"Restored: %s",
		accentStyle.Render(fmt.Sprintf("%d", len(r.paths))),
	))

	lines := make([]string, 0, len(r.paths)+1)
	for _, path := range r.paths {
		lines = append(lines, addedStyle.Render("restored")+" "+path)
	}

	if r.err != nil {
		lines = append(lines, errorStyle.Render(fmt.Sprintf("restore error: %v", r.err)))
	}

	body := lipgloss.NewStyle().Padding(0, 2).Render(strings.Join(lines, "\n"))

	return lipgloss.JoinVertical(lipgloss.Left, title, summary, body) + "\n"
}
