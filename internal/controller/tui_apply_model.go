package controller

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	m "github.com/mouse-blink/mdcover/internal/model"
)

const maxRecentResults = 8

// applyModel shows a progress bar while covers are being added.
type applyModel struct {
	width       int
	progressBar progress.Model
	root        string
	documents   int
	urls        int
	completed   int
	recent      []m.FileResult
	stats       *m.RunStats
	finished    bool
}

func newApplyModel() applyModel {
	return applyModel{
		progressBar: progress.New(
			progress.WithDefaultGradient(),
			progress.WithWidth(40),
			progress.WithoutPercentage(),
		),
	}
}

func (a applyModel) Init() tea.Cmd {
	return nil
}

func (a applyModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.progressBar.Width = min(max(msg.Width-4, 10), 60)

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}

	case scanInfoMsg:
		a.root = msg.root
		a.documents = msg.documents
		a.urls = msg.urls
		a.completed = 0
		a.recent = nil

	case fileResultMsg:
		a.completed++

		a.recent = append(a.recent, msg.result)
		if len(a.recent) > maxRecentResults {
			a.recent = a.recent[len(a.recent)-maxRecentResults:]
		}

	case summaryMsg:
		stats := msg.stats
		a.stats = &stats

	case finishedMsg:
		a.finished = true

		return a, tea.Quit
	}

	return a, nil
}

func (a applyModel) percent() float64 {
	if a.documents == 0 {
		if a.stats != nil {
			return 1
		}

		return 0
	}

	return float64(a.completed) / float64(a.documents)
}

func (a applyModel) View() string {
	title := titleStyle.Render("mdcover")

	summary := summaryStyle.Render(fmt.Sprintf(
		"Directory: %s  •  Progress: %s / %s  •  Cover URLs: %s",
		accentStyle.Render(a.root),
		accentStyle.Render(fmt.Sprintf("%d", a.completed)),
		accentStyle.Render(fmt.Sprintf("%d", a.documents)),
		accentStyle.Render(fmt.Sprintf("%d", a.urls)),
	))

	progressView := lipgloss.NewStyle().Padding(0, 2).Render(a.progressBar.ViewAs(a.percent()))

	sections := []string{title, summary, progressView, a.renderRecent()}

	if a.stats != nil {
		sections = append(sections, a.renderStats())
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...) + "\n"
}

func (a applyModel) renderRecent() string {
	if len(a.recent) == 0 {
		return ""
	}

	lines := make([]string, 0, len(a.recent))
	for _, result := range a.recent {
		lines = append(lines, formatResultLine(result))
	}

	return lipgloss.NewStyle().Padding(1, 2, 0, 2).Render(strings.Join(lines, "\n"))
}

func (a applyModel) renderStats() string {
	stats := a.stats

	lines := []string{
		fmt.Sprintf("Processed     %s", accentStyle.Render(fmt.Sprintf("%d", stats.Processed))),
		fmt.Sprintf("Covers added  %s", addedStyle.Render(fmt.Sprintf("%d", stats.Added))),
		fmt.Sprintf("Skipped       %s", skippedStyle.Render(fmt.Sprintf("%d", stats.Skipped))),
		fmt.Sprintf("Errors        %s", errorStyle.Render(fmt.Sprintf("%d", stats.Errors))),
	}

	if stats.BackupFailed > 0 {
		lines = append(lines, fmt.Sprintf("Backup fails  %s", errorStyle.Render(fmt.Sprintf("%d", stats.BackupFailed))))
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("6")).
		Padding(0, 1).
		Margin(1, 1, 0, 1)

	return box.Render(strings.Join(lines, "\n"))
}

func formatResultLine(result m.FileResult) string {
	path := string(result.RelPath)

	var line string

	switch result.Status {
	case m.StatusAdded:
		line = addedStyle.Render("added  ") + " " + path + " " + mutedStyle.Render(string(result.Cover))
	case m.StatusSkipped:
		line = skippedStyle.Render("skipped") + " " + path + " " + mutedStyle.Render("("+string(result.Reason)+")")
	default:
		line = errorStyle.Render("error  ") + " " + path + " " + mutedStyle.Render(fmt.Sprintf("%v", result.Err))
	}

	if result.BackupFailed {
		line += " " + errorStyle.Render("[no backup]")
	}

	return line
}
