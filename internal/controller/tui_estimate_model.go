package controller

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	m "github.com/mouse-blink/mdcover/internal/model"
)

type tickMsg time.Time

const statusColumnWidth = 12

// Simple delegate for estimate list items.
type estimateDelegate struct {
	offset int
}

func (d estimateDelegate) Height() int  { return 1 }
func (d estimateDelegate) Spacing() int { return 0 }
func (d estimateDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d estimateDelegate) Render(w io.Writer, lm list.Model, index int, item list.Item) {
	file, ok := item.(fileItem)
	if !ok {
		return
	}

	isSelected := index == lm.Index()

	var pathStyle, statusStyle lipgloss.Style

	var displayPath string

	width := lm.Width() - statusColumnWidth - 2

	if isSelected {
		pathStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("6")).
			Bold(true)
		statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("6")).
			Bold(true).
			Width(statusColumnWidth)

		displayPath = animateScroll(file.path, width, d.offset)
	} else {
		pathStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
		statusStyle = lipgloss.NewStyle().
			Foreground(statusColor(file.status)).
			Bold(true).
			Width(statusColumnWidth)

		displayPath = truncateToWidth(file.path, width)
	}

	line := fmt.Sprintf("%s  %s",
		statusStyle.Render(file.status),
		pathStyle.Render(displayPath),
	)
	_, _ = fmt.Fprint(w, line)
}

func statusColor(status string) lipgloss.Color {
	switch status {
	case "needs cover":
		return lipgloss.Color("11")
	case "error":
		return lipgloss.Color("9")
	default:
		return lipgloss.Color("8")
	}
}

func animateScroll(text string, width int, offset int) string {
	if width <= 0 {
		return ""
	}

	textWidth := lipgloss.Width(text)
	if textWidth <= width {
		return text
	}

	gap := "   "

	// Ticks to wait before scrolling starts.
	pause := 5

	if offset < pause {
		return truncateToWidth(text, width)
	}

	effectiveStep := offset - pause

	runes := []rune(text + gap)
	n := len(runes)

	start := effectiveStep % n

	res := make([]rune, 0, width)
	for i := range width {
		idx := (start + i) % n
		res = append(res, runes[idx])
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

	if width <= 1 {
		return ellipsis
	}

	maxWidth := width - lipgloss.Width(ellipsis)

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

// estimateModel lists documents and whether each one would get a cover.
type estimateModel struct {
	width        int
	height       int
	fileList     list.Model
	delegate     estimateDelegate
	total        int
	pending      int
	rendered     bool
	animOffset   int
	lastSelected int
}

func newEstimateModel() estimateModel {
	delegate := estimateDelegate{}
	fileList := list.New([]list.Item{}, delegate, 80, 20)
	fileList.SetShowPagination(false)
	fileList.SetShowFilter(true)
	fileList.SetShowHelp(false)
	fileList.SetShowTitle(false)
	fileList.SetShowStatusBar(false)
	fileList.FilterInput.Placeholder = "Filter by path or title…"

	return estimateModel{
		fileList:     fileList,
		delegate:     delegate,
		lastSelected: -1,
	}
}

func (e estimateModel) Init() tea.Cmd {
	return tea.Tick(time.Second/2, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (e estimateModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		e.width = msg.Width
		e.height = msg.Height
		e.fileList.SetWidth(e.width)

	case tickMsg:
		if e.fileList.FilterState() != list.Filtering && e.rendered {
			e.animOffset++
			e.delegate.offset = e.animOffset
			e.fileList.SetDelegate(e.delegate)

			return e, tea.Tick(time.Millisecond*150, func(t time.Time) tea.Msg {
				return tickMsg(t)
			})
		}

		return e, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return e, tea.Quit
		default:
			var newList list.Model

			newList, cmd = e.fileList.Update(msg)
			e.fileList = newList

			// Restart the scroll animation when the selection moves.
			if e.fileList.Index() != e.lastSelected {
				e.lastSelected = e.fileList.Index()
				e.animOffset = 0
				e.delegate.offset = 0
				e.fileList.SetDelegate(e.delegate)
			}

			return e, cmd
		}

	case estimationMsg:
		e = e.handleEstimationMsg(msg)
	}

	return e, cmd
}

func (e estimateModel) handleEstimationMsg(msg estimationMsg) estimateModel {
	e.total = len(msg.results)
	e.pending = 0

	items := make([]list.Item, 0, len(msg.results))
	for _, result := range msg.results {
		if result.Status == m.StatusPending {
			e.pending++
		}

		items = append(items, fileItem{
			path:   string(result.RelPath),
			status: describeStatus(result),
			title:  result.Title,
		})
	}

	e.fileList.SetItems(items)
	e.rendered = true

	if len(items) > 0 && e.lastSelected == -1 {
		e.lastSelected = 0
	}

	return e
}

func (e estimateModel) View() string {
	if !e.rendered {
		return "Scanning documents…\n"
	}

	title := titleStyle.Render("mdcover estimate")

	summary := summaryStyle.Render(fmt.Sprintf(
		"Documents: %s   Needs cover: %s   Already covered: %s",
		accentStyle.Render(fmt.Sprintf("%d", e.total)),
		accentStyle.Render(fmt.Sprintf("%d", e.pending)),
		accentStyle.Render(fmt.Sprintf("%d", e.total-e.pending)),
	))

	table := e.renderTable()

	footer := footerStyle.Width(e.width).Render("↑/k up • ↓/j down • / filter • q quit")

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		summary,
		table,
		footer,
	)
}

func (e estimateModel) renderTable() string {
	// Title, summary, footer, border and headers take nine rows.
	listHeight := e.height - 9
	if listHeight < 5 {
		listHeight = 5
	}

	// Margin, border and padding take six columns.
	listWidth := e.width - 6

	e.fileList.SetHeight(listHeight)
	e.fileList.SetWidth(listWidth)

	headerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Bold(true).
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color("8")).
		Width(listWidth)

	headers := headerStyle.Render(fmt.Sprintf("%-*s  %s", statusColumnWidth, "Status", "Document"))

	tableContainer := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("6")).
		Margin(0, 1).
		Padding(0, 1)

	return tableContainer.Render(
		lipgloss.JoinVertical(lipgloss.Left,
			headers,
			e.fileList.View(),
		),
	)
}
