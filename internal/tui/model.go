package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"pjbench/internal/stats"
)

const (
	minBarWidth     = 20
	maxBarWidth     = 60
	defaultBarWidth = 40
)

// counters accumulates the deltas reported by a collection or generate run.
type counters struct {
	total int
	done  int
	bytes int64
}

func (c *counters) apply(u stats.ProgressUpdate) {
	c.total += u.TotalDelta
	c.done += u.ProcessedDelta
	c.bytes += u.BytesDelta
}

func (c counters) ratio() float64 {
	if c.total <= 0 {
		return 0
	}
	return min(float64(c.done)/float64(c.total), 1)
}

// Model is a bubbletea view of a run's progress. It exits once the update
// channel is closed.
type Model struct {
	title    string
	updates  <-chan stats.ProgressUpdate
	started  time.Time
	barWidth int
	counts   counters
	finished bool
}

type (
	streamClosedMsg struct{}
	progressMsg     stats.ProgressUpdate
)

func NewModel(title string, updates <-chan stats.ProgressUpdate) Model {
	return Model{title: title, updates: updates, started: time.Now(), barWidth: defaultBarWidth}
}

func (m Model) Init() tea.Cmd {
	return waitForProgress(m.updates)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case progressMsg:
		m.counts.apply(stats.ProgressUpdate(msg))
		return m, waitForProgress(m.updates)
	case streamClosedMsg:
		m.finished = true
		return m, tea.Quit
	case tea.WindowSizeMsg:
		m.barWidth = max(minBarWidth, min(maxBarWidth, msg.Width-10))
	}
	return m, nil
}

func (m Model) View() string {
	if m.finished {
		return ""
	}

	elapsed := time.Since(m.started).Round(time.Millisecond)
	return lipgloss.JoinVertical(lipgloss.Left,
		headingStyle.Render(m.title),
		textStyle.Render(fmt.Sprintf("Files: %d/%d", m.counts.done, m.counts.total)),
		textStyle.Render(fmt.Sprintf("Bytes: %d", m.counts.bytes)),
		mutedStyle.Render("Elapsed: "+elapsed.String()),
		meterStyle.Render(progressBar(m.barWidth, m.counts.ratio())),
	)
}

func waitForProgress(updates <-chan stats.ProgressUpdate) tea.Cmd {
	return func() tea.Msg {
		if u, ok := <-updates; ok {
			return progressMsg(u)
		}
		return streamClosedMsg{}
	}
}

// progressBar draws a bar of width cells, ratio of them filled.
func progressBar(width int, ratio float64) string {
	filled := min(max(int(ratio*float64(width)+0.5), 0), width)
	return "|" + strings.Repeat("#", filled) + strings.Repeat(".", width-filled) + "|"
}

var (
	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorHeading)
	textStyle    = lipgloss.NewStyle().Foreground(ColorText)
	meterStyle   = lipgloss.NewStyle().Foreground(ColorMeter)
	mutedStyle   = lipgloss.NewStyle().Foreground(ColorMuted)
)
