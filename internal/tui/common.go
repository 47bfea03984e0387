package tui

import (
	"fmt"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sadopc/focusboard/internal/model"
)

// viewState represents the currently active view.
type viewState int

const (
	viewDashboard viewState = iota
	viewTimer
	viewTasks
	viewPomodoro
	viewReports
	viewSettings
)

var viewNames = []string{"Dashboard", "Timer", "Tasks", "Pomodoro", "Reports", "Settings"}

// --- Messages ---

type statusMsg struct {
	text    string
	isError bool
}

// dataMsg carries the record after a save so every view renders the same
// state.
type dataMsg struct {
	data model.ProductivityData
}

type exportDoneMsg struct {
	path string
}

// tickMsg drives one machine. A tick whose id or tag no longer matches
// the machine is stale and dropped.
type tickMsg struct {
	id  int
	tag int
}

// --- Tick scheduling ---

var lastID int64

func nextID() int {
	return int(atomic.AddInt64(&lastID, 1))
}

// ticker hands out one-second ticks for a single machine. Bumping the tag
// invalidates any tick already in flight.
type ticker struct {
	id  int
	tag int
}

func newTicker() ticker {
	return ticker{id: nextID()}
}

func (t *ticker) schedule() tea.Cmd {
	t.tag++
	id, tag := t.id, t.tag
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return tickMsg{id: id, tag: tag}
	})
}

func (t *ticker) cancel() {
	t.tag++
}

func (t ticker) owns(msg tickMsg) bool {
	return msg.id == t.id && msg.tag == t.tag
}

// --- Helpers ---

func dataCmd(d model.ProductivityData) tea.Cmd {
	return func() tea.Msg { return dataMsg{data: d} }
}

func statusCmd(text string, isError bool) tea.Cmd {
	return func() tea.Msg { return statusMsg{text: text, isError: isError} }
}

func formatHours(h float64) string {
	return fmt.Sprintf("%.1fh", h)
}

func formatMinutes(mins int) string {
	if mins < 60 {
		return fmt.Sprintf("%dm", mins)
	}
	return fmt.Sprintf("%dh %02dm", mins/60, mins%60)
}
