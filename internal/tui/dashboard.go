package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
	"github.com/sadopc/focusboard/internal/model"
	"github.com/sadopc/focusboard/internal/stats"
	"github.com/sadopc/focusboard/internal/timer"
)

const (
	dashboardTasks   = 3
	dashboardEntries = 5
)

type dashboardModel struct {
	width  int
	height int

	data model.ProductivityData
	now  func() time.Time
	bar  progress.Model
}

func newDashboardModel(d model.ProductivityData) dashboardModel {
	return dashboardModel{
		data: d,
		now:  time.Now,
		bar:  progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage()),
	}
}

func (d *dashboardModel) setSize(w, h int) {
	d.width = w
	d.height = h
	d.bar.Width = max(10, min(w-40, 50))
}

func (d *dashboardModel) setData(data model.ProductivityData) {
	d.data = data
}

func (d dashboardModel) overview() stats.Overview {
	return stats.Compute(d.data.Tasks, d.data.TimeEntries, d.data.Goals, d.now())
}

func (d dashboardModel) view(st styles, sw timer.Stopwatch) string {
	if d.width < 20 {
		return "Terminal too small"
	}

	contentWidth := d.width - 4

	return lipgloss.JoinVertical(lipgloss.Left,
		d.renderStatsPanel(st, contentWidth),
		d.renderTimerPanel(st, sw, contentWidth),
		d.renderTasksPanel(st, contentWidth),
		d.renderRecentPanel(st, contentWidth),
	)
}

func (d dashboardModel) renderStatsPanel(st styles, w int) string {
	o := d.overview()
	g := d.data.Goals

	row := func(label, value, target string, pct float64) string {
		return fmt.Sprintf("  %-16s %-8s %s %s %s",
			label,
			st.highlight.Render(value),
			d.bar.ViewAs(pct/100),
			st.muted.Render(fmt.Sprintf("%3.0f%%", pct)),
			st.muted.Render(target),
		)
	}

	rows := []string{
		st.title.Render("Today"),
		"",
		row("Focus time", formatHours(o.TodayFocusHours), fmt.Sprintf("goal %gh", g.Daily), o.DailyProgress),
		row("Weekly goal", formatHours(o.WeekFocusHours), fmt.Sprintf("goal %gh", g.Weekly), o.WeeklyProgress),
		row("Tasks done", fmt.Sprintf("%d/%d", o.TodayTasksCompleted, o.TodayTasksCreated), "created today", o.TaskProgress),
	}
	return st.panel.Width(w).Render(strings.Join(rows, "\n"))
}

func (d dashboardModel) renderTimerPanel(st styles, sw timer.Stopwatch, w int) string {
	clock := timer.FormatClock(sw.Elapsed)

	var line string
	switch sw.Status {
	case timer.StatusRunning:
		line = st.timerRunning.Render(clock) + "  " + st.success.Render("●  RECORDING")
	case timer.StatusPaused:
		line = st.timerPaused.Render(clock) + "  " + st.warning.Render("⏸  PAUSED")
	default:
		line = st.timer.Render(clock) + "  " + st.muted.Render("■  STOPPED  press s to start")
	}

	content := lipgloss.JoinVertical(lipgloss.Left, st.title.Render("Time Tracker"), line)
	if sw.Status == timer.StatusRunning {
		return st.activePanel.Width(w).Render(content)
	}
	return st.panel.Width(w).Render(content)
}

func (d dashboardModel) renderTasksPanel(st styles, w int) string {
	done, total := model.CountCompleted(d.data.Tasks)
	title := st.title.Render("Tasks") + "  " + st.muted.Render(fmt.Sprintf("%d/%d completed", done, total))

	if len(d.data.Tasks) == 0 {
		return st.panel.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left,
			title,
			st.muted.Render("No tasks yet. Press 3 to add one."),
		))
	}

	rows := []string{title}
	for i, t := range d.data.Tasks {
		if i == dashboardTasks {
			rows = append(rows, st.muted.Render(fmt.Sprintf("  … %d more", len(d.data.Tasks)-dashboardTasks)))
			break
		}
		rows = append(rows, renderTaskLine(st, t, false))
	}
	return st.panel.Width(w).Render(strings.Join(rows, "\n"))
}

func (d dashboardModel) renderRecentPanel(st styles, w int) string {
	title := st.title.Render("Recent Entries")
	entries := d.data.TimeEntries
	if len(entries) == 0 {
		return st.panel.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left,
			title,
			st.muted.Render("No entries yet"),
		))
	}

	rows := []string{title}
	for i := len(entries) - 1; i >= 0 && i >= len(entries)-dashboardEntries; i-- {
		e := entries[i]
		rows = append(rows, fmt.Sprintf("  ✓ %s  %-16s %-8s %s",
			e.StartTime.Local().Format("Jan 02 15:04"),
			e.Title,
			formatMinutes(e.Duration),
			st.muted.Render(e.Category),
		))
	}
	return st.panel.Width(w).Render(strings.Join(rows, "\n"))
}
