package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sadopc/focusboard/internal/model"
	"github.com/sadopc/focusboard/internal/store"
	"github.com/sadopc/focusboard/internal/timer"
)

// timerModel schedules ticks for the stopwatch and commits every whole
// minute to the store.
type timerModel struct {
	store *store.Store
	width int

	sw     timer.Stopwatch
	ticker ticker
}

func newTimerModel(s *store.Store) timerModel {
	return timerModel{
		store:  s,
		ticker: newTicker(),
	}
}

func (t *timerModel) setSize(w, _ int) {
	t.width = w
}

func (t timerModel) running() bool { return t.sw.Status != timer.StatusIdle }
func (t timerModel) paused() bool  { return t.sw.Status == timer.StatusPaused }

func (t timerModel) update(msg tea.Msg) (timerModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		if !t.ticker.owns(msg) {
			return t, nil
		}
		return t.apply(timer.EventTick)

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Start):
			return t.apply(timer.EventStart)
		case key.Matches(msg, keys.Pause):
			return t.apply(timer.EventToggle)
		case key.Matches(msg, keys.Stop):
			if !t.sw.CanStop() {
				return t, nil
			}
			var cmd tea.Cmd
			t, cmd = t.apply(timer.EventStop)
			return t, tea.Batch(cmd, statusCmd("Timer stopped", false))
		case key.Matches(msg, keys.Reset):
			return t.apply(timer.EventReset)
		}
	}
	return t, nil
}

// apply feeds ev to the stopwatch, keeps the tick chain in step with the
// new status and turns effects into store writes.
func (t timerModel) apply(ev timer.Event) (timerModel, tea.Cmd) {
	was := t.sw.Ticking()
	var effects []timer.Effect
	t.sw, effects = t.sw.Apply(ev)

	var cmds []tea.Cmd
	switch {
	case t.sw.Ticking() && (ev == timer.EventTick || !was):
		cmds = append(cmds, t.ticker.schedule())
	case !t.sw.Ticking() && was:
		t.ticker.cancel()
	}

	for _, e := range effects {
		if m, ok := e.(timer.MinuteElapsed); ok {
			cmds = append(cmds, dataCmd(t.store.OnTimeCommitted(m.Minutes)))
		}
	}
	return t, tea.Batch(cmds...)
}

func (t timerModel) view(st styles) string {
	w := t.width - 4
	if w < 20 {
		w = 20
	}

	clock := timer.FormatClock(t.sw.Elapsed)

	var timeDisplay, indicator, session string
	switch t.sw.Status {
	case timer.StatusRunning:
		timeDisplay = st.timerRunning.Width(w - 6).Render(clock)
		indicator = st.success.Render("●  RECORDING")
		session = st.highlight.Render(model.FocusSessionTitle)
	case timer.StatusPaused:
		timeDisplay = st.timerPaused.Width(w - 6).Render(clock)
		indicator = st.warning.Render("⏸  PAUSED")
		session = st.highlight.Render(model.FocusSessionTitle)
	default:
		timeDisplay = st.timer.Width(w - 6).Render(clock)
		indicator = st.muted.Render("■  STOPPED")
		session = st.muted.Render("Press s to start tracking")
	}

	var controls string
	switch {
	case t.sw.Status == timer.StatusRunning:
		controls = "space: pause  x: stop"
	case t.sw.CanStop():
		controls = "space: resume  x: stop  r: reset"
	default:
		controls = "s: start"
	}

	content := lipgloss.JoinVertical(lipgloss.Center,
		st.title.Render("Time Tracker"),
		"",
		timeDisplay,
		indicator,
		session,
		"",
		st.muted.Render(fmt.Sprintf("%d min logged this session", t.sw.Elapsed/60)),
		st.muted.Render(controls),
	)

	panel := st.panel
	if t.sw.Status == timer.StatusRunning {
		panel = st.activePanel
	}
	return panel.Width(w).Render(content)
}
