package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sadopc/focusboard/internal/model"
	"github.com/sadopc/focusboard/internal/timer"
)

type pomodoroModel struct {
	width  int
	height int

	machine timer.Pomodoro
	ticker  ticker
	notify  model.Notifications
	bar     progress.Model
}

func durationsFrom(s model.Settings) timer.Durations {
	return timer.Durations{
		Work:       s.PomodoroTime,
		ShortBreak: s.ShortBreak,
		LongBreak:  s.LongBreak,
	}
}

func newPomodoroModel(s model.Settings) pomodoroModel {
	return pomodoroModel{
		machine: timer.NewPomodoro(durationsFrom(s)),
		ticker:  newTicker(),
		notify:  s.NotificationPrefs(),
		bar:     progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage()),
	}
}

func (p *pomodoroModel) setSize(w, h int) {
	p.width = w
	p.height = h
	p.bar.Width = max(10, min(w-16, 60))
}

// configure picks up changed settings. A segment already under way keeps
// its remaining time.
func (p *pomodoroModel) configure(s model.Settings) {
	p.machine = p.machine.Reconfigure(durationsFrom(s))
	p.notify = s.NotificationPrefs()
}

func (p pomodoroModel) update(msg tea.Msg) (pomodoroModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		if !p.ticker.owns(msg) {
			return p, nil
		}
		return p.apply(timer.EventTick)

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Start):
			return p.apply(timer.EventStart)
		case key.Matches(msg, keys.Pause):
			return p.apply(timer.EventToggle)
		case key.Matches(msg, keys.Reset), key.Matches(msg, keys.Stop):
			var cmd tea.Cmd
			p, cmd = p.apply(timer.EventReset)
			return p, tea.Batch(cmd, statusCmd("Pomodoro reset", false))
		case key.Matches(msg, keys.Skip):
			return p.apply(timer.EventSkip)
		}
	}
	return p, nil
}

func (p pomodoroModel) apply(ev timer.Event) (pomodoroModel, tea.Cmd) {
	was := p.machine.Ticking()
	var effects []timer.Effect
	p.machine, effects = p.machine.Apply(ev)

	var cmds []tea.Cmd
	switch {
	case p.machine.Ticking() && (ev == timer.EventTick || !was):
		cmds = append(cmds, p.ticker.schedule())
	case !p.machine.Ticking() && was:
		p.ticker.cancel()
	}

	for _, e := range effects {
		if done, ok := e.(timer.SegmentCompleted); ok {
			cmds = append(cmds, statusCmd(p.completionText(done), false))
		}
	}
	return p, tea.Batch(cmds...)
}

// completionText announces the next segment. The trailing bell rings the
// terminal when break notifications are on.
func (p pomodoroModel) completionText(done timer.SegmentCompleted) string {
	var text string
	if done.To.IsBreak() {
		text = fmt.Sprintf("%s over. Time for a %s!", done.From.Label(), strings.ToLower(done.To.Label()))
	} else {
		text = fmt.Sprintf("%s over. Back to focus, cycle %d.", done.From.Label(), done.Cycle)
	}
	if p.notify.Breaks {
		text += " \a"
	}
	return text
}

func (p pomodoroModel) modeStyle(st styles) lipgloss.Style {
	switch p.machine.Mode {
	case timer.ModeShortBreak:
		return st.success.Bold(true)
	case timer.ModeLongBreak:
		return st.highlight.Bold(true)
	default:
		return st.accent.Bold(true)
	}
}

func (p pomodoroModel) view(st styles) string {
	w := p.width - 4
	if w < 20 {
		w = 20
	}
	m := p.machine
	ms := p.modeStyle(st)

	timeDisplay := ms.Width(w - 6).Align(lipgloss.Center).Render(timer.FormatCountdown(m.Remaining))

	kind := "Work"
	if m.Mode.IsBreak() {
		kind = "Break"
	}
	session := st.muted.Render(fmt.Sprintf("Cycle %d • %s Session", m.Cycle, kind))

	state := st.muted.Render("■  READY")
	if m.Running {
		state = st.success.Render("●  RUNNING")
	} else if m.Remaining < m.Total() {
		state = st.warning.Render("⏸  PAUSED")
	}

	content := lipgloss.JoinVertical(lipgloss.Center,
		st.title.Render("Pomodoro Timer"),
		"",
		ms.Render(m.Mode.Label()),
		timeDisplay,
		session,
		"",
		p.bar.ViewAs(m.Progress()),
		state,
		"",
		p.renderCycles(st),
	)

	var controls string
	switch {
	case m.Running && m.Mode.IsBreak():
		controls = "space: pause  >: skip break  r: reset"
	case m.Running:
		controls = "space: pause  >: skip  r: reset"
	default:
		controls = "s: start  >: skip  r: reset"
	}

	panel := st.panel
	if m.Running {
		panel = st.activePanel
	}
	return panel.Width(w).Render(
		lipgloss.JoinVertical(lipgloss.Center, content, "", st.muted.Render(controls)),
	)
}

// renderCycles shows where the current cycle sits in the run of work
// segments that ends with a long break.
func (p pomodoroModel) renderCycles(st styles) string {
	m := p.machine
	pos := (m.Cycle - 1) % timer.LongBreakEvery
	var parts []string
	for i := 0; i < timer.LongBreakEvery; i++ {
		switch {
		case i < pos, i == pos && m.Mode.IsBreak():
			parts = append(parts, st.success.Render("●"))
		case i == pos:
			parts = append(parts, st.accent.Render("◐"))
		default:
			parts = append(parts, st.muted.Render("○"))
		}
	}
	return strings.Join(parts, " ") + st.muted.Render(fmt.Sprintf("  long break every %d", timer.LongBreakEvery))
}
