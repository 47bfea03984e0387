package tui

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/sadopc/focusboard/internal/model"
	"github.com/sadopc/focusboard/internal/store"
)

type settingsModel struct {
	store  *store.Store
	width  int
	height int

	settings   model.Settings
	goals      model.Goals
	formActive bool
	form       *huh.Form

	// Form values as pointers (survive value copies)
	pomodoroTime *string
	shortBreak   *string
	longBreak    *string
	dailyGoal    *string
	weeklyGoal   *string
	theme        *model.Theme
	notifyBreaks *bool
	notifyGoals  *bool
}

func newSettingsModel(s *store.Store, d model.ProductivityData) settingsModel {
	pt, sb, lb, dg, wg := "", "", "", "", ""
	theme := d.Settings.Theme
	nb, ng := false, false
	return settingsModel{
		store:        s,
		settings:     d.Settings,
		goals:        d.Goals,
		pomodoroTime: &pt,
		shortBreak:   &sb,
		longBreak:    &lb,
		dailyGoal:    &dg,
		weeklyGoal:   &wg,
		theme:        &theme,
		notifyBreaks: &nb,
		notifyGoals:  &ng,
	}
}

func (s *settingsModel) setSize(w, h int) {
	s.width = w
	s.height = h
}

func (s *settingsModel) setData(d model.ProductivityData) {
	s.settings = d.Settings
	s.goals = d.Goals
}

func (s settingsModel) update(msg tea.Msg) (settingsModel, tea.Cmd) {
	if s.formActive && s.form != nil {
		return s.updateForm(msg)
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, keys.Enter), key.Matches(msg, keys.New):
			return s.showForm()
		}
	}
	return s, nil
}

func (s settingsModel) showForm() (settingsModel, tea.Cmd) {
	n := s.settings.NotificationPrefs()
	*s.pomodoroTime = strconv.Itoa(s.settings.PomodoroTime)
	*s.shortBreak = strconv.Itoa(s.settings.ShortBreak)
	*s.longBreak = strconv.Itoa(s.settings.LongBreak)
	*s.dailyGoal = strconv.FormatFloat(s.goals.Daily, 'f', -1, 64)
	*s.weeklyGoal = strconv.FormatFloat(s.goals.Weekly, 'f', -1, 64)
	*s.theme = s.settings.Theme
	*s.notifyBreaks = n.Breaks
	*s.notifyGoals = n.Goals

	s.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title(fmt.Sprintf("Focus time (1-%d min)", model.MaxPomodoroTime)).Value(s.pomodoroTime),
			huh.NewInput().Title(fmt.Sprintf("Short break (1-%d min)", model.MaxShortBreak)).Value(s.shortBreak),
			huh.NewInput().Title(fmt.Sprintf("Long break (1-%d min)", model.MaxLongBreak)).Value(s.longBreak),
		).Title("Pomodoro"),
		huh.NewGroup(
			huh.NewInput().Title(fmt.Sprintf("Daily goal (1-%d hours)", model.MaxDailyGoal)).Value(s.dailyGoal),
			huh.NewInput().Title(fmt.Sprintf("Weekly goal (1-%d hours)", model.MaxWeeklyGoal)).Value(s.weeklyGoal),
		).Title("Goals"),
		huh.NewGroup(
			huh.NewSelect[model.Theme]().Title("Theme").
				Options(
					huh.NewOption("Light", model.ThemeLight),
					huh.NewOption("Dark", model.ThemeDark),
				).Value(s.theme),
			huh.NewConfirm().Title("Break notifications").Value(s.notifyBreaks),
			huh.NewConfirm().Title("Goal notifications").Value(s.notifyGoals),
		).Title("General"),
	).WithShowHelp(true).WithShowErrors(true)

	s.formActive = true
	return s, s.form.Init()
}

func (s settingsModel) updateForm(msg tea.Msg) (settingsModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if msg.String() == "esc" {
			s.formActive = false
			s.form = nil
			return s, nil
		}
	}

	form, cmd := s.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		s.form = f
	}

	if s.form.State == huh.StateCompleted {
		s.formActive = false
		s.form = nil
		d := s.save()
		s.setData(d)
		return s, tea.Batch(dataCmd(d), statusCmd("Settings saved", false))
	}

	return s, cmd
}

// save coerces the form values and writes settings then goals.
func (s settingsModel) save() model.ProductivityData {
	next := model.SettingsFromInput(s.settings, *s.pomodoroTime, *s.shortBreak, *s.longBreak)
	if *s.theme == model.ThemeDark || *s.theme == model.ThemeLight {
		next.Theme = *s.theme
	}
	next.Notifications = &model.Notifications{Breaks: *s.notifyBreaks, Goals: *s.notifyGoals}
	s.store.OnSettingsChanged(next)
	return s.store.OnGoalsChanged(model.GoalsFromInput(*s.dailyGoal, *s.weeklyGoal))
}

func (s settingsModel) view(st styles) string {
	w := s.width - 4
	if w < 20 {
		w = 20
	}

	title := st.title.Render("Settings")

	if s.formActive && s.form != nil {
		return st.activePanel.Width(w).Render(
			lipgloss.JoinVertical(lipgloss.Left, title, "", s.form.View()),
		)
	}

	n := s.settings.NotificationPrefs()
	items := []struct{ label, value string }{
		{"Focus time", fmt.Sprintf("%d min", s.settings.PomodoroTime)},
		{"Short break", fmt.Sprintf("%d min", s.settings.ShortBreak)},
		{"Long break", fmt.Sprintf("%d min", s.settings.LongBreak)},
		{"Daily goal", fmt.Sprintf("%g hours", s.goals.Daily)},
		{"Weekly goal", fmt.Sprintf("%g hours", s.goals.Weekly)},
		{"Theme", string(s.settings.Theme)},
		{"Break notifications", onOff(n.Breaks)},
		{"Goal notifications", onOff(n.Goals)},
	}

	rows := []string{title, ""}
	for _, it := range items {
		label := lipgloss.NewStyle().Width(24).Render(it.label)
		rows = append(rows, fmt.Sprintf("  %s %s", label, st.highlight.Render(it.value)))
	}
	rows = append(rows, "")
	rows = append(rows, st.muted.Render("Press enter to edit settings, t to toggle theme"))

	return st.panel.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
