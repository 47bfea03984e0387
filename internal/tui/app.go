package tui

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sadopc/focusboard/internal/export"
	"github.com/sadopc/focusboard/internal/logging"
	"github.com/sadopc/focusboard/internal/model"
	"github.com/sadopc/focusboard/internal/stats"
	"github.com/sadopc/focusboard/internal/store"
	"github.com/sadopc/focusboard/internal/timer"
)

// App is the root Bubble Tea model.
type App struct {
	store  *store.Store
	width  int
	height int

	data   model.ProductivityData
	styles styles
	now    func() time.Time

	activeView    viewState
	showHelp      bool
	exportPicking bool
	exportCursor  int
	exportDir     string

	dashboard dashboardModel
	timer     timerModel
	tasks     tasksModel
	pomodoro  pomodoroModel
	reports   reportsModel
	settings  settingsModel

	help      help.Model
	status    string
	statusErr bool

	// goalDay is the date the daily goal was last announced.
	goalDay string
}

func NewApp(s *store.Store) App {
	h := help.New()
	h.ShowAll = false

	d := s.Load()
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}

	a := App{
		store:      s,
		data:       d,
		styles:     newStyles(d.Settings.Theme),
		now:        time.Now,
		activeView: viewDashboard,
		exportDir:  home,
		dashboard:  newDashboardModel(d),
		timer:      newTimerModel(s),
		tasks:      newTasksModel(s, d.Tasks),
		pomodoro:   newPomodoroModel(d.Settings),
		reports:    newReportsModel(d),
		settings:   newSettingsModel(s, d),
		help:       h,
	}
	// A goal already met before launch is not announced again.
	if a.goalReached() {
		a.goalDay = a.now().Format(time.DateOnly)
	}
	a.reports.build(a.styles)
	return a
}

func (a App) Init() tea.Cmd {
	return tea.SetWindowTitle("focusboard")
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.help.Width = msg.Width
		contentHeight := a.height - 4 // header + footer
		a.dashboard.setSize(a.width, contentHeight)
		a.timer.setSize(a.width, contentHeight)
		a.tasks.setSize(a.width, contentHeight)
		a.pomodoro.setSize(a.width, contentHeight)
		a.reports.setSize(a.width, contentHeight)
		a.settings.setSize(a.width, contentHeight)
		a.reports.build(a.styles)
		return a, nil

	case tea.KeyMsg:
		// Export picker
		if a.exportPicking {
			return a.updateExportPicker(msg)
		}

		// If a child view is capturing input (e.g. form), delegate first.
		if a.isFormActive() {
			return a.updateActiveView(msg)
		}

		switch {
		case key.Matches(msg, keys.Export):
			a.exportPicking = true
			a.exportCursor = 0
			return a, nil
		case key.Matches(msg, keys.Quit):
			return a, tea.Quit
		case key.Matches(msg, keys.Help):
			a.showHelp = !a.showHelp
			a.help.ShowAll = a.showHelp
			return a, nil
		case key.Matches(msg, keys.Theme):
			return a, dataCmd(a.store.ToggleTheme())
		case key.Matches(msg, keys.Tab1):
			a.activeView = viewDashboard
			return a, nil
		case key.Matches(msg, keys.Tab2):
			a.activeView = viewTimer
			return a, nil
		case key.Matches(msg, keys.Tab3):
			a.activeView = viewTasks
			return a, nil
		case key.Matches(msg, keys.Tab4):
			a.activeView = viewPomodoro
			return a, nil
		case key.Matches(msg, keys.Tab5):
			a.activeView = viewReports
			a.reports.build(a.styles)
			return a, nil
		case key.Matches(msg, keys.Tab6):
			a.activeView = viewSettings
			return a, nil
		case key.Matches(msg, keys.Tab):
			a.activeView = (a.activeView + 1) % viewState(len(viewNames))
			if a.activeView == viewReports {
				a.reports.build(a.styles)
			}
			return a, nil
		}

	case tickMsg:
		// Each machine drops ticks it does not own.
		var cmds []tea.Cmd
		var cmd tea.Cmd
		a.timer, cmd = a.timer.update(msg)
		cmds = append(cmds, cmd)
		a.pomodoro, cmd = a.pomodoro.update(msg)
		cmds = append(cmds, cmd)
		return a, tea.Batch(cmds...)

	case dataMsg:
		a.applyData(msg.data)
		cmd := a.checkGoal()
		return a, cmd

	case statusMsg:
		a.status = msg.text
		a.statusErr = msg.isError
		return a, nil

	case exportDoneMsg:
		a.status = "Exported to " + msg.path
		a.statusErr = false
		a.exportPicking = false
		return a, nil
	}

	return a.updateActiveView(msg)
}

// applyData hands a freshly saved record to every view.
func (a *App) applyData(d model.ProductivityData) {
	if d.Settings.Theme != a.data.Settings.Theme {
		a.styles = newStyles(d.Settings.Theme)
	}
	a.data = d
	a.dashboard.setData(d)
	a.tasks.setTasks(d.Tasks)
	a.pomodoro.configure(d.Settings)
	a.reports.setData(d)
	a.reports.build(a.styles)
	a.settings.setData(d)
}

func (a App) goalReached() bool {
	o := stats.Compute(a.data.Tasks, a.data.TimeEntries, a.data.Goals, a.now())
	return o.DailyProgress >= 100
}

// checkGoal announces the daily goal once per day when goal notifications
// are on.
func (a *App) checkGoal() tea.Cmd {
	if !a.data.Settings.NotificationPrefs().Goals || !a.goalReached() {
		return nil
	}
	day := a.now().Format(time.DateOnly)
	if a.goalDay == day {
		return nil
	}
	a.goalDay = day
	logging.Debug("tui", "daily goal reached on %s", day)
	return statusCmd(fmt.Sprintf("Daily goal of %gh reached! \a", a.data.Goals.Daily), false)
}

func (a App) updateActiveView(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch a.activeView {
	case viewDashboard, viewTimer:
		a.timer, cmd = a.timer.update(msg)
	case viewTasks:
		a.tasks, cmd = a.tasks.update(msg)
	case viewPomodoro:
		a.pomodoro, cmd = a.pomodoro.update(msg)
	case viewReports:
		a.reports, cmd = a.reports.update(msg)
		a.reports.build(a.styles)
	case viewSettings:
		a.settings, cmd = a.settings.update(msg)
	}
	return a, cmd
}

func (a App) isFormActive() bool {
	switch a.activeView {
	case viewTasks:
		return a.tasks.formActive
	case viewSettings:
		return a.settings.formActive
	}
	return false
}

func (a App) View() string {
	if a.width == 0 {
		return "Loading..."
	}

	st := a.styles
	header := a.renderHeader()
	footer := a.renderFooter()

	var content string
	switch a.activeView {
	case viewDashboard:
		content = a.dashboard.view(st, a.timer.sw)
	case viewTimer:
		content = a.timer.view(st)
	case viewTasks:
		content = a.tasks.view(st)
	case viewPomodoro:
		content = a.pomodoro.view(st)
	case viewReports:
		content = a.reports.view(st)
	case viewSettings:
		content = a.settings.view(st)
	}

	// Calculate available height for content
	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := a.height - headerHeight - footerHeight
	if contentHeight < 1 {
		contentHeight = 1
	}

	// Show export picker overlay
	if a.exportPicking {
		content = a.renderExportPicker()
	}

	content = lipgloss.NewStyle().
		Width(a.width).
		Height(contentHeight).
		Render(content)

	return lipgloss.JoinVertical(lipgloss.Left, header, content, footer)
}

func (a App) renderHeader() string {
	st := a.styles
	var tabs []string
	for i, name := range viewNames {
		if viewState(i) == a.activeView {
			tabs = append(tabs, st.activeTab.Render(name))
		} else {
			tabs = append(tabs, st.inactiveTab.Render(name))
		}
	}

	tabRow := lipgloss.JoinHorizontal(lipgloss.Bottom, tabs...)

	icon := "☀"
	if a.data.Settings.Theme == model.ThemeDark {
		icon = "☾"
	}
	title := lipgloss.NewStyle().Bold(true).Foreground(st.palette.primary).Render("focusboard " + icon)
	gap := a.width - lipgloss.Width(title) - lipgloss.Width(tabRow) - 4
	if gap < 1 {
		gap = 1
	}
	spacer := lipgloss.NewStyle().Width(gap).Render("")

	return st.header.Render(
		lipgloss.JoinHorizontal(lipgloss.Bottom, title, spacer, tabRow),
	)
}

func (a App) renderFooter() string {
	st := a.styles
	helpView := a.help.View(keys)

	status := ""
	if a.status != "" {
		if a.statusErr {
			status = st.errorText.Render(" " + a.status)
		} else {
			status = st.muted.Render(" " + a.status)
		}
	}

	// Running machines in footer
	indicators := ""
	switch a.timer.sw.Status {
	case timer.StatusRunning:
		indicators += st.success.Render(" ● " + timer.FormatClock(a.timer.sw.Elapsed))
	case timer.StatusPaused:
		indicators += st.warning.Render(" ⏸ " + timer.FormatClock(a.timer.sw.Elapsed))
	}
	if p := a.pomodoro.machine; p.Running {
		indicators += st.accent.Render(" 🍅 " + timer.FormatCountdown(p.Remaining))
	}

	left := st.footer.Render(helpView)
	right := indicators + status

	gap := a.width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if gap < 1 {
		gap = 1
	}
	spacer := lipgloss.NewStyle().Width(gap).Render("")

	return lipgloss.JoinHorizontal(lipgloss.Bottom, left, spacer, right)
}

func (a App) renderExportPicker() string {
	st := a.styles
	rows := []string{st.title.Render("Export Format"), ""}
	for i, f := range export.Formats {
		cursor := "  "
		style := st.normalItem
		if i == a.exportCursor {
			cursor = "> "
			style = st.selectedItem
		}
		rows = append(rows, style.Render(cursor+f.String()))
	}
	rows = append(rows, "")
	rows = append(rows, st.muted.Render("  enter: export  esc: cancel"))

	w := a.width - 4
	return st.activePanel.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (a App) updateExportPicker(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Up):
		if a.exportCursor > 0 {
			a.exportCursor--
		}
	case key.Matches(msg, keys.Down):
		if a.exportCursor < len(export.Formats)-1 {
			a.exportCursor++
		}
	case key.Matches(msg, keys.Enter):
		a.exportPicking = false
		return a, a.doExport(export.Formats[a.exportCursor])
	case key.Matches(msg, keys.Back):
		a.exportPicking = false
	}
	return a, nil
}

func (a App) doExport(f export.Format) tea.Cmd {
	d, dir, now := a.data, a.exportDir, a.now()
	return func() tea.Msg {
		path, err := export.Write(f, d, dir, now)
		if err != nil {
			logging.Warn("export", "%s export failed: %v", f, err)
			return statusMsg{text: fmt.Sprintf("%s error: %v", f, err), isError: true}
		}
		return exportDoneMsg{path: path}
	}
}
