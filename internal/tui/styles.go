package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/sadopc/focusboard/internal/model"
)

type palette struct {
	primary   lipgloss.Color
	secondary lipgloss.Color
	accent    lipgloss.Color
	muted     lipgloss.Color
	success   lipgloss.Color
	warning   lipgloss.Color
	errorc    lipgloss.Color
	fg        lipgloss.Color
	subtle    lipgloss.Color
	highlight lipgloss.Color
}

var darkPalette = palette{
	primary:   lipgloss.Color("#6C63FF"),
	secondary: lipgloss.Color("#2EC4B6"),
	accent:    lipgloss.Color("#FF6B6B"),
	muted:     lipgloss.Color("#666666"),
	success:   lipgloss.Color("#2ECC71"),
	warning:   lipgloss.Color("#F39C12"),
	errorc:    lipgloss.Color("#E74C3C"),
	fg:        lipgloss.Color("#C0CAF5"),
	subtle:    lipgloss.Color("#414868"),
	highlight: lipgloss.Color("#7AA2F7"),
}

var lightPalette = palette{
	primary:   lipgloss.Color("#7C3AED"),
	secondary: lipgloss.Color("#0E9488"),
	accent:    lipgloss.Color("#DB2777"),
	muted:     lipgloss.Color("#6B7280"),
	success:   lipgloss.Color("#16A34A"),
	warning:   lipgloss.Color("#D97706"),
	errorc:    lipgloss.Color("#DC2626"),
	fg:        lipgloss.Color("#1F2937"),
	subtle:    lipgloss.Color("#D1D5DB"),
	highlight: lipgloss.Color("#2563EB"),
}

// styles is built from the current theme and handed to every view.
type styles struct {
	theme   model.Theme
	palette palette

	activeTab   lipgloss.Style
	inactiveTab lipgloss.Style

	panel       lipgloss.Style
	activePanel lipgloss.Style

	timer        lipgloss.Style
	timerRunning lipgloss.Style
	timerPaused  lipgloss.Style

	title     lipgloss.Style
	subtitle  lipgloss.Style
	accent    lipgloss.Style
	success   lipgloss.Style
	warning   lipgloss.Style
	errorText lipgloss.Style
	muted     lipgloss.Style
	highlight lipgloss.Style

	header lipgloss.Style
	footer lipgloss.Style

	selectedItem lipgloss.Style
	normalItem   lipgloss.Style
	doneItem     lipgloss.Style
}

func newStyles(theme model.Theme) styles {
	c := lightPalette
	if theme == model.ThemeDark {
		c = darkPalette
	}

	return styles{
		theme:   theme,
		palette: c,

		activeTab: lipgloss.NewStyle().
			Bold(true).
			Foreground(c.primary).
			Border(lipgloss.NormalBorder(), false, false, true, false).
			BorderForeground(c.primary).
			Padding(0, 2),
		inactiveTab: lipgloss.NewStyle().
			Foreground(c.muted).
			Padding(0, 2),

		panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(c.subtle).
			Padding(1, 2),
		activePanel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(c.primary).
			Padding(1, 2),

		timer: lipgloss.NewStyle().
			Bold(true).
			Foreground(c.primary).
			Align(lipgloss.Center),
		timerRunning: lipgloss.NewStyle().
			Bold(true).
			Foreground(c.success).
			Align(lipgloss.Center),
		timerPaused: lipgloss.NewStyle().
			Bold(true).
			Foreground(c.warning).
			Align(lipgloss.Center),

		title:     lipgloss.NewStyle().Bold(true).Foreground(c.fg),
		subtitle:  lipgloss.NewStyle().Foreground(c.muted),
		accent:    lipgloss.NewStyle().Foreground(c.accent),
		success:   lipgloss.NewStyle().Foreground(c.success),
		warning:   lipgloss.NewStyle().Foreground(c.warning),
		errorText: lipgloss.NewStyle().Foreground(c.errorc),
		muted:     lipgloss.NewStyle().Foreground(c.muted),
		highlight: lipgloss.NewStyle().Foreground(c.highlight),

		header: lipgloss.NewStyle().Padding(0, 1),
		footer: lipgloss.NewStyle().Foreground(c.muted).Padding(0, 1),

		selectedItem: lipgloss.NewStyle().Foreground(c.primary).Bold(true),
		normalItem:   lipgloss.NewStyle().Foreground(c.fg),
		doneItem:     lipgloss.NewStyle().Foreground(c.muted).Strikethrough(true),
	}
}

func (s styles) priority(p model.Priority) lipgloss.Style {
	switch p {
	case model.PriorityHigh:
		return s.errorText
	case model.PriorityLow:
		return s.success
	default:
		return s.warning
	}
}

// glamourStyle is the glamour standard style matching the theme.
func (s styles) glamourStyle() string {
	if s.theme == model.ThemeDark {
		return "dark"
	}
	return "light"
}
