package model

import (
	"math"
	"strconv"
	"strings"
)

// Bounds offered by the settings dialog.
const (
	MaxPomodoroTime = 60
	MaxShortBreak   = 30
	MaxLongBreak    = 60
	MaxDailyGoal    = 24
	MaxWeeklyGoal   = 168
)

// ParseMinutes coerces user input to whole minutes. Non-numeric input or
// zero yields fallback; the result is clamped to [1, max].
func ParseMinutes(raw string, fallback, max int) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n == 0 {
		n = fallback
	}
	return clampInt(n, 1, max)
}

// ParseHours coerces user input to a goal in hours with the same rules as
// ParseMinutes. NaN and infinities count as non-numeric.
func ParseHours(raw string, fallback, max float64) float64 {
	h, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || h == 0 || math.IsNaN(h) || math.IsInf(h, 0) {
		h = fallback
	}
	if h < 1 {
		return 1
	}
	if h > max {
		return max
	}
	return h
}

func clampInt(n, lo, hi int) int {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}

// SettingsFromInput builds settings from raw form values, keeping theme
// and notifications from base.
func SettingsFromInput(base Settings, pomodoro, short, long string) Settings {
	base.PomodoroTime = ParseMinutes(pomodoro, DefaultPomodoroTime, MaxPomodoroTime)
	base.ShortBreak = ParseMinutes(short, DefaultShortBreak, MaxShortBreak)
	base.LongBreak = ParseMinutes(long, DefaultLongBreak, MaxLongBreak)
	return base
}

func GoalsFromInput(daily, weekly string) Goals {
	return Goals{
		Daily:  ParseHours(daily, DefaultDailyGoal, MaxDailyGoal),
		Weekly: ParseHours(weekly, DefaultWeeklyGoal, MaxWeeklyGoal),
	}
}
