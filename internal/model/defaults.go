package model

import "math"

const (
	DefaultDailyGoal    = 8.0
	DefaultWeeklyGoal   = 40.0
	DefaultPomodoroTime = 25
	DefaultShortBreak   = 5
	DefaultLongBreak    = 15
)

// DefaultNotifications is injected into records that predate the field.
func DefaultNotifications() Notifications {
	return Notifications{Breaks: true, Goals: true}
}

func DefaultSettings() Settings {
	n := DefaultNotifications()
	return Settings{
		Theme:         ThemeLight,
		PomodoroTime:  DefaultPomodoroTime,
		ShortBreak:    DefaultShortBreak,
		LongBreak:     DefaultLongBreak,
		Notifications: &n,
	}
}

// Default returns the first-run record.
func Default() ProductivityData {
	return ProductivityData{
		Tasks:       []Task{},
		TimeEntries: []TimeEntry{},
		Goals:       Goals{Daily: DefaultDailyGoal, Weekly: DefaultWeeklyGoal},
		Settings:    DefaultSettings(),
	}
}

// Backfill fills fields missing from older records. It never rejects a
// record and applying it twice gives the same result as applying it once.
func Backfill(d ProductivityData) ProductivityData {
	if d.Tasks == nil {
		d.Tasks = []Task{}
	}
	d.Tasks = normalizeCompletion(d.Tasks)
	if d.TimeEntries == nil {
		d.TimeEntries = []TimeEntry{}
	}
	if !validGoal(d.Goals.Daily) {
		d.Goals.Daily = DefaultDailyGoal
	}
	if !validGoal(d.Goals.Weekly) {
		d.Goals.Weekly = DefaultWeeklyGoal
	}
	if d.Settings.Notifications == nil {
		n := DefaultNotifications()
		d.Settings.Notifications = &n
	} else {
		// Copy so the result never aliases the caller's record.
		n := *d.Settings.Notifications
		d.Settings.Notifications = &n
	}
	if d.Settings.Theme != ThemeDark {
		d.Settings.Theme = ThemeLight
	}
	if d.Settings.PomodoroTime <= 0 {
		d.Settings.PomodoroTime = DefaultPomodoroTime
	}
	if d.Settings.ShortBreak <= 0 {
		d.Settings.ShortBreak = DefaultShortBreak
	}
	if d.Settings.LongBreak <= 0 {
		d.Settings.LongBreak = DefaultLongBreak
	}
	return d
}

func validGoal(h float64) bool {
	return h > 0 && !math.IsInf(h, 0)
}

// normalizeCompletion keeps completedAt present exactly when a task is
// completed. A completed task missing its stamp borrows createdAt.
func normalizeCompletion(tasks []Task) []Task {
	out := make([]Task, len(tasks))
	copy(out, tasks)
	for i := range out {
		switch {
		case !out[i].Completed:
			out[i].CompletedAt = nil
		case out[i].CompletedAt == nil:
			t := out[i].CreatedAt
			out[i].CompletedAt = &t
		}
	}
	return out
}

// NotificationPrefs returns the notification switches, treating a missing
// value as the default.
func (s Settings) NotificationPrefs() Notifications {
	if s.Notifications == nil {
		return DefaultNotifications()
	}
	return *s.Notifications
}
