package model

import "time"

const (
	FocusSessionTitle = "Focus Session"
	CategoryWork      = "work"
)

// NewFocusEntry builds the entry committed when a stopwatch minute elapses.
// Negative durations are stored as zero.
func NewFocusEntry(minutes int, now time.Time) TimeEntry {
	if minutes < 0 {
		minutes = 0
	}
	return TimeEntry{
		ID:        NewID(),
		Title:     FocusSessionTitle,
		StartTime: now,
		Duration:  minutes,
		Category:  CategoryWork,
	}
}

// TotalMinutes sums the duration of entries starting at or after since.
func TotalMinutes(entries []TimeEntry, since time.Time) int {
	total := 0
	for _, e := range entries {
		if !e.StartTime.Before(since) {
			total += e.Duration
		}
	}
	return total
}
