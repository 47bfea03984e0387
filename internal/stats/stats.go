// Package stats derives today/week focus hours and goal progress from the
// productivity record. Everything here is pure and deterministic given now.
package stats

import (
	"math"
	"time"

	"github.com/sadopc/focusboard/internal/model"
)

// Overview is what the dashboard renders.
type Overview struct {
	TodayFocusHours     float64
	WeekFocusHours      float64
	TodayTasksCreated   int
	TodayTasksCompleted int

	DailyProgress  float64 // percent of goals.daily, clamped to [0, 100]
	WeeklyProgress float64 // percent of goals.weekly, clamped to [0, 100]
	TaskProgress   float64 // percent of today's tasks completed
}

// DayStart returns local midnight of now.
func DayStart(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}

// WeekStart returns local midnight of the most recent Sunday on or before now.
func WeekStart(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month(), now.Day()-int(now.Weekday()), 0, 0, 0, 0, now.Location())
}

func Compute(tasks []model.Task, entries []model.TimeEntry, goals model.Goals, now time.Time) Overview {
	day := DayStart(now)
	week := WeekStart(now)

	var o Overview
	o.TodayFocusHours = float64(model.TotalMinutes(entries, day)) / 60
	o.WeekFocusHours = float64(model.TotalMinutes(entries, week)) / 60

	for _, t := range tasks {
		if t.CreatedAt.Before(day) {
			continue
		}
		o.TodayTasksCreated++
		if t.Completed {
			o.TodayTasksCompleted++
		}
	}

	o.DailyProgress = Progress(o.TodayFocusHours, goals.Daily)
	o.WeeklyProgress = Progress(o.WeekFocusHours, goals.Weekly)
	o.TaskProgress = Progress(float64(o.TodayTasksCompleted), float64(o.TodayTasksCreated))
	return o
}

// Progress returns min(100, 100*value/target). A zero target yields 0 when
// value is also zero and 100 otherwise. A NaN target yields 0.
func Progress(value, target float64) float64 {
	if math.IsNaN(value) || value <= 0 {
		return 0
	}
	if math.IsNaN(target) {
		return 0
	}
	if target <= 0 {
		return 100
	}
	return math.Min(100, 100*value/target)
}

// DayTotal is the focus time logged on one calendar day.
type DayTotal struct {
	Day     time.Time
	Minutes int
}

// Hours returns the total in hours.
func (d DayTotal) Hours() float64 {
	return float64(d.Minutes) / 60
}

// DailyTotals buckets entries into days consecutive days starting at the
// local midnight of from.
func DailyTotals(entries []model.TimeEntry, from time.Time, days int) []DayTotal {
	if days <= 0 {
		return nil
	}
	start := DayStart(from)
	out := make([]DayTotal, days)
	for i := range out {
		out[i].Day = start.AddDate(0, 0, i)
	}
	end := start.AddDate(0, 0, days)
	for _, e := range entries {
		st := e.StartTime.In(start.Location())
		if st.Before(start) || !st.Before(end) {
			continue
		}
		idx := dayIndex(start, st)
		if idx >= 0 && idx < days {
			out[idx].Minutes += e.Duration
		}
	}
	return out
}

// dayIndex counts calendar days rather than 24h blocks so DST shifts do not
// move entries into the wrong bucket.
func dayIndex(start, t time.Time) int {
	d := DayStart(t)
	i := 0
	for cur := start; cur.Before(d); cur = cur.AddDate(0, 0, 1) {
		i++
	}
	return i
}

// CurrentWeek returns the seven daily totals of the week containing now.
func CurrentWeek(entries []model.TimeEntry, now time.Time) []DayTotal {
	return DailyTotals(entries, WeekStart(now), 7)
}
