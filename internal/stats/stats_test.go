package stats

import (
	"math"
	"testing"
	"time"

	"github.com/sadopc/focusboard/internal/model"
)

// Thursday.
var now = time.Date(2026, 10, 15, 14, 0, 0, 0, time.UTC)

func entry(start time.Time, minutes int) model.TimeEntry {
	return model.TimeEntry{ID: start.String(), Title: "Focus Session", StartTime: start, Duration: minutes, Category: "work"}
}

// ============================================================
// Boundaries
// ============================================================

func TestDayStart(t *testing.T) {
	got := DayStart(now)
	want := time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("DayStart = %v, want %v", got, want)
	}
}

func TestWeekStart(t *testing.T) {
	tests := []struct {
		now  time.Time
		want time.Time
	}{
		{now, time.Date(2026, 10, 11, 0, 0, 0, 0, time.UTC)},
		// Sunday is its own week start.
		{time.Date(2026, 10, 11, 23, 59, 0, 0, time.UTC), time.Date(2026, 10, 11, 0, 0, 0, 0, time.UTC)},
		// Saturday.
		{time.Date(2026, 10, 17, 1, 0, 0, 0, time.UTC), time.Date(2026, 10, 11, 0, 0, 0, 0, time.UTC)},
		// Week crossing a month boundary.
		{time.Date(2026, 11, 2, 8, 0, 0, 0, time.UTC), time.Date(2026, 11, 1, 0, 0, 0, 0, time.UTC)},
		{time.Date(2026, 10, 1, 8, 0, 0, 0, time.UTC), time.Date(2026, 9, 27, 0, 0, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		if got := WeekStart(tt.now); !got.Equal(tt.want) {
			t.Errorf("WeekStart(%v) = %v, want %v", tt.now, got, tt.want)
		}
	}
}

func TestBoundariesUseLocation(t *testing.T) {
	loc := time.FixedZone("UTC+9", 9*3600)
	n := time.Date(2026, 10, 15, 1, 0, 0, 0, loc)
	if got := DayStart(n); got.Location() != loc || got.Hour() != 0 || got.Day() != 15 {
		t.Fatalf("DayStart in zone = %v", got)
	}
}

// ============================================================
// Compute
// ============================================================

func TestComputeFocusHours(t *testing.T) {
	entries := []model.TimeEntry{
		entry(now.Add(-time.Hour), 120),              // today
		entry(DayStart(now), 60),                     // exactly midnight counts as today
		entry(DayStart(now).Add(-time.Minute), 30),   // yesterday, same week
		entry(WeekStart(now), 30),                    // sunday midnight
		entry(WeekStart(now).Add(-time.Second), 600), // last week
	}
	o := Compute(nil, entries, model.Goals{Daily: 8, Weekly: 40}, now)
	if o.TodayFocusHours != 3 {
		t.Fatalf("TodayFocusHours = %v, want 3", o.TodayFocusHours)
	}
	if o.WeekFocusHours != 4 {
		t.Fatalf("WeekFocusHours = %v, want 4", o.WeekFocusHours)
	}
	if o.WeeklyProgress != 10 {
		t.Fatalf("WeeklyProgress = %v, want 10", o.WeeklyProgress)
	}
}

func TestComputeDailyProgressHalf(t *testing.T) {
	entries := []model.TimeEntry{entry(now, 240)}
	o := Compute(nil, entries, model.Goals{Daily: 8, Weekly: 40}, now)
	if o.TodayFocusHours != 4 || o.DailyProgress != 50 {
		t.Fatalf("hours=%v progress=%v, want 4 and 50", o.TodayFocusHours, o.DailyProgress)
	}
}

func TestComputeDailyProgressClamps(t *testing.T) {
	entries := []model.TimeEntry{entry(now, 600)}
	o := Compute(nil, entries, model.Goals{Daily: 8, Weekly: 40}, now)
	if o.DailyProgress != 100 {
		t.Fatalf("DailyProgress = %v, want 100", o.DailyProgress)
	}
}

func TestComputeTasks(t *testing.T) {
	done := now
	tasks := []model.Task{
		{ID: "1", CreatedAt: now.Add(-time.Hour), Completed: true, CompletedAt: &done},
		{ID: "2", CreatedAt: now.Add(-2 * time.Hour)},
		{ID: "3", CreatedAt: DayStart(now).Add(-time.Hour), Completed: true, CompletedAt: &done},
	}
	o := Compute(tasks, nil, model.Goals{Daily: 8, Weekly: 40}, now)
	if o.TodayTasksCreated != 2 || o.TodayTasksCompleted != 1 {
		t.Fatalf("created=%d completed=%d, want 2 and 1", o.TodayTasksCreated, o.TodayTasksCompleted)
	}
	if o.TaskProgress != 50 {
		t.Fatalf("TaskProgress = %v, want 50", o.TaskProgress)
	}
}

func TestComputeNoTasksToday(t *testing.T) {
	o := Compute(nil, nil, model.Goals{Daily: 8, Weekly: 40}, now)
	if o.TaskProgress != 0 || math.IsNaN(o.TaskProgress) {
		t.Fatalf("TaskProgress = %v, want 0", o.TaskProgress)
	}
}

// ============================================================
// Progress
// ============================================================

func TestProgress(t *testing.T) {
	tests := []struct {
		value, target, want float64
	}{
		{4, 8, 50},
		{10, 8, 100},
		{0, 8, 0},
		{0, 0, 0},
		{3, 0, 100},
		{-1, 8, 0},
		{1, -5, 100},
		{4, math.NaN(), 0},
		{math.NaN(), 8, 0},
	}
	for _, tt := range tests {
		if got := Progress(tt.value, tt.target); got != tt.want {
			t.Errorf("Progress(%v, %v) = %v, want %v", tt.value, tt.target, got, tt.want)
		}
	}
}

// ============================================================
// Daily totals
// ============================================================

func TestCurrentWeek(t *testing.T) {
	entries := []model.TimeEntry{
		entry(WeekStart(now).Add(2*time.Hour), 90), // sunday
		entry(now, 30),                              // thursday
		entry(now.Add(-time.Hour), 15),              // thursday
		entry(WeekStart(now).AddDate(0, 0, 7), 999), // next sunday
		entry(WeekStart(now).Add(-time.Hour), 999),  // last saturday
	}
	week := CurrentWeek(entries, now)
	if len(week) != 7 {
		t.Fatalf("expected 7 days, got %d", len(week))
	}
	if week[0].Minutes != 90 {
		t.Fatalf("sunday = %d, want 90", week[0].Minutes)
	}
	if week[4].Minutes != 45 {
		t.Fatalf("thursday = %d, want 45", week[4].Minutes)
	}
	if week[0].Day.Weekday() != time.Sunday || week[6].Day.Weekday() != time.Saturday {
		t.Fatalf("unexpected day range %v..%v", week[0].Day, week[6].Day)
	}
	total := 0
	for _, d := range week {
		total += d.Minutes
	}
	if total != 135 {
		t.Fatalf("week total = %d, want 135", total)
	}
	if week[0].Hours() != 1.5 {
		t.Fatalf("Hours = %v, want 1.5", week[0].Hours())
	}
}

func TestDailyTotalsZeroDays(t *testing.T) {
	if got := DailyTotals(nil, now, 0); got != nil {
		t.Fatalf("expected nil, got %v", got)
	}
}
