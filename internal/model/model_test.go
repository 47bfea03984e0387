package model

import (
	"encoding/json"
	"math"
	"math/rand"
	"reflect"
	"testing"
	"time"
)

var testNow = time.Date(2026, 10, 16, 9, 30, 0, 0, time.UTC)

func checkCompletedAt(t *testing.T, tasks []Task) {
	t.Helper()
	for _, task := range tasks {
		if task.Completed != (task.CompletedAt != nil) {
			t.Fatalf("task %q: completed=%v but completedAt=%v", task.Title, task.Completed, task.CompletedAt)
		}
	}
}

// ============================================================
// Tasks
// ============================================================

func TestAddTask(t *testing.T) {
	tasks := AddTask(nil, "  Write report ", PriorityHigh, testNow)
	if len(tasks) != 1 {
		t.Fatalf("expected 1 task, got %d", len(tasks))
	}
	got := tasks[0]
	if got.Title != "Write report" {
		t.Fatalf("title = %q, want trimmed", got.Title)
	}
	if got.ID == "" {
		t.Fatal("expected generated ID")
	}
	if got.Completed || got.CompletedAt != nil {
		t.Fatal("new task should be open")
	}
	if got.Priority != PriorityHigh {
		t.Fatalf("priority = %q", got.Priority)
	}
	if !got.CreatedAt.Equal(testNow) {
		t.Fatalf("createdAt = %v", got.CreatedAt)
	}
}

func TestAddTaskBlankTitleIgnored(t *testing.T) {
	tasks := AddTask([]Task{}, "   ", PriorityLow, testNow)
	if len(tasks) != 0 {
		t.Fatalf("blank title should be ignored, got %d tasks", len(tasks))
	}
}

func TestAddTaskInvalidPriority(t *testing.T) {
	tasks := AddTask(nil, "x", Priority("urgent"), testNow)
	if tasks[0].Priority != PriorityMedium {
		t.Fatalf("priority = %q, want medium", tasks[0].Priority)
	}
}

func TestAddTaskUniqueIDs(t *testing.T) {
	var tasks []Task
	for i := 0; i < 50; i++ {
		tasks = AddTask(tasks, "t", PriorityLow, testNow)
	}
	seen := make(map[string]bool)
	for _, task := range tasks {
		if seen[task.ID] {
			t.Fatalf("duplicate id %s", task.ID)
		}
		seen[task.ID] = true
	}
}

func TestAddTaskDoesNotAliasInput(t *testing.T) {
	base := make([]Task, 1, 4)
	base[0] = Task{ID: "a", Title: "a"}
	one := AddTask(base, "b", PriorityLow, testNow)
	two := AddTask(base, "c", PriorityLow, testNow)
	if one[1].Title != "b" || two[1].Title != "c" {
		t.Fatalf("appends aliased: %q %q", one[1].Title, two[1].Title)
	}
}

func TestToggleTask(t *testing.T) {
	tasks := AddTask(nil, "a", PriorityMedium, testNow)
	id := tasks[0].ID

	later := testNow.Add(time.Hour)
	tasks = ToggleTask(tasks, id, later)
	if !tasks[0].Completed {
		t.Fatal("toggle should complete")
	}
	if tasks[0].CompletedAt == nil || !tasks[0].CompletedAt.Equal(later) {
		t.Fatalf("completedAt = %v, want %v", tasks[0].CompletedAt, later)
	}

	tasks = ToggleTask(tasks, id, later)
	if tasks[0].Completed || tasks[0].CompletedAt != nil {
		t.Fatal("second toggle should reopen and clear completedAt")
	}
}

func TestToggleTaskUnknownID(t *testing.T) {
	tasks := AddTask(nil, "a", PriorityMedium, testNow)
	out := ToggleTask(tasks, "missing", testNow)
	if !reflect.DeepEqual(tasks, out) {
		t.Fatal("unknown id should leave tasks unchanged")
	}
}

func TestToggleTaskDoesNotMutateInput(t *testing.T) {
	tasks := AddTask(nil, "a", PriorityMedium, testNow)
	ToggleTask(tasks, tasks[0].ID, testNow)
	if tasks[0].Completed {
		t.Fatal("input slice was mutated")
	}
}

func TestDeleteTask(t *testing.T) {
	tasks := AddTask(nil, "a", PriorityLow, testNow)
	tasks = AddTask(tasks, "b", PriorityLow, testNow)
	tasks = DeleteTask(tasks, tasks[0].ID)
	if len(tasks) != 1 || tasks[0].Title != "b" {
		t.Fatalf("unexpected tasks after delete: %+v", tasks)
	}
}

func TestCompletedAtInvariantRandomSequences(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	var tasks []Task
	now := testNow
	for step := 0; step < 500; step++ {
		now = now.Add(time.Minute)
		switch op := rng.Intn(3); {
		case op == 0 || len(tasks) == 0:
			tasks = AddTask(tasks, "task", PriorityLow, now)
		case op == 1:
			tasks = ToggleTask(tasks, tasks[rng.Intn(len(tasks))].ID, now)
		default:
			tasks = DeleteTask(tasks, tasks[rng.Intn(len(tasks))].ID)
		}
		checkCompletedAt(t, tasks)
	}
}

func TestCountCompleted(t *testing.T) {
	tasks := AddTask(nil, "a", PriorityLow, testNow)
	tasks = AddTask(tasks, "b", PriorityLow, testNow)
	tasks = ToggleTask(tasks, tasks[1].ID, testNow)
	done, total := CountCompleted(tasks)
	if done != 1 || total != 2 {
		t.Fatalf("got %d/%d, want 1/2", done, total)
	}
}

// ============================================================
// Time entries
// ============================================================

func TestNewFocusEntry(t *testing.T) {
	e := NewFocusEntry(1, testNow)
	if e.Title != "Focus Session" || e.Category != "work" {
		t.Fatalf("unexpected entry: %+v", e)
	}
	if e.Duration != 1 || !e.StartTime.Equal(testNow) || e.EndTime != nil {
		t.Fatalf("unexpected entry: %+v", e)
	}
	if e.ID == "" {
		t.Fatal("expected generated ID")
	}
}

func TestNewFocusEntryNegativeDuration(t *testing.T) {
	if d := NewFocusEntry(-5, testNow).Duration; d != 0 {
		t.Fatalf("duration = %d, want 0", d)
	}
}

func TestTotalMinutes(t *testing.T) {
	entries := []TimeEntry{
		{StartTime: testNow.Add(-2 * time.Hour), Duration: 30},
		{StartTime: testNow, Duration: 10},
		{StartTime: testNow.Add(time.Minute), Duration: 5},
	}
	if got := TotalMinutes(entries, testNow); got != 15 {
		t.Fatalf("TotalMinutes = %d, want 15", got)
	}
}

// ============================================================
// Defaults and backfill
// ============================================================

func TestDefault(t *testing.T) {
	d := Default()
	if d.Goals.Daily != 8 || d.Goals.Weekly != 40 {
		t.Fatalf("goals = %+v", d.Goals)
	}
	s := d.Settings
	if s.Theme != ThemeLight || s.PomodoroTime != 25 || s.ShortBreak != 5 || s.LongBreak != 15 {
		t.Fatalf("settings = %+v", s)
	}
	if s.Notifications == nil || !s.Notifications.Breaks || !s.Notifications.Goals {
		t.Fatalf("notifications = %+v", s.Notifications)
	}
	if d.Tasks == nil || d.TimeEntries == nil {
		t.Fatal("default slices should be empty, not nil")
	}
}

func TestBackfillLegacyRecord(t *testing.T) {
	legacy := `{"tasks":[],"timeEntries":[],"goals":{"daily":6,"weekly":30},
		"settings":{"theme":"dark","pomodoroTime":50,"shortBreak":10,"longBreak":20}}`
	var d ProductivityData
	if err := json.Unmarshal([]byte(legacy), &d); err != nil {
		t.Fatal(err)
	}
	if d.Settings.Notifications != nil {
		t.Fatal("legacy record should decode without notifications")
	}

	d = Backfill(d)
	n := d.Settings.Notifications
	if n == nil || !n.Breaks || !n.Goals {
		t.Fatalf("notifications not backfilled: %+v", n)
	}
	if d.Settings.Theme != ThemeDark || d.Settings.PomodoroTime != 50 || d.Goals.Daily != 6 {
		t.Fatalf("backfill changed existing fields: %+v", d)
	}
}

func TestBackfillKeepsExistingNotifications(t *testing.T) {
	d := Default()
	d.Settings.Notifications = &Notifications{Breaks: false, Goals: true}
	d = Backfill(d)
	if d.Settings.Notifications.Breaks {
		t.Fatal("backfill overwrote an existing value")
	}
}

func TestBackfillIdempotent(t *testing.T) {
	d := ProductivityData{Settings: Settings{Theme: ThemeDark, PomodoroTime: 25}}
	once := Backfill(d)
	twice := Backfill(once)
	if !reflect.DeepEqual(once, twice) {
		t.Fatalf("backfill not idempotent:\n%+v\n%+v", once, twice)
	}
	full := Default()
	if !reflect.DeepEqual(Backfill(full), full) {
		t.Fatal("backfilling a complete record should be a no-op")
	}
}

func TestBackfillMissingDurations(t *testing.T) {
	d := Backfill(ProductivityData{Settings: Settings{PomodoroTime: 40, ShortBreak: -1}})
	s := d.Settings
	if s.PomodoroTime != 40 || s.ShortBreak != 5 || s.LongBreak != 15 {
		t.Fatalf("durations = %d/%d/%d, want 40/5/15", s.PomodoroTime, s.ShortBreak, s.LongBreak)
	}
}

func TestBackfillInvalidGoals(t *testing.T) {
	tests := []struct {
		name  string
		goals Goals
		want  Goals
	}{
		{"empty", Goals{}, Goals{Daily: 8, Weekly: 40}},
		{"negative", Goals{Daily: -2, Weekly: 30}, Goals{Daily: 8, Weekly: 30}},
		{"nan", Goals{Daily: math.NaN(), Weekly: math.Inf(1)}, Goals{Daily: 8, Weekly: 40}},
		{"valid", Goals{Daily: 6, Weekly: 30}, Goals{Daily: 6, Weekly: 30}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Backfill(ProductivityData{Goals: tt.goals})
			if d.Goals != tt.want {
				t.Fatalf("goals = %+v, want %+v", d.Goals, tt.want)
			}
		})
	}
}

func TestBackfillCompletionStamp(t *testing.T) {
	created := time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC)
	stamp := created.Add(time.Hour)
	in := []Task{
		{ID: "done", Completed: true, CreatedAt: created, CompletedAt: &stamp},
		{ID: "stale", Completed: false, CreatedAt: created, CompletedAt: &stamp},
		{ID: "unstamped", Completed: true, CreatedAt: created},
	}
	d := Backfill(ProductivityData{Tasks: in})

	for _, task := range d.Tasks {
		if task.Completed != (task.CompletedAt != nil) {
			t.Errorf("task %s: completed=%v completedAt=%v", task.ID, task.Completed, task.CompletedAt)
		}
	}
	if !d.Tasks[0].CompletedAt.Equal(stamp) {
		t.Errorf("existing stamp changed: %v", d.Tasks[0].CompletedAt)
	}
	if !d.Tasks[2].CompletedAt.Equal(created) {
		t.Errorf("missing stamp should come from createdAt, got %v", d.Tasks[2].CompletedAt)
	}
	if in[1].CompletedAt == nil {
		t.Error("backfill mutated the caller's tasks")
	}
	if again := Backfill(d); !reflect.DeepEqual(again, d) {
		t.Fatalf("backfill not idempotent:\n%+v\n%+v", d, again)
	}
}

func TestBackfillUnknownTheme(t *testing.T) {
	d := Backfill(ProductivityData{Settings: Settings{Theme: "solarized"}})
	if d.Settings.Theme != ThemeLight {
		t.Fatalf("theme = %q, want light", d.Settings.Theme)
	}
}

func TestThemeToggled(t *testing.T) {
	if ThemeLight.Toggled() != ThemeDark || ThemeDark.Toggled() != ThemeLight {
		t.Fatal("toggle should flip between light and dark")
	}
}

func TestNotificationPrefs(t *testing.T) {
	var s Settings
	if p := s.NotificationPrefs(); !p.Breaks || !p.Goals {
		t.Fatalf("missing prefs should default on, got %+v", p)
	}
}

// ============================================================
// Input coercion
// ============================================================

func TestParseMinutes(t *testing.T) {
	tests := []struct {
		raw  string
		want int
	}{
		{"30", 30},
		{" 45 ", 45},
		{"abc", 25},
		{"", 25},
		{"0", 25},
		{"-3", 1},
		{"90", 60},
		{"12.5", 25},
	}
	for _, tt := range tests {
		if got := ParseMinutes(tt.raw, 25, 60); got != tt.want {
			t.Errorf("ParseMinutes(%q) = %d, want %d", tt.raw, got, tt.want)
		}
	}
}

func TestParseHours(t *testing.T) {
	tests := []struct {
		raw  string
		want float64
	}{
		{"7.5", 7.5},
		{"nope", 8},
		{"0", 8},
		{"0.5", 1},
		{"30", 24},
		{"NaN", 8},
		{"nan", 8},
		{"Inf", 8},
		{"-Inf", 8},
		{"+infinity", 8},
	}
	for _, tt := range tests {
		if got := ParseHours(tt.raw, 8, 24); got != tt.want {
			t.Errorf("ParseHours(%q) = %v, want %v", tt.raw, got, tt.want)
		}
	}
}

func TestSettingsFromInput(t *testing.T) {
	base := DefaultSettings()
	base.Theme = ThemeDark
	s := SettingsFromInput(base, "x", "10", "99")
	if s.PomodoroTime != 25 || s.ShortBreak != 10 || s.LongBreak != 60 {
		t.Fatalf("unexpected settings: %+v", s)
	}
	if s.Theme != ThemeDark || s.Notifications == nil {
		t.Fatal("theme and notifications should carry over")
	}
}

func TestGoalsFromInput(t *testing.T) {
	g := GoalsFromInput("", "200")
	if g.Daily != 8 || g.Weekly != 168 {
		t.Fatalf("goals = %+v", g)
	}

	g = GoalsFromInput("NaN", "inf")
	if g.Daily != DefaultDailyGoal || g.Weekly != DefaultWeeklyGoal {
		t.Fatalf("non-finite input should fall back to 8/40, got %+v", g)
	}
	if _, err := json.Marshal(g); err != nil {
		t.Fatalf("goals should stay encodable: %v", err)
	}
}
