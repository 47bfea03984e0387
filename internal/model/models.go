package model

import "time"

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	default:
		return false
	}
}

type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Toggled returns the other theme.
func (t Theme) Toggled() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

type Task struct {
	ID          string     `json:"id" yaml:"id"`
	Title       string     `json:"title" yaml:"title"`
	Completed   bool       `json:"completed" yaml:"completed"`
	Priority    Priority   `json:"priority" yaml:"priority"`
	CreatedAt   time.Time  `json:"createdAt" yaml:"created_at"`
	CompletedAt *time.Time `json:"completedAt,omitempty" yaml:"completed_at,omitempty"`
}

type TimeEntry struct {
	ID        string     `json:"id" yaml:"id"`
	Title     string     `json:"title" yaml:"title"`
	StartTime time.Time  `json:"startTime" yaml:"start_time"`
	EndTime   *time.Time `json:"endTime,omitempty" yaml:"end_time,omitempty"`
	Duration  int        `json:"duration" yaml:"duration"` // minutes
	Category  string     `json:"category" yaml:"category"`
}

// Goals are targets in hours.
type Goals struct {
	Daily  float64 `json:"daily"`
	Weekly float64 `json:"weekly"`
}

type Notifications struct {
	Breaks bool `json:"breaks"`
	Goals  bool `json:"goals"`
}

type Settings struct {
	Theme        Theme `json:"theme"`
	PomodoroTime int   `json:"pomodoroTime"` // minutes
	ShortBreak   int   `json:"shortBreak"`   // minutes
	LongBreak    int   `json:"longBreak"`    // minutes

	// Notifications is nil on records written before the field existed.
	Notifications *Notifications `json:"notifications,omitempty"`
}

// ProductivityData is the whole persisted state. It is always replaced
// wholesale; there are no partial updates.
type ProductivityData struct {
	Tasks       []Task      `json:"tasks"`
	TimeEntries []TimeEntry `json:"timeEntries"`
	Goals       Goals       `json:"goals"`
	Settings    Settings    `json:"settings"`
}
