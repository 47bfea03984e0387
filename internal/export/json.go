package export

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/sadopc/focusboard/internal/model"
)

type document struct {
	ExportedAt   string     `json:"exported_at" yaml:"exported_at"`
	Goals        goalsDoc   `json:"goals" yaml:"goals"`
	TaskCount    int        `json:"task_count" yaml:"task_count"`
	EntryCount   int        `json:"entry_count" yaml:"entry_count"`
	TotalMinutes int        `json:"total_minutes" yaml:"total_minutes"`
	Tasks        []taskDoc  `json:"tasks" yaml:"tasks"`
	Entries      []entryDoc `json:"entries" yaml:"entries"`
}

type goalsDoc struct {
	DailyHours  float64 `json:"daily_hours" yaml:"daily_hours"`
	WeeklyHours float64 `json:"weekly_hours" yaml:"weekly_hours"`
}

type taskDoc struct {
	ID          string `json:"id" yaml:"id"`
	Title       string `json:"title" yaml:"title"`
	Priority    string `json:"priority" yaml:"priority"`
	Completed   bool   `json:"completed" yaml:"completed"`
	CreatedAt   string `json:"created_at" yaml:"created_at"`
	CompletedAt string `json:"completed_at,omitempty" yaml:"completed_at,omitempty"`
}

type entryDoc struct {
	ID          string `json:"id" yaml:"id"`
	Title       string `json:"title" yaml:"title"`
	Category    string `json:"category" yaml:"category"`
	StartTime   string `json:"start_time" yaml:"start_time"`
	EndTime     string `json:"end_time,omitempty" yaml:"end_time,omitempty"`
	DurationMin int    `json:"duration_minutes" yaml:"duration_minutes"`
	Duration    string `json:"duration" yaml:"duration"`
}

func buildDocument(d model.ProductivityData, now time.Time) document {
	doc := document{
		ExportedAt: now.UTC().Format(time.RFC3339),
		Goals:      goalsDoc{DailyHours: d.Goals.Daily, WeeklyHours: d.Goals.Weekly},
		TaskCount:  len(d.Tasks),
		EntryCount: len(d.TimeEntries),
	}

	for _, t := range d.Tasks {
		completedAt := ""
		if t.CompletedAt != nil {
			completedAt = t.CompletedAt.Local().Format(time.RFC3339)
		}
		doc.Tasks = append(doc.Tasks, taskDoc{
			ID:          t.ID,
			Title:       t.Title,
			Priority:    string(t.Priority),
			Completed:   t.Completed,
			CreatedAt:   t.CreatedAt.Local().Format(time.RFC3339),
			CompletedAt: completedAt,
		})
	}

	for _, e := range d.TimeEntries {
		endStr := ""
		if e.EndTime != nil {
			endStr = e.EndTime.Local().Format(time.RFC3339)
		}
		doc.TotalMinutes += e.Duration
		doc.Entries = append(doc.Entries, entryDoc{
			ID:          e.ID,
			Title:       e.Title,
			Category:    e.Category,
			StartTime:   e.StartTime.Local().Format(time.RFC3339),
			EndTime:     endStr,
			DurationMin: e.Duration,
			Duration:    formatMinutes(e.Duration),
		})
	}
	return doc
}

// ToJSON writes d as an indented document stamped with now.
func ToJSON(d model.ProductivityData, path string, now time.Time) error {
	data, err := json.MarshalIndent(buildDocument(d, now), "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write json file: %w", err)
	}
	return nil
}
