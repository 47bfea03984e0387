package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/sadopc/focusboard/internal/model"
)

// ToCSV writes one row per time entry.
func ToCSV(entries []model.TimeEntry, path string) error {
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		endStr := ""
		if e.EndTime != nil {
			endStr = e.EndTime.Local().Format(time.RFC3339)
		}
		row := []string{
			e.ID,
			e.Title,
			e.Category,
			e.StartTime.Local().Format(time.RFC3339),
			endStr,
			strconv.Itoa(e.Duration),
			formatMinutes(e.Duration),
		}
		rows = append(rows, row)
	}
	return writeCSV(path, []string{"ID", "Title", "Category", "Start", "End", "Duration (min)", "Duration"}, rows)
}

// TasksToCSV writes one row per task.
func TasksToCSV(tasks []model.Task, path string) error {
	rows := make([][]string, 0, len(tasks))
	for _, t := range tasks {
		completedAt := ""
		if t.CompletedAt != nil {
			completedAt = t.CompletedAt.Local().Format(time.RFC3339)
		}
		rows = append(rows, []string{
			t.ID,
			t.Title,
			string(t.Priority),
			strconv.FormatBool(t.Completed),
			t.CreatedAt.Local().Format(time.RFC3339),
			completedAt,
		})
	}
	return writeCSV(path, []string{"ID", "Title", "Priority", "Completed", "Created", "Completed At"}, rows)
}

func writeCSV(path string, header []string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return err
	}
	if err := w.WriteAll(rows); err != nil {
		return err
	}
	return w.Error()
}

func formatMinutes(mins int) string {
	if mins < 0 {
		mins = 0
	}
	return fmt.Sprintf("%02d:%02d", mins/60, mins%60)
}
