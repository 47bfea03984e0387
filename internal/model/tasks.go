package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// NewID returns a fresh identifier for tasks and time entries.
func NewID() string {
	return uuid.NewString()
}

// AddTask appends a new open task. Blank titles are ignored and an invalid
// priority falls back to medium.
func AddTask(tasks []Task, title string, priority Priority, now time.Time) []Task {
	title = strings.TrimSpace(title)
	if title == "" {
		return tasks
	}
	if !priority.IsValid() {
		priority = PriorityMedium
	}
	out := make([]Task, 0, len(tasks)+1)
	out = append(out, tasks...)
	return append(out, Task{
		ID:        NewID(),
		Title:     title,
		Priority:  priority,
		CreatedAt: now,
	})
}

// ToggleTask flips the completed flag of the task with the given id.
// CompletedAt is set on false->true and cleared on true->false.
func ToggleTask(tasks []Task, id string, now time.Time) []Task {
	out := make([]Task, len(tasks))
	copy(out, tasks)
	for i := range out {
		if out[i].ID != id {
			continue
		}
		out[i].Completed = !out[i].Completed
		if out[i].Completed {
			t := now
			out[i].CompletedAt = &t
		} else {
			out[i].CompletedAt = nil
		}
	}
	return out
}

func DeleteTask(tasks []Task, id string) []Task {
	out := make([]Task, 0, len(tasks))
	for _, t := range tasks {
		if t.ID != id {
			out = append(out, t)
		}
	}
	return out
}

// CountCompleted returns how many tasks are done and how many exist.
func CountCompleted(tasks []Task) (done, total int) {
	for _, t := range tasks {
		if t.Completed {
			done++
		}
	}
	return done, len(tasks)
}
