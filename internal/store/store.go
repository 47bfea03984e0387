// Package store persists the productivity record as one JSON value under a
// fixed key in a local key/value backend.
package store

import (
	"encoding/json"
	"time"

	"github.com/sadopc/focusboard/internal/logging"
	"github.com/sadopc/focusboard/internal/model"
)

// DefaultKey is where the record lives unless configured otherwise.
const DefaultKey = "productivity_data"

// Store loads and saves the whole record. Every mutation is a full
// read-modify-write; the last write wins.
type Store struct {
	kv  KV
	key string
	now func() time.Time
}

type Option func(*Store)

func WithKey(key string) Option {
	return func(s *Store) {
		if key != "" {
			s.key = key
		}
	}
}

// WithClock overrides time.Now for timestamps the store assigns.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

func New(kv KV, opts ...Option) *Store {
	s := &Store{kv: kv, key: DefaultKey, now: time.Now}
	for _, o := range opts {
		o(s)
	}
	return s
}

func (s *Store) Close() error {
	return s.kv.Close()
}

// record mirrors ProductivityData with each section left raw, so a section
// that fails to decode falls back on its own instead of taking the whole
// record with it.
type record struct {
	Tasks       json.RawMessage `json:"tasks"`
	TimeEntries json.RawMessage `json:"timeEntries"`
	Goals       json.RawMessage `json:"goals"`
	Settings    json.RawMessage `json:"settings"`
}

// Load returns the stored record with missing fields backfilled. It never
// fails: an absent, unreadable or unparseable record yields defaults.
func (s *Store) Load() model.ProductivityData {
	raw, ok, err := s.kv.Get(s.key)
	if err != nil {
		logging.Warn("store", "load %s: %v; using defaults", s.key, err)
		return model.Default()
	}
	if !ok {
		return model.Default()
	}
	return decode(raw)
}

func decode(raw []byte) model.ProductivityData {
	d := model.Default()

	var r record
	if err := json.Unmarshal(raw, &r); err != nil {
		logging.Warn("store", "record is not a JSON object: %v; using defaults", err)
		return d
	}

	section := func(name string, msg json.RawMessage, dst any) {
		if len(msg) == 0 || string(msg) == "null" {
			return
		}
		if err := json.Unmarshal(msg, dst); err != nil {
			logging.Warn("store", "decode %s: %v; keeping the entries that decoded", name, err)
		}
	}

	var tasks []model.Task
	section("tasks", r.Tasks, &tasks)
	if tasks != nil {
		d.Tasks = tasks
	}
	var entries []model.TimeEntry
	section("timeEntries", r.TimeEntries, &entries)
	if entries != nil {
		d.TimeEntries = entries
	}

	// Goals and settings decode over zero values so a legacy record without
	// notifications leaves that field nil for Backfill to see.
	if len(r.Goals) > 0 && string(r.Goals) != "null" {
		var g model.Goals
		if err := json.Unmarshal(r.Goals, &g); err == nil {
			d.Goals = g
		} else {
			logging.Warn("store", "decode goals: %v; using defaults for it", err)
		}
	}
	if len(r.Settings) > 0 && string(r.Settings) != "null" {
		var st model.Settings
		if err := json.Unmarshal(r.Settings, &st); err == nil {
			d.Settings = st
		} else {
			logging.Warn("store", "decode settings: %v; using defaults for it", err)
		}
	}

	return model.Backfill(d)
}

// Save overwrites the stored record. Failures are logged and otherwise
// ignored.
func (s *Store) Save(d model.ProductivityData) {
	if err := s.save(d); err != nil {
		logging.Warn("store", "save %s: %v", s.key, err)
	}
}

func (s *Store) save(d model.ProductivityData) error {
	data, err := json.Marshal(d)
	if err != nil {
		return err
	}
	return s.kv.Set(s.key, data)
}

func (s *Store) update(fn func(*model.ProductivityData)) model.ProductivityData {
	d := s.Load()
	fn(&d)
	s.Save(d)
	return d
}

// OnTimeCommitted appends a focus session entry of the given minutes.
// Non-positive values commit nothing.
func (s *Store) OnTimeCommitted(minutes int) model.ProductivityData {
	if minutes <= 0 {
		return s.Load()
	}
	return s.update(func(d *model.ProductivityData) {
		d.TimeEntries = append(d.TimeEntries, model.NewFocusEntry(minutes, s.now()))
	})
}

// OnTasksChanged replaces the task list.
func (s *Store) OnTasksChanged(tasks []model.Task) model.ProductivityData {
	return s.update(func(d *model.ProductivityData) {
		d.Tasks = append([]model.Task{}, tasks...)
	})
}

func (s *Store) OnSettingsChanged(settings model.Settings) model.ProductivityData {
	return s.update(func(d *model.ProductivityData) {
		d.Settings = settings
	})
}

func (s *Store) OnGoalsChanged(goals model.Goals) model.ProductivityData {
	return s.update(func(d *model.ProductivityData) {
		d.Goals = goals
	})
}

// ToggleTheme flips between light and dark.
func (s *Store) ToggleTheme() model.ProductivityData {
	return s.update(func(d *model.ProductivityData) {
		d.Settings.Theme = d.Settings.Theme.Toggled()
	})
}

// AddTask, ToggleTask and DeleteTask apply a task mutation and persist the
// resulting list.
func (s *Store) AddTask(title string, priority model.Priority) model.ProductivityData {
	d := s.Load()
	return s.OnTasksChanged(model.AddTask(d.Tasks, title, priority, s.now()))
}

func (s *Store) ToggleTask(id string) model.ProductivityData {
	d := s.Load()
	return s.OnTasksChanged(model.ToggleTask(d.Tasks, id, s.now()))
}

func (s *Store) DeleteTask(id string) model.ProductivityData {
	d := s.Load()
	return s.OnTasksChanged(model.DeleteTask(d.Tasks, id))
}
