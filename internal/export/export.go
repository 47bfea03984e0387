// Package export writes the productivity record to CSV, JSON or YAML files.
package export

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/sadopc/focusboard/internal/model"
)

type Format int

const (
	FormatCSV Format = iota
	FormatJSON
	FormatYAML
)

var Formats = []Format{FormatCSV, FormatJSON, FormatYAML}

func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "JSON"
	case FormatYAML:
		return "YAML"
	default:
		return "CSV"
	}
}

func (f Format) ext() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatYAML:
		return "yaml"
	default:
		return "csv"
	}
}

// Write exports d into dir as focusboard-export-<date>.<ext> and returns
// the path written. CSV holds one table per file, so tasks go to a sibling
// focusboard-export-<date>-tasks.csv.
func Write(f Format, d model.ProductivityData, dir string, now time.Time) (string, error) {
	base := filepath.Join(dir, "focusboard-export-"+now.Format("2006-01-02"))
	path := fmt.Sprintf("%s.%s", base, f.ext())

	var err error
	switch f {
	case FormatJSON:
		err = ToJSON(d, path, now)
	case FormatYAML:
		err = ToYAML(d, path, now)
	default:
		if err = ToCSV(d.TimeEntries, path); err == nil {
			err = TasksToCSV(d.Tasks, TasksPath(path))
		}
	}
	if err != nil {
		return "", err
	}
	return path, nil
}

// TasksPath returns the tasks file written next to a CSV export.
func TasksPath(csvPath string) string {
	return strings.TrimSuffix(csvPath, ".csv") + "-tasks.csv"
}
