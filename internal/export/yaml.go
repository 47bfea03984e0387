package export

import (
	"fmt"
	"os"
	"time"

	"github.com/sadopc/focusboard/internal/model"
	"gopkg.in/yaml.v3"
)

func ToYAML(d model.ProductivityData, path string, now time.Time) error {
	data, err := yaml.Marshal(buildDocument(d, now))
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write yaml file: %w", err)
	}
	return nil
}
