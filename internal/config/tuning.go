package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/PapaFaly666/printalma-website-dep-sub009/internal/constraint"
	"gopkg.in/yaml.v3"
)

// LoadTuning overlays the YAML file at path onto the default engine tuning.
// A missing file yields the defaults.
func LoadTuning(path string) (constraint.Tuning, error) {
	tuning := constraint.DefaultTuning()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return tuning, nil
		}
		return tuning, fmt.Errorf("read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &tuning); err != nil {
		return tuning, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := tuning.Validate(); err != nil {
		return tuning, fmt.Errorf("%s: %w", path, err)
	}
	return tuning, nil
}
