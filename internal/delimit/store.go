package delimit

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Load reads the delimitation from disk. Missing files return the zero value.
func Load(path string) (Delimitation, error) {
	var d Delimitation
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return d, nil
		}
		return d, err
	}
	d, err = Parse(data)
	if err != nil {
		return d, fmt.Errorf("%s: %w", path, err)
	}
	return d, nil
}

// Parse validates raw against the delimitation schema and decodes it.
func Parse(raw []byte) (Delimitation, error) {
	var d Delimitation
	if err := Validate(raw); err != nil {
		return d, err
	}
	if err := json.Unmarshal(raw, &d); err != nil {
		return d, err
	}
	return d, nil
}

// Save writes the delimitation to disk, creating parent directories as needed.
func Save(path string, d Delimitation) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}
