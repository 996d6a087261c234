package core

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// maxYAMLFileSize is the maximum size of a config file (1 MB). A .dco.yml
// is a handful of keys; anything near the limit is not a config file.
const maxYAMLFileSize = 1 << 20 // 1 MB

// YAMLStore provides generic YAML file I/O operations.
type YAMLStore[T any] struct {
	rootDir      string
	filename     string
	allowMissing bool // If true, missing file returns zero value instead of error
}

// NewYAMLStore creates a new YAML store for type T.
//
// Parameters:
//   - rootDir: Directory containing the YAML file
//   - filename: Name of the YAML file (e.g., ".dco.yml")
//   - allowMissing: If true, Load() returns zero value for missing files instead of error
func NewYAMLStore[T any](rootDir, filename string, allowMissing bool) *YAMLStore[T] {
	return &YAMLStore[T]{
		rootDir:      rootDir,
		filename:     filename,
		allowMissing: allowMissing,
	}
}

// Path returns the full file path
func (s *YAMLStore[T]) Path() string {
	return filepath.Join(s.rootDir, s.filename)
}

// Load reads and unmarshals the YAML file into type T.
// Rejects files larger than maxYAMLFileSize.
func (s *YAMLStore[T]) Load() (T, error) {
	var result T

	info, err := os.Stat(s.Path())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && s.allowMissing {
			return result, nil
		}
		return result, err
	}
	if info.Size() > maxYAMLFileSize {
		return result, fmt.Errorf("%s exceeds maximum size (%d bytes > %d byte limit)", s.filename, info.Size(), maxYAMLFileSize)
	}

	data, err := os.ReadFile(s.Path())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && s.allowMissing {
			return result, nil
		}
		return result, err
	}

	if err := yaml.Unmarshal(data, &result); err != nil {
		return result, fmt.Errorf("invalid %s: %w", s.filename, err)
	}

	return result, nil
}

// Save marshals and writes type T to the YAML file
func (s *YAMLStore[T]) Save(data T) error {
	bytes, err := yaml.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", s.filename, err)
	}

	if err := os.WriteFile(s.Path(), bytes, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", s.filename, err)
	}

	return nil
}
