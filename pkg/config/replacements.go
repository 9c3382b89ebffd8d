package config

import (
	"errors"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadReplacements reads a YAML mapping of search strings to replacements.
// An empty path returns a nil map and no error.
func LoadReplacements(path string) (map[string]string, error) {
	if path == "" {
		return nil, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Join(ErrReadingReplacements, err)
	}

	var table map[string]string
	if err := yaml.Unmarshal(data, &table); err != nil {
		return nil, errors.Join(ErrReadingReplacements, err)
	}

	return table, nil
}
