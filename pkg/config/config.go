// Package config loads YAML configuration files with environment
// variable expansion and optional validation.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Validator is implemented by configuration types that can check
// themselves after decoding.
type Validator interface {
	Validate() error
}

// Load reads filename, expands ${VAR} references from the environment,
// decodes the YAML into target, and validates it when the target
// implements Validator.
func Load[T any](filename string, target *T) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("config: read %s: %w", filename, err)
	}
	return decode(filename, []byte(os.ExpandEnv(string(data))), target)
}

// LoadIfPresent behaves like Load but leaves target untouched when the
// file does not exist, so callers can run on compiled-in defaults.
func LoadIfPresent[T any](filename string, target *T) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			if v, ok := any(target).(Validator); ok {
				return v.Validate()
			}
			return nil
		}
		return fmt.Errorf("config: read %s: %w", filename, err)
	}
	return decode(filename, []byte(os.ExpandEnv(string(data))), target)
}

func decode[T any](filename string, data []byte, target *T) error {
	if err := yaml.Unmarshal(data, target); err != nil {
		return fmt.Errorf("config: parse %s: %w", filename, err)
	}
	if v, ok := any(target).(Validator); ok {
		if err := v.Validate(); err != nil {
			return fmt.Errorf("config: validate %s: %w", filename, err)
		}
	}
	return nil
}
