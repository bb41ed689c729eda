package config

import (
	"bytes"
	"fmt"
	"os"

	"github.com/natefinch/atomic"
)

// fileMode is applied to newly created configuration files.
const fileMode os.FileMode = 0644

// configHeader is written above the YAML body by Save.
const configHeader = "# pagegen configuration\n"

// Save writes cfg to path as YAML, replacing any existing file atomically.
func Save(path string, cfg *Config) error {
	data, err := Marshal(cfg)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	buf.WriteString(configHeader)
	buf.Write(data)

	_, statErr := os.Stat(path)
	existed := statErr == nil

	if err := atomic.WriteFile(path, &buf); err != nil {
		return fmt.Errorf("failed to save configuration to %s: %w", path, err)
	}

	// atomic keeps the mode of a replaced file but creates new ones 0600.
	if !existed {
		if err := os.Chmod(path, fileMode); err != nil {
			return fmt.Errorf("failed to set mode on %s: %w", path, err)
		}
	}
	return nil
}
