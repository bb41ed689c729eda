// Package config loads and validates pagegen.yaml.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/vitortomic/SAF/internal/debug"
	"github.com/vitortomic/SAF/internal/generator"
	"github.com/vitortomic/SAF/internal/pages"
)

// MaxFileSize limits the configuration file size.
const MaxFileSize = 1 << 20

// Loader defines the interface for loading configuration files.
type Loader interface {
	// Load loads configuration from the specified file path.
	Load(path string) (*Config, error)
	// LoadOrDefault loads configuration or returns defaults if file doesn't exist.
	LoadOrDefault(path string) (*Config, error)
	// Validate validates the configuration.
	Validate(config *Config) error
}

// FileLoader implements the Loader interface for file-based configuration loading.
type FileLoader struct{}

// NewLoader creates a new FileLoader instance.
func NewLoader() Loader {
	return &FileLoader{}
}

// Load reads path and overlays it on the defaults. Unknown keys are rejected.
// The result is validated before it is returned.
func (l *FileLoader) Load(path string) (*Config, error) {
	debug.Debug("[config] Loading configuration: %s", path)

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, NewConfigErrorWithCause(ConfigNotFound, path, "configuration file not found", err)
		}
		return nil, NewConfigErrorWithCause(ConfigInvalid, path, "failed to read configuration file", err)
	}

	cfg, err := parse(data)
	if err != nil {
		return nil, NewConfigErrorWithCause(ConfigInvalid, path, "invalid YAML", err)
	}

	if err := l.Validate(cfg); err != nil {
		if cfgErr, ok := err.(*ConfigError); ok {
			cfgErr.File = path
		}
		return nil, err
	}

	debug.DebugJSON("[config] Effective configuration", cfg)
	return cfg, nil
}

// LoadOrDefault loads configuration or returns defaults if file doesn't exist.
func (l *FileLoader) LoadOrDefault(path string) (*Config, error) {
	cfg, err := l.Load(path)
	if err != nil {
		if IsNotFound(err) {
			debug.Debug("[config] No configuration at %s, using defaults", path)
			return DefaultConfig(), nil
		}
		return nil, err
	}
	return cfg, nil
}

// Validate validates the configuration.
func (l *FileLoader) Validate(config *Config) error {
	if config.OutputDir == "" {
		return NewConfigErrorWithField(ConfigValidationFailed, "", "output_dir", "output directory cannot be empty")
	}
	if err := generator.ValidateExtension(config.Extension); err != nil {
		return &ConfigError{
			Type:    ConfigValidationFailed,
			Field:   "extension",
			Message: "invalid extension",
			Cause:   err,
		}
	}
	for _, name := range config.Pages {
		if _, err := pages.Lookup(name); err != nil {
			return &ConfigError{
				Type:    ConfigValidationFailed,
				Field:   "pages",
				Message: fmt.Sprintf("unknown page %q", name),
				Cause:   err,
			}
		}
	}
	return nil
}

// parse decodes data on top of DefaultConfig. Empty input yields the defaults.
func parse(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	if len(bytes.TrimSpace(data)) == 0 {
		return cfg, nil
	}
	if len(data) > MaxFileSize {
		return nil, fmt.Errorf("file exceeds maximum size: %d bytes (max %d)", len(data), MaxFileSize)
	}
	if err := yaml.UnmarshalWithOptions(data, cfg, yaml.Strict()); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Marshal renders cfg as YAML.
func Marshal(cfg *Config) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal configuration: %w", err)
	}
	return data, nil
}
