package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), DefaultConfigFile)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.OutputDir != "src/pages" {
		t.Errorf("OutputDir = %q, want src/pages", cfg.OutputDir)
	}
	if cfg.Extension != ".tsx" {
		t.Errorf("Extension = %q, want .tsx", cfg.Extension)
	}
	if !cfg.Overwrite {
		t.Error("Overwrite should default to true")
	}
	if !cfg.Output.Color || cfg.Output.Quiet {
		t.Errorf("unexpected output defaults: %+v", cfg.Output)
	}
	if err := NewLoader().Validate(cfg); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
output_dir: web/src/pages
overwrite: false
pages:
  - Dashboard
  - Settings
output:
  color: false
`)

	cfg, err := NewLoader().Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.OutputDir != "web/src/pages" {
		t.Errorf("OutputDir = %q", cfg.OutputDir)
	}
	if cfg.Extension != ".tsx" {
		t.Errorf("Extension should keep default, got %q", cfg.Extension)
	}
	if cfg.Overwrite {
		t.Error("Overwrite should be false")
	}
	if len(cfg.Pages) != 2 || cfg.Pages[1] != "Settings" {
		t.Errorf("Pages = %v", cfg.Pages)
	}
	if cfg.Output.Color {
		t.Error("Output.Color should be false")
	}
}

func TestLoadEmptyFile(t *testing.T) {
	cfg, err := NewLoader().Load(writeConfig(t, "\n"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.OutputDir != DefaultOutputDir {
		t.Errorf("empty file should yield defaults, got %+v", cfg)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name      string
		content   string
		wantType  ConfigErrorType
		wantField string
	}{
		{"invalid yaml", "output_dir: [unclosed", ConfigInvalid, ""},
		{"unknown key", "output_directory: out\n", ConfigInvalid, ""},
		{"unknown page", "pages: [Payroll]\n", ConfigValidationFailed, "pages"},
		{"bad extension", "extension: tsx\n", ConfigValidationFailed, "extension"},
		{"empty output dir", "output_dir: \"\"\n", ConfigValidationFailed, "output_dir"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, tt.content)
			_, err := NewLoader().Load(path)

			var cfgErr *ConfigError
			if !errors.As(err, &cfgErr) {
				t.Fatalf("Load() error = %v, want *ConfigError", err)
			}
			if cfgErr.Type != tt.wantType {
				t.Errorf("Type = %v, want %v", cfgErr.Type, tt.wantType)
			}
			if cfgErr.Field != tt.wantField {
				t.Errorf("Field = %q, want %q", cfgErr.Field, tt.wantField)
			}
			if cfgErr.File != path {
				t.Errorf("File = %q, want %q", cfgErr.File, path)
			}
		})
	}
}

func TestLoadNotFound(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.yaml")

	_, err := NewLoader().Load(path)
	if !IsNotFound(err) {
		t.Errorf("Load() error = %v, want not found", err)
	}

	cfg, err := NewLoader().LoadOrDefault(path)
	if err != nil {
		t.Fatalf("LoadOrDefault() error = %v", err)
	}
	if cfg.OutputDir != DefaultOutputDir {
		t.Errorf("LoadOrDefault() should return defaults, got %+v", cfg)
	}
}

func TestLoadOrDefaultPropagatesInvalid(t *testing.T) {
	_, err := NewLoader().LoadOrDefault(writeConfig(t, "extension: bad\n"))
	if err == nil {
		t.Error("LoadOrDefault() should return validation errors")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultConfigFile)
	cfg := DefaultConfig()
	cfg.OutputDir = "frontend/src/pages"
	cfg.Pages = []string{"Invoices"}

	if err := Save(path, cfg); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(data), configHeader) {
		t.Errorf("saved file should start with header, got %q", data)
	}

	loaded, err := NewLoader().Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if loaded.OutputDir != cfg.OutputDir || len(loaded.Pages) != 1 || loaded.Pages[0] != "Invoices" {
		t.Errorf("round trip mismatch: %+v", loaded)
	}
}

func TestSaveFileMode(t *testing.T) {
	dir := t.TempDir()

	t.Run("new file", func(t *testing.T) {
		path := filepath.Join(dir, "new.yaml")
		if err := Save(path, DefaultConfig()); err != nil {
			t.Fatalf("Save() error = %v", err)
		}
		info, err := os.Stat(path)
		if err != nil {
			t.Fatal(err)
		}
		if info.Mode().Perm() != 0644 {
			t.Errorf("mode = %o, want 644", info.Mode().Perm())
		}
	})

	t.Run("existing file keeps mode", func(t *testing.T) {
		path := filepath.Join(dir, "existing.yaml")
		if err := os.WriteFile(path, []byte("output_dir: x\n"), 0644); err != nil {
			t.Fatal(err)
		}
		if err := os.Chmod(path, 0664); err != nil {
			t.Fatal(err)
		}
		if err := Save(path, DefaultConfig()); err != nil {
			t.Fatalf("Save() error = %v", err)
		}
		info, err := os.Stat(path)
		if err != nil {
			t.Fatal(err)
		}
		if info.Mode().Perm() != 0664 {
			t.Errorf("mode = %o, want 664", info.Mode().Perm())
		}
	})
}

func TestConfigErrorFormat(t *testing.T) {
	err := NewConfigErrorWithField(ConfigValidationFailed, "pagegen.yaml", "extension", "invalid extension")
	want := "configuration error in pagegen.yaml [field: extension]: invalid extension"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}

	cause := errors.New("boom")
	wrapped := NewConfigErrorWithCause(ConfigInvalid, "", "bad", cause)
	if wrapped.Error() != "configuration error: bad: boom" {
		t.Errorf("Error() = %q", wrapped.Error())
	}
	if !errors.Is(wrapped, cause) {
		t.Error("ConfigError should unwrap to its cause")
	}
}
