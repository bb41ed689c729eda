package generator

import (
	"bytes"
	"os"

	"github.com/natefinch/atomic"
	"github.com/vitortomic/SAF/internal/debug"
)

const (
	// fileMode is applied to every generated page.
	fileMode os.FileMode = 0644
	// dirMode is applied to created directories.
	dirMode os.FileMode = 0755
)

// Writer writes files to the filesystem.
type Writer interface {
	// WriteFile replaces the file at path with content.
	WriteFile(path string, content []byte) error

	// CreateDir creates a directory and any necessary parent directories.
	CreateDir(path string) error

	// Exists checks if a file or directory exists at the given path.
	Exists(path string) bool

	// IsDir checks if path exists and is a directory.
	IsDir(path string) bool
}

// FileWriter implements Writer for filesystem operations.
type FileWriter struct{}

// NewFileWriter creates a new FileWriter.
func NewFileWriter() Writer {
	return &FileWriter{}
}

// WriteFile writes content atomically: readers see either the old file or the
// complete new one. The parent directory must exist.
func (w *FileWriter) WriteFile(path string, content []byte) error {
	debug.Debug("[generator] Writing file: %s (size: %d bytes)", path, len(content))

	existed := w.Exists(path)

	if err := atomic.WriteFile(path, bytes.NewReader(content)); err != nil {
		return newGeneratorError(GeneratorWriteFailed, "failed to write file", path, err)
	}

	// atomic keeps the mode of a replaced file but creates new ones 0600.
	if !existed {
		if err := os.Chmod(path, fileMode); err != nil {
			return newGeneratorError(GeneratorWriteFailed, "failed to set file mode", path, err)
		}
	}

	debug.Debug("[generator] File written successfully: %s", path)
	return nil
}

// CreateDir creates a directory and any necessary parent directories.
func (w *FileWriter) CreateDir(path string) error {
	debug.Debug("[generator] Creating directory: %s", path)
	if err := os.MkdirAll(path, dirMode); err != nil {
		return newGeneratorError(GeneratorWriteFailed, "failed to create directory", path, err)
	}
	return nil
}

// Exists checks if a file or directory exists at the given path.
func (w *FileWriter) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// IsDir checks if path exists and is a directory.
func (w *FileWriter) IsDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
