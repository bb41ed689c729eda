package generator

import (
	"path/filepath"
	"strings"
)

// ValidatePageName checks that name can be used as a file name on its own.
func ValidatePageName(name string) error {
	if name == "" {
		return newGeneratorError(GeneratorPathError, "page name cannot be empty", "", nil)
	}
	if name == "." || strings.Contains(name, "..") {
		return newGeneratorError(GeneratorPathError, "page name contains path traversal", name, nil)
	}
	if strings.ContainsAny(name, `/\`) {
		return newGeneratorError(GeneratorPathError, "page name contains a path separator", name, nil)
	}
	return nil
}

// ValidateExtension checks that ext is a single dot-prefixed suffix such as ".tsx".
func ValidateExtension(ext string) error {
	if len(ext) < 2 || ext[0] != '.' {
		return newGeneratorError(GeneratorPathError, "extension must start with '.' and not be empty", ext, nil)
	}
	if strings.ContainsAny(ext[1:], `./\`) {
		return newGeneratorError(GeneratorPathError, "extension contains invalid characters", ext, nil)
	}
	return nil
}

// FileName returns the output file name for a page.
func FileName(name, ext string) string {
	return name + ext
}

// OutputPath derives the output file path for a page inside dir.
func OutputPath(dir, name, ext string) (string, error) {
	if err := ValidatePageName(name); err != nil {
		return "", err
	}
	if err := ValidateExtension(ext); err != nil {
		return "", err
	}
	return filepath.Join(dir, FileName(name, ext)), nil
}
