package generator

import (
	"context"
	"errors"
	"io/fs"
	"os"

	"github.com/vitortomic/SAF/internal/debug"
	"github.com/vitortomic/SAF/internal/pages"
)

// Status is the state of a generated file relative to its template.
type Status string

const (
	StatusUpToDate Status = "up-to-date"
	StatusModified Status = "modified"
	StatusMissing  Status = "missing"
)

// CheckOptions configures a drift check.
type CheckOptions struct {
	// Pages are the pages to check.
	Pages []pages.Page
	// OutputDir is the directory the pages were generated into.
	OutputDir string
	// Extension is the page file extension.
	Extension string
}

// PageStatus is the check outcome for one page.
type PageStatus struct {
	Page   string `json:"page"`
	Path   string `json:"path"`
	Status Status `json:"status"`
	// Expected is the digest of the template content.
	Expected string `json:"expected"`
	// Actual is the digest of the file on disk; empty when missing.
	Actual string `json:"actual,omitempty"`
}

// CheckResult summarizes a drift check.
type CheckResult struct {
	Pages    []PageStatus `json:"pages"`
	UpToDate int          `json:"up_to_date"`
	Modified int          `json:"modified"`
	Missing  int          `json:"missing"`
}

// Clean reports whether every checked page matches its template.
func (r *CheckResult) Clean() bool {
	return r.Modified == 0 && r.Missing == 0
}

// Check compares files in opts.OutputDir with the page templates.
func Check(ctx context.Context, opts CheckOptions) (*CheckResult, error) {
	if err := validateOptions(GenerateOptions{
		Pages:     opts.Pages,
		OutputDir: opts.OutputDir,
		Extension: opts.Extension,
	}); err != nil {
		return nil, err
	}

	result := &CheckResult{Pages: make([]PageStatus, 0, len(opts.Pages))}

	for _, page := range opts.Pages {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		path, err := OutputPath(opts.OutputDir, page.Name, opts.Extension)
		if err != nil {
			return result, err
		}

		status := PageStatus{
			Page:     page.Name,
			Path:     path,
			Expected: pages.Digest(page.Content),
		}

		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			status.Status = StatusMissing
			result.Missing++
		case err != nil:
			return result, newGeneratorError(GeneratorReadFailed, "failed to read generated file", path, err)
		default:
			status.Actual = pages.Digest(data)
			if status.Actual == status.Expected {
				status.Status = StatusUpToDate
				result.UpToDate++
			} else {
				status.Status = StatusModified
				result.Modified++
			}
		}

		debug.Debug("[generator] Check %s: %s", path, status.Status)
		result.Pages = append(result.Pages, status)
	}

	return result, nil
}
