// Package generator writes page templates to disk.
package generator

import (
	"context"

	"github.com/vitortomic/SAF/internal/debug"
	"github.com/vitortomic/SAF/internal/pages"
)

// Generator writes pages to an output directory.
type Generator interface {
	// Generate writes every page in opts.Pages to opts.OutputDir.
	// The first write failure aborts generation; the partial result is returned with the error.
	Generate(ctx context.Context, opts GenerateOptions) (*GenerateResult, error)

	// DryRun reports what Generate would do without touching the filesystem.
	DryRun(ctx context.Context, opts GenerateOptions) (*GenerateResult, error)
}

// GenerateOptions configures page generation.
type GenerateOptions struct {
	// Pages are the pages to write, in order.
	Pages []pages.Page

	// OutputDir is the directory where page files are written.
	OutputDir string

	// Extension is appended to each page name to form its file name.
	Extension string

	// Overwrite determines whether to overwrite existing files.
	// If false, existing files are skipped.
	Overwrite bool
}

// Action is what happened (or would happen) to a single output file.
type Action string

const (
	ActionCreate    Action = "create"
	ActionOverwrite Action = "overwrite"
	ActionSkip      Action = "skip"
)

// FileResult describes the outcome for one page.
type FileResult struct {
	// Page is the page name.
	Page string `json:"page"`
	// Path is the output file path.
	Path string `json:"path"`
	// Action is the action taken.
	Action Action `json:"action"`
	// Size is the content size in bytes (0 for skipped files).
	Size int `json:"size"`
}

// GenerateResult contains generation statistics.
type GenerateResult struct {
	// FilesCreated is the number of new files created.
	FilesCreated int `json:"files_created"`

	// FilesOverwritten is the number of existing files overwritten.
	FilesOverwritten int `json:"files_overwritten"`

	// FilesSkipped is the number of files skipped (already exist).
	FilesSkipped int `json:"files_skipped"`

	// Files lists every processed page in order.
	Files []FileResult `json:"files"`

	// DryRun is true when nothing was written.
	DryRun bool `json:"dry_run"`
}

// Written returns the number of files created or overwritten.
func (r *GenerateResult) Written() int {
	return r.FilesCreated + r.FilesOverwritten
}

// DefaultGenerator implements Generator.
type DefaultGenerator struct {
	writer Writer
}

// NewGenerator creates a generator that writes to the local filesystem.
func NewGenerator() Generator {
	return NewGeneratorWithWriter(NewFileWriter())
}

// NewGeneratorWithWriter creates a generator backed by w.
func NewGeneratorWithWriter(w Writer) Generator {
	return &DefaultGenerator{writer: w}
}

// Generate writes pages to disk.
func (g *DefaultGenerator) Generate(ctx context.Context, opts GenerateOptions) (*GenerateResult, error) {
	return g.generate(ctx, opts, false)
}

// DryRun simulates generation without writing files.
func (g *DefaultGenerator) DryRun(ctx context.Context, opts GenerateOptions) (*GenerateResult, error) {
	return g.generate(ctx, opts, true)
}

func (g *DefaultGenerator) generate(ctx context.Context, opts GenerateOptions, dryRun bool) (*GenerateResult, error) {
	if err := validateOptions(opts); err != nil {
		return nil, err
	}

	debug.Debug("[generator] Starting generation: pages=%d, outputDir=%s, ext=%s, dryRun=%v, overwrite=%v",
		len(opts.Pages), opts.OutputDir, opts.Extension, dryRun, opts.Overwrite)

	// Resolve every path up front so a bad name fails before anything is written.
	paths := make([]string, len(opts.Pages))
	for i, page := range opts.Pages {
		p, err := OutputPath(opts.OutputDir, page.Name, opts.Extension)
		if err != nil {
			return nil, err
		}
		paths[i] = p
	}

	result := &GenerateResult{
		Files:  make([]FileResult, 0, len(opts.Pages)),
		DryRun: dryRun,
	}

	if g.writer.Exists(opts.OutputDir) {
		if !g.writer.IsDir(opts.OutputDir) {
			return result, newGeneratorError(GeneratorPathError, "output path is not a directory", opts.OutputDir, nil)
		}
	} else if !dryRun {
		if err := g.writer.CreateDir(opts.OutputDir); err != nil {
			return result, err
		}
	}

	for i, page := range opts.Pages {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		outputPath := paths[i]
		exists := g.writer.Exists(outputPath)

		if exists && !opts.Overwrite {
			debug.Debug("[generator] Skipping existing file: %s", outputPath)
			result.FilesSkipped++
			result.Files = append(result.Files, FileResult{
				Page:   page.Name,
				Path:   outputPath,
				Action: ActionSkip,
			})
			continue
		}

		action := ActionCreate
		if exists {
			action = ActionOverwrite
		}

		if dryRun {
			debug.Debug("[generator] Dry run: would %s %s (size: %d bytes)", action, outputPath, len(page.Content))
		} else if err := g.writer.WriteFile(outputPath, page.Content); err != nil {
			return result, err
		}

		if exists {
			result.FilesOverwritten++
		} else {
			result.FilesCreated++
		}
		result.Files = append(result.Files, FileResult{
			Page:   page.Name,
			Path:   outputPath,
			Action: action,
			Size:   len(page.Content),
		})
	}

	debug.Debug("[generator] Generation complete: created=%d, overwritten=%d, skipped=%d",
		result.FilesCreated, result.FilesOverwritten, result.FilesSkipped)

	return result, nil
}

func validateOptions(opts GenerateOptions) error {
	if opts.OutputDir == "" {
		return newGeneratorError(GeneratorInvalidOptions, "output directory cannot be empty", "", nil)
	}
	if len(opts.Pages) == 0 {
		return newGeneratorError(GeneratorInvalidOptions, "no pages to generate", "", nil)
	}
	return ValidateExtension(opts.Extension)
}
