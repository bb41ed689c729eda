package cli

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"github.com/vitortomic/SAF/internal/config"
	"github.com/vitortomic/SAF/internal/debug"
	"github.com/vitortomic/SAF/internal/generator"
	"github.com/vitortomic/SAF/internal/pages"
)

func newGenerateCmd(st *state) *cobra.Command {
	f := &generateFlags{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write page templates to disk",
		Long: `Write page templates to the output directory.

Examples:
  pagegen generate
  pagegen generate --output web/src/pages
  pagegen generate --page Dashboard --page Settings
  pagegen generate --skip-existing
  pagegen generate --dry-run`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, st, f)
		},
	}

	addGenerateFlags(cmd.Flags(), f)
	_ = cmd.RegisterFlagCompletionFunc(FlagPage, completePageNames)

	return cmd
}

func runGenerate(cmd *cobra.Command, st *state, f *generateFlags) error {
	cfg := st.effectiveConfig()
	f.apply(cmd.Flags(), cfg)

	if err := config.NewLoader().Validate(cfg); err != nil {
		return err
	}

	selected, err := pages.Select(cfg.Pages)
	if err != nil {
		return err
	}

	debug.DebugSection("Generate")
	debug.DebugValue("output_dir", cfg.OutputDir)
	debug.DebugValue("extension", cfg.Extension)
	debug.DebugValue("overwrite", cfg.Overwrite)
	debug.DebugValue("pages", len(selected))

	opts := generator.GenerateOptions{
		Pages:     selected,
		OutputDir: cfg.OutputDir,
		Extension: cfg.Extension,
		Overwrite: cfg.Overwrite,
	}

	gen := generator.NewGenerator()
	var result *generator.GenerateResult
	if f.dryRun {
		result, err = gen.DryRun(cmd.Context(), opts)
	} else {
		result, err = gen.Generate(cmd.Context(), opts)
	}

	if result != nil {
		reportFiles(st.out, result)
	}
	if err != nil {
		return err
	}

	reportSummary(st.out, result, len(selected))
	return nil
}

// reportFiles prints one line per processed page.
func reportFiles(p *printer, result *generator.GenerateResult) {
	for _, file := range result.Files {
		switch {
		case file.Action == generator.ActionSkip:
			p.warning(fmt.Sprintf("Skipped %s (already exists)", file.Path))
		case result.DryRun:
			size := p.dim("(" + humanize.Bytes(uint64(file.Size)) + ")")
			p.progress(fmt.Sprintf("Would %s %s %s", file.Action, file.Path, size))
		default:
			p.info("Created " + file.Path)
		}
	}
}

func reportSummary(p *printer, result *generator.GenerateResult, total int) {
	p.info("")
	switch {
	case result.DryRun:
		p.info(fmt.Sprintf("Dry run: %d of %d pages would be written, no files were changed.",
			result.Written(), total))
	case result.FilesSkipped == 0:
		p.info("All pages created successfully!")
	default:
		p.info(fmt.Sprintf("Wrote %d of %d pages (%d skipped).",
			result.Written(), total, result.FilesSkipped))
	}
}

// completePageNames offers page names for shell completion.
func completePageNames(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return pages.Names(), cobra.ShellCompDirectiveNoFileComp
}
