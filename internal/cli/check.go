package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vitortomic/SAF/internal/generator"
	"github.com/vitortomic/SAF/internal/pages"
)

func newCheckCmd(st *state) *cobra.Command {
	f := &targetFlags{}
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Check generated pages against their templates",
		Long: `Compare page files on disk with the templates and report pages that are
missing or have been modified. Exits non-zero if any page differs.

Examples:
  pagegen check
  pagegen check --output web/src/pages
  pagegen check --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, st, f, asJSON)
		},
	}

	addTargetFlags(cmd.Flags(), f)
	cmd.Flags().BoolVar(&asJSON, FlagJSON, false, DescJSON)
	_ = cmd.RegisterFlagCompletionFunc(FlagPage, completePageNames)

	return cmd
}

func runCheck(cmd *cobra.Command, st *state, f *targetFlags, asJSON bool) error {
	cfg := st.effectiveConfig()
	f.apply(cmd.Flags(), cfg)

	selected, err := pages.Select(cfg.Pages)
	if err != nil {
		return err
	}

	result, err := generator.Check(cmd.Context(), generator.CheckOptions{
		Pages:     selected,
		OutputDir: cfg.OutputDir,
		Extension: cfg.Extension,
	})
	if err != nil {
		return err
	}

	if asJSON {
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal check result: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
	} else {
		st.out.header("Checking " + cfg.OutputDir)
		for _, ps := range result.Pages {
			switch ps.Status {
			case generator.StatusUpToDate:
				st.out.success(ps.Path)
			case generator.StatusModified:
				st.out.warning(fmt.Sprintf("%s (modified)", ps.Path))
			case generator.StatusMissing:
				st.out.warning(fmt.Sprintf("%s (missing)", ps.Path))
			}
		}
		st.out.info("")
		st.out.info(fmt.Sprintf("%d up to date, %d modified, %d missing",
			result.UpToDate, result.Modified, result.Missing))
	}

	if !result.Clean() {
		return fmt.Errorf("%d of %d pages differ from their templates",
			result.Modified+result.Missing, len(result.Pages))
	}
	return nil
}
