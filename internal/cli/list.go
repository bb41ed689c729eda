package cli

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"github.com/vitortomic/SAF/internal/generator"
	"github.com/vitortomic/SAF/internal/pages"
)

// PageListing is one row of `pagegen list`.
type PageListing struct {
	Name  string `json:"name"`
	Title string `json:"title"`
	Route string `json:"route"`
	File  string `json:"file"`
	Size  int    `json:"size"`
}

func newListCmd(st *state) *cobra.Command {
	f := &targetFlags{}
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List available pages",
		Long: `List the pages pagegen can generate, with their routes and output files.

Examples:
  pagegen list
  pagegen list --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, st, f, asJSON)
		},
	}

	addTargetFlags(cmd.Flags(), f)
	cmd.Flags().BoolVar(&asJSON, FlagJSON, false, DescJSON)
	_ = cmd.RegisterFlagCompletionFunc(FlagPage, completePageNames)

	return cmd
}

func runList(cmd *cobra.Command, st *state, f *targetFlags, asJSON bool) error {
	cfg := st.effectiveConfig()
	f.apply(cmd.Flags(), cfg)

	selected, err := pages.Select(cfg.Pages)
	if err != nil {
		return err
	}

	listing := make([]PageListing, 0, len(selected))
	for _, page := range selected {
		path, err := generator.OutputPath(cfg.OutputDir, page.Name, cfg.Extension)
		if err != nil {
			return err
		}
		listing = append(listing, PageListing{
			Name:  page.Name,
			Title: page.Title,
			Route: page.Route,
			File:  path,
			Size:  len(page.Content),
		})
	}

	out := cmd.OutOrStdout()
	if asJSON {
		data, err := json.MarshalIndent(listing, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal page list: %w", err)
		}
		fmt.Fprintln(out, string(data))
		return nil
	}

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tROUTE\tFILE\tSIZE")
	for _, row := range listing {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", row.Name, row.Route, row.File, humanize.Bytes(uint64(row.Size)))
	}
	return tw.Flush()
}
