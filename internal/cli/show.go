package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vitortomic/SAF/internal/pages"
)

func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <page>",
		Short: "Print a page template",
		Long: `Print the template of a single page to stdout, exactly as it would be written.

Examples:
  pagegen show Dashboard
  pagegen show Settings > Settings.tsx`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeShowArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			page, err := pages.Lookup(args[0])
			if err != nil {
				return fmt.Errorf("%w (available: use 'pagegen list')", err)
			}
			_, err = cmd.OutOrStdout().Write(page.Content)
			return err
		},
	}
}

func completeShowArgs(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return pages.Names(), cobra.ShellCompDirectiveNoFileComp
}
