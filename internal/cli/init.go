package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/vitortomic/SAF/internal/config"
)

func newInitCmd(st *state) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Write a default configuration file",
		Long: `Write a pagegen.yaml with default settings.

Examples:
  pagegen init
  pagegen init configs/pagegen.yaml
  pagegen init --force`,
		Args:        cobra.MaximumNArgs(1),
		Annotations: map[string]string{skipConfigAnnotation: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			path := config.DefaultConfigFile
			if len(args) == 1 {
				path = args[0]
			}
			return runInit(st, path, force)
		},
	}

	cmd.Flags().BoolVarP(&force, FlagForce, "f", false, "Overwrite an existing configuration file")

	return cmd
}

func runInit(st *state, path string, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		st.out.info(fmt.Sprintf("Configuration already exists at %s", path))
		st.out.info("(use --force to overwrite)")
		return nil
	}

	if err := config.Save(path, config.DefaultConfig()); err != nil {
		return err
	}

	st.out.success(fmt.Sprintf("Created: %s", path))
	st.out.info("")
	st.out.info("Next steps:")
	st.out.info(fmt.Sprintf("  1. Edit %s to set the output directory and pages", path))
	st.out.info("  2. Run: pagegen generate")
	return nil
}
