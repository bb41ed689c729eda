package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/vitortomic/SAF/internal/config"
	"github.com/vitortomic/SAF/internal/debug"
)

// skipConfigAnnotation marks commands that run without loading pagegen.yaml.
const skipConfigAnnotation = "pagegen/skip-config"

// globalFlags are persistent flags shared by every command.
type globalFlags struct {
	configPath string
	noColor    bool
	quiet      bool
	debug      bool
}

// state is shared by the command tree during one execution.
type state struct {
	flags globalFlags
	cfg   *config.Config
	out   *printer
}

// NewRootCmd builds the pagegen command tree.
// Running it without a subcommand generates every page.
func NewRootCmd() *cobra.Command {
	st := &state{}
	gen := &generateFlags{}

	rootCmd := &cobra.Command{
		Use:   "pagegen",
		Short: "Generate SAF Tours back-office page templates",
		Long: `pagegen writes the page templates of the SAF Tours management app
(dashboard, income, costs, assets, clients, invoices, reports, settings)
into the front-end source tree.

Each page is written verbatim to <output>/<Name><ext>, by default
src/pages/<Name>.tsx. Existing files are overwritten unless --skip-existing
is given.

Settings can be stored in pagegen.yaml; command-line flags take precedence.`,
		Args:              cobra.NoArgs,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: st.setup,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, st, gen)
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&st.flags.configPath, FlagConfig, "c", "", DescConfig)
	pf.BoolVar(&st.flags.noColor, FlagNoColor, false, DescNoColor)
	pf.BoolVarP(&st.flags.quiet, FlagQuiet, "q", false, DescQuiet)
	pf.BoolVar(&st.flags.debug, FlagDebug, false, DescDebug)

	addGenerateFlags(rootCmd.Flags(), gen)

	rootCmd.AddCommand(
		newGenerateCmd(st),
		newListCmd(st),
		newShowCmd(),
		newCheckCmd(st),
		newInitCmd(st),
		newVersionCmd(),
	)

	return rootCmd
}

// setup configures logging, loads the configuration and builds the printer.
func (st *state) setup(cmd *cobra.Command, args []string) error {
	debug.SetDebug(st.flags.debug)
	debug.SetNoColor(st.flags.noColor || !isTerminal(os.Stderr))

	color := !st.flags.noColor && os.Getenv("NO_COLOR") == ""
	quiet := st.flags.quiet

	if cmd.Annotations[skipConfigAnnotation] == "" {
		cfg, err := loadConfig(st.flags.configPath)
		if err != nil {
			return err
		}
		st.cfg = cfg
		color = color && cfg.Output.Color
		quiet = quiet || cfg.Output.Quiet
	}

	st.out = newPrinter(cmd.OutOrStdout(), quiet, color)
	return nil
}

// loadConfig loads path, or the default config file if path is empty.
// Only the default file may be absent.
func loadConfig(path string) (*config.Config, error) {
	loader := config.NewLoader()
	if path == "" {
		return loader.LoadOrDefault(config.DefaultConfigFile)
	}
	return loader.Load(path)
}

// effectiveConfig returns a copy of the loaded configuration for per-command overrides.
func (st *state) effectiveConfig() *config.Config {
	cfg := *st.cfg
	cfg.Pages = append([]string(nil), st.cfg.Pages...)
	return &cfg
}

// Execute runs the root command and exits non-zero on failure.
// This is called by main.main().
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := NewRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}
