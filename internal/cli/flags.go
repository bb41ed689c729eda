package cli

import (
	"github.com/spf13/pflag"
	"github.com/vitortomic/SAF/internal/config"
)

// Common flag names and descriptions
const (
	// Flag names
	FlagOutput       = "output"
	FlagExt          = "ext"
	FlagPage         = "page"
	FlagSkipExisting = "skip-existing"
	FlagDryRun       = "dry-run"
	FlagConfig       = "config"
	FlagForce        = "force"
	FlagJSON         = "json"
	FlagNoColor      = "no-color"
	FlagQuiet        = "quiet"
	FlagDebug        = "debug"

	// Flag descriptions
	DescOutput       = "Output directory for page files"
	DescExt          = "Page file extension"
	DescPage         = "Page to include (repeatable, default all)"
	DescSkipExisting = "Skip pages whose file already exists"
	DescDryRun       = "Show actions without execution"
	DescConfig       = "Path to config file (default " + config.DefaultConfigFile + ")"
	DescJSON         = "Output as JSON"
	DescNoColor      = "Disable colored output"
	DescQuiet        = "Suppress non-error output"
	DescDebug        = "Enable debug logging"
)

// targetFlags select which pages to operate on and where they live.
type targetFlags struct {
	output string
	ext    string
	pages  []string
}

func addTargetFlags(fs *pflag.FlagSet, f *targetFlags) {
	fs.StringVarP(&f.output, FlagOutput, "o", config.DefaultOutputDir, DescOutput)
	fs.StringVar(&f.ext, FlagExt, config.DefaultExtension, DescExt)
	fs.StringSliceVarP(&f.pages, FlagPage, "p", nil, DescPage)
}

// apply overrides cfg with every target flag set on the command line.
func (f *targetFlags) apply(fs *pflag.FlagSet, cfg *config.Config) {
	if fs.Changed(FlagOutput) {
		cfg.OutputDir = f.output
	}
	if fs.Changed(FlagExt) {
		cfg.Extension = f.ext
	}
	if fs.Changed(FlagPage) {
		cfg.Pages = f.pages
	}
}

// generateFlags are the flags accepted by generate and the root command.
type generateFlags struct {
	targetFlags
	skipExisting bool
	dryRun       bool
}

func addGenerateFlags(fs *pflag.FlagSet, f *generateFlags) {
	addTargetFlags(fs, &f.targetFlags)
	fs.BoolVar(&f.skipExisting, FlagSkipExisting, false, DescSkipExisting)
	fs.BoolVar(&f.dryRun, FlagDryRun, false, DescDryRun)
}

func (f *generateFlags) apply(fs *pflag.FlagSet, cfg *config.Config) {
	f.targetFlags.apply(fs, cfg)
	if fs.Changed(FlagSkipExisting) {
		cfg.Overwrite = !f.skipExisting
	}
}
