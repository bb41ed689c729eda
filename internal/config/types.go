package config

// Config is the pagegen configuration, usually read from pagegen.yaml.
type Config struct {
	// OutputDir is the directory page files are written to.
	OutputDir string `yaml:"output_dir" json:"output_dir"`
	// Extension is the page file extension, including the leading dot.
	Extension string `yaml:"extension" json:"extension"`
	// Overwrite replaces existing page files when true; otherwise they are skipped.
	Overwrite bool `yaml:"overwrite" json:"overwrite"`
	// Pages limits generation to the named pages. Empty means all pages.
	Pages []string `yaml:"pages" json:"pages,omitempty"`
	// Output configures terminal output.
	Output OutputConfig `yaml:"output" json:"output"`
}

// OutputConfig represents output and display settings.
type OutputConfig struct {
	// Color enables colored terminal output.
	Color bool `yaml:"color" json:"color"`
	// Quiet suppresses non-error output.
	Quiet bool `yaml:"quiet" json:"quiet"`
}
