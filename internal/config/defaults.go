package config

const (
	// DefaultConfigFile is looked up in the working directory when --config is not given.
	DefaultConfigFile = "pagegen.yaml"
	// DefaultOutputDir matches the layout of the front-end project.
	DefaultOutputDir = "src/pages"
	// DefaultExtension is the extension of generated page files.
	DefaultExtension = ".tsx"
)

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		OutputDir: DefaultOutputDir,
		Extension: DefaultExtension,
		Overwrite: true,
		Pages:     nil,
		Output: OutputConfig{
			Color: true,
			Quiet: false,
		},
	}
}
