package cli

import (
	"encoding/json"
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
	"github.com/vitortomic/SAF/internal/version"
)

// VersionInfo contains version information
type VersionInfo struct {
	Version   string `json:"version"`
	GoVersion string `json:"go_version"`
	Commit    string `json:"commit"`
	BuildDate string `json:"build_date"`
	OS        string `json:"os"`
	Arch      string `json:"arch"`
}

func newVersionCmd() *cobra.Command {
	var short, asJSON bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long: `Display version information for pagegen.

Examples:
  pagegen version
  pagegen version --short
  pagegen version --json`,
		Args:        cobra.NoArgs,
		Annotations: map[string]string{skipConfigAnnotation: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVersion(cmd, short, asJSON)
		},
	}

	cmd.Flags().BoolVar(&short, "short", false, "Show version number only")
	cmd.Flags().BoolVar(&asJSON, FlagJSON, false, DescJSON)

	return cmd
}

func runVersion(cmd *cobra.Command, short, asJSON bool) error {
	info := VersionInfo{
		Version:   version.Version,
		GoVersion: runtime.Version(),
		Commit:    version.GitCommit,
		BuildDate: version.BuildDate,
		OS:        runtime.GOOS,
		Arch:      runtime.GOARCH,
	}

	out := cmd.OutOrStdout()

	if short {
		fmt.Fprintln(out, info.Version)
		return nil
	}

	if asJSON {
		data, err := json.MarshalIndent(info, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal version info: %w", err)
		}
		fmt.Fprintln(out, string(data))
		return nil
	}

	fmt.Fprintf(out, "pagegen version %s\n", info.Version)
	fmt.Fprintf(out, "Built with: %s\n", info.GoVersion)
	fmt.Fprintf(out, "Commit: %s\n", info.Commit)
	fmt.Fprintf(out, "Build date: %s\n", info.BuildDate)
	fmt.Fprintf(out, "OS/Arch: %s/%s\n", info.OS, info.Arch)

	return nil
}
