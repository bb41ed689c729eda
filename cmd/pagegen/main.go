package main

import (
	"github.com/vitortomic/SAF/internal/cli"
	"github.com/vitortomic/SAF/internal/version"
)

// Version information (set via ldflags during build)
var (
	buildVersion = "dev"
	gitCommit    = "unknown"
	buildDate    = "unknown"
)

func main() {
	version.Version = buildVersion
	version.GitCommit = gitCommit
	version.BuildDate = buildDate

	cli.Execute()
}
