package main

import (
	"os"

	"github.com/tolvera-labs/tolvera-sketch/internal/cli"
	"github.com/tolvera-labs/tolvera-sketch/internal/clierr"
)

// version, commit, and date are set via ldflags at build time.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	if err := cli.Execute(version, commit, date); err != nil {
		os.Exit(clierr.ExitCode(err))
	}
}
