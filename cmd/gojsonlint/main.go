// Package main is the entry point for the gojsonlint CLI.
package main

import (
	"errors"
	"os"

	"github.com/yaklabco/gojsonlint/internal/cli"
	"github.com/yaklabco/gojsonlint/internal/logging"

	// Import rules package to register built-in heuristics via init().
	_ "github.com/yaklabco/gojsonlint/pkg/lint/rules"
)

// Build-time variables set by GoReleaser via ldflags.
//
//nolint:gochecknoglobals // Version variables must be package-level for ldflags injection
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Build and execute the root command.
	info := cli.BuildInfo{
		Version: version,
		Commit:  commit,
		Date:    date,
	}

	rootCmd := cli.NewRootCommand(info)

	if err := rootCmd.Execute(); err != nil {
		// Don't log ErrIssuesFound - it's just a signal for exit code.
		if !errors.Is(err, cli.ErrIssuesFound) {
			logger := logging.Default()
			logger.Error("command failed", logging.FieldError, err)
		}

		var coded *cli.CodedError
		if errors.As(err, &coded) {
			return coded.Code
		}
		return cli.ExitInternalError
	}

	return cli.ExitSuccess
}
