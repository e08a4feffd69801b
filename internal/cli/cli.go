// SPDX-License-Identifier: MIT

// Package cli implements the mixrate command-line interface.
//
// # Commands
//
//   - sample: compare transition-matrix producers by mixing rate and write
//     a sample_<k>.json report
//   - serve-engine: serve the global-opt protocol backed by the in-process
//     engine, plus /metrics
//
// All commands accept --verbose (-v) for debug logging. The logger travels
// through context.Context.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  string
	date    string
)

// SetVersion sets the build information shown by --version.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the CLI with os.Args.
func Execute(ctx context.Context) error {
	return newRootCommand(os.Stdout, os.Stderr).ExecuteContext(ctx)
}

func newRootCommand(stdout, stderr io.Writer) *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:          "mixrate",
		Short:        "mixrate compares Markov chain constructions by mixing rate",
		Long:         `mixrate builds transition matrices with a prescribed stationary distribution on random connected graphs and compares how fast they mix.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(stderr, level)))
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetVersionTemplate(fmt.Sprintf("mixrate %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newSampleCmd())
	root.AddCommand(newServeEngineCmd())

	return root
}
