// Package cli implements the dataviews command-line interface.
//
// This package provides commands for inspecting dimensioned datasets,
// sampling them into curves, summarizing them, and browsing their
// entries interactively. The CLI is built using cobra and supports
// verbose logging via the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - info: Show a manifest's dimensions, keys, and bounds
//   - sample: Run the sampling pipeline and write JSON output
//   - describe: Reduce every entry to summary statistics
//   - browse: Interactively browse stack entries
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers
// are passed through context.Context to allow structured progress
// tracking.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/dataviews/pkg/buildinfo"
	"github.com/matzehuels/dataviews/pkg/pipeline"
)

// appName is the application name used for display.
const appName = "dataviews"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Dataviews samples and displays dimensioned datasets",
		Long:         `Dataviews is a CLI tool for working with dimension-indexed datasets: collections of curves, histograms, and tables keyed by coordinates like time, trial, or orientation. It builds stacks from TOML manifests, pivots them along a dimension, and samples them into curves ready for plotting.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.infoCommand())
	root.AddCommand(c.sampleCommand())
	root.AddCommand(c.describeCommand())
	root.AddCommand(c.browseCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner() *pipeline.Runner {
	return pipeline.NewRunner(c.Logger)
}
