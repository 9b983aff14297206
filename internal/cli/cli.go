// Package cli implements the plotfit command-line interface.
//
// plotfit runs the axis layout and curve decimation engines on a chart
// described in a TOML file and reports the results.
//
// # Commands
//
//   - layout: lay out the axes of a chart and print their geometry as JSON
//   - decimate: lay out a chart and decimate its series for the visible range
//   - ticks: print the ticks generated for a range
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. The logger
// is passed to commands through context.Context.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

const appName = "plotfit"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// version is injected via ldflags at build time.
var version = "dev"

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance writing log output to w.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
// The CLI's logger is attached to the command context before any subcommand
// runs.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "plotfit lays out chart axes and decimates curves",
		Long:         `plotfit computes axis scales, margins and visible tick labels for a chart described in TOML, and reduces large data series to the points needed to draw them.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.AddCommand(c.layoutCommand())
	root.AddCommand(c.decimateCommand())
	root.AddCommand(c.ticksCommand())

	return root
}
