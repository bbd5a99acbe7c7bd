// Package cli implements the netforge command-line interface.
//
// This package provides commands for parsing netlist text into circuit
// snapshots, emitting snapshots back to netlist text, analyzing
// hierarchy instance counts, rendering the hierarchy graph, ingesting
// device model libraries, and serving the toolchain over HTTP. The CLI
// is built using cobra and supports verbose logging via the
// charmbracelet/log library.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/lowent/netforge/pkg/buildinfo"
)

// appName is the application name used for display.
const appName = "netforge"

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
		Short:        "Netforge builds, analyzes, and converts circuit netlists",
		Long:         `Netforge is a CLI tool for working with SPICE-style circuit netlists: parsing them into structured snapshots, emitting snapshots back to text, counting expanded instance hierarchies, and rendering hierarchy graphs.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.parseCommand())
	root.AddCommand(c.emitCommand())
	root.AddCommand(c.countCommand())
	root.AddCommand(c.graphCommand())
	root.AddCommand(c.modelsCommand())
	root.AddCommand(c.inspectCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.completionCommand())

	return root
}
