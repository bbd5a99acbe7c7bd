package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	circio "github.com/lowent/netforge/pkg/io"
	"github.com/lowent/netforge/pkg/spectre"
)

// parseOpts holds the command-line flags for the parse command.
type parseOpts struct {
	output string // output file path (stdout if empty)
}

// parseCommand creates the parse command for reading netlist text.
func (c *CLI) parseCommand() *cobra.Command {
	opts := &parseOpts{}

	cmd := &cobra.Command{
		Use:   "parse <netlist>",
		Short: "Parse netlist text into a circuit snapshot",
		Long: `Parse a SPICE-style netlist file into a structured circuit snapshot.

The snapshot is a JSON document holding every component, subcircuit
definition, directive, and the identity counters. It can be fed back
to 'emit' to regenerate netlist text, or to 'count' and 'graph' for
hierarchy analysis.

Parse failures report the line and column of the offending input and
produce no output.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runParse(args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default stdout)")
	return cmd
}

func (c *CLI) runParse(path string, opts *parseOpts) error {
	prog := newProgress(c.Logger)

	circuit, err := spectre.ParseFile(path)
	if err != nil {
		var perr *spectre.ParseError
		if errors.As(err, &perr) {
			printError("%s", perr)
			printDetail("%s", perr.Context)
			return fmt.Errorf("parse %s: %w", path, err)
		}
		return err
	}
	prog.done(fmt.Sprintf("Parsed %s", path))

	if opts.output == "" {
		return circio.WriteJSON(circuit, os.Stdout)
	}
	if err := circio.ExportJSON(circuit, opts.output); err != nil {
		return err
	}

	printSuccess("Snapshot written")
	printFile(opts.output)
	printStats(len(circuit.Components()), len(circuit.Subcircuits()))
	printNextStep("Count expanded instances", fmt.Sprintf("%s count %s", appName, path))
	return nil
}
