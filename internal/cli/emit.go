package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	circio "github.com/lowent/netforge/pkg/io"
	"github.com/lowent/netforge/pkg/spectre"
)

// emitOpts holds the command-line flags for the emit command.
type emitOpts struct {
	output string // output file path (stdout if empty)
}

// emitCommand creates the emit command for rendering snapshots as text.
func (c *CLI) emitCommand() *cobra.Command {
	opts := &emitOpts{}

	cmd := &cobra.Command{
		Use:   "emit <snapshot.json>",
		Short: "Emit a circuit snapshot as netlist text",
		Long: `Emit a circuit snapshot (produced by 'parse' or by the library API)
as SPICE-style netlist text: directives first, then subcircuit blocks,
then top-level instance lines, then the global options line.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runEmit(args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default stdout)")
	return cmd
}

func (c *CLI) runEmit(path string, opts *emitOpts) error {
	circuit, err := circio.ImportJSON(path)
	if err != nil {
		return err
	}

	if opts.output == "" {
		fmt.Fprint(os.Stdout, spectre.Export(circuit))
		return nil
	}
	if err := spectre.ExportFile(circuit, opts.output); err != nil {
		return err
	}

	printSuccess("Netlist written")
	printFile(opts.output)
	printStats(len(circuit.Components()), len(circuit.Subcircuits()))
	return nil
}
