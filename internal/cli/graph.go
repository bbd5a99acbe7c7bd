package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lowent/netforge/pkg/hierarchy"
	"github.com/lowent/netforge/pkg/spectre"
)

// graphOpts holds the command-line flags for the graph command.
type graphOpts struct {
	output string // output file path (stdout if empty)
	format string // dot or svg; inferred from the output extension when empty
}

// graphCommand creates the graph command for rendering the hierarchy.
func (c *CLI) graphCommand() *cobra.Command {
	opts := &graphOpts{}

	cmd := &cobra.Command{
		Use:   "graph <netlist>",
		Short: "Render the subcircuit hierarchy as DOT or SVG",
		Long: `Render the instantiation hierarchy of a netlist as a weighted graph.

Each node is a component or subcircuit name; each edge carries the
number of instances the parent scope creates. The format follows
--format, or the file extension of --output when --format is unset:
.svg renders an image, anything else writes Graphviz DOT text.
Without --output the output goes to stdout.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runGraph(args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file, .dot or .svg (default stdout)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "output format: dot (default), svg")
	return cmd
}

func (c *CLI) runGraph(path string, opts *graphOpts) error {
	format := opts.format
	if format == "" {
		format = "dot"
		if strings.EqualFold(filepath.Ext(opts.output), ".svg") {
			format = "svg"
		}
	}
	if format != "dot" && format != "svg" {
		return fmt.Errorf("unknown format %q (want dot or svg)", format)
	}

	circuit, err := spectre.ParseFile(path)
	if err != nil {
		return err
	}

	g := hierarchy.Build(circuit)
	dot := hierarchy.ToDOT(g)

	data := []byte(dot)
	if format == "svg" {
		spinner := newSpinner("Rendering hierarchy...")
		spinner.Start()
		svg, err := hierarchy.RenderSVG(dot)
		if err != nil {
			spinner.StopWithError("Render failed")
			return fmt.Errorf("render svg: %w", err)
		}
		spinner.Stop()
		data = svg
	}

	if opts.output == "" {
		_, err := os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(opts.output, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", opts.output, err)
	}

	printSuccess("Hierarchy written")
	printFile(opts.output)
	printDetail("%d nodes · %d edges", len(g.Nodes()), len(g.Edges()))
	return nil
}
