package cli

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/lowent/netforge/pkg/models"
)

// modelsOpts holds the command-line flags for the models command.
type modelsOpts struct {
	dialect string
}

// dialectParsers maps the --dialect flag values to library parsers.
var dialectParsers = map[string]models.Parser{
	"veriloga": models.VerilogA,
	"eldo":     models.Eldo,
	"spectre":  models.Spectre,
	"config":   models.Config,
}

// modelsCommand creates the models command for listing device models.
func (c *CLI) modelsCommand() *cobra.Command {
	opts := &modelsOpts{dialect: "spectre"}

	cmd := &cobra.Command{
		Use:   "models <file>",
		Short: "List device models defined in a model library file",
		Long: `List the device models a library file defines, with their default
parameters.

Supported dialects: veriloga (Verilog-A module headers), eldo (Eldo
.subckt headers), spectre (Spectre subckt parameter lines), and
config (a TOML model table with inheritance).`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runModels(args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.dialect, "dialect", "d", opts.dialect, "library dialect: veriloga, eldo, spectre, config")
	return cmd
}

func (c *CLI) runModels(path string, opts *modelsOpts) error {
	parse, ok := dialectParsers[opts.dialect]
	if !ok {
		return fmt.Errorf("unknown dialect %q (want veriloga, eldo, spectre, or config)", opts.dialect)
	}

	lib, err := models.ParseFile(path, parse)
	if err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	if len(lib) == 0 {
		printWarning("No models found in %s", path)
		return nil
	}

	names := make([]string, 0, len(lib))
	for name := range lib {
		names = append(names, name)
	}
	slices.Sort(names)

	rows := make([][]string, 0, len(names))
	for _, name := range names {
		m := lib[name]
		pairs := make([]string, 0, len(m.Params))
		for _, key := range m.Params.SortedKeys() {
			pairs = append(pairs, fmt.Sprintf("%s=%v", key, m.Params[key]))
		}
		rows = append(rows, []string{name, strings.Join(pairs, " ")})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Model", "Parameters").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if col == 0 {
				return StyleHighlight
			}
			return StyleValue
		})

	fmt.Println(t.Render())
	printDetail("%d models · %s dialect", len(lib), opts.dialect)
	return nil
}
