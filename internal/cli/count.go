package cli

import (
	"fmt"
	"slices"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/lowent/netforge/pkg/hierarchy"
	"github.com/lowent/netforge/pkg/spectre"
)

// countCommand creates the count command for hierarchy analysis.
func (c *CLI) countCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "count <netlist>",
		Short: "Count expanded instances per component and subcircuit",
		Long: `Count how many physical instances of every component and subcircuit
name exist once all subcircuit nesting is expanded.

A device nested inside a subcircuit that is itself instantiated several
times counts once per enclosing copy: its total is the product of all
enclosing multiplicities, summed over every way the name is reachable
from the top level.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runCount(args[0])
		},
	}
	return cmd
}

func (c *CLI) runCount(path string) error {
	circuit, err := spectre.ParseFile(path)
	if err != nil {
		return err
	}

	g := hierarchy.Build(circuit)
	counts := g.CountInstances()

	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	slices.Sort(names)

	rows := make([][]string, 0, len(names))
	for _, name := range names {
		kind := "device"
		if n, ok := g.Node(name); ok && n.Kind == hierarchy.KindSubcircuit {
			kind = "subcircuit"
		}
		rows = append(rows, []string{name, kind, fmt.Sprintf("%d", counts[name])})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Name", "Kind", "Instances").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if col == 2 {
				return StyleNumber
			}
			return StyleValue
		})

	fmt.Println(t.Render())
	return nil
}
