package cli

import (
	"fmt"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/lowent/netforge/pkg/hierarchy"
	"github.com/lowent/netforge/pkg/spectre"
)

// inspectCommand creates the inspect command for browsing a netlist.
func (c *CLI) inspectCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect <netlist>",
		Short: "Browse the circuit hierarchy interactively",
		Long: `Browse the instantiation hierarchy of a netlist in an interactive
terminal view. Subcircuits are listed first, then devices, each with
its expanded instance count and the scopes that instantiate it.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runInspect(args[0])
		},
	}
	return cmd
}

func (c *CLI) runInspect(path string) error {
	circuit, err := spectre.ParseFile(path)
	if err != nil {
		return err
	}

	g := hierarchy.Build(circuit)
	model := NewHierarchyModel(filepath.Base(path), g)
	if len(model.Rows) == 0 {
		printWarning("Circuit is empty, nothing to browse")
		return nil
	}

	if _, err := tea.NewProgram(model).Run(); err != nil {
		return fmt.Errorf("run browser: %w", err)
	}
	return nil
}
