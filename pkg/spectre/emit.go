// Package spectre emits circuits in a Spectre-style netlist dialect and
// reads that dialect back into the entity model.
//
// Emission is pure string formatting over the circuit's contents.
// Reading is a scanner plus recursive parser producing a positioned
// syntax tree, followed by a transform into a [netlist.Circuit]; parse
// failures carry line and column and yield no partial result.
package spectre

import (
	"fmt"
	"os"
	"strings"

	"github.com/lowent/netforge/pkg/netlist"
)

// FmtNet renders a net reference: auto-numbered nets as "net<N>", named
// nets verbatim.
func FmtNet(n netlist.Net) string { return n.String() }

// fmtValue renders a parameter value. Numbers take exactly two decimal
// digits, lists render space-separated inside brackets, and everything
// else is quoted as a string.
func fmtValue(v any) string {
	switch x := v.(type) {
	case []any:
		parts := make([]string, len(x))
		for i, e := range x {
			parts[i] = fmt.Sprint(e)
		}
		return "[ " + strings.Join(parts, " ") + " ]"
	case int:
		return fmt.Sprintf("%.2f", float64(x))
	case int64:
		return fmt.Sprintf("%.2f", float64(x))
	case float32:
		return fmt.Sprintf("%.2f", x)
	case float64:
		return fmt.Sprintf("%.2f", x)
	default:
		return fmt.Sprintf("%q", fmt.Sprint(v))
	}
}

func fmtParams(p netlist.Params) string {
	kept := p.Pruned()
	pairs := make([]string, 0, len(kept))
	for _, k := range kept.SortedKeys() {
		pairs = append(pairs, fmt.Sprintf("%s=%s", k, fmtValue(kept[k])))
	}
	return strings.Join(pairs, " ")
}

func fmtNets(nets []netlist.Net) string {
	parts := make([]string, len(nets))
	for i, n := range nets {
		parts[i] = FmtNet(n)
	}
	return strings.Join(parts, " ")
}

// FmtComponent renders one instance line:
//
//	<letter><id> (<port1> <port2> …) <name> <k1>=<v1> …
//
// Parameters with falsy values are omitted.
func FmtComponent(comp *netlist.Component) string {
	line := fmt.Sprintf("%s%d (%s) %s", comp.Letter, comp.NumID(), fmtNets(comp.Ports), comp.Name())
	if params := fmtParams(comp.Params()); params != "" {
		line += " " + params
	}
	return line
}

// FmtDirective renders a raw statement: the bare name, followed by its
// arguments. Nil-valued arguments render bare, the rest as k=v with the
// value written verbatim, not value-formatted.
func FmtDirective(d *netlist.Directive) string {
	if len(d.Args) == 0 {
		return d.Name
	}
	pairs := make([]string, 0, len(d.Args))
	for _, k := range d.Args.SortedKeys() {
		if d.Args[k] == nil {
			pairs = append(pairs, k)
			continue
		}
		pairs = append(pairs, fmt.Sprintf("%s=%v", k, d.Args[k]))
	}
	return d.Name + " " + strings.Join(pairs, " ")
}

// FmtSubckt renders a definition block: the subckt header with formal
// ports, a parameters line when any formals exist (required ones bare,
// defaulted ones as k=v), the contained instance lines, and the closing
// ends line.
func FmtSubckt(s *netlist.Subcircuit) string {
	var b strings.Builder
	fmt.Fprintf(&b, "subckt %s %s\n", s.Name(), fmtNets(s.Ports()))

	formals := s.Params()
	if len(formals) > 0 {
		var bare, valued []string
		for _, k := range formals.SortedKeys() {
			if netlist.Falsy(formals[k]) {
				bare = append(bare, k)
			} else {
				valued = append(valued, fmt.Sprintf("%s=%v", k, formals[k]))
			}
		}
		fmt.Fprintf(&b, "parameters %s\n", strings.Join(append(bare, valued...), " "))
	}

	for _, comp := range s.Components() {
		b.WriteString(FmtComponent(comp))
		b.WriteByte('\n')
	}
	fmt.Fprintf(&b, "ends %s\n", s.Name())
	return b.String()
}

// FmtElement renders any netlist element.
func FmtElement(e netlist.Element) string {
	switch x := e.(type) {
	case *netlist.Directive:
		return FmtDirective(x)
	case *netlist.Component:
		return FmtComponent(x)
	case *netlist.Subcircuit:
		return FmtSubckt(x)
	default:
		return ""
	}
}

// Export renders the whole circuit: directives first, then every
// subcircuit block in name order, then the top-level instance lines,
// then a trailing options line when any global options are set.
func Export(c *netlist.Circuit) string {
	var b strings.Builder

	for _, d := range c.Directives() {
		b.WriteString(FmtDirective(d))
		b.WriteByte('\n')
	}

	for _, name := range c.SubcircuitNames() {
		s, _ := c.Subcircuit(name)
		b.WriteString(FmtSubckt(s))
	}

	for _, comp := range c.Components() {
		b.WriteString(FmtComponent(comp))
		b.WriteByte('\n')
	}

	if opts := c.Options(); len(opts) > 0 {
		pairs := make([]string, 0, len(opts))
		for _, k := range opts.SortedKeys() {
			pairs = append(pairs, fmt.Sprintf("%s=%v", k, opts[k]))
		}
		fmt.Fprintf(&b, "options %s\n", strings.Join(pairs, " "))
	}

	return b.String()
}

// ExportFile writes the rendered circuit to path as UTF-8 text.
func ExportFile(c *netlist.Circuit, path string) error {
	if err := os.WriteFile(path, []byte(Export(c)), 0o644); err != nil {
		return fmt.Errorf("write netlist: %w", err)
	}
	return nil
}
