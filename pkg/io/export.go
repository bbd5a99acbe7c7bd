package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/lowent/netforge/pkg/netlist"
)

type snapshot struct {
	Instances   map[string]int        `json:"instances"`
	Nets        int                   `json:"nets"`
	Components  []component           `json:"components"`
	Subcircuits map[string]subcircuit `json:"subcircuits,omitempty"`
	Directives  []directive           `json:"directives,omitempty"`
	Options     netlist.Params        `json:"options,omitempty"`
}

type component struct {
	Letter string         `json:"letter"`
	Name   string         `json:"name"`
	ID     int            `json:"id"`
	Ports  []netlist.Net  `json:"ports"`
	Model  string         `json:"model,omitempty"`
	Params netlist.Params `json:"params,omitempty"`
}

type subcircuit struct {
	Ports      []netlist.Net  `json:"ports"`
	Params     netlist.Params `json:"params,omitempty"`
	Fixed      bool           `json:"fixed"`
	Components []component    `json:"components,omitempty"`
}

type directive struct {
	Name string         `json:"name"`
	Args netlist.Params `json:"args,omitempty"`
}

func snapComponent(comp *netlist.Component) component {
	return component{
		Letter: comp.Letter,
		Name:   comp.Name(),
		ID:     comp.NumID(),
		Ports:  comp.Ports,
		Model:  comp.ModelName(),
		Params: comp.Params(),
	}
}

// WriteJSON encodes the circuit as a snapshot and writes it to w. The
// output can be re-imported with [ReadJSON] for round-trip processing.
func WriteJSON(c *netlist.Circuit, w io.Writer) error {
	out := snapshot{
		Instances:  c.Registry().Instances(),
		Nets:       c.Registry().Nets(),
		Components: make([]component, len(c.Components())),
		Options:    c.Options(),
	}

	for i, comp := range c.Components() {
		out.Components[i] = snapComponent(comp)
	}

	if names := c.SubcircuitNames(); len(names) > 0 {
		out.Subcircuits = make(map[string]subcircuit, len(names))
		for _, name := range names {
			s, _ := c.Subcircuit(name)
			snap := subcircuit{
				Ports:      s.Ports(),
				Params:     s.Params(),
				Fixed:      s.Fixed(),
				Components: make([]component, len(s.Components())),
			}
			for i, comp := range s.Components() {
				snap.Components[i] = snapComponent(comp)
			}
			out.Subcircuits[name] = snap
		}
	}

	for _, d := range c.Directives() {
		out.Directives = append(out.Directives, directive{Name: d.Name, Args: d.Args})
	}
	if len(out.Options) == 0 {
		out.Options = nil
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportJSON writes a circuit snapshot to a JSON file at path.
// This is a convenience wrapper around [WriteJSON] for file-based output.
func ExportJSON(c *netlist.Circuit, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteJSON(c, f)
}
