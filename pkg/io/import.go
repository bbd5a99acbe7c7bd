package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/lowent/netforge/pkg/netlist"
)

// ReadJSON decodes a circuit snapshot from r.
//
// Components are restored with their serialized ids and both identity
// counters are overwritten with the snapshot's values, so allocation
// continues exactly where the exported session stopped. Subcircuits
// are rebuilt with their contained components first and sealed
// afterwards when the snapshot says they were fixed.
//
// ReadJSON returns an error if the JSON is malformed. The returned
// circuit is independent of r; ReadJSON does not close r.
func ReadJSON(r io.Reader) (*netlist.Circuit, error) {
	var data snapshot
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}

	c := netlist.New()
	for _, sc := range sortedKeys(data.Subcircuits) {
		snap := data.Subcircuits[sc]
		s := c.NewSubcircuit(sc, snap.Ports, snap.Params)
		for _, comp := range snap.Components {
			s.Add(restoreComponent(c, comp))
		}
		if snap.Fixed {
			s.Fix()
		}
	}

	for _, comp := range data.Components {
		c.Add(restoreComponent(c, comp))
	}
	for _, d := range data.Directives {
		c.AddDirective(&netlist.Directive{Name: d.Name, Args: d.Args})
	}
	for k, v := range data.Options {
		c.SetOption(k, v)
	}

	c.Registry().Restore(data.Nets, data.Instances)
	return c, nil
}

// ImportJSON reads a snapshot file at path and returns the decoded
// circuit. The error wraps the underlying cause with the file path for
// context.
func ImportJSON(path string) (*netlist.Circuit, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadJSON(f)
}

func restoreComponent(c *netlist.Circuit, comp component) *netlist.Component {
	return c.RestoreComponent(comp.Letter, comp.Name, comp.ID, comp.Ports, comp.Model, comp.Params)
}

func sortedKeys(m map[string]subcircuit) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
