// Package pkg provides the core libraries for Netforge circuit netlist
// tooling.
//
// # Overview
//
// Netforge models SPICE-style circuit netlists as structured data:
// components with ordered ports and layered parameters, subcircuit
// definitions, raw directives, and the identity counters that keep
// instance names unique. The pkg directory is organized into five main
// areas:
//
//  1. [netlist] - The in-memory circuit model (components, nets,
//     subcircuits, parameter tables, identity registry, combinators)
//  2. [spectre] - Text format support: an emitter and a reader for the
//     Spectre-flavored netlist syntax
//  3. [hierarchy] - Instantiation hierarchy graphs and expanded
//     instance counting
//  4. [models] - Device model library ingestion (Verilog-A, Eldo,
//     Spectre, TOML config dialects)
//  5. [io] - JSON circuit snapshots for persistence and transport
//
// # Architecture
//
// The typical data flow through Netforge:
//
//	Netlist text
//	         ↓
//	    [spectre] package (scan, parse, reconcile identity)
//	         ↓
//	    [netlist] package (circuit model + combinators)
//	         ↓
//	    [hierarchy] package (weighted graph + instance counts)
//	         ↓
//	    netlist text / JSON snapshot / DOT / SVG output
//
// # Quick Start
//
// Build a circuit programmatically and emit it as text:
//
//	import (
//	    "fmt"
//	    "github.com/lowent/netforge/pkg/netlist"
//	    "github.com/lowent/netforge/pkg/spectre"
//	)
//
//	circ := netlist.New()
//	in, out := circ.Net(), circ.Net()
//	res := netlist.Prototype{Name: "res", Letter: "R", Defaults: netlist.Params{"r": 1000.0}}
//	r, _ := res.New(circ, []netlist.Net{in, out}, netlist.Params{"r": 470.0})
//	circ.Add(r)
//	fmt.Print(spectre.Export(circ))
//
// Parse netlist text and count expanded instances:
//
//	circ, _ := spectre.ParseFile("ringosc.scs")
//	g := hierarchy.Build(circ)
//	for name, n := range g.CountInstances() {
//	    fmt.Printf("%s: %d\n", name, n)
//	}
//
// [netlist]: https://pkg.go.dev/github.com/lowent/netforge/pkg/netlist
// [spectre]: https://pkg.go.dev/github.com/lowent/netforge/pkg/spectre
// [hierarchy]: https://pkg.go.dev/github.com/lowent/netforge/pkg/hierarchy
// [models]: https://pkg.go.dev/github.com/lowent/netforge/pkg/models
// [io]: https://pkg.go.dev/github.com/lowent/netforge/pkg/io
package pkg
