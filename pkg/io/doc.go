// Package io provides JSON import and export for circuit snapshots.
//
// # Overview
//
// A snapshot is the serialized form of one [netlist.Circuit]: the
// per-name instance counters, the net counter, every top-level
// component, every subcircuit definition with its contained components
// and fixed flag, raw directives, and global options. The format is
// designed for:
//
//   - Persisting a build session and resuming it later
//   - Passing circuits between tools without re-emitting netlist text
//   - Round-trip preservation: export then import yields an equivalent circuit
//
// # JSON Format
//
//	{
//	  "instances": {"res": 2},
//	  "nets": 3,
//	  "components": [
//	    {"letter": "R", "name": "res", "id": 0, "ports": ["in", 0], "params": {"R": 470}}
//	  ],
//	  "subcircuits": {
//	    "inv": {"ports": ["a", "y"], "fixed": true, "components": [...]}
//	  },
//	  "directives": [{"name": "simulator", "args": {"lang": "spectre"}}],
//	  "options": {"temp": 27}
//	}
//
// Ports serialize the way nets compare: auto-numbered nets as JSON
// numbers, named nets as strings. Component params hold the merged
// view (user values over model defaults), so a snapshot stays
// self-contained even when the model files that seeded it are gone.
//
// # Import
//
// Use [ImportJSON] to read a snapshot from a file path, or [ReadJSON]
// to read from any io.Reader. Instance ids and both counters are
// restored verbatim; components built on the imported circuit
// afterwards continue from the restored counters.
//
// # Export
//
// Use [ExportJSON] to write a snapshot to a file, or [WriteJSON] to
// write to any io.Writer.
//
// [netlist.Circuit]: github.com/lowent/netforge/pkg/netlist.Circuit
package io
