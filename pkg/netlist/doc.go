// Package netlist provides the in-memory model for electrical circuit
// netlists: leaf component instances, reusable subcircuits, and the
// top-level circuit that owns identity allocation for both.
//
// # Identity
//
// Every circuit owns a [Registry] with two monotonic counters: a net
// counter producing fresh auto-numbered nets, and a per-name instance
// counter producing sequence ids. A component's id is assigned at
// construction by reading-then-incrementing the counter for its resolved
// name, and [Component.Copy] bumps the same counter again. No identifier
// is ever recycled.
//
// # Topology combinators
//
// Components derive new topologies by repeated cloning: [Component.Chain]
// wires clones in series, [Component.Parallel] stacks them on shared
// nets, [Component.Fanout] and [Component.Direct] split and merge, and
// [Component.Loop] builds a two-element self loop. Clones never mutate
// their seed (with the single documented exception of Fanout, which
// reassigns the seed's last port before cloning).
//
// # Concurrency
//
// A circuit and everything it owns is built by one goroutine at a time.
// The counters are plain ints; concurrent construction against the same
// circuit is unsupported.
package netlist
