// Package hierarchy builds a weighted dependency graph over a circuit's
// subcircuits and leaf devices and computes, for every name, the true
// global instantiation count once all subcircuit nesting is expanded.
//
// A device nested three subcircuits deep, where each enclosing
// subcircuit is itself instantiated several times at a different level,
// has a global count equal to the product of all enclosing
// multiplicities, not its local occurrence count. That product-of-
// weights walk is the whole point of this package.
//
// The graph is rebuilt from scratch with [Build] whenever the circuit's
// contents change; nothing is maintained incrementally.
package hierarchy

import (
	"errors"
	"slices"

	"github.com/lowent/netforge/pkg/netlist"
)

var (
	// ErrInvalidNodeID is returned by [Graph.AddNode] when the node ID
	// is empty.
	ErrInvalidNodeID = errors.New("node ID must not be empty")

	// ErrDuplicateNodeID is returned by [Graph.AddNode] when a node
	// with the same ID already exists.
	ErrDuplicateNodeID = errors.New("duplicate node ID")

	// ErrUnknownSourceNode is returned by [Graph.AddEdge] when the From
	// node does not exist.
	ErrUnknownSourceNode = errors.New("unknown source node")

	// ErrUnknownTargetNode is returned by [Graph.AddEdge] when the To
	// node does not exist.
	ErrUnknownTargetNode = errors.New("unknown target node")
)

// DefaultRoot is the label of the root node created by [Build].
const DefaultRoot = "circuit"

// Kind distinguishes the root, subcircuit nodes, and leaf device nodes.
// The path-validity rules in CountInstances depend on it.
type Kind int

const (
	// KindRoot is the single entry node representing the circuit.
	KindRoot Kind = iota
	// KindSubcircuit is a registered subcircuit definition.
	KindSubcircuit
	// KindDevice is a leaf component with no definition of its own.
	KindDevice
)

// Node is a vertex in the hierarchy graph, identified by the component
// or subcircuit name it stands for.
type Node struct {
	ID   string
	Kind Kind
}

// Edge is a directed containment edge: From instantiates To, Weight
// times per single copy of From.
type Edge struct {
	From   string
	To     string
	Weight int
}

// Graph is a small directed multigraph specialized for hierarchy
// analysis. Adding an edge between an existing pair updates the weight
// in place, so re-tallying a containment relation is idempotent.
// The zero value is not usable; use [New].
type Graph struct {
	root     string
	nodes    map[string]*Node
	edges    []Edge
	outgoing map[string][]string
	order    []string // node insertion order, for deterministic output
}

// New creates an empty graph rooted at the given label.
func New(root string) *Graph {
	g := &Graph{
		root:     root,
		nodes:    make(map[string]*Node),
		outgoing: make(map[string][]string),
	}
	g.ensureNode(Node{ID: root, Kind: KindRoot})
	return g
}

// Root returns the root node's ID.
func (g *Graph) Root() string { return g.root }

// AddNode adds a node. Returns ErrInvalidNodeID for an empty ID and
// ErrDuplicateNodeID if the ID is taken.
func (g *Graph) AddNode(n Node) error {
	if n.ID == "" {
		return ErrInvalidNodeID
	}
	if _, exists := g.nodes[n.ID]; exists {
		return ErrDuplicateNodeID
	}
	g.ensureNode(n)
	return nil
}

func (g *Graph) ensureNode(n Node) {
	if _, exists := g.nodes[n.ID]; exists {
		return
	}
	node := n
	g.nodes[n.ID] = &node
	g.order = append(g.order, n.ID)
}

// AddEdge adds a weighted edge between existing nodes. If an edge for
// the same (From, To) pair already exists its weight is replaced.
func (g *Graph) AddEdge(e Edge) error {
	if _, ok := g.nodes[e.From]; !ok {
		return ErrUnknownSourceNode
	}
	if _, ok := g.nodes[e.To]; !ok {
		return ErrUnknownTargetNode
	}
	for i := range g.edges {
		if g.edges[i].From == e.From && g.edges[i].To == e.To {
			g.edges[i].Weight = e.Weight
			return nil
		}
	}
	g.edges = append(g.edges, e)
	g.outgoing[e.From] = append(g.outgoing[e.From], e.To)
	return nil
}

// Node returns the node with the given ID, or false if absent.
func (g *Graph) Node(id string) (*Node, bool) {
	n, ok := g.nodes[id]
	return n, ok
}

// Nodes returns all nodes in insertion order.
func (g *Graph) Nodes() []*Node {
	out := make([]*Node, 0, len(g.order))
	for _, id := range g.order {
		out = append(out, g.nodes[id])
	}
	return out
}

// Edges returns a copy of all edges in insertion order.
func (g *Graph) Edges() []Edge { return slices.Clone(g.edges) }

// Children returns the IDs this node has edges to. Read-only view.
func (g *Graph) Children(id string) []string { return g.outgoing[id] }

// Weight returns the weight of the edge From→To, or false if no such
// edge exists.
func (g *Graph) Weight(from, to string) (int, bool) {
	for _, e := range g.edges {
		if e.From == from && e.To == to {
			return e.Weight, true
		}
	}
	return 0, false
}

// Build constructs the hierarchy graph of a circuit, rooted at
// [DefaultRoot]. See [BuildRooted].
func Build(c *netlist.Circuit) *Graph {
	return BuildRooted(c, DefaultRoot)
}

// BuildRooted walks the circuit bottom-up: it tallies the direct
// component list per distinct name, draws a weighted edge from the root
// to each name, and recurses through subcircuit definitions, composing
// their subgraphs in place. A subcircuit referenced from several
// parents keeps one node with one incoming edge per parent; each
// definition's body is expanded once.
func BuildRooted(c *netlist.Circuit, root string) *Graph {
	g := New(root)
	expanded := make(map[string]bool)
	g.build(c, root, c.Components(), expanded)
	return g
}

func (g *Graph) build(c *netlist.Circuit, parent string, comps []*netlist.Component, expanded map[string]bool) {
	names, counts := tally(comps)
	for _, name := range names {
		if sub, ok := c.Subcircuit(name); ok {
			g.ensureNode(Node{ID: name, Kind: KindSubcircuit})
			g.AddEdge(Edge{From: parent, To: name, Weight: counts[name]}) //nolint:errcheck // endpoints just ensured
			if !expanded[name] {
				expanded[name] = true
				g.build(c, name, sub.Components(), expanded)
			}
			continue
		}
		g.ensureNode(Node{ID: name, Kind: KindDevice})
		g.AddEdge(Edge{From: parent, To: name, Weight: counts[name]}) //nolint:errcheck // endpoints just ensured
	}
}

// tally counts occurrences per distinct name, preserving first-seen
// order so graph construction is deterministic.
func tally(comps []*netlist.Component) ([]string, map[string]int) {
	var names []string
	counts := make(map[string]int)
	for _, comp := range comps {
		name := comp.Name()
		if counts[name] == 0 {
			names = append(names, name)
		}
		counts[name]++
	}
	return names, counts
}
