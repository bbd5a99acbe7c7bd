package netlist

import (
	"slices"

	"github.com/charmbracelet/log"
)

// Circuit is the top-level container for one build session: the ordered
// list of top-level components, the subcircuit definition table, any
// raw directives, global options, and the identity registry everything
// else allocates from. A circuit is built by one goroutine at a time
// and nothing in it is ever destroyed explicitly.
type Circuit struct {
	reg         *Registry
	components  []*Component
	subcircuits map[string]*Subcircuit
	directives  []*Directive
	options     Params
	warn        func(format string, args ...any)
}

// New returns an empty circuit. Soft warnings (such as adding to a
// fixed subcircuit) go to the default logger until [Circuit.SetWarnFunc]
// replaces the sink.
func New() *Circuit {
	return &Circuit{
		reg:         NewRegistry(),
		subcircuits: make(map[string]*Subcircuit),
		options:     Params{},
		warn:        log.Warnf,
	}
}

// SetWarnFunc replaces the sink for soft warnings. A nil f silences
// them.
func (c *Circuit) SetWarnFunc(f func(format string, args ...any)) { c.warn = f }

func (c *Circuit) warnf(format string, args ...any) {
	if c.warn != nil {
		c.warn(format, args...)
	}
}

// Registry exposes the circuit's identity registry.
func (c *Circuit) Registry() *Registry { return c.reg }

// Net allocates a fresh auto-numbered net.
func (c *Circuit) Net() Net { return c.reg.AllocNet() }

// Add appends components to the circuit in order.
func (c *Circuit) Add(comps ...*Component) {
	c.components = append(c.components, comps...)
}

// AddDirective appends a raw directive.
func (c *Circuit) AddDirective(d *Directive) {
	c.directives = append(c.directives, d)
}

// Components returns the top-level components in insertion order.
func (c *Circuit) Components() []*Component { return c.components }

// Directives returns the raw directives in insertion order.
func (c *Circuit) Directives() []*Directive { return c.directives }

// Subcircuit looks up a registered definition by name.
func (c *Circuit) Subcircuit(name string) (*Subcircuit, bool) {
	s, ok := c.subcircuits[name]
	return s, ok
}

// Subcircuits returns the definition table. The map is live; callers
// register through [Circuit.NewSubcircuit] rather than writing to it.
func (c *Circuit) Subcircuits() map[string]*Subcircuit { return c.subcircuits }

// SubcircuitNames returns the registered names in sorted order, for
// deterministic iteration.
func (c *Circuit) SubcircuitNames() []string {
	names := make([]string, 0, len(c.subcircuits))
	for name := range c.subcircuits {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// HasComponent reports whether comp (this exact instance) was added at
// the top level.
func (c *Circuit) HasComponent(comp *Component) bool {
	for _, have := range c.components {
		if have == comp {
			return true
		}
	}
	return false
}

// HasSubcircuit reports whether a definition is registered under name
// or any top-level component instantiates that name.
func (c *Circuit) HasSubcircuit(name string) bool {
	if _, ok := c.subcircuits[name]; ok {
		return true
	}
	for _, comp := range c.components {
		if comp.Name() == name {
			return true
		}
	}
	return false
}

// IntoSubckt snapshots the circuit's current component list into a
// brand-new registered subcircuit. The circuit's own list is not
// cleared; the components now belong to both views.
func (c *Circuit) IntoSubckt(name string, ports []Net, params Params) *Subcircuit {
	s := c.NewSubcircuit(name, ports, params)
	s.Add(c.components...)
	return s
}

// Options returns the global options map, emitted as a trailing options
// line by the text emitter.
func (c *Circuit) Options() Params { return c.options }

// SetOption writes a global option.
func (c *Circuit) SetOption(key string, v any) { c.options[key] = v }

// RestoreComponent rebuilds a component with an explicit sequence id,
// bypassing the instance counter. The text reader and the snapshot
// loader use it so ids from external sources stay authoritative; both
// are responsible for reconciling the registry afterwards (see
// [Registry.Ensure] and [Registry.Restore]).
func (c *Circuit) RestoreComponent(letter, name string, numID int, ports []Net, model string, params Params) *Component {
	comp := &Component{
		Ports:    slices.Clone(ports),
		Letter:   letter,
		user:     params.Clone(),
		defaults: Params{},
		numID:    numID,
		circ:     c,
	}
	comp.names[slotUser] = name
	comp.names[slotModel] = model
	return comp
}
