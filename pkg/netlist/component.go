package netlist

import (
	"errors"
	"fmt"
	"slices"
	"unicode"
)

var (
	// ErrNoPorts is returned when a component is constructed with an
	// empty port list.
	ErrNoPorts = errors.New("component needs at least one port")

	// ErrNoName is returned when neither a user name, a model, nor a
	// family name is supplied, leaving the name resolution empty.
	ErrNoName = errors.New("component needs a name, a model, or a family")
)

// Name slot indices. The effective name of a component is the first
// non-empty slot, in this priority order.
const (
	slotUser = iota
	slotModel
	slotFamily
)

// Model is a named bundle of default parameters used to seed a
// component's default layer.
type Model struct {
	Name   string
	Params Params
}

// Directive is a raw non-instance statement in the netlist language,
// such as simulation options or global node declarations. Args is nil
// for directives declared as a bare string.
type Directive struct {
	Name string
	Args Params
}

// Element is the sum of things a netlist statement can denote. The text
// emitter dispatches over it with an explicit type switch.
type Element interface{ element() }

func (*Directive) element() {}
func (*Component) element() {}
func (*Subcircuit) element() {}

// Component is a single leaf device instance: an ordered list of port
// nets, a two-layer parameter table, and a resolved name with a
// per-name sequence id. Components are created through
// [Circuit.NewComponent], [Prototype.New], or [Subcircuit.Inst], and
// derived from each other with [Component.Copy] and the combinators.
type Component struct {
	names  [3]string // user, model, family; first non-empty wins
	Ports  []Net
	Letter string
	Scope  string // enclosing subcircuit name, "" at top level

	user     Params // caller-supplied values
	defaults Params // model defaults, shadowed by user

	numID int
	circ  *Circuit
}

// Options configures direct component construction. All fields are
// optional except that at least one of Name, Model, or Family must
// resolve the component's name.
type Options struct {
	Name   string // user-chosen name, highest priority
	Model  *Model // seeds the default parameter layer
	Family string // device family name, lowest priority
	Letter string // category tag; derived from the name when empty
	Params Params // user parameter layer
}

// NewComponent builds a component owned by the circuit. The name is
// resolved before the sequence id is assigned because the instance
// counter is keyed by the resolved name. Returns [ErrNoPorts] for an
// empty port list and [ErrNoName] when the name resolves empty.
func (c *Circuit) NewComponent(ports []Net, opts Options) (*Component, error) {
	comp := &Component{
		Ports:  slices.Clone(ports),
		user:   opts.Params.Clone(),
		circ:   c,
		Letter: opts.Letter,
	}
	comp.names[slotUser] = opts.Name
	comp.names[slotFamily] = opts.Family
	if opts.Model != nil {
		comp.names[slotModel] = opts.Model.Name
		comp.defaults = opts.Model.Params.Clone()
	} else {
		comp.defaults = Params{}
	}

	name := comp.Name()
	if name == "" {
		return nil, ErrNoName
	}
	if len(ports) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoPorts, name)
	}
	if comp.Letter == "" {
		comp.Letter = string(unicode.ToUpper([]rune(name)[0]))
	}
	comp.numID = c.reg.AllocID(name)
	return comp, nil
}

// Name returns the first non-empty entry of the name priority list:
// user name, then model name, then family name.
func (comp *Component) Name() string {
	for _, n := range comp.names {
		if n != "" {
			return n
		}
	}
	return ""
}

// SetName writes the user-name slot. The model and family slots are
// fixed at construction.
func (comp *Component) SetName(name string) { comp.names[slotUser] = name }

// ModelName returns the name of the model that seeded the defaults, or
// "" when the component was built without one.
func (comp *Component) ModelName() string { return comp.names[slotModel] }

// NumID returns the per-name sequence id assigned at construction.
func (comp *Component) NumID() int { return comp.numID }

// Param returns the effective value for key, with user values shadowing
// model defaults. ok is false when neither layer holds the key. A nil
// value with ok true marks a required-but-unsupplied parameter.
func (comp *Component) Param(key string) (v any, ok bool) {
	if v, ok = comp.user[key]; ok {
		return v, true
	}
	v, ok = comp.defaults[key]
	return v, ok
}

// SetParam writes key into the user layer, shadowing any default.
func (comp *Component) SetParam(key string, v any) {
	if comp.user == nil {
		comp.user = Params{}
	}
	comp.user[key] = v
}

// Params returns the merged view (user over defaults) as a fresh map.
// This is the view the text emitter and snapshot serialize.
func (comp *Component) Params() Params {
	return comp.defaults.Merge(comp.user)
}

// UserParams returns a copy of the user layer only, which is what
// distinguishes supplied values from model defaults.
func (comp *Component) UserParams() Params { return comp.user.Clone() }

// Copy clones the component. The clone's sequence id is the seed's plus
// one and the circuit's per-name counter advances once more, so ids
// stay unique among same-named components. Ports and both parameter
// layers are copied; the seed is left untouched.
func (comp *Component) Copy() *Component {
	clone := *comp
	clone.Ports = slices.Clone(comp.Ports)
	clone.user = comp.user.Clone()
	clone.defaults = comp.defaults.Clone()
	clone.numID = comp.numID + 1
	comp.circ.reg.bump(comp.Name())
	return &clone
}

// Prototype is a factory for a device family: a default name, category
// letter, model, and parameter set. It replaces per-device constructor
// boilerplate with one value per family.
//
//	res := netlist.Prototype{Name: "Res", Letter: "R", Defaults: netlist.Params{"R": 1000}}
//	r, err := res.New(circ, []netlist.Net{in, out}, netlist.Params{"R": 470})
type Prototype struct {
	Name     string
	Letter   string
	Model    *Model
	Defaults Params
}

// New builds a component of this family on the given ports. The
// prototype defaults merge under the caller's params into the user
// layer, and the family name fills the lowest-priority name slot.
func (p Prototype) New(c *Circuit, ports []Net, params Params) (*Component, error) {
	return c.NewComponent(ports, Options{
		Family: p.Name,
		Letter: p.Letter,
		Model:  p.Model,
		Params: p.Defaults.Merge(params),
	})
}
