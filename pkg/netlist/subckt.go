package netlist

import (
	"errors"
	"fmt"
	"slices"
	"sort"
)

var (
	// ErrPortCount is returned by Inst when the supplied port count
	// does not match the subcircuit's formal port count.
	ErrPortCount = errors.New("wrong number of ports supplied")

	// ErrMissingParams is returned by Inst when formal parameters with
	// nil defaults exist but the caller supplied none.
	ErrMissingParams = errors.New("required parameters not supplied")

	// ErrParamMismatch is returned by Inst when the supplied parameter
	// keys do not exactly match the nil-defaulted formal parameters.
	ErrParamMismatch = errors.New("supplied parameters do not match required parameters")
)

// Subcircuit is a reusable, named container of components with a fixed
// formal port list. Subcircuits self-register into their circuit's
// definition table at creation (last write wins for a repeated name),
// accept components through Add until Fix is called, and stamp out leaf
// instances of themselves through Inst.
type Subcircuit struct {
	name       string
	ports      []Net
	params     Params
	components []*Component
	fixed      bool
	circ       *Circuit
}

// NewSubcircuit creates a subcircuit and registers it under name in the
// circuit's definition table, replacing any previous definition.
func (c *Circuit) NewSubcircuit(name string, ports []Net, params Params) *Subcircuit {
	s := &Subcircuit{
		name:   name,
		ports:  append([]Net(nil), ports...),
		params: params.Clone(),
		circ:   c,
	}
	c.subcircuits[name] = s
	return s
}

// Name returns the subcircuit's name.
func (s *Subcircuit) Name() string { return s.name }

// Ports returns the formal port list.
func (s *Subcircuit) Ports() []Net { return s.ports }

// Params returns the formal parameter table. Nil-valued entries are
// required at instantiation time.
func (s *Subcircuit) Params() Params { return s.params }

// Components returns the contained components in insertion order.
func (s *Subcircuit) Components() []*Component { return s.components }

// Fixed reports whether the subcircuit has been sealed against Add.
func (s *Subcircuit) Fixed() bool { return s.fixed }

// Fix seals the subcircuit. Later Add calls warn and are ignored.
func (s *Subcircuit) Fix() { s.fixed = true }

// Add appends components and tags them with the subcircuit's scope.
// Adding to a fixed subcircuit is not an error: the attempt is reported
// through the circuit's warn logger and dropped.
func (s *Subcircuit) Add(comps ...*Component) {
	if s.fixed {
		s.circ.warnf("subcircuit %s is fixed, dropping %d component(s)", s.name, len(comps))
		return
	}
	for _, comp := range comps {
		comp.Scope = s.name
		s.components = append(s.components, comp)
	}
}

// Contains reports whether comp was added to this subcircuit.
func (s *Subcircuit) Contains(comp *Component) bool {
	for _, have := range s.components {
		if have == comp {
			return true
		}
	}
	return false
}

// Inst builds a component instance of this subcircuit on the given
// actual ports. The port count must match the formals, and every formal
// parameter with a nil default must be supplied: params' key set has to
// equal the nil-defaulted set exactly when any such formals exist.
func (s *Subcircuit) Inst(ports []Net, params Params) (*Component, error) {
	if len(ports) != len(s.ports) {
		return nil, fmt.Errorf("%w: %s needs %d, got %d", ErrPortCount, s.name, len(s.ports), len(ports))
	}

	required := s.params.NilKeys()
	sort.Strings(required)

	if len(required) > 0 {
		if params == nil {
			return nil, fmt.Errorf("%w: %s needs %v", ErrMissingParams, s.name, required)
		}
		supplied := make([]string, 0, len(params))
		for k := range params {
			supplied = append(supplied, k)
		}
		sort.Strings(supplied)
		if !slices.Equal(required, supplied) {
			return nil, fmt.Errorf("%w: %s needs %v, got %v", ErrParamMismatch, s.name, required, supplied)
		}
	}

	return s.circ.NewComponent(ports, Options{Name: s.name, Params: params})
}
