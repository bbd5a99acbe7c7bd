package netlist

import (
	"errors"
	"fmt"
)

var (
	// ErrLoopPorts is returned by Loop when the component has fewer
	// than two ports.
	ErrLoopPorts = errors.New("self loop needs at least two ports")

	// ErrBadMask is returned by Loop when the mask does not select
	// exactly two port positions.
	ErrBadMask = errors.New("mask must select exactly two ports")
)

// Terminator produces the last port of the final component in a chain.
// It receives the chain index of that component and is evaluated once.
type Terminator func(i int) Net

// FixedNet adapts a literal net into a [Terminator].
func FixedNet(n Net) Terminator {
	return func(int) Net { return n }
}

// Loop derives a two-element self loop: the seed plus a clone with two
// ports swapped. mask selects the positions to swap, one bool per port;
// nil selects the first two. Selecting any other count than two is
// [ErrBadMask], and a component with fewer than two ports cannot loop.
//
// With ports [IN, VDD, OUT, GND] and mask {true, false, true, false}
// the result's port lists are [IN, VDD, OUT, GND] and [OUT, VDD, IN, GND].
func (comp *Component) Loop(mask []bool) ([]*Component, error) {
	if len(comp.Ports) < 2 {
		return nil, fmt.Errorf("%w: %s has %d", ErrLoopPorts, comp.Name(), len(comp.Ports))
	}

	first, second := 0, 1
	if mask != nil {
		first, second = -1, -1
		selected := 0
		for i, on := range mask {
			if !on {
				continue
			}
			if i >= len(comp.Ports) {
				return nil, fmt.Errorf("%w: position %d of %d ports", ErrBadMask, i, len(comp.Ports))
			}
			selected++
			if first < 0 {
				first = i
			} else if second < 0 {
				second = i
			}
		}
		if selected != 2 {
			return nil, fmt.Errorf("%w: selected %d", ErrBadMask, selected)
		}
	}

	clone := comp.Copy()
	clone.Ports[first], clone.Ports[second] = clone.Ports[second], clone.Ports[first]
	return []*Component{comp, clone}, nil
}

// Invert is Loop with no mask: for a two-port component this reverses
// the port list of the clone.
func (comp *Component) Invert() ([]*Component, error) {
	return comp.Loop(nil)
}

// Chain wires count components in series. Each clone's first port is
// the previous component's last port; every middle link gets a fresh
// net, and the final component's last port is a fresh net too. Ports
// between first and last are copied unchanged from the seed. The seed
// is the first element of the result. count <= 1 returns just the seed.
func (comp *Component) Chain(count int) []*Component {
	return comp.ChainTo(count, nil)
}

// ChainTo is Chain with an explicit terminator for the final
// component's last port. term is evaluated exactly once, with the index
// of the final component; nil means a fresh net. Boundary behavior:
// count 1 returns the seed unchanged (the terminator is never
// evaluated), count 2 produces one clone whose last port is the
// terminator.
func (comp *Component) ChainTo(count int, term Terminator) []*Component {
	components := []*Component{comp}
	last := len(comp.Ports) - 1

	for i := 1; i < count; i++ {
		prev := components[i-1]
		clone := prev.Copy()
		clone.Ports[0] = prev.Ports[last]
		if i == count-1 && term != nil {
			clone.Ports[last] = term(i)
		} else {
			clone.Ports[last] = comp.circ.Net()
		}
		components = append(components, clone)
	}
	return components
}

// Parallel derives count components sharing every port of the seed,
// the electrical parallel combination. count <= 1 returns just the seed.
func (comp *Component) Parallel(count int) []*Component {
	components := []*Component{comp}
	for i := 1; i < count; i++ {
		components = append(components, components[i-1].Copy())
	}
	return components
}

// Fanout derives count components sharing every port except the last,
// which is reassigned to a fresh net on every element including the
// seed. Reassigning the seed's own last port is a deliberate side
// effect: a fanout's outputs are all new nets.
func (comp *Component) Fanout(count int) []*Component {
	last := len(comp.Ports) - 1
	comp.Ports[last] = comp.circ.Net()
	components := []*Component{comp}
	for i := 1; i < count; i++ {
		clone := components[i-1].Copy()
		clone.Ports[last] = comp.circ.Net()
		components = append(components, clone)
	}
	return components
}

// Direct is the dual of Fanout: count components sharing every port
// except the first, which is reassigned to a fresh net on every clone
// after the seed. Unlike Fanout the seed's own first port is preserved;
// the asymmetry is intentional and matches how fan-in trees keep their
// original driver.
func (comp *Component) Direct(count int) []*Component {
	components := []*Component{comp}
	for i := 1; i < count; i++ {
		clone := components[i-1].Copy()
		clone.Ports[0] = comp.circ.Net()
		components = append(components, clone)
	}
	return components
}

// Shift rotates the port list left by k positions, in place. Negative k
// rotates right. Unlike the other combinators Shift mutates the
// receiver and produces no clones.
func (comp *Component) Shift(k int) {
	n := len(comp.Ports)
	if n == 0 {
		return
	}
	k = ((k % n) + n) % n
	if k == 0 {
		return
	}
	rotated := make([]Net, 0, n)
	rotated = append(rotated, comp.Ports[k:]...)
	rotated = append(rotated, comp.Ports[:k]...)
	comp.Ports = rotated
}

// GetPorts selects the ports of comp at the positions mask marks true,
// preserving order. A helper for wiring combinator results together.
func GetPorts(comp *Component, mask []bool) []Net {
	var out []Net
	for i, on := range mask {
		if on && i < len(comp.Ports) {
			out = append(out, comp.Ports[i])
		}
	}
	return out
}

// SetPorts overwrites the ports of comp at the positions mask marks
// true, taking replacements from repl in mask order. The number of
// selected positions must equal len(repl) and every selected position
// must be a valid port index; [ErrBadMask] otherwise, with the ports
// untouched.
func SetPorts(comp *Component, mask []bool, repl []Net) error {
	selected := 0
	for i, on := range mask {
		if !on {
			continue
		}
		if i >= len(comp.Ports) {
			return fmt.Errorf("%w: position %d of %d ports", ErrBadMask, i, len(comp.Ports))
		}
		selected++
	}
	if selected != len(repl) {
		return fmt.Errorf("%w: selected %d positions for %d nets", ErrBadMask, selected, len(repl))
	}
	next := 0
	for i, on := range mask {
		if on {
			comp.Ports[i] = repl[next]
			next++
		}
	}
	return nil
}
