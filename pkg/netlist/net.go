package netlist

import (
	"encoding/json"
	"fmt"
)

// Net identifies an electrical connection point. A net is either
// auto-numbered (allocated through [Registry.AllocNet]) or named by the
// user. Nets are value types and compare by value: two auto nets are
// equal iff their numbers match, two named nets iff their names match.
type Net struct {
	name  string
	num   int
	named bool
}

// NumNet returns an auto-numbered net. Callers normally obtain these
// from [Circuit.Net] rather than picking numbers by hand.
func NumNet(n int) Net { return Net{num: n} }

// NamedNet returns a user-named net such as "VDD" or "gnd".
func NamedNet(name string) Net { return Net{name: name, named: true} }

// Named reports whether the net carries a user-chosen name.
func (n Net) Named() bool { return n.named }

// Name returns the user-chosen name, or "" for auto-numbered nets.
func (n Net) Name() string { return n.name }

// Num returns the auto-assigned number, or 0 for named nets.
func (n Net) Num() int { return n.num }

// String renders the net the way the text emitter does: auto nets as
// "net<N>", named nets verbatim.
func (n Net) String() string {
	if n.named {
		return n.name
	}
	return fmt.Sprintf("net%d", n.num)
}

// MarshalJSON encodes auto nets as JSON numbers and named nets as
// strings, matching the circuit snapshot format.
func (n Net) MarshalJSON() ([]byte, error) {
	if n.named {
		return json.Marshal(n.name)
	}
	return json.Marshal(n.num)
}

// UnmarshalJSON decodes a JSON number into an auto net and a JSON string
// into a named net.
func (n *Net) UnmarshalJSON(data []byte) error {
	var num int
	if err := json.Unmarshal(data, &num); err == nil {
		*n = NumNet(num)
		return nil
	}
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return fmt.Errorf("net must be a number or a string: %w", err)
	}
	*n = NamedNet(name)
	return nil
}
