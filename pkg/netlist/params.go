package netlist

import "sort"

// Params maps parameter names to values. Values are numbers, strings,
// lists, or nil; a nil value marks a parameter as "required, not yet
// supplied" and is how subcircuit formals declare mandatory parameters.
type Params map[string]any

// Clone returns a shallow copy. A nil receiver yields an empty map so
// callers can mutate the result unconditionally.
func (p Params) Clone() Params {
	out := make(Params, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}

// Merge returns a new map with p's entries overridden by over's.
func (p Params) Merge(over Params) Params {
	out := p.Clone()
	for k, v := range over {
		out[k] = v
	}
	return out
}

// NilKeys returns the names of parameters whose value is nil, in
// unspecified order.
func (p Params) NilKeys() []string {
	var keys []string
	for k, v := range p {
		if v == nil {
			keys = append(keys, k)
		}
	}
	return keys
}

// Pruned returns a copy of p without falsy-valued entries.
func (p Params) Pruned() Params {
	out := make(Params, len(p))
	for k, v := range p {
		if !Falsy(v) {
			out[k] = v
		}
	}
	return out
}

// SortedKeys returns p's keys in sorted order, for deterministic
// serialization.
func (p Params) SortedKeys() []string {
	keys := make([]string, 0, len(p))
	for k := range p {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Falsy reports whether v is absent-like for serialization purposes:
// nil, empty string, numeric zero, or false. The text emitter omits
// falsy parameter values and the config model parser prunes them.
func Falsy(v any) bool {
	switch x := v.(type) {
	case nil:
		return true
	case string:
		return x == ""
	case bool:
		return !x
	case int:
		return x == 0
	case int64:
		return x == 0
	case float64:
		return x == 0
	case float32:
		return x == 0
	default:
		return false
	}
}
