package netlist

// Registry owns the two identity counters of a circuit: the net counter
// and the per-name instance counter. Both are monotonically increasing
// with no recycling and no bounds. A registry belongs to exactly one
// [Circuit] and is not safe for concurrent use.
type Registry struct {
	nets      int
	instances map[string]int
}

// NewRegistry returns a registry with both counters at zero.
func NewRegistry() *Registry {
	return &Registry{instances: make(map[string]int)}
}

// AllocNet returns the current net counter as a fresh auto net and
// increments the counter. It is the only producer of auto net numbers.
func (r *Registry) AllocNet() Net {
	n := NumNet(r.nets)
	r.nets++
	return n
}

// AllocID reads-then-increments the instance counter for name.
func (r *Registry) AllocID(name string) int {
	id := r.instances[name]
	r.instances[name]++
	return id
}

// Ensure raises the instance counter for name to at least id+1, so that
// ids adopted from parsed text never collide with later allocations.
func (r *Registry) Ensure(name string, id int) {
	if r.instances[name] <= id {
		r.instances[name] = id + 1
	}
}

// Nets returns the current value of the net counter.
func (r *Registry) Nets() int { return r.nets }

// Instances returns a copy of the per-name instance counters.
func (r *Registry) Instances() map[string]int {
	out := make(map[string]int, len(r.instances))
	for k, v := range r.instances {
		out[k] = v
	}
	return out
}

// Restore overwrites both counters, typically when loading a snapshot.
func (r *Registry) Restore(nets int, instances map[string]int) {
	r.nets = nets
	r.instances = make(map[string]int, len(instances))
	for k, v := range instances {
		r.instances[k] = v
	}
}

// bump increments the instance counter for name without yielding the id.
// Component.Copy uses it: the clone takes seed id + 1 and the counter
// must advance in step.
func (r *Registry) bump(name string) { r.instances[name]++ }
