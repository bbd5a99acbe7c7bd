package hierarchy

// CountInstances computes the expanded instance count for every
// non-root node in the graph.
//
// For each target it enumerates every simple path from the root and
// keeps only valid ones: after the first edge, a path may only pass
// through subcircuit nodes until it terminates at the target. A path
// that leaves the subcircuit chain cannot re-enter it, so a leaf is
// reachable only as the final hop. Each valid path contributes the
// product of its edge weights; the target's count is the sum over all
// valid paths.
//
// The result is a snapshot. Rebuild the graph and call again after the
// circuit changes.
func (g *Graph) CountInstances() map[string]int {
	counts := make(map[string]int, len(g.order)-1)
	for _, id := range g.order {
		if id == g.root {
			continue
		}
		counts[id] = g.countNode(id)
	}
	return counts
}

// Count returns the expanded instance count of a single node, or 0 for
// an unknown ID or the root itself.
func (g *Graph) Count(id string) int {
	if id == g.root {
		return 0
	}
	if _, ok := g.nodes[id]; !ok {
		return 0
	}
	return g.countNode(id)
}

func (g *Graph) countNode(target string) int {
	onPath := map[string]bool{g.root: true}
	return g.walk(g.root, target, 1, onPath)
}

// walk extends the current simple path from node toward target,
// carrying the running product of edge weights. Only subcircuit nodes
// may serve as interior hops.
func (g *Graph) walk(node, target string, product int, onPath map[string]bool) int {
	total := 0
	for _, next := range g.outgoing[node] {
		if onPath[next] {
			continue
		}
		weight, _ := g.Weight(node, next)
		if next == target {
			total += product * weight
			continue
		}
		if g.nodes[next].Kind != KindSubcircuit {
			continue
		}
		onPath[next] = true
		total += g.walk(next, target, product*weight, onPath)
		delete(onPath, next)
	}
	return total
}
