package graph

// Node returns the node with the given ID and whether it is live (exists
// and has not been removed).
func (g *Graph) Node(id NodeID) (*Node, bool) {
	if id < 0 || int(id) >= len(g.nodes) {
		return nil, false
	}
	n := g.nodes[id]
	if n == nil || n.removed {
		return nil, false
	}

	return n, true
}

// Nodes returns every live node, ordered by ascending NodeID. Only the
// returned slice header is a fresh copy: its elements are the same *Node
// pointers held by the Graph, so mutating a returned Node's fields mutates
// the Graph's own state. Appending to or reordering the slice, however,
// does not affect the Graph.
func (g *Graph) Nodes() []*Node {
	out := make([]*Node, 0, len(g.nodes))
	for _, n := range g.nodes {
		if n != nil && !n.removed {
			out = append(out, n)
		}
	}

	return out
}

// RemoveNode tombstones the node (its NodeID is reserved and never
// reissued, G5) and removes every edge touching it, in either direction.
// Returns ErrInvalidNode if id does not name a live node.
func (g *Graph) RemoveNode(id NodeID) error {
	n, ok := g.Node(id)
	if !ok {
		return ErrInvalidNode
	}
	n.removed = true

	live := g.edges[:0]
	for _, e := range g.edges {
		if e.From == id || e.To == id {
			continue
		}
		live = append(live, e)
	}
	g.edges = live

	return nil
}
