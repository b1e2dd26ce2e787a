package graph

import "github.com/Michael-A-Kuykendall/auxide/node"

// NodeID is an opaque, stable, monotonically assigned handle. Removing a
// node reserves its NodeID; the same value is never issued again (G5).
type NodeID int

// EdgeID is an opaque, stable, monotonically assigned handle identifying an
// edge within a Graph's lifetime.
type EdgeID int

// Node is one vertex of the signal graph. Inputs and Outputs are derived
// once from Kind (and, for KindExternal, from Params.Def) at AddNode time
// and stored on the Node itself, so that later Plan compilation never has
// to re-derive them from Kind.
type Node struct {
	ID       NodeID
	Kind     node.Kind
	Params   any
	Inputs   []node.Port
	Outputs  []node.Port
	Required int

	removed bool
}

// Edge connects an output port of one node to an input port of another.
// Rate must equal the Rate of both endpoint ports.
type Edge struct {
	ID       EdgeID
	From     NodeID
	FromPort node.PortID
	To       NodeID
	ToPort   node.PortID
	Rate     node.Rate
}

// Graph is a sparse, tombstoned node table plus a live edge list. The zero
// value is not usable; construct one with New.
type Graph struct {
	nodes      []*Node // nodes[i] holds the node with ID NodeID(i); a removed node stays in its slot with removed set
	edges      []*Edge
	nextEdgeID EdgeID
}

// New returns an empty Graph.
func New() *Graph {
	return &Graph{}
}
