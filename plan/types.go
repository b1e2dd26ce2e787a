package plan

import (
	"github.com/Michael-A-Kuykendall/auxide/graph"
	"github.com/Michael-A-Kuykendall/auxide/node"
)

// InputRoute names one edge feeding an input port, in the order the
// Runtime must consume it.
type InputRoute struct {
	EdgeIndex int
	Port      node.PortID
}

// OutputRoute names one edge fed by an output port.
type OutputRoute struct {
	EdgeIndex int
	Port      node.PortID
}

// Plan is the immutable, deterministic schedule produced by Compile. All
// slices are owned by the Plan and must not be mutated by callers.
type Plan struct {
	// Order is the topological node order, Kahn's algorithm with
	// ascending-NodeID seeding and FIFO discipline (P2).
	Order []graph.NodeID

	// Edges is the live edge list at compile time, index-stable: an
	// EdgeIndex in NodeInputs/NodeOutputs refers to Edges[EdgeIndex].
	Edges []*graph.Edge

	// NodeInputs maps a NodeID to its input routing table, sorted
	// ascending by Port (P3).
	NodeInputs map[graph.NodeID][]InputRoute

	// NodeOutputs maps a NodeID to its output routing table, sorted
	// ascending by Port.
	NodeOutputs map[graph.NodeID][]OutputRoute

	BlockSize  int
	MaxInputs  int
	MaxOutputs int
}
