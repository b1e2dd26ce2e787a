package graph

import "errors"

// Sentinel errors returned by AddEdge and RemoveNode. On any AddEdge error
// the Graph's edge set is left exactly as it was before the call.
var (
	// ErrInvalidNode indicates an edge endpoint, or the argument to
	// RemoveNode, names a NodeID that does not exist (never added, or
	// already removed).
	ErrInvalidNode = errors.New("graph: invalid node")

	// ErrInvalidPort indicates an edge references a PortID that is not an
	// output port of its from-node, or not an input port of its to-node.
	ErrInvalidPort = errors.New("graph: invalid port")

	// ErrRateMismatch indicates an edge's declared Rate does not match the
	// Rate of one or both endpoint ports.
	ErrRateMismatch = errors.New("graph: rate mismatch")

	// ErrCycleDetected indicates an edge would create a directed cycle.
	ErrCycleDetected = errors.New("graph: cycle detected")

	// ErrPortAlreadyConnected indicates the edge's destination input port
	// already has an incoming edge (the single-writer rule, G4).
	ErrPortAlreadyConnected = errors.New("graph: input port already connected")
)
