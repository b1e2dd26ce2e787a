package plan

import (
	"errors"

	"github.com/Michael-A-Kuykendall/auxide/graph"
	"github.com/Michael-A-Kuykendall/auxide/node"
)

// Sentinel errors returned by Compile. Each reports a named failure mode
// from spec.md section 4.2; Compile never wraps these with additional
// detail beyond what the specific error type below carries.
var (
	// ErrEmptyGraph indicates the graph has no live nodes.
	ErrEmptyGraph = errors.New("plan: graph has no live nodes")

	// ErrInvalidBlockSize indicates blockSize is not a positive integer.
	ErrInvalidBlockSize = errors.New("plan: block size must be positive")

	// ErrCycleDetected indicates the topological sort could not order
	// every live node — Compile's defensive re-verification of
	// acyclicity, independent of graph.Graph's own incremental check.
	ErrCycleDetected = errors.New("plan: cycle detected among live nodes")
)

// MultipleWritersToInputError reports that more than one edge terminates
// at the same (node, port) input — a violation of the single-writer rule
// that graph.Graph is supposed to prevent at AddEdge time; Compile checks
// again because a routing table built from a corrupted Graph must not
// silently produce a wrong Plan.
type MultipleWritersToInputError struct {
	Node graph.NodeID
	Port node.PortID
}

func (e *MultipleWritersToInputError) Error() string {
	return "plan: multiple writers to input port"
}

// RequiredPortMissingError reports that a node's declared required input
// port has no incoming edge.
type RequiredPortMissingError struct {
	Node graph.NodeID
	Port node.PortID
}

func (e *RequiredPortMissingError) Error() string {
	return "plan: required input port has no connection"
}

// RequiredInputOutOfRangeError reports that a node declares more required
// inputs than it has input ports.
type RequiredInputOutOfRangeError struct {
	Node     graph.NodeID
	Required int
	NumPorts int
}

func (e *RequiredInputOutOfRangeError) Error() string {
	return "plan: required input count exceeds declared input ports"
}

// TooManyInputsError reports that an external node declares more input
// ports than MaxStackInputs allows.
type TooManyInputsError struct {
	Node graph.NodeID
	Got  int
	Max  int
}

func (e *TooManyInputsError) Error() string {
	return "plan: external node exceeds maximum stack inputs"
}
