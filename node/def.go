package node

// MaxStackInputs bounds the number of incoming edges an External node may
// have. The bound lets the runtime stage input-slice references in a
// fixed-size stack array instead of a heap-allocated slice, preserving the
// no-allocation guarantee of the RT path. Specification value: 16.
const MaxStackInputs = 16

// Def is the plug-in contract for an External node. Implementations are
// collaborators outside this module's scope: concrete oscillators, filters,
// and envelopes beyond the small built-in set are expected to live behind
// this interface.
//
// InputPorts and OutputPorts must return a stable list for the lifetime of
// the Def: they are called once, when graph.AddExternalNode adds the node,
// and the result is stored on the graph node; Plan compilation and Handle
// construction use that stored copy and never call them again.
//
// ProcessBlock must be RT-safe: no allocation, no locking, no panics. It may
// return a static error when the node cannot produce valid output for a
// block; the runtime zeros the node's outputs and propagates the error.
type Def interface {
	// InputPorts returns this node's input ports, in declaration order.
	InputPorts() []Port
	// OutputPorts returns this node's output ports, in declaration order.
	OutputPorts() []Port
	// RequiredInputs returns how many of InputPorts (counted from the
	// front) are required: their absence is a Plan-compile error.
	RequiredInputs() int
	// InitState is called once, at Handle construction, and may allocate.
	InitState(sampleRate float64, blockSize int) (state any, err error)
	// ProcessBlock consumes one block of inputs and produces one block of
	// outputs. Every inner slice has length blockSize (the Plan's block
	// size). Returns a static error message on failure; it must not
	// allocate to construct that error when it can avoid doing so.
	ProcessBlock(state any, inputs [][]float64, outputs [][]float64, sampleRate float64) error
}
