package rt

import "errors"

var (
	// ErrBufferLengthMismatch indicates ProcessBlock's out slice does not
	// have length equal to the plan's block size. The call has no side
	// effect when this is returned.
	ErrBufferLengthMismatch = errors.New("rt: output buffer length does not match plan block size")

	// ErrExternalTooManyInputs is a defensive runtime check mirroring
	// plan.Compile's TooManyInputsError: an External node whose connected
	// input count exceeds node.MaxStackInputs cannot be staged on the
	// fixed-size scratch array.
	ErrExternalTooManyInputs = errors.New("rt: external node exceeds maximum stack inputs")

	// ErrMissingNodeState indicates a node scheduled in the plan has no
	// corresponding entry in the Handle's state tables — a structural
	// impossibility that should never occur for a Handle built from a
	// Plan compiled against the same Graph, but is checked rather than
	// assumed.
	ErrMissingNodeState = errors.New("rt: node has no initialized state")
)
