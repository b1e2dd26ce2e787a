package node

import "fmt"

// Rate is a property of every Port and every Edge. An edge may only connect
// two ports that share the same Rate.
type Rate int

const (
	// RateAudio marks a sample-accurate, per-sample signal.
	RateAudio Rate = iota
	// RateControl marks a block-rate control signal (one value per block).
	RateControl
	// RateEvent marks a sparse, timestamped event stream.
	RateEvent
)

// String renders Rate for diagnostics and error messages.
func (r Rate) String() string {
	switch r {
	case RateAudio:
		return "Audio"
	case RateControl:
		return "Control"
	case RateEvent:
		return "Event"
	default:
		return fmt.Sprintf("Rate(%d)", int(r))
	}
}

// PortID identifies a port within the node that declares it. PortIDs are
// unique within a node, not globally.
type PortID int

// Port is a single input or output terminal of a node.
type Port struct {
	ID   PortID
	Rate Rate
}

// Kind is a closed tag over the built-in node set plus External, the single
// escape hatch for plug-in-defined behavior.
type Kind int

const (
	// KindSine is a phase-accumulating sine source. Parameter: frequency.
	KindSine Kind = iota
	// KindGain is a unary scalar gain. Parameter: gain.
	KindGain
	// KindMix is a binary additive mixer.
	KindMix
	// KindOutputSink is a mono output sink; it has no output ports and
	// writes its single input into the block's output slice.
	KindOutputSink
	// KindDummy is an identity passthrough, useful for testing plans.
	KindDummy
	// KindExternal is a plug-in-defined node backed by a Def.
	KindExternal
)

// String renders Kind for diagnostics and error messages.
func (k Kind) String() string {
	switch k {
	case KindSine:
		return "Sine"
	case KindGain:
		return "Gain"
	case KindMix:
		return "Mix"
	case KindOutputSink:
		return "OutputSink"
	case KindDummy:
		return "Dummy"
	case KindExternal:
		return "External"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// SineParams configures a KindSine node at construction time.
type SineParams struct {
	// Freq is the initial oscillator frequency in Hz.
	Freq float64
}

// GainParams configures a KindGain node at construction time.
type GainParams struct {
	// Gain is the initial scalar multiplier applied to the input.
	Gain float64
}

// ExternalParams binds a KindExternal node to the Def that implements it.
type ExternalParams struct {
	Def Def
}

// audioPort is the one and only port shape the built-in kinds use: a single
// Audio-rate port at PortID 0 (or 1 for Mix's second input).
func audioPort(id PortID) Port {
	return Port{ID: id, Rate: RateAudio}
}

// Ports returns the input ports, output ports, and required-input count for
// kind, given its construction-time params. For KindExternal, params must be
// an ExternalParams carrying a non-nil Def; the ports and required count are
// delegated to the Def.
//
// Ports is called exactly once per node, at graph.AddNode time, so its
// result can be cached on the Node without ever being recomputed.
func Ports(kind Kind, params any) (inputs, outputs []Port, required int, err error) {
	switch kind {
	case KindSine:
		return nil, []Port{audioPort(0)}, 0, nil
	case KindGain:
		return []Port{audioPort(0)}, []Port{audioPort(0)}, 1, nil
	case KindMix:
		return []Port{audioPort(0), audioPort(1)}, []Port{audioPort(0)}, 2, nil
	case KindOutputSink:
		return []Port{audioPort(0)}, nil, 1, nil
	case KindDummy:
		return []Port{audioPort(0)}, []Port{audioPort(0)}, 1, nil
	case KindExternal:
		ext, ok := params.(ExternalParams)
		if !ok || ext.Def == nil {
			return nil, nil, 0, fmt.Errorf("%w: KindExternal requires ExternalParams with a non-nil Def", ErrBadParams)
		}
		return ext.Def.InputPorts(), ext.Def.OutputPorts(), ext.Def.RequiredInputs(), nil
	default:
		return nil, nil, 0, fmt.Errorf("%w: %v", ErrUnknownKind, kind)
	}
}
