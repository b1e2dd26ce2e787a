package ctrl

import "github.com/Michael-A-Kuykendall/auxide/graph"

// Kind tags the variant a Msg carries.
type Kind int

const (
	SetGain Kind = iota
	SetFrequency
	TriggerGate
	SetParam
	SetFilterCutoff
	SetFilterResonance
	SetWaveform
	SetDetune
	SetPan
	Mute
	Unmute
	AllNotesOff
	Reset
)

func (k Kind) String() string {
	switch k {
	case SetGain:
		return "SetGain"
	case SetFrequency:
		return "SetFrequency"
	case TriggerGate:
		return "TriggerGate"
	case SetParam:
		return "SetParam"
	case SetFilterCutoff:
		return "SetFilterCutoff"
	case SetFilterResonance:
		return "SetFilterResonance"
	case SetWaveform:
		return "SetWaveform"
	case SetDetune:
		return "SetDetune"
	case SetPan:
		return "SetPan"
	case Mute:
		return "Mute"
	case Unmute:
		return "Unmute"
	case AllNotesOff:
		return "AllNotesOff"
	case Reset:
		return "Reset"
	default:
		return "Unknown"
	}
}

// Msg is a single control-plane message, small enough to pass by value
// with no owned heap storage. Only the fields relevant to Kind are
// meaningful; the rest are left at their zero value.
type Msg struct {
	Kind Kind
	Node graph.NodeID

	Gain     float64 // SetGain
	Hz       float64 // SetFrequency
	On       bool    // TriggerGate
	ParamIdx int     // SetParam
	Value    float64 // SetParam, SetFilterCutoff, SetFilterResonance, SetDetune, SetPan
	Waveform int      // SetWaveform
}

// NewSetGain builds a SetGain message.
func NewSetGain(n graph.NodeID, gain float64) Msg { return Msg{Kind: SetGain, Node: n, Gain: gain} }

// NewSetFrequency builds a SetFrequency message.
func NewSetFrequency(n graph.NodeID, hz float64) Msg { return Msg{Kind: SetFrequency, Node: n, Hz: hz} }

// NewTriggerGate builds a TriggerGate message.
func NewTriggerGate(n graph.NodeID, on bool) Msg { return Msg{Kind: TriggerGate, Node: n, On: on} }

// NewSetParam builds a SetParam message.
func NewSetParam(n graph.NodeID, idx int, value float64) Msg {
	return Msg{Kind: SetParam, Node: n, ParamIdx: idx, Value: value}
}

// NewMute builds a Mute message.
func NewMute(n graph.NodeID) Msg { return Msg{Kind: Mute, Node: n} }

// NewUnmute builds an Unmute message.
func NewUnmute(n graph.NodeID) Msg { return Msg{Kind: Unmute, Node: n} }

// NewAllNotesOff builds an AllNotesOff message.
func NewAllNotesOff() Msg { return Msg{Kind: AllNotesOff} }

// NewReset builds a Reset message.
func NewReset() Msg { return Msg{Kind: Reset} }
