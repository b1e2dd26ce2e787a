package rt

import (
	"github.com/Michael-A-Kuykendall/auxide/ctrl"
	"github.com/Michael-A-Kuykendall/auxide/node"
)

// applyMsg applies one control message to per-node mutable state. Messages
// naming a node that is not live in the Graph, or a kind the message does
// not act on, are silently ignored rather than erroring — the control
// plane is allowed to be a block ahead or behind graph mutation and must
// never fail the block over it.
func (h *Handle) applyMsg(m ctrl.Msg) {
	switch m.Kind {
	case ctrl.SetGain:
		if _, ok := h.gainOverrides[m.Node]; !ok {
			return
		}
		h.gainOverrides[m.Node] = m.Gain
		if n, ok := h.nodesByID[m.Node]; ok && n.Kind == node.KindGain {
			h.gainIntrinsic[m.Node] = 1
		}

	case ctrl.SetFrequency:
		if n, ok := h.nodesByID[m.Node]; ok && n.Kind == node.KindSine {
			h.sineFreq[m.Node] = m.Hz
		}

	case ctrl.Mute:
		if _, ok := h.muteFlags[m.Node]; ok {
			h.muteFlags[m.Node] = true
		}

	case ctrl.Unmute:
		if _, ok := h.muteFlags[m.Node]; ok {
			h.muteFlags[m.Node] = false
		}

	case ctrl.Reset:
		for id := range h.gainOverrides {
			h.gainOverrides[id] = 1.0
		}
		for id := range h.muteFlags {
			h.muteFlags[id] = false
		}

	case ctrl.TriggerGate, ctrl.SetParam, ctrl.SetFilterCutoff, ctrl.SetFilterResonance,
		ctrl.SetWaveform, ctrl.SetDetune, ctrl.SetPan, ctrl.AllNotesOff:
		// Reserved for kinds not in the built-in set; no-op here.
	}
}
