package rt

import (
	"github.com/Michael-A-Kuykendall/auxide/ctrl"
	"github.com/Michael-A-Kuykendall/auxide/graph"
	"github.com/Michael-A-Kuykendall/auxide/node"
)

// maxControlMsgsPerBlock bounds how much control-queue draining a single
// block performs, so one callback can never be starved by an unbounded
// backlog of messages.
const maxControlMsgsPerBlock = ctrl.QueueCapacity / 4

// ProcessBlock runs one block of the compiled plan, writing plan.BlockSize
// samples into out. It never allocates, never locks, and never panics;
// any internal fault is surfaced as an error rather than propagated as a
// runtime panic — ProcessBlockSafe exists for callers that want a
// last-resort guard against the latter regardless.
func (h *Handle) ProcessBlock(out []float64) error {
	if len(out) != h.plan.BlockSize {
		return ErrBufferLengthMismatch
	}

	applied := h.drainControlQueue()
	if applied > 0 {
		h.signalQueue.TryPush(ctrl.SigControlMsgProcessed)
		h.signalQueue.TryPush(ctrl.SigParamUpdateDelivered)
	}

	for _, id := range h.plan.Order {
		if err := h.processNode(id, out); err != nil {
			return err
		}
	}

	h.signalQueue.TryPush(ctrl.SigSampleBufferFilled)
	h.signalQueue.TryPush(ctrl.SigRTCallbackClean)

	return nil
}

func (h *Handle) drainControlQueue() int {
	applied := 0
	for applied < maxControlMsgsPerBlock {
		m, ok := h.controlQueue.TryPop()
		if !ok {
			break
		}
		h.applyMsg(m)
		applied++
	}

	return applied
}

func (h *Handle) processNode(id graph.NodeID, out []float64) error {
	n, ok := h.nodesByID[id]
	if !ok {
		return ErrMissingNodeState
	}

	outputRoutes := h.plan.NodeOutputs[id]

	if h.muteFlags[id] {
		for _, r := range outputRoutes {
			zero(h.edgeBuffers[r.EdgeIndex])
		}
		return nil
	}

	inputRoutes := h.plan.NodeInputs[id]
	inputs := h.inputRefs[:len(inputRoutes)]
	for i, r := range inputRoutes {
		inputs[i] = h.edgeBuffers[r.EdgeIndex]
	}

	numOutputs := len(n.Outputs)
	outputs := h.scratchOut[:numOutputs]
	for _, buf := range outputs {
		zero(buf)
	}

	if err := h.dispatch(id, n, inputs, outputs, out); err != nil {
		for _, buf := range outputs {
			zero(buf)
		}
		for _, r := range outputRoutes {
			zero(h.edgeBuffers[r.EdgeIndex])
		}
		return err
	}

	for _, r := range outputRoutes {
		copy(h.edgeBuffers[r.EdgeIndex], outputs[indexOfPort(n.Outputs, r.Port)])
	}

	return nil
}

func (h *Handle) dispatch(id graph.NodeID, n *graph.Node, inputs, outputs [][]float64, out []float64) error {
	switch n.Kind {
	case node.KindSine:
		phase := h.sinePhase[id]
		node.ProcessSine(&phase, h.sineFreq[id], h.gainOverrides[id], h.sampleRate, outputs[0])
		h.sinePhase[id] = phase

	case node.KindGain:
		gain := h.gainIntrinsic[id] * h.gainOverrides[id]
		node.ProcessGain(inputs[0], outputs[0], gain)

	case node.KindMix:
		node.ProcessMix(inputs, outputs[0], h.gainOverrides[id])

	case node.KindDummy:
		node.ProcessPassthrough(inputs[0], outputs[0])

	case node.KindOutputSink:
		if len(inputs) == 1 {
			copy(out, inputs[0])
		}

	case node.KindExternal:
		return h.dispatchExternal(id, n, inputs, outputs)
	}

	return nil
}

func (h *Handle) dispatchExternal(id graph.NodeID, n *graph.Node, inputs, outputs [][]float64) error {
	if len(inputs) > node.MaxStackInputs {
		return ErrExternalTooManyInputs
	}

	staged := h.externalInputsScratch[:len(inputs)]
	copy(staged, inputs)

	ext, ok := n.Params.(node.ExternalParams)
	if !ok || ext.Def == nil {
		return ErrMissingNodeState
	}

	return ext.Def.ProcessBlock(h.externalState[id], staged, outputs, h.sampleRate)
}

func indexOfPort(ports []node.Port, id node.PortID) int {
	for i, p := range ports {
		if p.ID == id {
			return i
		}
	}

	return 0
}

func zero(buf []float64) {
	for i := range buf {
		buf[i] = 0
	}
}
