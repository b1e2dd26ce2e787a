package rt

import (
	"github.com/Michael-A-Kuykendall/auxide/ctrl"
	"github.com/Michael-A-Kuykendall/auxide/graph"
	"github.com/Michael-A-Kuykendall/auxide/node"
	"github.com/Michael-A-Kuykendall/auxide/plan"
	"github.com/Michael-A-Kuykendall/auxide/spsc"
)

// Handle is the RT-thread-owned runtime: every buffer ProcessBlock reads
// or writes is preallocated here at construction time, so that no block
// ever allocates.
type Handle struct {
	plan       *plan.Plan
	nodesByID  map[graph.NodeID]*graph.Node
	sampleRate float64

	edgeBuffers [][]float64 // indexed by EdgeIndex, each len == plan.BlockSize
	scratchOut  [][]float64 // one per output port of the widest node (at least plan.MaxOutputs), each len == plan.BlockSize
	inputRefs   [][]float64

	sinePhase     map[graph.NodeID]float64
	sineFreq      map[graph.NodeID]float64
	gainIntrinsic map[graph.NodeID]float64
	gainOverrides map[graph.NodeID]float64
	muteFlags     map[graph.NodeID]bool
	externalState map[graph.NodeID]any

	externalInputsScratch [node.MaxStackInputs][]float64

	controlQueue *spsc.Ring[ctrl.Msg]
	signalQueue  *spsc.Ring[ctrl.Signal]
}

// New allocates a Handle and its paired ctrl.Control for p against g at
// sampleRate. g must be the same graph p was compiled from; New does not
// re-validate Plan/Graph agreement beyond looking up each node by ID.
func New(p *plan.Plan, g *graph.Graph, sampleRate float64) (*Handle, *ctrl.Control, error) {
	nodesByID := make(map[graph.NodeID]*graph.Node, len(p.Order))
	for _, n := range g.Nodes() {
		nodesByID[n.ID] = n
	}

	numScratchOut := p.MaxOutputs
	for _, n := range nodesByID {
		if len(n.Outputs) > numScratchOut {
			numScratchOut = len(n.Outputs)
		}
	}

	h := &Handle{
		plan:          p,
		nodesByID:     nodesByID,
		sampleRate:    sampleRate,
		edgeBuffers:   make([][]float64, len(p.Edges)),
		scratchOut:    make([][]float64, numScratchOut),
		inputRefs:     make([][]float64, p.MaxInputs),
		sinePhase:     make(map[graph.NodeID]float64, len(p.Order)),
		sineFreq:      make(map[graph.NodeID]float64, len(p.Order)),
		gainIntrinsic: make(map[graph.NodeID]float64, len(p.Order)),
		gainOverrides: make(map[graph.NodeID]float64, len(p.Order)),
		muteFlags:     make(map[graph.NodeID]bool, len(p.Order)),
		externalState: make(map[graph.NodeID]any, len(p.Order)),
		controlQueue:  spsc.NewRing[ctrl.Msg](ctrl.QueueCapacity),
		signalQueue:   spsc.NewRing[ctrl.Signal](ctrl.QueueCapacity),
	}

	for i := range h.edgeBuffers {
		h.edgeBuffers[i] = make([]float64, p.BlockSize)
	}
	for i := range h.scratchOut {
		h.scratchOut[i] = make([]float64, p.BlockSize)
	}

	for _, id := range p.Order {
		n := nodesByID[id]
		h.gainOverrides[id] = 1.0
		h.muteFlags[id] = false

		switch n.Kind {
		case node.KindSine:
			h.sinePhase[id] = 0
			if params, ok := n.Params.(node.SineParams); ok {
				h.sineFreq[id] = params.Freq
			}
		case node.KindGain:
			if params, ok := n.Params.(node.GainParams); ok {
				h.gainIntrinsic[id] = params.Gain
			} else {
				h.gainIntrinsic[id] = 1
			}
		case node.KindExternal:
			ext, ok := n.Params.(node.ExternalParams)
			if !ok || ext.Def == nil {
				return nil, nil, ErrMissingNodeState
			}
			state, err := ext.Def.InitState(sampleRate, p.BlockSize)
			if err != nil {
				return nil, nil, err
			}
			h.externalState[id] = state
		}
	}

	c := ctrl.NewControl(h.controlQueue, h.signalQueue)

	return h, c, nil
}
