package rt_test

import (
	"fmt"

	"github.com/Michael-A-Kuykendall/auxide/graph"
	"github.com/Michael-A-Kuykendall/auxide/node"
	"github.com/Michael-A-Kuykendall/auxide/plan"
	"github.com/Michael-A-Kuykendall/auxide/rt"
)

// ExampleHandle_OfflineRender builds a sine -> gain -> sink chain and
// renders 8 samples offline, printing whether any are non-zero.
func ExampleHandle_OfflineRender() {
	g := graph.New()
	osc := g.AddNode(node.KindSine, node.SineParams{Freq: 440})
	gain := g.AddNode(node.KindGain, node.GainParams{Gain: 0.25})
	sink := g.AddNode(node.KindOutputSink, nil)

	if _, err := g.AddEdge(osc, 0, gain, 0, node.RateAudio); err != nil {
		fmt.Println("error:", err)
		return
	}
	if _, err := g.AddEdge(gain, 0, sink, 0, node.RateAudio); err != nil {
		fmt.Println("error:", err)
		return
	}

	p, err := plan.Compile(g, 4)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	h, _, err := rt.New(p, g, 48000)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	out := make([]float64, 8)
	if err := h.OfflineRender(out); err != nil {
		fmt.Println("error:", err)
		return
	}

	nonZero := false
	for _, v := range out {
		if v != 0 {
			nonZero = true
		}
	}
	fmt.Println(nonZero)
	// Output:
	// true
}
