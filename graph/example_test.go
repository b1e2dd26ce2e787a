package graph_test

import (
	"fmt"

	"github.com/Michael-A-Kuykendall/auxide/graph"
	"github.com/Michael-A-Kuykendall/auxide/node"
)

// ExampleGraph_AddEdge builds a small oscillator -> gain -> sink chain and
// prints the number of live nodes and edges.
func ExampleGraph_AddEdge() {
	g := graph.New()

	osc := g.AddNode(node.KindSine, node.SineParams{Freq: 440})
	gain := g.AddNode(node.KindGain, node.GainParams{Gain: 0.5})
	sink := g.AddNode(node.KindOutputSink, nil)

	if _, err := g.AddEdge(osc, 0, gain, 0, node.RateAudio); err != nil {
		fmt.Println("error:", err)
		return
	}
	if _, err := g.AddEdge(gain, 0, sink, 0, node.RateAudio); err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(len(g.Nodes()), len(g.Edges()))
	// Output:
	// 3 2
}

// ExampleGraph_AddEdge_cycleRejected shows that closing a cycle fails and
// leaves the graph untouched.
func ExampleGraph_AddEdge_cycleRejected() {
	g := graph.New()

	gainA := g.AddNode(node.KindGain, node.GainParams{Gain: 1})
	gainB := g.AddNode(node.KindGain, node.GainParams{Gain: 1})

	if _, err := g.AddEdge(gainA, 0, gainB, 0, node.RateAudio); err != nil {
		fmt.Println("error:", err)
		return
	}

	_, err := g.AddEdge(gainB, 0, gainA, 0, node.RateAudio)
	fmt.Println(err)
	// Output:
	// graph: cycle detected
}
