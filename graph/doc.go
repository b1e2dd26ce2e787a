// Package graph is a correct-by-construction signal-processing network: a
// directed acyclic graph of nodes (oscillators, gains, mixers, sinks, or
// plug-in External nodes from package node) connected by rate-typed edges.
//
// Graph enforces five structural invariants as mutations happen, never
// after the fact:
//
//	G1 no cycles            — AddEdge rejects any edge that would close one
//	G2 rate agreement        — an edge's Rate must match both endpoint ports
//	G3 port existence        — edges reference real ports on real nodes
//	G4 single writer         — at most one edge may feed a given input port
//	G5 handle stability      — NodeIDs are monotonic and never recycled
//
// A Graph is an ordinary main-thread-owned value: building and validating a
// signal network happens before any real-time deadline applies, so unlike
// the RT path described in package rt, Graph mutation is free to allocate
// and to run an O(V+E) traversal per edge. It is not safe for concurrent use
// from multiple goroutines; callers needing that should serialize access
// themselves, the same way a single audio-engine setup thread would.
//
// Required-input validation (does every node that needs an input have one?)
// is deliberately NOT done here — see package plan, which is where that
// check belongs, because a Graph under incremental construction is
// routinely in a state with unconnected required ports.
package graph
