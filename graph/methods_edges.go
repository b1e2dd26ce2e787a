package graph

import "github.com/Michael-A-Kuykendall/auxide/node"

// Edges returns every edge currently in the Graph, in insertion order. The
// returned slice is a fresh copy.
func (g *Graph) Edges() []*Edge {
	out := make([]*Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// AddEdge validates and appends an edge from (from, fromPort) to (to,
// toPort) at the given rate. On any error the Graph's edge set is
// unchanged.
//
// Checks run in this order, each a precondition for the next:
//  1. both nodes exist                                  -> ErrInvalidNode
//  2. fromPort is an output of from, toPort an input of to -> ErrInvalidPort
//  3. rate equals both endpoint ports' rates             -> ErrRateMismatch
//  4. no existing edge already writes to (to, toPort)     -> ErrPortAlreadyConnected
//  5. the edge would not close a directed cycle           -> ErrCycleDetected
func (g *Graph) AddEdge(from NodeID, fromPort node.PortID, to NodeID, toPort node.PortID, rate node.Rate) (EdgeID, error) {
	fromNode, ok := g.Node(from)
	if !ok {
		return 0, ErrInvalidNode
	}
	toNode, ok := g.Node(to)
	if !ok {
		return 0, ErrInvalidNode
	}

	fromPortInfo, ok := findPort(fromNode.Outputs, fromPort)
	if !ok {
		return 0, ErrInvalidPort
	}
	toPortInfo, ok := findPort(toNode.Inputs, toPort)
	if !ok {
		return 0, ErrInvalidPort
	}

	if rate != fromPortInfo.Rate || rate != toPortInfo.Rate {
		return 0, ErrRateMismatch
	}

	for _, e := range g.edges {
		if e.To == to && e.ToPort == toPort {
			return 0, ErrPortAlreadyConnected
		}
	}

	if from == to || g.reachable(to, from) {
		return 0, ErrCycleDetected
	}

	id := g.nextEdgeID
	g.nextEdgeID++
	g.edges = append(g.edges, &Edge{
		ID:       id,
		From:     from,
		FromPort: fromPort,
		To:       to,
		ToPort:   toPort,
		Rate:     rate,
	})

	return id, nil
}

// findPort returns the port with the given ID from ports, and whether it
// was found.
func findPort(ports []node.Port, id node.PortID) (node.Port, bool) {
	for _, p := range ports {
		if p.ID == id {
			return p, true
		}
	}

	return node.Port{}, false
}
