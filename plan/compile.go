package plan

import (
	"sort"

	"github.com/Michael-A-Kuykendall/auxide/graph"
	"github.com/Michael-A-Kuykendall/auxide/node"
)

// Compile builds a Plan from g at the given blockSize. Compile is a pure
// function of g's current contents: two calls against graphs with
// identical structure produce Plans equal field-by-field.
func Compile(g *graph.Graph, blockSize int) (*Plan, error) {
	if blockSize <= 0 {
		return nil, ErrInvalidBlockSize
	}

	nodes := g.Nodes()
	if len(nodes) == 0 {
		return nil, ErrEmptyGraph
	}
	edges := g.Edges()

	order, err := topoSort(nodes, edges)
	if err != nil {
		return nil, err
	}

	nodeInputs, nodeOutputs, maxInputs, maxOutputs := buildRoutingTables(nodes, edges)

	if err := validateRequiredInputs(nodes, nodeInputs); err != nil {
		return nil, err
	}
	if err := validateExternalBound(nodes); err != nil {
		return nil, err
	}
	if err := validateSingleWriter(nodeInputs); err != nil {
		return nil, err
	}

	return &Plan{
		Order:       order,
		Edges:       edges,
		NodeInputs:  nodeInputs,
		NodeOutputs: nodeOutputs,
		BlockSize:   blockSize,
		MaxInputs:   maxInputs,
		MaxOutputs:  maxOutputs,
	}, nil
}

// topoSort computes Kahn's algorithm over the live nodes and edges:
// in-degree restricted to live endpoints, a FIFO seeded with zero-in-degree
// nodes in ascending NodeID order, successors visited in edge-list order.
// This exact seeding and discipline is what makes the result a
// deterministic function of Graph contents (P2) rather than of map or
// recursion order.
func topoSort(nodes []*graph.Node, edges []*graph.Edge) ([]graph.NodeID, error) {
	inDegree := make(map[graph.NodeID]int, len(nodes))
	successors := make(map[graph.NodeID][]graph.NodeID, len(nodes))
	live := make(map[graph.NodeID]bool, len(nodes))

	for _, n := range nodes {
		inDegree[n.ID] = 0
		live[n.ID] = true
	}
	for _, e := range edges {
		if !live[e.From] || !live[e.To] {
			continue
		}
		inDegree[e.To]++
		successors[e.From] = append(successors[e.From], e.To)
	}

	ids := make([]graph.NodeID, len(nodes))
	for i, n := range nodes {
		ids[i] = n.ID
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	queue := make([]graph.NodeID, 0, len(ids))
	for _, id := range ids {
		if inDegree[id] == 0 {
			queue = append(queue, id)
		}
	}

	order := make([]graph.NodeID, 0, len(nodes))
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		order = append(order, n)

		for _, succ := range successors[n] {
			inDegree[succ]--
			if inDegree[succ] == 0 {
				queue = append(queue, succ)
			}
		}
	}

	if len(order) != len(nodes) {
		return nil, ErrCycleDetected
	}

	return order, nil
}

// buildRoutingTables iterates edges in order, pushing routing entries onto
// each endpoint's table, then sorts every table ascending by PortID. This
// sort is the sole mechanism enforcing P3 — the Runtime must be able to
// rely on port-id order regardless of edge insertion order.
func buildRoutingTables(nodes []*graph.Node, edges []*graph.Edge) (map[graph.NodeID][]InputRoute, map[graph.NodeID][]OutputRoute, int, int) {
	nodeInputs := make(map[graph.NodeID][]InputRoute, len(nodes))
	nodeOutputs := make(map[graph.NodeID][]OutputRoute, len(nodes))

	for idx, e := range edges {
		nodeInputs[e.To] = append(nodeInputs[e.To], InputRoute{EdgeIndex: idx, Port: e.ToPort})
		nodeOutputs[e.From] = append(nodeOutputs[e.From], OutputRoute{EdgeIndex: idx, Port: e.FromPort})
	}

	maxInputs, maxOutputs := 0, 0
	for _, n := range nodes {
		ins := nodeInputs[n.ID]
		sort.Slice(ins, func(i, j int) bool { return ins[i].Port < ins[j].Port })
		if len(ins) > maxInputs {
			maxInputs = len(ins)
		}

		outs := nodeOutputs[n.ID]
		sort.Slice(outs, func(i, j int) bool { return outs[i].Port < outs[j].Port })
		if len(outs) > maxOutputs {
			maxOutputs = len(outs)
		}
	}

	return nodeInputs, nodeOutputs, maxInputs, maxOutputs
}

// validateRequiredInputs confirms, for every live node, that each of its
// first Required input ports (by declaration order) has at least one
// incoming edge.
func validateRequiredInputs(nodes []*graph.Node, nodeInputs map[graph.NodeID][]InputRoute) error {
	for _, n := range nodes {
		if n.Required > len(n.Inputs) {
			return &RequiredInputOutOfRangeError{Node: n.ID, Required: n.Required, NumPorts: len(n.Inputs)}
		}

		connected := make(map[node.PortID]bool, len(nodeInputs[n.ID]))
		for _, r := range nodeInputs[n.ID] {
			connected[r.Port] = true
		}

		for i := 0; i < n.Required; i++ {
			port := n.Inputs[i].ID
			if !connected[port] {
				return &RequiredPortMissingError{Node: n.ID, Port: port}
			}
		}
	}

	return nil
}

// validateExternalBound checks that every External node's declared input
// count stays within MaxStackInputs.
func validateExternalBound(nodes []*graph.Node) error {
	for _, n := range nodes {
		if n.Kind != node.KindExternal {
			continue
		}
		if len(n.Inputs) > node.MaxStackInputs {
			return &TooManyInputsError{Node: n.ID, Got: len(n.Inputs), Max: node.MaxStackInputs}
		}
	}

	return nil
}

// validateSingleWriter defends against a corrupted routing table: more
// than one edge writing to the same (node, port) should already be
// impossible given graph.Graph's own AddEdge check, but Compile verifies
// independently rather than trust it transitively.
func validateSingleWriter(nodeInputs map[graph.NodeID][]InputRoute) error {
	for n, routes := range nodeInputs {
		seen := make(map[node.PortID]bool, len(routes))
		for _, r := range routes {
			if seen[r.Port] {
				return &MultipleWritersToInputError{Node: n, Port: r.Port}
			}
			seen[r.Port] = true
		}
	}

	return nil
}
