package graph

import "github.com/Michael-A-Kuykendall/auxide/node"

// AddNode appends a new built-in node of the given kind, with
// construction-time params (node.SineParams, node.GainParams, or nil for
// kinds that take none), and returns its NodeID.
//
// AddNode never fails for a well-formed call: a freshly added node with no
// connections is always a legal, if incomplete, graph state (required-input
// validation happens later, in plan.Compile). It panics if kind is
// node.KindExternal — use AddExternalNode for that case, since an External
// node's ports are derived from its Def, not from params alone — or if kind
// is outside the built-in set altogether, both of which are programmer
// errors rather than conditions a caller builds a graph incrementally
// around.
func (g *Graph) AddNode(kind node.Kind, params any) NodeID {
	if kind == node.KindExternal {
		panic("graph: AddNode does not accept KindExternal; use AddExternalNode")
	}
	inputs, outputs, required, err := node.Ports(kind, params)
	if err != nil {
		panic(err)
	}

	return g.appendNode(kind, params, inputs, outputs, required)
}

// AddExternalNode appends a new plug-in-defined node backed by def and
// returns its NodeID. It panics if def is nil.
func (g *Graph) AddExternalNode(def node.Def) NodeID {
	if def == nil {
		panic("graph: AddExternalNode requires a non-nil Def")
	}
	params := node.ExternalParams{Def: def}
	inputs, outputs, required, err := node.Ports(node.KindExternal, params)
	if err != nil {
		panic(err)
	}

	return g.appendNode(node.KindExternal, params, inputs, outputs, required)
}

func (g *Graph) appendNode(kind node.Kind, params any, inputs, outputs []node.Port, required int) NodeID {
	id := NodeID(len(g.nodes))
	g.nodes = append(g.nodes, &Node{
		ID:       id,
		Kind:     kind,
		Params:   params,
		Inputs:   inputs,
		Outputs:  outputs,
		Required: required,
	})

	return id
}
