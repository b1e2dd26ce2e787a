// Package node defines the vocabulary shared by package graph (which needs
// to know a node's port shape to validate edges) and package rt (which
// needs to know how to execute a node for one block): the Rate and Port
// types, the closed Kind enumeration plus its single escape hatch (an
// External node backed by a Def plug-in), and the built-in DSP kernels
// (sine, gain, mix, passthrough) that rt dispatches to by Kind.
//
// The built-in Kind set dispatches without indirection: Kind is a small
// integer tag, not an interface, so the runtime's inner loop never pays for
// a virtual call on its own account. External is the one case that carries
// a Def behind an interface, and it is bounded (MaxStackInputs) precisely so
// the runtime can stage its inputs in a fixed-size array instead of growing
// a slice.
package node
