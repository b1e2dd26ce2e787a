// Package plan compiles a graph.Graph into a Plan: an immutable,
// deterministic execution schedule that the rt package replays block by
// block.
//
// Compilation is a pure function of its inputs. Two calls to Compile on
// graphs with identical structure, at the same block size, produce Plans
// that are equal field-by-field — including the exact topological order,
// the edge list, and every per-node routing table. That determinism rests
// entirely on two choices made here rather than left to graph.Graph:
// Kahn's algorithm with an ascending-NodeID seed and FIFO discipline for
// the topological sort (so that Graph mutation history, not map iteration
// or recursion order, is the only thing order depends on), and an explicit
// sort-by-PortID pass over every routing table after it is built.
//
// Compile also re-verifies acyclicity independently of graph.Graph's
// incremental per-edge check, and validates the required-input and
// external-node-arity invariants that graph.Graph intentionally leaves
// unchecked at edge-add time.
package plan
