// Package auxide is a real-time-safe, deterministic, block-based audio
// signal-processing kernel.
//
// A caller builds a directed acyclic graph of signal-processing nodes with
// package graph, compiles it into an immutable execution schedule with
// package plan, and constructs a runtime with package rt. The runtime splits
// into an RT-owned Handle (moved into the audio callback) and a main-thread
// Control (kept by the caller), coupled by two lock-free single-producer/
// single-consumer queues from package spsc carrying the messages and
// invariant signals defined in package ctrl.
//
// Package layout:
//
//	graph/    — Graph, Node, Edge, structural validation (G1-G5)
//	plan/     — Compile(graph, blockSize) -> immutable Plan (P1-P7)
//	node/     — Kind metadata, the external Def plug-in contract, built-in DSP kernels
//	rt/       — Handle/Control split, block execution, offline render
//	ctrl/     — control messages, invariant signals, contract verification
//	spsc/     — lock-free single-producer/single-consumer ring buffer
//	audiolog/ — allocation-free-on-RT-path event recording for the main thread
//
// The RT path (everything reachable from Handle.ProcessBlock) performs no
// heap allocation, no locking, no unbounded iteration, and never panics on a
// recoverable condition. Graph and Plan are ordinary main-thread data
// structures with no such constraint.
package auxide
