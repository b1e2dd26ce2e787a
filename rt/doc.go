// Package rt executes a compiled plan.Plan block by block under real-time
// constraints: no heap allocation, no locking, no unbounded iteration, no
// panics on the hot path.
//
// New splits construction into a Handle, owned exclusively by the RT
// thread and holding every buffer ProcessBlock touches, and a
// ctrl.Control, owned by the main thread and used to send control
// messages and drain invariant signals. The two communicate only through
// the spsc rings created alongside them; there is no other shared state.
//
// ProcessBlock performs the four-step sequence from the block-execution
// contract: drain a bounded number of control messages, signal that
// messages were applied, process every node in the plan's topological
// order dispatching per-kind DSP kernels from the node package, then
// signal that the block completed cleanly. ProcessBlockSafe wraps it with
// a recover so that a defect anywhere on the hot path degrades to silent
// zeroed output rather than taking down the audio callback.
package rt
