// Package ctrl defines the control and observation plane connecting the
// main thread to the RT thread: a bounded queue of plain-value control
// messages flowing main -> RT, and a bounded queue of one-byte invariant
// signals flowing RT -> main.
//
// Msg is deliberately a flat struct rather than a functional-options
// constructor or an interface: the spec requires messages with no owned
// heap storage, and an interface value or an options-built struct would
// both risk an allocation on the producer side. Every Msg fits in a few
// machine words and is passed by value.
//
// VerifyContract is the main-thread-side helper for asserting that a
// drained batch of Signal values covers a required set, used by tests and
// callers that want to confirm a block actually did what it claimed to.
package ctrl
