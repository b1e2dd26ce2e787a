// Package audiolog is a small, main-thread-only structured event recorder
// for the control plane: dropped control messages, overflowed invariant
// queues, contract-verification failures. It is never invoked from the RT
// path.
//
// There is no third-party structured logger in the teacher's core
// library code to adopt here (the teacher's own "observability" is
// sentinel errors plus doc-comment complexity notes), so audiolog is
// hand-rolled on the standard log package, matching the teacher's
// plain, dependency-free approach to auxiliary concerns.
package audiolog
