package ctrl

import (
	"github.com/Michael-A-Kuykendall/auxide/audiolog"
	"github.com/Michael-A-Kuykendall/auxide/spsc"
)

// QueueCapacity is the fixed capacity of both the control-message queue
// and the invariant-signal queue.
const QueueCapacity = 256

// Control is the main-thread-side endpoint of the control and observation
// plane: it sends Msg values to the RT thread and drains Signal values the
// RT thread emitted. It shares its two rings with the rt package's
// runtime handle; construction of both sides happens together in
// rt.New.
type Control struct {
	outbound *spsc.Ring[Msg]
	inbound  *spsc.Ring[Signal]
}

// NewControl returns a Control wrapping the given rings. Callers normally
// obtain a Control from rt.New rather than constructing one directly.
func NewControl(outbound *spsc.Ring[Msg], inbound *spsc.Ring[Signal]) *Control {
	return &Control{outbound: outbound, inbound: inbound}
}

// Send enqueues msg for the RT thread to apply before its next block. It
// never blocks. If the queue is full, Send returns false and msg itself,
// so the caller may retry or report the drop; the drop is also recorded
// through audiolog, since a silently dropped control message is exactly
// the kind of main-thread event the control plane needs visibility into.
func (c *Control) Send(msg Msg) (ok bool, rejected Msg) {
	if c.outbound.TryPush(msg) {
		return true, Msg{}
	}

	audiolog.Default().Warn("control message dropped: queue full", audiolog.F("kind", msg.Kind), audiolog.F("node", msg.Node))

	return false, msg
}

// DrainInvariantSignals removes and returns every signal currently queued,
// in FIFO order. It never blocks and returns an empty slice if nothing is
// queued.
func (c *Control) DrainInvariantSignals() []Signal {
	out := make([]Signal, 0, c.inbound.Len())
	for {
		s, ok := c.inbound.TryPop()
		if !ok {
			break
		}
		out = append(out, s)
	}

	return out
}
