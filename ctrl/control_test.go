package ctrl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Michael-A-Kuykendall/auxide/graph"
	"github.com/Michael-A-Kuykendall/auxide/spsc"
)

func newTestControl() (*Control, *spsc.Ring[Msg], *spsc.Ring[Signal]) {
	outbound := spsc.NewRing[Msg](QueueCapacity)
	inbound := spsc.NewRing[Signal](QueueCapacity)
	return NewControl(outbound, inbound), outbound, inbound
}

func TestSendDeliversFIFO(t *testing.T) {
	c, outbound, _ := newTestControl()

	ok, rejected := c.Send(NewSetGain(graph.NodeID(1), 0.75))
	require.True(t, ok)
	assert.Equal(t, Msg{}, rejected)

	msg, got := outbound.TryPop()
	require.True(t, got)
	assert.Equal(t, SetGain, msg.Kind)
	assert.Equal(t, graph.NodeID(1), msg.Node)
	assert.Equal(t, 0.75, msg.Gain)
}

func TestSendDropsWhenFull(t *testing.T) {
	c, _, _ := newTestControl()

	for i := 0; i < QueueCapacity; i++ {
		ok, _ := c.Send(NewReset())
		require.True(t, ok)
	}

	ok, rejected := c.Send(NewAllNotesOff())
	assert.False(t, ok)
	assert.Equal(t, AllNotesOff, rejected.Kind)
}

func TestDrainInvariantSignalsFIFO(t *testing.T) {
	c, _, inbound := newTestControl()

	inbound.TryPush(SigControlMsgProcessed)
	inbound.TryPush(SigSampleBufferFilled)
	inbound.TryPush(SigRTCallbackClean)

	signals := c.DrainInvariantSignals()
	assert.Equal(t, []Signal{SigControlMsgProcessed, SigSampleBufferFilled, SigRTCallbackClean}, signals)

	assert.Empty(t, c.DrainInvariantSignals())
}

func TestVerifyContractDetectsMissing(t *testing.T) {
	drained := []Signal{SigSampleBufferFilled, SigRTCallbackClean}
	required := []Signal{SigSampleBufferFilled, SigRTCallbackClean, SigControlMsgProcessed}

	err := VerifyContract(drained, required)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrContractViolated)
	assert.Contains(t, err.Error(), "CONTROL_MSG_PROCESSED")
}

func TestVerifyContractPassesWhenAllPresent(t *testing.T) {
	drained := []Signal{SigRTCallbackClean, SigSampleBufferFilled}
	required := []Signal{SigSampleBufferFilled, SigRTCallbackClean}

	assert.NoError(t, VerifyContract(drained, required))
}
