package node

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPortsBuiltinKinds(t *testing.T) {
	cases := []struct {
		kind            Kind
		wantIn, wantOut int
		wantRequired    int
	}{
		{KindSine, 0, 1, 0},
		{KindGain, 1, 1, 1},
		{KindMix, 2, 1, 2},
		{KindOutputSink, 1, 0, 1},
		{KindDummy, 1, 1, 1},
	}
	for _, c := range cases {
		t.Run(c.kind.String(), func(t *testing.T) {
			ins, outs, required, err := Ports(c.kind, nil)
			require.NoError(t, err)
			assert.Len(t, ins, c.wantIn)
			assert.Len(t, outs, c.wantOut)
			assert.Equal(t, c.wantRequired, required)
		})
	}
}

func TestPortsExternalRequiresDef(t *testing.T) {
	_, _, _, err := Ports(KindExternal, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrBadParams))
}

type stubDef struct{}

func (stubDef) InputPorts() []Port     { return []Port{{ID: 0, Rate: RateAudio}} }
func (stubDef) OutputPorts() []Port    { return []Port{{ID: 0, Rate: RateAudio}} }
func (stubDef) RequiredInputs() int    { return 1 }
func (stubDef) InitState(float64, int) (any, error) { return nil, nil }
func (stubDef) ProcessBlock(any, [][]float64, [][]float64, float64) error { return nil }

func TestPortsExternalDelegates(t *testing.T) {
	ins, outs, required, err := Ports(KindExternal, ExternalParams{Def: stubDef{}})
	require.NoError(t, err)
	assert.Len(t, ins, 1)
	assert.Len(t, outs, 1)
	assert.Equal(t, 1, required)
}

func TestUnknownKind(t *testing.T) {
	_, _, _, err := Ports(Kind(99), nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownKind))
}

func TestRateString(t *testing.T) {
	assert.Equal(t, "Audio", RateAudio.String())
	assert.Equal(t, "Control", RateControl.String())
	assert.Equal(t, "Event", RateEvent.String())
}
