package node

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProcessSineFirstSamplesRising(t *testing.T) {
	phase := 0.0
	out := make([]float64, 16)
	ProcessSine(&phase, 440, 1, 44100, out)
	assert.InDelta(t, 0, out[0], 0.01)
	assert.Greater(t, out[1], 0.0)
	assert.Greater(t, out[10], 0.0)
}

func TestProcessSineAdvancesPhaseAcrossBlocks(t *testing.T) {
	phase := 0.0
	out := make([]float64, 64)
	ProcessSine(&phase, 440, 1, 44100, out)
	first := phase
	ProcessSine(&phase, 440, 1, 44100, out)
	assert.NotEqual(t, first, phase)
	assert.Less(t, phase, TwoPi)
}

func TestProcessSineAppliesGain(t *testing.T) {
	phase := math.Pi / 2
	out := make([]float64, 1)
	ProcessSine(&phase, 440, 0.5, 44100, out)
	assert.InDelta(t, 0.5, out[0], 1e-9)
}

func TestProcessGain(t *testing.T) {
	in := []float64{1, 2, 3}
	out := make([]float64, 3)
	ProcessGain(in, out, 2)
	assert.Equal(t, []float64{2, 4, 6}, out)
}

func TestProcessGainZero(t *testing.T) {
	in := []float64{1, 2, 3}
	out := make([]float64, 3)
	ProcessGain(in, out, 0)
	assert.Equal(t, []float64{0, 0, 0}, out)
}

func TestProcessMixSumsInputs(t *testing.T) {
	a := []float64{1, 1, 1}
	b := []float64{2, 2, 2}
	out := make([]float64, 3)
	ProcessMix([][]float64{a, b}, out, 1)
	assert.Equal(t, []float64{3, 3, 3}, out)
}

func TestProcessMixScalesByGain(t *testing.T) {
	a := []float64{1, 1, 1}
	b := []float64{1, 1, 1}
	out := make([]float64, 3)
	ProcessMix([][]float64{a, b}, out, 0.5)
	assert.Equal(t, []float64{1, 1, 1}, out)
}

func TestProcessPassthrough(t *testing.T) {
	in := []float64{1, 2, 3}
	out := make([]float64, 3)
	ProcessPassthrough(in, out)
	assert.Equal(t, in, out)
}
