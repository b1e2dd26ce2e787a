package node

import "math"

// TwoPi is one full cycle in radians, used by ProcessSine's phase wrap.
const TwoPi = 2 * math.Pi

// ProcessSine advances a phase accumulator by one block, writing
// sin(phase)*gain into out for every sample. *phase is wrapped into
// [0, TwoPi) once per block rather than once per sample, matching the
// specification's "when phase > 2π, reduce modulo 2π" wording.
func ProcessSine(phase *float64, freq, gain, sampleRate float64, out []float64) {
	p := *phase
	step := TwoPi * freq / sampleRate
	for i := range out {
		out[i] = math.Sin(p) * gain
		p += step
	}
	if p > TwoPi {
		p = math.Mod(p, TwoPi)
	}
	*phase = p
}

// ProcessGain writes in[i]*gain into out[i] for every sample. in and out may
// be the same slice.
func ProcessGain(in, out []float64, gain float64) {
	for i, v := range in {
		out[i] = v * gain
	}
}

// ProcessMix zeroes out, then adds every slice in ins elementwise, finally
// scaling the result by gain if gain != 1. All slices must share out's
// length.
func ProcessMix(ins [][]float64, out []float64, gain float64) {
	for i := range out {
		out[i] = 0
	}
	for _, in := range ins {
		for i, v := range in {
			out[i] += v
		}
	}
	if gain != 1 {
		for i := range out {
			out[i] *= gain
		}
	}
}

// ProcessPassthrough copies in into out sample-for-sample.
func ProcessPassthrough(in, out []float64) {
	copy(out, in)
}
