// SPDX-License-Identifier: EPL-2.0

package audiotest

import "math"

// Silence returns a waveform of all zeros.
func Silence() Waveform {
	return func(sample, channel int) float32 {
		return 0
	}
}

// Constant returns a waveform with the same value everywhere.
func Constant(value float32) Waveform {
	return func(sample, channel int) float32 {
		return value
	}
}

// Sine returns a sine waveform at the given frequency, identical on every
// channel.
func Sine(sampleRate, frequency float64) Waveform {
	return func(sample, channel int) float32 {
		t := float64(sample) / sampleRate
		return float32(math.Sin(2 * math.Pi * frequency * t))
	}
}

// Indexed returns a waveform encoding position and channel into the value:
// sample i of channel c reads float32(i) + float32(c)*0.25. Exact in float32
// for i below 2^22, which makes offset mistakes show up as wrong values
// rather than near-misses.
func Indexed() Waveform {
	return func(sample, channel int) float32 {
		return float32(sample) + float32(channel)*0.25
	}
}

// Ramp returns a linear waveform rising by step per frame, identical on
// every channel. Linear content survives 4-point cubic interpolation
// exactly, which makes it handy for resampling tests.
func Ramp(step float32) Waveform {
	return func(sample, channel int) float32 {
		return float32(sample) * step
	}
}

// Planes renders frames samples of w into freshly allocated per-channel
// planes, the layout the document model stores.
func Planes(channels, frames int, w Waveform) [][]float32 {
	planes := make([][]float32, channels)
	for ch := range planes {
		planes[ch] = make([]float32, frames)
		for i := range planes[ch] {
			planes[ch][i] = w(i, ch)
		}
	}

	return planes
}

// SilentPlanes allocates zeroed planes.
func SilentPlanes(channels, frames int) [][]float32 {
	return Planes(channels, frames, Silence())
}
