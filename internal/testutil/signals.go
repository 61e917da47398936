// Package testutil provides deterministic signal generators and tolerance
// assertions shared by the filter test suites.
package testutil

import "math"

// DeterministicSine generates a deterministic sine wave.
func DeterministicSine(freqHz, sampleRate, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out
}

// Impulse generates a unit impulse at the given position.
func Impulse(length, pos int) []float64 {
	out := make([]float64, length)
	if pos >= 0 && pos < length {
		out[pos] = 1
	}
	return out
}

// DC generates a constant-valued signal.
func DC(value float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = value
	}
	return out
}

// PeakIndex returns the index of the maximum value in data[lo:hi].
// Used by phase-alignment tests to locate sine crests away from the edges.
func PeakIndex(data []float64, lo, hi int) int {
	if lo < 0 {
		lo = 0
	}
	if hi > len(data) {
		hi = len(data)
	}

	best := lo
	for i := lo; i < hi; i++ {
		if data[i] > data[best] {
			best = i
		}
	}
	return best
}

// MaxAbs returns the maximum absolute value in data[lo:hi].
func MaxAbs(data []float64, lo, hi int) float64 {
	if lo < 0 {
		lo = 0
	}
	if hi > len(data) {
		hi = len(data)
	}

	m := 0.0
	for i := lo; i < hi; i++ {
		if a := math.Abs(data[i]); a > m {
			m = a
		}
	}
	return m
}
