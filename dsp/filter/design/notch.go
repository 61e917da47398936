package design

import (
	"math"

	"github.com/vishwambharaRH/butterworth/dsp/filter/biquad"
)

// Notch designs a single-section notch filter that rejects centerHz while
// passing nearby frequencies. It bypasses the analog-prototype route: the
// zero pair is placed exactly on the unit circle at the center frequency
// (total rejection) and the pole pair at radius r = 1 - pi*BW/Fs just inside
// it, where BW = centerHz/q sets the rejection bandwidth.
//
// centerHz must lie strictly between 0 and sampleRate/2; q must be positive
// and small enough that the pole radius stays inside (0, 1).
func Notch(centerHz, q, sampleRate float64, opts ...Option) (*biquad.Cascade, error) {
	if !validFrequency(centerHz, sampleRate) {
		return nil, ErrInvalidFrequency
	}
	if q <= 0 || math.IsNaN(q) || math.IsInf(q, 0) {
		return nil, ErrInvalidParameter
	}

	bw := centerHz / q
	r := 1 - math.Pi*bw/sampleRate
	if r <= 0 || r >= 1 {
		return nil, ErrInvalidParameter
	}

	cw := math.Cos(2 * math.Pi * centerHz / sampleRate)

	return newCascade([]biquad.Coefficients{{
		B0: (1 + r) / 2,
		B1: -(1 + r) * cw,
		B2: (1 + r) / 2,
		A1: -2 * r * cw,
		A2: r * r,
	}}, opts)
}
