package butter

import "math"

// prototypePair returns the upper-half-plane pole of the k-th conjugate pair
// of the normalized analog Butterworth prototype:
//
//	theta_k = pi*(2k+1)/(2N),  pole = -sin(theta_k) + j*cos(theta_k)
//
// k ranges over 0..N/2-1. For odd N the leftover real pole is -1 and is
// handled separately by the designers.
func prototypePair(order, k int) complex128 {
	theta := math.Pi * float64(2*k+1) / (2 * float64(order))
	return complex(-math.Sin(theta), math.Cos(theta))
}

// prewarp maps a digital cutoff to the analog frequency that the bilinear
// transform compresses back onto it: omega = 2*Fs*tan(pi*f/Fs).
func prewarp(freqHz, sampleRate float64) float64 {
	return 2 * sampleRate * math.Tan(math.Pi*freqHz/sampleRate)
}

// bilinear maps an analog pole or zero to the z plane:
//
//	z = (2*Fs + s) / (2*Fs - s)
//
// Left-half-plane input lands strictly inside the unit circle, which is what
// guarantees section stability by construction.
func bilinear(s complex128, sampleRate float64) complex128 {
	k := complex(2*sampleRate, 0)
	return (k + s) / (k - s)
}

// denomFromConjugate expands a digital pole and its implied conjugate into
// the monic denominator 1 + a1*z^-1 + a2*z^-2.
func denomFromConjugate(z complex128) (a1, a2 float64) {
	return -2 * real(z), real(z)*real(z) + imag(z)*imag(z)
}

func validCutoff(freqHz, sampleRate float64) bool {
	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return false
	}

	return freqHz > 0 && freqHz < sampleRate/2 && !math.IsNaN(freqHz)
}
