// Package response measures the magnitude response of a designed biquad
// cascade by transforming its impulse response, for rendering and for
// cross-checking the analytic per-section response.
package response

import (
	"errors"
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"

	"github.com/vishwambharaRH/butterworth/dsp/filter/biquad"
)

// Errors returned by Spectrum.
var (
	ErrNoFilter          = errors.New("response: nil cascade")
	ErrInvalidFFTSize    = errors.New("response: fft size must be a power of two >= 16")
	ErrInvalidSampleRate = errors.New("response: sample rate must be positive")
)

// Result holds a one-sided magnitude spectrum of a filter's impulse
// response: bin i covers frequency Freqs[i] = i*sampleRate/fftSize with
// linear magnitude Magnitude[i], for i = 0..fftSize/2.
type Result struct {
	SampleRate float64
	Freqs      []float64
	Magnitude  []float64
}

// Spectrum computes the one-sided magnitude response of the cascade from an
// fftSize-sample impulse response. The cascade state is saved and restored,
// so a filter in active use is not disturbed.
//
// fftSize bounds the frequency resolution (sampleRate/fftSize per bin) and
// must be a power of two of at least 16.
func Spectrum(c *biquad.Cascade, fftSize int, sampleRate float64) (*Result, error) {
	if c == nil {
		return nil, ErrNoFilter
	}
	if fftSize < 16 || fftSize&(fftSize-1) != 0 {
		return nil, ErrInvalidFFTSize
	}
	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return nil, ErrInvalidSampleRate
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("response: fft plan: %w", err)
	}

	ir := c.ImpulseResponse(fftSize)

	in := make([]complex128, fftSize)
	for i, v := range ir {
		in[i] = complex(v, 0)
	}

	out := make([]complex128, fftSize)
	if err := plan.Forward(out, in); err != nil {
		return nil, fmt.Errorf("response: forward fft: %w", err)
	}

	bins := fftSize/2 + 1
	re := make([]float64, bins)
	im := make([]float64, bins)
	for i := 0; i < bins; i++ {
		re[i] = real(out[i])
		im[i] = imag(out[i])
	}

	mag := make([]float64, bins)
	vecmath.Magnitude(mag, re, im)

	freqs := make([]float64, bins)
	for i := range freqs {
		freqs[i] = float64(i) * sampleRate / float64(fftSize)
	}

	return &Result{
		SampleRate: sampleRate,
		Freqs:      freqs,
		Magnitude:  mag,
	}, nil
}

// MagnitudeAt returns the linear magnitude of the nearest bin to freqHz.
// Frequencies outside [0, Nyquist] clamp to the edge bins.
func (r *Result) MagnitudeAt(freqHz float64) float64 {
	return r.Magnitude[r.binIndex(freqHz)]
}

// MagnitudeDBAt returns the nearest-bin magnitude in dB, floored at -300 dB
// so total-rejection bins stay finite.
func (r *Result) MagnitudeDBAt(freqHz float64) float64 {
	m := r.MagnitudeAt(freqHz)
	if m < 1e-15 {
		return -300
	}

	return 20 * math.Log10(m)
}

func (r *Result) binIndex(freqHz float64) int {
	if len(r.Freqs) < 2 {
		return 0
	}

	binHz := r.Freqs[1]
	i := int(math.Round(freqHz / binHz))
	if i < 0 {
		i = 0
	}
	if i >= len(r.Freqs) {
		i = len(r.Freqs) - 1
	}

	return i
}
