package design

import (
	"errors"
	"math"

	"github.com/vishwambharaRH/butterworth/dsp/filter/biquad"
	"github.com/vishwambharaRH/butterworth/dsp/filter/design/butter"
)

// Errors returned by the design functions. biquad.ErrTooManySections is
// returned when the requested order would exceed the cascade capacity.
var (
	ErrInvalidOrder     = errors.New("design: order must be positive")
	ErrInvalidFrequency = errors.New("design: frequency outside (0, Nyquist)")
	ErrInvalidParameter = errors.New("design: invalid notch parameter")
)

// config holds designer options.
type config struct {
	precision biquad.Precision
}

// Option configures a designed filter.
type Option func(*config)

// WithPrecision tags the resulting cascade with a processing precision.
// Default is biquad.PrecisionDouble.
func WithPrecision(p biquad.Precision) Option {
	return func(cfg *config) { cfg.precision = p }
}

// Lowpass designs a lowpass Butterworth filter of the given order.
// cutoffHz must lie strictly between 0 and sampleRate/2. The cascade has
// ceil(order/2) sections.
func Lowpass(order int, cutoffHz, sampleRate float64, opts ...Option) (*biquad.Cascade, error) {
	if err := checkOrder(order, (order+1)/2); err != nil {
		return nil, err
	}
	if !validFrequency(cutoffHz, sampleRate) {
		return nil, ErrInvalidFrequency
	}

	return newCascade(butter.Lowpass(cutoffHz, order, sampleRate), opts)
}

// Highpass designs a highpass Butterworth filter of the given order.
// cutoffHz must lie strictly between 0 and sampleRate/2. The cascade has
// ceil(order/2) sections.
func Highpass(order int, cutoffHz, sampleRate float64, opts ...Option) (*biquad.Cascade, error) {
	if err := checkOrder(order, (order+1)/2); err != nil {
		return nil, err
	}
	if !validFrequency(cutoffHz, sampleRate) {
		return nil, ErrInvalidFrequency
	}

	return newCascade(butter.Highpass(cutoffHz, order, sampleRate), opts)
}

// Bandpass designs a bandpass Butterworth filter. order is the prototype
// order; the band transform doubles it, so the cascade has `order` sections
// (2*order poles). Both edges must lie strictly between 0 and sampleRate/2
// with lowHz < highHz.
func Bandpass(order int, lowHz, highHz, sampleRate float64, opts ...Option) (*biquad.Cascade, error) {
	if err := checkOrder(order, order); err != nil {
		return nil, err
	}
	if !validFrequency(lowHz, sampleRate) || !validFrequency(highHz, sampleRate) || lowHz >= highHz {
		return nil, ErrInvalidFrequency
	}

	return newCascade(butter.Bandpass(lowHz, highHz, order, sampleRate), opts)
}

func checkOrder(order, sections int) error {
	if order <= 0 {
		return ErrInvalidOrder
	}
	if sections > biquad.MaxSections {
		return biquad.ErrTooManySections
	}

	return nil
}

func validFrequency(freqHz, sampleRate float64) bool {
	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return false
	}

	return freqHz > 0 && freqHz < sampleRate/2 && !math.IsNaN(freqHz)
}

func newCascade(coeffs []biquad.Coefficients, opts []Option) (*biquad.Cascade, error) {
	var cfg config
	for _, o := range opts {
		o(&cfg)
	}

	return biquad.NewCascade(coeffs, biquad.WithPrecision(cfg.precision))
}
