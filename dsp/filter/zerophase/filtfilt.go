// Package zerophase applies a biquad cascade forward and backward over a
// finite buffer so the net phase response cancels (filtfilt).
//
// Unlike per-sample processing this is strictly a batch operation: it needs
// the whole signal up front, allocates a working buffer, and reverses it,
// so it is not usable from a real-time sampling loop.
package zerophase

import (
	"errors"

	"github.com/vishwambharaRH/butterworth/dsp/filter/biquad"
)

// Errors returned by FiltFilt.
var (
	ErrNoFilter            = errors.New("zerophase: nil cascade")
	ErrInsufficientSamples = errors.New("zerophase: input not longer than edge padding")
)

// PadLen returns the number of samples of edge extension FiltFilt applies at
// each end of the input: three settling lengths of the cascade, counting two
// delay registers plus the output tap per section. This matches the default
// padding of common zero-phase implementations for second-order-section
// filters.
func PadLen(c *biquad.Cascade) int {
	return 3 * (2*c.NumSections() + 1)
}

// FiltFilt filters input forward, then backward, through the cascade and
// returns a new slice of the same length with zero net phase distortion.
//
// The buffer is extended at both ends by PadLen samples of odd reflection
// (2*x[edge] - x[i]), which pins the extension to the edge value and
// suppresses the startup transient the zeroed filter state would otherwise
// leak into the output boundaries. The cascade state is reset before each
// pass and left reset afterwards; the input slice is not modified.
//
// Inputs not longer than PadLen(c) return ErrInsufficientSamples.
// For identical cascade and input the output is bit-identical across calls.
func FiltFilt(c *biquad.Cascade, input []float64) ([]float64, error) {
	if c == nil {
		return nil, ErrNoFilter
	}

	pad := PadLen(c)
	n := len(input)
	if n <= pad {
		return nil, ErrInsufficientSamples
	}

	ext := make([]float64, 0, n+2*pad)

	first, last := input[0], input[n-1]
	for i := pad; i >= 1; i-- {
		ext = append(ext, 2*first-input[i])
	}
	ext = append(ext, input...)
	for i := 1; i <= pad; i++ {
		ext = append(ext, 2*last-input[n-1-i])
	}

	// Forward pass.
	c.Reset()
	c.ProcessBlock(ext)

	// Backward pass over the time-reversed intermediate, then restore
	// original time order.
	reverse(ext)
	c.Reset()
	c.ProcessBlock(ext)
	reverse(ext)

	c.Reset()

	out := make([]float64, n)
	copy(out, ext[pad:pad+n])

	return out, nil
}

func reverse(buf []float64) {
	for i, j := 0, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}
}
