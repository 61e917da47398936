package butter

import (
	"math"
	"math/cmplx"

	"github.com/vishwambharaRH/butterworth/dsp/filter/biquad"
)

// Lowpass designs a lowpass Butterworth cascade of the given order.
//
// The analog zeros sit at infinity, so every digital section keeps the fixed
// numerator shape (1, 2, 1) — all zeros at z = -1 — scaled for unity gain at
// DC. For odd orders, the final section is first-order (B2=A2=0).
func Lowpass(freq float64, order int, sampleRate float64) []biquad.Coefficients {
	if order <= 0 || !validCutoff(freq, sampleRate) {
		return nil
	}

	warped := prewarp(freq, sampleRate)
	sections := make([]biquad.Coefficients, 0, (order+1)/2)

	for k := 0; k < order/2; k++ {
		z := bilinear(complex(warped, 0)*prototypePair(order, k), sampleRate)
		a1, a2 := denomFromConjugate(z)
		g := (1 + a1 + a2) / 4

		sections = append(sections, biquad.Coefficients{
			B0: g, B1: 2 * g, B2: g,
			A1: a1, A2: a2,
		})
	}

	if order%2 != 0 {
		p := real(bilinear(complex(-warped, 0), sampleRate))
		a1 := -p
		g := (1 + a1) / 2

		sections = append(sections, biquad.Coefficients{B0: g, B1: g, A1: a1})
	}

	return sections
}

// Highpass designs a highpass Butterworth cascade of the given order.
//
// The lowpass prototype is inverted (s -> omega/s), placing all analog zeros
// at the origin; digitally that is the fixed numerator (1, -2, 1) — zeros at
// z = +1 — scaled for unity gain at Nyquist. For odd orders, the final
// section is first-order (B2=A2=0).
func Highpass(freq float64, order int, sampleRate float64) []biquad.Coefficients {
	if order <= 0 || !validCutoff(freq, sampleRate) {
		return nil
	}

	warped := prewarp(freq, sampleRate)
	sections := make([]biquad.Coefficients, 0, (order+1)/2)

	for k := 0; k < order/2; k++ {
		z := bilinear(complex(warped, 0)/prototypePair(order, k), sampleRate)
		a1, a2 := denomFromConjugate(z)
		g := (1 - a1 + a2) / 4

		sections = append(sections, biquad.Coefficients{
			B0: g, B1: -2 * g, B2: g,
			A1: a1, A2: a2,
		})
	}

	if order%2 != 0 {
		p := real(bilinear(complex(-warped, 0), sampleRate))
		a1 := -p
		g := (1 - a1) / 2

		sections = append(sections, biquad.Coefficients{B0: g, B1: -g, A1: a1})
	}

	return sections
}

// Bandpass designs a bandpass Butterworth cascade.
//
// The substitution s -> (s^2 + wl*wh) / (s*(wh-wl)) doubles the pole count,
// so a prototype of the given order yields `order` biquad sections (2*order
// poles). Each section carries one zero at z = +1 and one at z = -1 — the
// numerator (1, 0, -1) — scaled for unity gain at the warped band center.
func Bandpass(lowHz, highHz float64, order int, sampleRate float64) []biquad.Coefficients {
	if order <= 0 || !validCutoff(lowHz, sampleRate) || !validCutoff(highHz, sampleRate) {
		return nil
	}
	if lowHz >= highHz {
		return nil
	}

	wl := prewarp(lowHz, sampleRate)
	wh := prewarp(highHz, sampleRate)
	bw := wh - wl
	w0sq := wl * wh

	// The geometric band center sqrt(wl*wh) in the analog domain, mapped
	// back through the bilinear warp to the digital frequency where each
	// section is normalized to unity gain.
	centerHz := math.Atan(math.Sqrt(w0sq)/(2*sampleRate)) * sampleRate / math.Pi

	sections := make([]biquad.Coefficients, 0, order)

	for k := 0; k < order/2; k++ {
		s1, s2 := bandpassPolePair(prototypePair(order, k), bw, w0sq)
		z1 := bilinear(s1, sampleRate)
		z2 := bilinear(s2, sampleRate)

		a1, a2 := denomFromConjugate(z1)
		sections = append(sections, bandpassSection(a1, a2, centerHz, sampleRate))

		a1, a2 = denomFromConjugate(z2)
		sections = append(sections, bandpassSection(a1, a2, centerHz, sampleRate))
	}

	if order%2 != 0 {
		// The real prototype pole -1 maps to the roots of
		// s^2 + bw*s + w0sq = 0: a conjugate pair for narrow bands, two
		// real poles for wide ones. One section either way.
		disc := bw*bw - 4*w0sq

		var a1, a2 float64
		if disc < 0 {
			d := math.Sqrt(-disc)
			z := bilinear(complex(-bw/2, d/2), sampleRate)
			a1, a2 = denomFromConjugate(z)
		} else {
			d := math.Sqrt(disc)
			z1 := real(bilinear(complex((-bw+d)/2, 0), sampleRate))
			z2 := real(bilinear(complex((-bw-d)/2, 0), sampleRate))
			a1 = -(z1 + z2)
			a2 = z1 * z2
		}

		sections = append(sections, bandpassSection(a1, a2, centerHz, sampleRate))
	}

	return sections
}

// bandpassPolePair solves s^2 - p*bw*s + w0sq = 0 for one complex prototype
// pole p. The two roots are the section poles; their conjugates arise from
// the conjugate prototype pole and need not be computed.
func bandpassPolePair(p complex128, bw, w0sq float64) (complex128, complex128) {
	pb := p * complex(bw, 0)
	d := cmplx.Sqrt(pb*pb - complex(4*w0sq, 0))

	return (pb + d) / 2, (pb - d) / 2
}

// bandpassSection assembles one (1, 0, -1) numerator section over the given
// denominator and scales it for unity gain at the band center.
func bandpassSection(a1, a2, centerHz, sampleRate float64) biquad.Coefficients {
	c := biquad.Coefficients{B0: 1, B2: -1, A1: a1, A2: a2}
	g := 1 / cmplx.Abs(c.Response(centerHz, sampleRate))
	c.B0 = g
	c.B2 = -g

	return c
}
