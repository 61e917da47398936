package butter

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/vishwambharaRH/butterworth/dsp/filter/biquad"
)

func almostEqual(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

// rbjLowpass computes a lowpass biquad from the RBJ cookbook formula. For a
// Butterworth section Q this is an independent derivation of the same analog
// prototype + bilinear transform, so the pole-path design must agree with it
// to double-precision rounding.
func rbjLowpass(freq, q, sampleRate float64) biquad.Coefficients {
	w0 := 2 * math.Pi * freq / sampleRate
	cw, sw := math.Cos(w0), math.Sin(w0)
	alpha := sw / (2 * q)
	a0 := 1 + alpha

	return biquad.Coefficients{
		B0: (1 - cw) / 2 / a0,
		B1: (1 - cw) / a0,
		B2: (1 - cw) / 2 / a0,
		A1: -2 * cw / a0,
		A2: (1 - alpha) / a0,
	}
}

func rbjHighpass(freq, q, sampleRate float64) biquad.Coefficients {
	w0 := 2 * math.Pi * freq / sampleRate
	cw, sw := math.Cos(w0), math.Sin(w0)
	alpha := sw / (2 * q)
	a0 := 1 + alpha

	return biquad.Coefficients{
		B0: (1 + cw) / 2 / a0,
		B1: -(1 + cw) / a0,
		B2: (1 + cw) / 2 / a0,
		A1: -2 * cw / a0,
		A2: (1 - alpha) / a0,
	}
}

// sectionQ is the Butterworth quality factor of pair k: 1/(2*sin(theta_k)).
func sectionQ(order, k int) float64 {
	return 1 / (2 * math.Sin(math.Pi*float64(2*k+1)/(2*float64(order))))
}

func requireCoeffsNear(t *testing.T, got, want biquad.Coefficients, eps float64) {
	t.Helper()
	pairs := [][2]float64{
		{got.B0, want.B0}, {got.B1, want.B1}, {got.B2, want.B2},
		{got.A1, want.A1}, {got.A2, want.A2},
	}
	for i, p := range pairs {
		if !almostEqual(p[0], p[1], eps) {
			t.Fatalf("coefficient %d: got %.18g, want %.18g", i, p[0], p[1])
		}
	}
}

func TestLowpass_SectionCount(t *testing.T) {
	for order := 1; order <= 10; order++ {
		want := (order + 1) / 2
		got := Lowpass(1000, order, 48000)
		if len(got) != want {
			t.Fatalf("order %d: sections=%d, want %d", order, len(got), want)
		}
	}
}

func TestHighpass_SectionCount(t *testing.T) {
	for order := 1; order <= 10; order++ {
		want := (order + 1) / 2
		got := Highpass(1000, order, 48000)
		if len(got) != want {
			t.Fatalf("order %d: sections=%d, want %d", order, len(got), want)
		}
	}
}

func TestBandpass_SectionCount(t *testing.T) {
	for order := 1; order <= 8; order++ {
		got := Bandpass(0.5, 40, order, 500)
		if len(got) != order {
			t.Fatalf("order %d: sections=%d, want %d", order, len(got), order)
		}
	}
}

func TestLowpass_MatchesIndependentDesign(t *testing.T) {
	for _, sr := range []float64{500, 48000} {
		for order := 1; order <= 8; order++ {
			freq := sr / 50
			got := Lowpass(freq, order, sr)

			for k := 0; k < order/2; k++ {
				want := rbjLowpass(freq, sectionQ(order, k), sr)
				requireCoeffsNear(t, got[k], want, 1e-12)
			}

			if order%2 != 0 {
				kk := math.Tan(math.Pi * freq / sr)
				norm := 1 / (1 + kk)
				want := biquad.Coefficients{B0: kk * norm, B1: kk * norm, A1: (kk - 1) * norm}
				requireCoeffsNear(t, got[len(got)-1], want, 1e-12)
			}
		}
	}
}

func TestHighpass_MatchesIndependentDesign(t *testing.T) {
	for _, sr := range []float64{500, 48000} {
		for order := 1; order <= 8; order++ {
			freq := sr / 10
			got := Highpass(freq, order, sr)

			for k := 0; k < order/2; k++ {
				want := rbjHighpass(freq, sectionQ(order, k), sr)
				requireCoeffsNear(t, got[k], want, 1e-12)
			}

			if order%2 != 0 {
				kk := math.Tan(math.Pi * freq / sr)
				norm := 1 / (1 + kk)
				want := biquad.Coefficients{B0: norm, B1: -norm, A1: (kk - 1) * norm}
				requireCoeffsNear(t, got[len(got)-1], want, 1e-12)
			}
		}
	}
}

func TestLowpass_Minus3dBAtCutoff(t *testing.T) {
	for _, order := range []int{1, 2, 3, 4, 6, 8} {
		c, err := biquad.NewCascade(Lowpass(1000, order, 48000))
		if err != nil {
			t.Fatal(err)
		}
		got := c.MagnitudeDB(1000, 48000)
		if !almostEqual(got, -3.0103, 0.01) {
			t.Fatalf("order %d: cutoff magnitude=%.4f dB, want about -3.01", order, got)
		}
	}
}

func TestHighpass_Minus3dBAtCutoff(t *testing.T) {
	for _, order := range []int{1, 2, 3, 4, 6, 8} {
		c, err := biquad.NewCascade(Highpass(1000, order, 48000))
		if err != nil {
			t.Fatal(err)
		}
		got := c.MagnitudeDB(1000, 48000)
		if !almostEqual(got, -3.0103, 0.01) {
			t.Fatalf("order %d: cutoff magnitude=%.4f dB, want about -3.01", order, got)
		}
	}
}

func TestLowpass_UnityDCGain(t *testing.T) {
	for order := 1; order <= 8; order++ {
		c, _ := biquad.NewCascade(Lowpass(10, order, 500))
		got := cmplx.Abs(c.Response(0, 500))
		if !almostEqual(got, 1, 1e-12) {
			t.Fatalf("order %d: DC gain=%v, want 1", order, got)
		}
	}
}

func TestHighpass_UnityNyquistGain(t *testing.T) {
	for order := 1; order <= 8; order++ {
		c, _ := biquad.NewCascade(Highpass(40, order, 500))
		got := cmplx.Abs(c.Response(250, 500))
		if !almostEqual(got, 1, 1e-12) {
			t.Fatalf("order %d: Nyquist gain=%v, want 1", order, got)
		}
	}

	c, _ := biquad.NewCascade(Highpass(40, 2, 500))
	if dc := cmplx.Abs(c.Response(0, 500)); dc > 1e-12 {
		t.Fatalf("DC gain=%v, want 0", dc)
	}
}

func TestBandpass_UnityCenterGainAndEdges(t *testing.T) {
	low, high, sr := 0.5, 40.0, 500.0

	for _, order := range []int{1, 2, 3, 4, 6} {
		c, err := biquad.NewCascade(Bandpass(low, high, order, sr))
		if err != nil {
			t.Fatal(err)
		}

		// Geometric center of the warped band, mapped back to Hz the same
		// way the designer normalizes.
		wl := 2 * sr * math.Tan(math.Pi*low/sr)
		wh := 2 * sr * math.Tan(math.Pi*high/sr)
		center := math.Atan(math.Sqrt(wl*wh)/(2*sr)) * sr / math.Pi

		if got := cmplx.Abs(c.Response(center, sr)); !almostEqual(got, 1, 1e-9) {
			t.Fatalf("order %d: center gain=%v, want 1", order, got)
		}

		for _, edge := range []float64{low, high} {
			got := c.MagnitudeDB(edge, sr)
			if !almostEqual(got, -3.0103, 0.01) {
				t.Fatalf("order %d: edge %v Hz=%.4f dB, want about -3.01", order, edge, got)
			}
		}
	}
}

func TestBandpass_RejectsOutOfBand(t *testing.T) {
	c, _ := biquad.NewCascade(Bandpass(0.5, 40, 4, 500))

	if dc := cmplx.Abs(c.Response(0, 500)); dc > 1e-9 {
		t.Fatalf("DC gain=%v, want 0", dc)
	}
	if ny := cmplx.Abs(c.Response(250, 500)); ny > 1e-9 {
		t.Fatalf("Nyquist gain=%v, want 0", ny)
	}
	if far := c.MagnitudeDB(200, 500); far > -40 {
		t.Fatalf("stopband at 200 Hz=%.2f dB, want < -40", far)
	}
}

func TestAllKinds_SectionsStable(t *testing.T) {
	check := func(t *testing.T, name string, sections []biquad.Coefficients) {
		t.Helper()
		for i, s := range sections {
			for _, p := range s.Poles() {
				if cmplx.Abs(p) >= 1 {
					t.Fatalf("%s section %d: pole %v outside unit circle", name, i, p)
				}
			}
		}
	}

	for _, sr := range []float64{500, 44100, 96000} {
		for order := 1; order <= 8; order++ {
			check(t, "lowpass", Lowpass(sr/50, order, sr))
			check(t, "highpass", Highpass(sr/10, order, sr))
			check(t, "bandpass", Bandpass(sr/1000, sr/12.5, order, sr))
		}
	}
}

func TestDesign_Deterministic(t *testing.T) {
	a := Bandpass(0.5, 40, 4, 500)
	b := Bandpass(0.5, 40, 4, 500)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("section %d differs between identical designs: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestDesign_InvalidInputs(t *testing.T) {
	if got := Lowpass(1000, 0, 48000); got != nil {
		t.Fatal("expected nil for zero order")
	}
	if got := Lowpass(24000, 4, 48000); got != nil {
		t.Fatal("expected nil for cutoff at Nyquist")
	}
	if got := Highpass(-1, 4, 48000); got != nil {
		t.Fatal("expected nil for negative cutoff")
	}
	if got := Bandpass(40, 0.5, 4, 500); got != nil {
		t.Fatal("expected nil for inverted band edges")
	}
	if got := Bandpass(0.5, 40, 4, 0); got != nil {
		t.Fatal("expected nil for zero sample rate")
	}
}

func TestBandpass_OddOrderRealPoleBranches(t *testing.T) {
	// Narrow band: the real prototype pole maps to a conjugate pair.
	narrow := Bandpass(45, 55, 1, 500)
	if len(narrow) != 1 {
		t.Fatalf("narrow: sections=%d, want 1", len(narrow))
	}
	// Wide band: discriminant goes positive and both poles are real.
	wide := Bandpass(1, 200, 1, 500)
	if len(wide) != 1 {
		t.Fatalf("wide: sections=%d, want 1", len(wide))
	}

	for _, sections := range [][]biquad.Coefficients{narrow, wide} {
		for _, p := range sections[0].Poles() {
			if cmplx.Abs(p) >= 1 {
				t.Fatalf("pole %v outside unit circle", p)
			}
		}
	}
}
