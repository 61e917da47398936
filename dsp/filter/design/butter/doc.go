// Package butter computes Butterworth second-order-section cascades via the
// analog-prototype route: normalized left-half-plane prototype poles, cutoff
// pre-warping, the lowpass/highpass/bandpass analog frequency transform, and
// the bilinear transform into the z plane.
//
// Conjugate pole pairs become one biquad each, an odd-order real pole becomes
// a trailing first-order section, and every section is normalized to unity
// gain at the kind's reference frequency (DC, Nyquist, or the warped band
// center). The poles of every produced section lie strictly inside the unit
// circle.
//
// Functions here assume pre-validated parameters and return nil on invalid
// input; the caller-facing validation and error taxonomy live in
// dsp/filter/design.
package butter
