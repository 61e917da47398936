// Package design is the public entry point for building IIR filters.
//
// Lowpass, Highpass and Bandpass produce Butterworth cascades through the
// analog-prototype pipeline in the butter subpackage; Notch computes a
// single-section digital notch in closed form. All designers validate their
// parameters up front and return a ready-to-run [biquad.Cascade] with zeroed
// state, or a sentinel error with no partial result.
package design
