// Package biquad provides biquad (second-order IIR) filter runtime primitives.
//
// A [Section] implements Direct Form II Transposed processing for a single
// second-order section defined by [Coefficients]. A [Cascade] runs a bounded
// number of sections in series and is the value handed out by the design
// package for higher-order filters (Butterworth lowpass/highpass/bandpass,
// notch).
//
// The cascade is sized at compile time ([MaxSections]) and processing never
// allocates or branches on sample values, so ProcessSample is safe to call
// from an interrupt or tightly timed sampling loop. A Cascade carries no
// locking; callers must not share one instance between concurrent writers.
//
// This package provides the processing runtime only. Coefficient design
// lives in dsp/filter/design.
package biquad
