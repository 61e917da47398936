package biquad

import "errors"

// MaxSections is the compile-time section capacity of a Cascade. It bounds
// the supported filter order: ceil(order/2) sections for lowpass/highpass,
// one section per order for bandpass.
const MaxSections = 8

// Errors returned by NewCascade.
var (
	ErrNoSections      = errors.New("biquad: cascade needs at least one section")
	ErrTooManySections = errors.New("biquad: section count exceeds MaxSections")
)

// Precision tags the arithmetic width a Cascade processes with. Coefficients
// are always designed in float64; PrecisionSingle rounds every section output
// and delay register through float32 so the output matches what a float32
// build of the same filter would produce.
type Precision uint8

const (
	PrecisionDouble Precision = iota
	PrecisionSingle
)

// String returns the precision tag name.
func (p Precision) String() string {
	if p == PrecisionSingle {
		return "single"
	}

	return "double"
}

// Cascade is an ordered series of biquad sections with fixed-capacity
// storage. It is the Filter value produced by the design package: the caller
// owns it exclusively, state is advanced by ProcessSample and cleared by
// Reset, and no internal allocation happens after construction.
type Cascade struct {
	sections  [MaxSections]Section
	count     int
	precision Precision
}

// cascadeConfig holds options for NewCascade.
type cascadeConfig struct {
	precision Precision
}

// CascadeOption configures a Cascade.
type CascadeOption func(*cascadeConfig)

// WithPrecision sets the processing precision tag. Default is PrecisionDouble.
func WithPrecision(p Precision) CascadeOption {
	return func(cfg *cascadeConfig) { cfg.precision = p }
}

// NewCascade creates a cascade from one or more coefficient sets.
// Each Coefficients value becomes one Section.
func NewCascade(coeffs []Coefficients, opts ...CascadeOption) (*Cascade, error) {
	if len(coeffs) == 0 {
		return nil, ErrNoSections
	}
	if len(coeffs) > MaxSections {
		return nil, ErrTooManySections
	}

	var cfg cascadeConfig
	for _, o := range opts {
		o(&cfg)
	}

	c := &Cascade{
		count:     len(coeffs),
		precision: cfg.precision,
	}
	for i := range coeffs {
		c.sections[i].Coefficients = coeffs[i]
	}

	return c, nil
}

// ProcessSample cascades one input sample through all sections in order and
// returns the output sample. O(NumSections), allocation-free, never fails.
func (c *Cascade) ProcessSample(x float64) float64 {
	if c.precision == PrecisionSingle {
		for i := 0; i < c.count; i++ {
			x = c.sections[i].processSampleSingle(x)
		}

		return x
	}

	for i := 0; i < c.count; i++ {
		x = c.sections[i].ProcessSample(x)
	}

	return x
}

// ProcessBlock filters a block in-place through the full cascade.
func (c *Cascade) ProcessBlock(buf []float64) {
	if c.precision == PrecisionSingle {
		for i := range buf {
			buf[i] = c.ProcessSample(buf[i])
		}

		return
	}

	for i := 0; i < c.count; i++ {
		c.sections[i].ProcessBlock(buf)
	}
}

// Reset clears all section states. Required before reusing a Cascade on a
// logically new signal; stale state otherwise leaks across signals.
func (c *Cascade) Reset() {
	for i := 0; i < c.count; i++ {
		c.sections[i].Reset()
	}
}

// NumSections returns the number of active biquad sections.
func (c *Cascade) NumSections() int {
	return c.count
}

// Precision returns the processing precision tag.
func (c *Cascade) Precision() Precision {
	return c.precision
}

// Section returns a pointer to the i-th section for inspection.
func (c *Cascade) Section(i int) *Section {
	return &c.sections[i]
}

// Coefficients returns a copy of the active section coefficients in order.
func (c *Cascade) Coefficients() []Coefficients {
	out := make([]Coefficients, c.count)
	for i := 0; i < c.count; i++ {
		out[i] = c.sections[i].Coefficients
	}

	return out
}

// State returns a snapshot of all active section delay-line states.
func (c *Cascade) State() [][2]float64 {
	states := make([][2]float64, c.count)
	for i := 0; i < c.count; i++ {
		states[i] = c.sections[i].State()
	}

	return states
}

// SetState restores previously saved section states.
// The slice length must match NumSections.
func (c *Cascade) SetState(states [][2]float64) {
	for i := 0; i < c.count; i++ {
		c.sections[i].SetState(states[i])
	}
}
