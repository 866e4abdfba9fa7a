// Package estimation estimates the gate count and access latencies of a
// simple direct-mapped cache from its structural parameters.
package estimation

import "strconv"

// Gate costs per bit. These are fixed technology assumptions.
const (
	// DFFGates is the number of gates that store one bit (one D flip-flop).
	DFFGates = 6

	// ComparatorGatesPerBit is the tag comparison cost per tag bit.
	ComparatorGatesPerBit = 4

	// MuxGatesPerBit is the output selection cost per data bit.
	MuxGatesPerBit = 6
)

// Delay is a latency expressed in technology-dependent time units.
type Delay float64

// String formats the delay in the shortest decimal form that represents it
// exactly.
func (d Delay) String() string {
	return strconv.FormatFloat(float64(d), 'f', -1, 64)
}

// Params describes the structure of the cache being estimated.
//
// No field is validated. Negative values produce whatever the arithmetic
// produces.
type Params struct {
	DataWidth       int
	TagWidth        int
	CacheSize       int
	MemAccessDelay  Delay
	SingleGateDelay Delay
}

// ExampleParams returns a 16-line cache with 16-bit data and tag fields, a
// memory latency of 50 and a unit gate delay.
func ExampleParams() Params {
	return Params{
		DataWidth:       16,
		TagWidth:        16,
		CacheSize:       16,
		MemAccessDelay:  50,
		SingleGateDelay: 1,
	}
}

// Estimator estimates the metrics of a cache.
type Estimator interface {
	Estimate(p Params) Metrics
}

// DefaultEstimator applies the closed-form model implemented by Estimate.
type DefaultEstimator struct{}

// Estimate implements Estimator.
func (DefaultEstimator) Estimate(p Params) Metrics {
	return Estimate(p)
}

// Estimate returns the gate count and latencies of the cache described by p.
func Estimate(p Params) Metrics {
	return Analyze(p).Metrics()
}

// Analyze computes every intermediate term of the estimation.
func Analyze(p Params) Breakdown {
	return Breakdown{
		DataArrayGates:  p.DataWidth * p.CacheSize * DFFGates,
		TagArrayGates:   p.TagWidth * p.CacheSize * DFFGates,
		ValidArrayGates: p.CacheSize * DFFGates,
		ComparatorGates: p.TagWidth * ComparatorGatesPerBit,
		MuxGates:        p.DataWidth * MuxGatesPerBit,

		ComparatorDelay: Delay(p.TagWidth) * p.SingleGateDelay,
		MuxDelay:        p.SingleGateDelay,
		MemAccessDelay:  p.MemAccessDelay,
		WriteDelay:      2 * DFFGates * p.SingleGateDelay,
	}
}
