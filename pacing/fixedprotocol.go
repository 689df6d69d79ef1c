package pacing

import "sort"

// InterpolationMethod selects how a FixedProtocol computes values between
// samples.
type InterpolationMethod string

// Linear is the only supported interpolation method.
const Linear InterpolationMethod = "linear"

// A FixedProtocol supplies the forcing signal as a sampled time series plus
// interpolation, rather than as declarative step events. It is immutable
// after construction and every Value call is a pure function of the table
// and the query time.
type FixedProtocol struct {
	times  []VTimeInSec
	values []float64
	method InterpolationMethod
}

// NewFixedProtocol creates a FixedProtocol from paired time and value
// samples. The pairs are sorted ascending by time at construction; the input
// order does not matter. The two slices must have the same, non-zero length
// and only the Linear method is accepted.
func NewFixedProtocol(
	times []VTimeInSec,
	values []float64,
	method InterpolationMethod,
) (*FixedProtocol, error) {
	if len(times) != len(values) {
		return nil, configErrorf(
			"time and value series must have the same length, got %d and %d",
			len(times), len(values))
	}

	if len(times) == 0 {
		return nil, configErrorf("time series cannot be empty")
	}

	if method != Linear {
		return nil, configErrorf(
			"unsupported interpolation method %q", string(method))
	}

	fp := &FixedProtocol{
		times:  make([]VTimeInSec, len(times)),
		values: make([]float64, len(values)),
		method: method,
	}
	copy(fp.times, times)
	copy(fp.values, values)

	sort.Stable(byTime{fp.times, fp.values})

	return fp, nil
}

// byTime sorts value samples along with their times.
type byTime struct {
	times  []VTimeInSec
	values []float64
}

func (s byTime) Len() int           { return len(s.times) }
func (s byTime) Less(i, j int) bool { return s.times[i] < s.times[j] }
func (s byTime) Swap(i, j int) {
	s.times[i], s.times[j] = s.times[j], s.times[i]
	s.values[i], s.values[j] = s.values[j], s.values[i]
}

// Value returns the signal value at time t. Queries before the first sample
// clamp to the first value and queries after the last sample clamp to the
// last value.
func (fp *FixedProtocol) Value(t VTimeInSec) float64 {
	n := len(fp.times)

	if t <= fp.times[0] {
		return fp.values[0]
	}

	if t >= fp.times[n-1] {
		return fp.values[n-1]
	}

	// Index of the first sample time strictly greater than t. The clamps
	// above guarantee 0 < i < n.
	i := sort.Search(n, func(i int) bool {
		return fp.times[i] > t
	})

	t0, t1 := fp.times[i-1], fp.times[i]
	v0, v1 := fp.values[i-1], fp.values[i]

	return v0 + float64(t-t0)*(v1-v0)/float64(t1-t0)
}

// Len returns the number of samples.
func (fp *FixedProtocol) Len() int {
	return len(fp.times)
}

// Times returns a copy of the sorted sample times.
func (fp *FixedProtocol) Times() []VTimeInSec {
	times := make([]VTimeInSec, len(fp.times))
	copy(times, fp.times)

	return times
}

// Values returns a copy of the sample values, ordered to pair with Times.
func (fp *FixedProtocol) Values() []float64 {
	values := make([]float64, len(fp.values))
	copy(values, fp.values)

	return values
}

// Clone returns a deep copy of the protocol, suitable for ownership transfer
// into a long-lived evaluation context.
func (fp *FixedProtocol) Clone() *FixedProtocol {
	c := &FixedProtocol{
		times:  make([]VTimeInSec, len(fp.times)),
		values: make([]float64, len(fp.values)),
		method: fp.method,
	}
	copy(c.times, fp.times)
	copy(c.values, fp.values)

	return c
}

// Equal tells if two fixed protocols hold the same sorted samples and use
// the same interpolation method.
func (fp *FixedProtocol) Equal(other *FixedProtocol) bool {
	if fp.method != other.method {
		return false
	}

	if len(fp.times) != len(other.times) {
		return false
	}

	for i := range fp.times {
		if fp.times[i] != other.times[i] || fp.values[i] != other.values[i] {
			return false
		}
	}

	return true
}

// A FixedPacer adapts a FixedProtocol to the Pacer interface so the same
// driving loop can consume either strategy. The underlying table is shared,
// not copied; only the clock is mutable.
type FixedPacer struct {
	protocol *FixedProtocol
	time     VTimeInSec
}

// NewPacer creates a Pacer view of the protocol starting at time 0.
func (fp *FixedProtocol) NewPacer() *FixedPacer {
	return &FixedPacer{protocol: fp}
}

// Time returns the time the pacer has been advanced to.
func (p *FixedPacer) Time() VTimeInSec {
	return p.time
}

// Pace returns the interpolated signal value at the current time.
func (p *FixedPacer) Pace() float64 {
	return p.protocol.Value(p.time)
}

// NextTime returns the first sample time strictly after the current time.
// Between samples the signal varies continuously, so sample times are the
// only instants a consumer must align its steps with.
func (p *FixedPacer) NextTime() VTimeInSec {
	times := p.protocol.times

	i := sort.Search(len(times), func(i int) bool {
		return times[i] > p.time
	})
	if i == len(times) {
		return TimeInfinity
	}

	return times[i]
}

// Advance moves the pacer forward to time t and returns the value at t.
func (p *FixedPacer) Advance(t VTimeInSec) (float64, error) {
	if t < p.time {
		return p.Pace(), &OrderingError{Current: p.time, Target: t}
	}

	p.time = t

	return p.Pace(), nil
}
