// Package pacing provides time-varying forcing signals for driven
// dynamical-system simulators. A signal is described either as a protocol of
// step events scheduled in virtual time, or as a sampled time series with
// interpolation.
package pacing

import "math"

// VTimeInSec defines the time in the simulated space in the unit of second.
type VTimeInSec float64

// TimeInfinity is returned as the next change time when nothing is scheduled.
var TimeInfinity = VTimeInSec(math.Inf(1))

// TimeTeller can be used to get the current time.
type TimeTeller interface {
	CurrentTime() VTimeInSec
}

// A Pacer supplies the forcing-signal value to a driving integration loop.
// The loop must not step its own clock past NextTime without first calling
// Advance to at least that time, or it will skip a discontinuity.
type Pacer interface {
	// Time returns the time the pacer has been advanced to.
	Time() VTimeInSec

	// Pace returns the signal value in effect at the current time.
	Pace() float64

	// NextTime returns the smallest time at which the signal value will
	// change, or TimeInfinity if it never will.
	NextTime() VTimeInSec

	// Advance moves the pacer forward to time t and returns the signal value
	// in effect at t. Time cannot move backward.
	Advance(t VTimeInSec) (float64, error)
}
