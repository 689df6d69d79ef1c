package pacing

import (
	"log"
	"math"
)

// Freq defines the type of pacing frequency
type Freq float64

// Defines the unit of frequency
const (
	Hz  Freq = 1
	KHz Freq = 1e3
)

// Period returns the time between two consecutive stimuli delivered at this
// frequency, i.e. the basic cycle length.
func (f Freq) Period() VTimeInSec {
	if f == 0 {
		log.Panic("frequency cannot be 0")
	}
	return VTimeInSec(1.0 / f)
}

// Cycle converts a time to the number of full cycles passed since time 0.
func (f Freq) Cycle(time VTimeInSec) uint64 {
	return uint64(math.Round(float64(time) * float64(f)))
}

// BPM2BCL converts a rate in beats per minute to the corresponding basic
// cycle length in seconds.
func BPM2BCL(bpm float64) VTimeInSec {
	if bpm <= 0 {
		log.Panic("rate must be positive")
	}
	return VTimeInSec(60.0 / bpm)
}

// BCL2BPM converts a basic cycle length in seconds to a rate in beats per
// minute.
func BCL2BPM(bcl VTimeInSec) float64 {
	if bcl <= 0 {
		log.Panic("cycle length must be positive")
	}
	return 60.0 / float64(bcl)
}
