package pacing

// An Event is one scheduled stimulus definition. It is active with the given
// level over the half-open window [Start, Start+Duration). A periodic event
// recurs every Period seconds, either indefinitely (Multiplier == 0) or
// exactly Multiplier times in total.
type Event struct {
	Level      float64
	Start      VTimeInSec
	Duration   VTimeInSec
	Period     VTimeInSec
	Multiplier int
}

// IsPeriodic returns true if the event recurs.
func (e Event) IsPeriodic() bool {
	return e.Period > 0
}

// Stops returns the time after which the event is never active again, or
// TimeInfinity for an indefinitely recurring event.
func (e Event) Stops() VTimeInSec {
	if !e.IsPeriodic() {
		return e.Start + e.Duration
	}

	if e.Multiplier == 0 {
		return TimeInfinity
	}

	return e.Start + VTimeInSec(e.Multiplier-1)*e.Period + e.Duration
}

func (e Event) validate() error {
	if e.Duration <= 0 {
		return configErrorf("event duration must be positive, got %v",
			e.Duration)
	}

	if e.Period < 0 {
		return configErrorf("event period cannot be negative, got %v",
			e.Period)
	}

	if e.Multiplier < 0 {
		return configErrorf("event multiplier cannot be negative, got %d",
			e.Multiplier)
	}

	if e.Period == 0 && e.Multiplier > 0 {
		return configErrorf(
			"multiplier %d set on a non-periodic event", e.Multiplier)
	}

	if e.Period > 0 && e.Duration > e.Period {
		return configErrorf(
			"event duration %v is longer than its period %v",
			e.Duration, e.Period)
	}

	return nil
}
