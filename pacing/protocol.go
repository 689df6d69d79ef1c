package pacing

import "sort"

// A Protocol is an ordered, validated collection of stimulus Events. Once a
// PacingSystem has been built from it, a Protocol must be treated as an
// immutable value; the system takes its own snapshot at construction.
type Protocol struct {
	events []Event
}

// NewProtocol creates an empty Protocol.
func NewProtocol() *Protocol {
	return &Protocol{}
}

// Schedule validates and appends one event to the protocol. Two events with
// the same start time make the protocol ambiguous and are rejected right
// away; conflicts that only arise between periodic recurrences surface from
// the PacingSystem when the conflicting occurrence is generated.
func (p *Protocol) Schedule(
	level float64,
	start, duration, period VTimeInSec,
	multiplier int,
) error {
	e := Event{
		Level:      level,
		Start:      start,
		Duration:   duration,
		Period:     period,
		Multiplier: multiplier,
	}

	if err := e.validate(); err != nil {
		return err
	}

	for _, existing := range p.events {
		if existing.Start == e.Start {
			return &SimultaneousEventError{Time: e.Start}
		}
	}

	p.events = append(p.events, e)

	return nil
}

// Len returns the number of events in the protocol.
func (p *Protocol) Len() int {
	return len(p.events)
}

// Events returns the scheduled events. The returned slice is a copy and is
// stable across repeated calls on the same protocol.
func (p *Protocol) Events() []Event {
	events := make([]Event, len(p.events))
	copy(events, p.events)

	return events
}

// Head returns the event with the earliest start time. The second return
// value is false for an empty protocol.
func (p *Protocol) Head() (Event, bool) {
	if len(p.events) == 0 {
		return Event{}, false
	}

	head := p.events[0]
	for _, e := range p.events[1:] {
		if e.Start < head.Start {
			head = e
		}
	}

	return head, true
}

// CharacteristicTime returns the smallest time at which the protocol's
// pattern is known to repeat. A finite event contributes the end of its last
// occurrence; an indefinitely recurring event contributes its period.
func (p *Protocol) CharacteristicTime() VTimeInSec {
	var tMax VTimeInSec

	for _, e := range p.events {
		var t VTimeInSec

		switch {
		case !e.IsPeriodic():
			t = e.Start + e.Duration
		case e.Multiplier > 0:
			t = e.Start + e.Period*VTimeInSec(e.Multiplier)
		default:
			t = e.Period
		}

		if t > tMax {
			tMax = t
		}
	}

	return tMax
}

// Levels returns the distinct stimulus levels used by the protocol, sorted
// ascending.
func (p *Protocol) Levels() []float64 {
	seen := make(map[float64]bool)
	levels := make([]float64, 0, len(p.events))

	for _, e := range p.events {
		if !seen[e.Level] {
			seen[e.Level] = true
			levels = append(levels, e.Level)
		}
	}

	sort.Float64s(levels)

	return levels
}

// Clone returns a deep copy of the protocol.
func (p *Protocol) Clone() *Protocol {
	c := &Protocol{
		events: make([]Event, len(p.events)),
	}
	copy(c.events, p.events)

	return c
}
