package pacing

// A PacingSystem advances monotonically through time and reports which
// stimulus level a protocol puts in effect at each instant, together with the
// time of the next discontinuity.
//
// The pending queue only ever holds one upcoming occurrence per event: when
// an occurrence fires, the event's next occurrence is generated and pushed.
// This keeps memory bounded for indefinitely recurring events. Every push
// runs the simultaneity check against the pending set, so a conflict between
// two occurrences is reported as soon as the later one is generated, even if
// its start time has not been reached yet.
//
// A PacingSystem is not safe for concurrent use. Typical usage is one system
// per simulation instance, owned by the driving integration loop.
type PacingSystem struct {
	HookableBase

	protocol *Protocol

	time    VTimeInSec
	pace    float64
	active  *Occurrence
	pending *occurrenceQueue
}

// NewPacingSystem creates a PacingSystem over a snapshot of the given
// protocol, starting at time 0.
func NewPacingSystem(p *Protocol) (*PacingSystem, error) {
	return NewPacingSystemAt(p, 0)
}

// NewPacingSystemAt creates a PacingSystem over a snapshot of the given
// protocol, starting at the given time. Occurrences that lie entirely before
// the initial time contribute nothing; an occurrence whose window contains
// the initial time becomes active right away.
func NewPacingSystemAt(
	p *Protocol,
	initialTime VTimeInSec,
) (*PacingSystem, error) {
	s := &PacingSystem{
		protocol: p.Clone(),
		time:     initialTime,
		pending:  newOccurrenceQueue(),
	}

	for _, e := range s.protocol.events {
		o, ok := firstRelevantOccurrence(e, initialTime)
		if !ok {
			continue
		}

		if err := s.push(o); err != nil {
			return nil, err
		}
	}

	if err := s.catchUp(initialTime); err != nil {
		return nil, err
	}

	return s, nil
}

// firstRelevantOccurrence returns the earliest occurrence of e whose window
// contains t or starts at or after t. The second return value is false if
// every occurrence of e ends at or before t.
func firstRelevantOccurrence(e Event, t VTimeInSec) (Occurrence, bool) {
	index := 0

	if e.IsPeriodic() && t >= e.Start+e.Duration {
		// Smallest index whose window end lies strictly after t. The window
		// is half-open, so an occurrence ending exactly at t is skipped.
		index = int((t-e.Start-e.Duration)/e.Period) + 1
	}

	if !e.IsPeriodic() && t >= e.Start+e.Duration {
		return Occurrence{}, false
	}

	if e.IsPeriodic() && e.Multiplier > 0 && index >= e.Multiplier {
		return Occurrence{}, false
	}

	return makeOccurrence(e, index), true
}

// Protocol returns a copy of the protocol snapshot the system was built
// from.
func (s *PacingSystem) Protocol() *Protocol {
	return s.protocol.Clone()
}

// Time returns the time the system has been advanced to.
func (s *PacingSystem) Time() VTimeInSec {
	return s.time
}

// CurrentTime returns the time the system has been advanced to.
func (s *PacingSystem) CurrentTime() VTimeInSec {
	return s.time
}

// Pace returns the stimulus level in effect at the current time.
func (s *PacingSystem) Pace() float64 {
	return s.pace
}

// NextTime returns the smallest time at which the pace will change: the end
// of the active occurrence or the start of the earliest pending one,
// whichever comes first. It returns TimeInfinity if nothing is active and
// nothing is pending.
func (s *PacingSystem) NextTime() VTimeInSec {
	if s.active != nil {
		t := s.active.End
		if s.pending.Len() > 0 && s.pending.Peek().Start < t {
			t = s.pending.Peek().Start
		}

		return t
	}

	if s.pending.Len() > 0 {
		return s.pending.Peek().Start
	}

	return TimeInfinity
}

// Advance moves the system forward to time t and returns the pace in effect
// at t. Advancing to a time earlier than the current time fails with an
// OrderingError. Advancing again to the current time is a no-op. On error
// the system's state is left exactly as it was before the call.
func (s *PacingSystem) Advance(t VTimeInSec) (float64, error) {
	if t < s.time {
		return s.pace, &OrderingError{Current: s.time, Target: t}
	}

	s.InvokeHook(HookCtx{
		Domain: s,
		Pos:    HookPosBeforeAdvance,
		Item:   t,
	})

	snapshot := s.saveState()

	if err := s.catchUp(t); err != nil {
		s.restoreState(snapshot)
		return s.pace, err
	}

	s.InvokeHook(HookCtx{
		Domain: s,
		Pos:    HookPosAfterAdvance,
		Item:   t,
		Detail: s.pace,
	})

	return s.pace, nil
}

// catchUp processes every occurrence boundary in (current time, t] and moves
// the current time to t.
func (s *PacingSystem) catchUp(t VTimeInSec) error {
	if s.active != nil && t >= s.active.End {
		s.expireActive()
	}

	for s.pending.Len() > 0 && s.pending.Peek().Start <= t {
		o := s.pending.Pop()

		s.fire(o)

		// The next occurrence is generated as soon as this one fires, which
		// is what surfaces a conflict at a future start time immediately.
		if o.hasNext() {
			if err := s.push(o.next()); err != nil {
				return err
			}
		}

		// A window that already closed at t is observed as a discontinuity
		// only; t itself lies in the gap after it.
		if t >= o.End {
			s.expireActive()
		}
	}

	s.time = t

	return nil
}

func (s *PacingSystem) fire(o Occurrence) {
	s.active = &o
	s.pace = o.Event.Level

	s.InvokeHook(HookCtx{
		Domain: s,
		Pos:    HookPosOccurrenceFired,
		Item:   o,
	})
}

func (s *PacingSystem) expireActive() {
	o := *s.active

	s.active = nil
	s.pace = 0

	s.InvokeHook(HookCtx{
		Domain: s,
		Pos:    HookPosOccurrenceExpired,
		Item:   o,
	})
}

func (s *PacingSystem) push(o Occurrence) error {
	if s.pending.AnyStartsAt(o.Start) {
		return &SimultaneousEventError{Time: o.Start}
	}

	if s.active != nil && s.active.Start == o.Start {
		return &SimultaneousEventError{Time: o.Start}
	}

	s.pending.Push(o)

	return nil
}

type pacingSystemState struct {
	time    VTimeInSec
	pace    float64
	active  *Occurrence
	pending *occurrenceQueue
}

func (s *PacingSystem) saveState() pacingSystemState {
	state := pacingSystemState{
		time:    s.time,
		pace:    s.pace,
		pending: s.pending.clone(),
	}

	if s.active != nil {
		active := *s.active
		state.active = &active
	}

	return state
}

func (s *PacingSystem) restoreState(state pacingSystemState) {
	s.time = state.time
	s.pace = state.pace
	s.active = state.active
	s.pending = state.pending
}

// Sample advances through the given non-decreasing times and returns the
// pace in effect at each of them.
func (s *PacingSystem) Sample(times []VTimeInSec) ([]float64, error) {
	paces := make([]float64, len(times))

	for i, t := range times {
		pace, err := s.Advance(t)
		if err != nil {
			return nil, err
		}

		paces[i] = pace
	}

	return paces, nil
}
