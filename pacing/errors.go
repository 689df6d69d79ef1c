package pacing

import "fmt"

// A ConfigurationError reports invalid protocol or interpolator parameters.
// It is raised at construction or Schedule time and is never recovered
// internally.
type ConfigurationError struct {
	Msg string
}

func (e *ConfigurationError) Error() string {
	return "configuration error: " + e.Msg
}

func configErrorf(format string, args ...any) *ConfigurationError {
	return &ConfigurationError{Msg: fmt.Sprintf(format, args...)}
}

// An OrderingError reports an Advance call with a time earlier than the
// pacer's current time. The scheduling sequence cannot continue after it.
type OrderingError struct {
	Current VTimeInSec
	Target  VTimeInSec
}

func (e *OrderingError) Error() string {
	return fmt.Sprintf(
		"time cannot be before current time: current %.10f, target %.10f",
		e.Current, e.Target)
}

// A SimultaneousEventError reports two distinct event occurrences that share
// a start time. The protocol is ambiguous at that instant and cannot be
// scheduled past it.
type SimultaneousEventError struct {
	// Time is the conflicting start time.
	Time VTimeInSec
}

func (e *SimultaneousEventError) Error() string {
	return fmt.Sprintf("simultaneous event occurrences at time %.10f", e.Time)
}
