package pacing

import "log"

// PaceLogger is a hook that prints every pace transition of a PacingSystem.
type PaceLogger struct {
	LogHookBase
}

// NewPaceLogger returns a PaceLogger that writes into the given logger
func NewPaceLogger(logger *log.Logger) *PaceLogger {
	h := new(PaceLogger)
	h.Logger = logger
	return h
}

// Func writes the transition information into the logger
func (h *PaceLogger) Func(ctx HookCtx) {
	switch ctx.Pos {
	case HookPosOccurrenceFired:
		o := ctx.Item.(Occurrence)
		h.Logger.Printf("%.10f, fire, occurrence %s, level %v",
			o.Start, o.ID, o.Event.Level)
	case HookPosOccurrenceExpired:
		o := ctx.Item.(Occurrence)
		h.Logger.Printf("%.10f, expire, occurrence %s", o.End, o.ID)
	}
}
