package datarecording

import (
	"os"
	"strings"
	"time"

	"github.com/sarchlab/pacing/pacing"
)

// A TransitionEntry is one recorded change of the forcing signal.
type TransitionEntry struct {
	Time         float64
	Kind         string
	OccurrenceID string
	Level        float64
}

// A RunInfoEntry is one property of the recorded run.
type RunInfoEntry struct {
	Property string
	Value    string
}

const (
	transitionTable = "pace_transitions"
	runInfoTable    = "run_info"
)

// A TraceRecorder is a hook that records every pace transition of a
// PacingSystem into a DataRecorder, together with metadata about the run.
// Attach it with AcceptHook on the system to be traced.
type TraceRecorder struct {
	recorder DataRecorder
}

// NewTraceRecorder creates a TraceRecorder writing through the given
// DataRecorder. It creates the trace tables and records the run metadata
// immediately.
func NewTraceRecorder(recorder DataRecorder) *TraceRecorder {
	r := &TraceRecorder{recorder: recorder}

	r.recorder.CreateTable(transitionTable, TransitionEntry{})
	r.recorder.CreateTable(runInfoTable, RunInfoEntry{})
	r.recordRunInfo()

	return r
}

func (r *TraceRecorder) recordRunInfo() {
	startTime := time.Now().Format("2006-01-02 15:04:05.000000000")
	r.recorder.InsertData(runInfoTable,
		RunInfoEntry{"Start Time", startTime})

	cmd := strings.Join(os.Args, " ")
	r.recorder.InsertData(runInfoTable, RunInfoEntry{"Command", cmd})
}

// Func records occurrence fire and expire transitions.
func (r *TraceRecorder) Func(ctx pacing.HookCtx) {
	switch ctx.Pos {
	case pacing.HookPosOccurrenceFired:
		o := ctx.Item.(pacing.Occurrence)
		r.recorder.InsertData(transitionTable, TransitionEntry{
			Time:         float64(o.Start),
			Kind:         "fire",
			OccurrenceID: o.ID,
			Level:        o.Event.Level,
		})
	case pacing.HookPosOccurrenceExpired:
		o := ctx.Item.(pacing.Occurrence)
		r.recorder.InsertData(transitionTable, TransitionEntry{
			Time:         float64(o.End),
			Kind:         "expire",
			OccurrenceID: o.ID,
			Level:        0,
		})
	}
}

// Flush forces all buffered transitions into the database.
func (r *TraceRecorder) Flush() {
	r.recorder.Flush()
}
