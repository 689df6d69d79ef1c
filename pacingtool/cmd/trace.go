package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/sarchlab/pacing/datarecording"
	"github.com/sarchlab/pacing/pacing"
)

var traceCmd = &cobra.Command{
	Use:   "trace",
	Short: "Trace the signal a block-train protocol produces.",
	Long: `trace builds a periodic block-train protocol from the flags, ` +
		`advances a pacing system through it up to --until, and writes one ` +
		`CSV row per sample and per discontinuity. With --record the trace ` +
		`additionally goes into a SQLite database.`,
	Run: func(cmd *cobra.Command, _ []string) {
		runTrace(cmd)
	},
}

func init() {
	traceCmd.Flags().Float64("period", 1, "time between pulse starts")
	traceCmd.Flags().Float64("duration", 0.005, "width of each pulse")
	traceCmd.Flags().Float64("offset", 0, "start time of the first pulse")
	traceCmd.Flags().Float64("level", 1, "signal level during a pulse")
	traceCmd.Flags().Int("limit", 0,
		"number of pulses to deliver, 0 for unlimited")
	traceCmd.Flags().Float64("until", 10, "end of the traced interval")
	traceCmd.Flags().Float64("step", 0.1, "sampling step")
	traceCmd.Flags().String("record", "",
		"record the trace into a SQLite database at this path")

	rootCmd.AddCommand(traceCmd)
}

func buildSystem(cmd *cobra.Command) *pacing.PacingSystem {
	period, _ := cmd.Flags().GetFloat64("period")
	duration, _ := cmd.Flags().GetFloat64("duration")
	offset, _ := cmd.Flags().GetFloat64("offset")
	level, _ := cmd.Flags().GetFloat64("level")
	limit, _ := cmd.Flags().GetInt("limit")

	protocol, err := pacing.BlockTrain(
		pacing.VTimeInSec(period),
		pacing.VTimeInSec(duration),
		pacing.VTimeInSec(offset),
		level,
		limit,
	)
	if err != nil {
		log.Fatalf("invalid protocol: %v", err)
	}

	system, err := pacing.NewPacingSystem(protocol)
	if err != nil {
		log.Fatalf("cannot schedule protocol: %v", err)
	}

	return system
}

func runTrace(cmd *cobra.Command) {
	until, _ := cmd.Flags().GetFloat64("until")
	step, _ := cmd.Flags().GetFloat64("step")
	recordPath, _ := cmd.Flags().GetString("record")

	system := buildSystem(cmd)

	var trace *datarecording.TraceRecorder
	if recordPath != "" {
		trace = datarecording.NewTraceRecorder(datarecording.New(recordPath))
		system.AcceptHook(trace)
	}

	fmt.Println("time,pace")

	err := driveLoop(system, pacing.VTimeInSec(until),
		pacing.VTimeInSec(step),
		func(t pacing.VTimeInSec, pace float64) {
			fmt.Printf("%.10f,%.10f\n", t, pace)
		})
	if err != nil {
		fmt.Fprintf(os.Stderr, "trace stopped: %v\n", err)
		os.Exit(1)
	}

	if trace != nil {
		trace.Flush()
	}
}

// driveLoop advances the system up to until, visiting every sampling step
// and every discontinuity in between. The system reports the time of the
// next signal change, and the loop never steps past it without advancing to
// it first.
func driveLoop(
	system *pacing.PacingSystem,
	until, step pacing.VTimeInSec,
	visit func(t pacing.VTimeInSec, pace float64),
) error {
	t := system.Time()
	visit(t, system.Pace())

	for t < until {
		target := t + step
		if next := system.NextTime(); next < target {
			target = next
		}
		if target > until {
			target = until
		}

		pace, err := system.Advance(target)
		if err != nil {
			return err
		}

		t = target
		visit(t, pace)
	}

	return nil
}
