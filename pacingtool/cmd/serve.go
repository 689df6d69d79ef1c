package cmd

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"

	"github.com/sarchlab/pacing/monitoring"
	"github.com/sarchlab/pacing/pacing"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run a pacing system in real time behind a monitoring server.",
	Long: `serve builds the same protocol as trace, then advances the ` +
		`pacing system in wall-clock time while exposing it through the ` +
		`monitoring web API.`,
	Run: func(cmd *cobra.Command, _ []string) {
		runServe(cmd)
	},
}

func init() {
	serveCmd.Flags().Float64("period", 1, "time between pulse starts")
	serveCmd.Flags().Float64("duration", 0.005, "width of each pulse")
	serveCmd.Flags().Float64("offset", 0, "start time of the first pulse")
	serveCmd.Flags().Float64("level", 1, "signal level during a pulse")
	serveCmd.Flags().Int("limit", 0,
		"number of pulses to deliver, 0 for unlimited")
	serveCmd.Flags().Float64("until", 60, "end of the served interval")
	serveCmd.Flags().Int("port", 0,
		"monitor port, defaults to PACING_MONITOR_PORT or a random port")
	serveCmd.Flags().Bool("open", false, "open the monitor in a browser")

	rootCmd.AddCommand(serveCmd)
}

func monitorPort(cmd *cobra.Command) int {
	port, _ := cmd.Flags().GetInt("port")
	if port != 0 {
		return port
	}

	if env := os.Getenv("PACING_MONITOR_PORT"); env != "" {
		p, err := strconv.Atoi(env)
		if err == nil {
			return p
		}
		fmt.Fprintf(os.Stderr,
			"Ignoring invalid PACING_MONITOR_PORT %q\n", env)
	}

	return 0
}

func runServe(cmd *cobra.Command) {
	until, _ := cmd.Flags().GetFloat64("until")
	open, _ := cmd.Flags().GetBool("open")

	system := buildSystem(cmd)

	monitor := monitoring.NewMonitor()
	if port := monitorPort(cmd); port != 0 {
		monitor.WithPortNumber(port)
	}
	if open {
		monitor.WithBrowser()
	}

	monitor.RegisterPacer("stimulus", system)
	monitor.StartServer()

	bar := monitor.CreateProgressBar("serving", uint64(until*1000))

	// One virtual second per wall-clock second, 100 updates per second.
	tick := time.NewTicker(10 * time.Millisecond)
	defer tick.Stop()

	for range tick.C {
		t := system.Time() + 0.01
		if t > pacing.VTimeInSec(until) {
			break
		}

		_, err := system.Advance(t)
		if err != nil {
			fmt.Fprintf(os.Stderr, "serve stopped: %v\n", err)
			atexit.Exit(1)
		}

		bar.IncrementFinished(10)
	}

	monitor.CompleteProgressBar(bar)
	atexit.Exit(0)
}
