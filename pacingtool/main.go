// Pacingtool inspects pacing protocols from the command line: it can trace
// the forcing signal a protocol produces over an interval, record the trace
// into a SQLite database, and expose a running pacing system for monitoring.
package main

import (
	"github.com/joho/godotenv"
	"github.com/sarchlab/pacing/pacingtool/cmd"
)

func main() {
	// A .env file can provide defaults such as PACING_MONITOR_PORT.
	_ = godotenv.Load()

	cmd.Execute()
}
