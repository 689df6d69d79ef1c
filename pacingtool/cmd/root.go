// Package cmd provides the command-line interface for pacingtool.
package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use: "pacingtool",
	Short: "Pacingtool traces and monitors the forcing signal produced by " +
		"a pacing protocol.",
	Long: `Pacingtool builds a pacing protocol from command-line flags, ` +
		`drives a pacing system through it, and reports the signal as CSV, ` +
		`as a SQLite trace database, or through a live monitoring server.`,
}

// Execute adds all child commands to the root command and sets flags
// appropriately.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
