package main

import (
	"os"

	"github.com/spf13/cobra"
)

const version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:   "ownptr",
	Short: "Ownership-tracking handle demonstrations",
	Long: `ownptr walks through the library end to end: generic slice helpers,
exclusive-ownership handles, shared-ownership handles, and handle casting.`,
}

func init() {
	rootCmd.Version = version
	rootCmd.AddCommand(demoCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
