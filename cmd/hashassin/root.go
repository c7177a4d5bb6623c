// Package main implements the hashassin command-line front end. Per
// this is a thin external collaborator around the core engine: it
// only parses arguments and wires stdout/file sinks to the public
// operations in internal/hashkit, internal/rainbow, internal/cracker and
// internal/hashserver.
package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var verbose bool

// RootCmd is the hashassin binary's top-level command.
var RootCmd = &cobra.Command{
	Use:   "hashassin",
	Short: "hashassin generates, builds, and cracks rainbow tables",
	Long:  "hashassin generates, builds, and cracks rainbow tables.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			logrus.SetLevel(logrus.DebugLevel)
		}
	},
}

func init() {
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

func main() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
