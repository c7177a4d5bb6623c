package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/hashassin/hashassin/internal/cracker"
)

var (
	crackTableIn string
	crackHashes  string
	crackOut     string
	crackThreads int
)

var crackCmd = &cobra.Command{
	Use:   "crack",
	Short: "crack a hash bundle against a rainbow table",
	RunE: func(cmd *cobra.Command, args []string) error {
		tableBytes, err := os.ReadFile(crackTableIn)
		if err != nil {
			return err
		}
		bundleBytes, err := os.ReadFile(crackHashes)
		if err != nil {
			return err
		}

		report, err := cracker.Crack(tableBytes, bundleBytes, nil, false)
		if err != nil {
			return err
		}

		return writeLines(crackOut, report.Lines())
	},
}

func init() {
	crackCmd.Flags().StringVar(&crackTableIn, "in-file", "", "rainbow table file (required)")
	crackCmd.Flags().StringVar(&crackHashes, "hashes", "", "hash bundle file (required)")
	crackCmd.Flags().StringVar(&crackOut, "out-file", "", "output file (default stdout)")
	crackCmd.Flags().IntVar(&crackThreads, "threads", 1, "worker thread count (reserved)")
	_ = crackCmd.MarkFlagRequired("in-file")
	_ = crackCmd.MarkFlagRequired("hashes")
	RootCmd.AddCommand(crackCmd)
}
