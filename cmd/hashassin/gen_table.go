package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hashassin/hashassin/internal/rainbow"
)

var (
	genTableIn        string
	genTableOut       string
	genTableAlgorithm string
	genTableNumLinks  int
	genTableThreads   int
)

var genTableCmd = &cobra.Command{
	Use:   "gen-rainbow-table",
	Short: "build a rainbow table from a file of seed plaintexts",
	RunE: func(cmd *cobra.Command, args []string) error {
		lines, err := readLines(genTableIn)
		if err != nil {
			return err
		}
		if len(lines) == 0 {
			return fmt.Errorf("no seeds found in %s", genTableIn)
		}

		pwdLen := len(lines[0])
		seeds := make([][]byte, 0, len(lines))
		for _, l := range lines {
			if len(l) != pwdLen {
				return fmt.Errorf("input file contains passwords of varying lengths")
			}
			seeds = append(seeds, []byte(l))
		}

		chains, err := rainbow.BuildChains(seeds, genTableAlgorithm, genTableNumLinks, genTableThreads)
		if err != nil {
			return err
		}

		table := rainbow.Table{
			Algorithm:      genTableAlgorithm,
			PasswordLength: pwdLen,
			NumLinks:       genTableNumLinks,
			Chains:         chains,
		}
		return os.WriteFile(genTableOut, rainbow.Encode(table), 0o644)
	},
}

func init() {
	genTableCmd.Flags().StringVar(&genTableIn, "in-file", "", "seed password file (required)")
	genTableCmd.Flags().StringVar(&genTableOut, "out-file", "", "output table file (required)")
	genTableCmd.Flags().StringVar(&genTableAlgorithm, "algorithm", "md5", "hash algorithm")
	genTableCmd.Flags().IntVar(&genTableNumLinks, "num-links", 5, "chain link count")
	genTableCmd.Flags().IntVar(&genTableThreads, "threads", 1, "worker thread count")
	_ = genTableCmd.MarkFlagRequired("in-file")
	_ = genTableCmd.MarkFlagRequired("out-file")
	RootCmd.AddCommand(genTableCmd)
}
