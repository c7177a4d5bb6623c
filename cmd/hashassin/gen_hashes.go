package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hashassin/hashassin/internal/hashkit"
	"github.com/hashassin/hashassin/internal/passwordset"
	"github.com/hashassin/hashassin/internal/workpool"
)

var (
	genHashesIn        string
	genHashesOut       string
	genHashesAlgorithm string
	genHashesThreads   int
)

var genHashesCmd = &cobra.Command{
	Use:   "gen-hashes",
	Short: "hash a file of equal-length plaintexts into a bundle",
	RunE: func(cmd *cobra.Command, args []string) error {
		passwords, err := readLines(genHashesIn)
		if err != nil {
			return err
		}
		if len(passwords) == 0 {
			return fmt.Errorf("no passwords found in %s", genHashesIn)
		}

		pwdLen := len(passwords[0])
		for _, p := range passwords {
			if len(p) != pwdLen {
				return fmt.Errorf("passwords must all have the same length")
			}
		}

		algo := hashkit.Normalize(genHashesAlgorithm)
		digests := workpool.Run(len(passwords), genHashesThreads, func(start, end int) [][]byte {
			local := make([][]byte, 0, end-start)
			for _, p := range passwords[start:end] {
				d, err := hashkit.Hash(algo, []byte(p))
				if err != nil {
					continue
				}
				local = append(local, d)
			}
			return local
		})

		bundle := passwordset.Bundle{
			Version:        passwordset.Version,
			Algorithm:      algo,
			PasswordLength: uint8(pwdLen),
			Digests:        digests,
		}
		return os.WriteFile(genHashesOut, passwordset.Encode(bundle), 0o644)
	},
}

func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	return lines, scanner.Err()
}

func init() {
	genHashesCmd.Flags().StringVar(&genHashesIn, "in-file", "", "input plaintext file (required)")
	genHashesCmd.Flags().StringVar(&genHashesOut, "out-file", "", "output bundle file (required)")
	genHashesCmd.Flags().StringVar(&genHashesAlgorithm, "algorithm", "", "hash algorithm (required)")
	genHashesCmd.Flags().IntVar(&genHashesThreads, "threads", 1, "worker thread count")
	_ = genHashesCmd.MarkFlagRequired("in-file")
	_ = genHashesCmd.MarkFlagRequired("out-file")
	_ = genHashesCmd.MarkFlagRequired("algorithm")
	RootCmd.AddCommand(genHashesCmd)
}
