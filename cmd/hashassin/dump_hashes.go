package main

import (
	"encoding/hex"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hashassin/hashassin/internal/passwordset"
)

var dumpHashesIn string

var dumpHashesCmd = &cobra.Command{
	Use:   "dump-hashes",
	Short: "print a hash bundle's header and digests",
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(dumpHashesIn)
		if err != nil {
			return err
		}
		bundle, err := passwordset.Decode(data)
		if err != nil {
			return err
		}

		fmt.Printf("VERSION: %d\n", bundle.Version)
		fmt.Printf("ALGORITHM: %s\n", bundle.Algorithm)
		fmt.Printf("PASSWORD LENGTH: %d\n", bundle.PasswordLength)

		for _, d := range bundle.Digests {
			if bundle.Algorithm == "scrypt" {
				// scrypt digests have no canonical hex identity; printed as
				// lossy UTF-8 (invalid sequences replaced with U+FFFD),
				// matching the reference tool's String::from_utf8_lossy.
				fmt.Println(strings.ToValidUTF8(string(d), "�"))
				continue
			}
			fmt.Println(hex.EncodeToString(d))
		}
		return nil
	},
}

func init() {
	dumpHashesCmd.Flags().StringVar(&dumpHashesIn, "in-file", "", "bundle file (required)")
	_ = dumpHashesCmd.MarkFlagRequired("in-file")
	RootCmd.AddCommand(dumpHashesCmd)
}
