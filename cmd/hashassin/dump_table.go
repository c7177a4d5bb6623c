package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hashassin/hashassin/internal/rainbow"
)

var dumpTableIn string

var dumpTableCmd = &cobra.Command{
	Use:   "dump-rainbow-table",
	Short: "print a rainbow table's header and chains",
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(dumpTableIn)
		if err != nil {
			return err
		}
		table, err := rainbow.Decode(data)
		if err != nil {
			return err
		}

		fmt.Println("Hashassin Rainbow Table")
		fmt.Printf("ALGORITHM: %s\n", table.Algorithm)
		fmt.Printf("PASSWORD LENGTH: %d\n", table.PasswordLength)
		fmt.Printf("KEY SIZE: %d\n", rainbow.CharsetSize)
		fmt.Printf("NUM LINKS: %d\n", table.NumLinks)
		fmt.Printf("ASCII OFFSET: %d\n", rainbow.AsciiOffset)

		for _, c := range table.Chains {
			fmt.Printf("%s\t%s\n", c.Start, c.End)
		}
		return nil
	},
}

func init() {
	dumpTableCmd.Flags().StringVar(&dumpTableIn, "in-file", "", "table file (required)")
	_ = dumpTableCmd.MarkFlagRequired("in-file")
	RootCmd.AddCommand(dumpTableCmd)
}
