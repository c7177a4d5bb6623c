package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hashassin/hashassin/internal/hashclient"
)

var (
	clientUploadServer string
	clientUploadIn     string
	clientUploadName   string

	clientCrackServer string
	clientCrackIn     string
	clientCrackOut    string
)

var clientUploadCmd = &cobra.Command{
	Use:   "client-upload",
	Short: "upload a rainbow table to a running hashassin server",
	RunE: func(cmd *cobra.Command, args []string) error {
		table, err := os.ReadFile(clientUploadIn)
		if err != nil {
			return err
		}
		if len(clientUploadName) > 255 {
			return fmt.Errorf("--name must be <= 255 bytes")
		}
		return hashclient.Upload(clientUploadServer, clientUploadName, table)
	},
}

var clientCrackCmd = &cobra.Command{
	Use:   "client-crack",
	Short: "submit a hash bundle to a running hashassin server",
	RunE: func(cmd *cobra.Command, args []string) error {
		bundle, err := os.ReadFile(clientCrackIn)
		if err != nil {
			return err
		}
		reply, err := hashclient.Crack(clientCrackServer, bundle)
		if err != nil {
			return err
		}

		w := os.Stdout
		if clientCrackOut != "" {
			f, err := os.Create(clientCrackOut)
			if err != nil {
				return err
			}
			defer f.Close()
			w = f
		}
		_, err = w.Write(reply)
		return err
	},
}

func init() {
	clientUploadCmd.Flags().StringVar(&clientUploadServer, "server", "", "server address, host:port (required)")
	clientUploadCmd.Flags().StringVar(&clientUploadIn, "in-file", "", "rainbow table file (required)")
	clientUploadCmd.Flags().StringVar(&clientUploadName, "name", "", "name to register the table under (required)")
	_ = clientUploadCmd.MarkFlagRequired("server")
	_ = clientUploadCmd.MarkFlagRequired("in-file")
	_ = clientUploadCmd.MarkFlagRequired("name")
	RootCmd.AddCommand(clientUploadCmd)

	clientCrackCmd.Flags().StringVar(&clientCrackServer, "server", "", "server address, host:port (required)")
	clientCrackCmd.Flags().StringVar(&clientCrackIn, "in-file", "", "hash bundle file (required)")
	clientCrackCmd.Flags().StringVar(&clientCrackOut, "out-file", "", "output file (default stdout)")
	_ = clientCrackCmd.MarkFlagRequired("server")
	_ = clientCrackCmd.MarkFlagRequired("in-file")
	RootCmd.AddCommand(clientCrackCmd)
}
