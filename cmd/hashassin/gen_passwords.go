package main

import (
	"bufio"
	"crypto/rand"
	"fmt"
	"math/big"
	"os"
	"sync"

	"github.com/spf13/cobra"

	"github.com/hashassin/hashassin/internal/reduction"
	"github.com/hashassin/hashassin/internal/workpool"
)

var (
	genPasswordsNum     int
	genPasswordsChars   int
	genPasswordsThreads int
	genPasswordsOut     string
)

var genPasswordsCmd = &cobra.Command{
	Use:   "gen-passwords",
	Short: "emit N random plaintexts of a fixed length",
	RunE: func(cmd *cobra.Command, args []string) error {
		if genPasswordsNum <= 0 {
			return fmt.Errorf("--num must be > 0")
		}
		if genPasswordsChars <= 0 {
			return fmt.Errorf("--chars must be > 0")
		}

		// Each of the `threads` workers gets its own share of the total
		// count (remainder distributed to the leading workers), and fills
		// a local slice before a single merge under one lock.
		counts := workpool.EvenSplit(genPasswordsNum, genPasswordsThreads)

		var (
			mu        sync.Mutex
			wg        sync.WaitGroup
			passwords []string
		)
		for _, count := range counts {
			wg.Add(1)
			go func(count int) {
				defer wg.Done()
				local := make([]string, 0, count)
				for i := 0; i < count; i++ {
					local = append(local, randomPassword(genPasswordsChars))
				}
				mu.Lock()
				passwords = append(passwords, local...)
				mu.Unlock()
			}(count)
		}
		wg.Wait()

		return writeLines(genPasswordsOut, passwords)
	},
}

func randomPassword(chars int) string {
	out := make([]byte, chars)
	for i := range out {
		idx, err := rand.Int(rand.Reader, big.NewInt(int64(len(reduction.Charset))))
		if err != nil {
			panic(err)
		}
		out[i] = reduction.Charset[idx.Int64()]
	}
	return string(out)
}

func writeLines(path string, lines []string) error {
	w := os.Stdout
	if path != "" {
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}

	buf := bufio.NewWriter(w)
	for _, line := range lines {
		if _, err := buf.WriteString(line + "\n"); err != nil {
			return err
		}
	}
	return buf.Flush()
}

func init() {
	genPasswordsCmd.Flags().IntVar(&genPasswordsNum, "num", 0, "number of passwords to generate (required)")
	genPasswordsCmd.Flags().IntVar(&genPasswordsChars, "chars", 4, "password length")
	genPasswordsCmd.Flags().IntVar(&genPasswordsThreads, "threads", 1, "worker thread count")
	genPasswordsCmd.Flags().StringVar(&genPasswordsOut, "out-file", "", "output file (default stdout)")
	RootCmd.AddCommand(genPasswordsCmd)
}
