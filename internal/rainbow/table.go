// Package rainbow implements the rainbow-table binary format and the
// parallel chain-construction algorithm.
package rainbow

import "github.com/hashassin/hashassin/internal/hashkit"

// Version is the only table format version this toolchain produces.
const Version = 1

// AsciiOffset and CharsetSize are written into every table's header as
// informational fields. They are never consulted on
// decode — the fixed 32-126 charset (internal/reduction.Charset) is always
// used regardless of what a table claims.
const (
	AsciiOffset = 32
	CharsetSize = 95
)

// Chain is one rainbow-table chain: the seed plaintext and the plaintext
// produced after walking NumLinks applications of R∘H from it.
type Chain struct {
	Start []byte
	End   []byte
}

// Table is an immutable rainbow table.
type Table struct {
	Algorithm      string
	PasswordLength int
	NumLinks       int
	Chains         []Chain
}

// DigestLength returns the digest length implied by t.Algorithm.
func (t Table) DigestLength() (int, bool) {
	return hashkit.DigestLength(t.Algorithm)
}
