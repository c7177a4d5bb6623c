// Package passwordset encodes and decodes the hashed-password bundle format:
//
//	u8  version
//	u8  algo_len (n)
//	n×u8 algorithm
//	u8  password_length
//	(digest bytes) × K, K inferred from remaining file length
package passwordset

import (
	"github.com/sirupsen/logrus"

	"github.com/hashassin/hashassin/internal/hashkit"
	"github.com/hashassin/hashassin/internal/herrors"
)

// Version is the only bundle format version this toolchain produces or
// accepts.
const Version = 1

// Bundle is an immutable hashed-password set: one algorithm, one password
// length, many digests.
type Bundle struct {
	Version        uint8
	Algorithm      string
	PasswordLength uint8
	Digests        [][]byte
}

// Encode renders b in the wire format described above.
func Encode(b Bundle) []byte {
	algo := []byte(hashkit.Normalize(b.Algorithm))

	out := make([]byte, 0, 2+len(algo)+1+len(b.Digests)*digestLenOrZero(b.Algorithm))
	out = append(out, b.Version)
	out = append(out, byte(len(algo)))
	out = append(out, algo...)
	out = append(out, b.PasswordLength)
	for _, d := range b.Digests {
		out = append(out, d...)
	}
	return out
}

func digestLenOrZero(algo string) int {
	n, ok := hashkit.DigestLength(hashkit.Normalize(algo))
	if !ok {
		return 0
	}
	return n
}

// Decode parses the bundle format. A trailing partial record (fewer than one
// full digest's worth of residual bytes) is not fatal: a warning is logged,
// the partial record is dropped, and every digest up to the last full
// record is still returned.
func Decode(data []byte) (Bundle, error) {
	if len(data) < 2 {
		return Bundle{}, herrors.New(herrors.MalformedHeader, "bundle shorter than fixed header")
	}

	version := data[0]
	algoLen := int(data[1])

	if len(data) < 2+algoLen+1 {
		return Bundle{}, herrors.New(herrors.MalformedHeader, "bundle truncated before password length")
	}

	algo := hashkit.Normalize(string(data[2 : 2+algoLen]))
	pwdLen := data[2+algoLen]

	digestLen, ok := hashkit.DigestLength(algo)
	if !ok {
		return Bundle{}, herrors.New(herrors.UnsupportedAlgorithm, "unsupported algorithm %q", algo)
	}

	body := data[2+algoLen+1:]
	if len(body) < digestLen {
		return Bundle{}, herrors.New(herrors.TruncatedBody, "bundle has no complete digest record")
	}

	count := len(body) / digestLen
	if rem := len(body) % digestLen; rem != 0 {
		logrus.WithFields(logrus.Fields{
			"algorithm":     algo,
			"trailing_bytes": rem,
		}).Warn("hash bundle has a trailing partial digest record; dropping it")
	}

	digests := make([][]byte, 0, count)
	for i := 0; i < count; i++ {
		start := i * digestLen
		digests = append(digests, body[start:start+digestLen])
	}

	return Bundle{
		Version:        version,
		Algorithm:      algo,
		PasswordLength: pwdLen,
		Digests:        digests,
	}, nil
}
