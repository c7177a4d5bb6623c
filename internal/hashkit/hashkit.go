// Package hashkit computes one-shot digests for the handful of algorithms
// the hashassin toolchain understands. Every function here is pure and safe
// for concurrent use — callers in internal/rainbow and internal/cracker hash
// from many goroutines without any external synchronization.
package hashkit

import (
	"crypto/md5"
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"github.com/opencontainers/go-digest"
	"golang.org/x/crypto/scrypt"
	"golang.org/x/crypto/sha3"

	"github.com/hashassin/hashassin/internal/herrors"
)

// scrypt cost parameters fixed by the table/bundle format: N=2^14, r=8, p=1,
// 32-byte derived key. Changing any of these would silently change the
// digests an existing table or bundle was built against.
const (
	scryptLogN = 14
	scryptR    = 8
	scryptP    = 1
	scryptLen  = 32
)

// DigestLength returns the fixed digest length, in bytes, produced by algo.
// algo must already be lowercase; callers normalize before calling.
func DigestLength(algo string) (int, bool) {
	switch algo {
	case "md5":
		return md5.Size, true
	case "sha256":
		return sha256.Size, true
	case "sha3_512":
		return 64, true
	case "scrypt":
		return scryptLen, true
	default:
		return 0, false
	}
}

// Normalize lowercases an algorithm name the way every encoder/decoder in
// this module expects it.
func Normalize(algo string) string {
	return strings.ToLower(algo)
}

// Hash computes the digest of plaintext under algo. algo is normalized by
// the caller's convention (lowercase); an unrecognized algorithm returns
// herrors.UnsupportedAlgorithm.
func Hash(algo string, plaintext []byte) ([]byte, error) {
	switch algo {
	case "md5":
		sum := md5.Sum(plaintext)
		return sum[:], nil
	case "sha256":
		// Delegate to go-digest rather than calling crypto/sha256
		// directly: it is a convenient digest identity type already in the
		// uses throughout its own blob-addressing code, and sha256 is the
		// one algorithm here whose canonical form it already covers.
		d := digest.SHA256.FromBytes(plaintext)
		raw, err := hex.DecodeString(d.Encoded())
		if err != nil {
			return nil, herrors.Wrap(herrors.Internal, err, "decoding go-digest sha256 output")
		}
		return raw, nil
	case "sha3_512":
		sum := sha3.Sum512(plaintext)
		return sum[:], nil
	case "scrypt":
		// The original design uses the plaintext as both password and salt.
		out, err := scrypt.Key(plaintext, plaintext, 1<<scryptLogN, scryptR, scryptP, scryptLen)
		if err != nil {
			return nil, herrors.Wrap(herrors.Internal, err, "scrypt derivation failed")
		}
		return out, nil
	default:
		return nil, herrors.New(herrors.UnsupportedAlgorithm, "unsupported algorithm %q", algo)
	}
}
