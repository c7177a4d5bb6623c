// Package cracker implements the probe-and-verify rainbow-table inversion
// walk: for each target digest, try every
// possible chain position it could sit at, and reject false alarms by
// re-walking from the candidate chain's recorded start.
package cracker

import (
	"bytes"
	"encoding/hex"

	"github.com/hashassin/hashassin/internal/hashkit"
	"github.com/hashassin/hashassin/internal/herrors"
	"github.com/hashassin/hashassin/internal/passwordset"
	"github.com/hashassin/hashassin/internal/rainbow"
	"github.com/hashassin/hashassin/internal/reduction"
)

// NotFound is the sentinel plaintext emitted for a digest that could not be
// inverted. It is data, not an error: only the
// all-NOT-FOUND case to an error (NoMatches), not any individual line.
const NotFound = "NOT FOUND"

// Cache is the subset of internal/crackcache.Cache the Cracker depends on.
// A nil Cache is valid: crack still functions, just without memoization.
type Cache interface {
	Get(key string) (string, bool)
	Set(key, value string)
}

// Result is one cracked (or not) line, in input order.
type Result struct {
	HashHex   string
	Plaintext string
}

// Report is the full outcome of a Crack call.
type Report struct {
	Results []Result
	Cracked int
	Total   int
}

// Lines renders Report as "<hex>\t<plaintext-or-NOT-FOUND>" lines, in input
// order.
func (r Report) Lines() []string {
	lines := make([]string, 0, len(r.Results))
	for _, res := range r.Results {
		lines = append(lines, res.HashHex+"\t"+res.Plaintext)
	}
	return lines
}

// Crack decodes tableBytes and bundleBytes and attempts to invert every
// digest in the bundle against the table's chains, consulting and
// populating cache (which may be nil) by hash hex.
//
// requireMatch, when true, causes Crack to return herrors.NoMatches if zero
// digests were cracked — the behavior the server's table-fallback loop
// relies on. Offline callers pass false and simply receive
// the NOT FOUND lines.
func Crack(tableBytes, bundleBytes []byte, cache Cache, requireMatch bool) (Report, error) {
	table, err := rainbow.Decode(tableBytes)
	if err != nil {
		return Report{}, err
	}
	bundle, err := passwordset.Decode(bundleBytes)
	if err != nil {
		return Report{}, err
	}

	if bundle.Version != passwordset.Version {
		return Report{}, herrors.New(herrors.VersionMismatch, "bundle version %d != %d", bundle.Version, passwordset.Version)
	}
	if hashkit.Normalize(table.Algorithm) != hashkit.Normalize(bundle.Algorithm) {
		return Report{}, herrors.New(herrors.AlgorithmMismatch, "table uses %q, bundle uses %q", table.Algorithm, bundle.Algorithm)
	}

	index := buildIndex(table.Chains)

	report := Report{Total: len(bundle.Digests)}
	for _, digest := range bundle.Digests {
		hashHex := hex.EncodeToString(digest)

		if cache != nil {
			if plaintext, ok := cache.Get(hashHex); ok {
				report.Results = append(report.Results, Result{HashHex: hashHex, Plaintext: plaintext})
				report.Cracked++
				continue
			}
		}

		plaintext, found := invert(digest, table.Algorithm, int(bundle.PasswordLength), table.NumLinks, index)
		if found {
			report.Results = append(report.Results, Result{HashHex: hashHex, Plaintext: plaintext})
			report.Cracked++
			if cache != nil {
				cache.Set(hashHex, plaintext)
			}
			continue
		}

		report.Results = append(report.Results, Result{HashHex: hashHex, Plaintext: NotFound})
	}

	if requireMatch && report.Cracked == 0 {
		return report, herrors.New(herrors.NoMatches, "no passwords cracked")
	}
	return report, nil
}

// buildIndex maps chain endpoint -> start. On a duplicate endpoint the
// earlier chain (by input order) wins — a deliberate
// divergence from the original Rust implementation's last-write-wins
// HashMap::insert.
func buildIndex(chains []rainbow.Chain) map[string][]byte {
	index := make(map[string][]byte, len(chains))
	for _, c := range chains {
		key := string(c.End)
		if _, exists := index[key]; !exists {
			index[key] = c.Start
		}
	}
	return index
}

// invert tries every possible chain position for digest: position
// numLinks-i-1 from the tail, for i in [0, numLinks). For each candidate
// endpoint found in index, it re-walks from the recorded start and verifies
// the resulting digest actually equals the target at the expected step,
// rejecting false-alarm endpoint collisions.
func invert(digest []byte, algorithm string, pwdLen, numLinks int, index map[string][]byte) (string, bool) {
	for i := 0; i < numLinks; i++ {
		p := reduction.Reduce(digest, pwdLen, reduction.Charset)
		for step := 0; step < numLinks-i-1; step++ {
			h, err := hashkit.Hash(algorithm, p)
			if err != nil {
				return "", false
			}
			p = reduction.Reduce(h, pwdLen, reduction.Charset)
		}

		start, ok := index[string(p)]
		if !ok {
			continue
		}

		candidate := start
		for step := 0; step <= i; step++ {
			h, err := hashkit.Hash(algorithm, candidate)
			if err != nil {
				return "", false
			}
			if bytes.Equal(h, digest) {
				return string(candidate), true
			}
			candidate = reduction.Reduce(h, pwdLen, reduction.Charset)
		}
	}
	return "", false
}
