package rainbow

import (
	"encoding/binary"

	"github.com/hashassin/hashassin/internal/hashkit"
	"github.com/hashassin/hashassin/internal/herrors"
)

// magic is the fixed 12-byte header every table file starts with.
var magic = []byte("rainbowtable")

// fixedHeaderTail is the size, in bytes, of everything between the
// algorithm name and the first chain: password_length(1) + charset_size(16)
// + num_links(16) + ascii_offset(1).
const fixedHeaderTail = 1 + 16 + 16 + 1

// Encode renders t in the wire format:
//
//	12×u8 "rainbowtable"
//	u8    version
//	u8    algo_len (n)
//	n×u8  algorithm
//	u8    password_length
//	u128  charset_size  (95)
//	u128  num_links
//	u8    ascii_offset  (32)
//	(L bytes start, L bytes end) × C
func Encode(t Table) []byte {
	algo := []byte(hashkit.Normalize(t.Algorithm))

	out := make([]byte, 0, len(magic)+2+len(algo)+fixedHeaderTail+len(t.Chains)*t.PasswordLength*2)
	out = append(out, magic...)
	out = append(out, Version)
	out = append(out, byte(len(algo)))
	out = append(out, algo...)
	out = append(out, byte(t.PasswordLength))
	out = append(out, u128(CharsetSize)...)
	out = append(out, u128(uint64(t.NumLinks))...)
	out = append(out, AsciiOffset)

	for _, c := range t.Chains {
		out = append(out, c.Start...)
		out = append(out, c.End...)
	}
	return out
}

// Decode parses the rainbow-table wire format.
func Decode(data []byte) (Table, error) {
	if len(data) < len(magic) {
		return Table{}, herrors.New(herrors.BadMagic, "table shorter than magic header")
	}
	for i, b := range magic {
		if data[i] != b {
			return Table{}, herrors.New(herrors.BadMagic, "missing %q magic header", magic)
		}
	}

	pos := len(magic)
	if len(data) < pos+2 {
		return Table{}, herrors.New(herrors.MalformedHeader, "table truncated before algorithm length")
	}

	pos++ // version: tables have only ever had one format, not validated on decode
	algoLen := int(data[pos])
	pos++

	if len(data) < pos+algoLen+fixedHeaderTail {
		return Table{}, herrors.New(herrors.MalformedHeader, "table truncated before fixed header")
	}

	algo := hashkit.Normalize(string(data[pos : pos+algoLen]))
	pos += algoLen

	if _, ok := hashkit.DigestLength(algo); !ok {
		return Table{}, herrors.New(herrors.UnsupportedAlgorithm, "unsupported algorithm %q", algo)
	}

	pwdLen := int(data[pos])
	pos++

	_ = binary.BigEndian.Uint64(data[pos : pos+8]) // charset_size high bits, informational
	pos += 16
	numLinks := u128Decode(data[pos : pos+16])
	pos += 16
	pos++ // ascii_offset, informational

	body := data[pos:]
	chainLen := pwdLen * 2
	if chainLen == 0 || len(body)%chainLen != 0 {
		return Table{}, herrors.New(herrors.TruncatedChains, "chain body is not a multiple of 2*password_length")
	}

	count := len(body) / chainLen
	chains := make([]Chain, 0, count)
	for i := 0; i < count; i++ {
		start := i * chainLen
		chains = append(chains, Chain{
			Start: body[start : start+pwdLen],
			End:   body[start+pwdLen : start+chainLen],
		})
	}

	return Table{
		Algorithm:      algo,
		PasswordLength: pwdLen,
		NumLinks:       int(numLinks),
		Chains:         chains,
	}, nil
}

func u128(v uint64) []byte {
	out := make([]byte, 16)
	binary.BigEndian.PutUint64(out[8:], v)
	return out
}

func u128Decode(b []byte) uint64 {
	return binary.BigEndian.Uint64(b[8:16])
}
