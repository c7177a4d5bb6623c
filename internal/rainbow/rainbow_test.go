package rainbow

import (
	"bytes"
	"testing"

	"github.com/hashassin/hashassin/internal/herrors"
)

func TestCodecRoundTrip(t *testing.T) {
	want := Table{
		Algorithm:      "md5",
		PasswordLength: 4,
		NumLinks:       100,
		Chains: []Chain{
			{Start: []byte("aaaa"), End: []byte("bbbb")},
			{Start: []byte("cccc"), End: []byte("dddd")},
		},
	}

	got, err := Decode(Encode(want))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if got.Algorithm != want.Algorithm || got.PasswordLength != want.PasswordLength || got.NumLinks != want.NumLinks {
		t.Fatalf("header mismatch: got %+v, want %+v", got, want)
	}
	if len(got.Chains) != len(want.Chains) {
		t.Fatalf("chain count mismatch: got %d, want %d", len(got.Chains), len(want.Chains))
	}
	for i := range want.Chains {
		if !bytes.Equal(got.Chains[i].Start, want.Chains[i].Start) || !bytes.Equal(got.Chains[i].End, want.Chains[i].End) {
			t.Errorf("chain %d mismatch: got %+v, want %+v", i, got.Chains[i], want.Chains[i])
		}
	}
}

func TestDecodeBadMagic(t *testing.T) {
	_, err := Decode([]byte("not a rainbow table at all"))
	if !herrors.Is(err, herrors.BadMagic) {
		t.Fatalf("Decode with bad magic = %v, want BadMagic", err)
	}
}

func TestDecodeTruncatedChains(t *testing.T) {
	table := Encode(Table{
		Algorithm:      "md5",
		PasswordLength: 4,
		NumLinks:       10,
		Chains:         []Chain{{Start: []byte("aaaa"), End: []byte("bbbb")}},
	})
	_, err := Decode(table[:len(table)-1])
	if !herrors.Is(err, herrors.TruncatedChains) {
		t.Fatalf("Decode with a truncated chain body = %v, want TruncatedChains", err)
	}
}

func TestDecodeUnsupportedAlgorithm(t *testing.T) {
	table := Encode(Table{
		Algorithm:      "md5",
		PasswordLength: 4,
		NumLinks:       10,
		Chains:         []Chain{{Start: []byte("aaaa"), End: []byte("bbbb")}},
	})
	// Overwrite the algorithm name bytes ("md5" -> "xd5") in place.
	algoStart := len(magic) + 2
	table[algoStart] = 'x'

	_, err := Decode(table)
	if !herrors.Is(err, herrors.UnsupportedAlgorithm) {
		t.Fatalf("Decode with an unsupported algorithm = %v, want UnsupportedAlgorithm", err)
	}
}

func TestBuildChainsMatchesManualWalk(t *testing.T) {
	seeds := [][]byte{[]byte("aaaa"), []byte("bbbb"), []byte("cccc"), []byte("dddd"), []byte("eeee")}

	chains, err := BuildChains(seeds, "md5", 5, 3)
	if err != nil {
		t.Fatalf("BuildChains: %v", err)
	}
	if len(chains) != len(seeds) {
		t.Fatalf("BuildChains produced %d chains, want %d", len(chains), len(seeds))
	}

	byStart := make(map[string][]byte, len(chains))
	for _, c := range chains {
		byStart[string(c.Start)] = c.End
	}

	for _, seed := range seeds {
		want, err := walk(seed, "md5", 5)
		if err != nil {
			t.Fatalf("walk: %v", err)
		}
		got, ok := byStart[string(seed)]
		if !ok {
			t.Fatalf("BuildChains dropped seed %q", seed)
		}
		if !bytes.Equal(got, want) {
			t.Errorf("chain for %q ended at %q, want %q", seed, got, want)
		}
	}
}

func TestBuildChainsRejectsEmptySeeds(t *testing.T) {
	_, err := BuildChains(nil, "md5", 5, 1)
	if !herrors.Is(err, herrors.InvalidArgument) {
		t.Fatalf("BuildChains with no seeds = %v, want InvalidArgument", err)
	}
}

func TestBuildChainsRejectsUnsupportedAlgorithm(t *testing.T) {
	_, err := BuildChains([][]byte{[]byte("aaaa")}, "rot13", 5, 1)
	if !herrors.Is(err, herrors.UnsupportedAlgorithm) {
		t.Fatalf("BuildChains with unsupported algorithm = %v, want UnsupportedAlgorithm", err)
	}
}

func TestBuildChainsSingleVsMultiThreadAgree(t *testing.T) {
	seeds := make([][]byte, 0, 20)
	for i := 0; i < 20; i++ {
		seeds = append(seeds, []byte{byte('a' + i), byte('a' + i), byte('a' + i), byte('a' + i)})
	}

	single, err := BuildChains(seeds, "sha256", 8, 1)
	if err != nil {
		t.Fatalf("BuildChains(threads=1): %v", err)
	}
	multi, err := BuildChains(seeds, "sha256", 8, 7)
	if err != nil {
		t.Fatalf("BuildChains(threads=7): %v", err)
	}

	toMap := func(cs []Chain) map[string]string {
		m := make(map[string]string, len(cs))
		for _, c := range cs {
			m[string(c.Start)] = string(c.End)
		}
		return m
	}

	singleMap, multiMap := toMap(single), toMap(multi)
	if len(singleMap) != len(multiMap) {
		t.Fatalf("chain counts differ: single=%d multi=%d", len(singleMap), len(multiMap))
	}
	for start, end := range singleMap {
		if multiMap[start] != end {
			t.Errorf("chain for %q differs between thread counts: %q vs %q", start, end, multiMap[start])
		}
	}
}
