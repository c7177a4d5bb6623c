package hashkit

import (
	"crypto/md5"
	"testing"
)

func TestDigestLength(t *testing.T) {
	for _, tc := range []struct {
		algo string
		want int
		ok   bool
	}{
		{"md5", 16, true},
		{"sha256", 32, true},
		{"sha3_512", 64, true},
		{"scrypt", 32, true},
		{"bogus", 0, false},
	} {
		got, ok := DigestLength(tc.algo)
		if ok != tc.ok || got != tc.want {
			t.Errorf("DigestLength(%q) = (%d, %v), want (%d, %v)", tc.algo, got, ok, tc.want, tc.ok)
		}
	}
}

func TestHashMD5(t *testing.T) {
	want := md5.Sum([]byte("abcd"))
	got, err := Hash("md5", []byte("abcd"))
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}
	if string(got) != string(want[:]) {
		t.Fatalf("Hash(md5, abcd) = %x, want %x", got, want)
	}
}

func TestHashUnsupported(t *testing.T) {
	if _, err := Hash("rot13", []byte("abcd")); err == nil {
		t.Fatal("expected an error for an unsupported algorithm")
	}
}

func TestHashDeterministic(t *testing.T) {
	for _, algo := range []string{"md5", "sha256", "sha3_512", "scrypt"} {
		a, err := Hash(algo, []byte("abcd"))
		if err != nil {
			t.Fatalf("Hash(%s): %v", algo, err)
		}
		b, err := Hash(algo, []byte("abcd"))
		if err != nil {
			t.Fatalf("Hash(%s): %v", algo, err)
		}
		if string(a) != string(b) {
			t.Errorf("Hash(%s) is not deterministic", algo)
		}
		n, _ := DigestLength(algo)
		if len(a) != n {
			t.Errorf("Hash(%s) produced %d bytes, want %d", algo, len(a), n)
		}
	}
}
