package hashclient

import (
	"strings"
	"testing"

	"github.com/hashassin/hashassin/internal/herrors"
)

func TestUploadRejectsOverlongName(t *testing.T) {
	err := Upload("127.0.0.1:1", strings.Repeat("x", 256), []byte("table"))
	if !herrors.Is(err, herrors.InvalidArgument) {
		t.Fatalf("Upload with a 256-byte name = %v, want InvalidArgument", err)
	}
}

func TestUploadDialFailure(t *testing.T) {
	// Port 0 never accepts connections; Dial must fail, not hang.
	err := Upload("127.0.0.1:0", "t1", []byte("table"))
	if !herrors.Is(err, herrors.IO) {
		t.Fatalf("Upload to an unreachable address = %v, want IO", err)
	}
}

func TestCrackDialFailure(t *testing.T) {
	_, err := Crack("127.0.0.1:0", []byte("bundle"))
	if !herrors.Is(err, herrors.IO) {
		t.Fatalf("Crack to an unreachable address = %v, want IO", err)
	}
}
