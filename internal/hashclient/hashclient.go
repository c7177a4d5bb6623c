// Package hashclient is the trivial client transport helper this toolchain
// classifies as an external collaborator: it only knows how to construct
// the wire frames internal/hashserver understands, with no retry or
// backoff logic, mirroring the original's thin client crate.
package hashclient

import (
	"encoding/binary"
	"io"
	"net"

	"github.com/hashassin/hashassin/internal/herrors"
)

const (
	tagUpload = "upload"
	tagCrack  = "crack\x00"
)

// Upload connects to addr and uploads table under name.
func Upload(addr, name string, table []byte) error {
	if len(name) > 255 {
		return herrors.New(herrors.InvalidArgument, "table name longer than 255 bytes")
	}

	conn, err := net.Dial("tcp", addr)
	if err != nil {
		return herrors.Wrap(herrors.IO, err, "dialing %s", addr)
	}
	defer conn.Close()

	buf := make([]byte, 0, len(tagUpload)+2+len(name)+8+len(table))
	buf = append(buf, tagUpload...)
	buf = append(buf, 1) // version
	buf = append(buf, byte(len(name)))
	buf = append(buf, name...)
	buf = appendU64(buf, uint64(len(table)))
	buf = append(buf, table...)

	_, err = conn.Write(buf)
	if err != nil {
		return herrors.Wrap(herrors.IO, err, "writing upload frame")
	}
	return nil
}

// Crack connects to addr, submits a hash bundle to crack, and returns the
// server's raw text reply.
func Crack(addr string, bundle []byte) ([]byte, error) {
	conn, err := net.Dial("tcp", addr)
	if err != nil {
		return nil, herrors.Wrap(herrors.IO, err, "dialing %s", addr)
	}
	defer conn.Close()

	buf := make([]byte, 0, len(tagCrack)+1+8+len(bundle))
	buf = append(buf, tagCrack...)
	buf = append(buf, 1) // version
	buf = appendU64(buf, uint64(len(bundle)))
	buf = append(buf, bundle...)

	if _, err := conn.Write(buf); err != nil {
		return nil, herrors.Wrap(herrors.IO, err, "writing crack frame")
	}

	reply, err := io.ReadAll(conn)
	if err != nil {
		return nil, herrors.Wrap(herrors.IO, err, "reading crack reply")
	}
	return reply, nil
}

func appendU64(buf []byte, v uint64) []byte {
	var size [8]byte
	binary.BigEndian.PutUint64(size[:], v)
	return append(buf, size[:]...)
}
