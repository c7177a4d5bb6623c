// Package hashserver implements the TCP service:
// a single accept loop, one goroutine per connection, dispatching on a
// 6-byte command tag to either a table upload or a crack request. Crack
// requests run entirely against in-memory byte buffers — no temp files —
// fixing the concurrency bug a naive implementation has from sharing
// hard-coded paths (temp_table.rainbow, temp_hashes.bin, cracked.txt)
// across simultaneous handlers.
package hashserver

import (
	"context"
	"encoding/binary"
	"fmt"
	"io"
	"net"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/hashassin/hashassin/internal/cracker"
	"github.com/hashassin/hashassin/internal/crackcache"
	"github.com/hashassin/hashassin/internal/dcontext"
	"github.com/hashassin/hashassin/internal/herrors"
	"github.com/hashassin/hashassin/internal/tableregistry"
)

// Command tags, exact wire bytes expected on the socket.
const (
	tagUpload = "upload"
	tagCrack  = "crack\x00"
	tagLen    = 6
)

// noMatchesReply is written back verbatim when every registered table fails
// to crack a single hash in a request.
const noMatchesReply = "No passwords cracked\n"

// defaultReadTimeout is the per-connection deadline used when
// Server.ReadTimeout is zero.
const defaultReadTimeout = 60 * time.Second

// Server accepts connections and dispatches upload/crack frames against a
// shared TableRegistry and optional CrackCache.
type Server struct {
	Registry *tableregistry.Registry
	Cache    *crackcache.Cache

	// ReadTimeout is a single deadline, set when a connection is accepted,
	// covering every read and write on that connection; zero means
	// defaultReadTimeout.
	ReadTimeout time.Duration

	// ComputeThreads bounds the number of crack requests that may run
	// concurrently; zero means unbounded (implementations
	// SHOULD bound it").
	ComputeThreads int

	sem chan struct{}
}

// New builds a Server over the given registry and optional cache.
func New(registry *tableregistry.Registry, cache *crackcache.Cache, computeThreads int) *Server {
	s := &Server{
		Registry:       registry,
		Cache:          cache,
		ComputeThreads: computeThreads,
	}
	if computeThreads > 0 {
		s.sem = make(chan struct{}, computeThreads)
	}
	return s
}

// ListenAndServe binds addr and runs the accept loop until ctx is canceled
// or the listener errors.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	lc := net.ListenConfig{}
	ln, err := lc.Listen(ctx, "tcp", addr)
	if err != nil {
		return herrors.Wrap(herrors.IO, err, "listening on %s", addr)
	}
	defer ln.Close()

	log := dcontext.GetLogger(ctx)
	log.WithField("addr", addr).Info("hashassin server listening")

	go func() {
		<-ctx.Done()
		ln.Close()
	}()

	for {
		conn, err := ln.Accept()
		if err != nil {
			select {
			case <-ctx.Done():
				return nil
			default:
				return herrors.Wrap(herrors.IO, err, "accept failed")
			}
		}
		go s.handleConn(ctx, conn)
	}
}

func (s *Server) handleConn(ctx context.Context, conn net.Conn) {
	defer conn.Close()

	remote := conn.RemoteAddr().String()
	log := dcontext.GetLogger(ctx).WithField("remote_addr", remote)

	timeout := s.ReadTimeout
	if timeout <= 0 {
		timeout = defaultReadTimeout
	}
	_ = conn.SetDeadline(time.Now().Add(timeout))

	tag := make([]byte, tagLen)
	if _, err := io.ReadFull(conn, tag); err != nil {
		log.WithError(err).Debug("failed to read command tag")
		return
	}

	switch string(tag) {
	case tagUpload:
		if err := s.handleUpload(conn, log); err != nil {
			log.WithError(err).Warn("upload failed")
		}
	case tagCrack:
		s.acquire()
		defer s.release()
		if err := s.handleCrack(conn, log); err != nil {
			log.WithError(err).Warn("crack failed")
		}
	default:
		log.WithField("tag", fmt.Sprintf("%q", tag)).Warn("unknown command tag")
	}
}

func (s *Server) acquire() {
	if s.sem != nil {
		s.sem <- struct{}{}
	}
}

func (s *Server) release() {
	if s.sem != nil {
		<-s.sem
	}
}

// handleUpload reads: u8 version, u8 name_len, name_len×u8 name,
// u64 payload_len, payload_len×u8 table_bytes. No reply is sent.
func (s *Server) handleUpload(conn io.Reader, log *logrus.Entry) error {
	header := make([]byte, 2)
	if _, err := io.ReadFull(conn, header); err != nil {
		return herrors.Wrap(herrors.IO, err, "reading upload header")
	}
	nameLen := int(header[1])

	name := make([]byte, nameLen)
	if _, err := io.ReadFull(conn, name); err != nil {
		return herrors.Wrap(herrors.IO, err, "reading upload name")
	}

	size := make([]byte, 8)
	if _, err := io.ReadFull(conn, size); err != nil {
		return herrors.Wrap(herrors.IO, err, "reading upload payload length")
	}
	payloadLen := binary.BigEndian.Uint64(size)

	payload := make([]byte, payloadLen)
	if _, err := io.ReadFull(conn, payload); err != nil {
		return herrors.Wrap(herrors.IO, err, "reading upload payload")
	}

	s.Registry.Put(string(name), payload)
	log.WithField("table", string(name)).WithField("bytes", payloadLen).Info("stored rainbow table")
	return nil
}

// handleCrack reads: u8 version, u64 payload_len, payload_len×u8
// hash_bundle_bytes. It snapshots the registry and runs the Cracker against
// each table in registration order, stopping and replying with the first
// table that cracks at least one hash. A table that comes back with
// herrors.NoMatches just falls through to the next one; any other error
// (algorithm mismatch, a malformed table, ...) aborts the whole request and
// closes the connection without writing a reply. If every table falls
// through with NoMatches, it writes the literal "No passwords cracked\n".
func (s *Server) handleCrack(conn io.ReadWriter, log *logrus.Entry) error {
	header := make([]byte, 1)
	if _, err := io.ReadFull(conn, header); err != nil {
		return herrors.Wrap(herrors.IO, err, "reading crack version")
	}

	size := make([]byte, 8)
	if _, err := io.ReadFull(conn, size); err != nil {
		return herrors.Wrap(herrors.IO, err, "reading crack payload length")
	}
	payloadLen := binary.BigEndian.Uint64(size)

	bundle := make([]byte, payloadLen)
	if _, err := io.ReadFull(conn, bundle); err != nil {
		return herrors.Wrap(herrors.IO, err, "reading crack bundle")
	}

	tables := s.Registry.ListValues()
	log.WithField("tables", len(tables)).WithField("bytes", payloadLen).Info("received crack request")

	for _, table := range tables {
		report, err := cracker.Crack(table, bundle, s.Cache, true)
		if err != nil {
			if herrors.Is(err, herrors.NoMatches) {
				continue
			}
			return err
		}

		reply := ""
		for _, line := range report.Lines() {
			reply += line + "\n"
		}
		_, err = io.WriteString(conn, reply)
		return err
	}

	_, err := io.WriteString(conn, noMatchesReply)
	return err
}
