// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package codec

import (
	"encoding/json"
	"io"
	"strings"
	"time"

	"github.com/nsheremet/securetext/models"
)

const (
	// BufferSize is the maximum number of bytes read from a client in one
	// call to [ReadCommand] (spec §4.1).
	BufferSize = 2048

	// IdleTimeout bounds how long a read may block before it is treated as
	// a timeout by the caller (spec §5 "Cancellation & timeouts").
	IdleTimeout = 240 * time.Second

	// frameSettleDelay is the small cooperative yield after a flush that
	// keeps back-to-back frames from coalescing into a single read on a
	// cooperative-scheduling peer (spec §4.1).
	frameSettleDelay = 5 * time.Millisecond
)

// FrameWriter is the minimal contract [WriteFrame] needs from a connection's
// outbound side: write-then-flush, exactly once per frame.
type FrameWriter interface {
	io.Writer
	Flush() error
}

// WriteFrame encodes env as a single JSON envelope, writes it, flushes the
// underlying connection, and yields briefly so a cooperatively-scheduled
// peer observes this frame as a distinct read rather than coalesced with a
// frame written immediately afterward.
func WriteFrame(w FrameWriter, env models.Envelope) error {
	payload, err := json.Marshal(env)
	if err != nil {
		return err
	}

	if _, err := w.Write(payload); err != nil {
		return err
	}
	if err := w.Flush(); err != nil {
		return err
	}

	time.Sleep(frameSettleDelay)
	return nil
}

// Send is a convenience wrapper around [WriteFrame] for the common case of
// sending a bare (code, message) pair.
func Send(w FrameWriter, code models.Code, msg string) error {
	return WriteFrame(w, models.NewEnvelope(code, msg))
}

// ReadCommand reads one best-effort chunk of at most [BufferSize] bytes from
// r and returns it with surrounding whitespace stripped.
//
// Returns [ErrShortRead] if zero bytes were read (the peer closed the
// connection or sent an empty frame).
func ReadCommand(r io.Reader) (string, error) {
	buf := make([]byte, BufferSize)
	n, err := r.Read(buf)
	if n == 0 {
		if err != nil && err != io.EOF {
			return "", err
		}
		return "", ErrShortRead
	}

	return strings.TrimSpace(string(buf[:n])), nil
}

// DecodeFrame parses raw as a [models.Envelope]. It is used by tests and any
// client-role helper sharing this codec to verify server framing.
func DecodeFrame(raw []byte) (models.Envelope, error) {
	var env models.Envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return models.Envelope{}, ErrDecode
	}
	return env, nil
}
