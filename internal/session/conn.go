// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import (
	"errors"
	"io"
	"net"
	"time"

	"github.com/nsheremet/securetext/internal/codec"
)

// Conn is the minimal contract the router needs from an accepted socket:
// a reader for raw command chunks, a [codec.FrameWriter] for outbound
// envelopes, a read deadline for the idle bound (spec §5), and a label for
// log lines. It is structurally identical to auth.Conn; any connection
// that satisfies one satisfies both without an explicit declaration.
type Conn interface {
	io.Reader
	codec.FrameWriter
	RemoteAddr() string
	SetReadDeadline(t time.Time) error
}

// readLine arms the idle deadline, reads one command chunk, and classifies
// the result: a deadline expiry becomes [ErrTimeout], a short read becomes
// [ErrConnClosed], anything else propagates as-is.
func readLine(conn Conn, idleTimeout time.Duration) (string, error) {
	if err := conn.SetReadDeadline(time.Now().Add(idleTimeout)); err != nil {
		return "", err
	}

	line, err := codec.ReadCommand(conn)
	if err != nil {
		var netErr net.Error
		if errors.As(err, &netErr) && netErr.Timeout() {
			return "", ErrTimeout
		}
		if errors.Is(err, codec.ErrShortRead) {
			return "", ErrConnClosed
		}
		return "", err
	}
	return line, nil
}
