// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package supervisor

import (
	"bufio"
	"net"
)

// connWrapper adapts a raw net.Conn to the write-then-flush contract
// [auth.Conn] and [session.Conn] both require, buffering writes so
// [codec.WriteFrame] controls exactly when bytes hit the wire.
type connWrapper struct {
	net.Conn
	bw *bufio.Writer
}

func newConnWrapper(c net.Conn) *connWrapper {
	return &connWrapper{Conn: c, bw: bufio.NewWriter(c)}
}

// Write buffers p; call Flush to send it. Shadows the embedded net.Conn's
// Write so every outbound byte passes through the buffer.
func (w *connWrapper) Write(p []byte) (int, error) {
	return w.bw.Write(p)
}

// Flush sends any buffered bytes immediately.
func (w *connWrapper) Flush() error {
	return w.bw.Flush()
}

// RemoteAddr returns the peer address as a string, shadowing the embedded
// net.Conn method of the same name (which returns a net.Addr) to satisfy
// the logging-oriented signature auth.Conn and session.Conn both want.
func (w *connWrapper) RemoteAddr() string {
	return w.Conn.RemoteAddr().String()
}
