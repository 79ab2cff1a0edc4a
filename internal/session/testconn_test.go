// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import (
	"bufio"
	"bytes"
	"encoding/json"
	"io"
	"time"

	"github.com/nsheremet/securetext/models"
)

type fakeTimeoutError struct{}

func (fakeTimeoutError) Error() string   { return "i/o timeout" }
func (fakeTimeoutError) Timeout() bool   { return true }
func (fakeTimeoutError) Temporary() bool { return true }

const timeoutMarker = "\x00TIMEOUT\x00"

// fakeConn is an in-memory [Conn] test double. Each entry in inputs is
// returned whole by one call to Read, mirroring how [codec.ReadCommand]
// consumes one chunk per logical client message.
type fakeConn struct {
	inputs []string
	idx    int

	sent []models.Envelope
	buf  bytes.Buffer
	w    *bufio.Writer
}

func newFakeConn(inputs ...string) *fakeConn {
	c := &fakeConn{inputs: inputs}
	c.w = bufio.NewWriter(&c.buf)
	return c
}

func (c *fakeConn) Read(p []byte) (int, error) {
	if c.idx >= len(c.inputs) {
		return 0, io.EOF
	}
	s := c.inputs[c.idx]
	c.idx++
	if s == timeoutMarker {
		return 0, fakeTimeoutError{}
	}
	return copy(p, s), nil
}

func (c *fakeConn) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	if err != nil {
		return n, err
	}
	var env models.Envelope
	if jsonErr := json.Unmarshal(p, &env); jsonErr == nil {
		c.sent = append(c.sent, env)
	}
	return n, nil
}

func (c *fakeConn) Flush() error {
	return c.w.Flush()
}

func (c *fakeConn) RemoteAddr() string {
	return "127.0.0.1:0"
}

func (c *fakeConn) SetReadDeadline(time.Time) error {
	return nil
}

func (c *fakeConn) last() models.Envelope {
	if len(c.sent) == 0 {
		return models.Envelope{}
	}
	return c.sent[len(c.sent)-1]
}
