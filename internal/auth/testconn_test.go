// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package auth

import (
	"bufio"
	"bytes"
	"encoding/json"
	"io"
	"time"

	"github.com/nsheremet/securetext/models"
)

// fakeTimeoutError satisfies net.Error with Timeout()==true, standing in for
// the deadline-exceeded error a real net.Conn would return.
type fakeTimeoutError struct{}

func (fakeTimeoutError) Error() string   { return "i/o timeout" }
func (fakeTimeoutError) Timeout() bool   { return true }
func (fakeTimeoutError) Temporary() bool { return true }

// timeoutMarker, when present in fakeConn.inputs, causes the corresponding
// read to fail with fakeTimeoutError instead of returning data.
const timeoutMarker = "\x00TIMEOUT\x00"

// dynamicMarker, when present in fakeConn.inputs, is replaced at read time
// by calling dynamicFn with the connection itself — used by tests that must
// compute a challenge response from whatever the server already sent.
const dynamicMarker = "\x00DYNAMIC\x00"

// fakeConn is an in-memory [Conn] test double. Each entry in inputs is
// returned whole by one call to Read, mirroring how [codec.ReadCommand]
// consumes one chunk per logical client message. Every frame written
// through Write is decoded and appended to sent for assertion.
type fakeConn struct {
	inputs    []string
	idx       int
	dynamicFn func(*fakeConn) string

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
	if s == dynamicMarker {
		s = c.dynamicFn(c)
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

// last returns the most recently sent envelope, or the zero value if none.
func (c *fakeConn) last() models.Envelope {
	if len(c.sent) == 0 {
		return models.Envelope{}
	}
	return c.sent[len(c.sent)-1]
}
