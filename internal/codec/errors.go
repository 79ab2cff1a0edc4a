// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package codec

import "errors"

var (
	// ErrShortRead is returned when a read yields zero bytes, indicating the
	// peer closed the connection. A read that hits its deadline returns the
	// underlying timeout error instead.
	ErrShortRead = errors.New("short read: no data received")

	// ErrDecode is returned when a server-side frame cannot be parsed back
	// into a [models.Envelope]. Used by tests and any client-role code that
	// shares this codec.
	ErrDecode = errors.New("frame could not be decoded")
)
