// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package auth

import "errors"

// Sentinel errors returned by [Authenticator.Authenticate]. Callers use
// [errors.Is] to decide whether the connection should simply be closed
// or logged as unexpected. Most of these follow a terminal frame the
// authenticator already sent; ErrConnClosed, and ErrTimeout from the
// mode-selection and registration reads, are returned without one.
var (
	// ErrDuplicate is returned when registration names a username that
	// already exists. The authenticator has already sent NO_WRITE_BACK; the
	// caller closes the socket (spec §4.6 step 2, §7 "Duplicate").
	ErrDuplicate = errors.New("auth: username already registered")

	// ErrInvalidPublicKey is returned when the PEM submitted during
	// registration does not parse as an SPKI public key.
	ErrInvalidPublicKey = errors.New("auth: public key does not parse as SPKI")

	// ErrAuthFailed is returned after the shared attempt counter is
	// exhausted. The authenticator has already sent
	// NO_WRITE_BACK "3 Failed Attempts" followed by EXIT (spec §7
	// "AuthFailed").
	ErrAuthFailed = errors.New("auth: exceeded maximum login attempts")

	// ErrProtocolViolation is returned when the client answers the mode
	// prompt with something other than a recognized mode. During login, a
	// reply other than GET_SALT is a rejected attempt, not this error.
	ErrProtocolViolation = errors.New("auth: unexpected client input")

	// ErrTimeout is returned when a read exceeds the idle bound mid
	// authentication. Per spec §5 this counts as an attempt.
	ErrTimeout = errors.New("auth: idle read timeout")

	// ErrConnClosed is returned when the peer closes the connection or a
	// read otherwise comes back short, outside of the timeout path.
	ErrConnClosed = errors.New("auth: connection closed")
)

// maxAttempts is the shared three-attempt counter spec §4.6 describes.
const maxAttempts = 3
