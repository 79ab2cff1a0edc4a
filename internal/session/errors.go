// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import "errors"

var (
	// ErrAlreadyLoggedIn is returned by [Registry.Insert] when a live
	// session already exists for the given username (spec §4.7, §7
	// "RegistryConflict").
	ErrAlreadyLoggedIn = errors.New("session: user already logged in")

	// ErrTimeout is returned when a router read exceeds the idle bound.
	// The router replies ERROR and continues (spec §5).
	ErrTimeout = errors.New("session: idle read timeout")

	// ErrConnClosed is returned when the peer closes the connection or a
	// read otherwise comes back short.
	ErrConnClosed = errors.New("session: connection closed")
)
