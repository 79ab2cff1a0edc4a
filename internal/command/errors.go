// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package command

import "errors"

var (
	// ErrInvalidCharacter is returned when a byte outside the legal
	// character set appears outside quotes and braces (spec §4.5).
	ErrInvalidCharacter = errors.New("command: invalid character")

	// ErrUnclosedQuote is returned when a command line ends with an open
	// double-quoted run.
	ErrUnclosedQuote = errors.New("command: unclosed quotation mark")

	// ErrUnclosedBrace is returned when a command line ends with an
	// unbalanced brace run.
	ErrUnclosedBrace = errors.New("command: unclosed brace")
)
