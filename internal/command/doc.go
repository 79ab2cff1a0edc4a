// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package command tokenizes a client command line into an ordered sequence
// of argument tokens (spec §4.5).
//
// Whitespace separates bare tokens; a double-quoted run is one token
// regardless of internal whitespace; a brace-balanced run is one opaque
// token so JSON envelopes (encrypted SEND payloads) pass through intact. A
// fast path recognizes `SEND <payload> TO <recipient>` when payload begins
// with `{` and ends with `}`, producing exactly four tokens even when the
// payload contains spaces.
package command
