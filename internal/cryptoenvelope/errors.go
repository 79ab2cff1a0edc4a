// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cryptoenvelope

import "errors"

var (
	// ErrBadEnvelope is returned for an unknown "method" value or malformed
	// base64 inside an envelope (spec §4.3).
	ErrBadEnvelope = errors.New("malformed or unrecognized crypto envelope")

	// ErrCryptoFailure is returned when OAEP decryption or key-unwrap fails
	// (spec §4.3, §7).
	ErrCryptoFailure = errors.New("decryption failed")
)
