// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package cryptoenvelope implements the hybrid encryption scheme used for
// the authentication challenge and, by clients, for message payloads (spec
// §4.3).
//
// [Encrypt] chooses direct RSA-OAEP for payloads of at most [RSAMaxBytes]
// bytes and falls back to an AES-256-CFB envelope wrapped by RSA-OAEP for
// anything larger. [Decrypt] dispatches on the envelope's "method" field and
// returns the original plaintext for either branch. [Sign] and [Verify]
// implement the optional RSA-PSS message-integrity extension the spec
// mentions but does not mandate on the wire.
package cryptoenvelope
