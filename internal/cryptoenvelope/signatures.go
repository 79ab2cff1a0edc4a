// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cryptoenvelope

import (
	"crypto"
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
)

// Sign produces a detached, base64-encoded RSA-PSS signature (MGF1-SHA256,
// maximum salt length) over message. This is the optional message-integrity
// extension mentioned in spec §4.3; nothing in the wire protocol requires
// callers to attach it.
func Sign(message []byte, privatePEM []byte) (string, error) {
	priv, err := ParsePrivateKey(privatePEM)
	if err != nil {
		return "", err
	}

	digest := sha256.Sum256(message)
	sig, err := rsa.SignPSS(rand.Reader, priv, crypto.SHA256, digest[:], &rsa.PSSOptions{
		SaltLength: rsa.PSSSaltLengthAuto,
		Hash:       crypto.SHA256,
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrCryptoFailure, err)
	}

	return base64.StdEncoding.EncodeToString(sig), nil
}

// Verify checks a base64-encoded RSA-PSS signature produced by [Sign]
// against message and publicPEM. Returns true only if the signature is
// valid; any parse or verification failure yields false with no error
// detail leaked to the caller beyond the boolean.
func Verify(message []byte, signatureB64 string, publicPEM []byte) bool {
	pub, err := ParsePublicKey(publicPEM)
	if err != nil {
		return false
	}

	sig, err := base64.StdEncoding.DecodeString(signatureB64)
	if err != nil {
		return false
	}

	digest := sha256.Sum256(message)
	err = rsa.VerifyPSS(pub, crypto.SHA256, digest[:], sig, &rsa.PSSOptions{
		SaltLength: rsa.PSSSaltLengthAuto,
		Hash:       crypto.SHA256,
	})
	return err == nil
}
