// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cryptoenvelope

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"fmt"
)

const (
	// keyBits is the RSA modulus size used for every generated key pair
	// (spec §4.3, §6).
	keyBits = 2048

	// publicExponent is the fixed RSA public exponent (spec §4.3, §6).
	publicExponent = 65537
)

// GenerateKeyPair creates a new RSA-2048 key pair with public exponent
// 65537 and returns it serialized as PEM: the private key as PKCS#8, the
// public key as SPKI.
func GenerateKeyPair() (privatePEM, publicPEM []byte, err error) {
	key, err := rsa.GenerateKey(rand.Reader, keyBits)
	if err != nil {
		return nil, nil, fmt.Errorf("generating RSA key pair: %w", err)
	}
	// publicExponent is fixed by crypto/rsa.GenerateKey to 65537; asserted
	// here so a future stdlib change that alters the default cannot silently
	// drift from the protocol constant.
	if key.PublicKey.E != publicExponent {
		return nil, nil, fmt.Errorf("unexpected RSA public exponent %d", key.PublicKey.E)
	}

	privBytes, err := x509.MarshalPKCS8PrivateKey(key)
	if err != nil {
		return nil, nil, fmt.Errorf("marshaling private key: %w", err)
	}
	privatePEM = pem.EncodeToMemory(&pem.Block{Type: "PRIVATE KEY", Bytes: privBytes})

	pubBytes, err := x509.MarshalPKIXPublicKey(&key.PublicKey)
	if err != nil {
		return nil, nil, fmt.Errorf("marshaling public key: %w", err)
	}
	publicPEM = pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: pubBytes})

	return privatePEM, publicPEM, nil
}

// ParsePublicKey decodes a PEM-encoded SubjectPublicKeyInfo block and
// returns the contained RSA public key. This is also the minimal validation
// the authenticator performs on a client-supplied public key during
// registration (spec §4.6, step 4).
func ParsePublicKey(pemBytes []byte) (*rsa.PublicKey, error) {
	block, _ := pem.Decode(pemBytes)
	if block == nil {
		return nil, fmt.Errorf("%w: no PEM block found", ErrBadEnvelope)
	}

	pub, err := x509.ParsePKIXPublicKey(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadEnvelope, err)
	}

	rsaPub, ok := pub.(*rsa.PublicKey)
	if !ok {
		return nil, fmt.Errorf("%w: not an RSA public key", ErrBadEnvelope)
	}

	return rsaPub, nil
}

// ParsePrivateKey decodes a PEM-encoded PKCS#8 block and returns the
// contained RSA private key.
func ParsePrivateKey(pemBytes []byte) (*rsa.PrivateKey, error) {
	block, _ := pem.Decode(pemBytes)
	if block == nil {
		return nil, fmt.Errorf("%w: no PEM block found", ErrBadEnvelope)
	}

	key, err := x509.ParsePKCS8PrivateKey(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadEnvelope, err)
	}

	rsaKey, ok := key.(*rsa.PrivateKey)
	if !ok {
		return nil, fmt.Errorf("%w: not an RSA private key", ErrBadEnvelope)
	}

	return rsaKey, nil
}
