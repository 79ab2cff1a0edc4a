// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package kdf

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"io"

	"golang.org/x/crypto/scrypt"
)

const (
	// ProtocolVersion identifies the KDF parameter set below. Not persisted
	// today; reserved so a future parameter change can be distinguished from
	// this one without breaking existing records (spec §9).
	ProtocolVersion = 1

	// SaltSize is the length in bytes of a freshly generated salt.
	SaltSize = 16

	// HashSize is the length in bytes of the derived key.
	HashSize = 32

	scryptN = 16384
	scryptR = 8
	scryptP = 1
)

// GenerateSalt returns [SaltSize] bytes of cryptographic randomness suitable
// for use as a password salt.
func GenerateSalt() ([]byte, error) {
	salt := make([]byte, SaltSize)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, fmt.Errorf("generating salt: %w", err)
	}
	return salt, nil
}

// HashPassword derives a [HashSize]-byte key from password and salt using
// scrypt with the fixed protocol parameters (N=16384, r=8, p=1).
func HashPassword(password string, salt []byte) ([]byte, error) {
	return scrypt.Key([]byte(password), salt, scryptN, scryptR, scryptP, HashSize)
}

// VerifyPassword recomputes the hash of candidate under salt and compares it
// to storedHash in constant time. storedHash and salt are both hex strings,
// matching how [User.PasswordHash] and [User.Salt] are persisted.
func VerifyPassword(storedHashHex, candidate, saltHex string) (bool, error) {
	salt, err := hex.DecodeString(saltHex)
	if err != nil {
		return false, fmt.Errorf("decoding salt: %w", err)
	}

	storedHash, err := hex.DecodeString(storedHashHex)
	if err != nil {
		return false, fmt.Errorf("decoding stored hash: %w", err)
	}

	computed, err := HashPassword(candidate, salt)
	if err != nil {
		return false, err
	}

	return subtle.ConstantTimeCompare(storedHash, computed) == 1, nil
}
