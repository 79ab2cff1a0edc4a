// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// User represents a registered account: the durable record keyed by Login
// (spec §3 "User record"). Salt and PasswordHash are always both present or
// the record does not exist; PublicKeyPEM is required before the account may
// log in.
type User struct {
	// Login is the unique, printable-ASCII username.
	Login string `json:"login"`

	// Salt is the 16 random bytes used to derive PasswordHash, stored
	// hex-encoded.
	Salt string `json:"-"`

	// PasswordHash is the 32-byte scrypt derived key, stored hex-encoded.
	PasswordHash string `json:"-"`

	// PublicKeyPEM is the PEM-encoded RSA-2048 SubjectPublicKeyInfo the
	// account authenticates against.
	PublicKeyPEM string `json:"-"`

	// RegistrationTime is the creation instant; informational only.
	RegistrationTime time.Time `json:"registration_time"`
}

// TableName returns the name of the database table backing User.
func (u User) TableName() string {
	return "members"
}

// PendingChallenge is the transient, at-most-one-per-username login
// challenge described in spec §3 ("Pending challenge"). The stored row is
// overwritten on every new login attempt; verification uses the challenge
// held in memory by the login flow, and nothing deletes the row after a
// successful login. It need not survive a server restart.
type PendingChallenge struct {
	Login        string
	ChallengeB64 string
	IssuedAt     time.Time
}

// TableName returns the name of the database table backing PendingChallenge.
func (PendingChallenge) TableName() string {
	return "auth_challenges"
}
