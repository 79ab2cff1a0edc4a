// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store provides data-access abstractions and repository
// implementations for persisting and querying account records, public
// keys, and in-flight authentication challenges.
//
// It defines repository interfaces, concrete SQL-backed implementations
// (PostgreSQL via pgx, SQLite via mattn/go-sqlite3), squirrel-built query
// construction, error classification, and the sentinel errors used across
// the storage layer.
package store

import (
	"context"

	"github.com/nsheremet/securetext/models"
)

// UserRepository defines the database access contract for member accounts
// and their public keys (spec §4.4).
type UserRepository interface {
	// CreateUser persists a new member record together with its public key
	// in a single transaction: either both rows are inserted, or neither.
	// Returns [ErrLoginAlreadyExists] if the login is already taken.
	CreateUser(ctx context.Context, username, passwordHash, salt, publicKeyPEM string) (models.User, error)

	// FindUserByLogin retrieves the member record for username.
	// Returns [ErrUserNotFound] if no matching record exists.
	FindUserByLogin(ctx context.Context, username string) (models.User, error)

	// StorePublicKey upserts the public key on file for username, overwriting
	// any previously stored key.
	StorePublicKey(ctx context.Context, username, publicKeyPEM string) error

	// GetPublicKey retrieves the public key on file for username.
	// Returns [ErrKeyNotFound] if none has been uploaded.
	GetPublicKey(ctx context.Context, username string) (string, error)

	// GetSalt retrieves the scrypt salt on file for username.
	// Returns [ErrUserNotFound] if the account does not exist.
	GetSalt(ctx context.Context, username string) (string, error)
}

// ChallengeRepository defines the database access contract for the
// short-lived authentication challenges issued during login (spec §4.6).
type ChallengeRepository interface {
	// StoreChallenge upserts the pending challenge for username, overwriting
	// any prior one. Exactly one challenge may be outstanding per user.
	StoreChallenge(ctx context.Context, username, challengeB64 string) error

	// GetChallenge retrieves the pending challenge for username.
	// Returns [ErrChallengeNotFound] if none is outstanding.
	GetChallenge(ctx context.Context, username string) (string, error)
}

// ErrorClassificator defines a strategy for categorizing errors produced
// by persistence layers (e.g. PostgreSQL driver errors) into well-known
// application-level classifications.
//
// Implementations inspect the underlying driver error (error codes, types)
// and return a corresponding [ErrorClassification] value that higher layers
// can switch on without coupling to a specific database driver.
type ErrorClassificator interface {
	// Classify maps an error into a predefined [ErrorClassification] enum.
	// If the error is not recognized, the implementation should return
	// a generic/unknown classification rather than panicking.
	Classify(err error) ErrorClassification
}
