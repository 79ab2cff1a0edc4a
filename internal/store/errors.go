// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrLoginAlreadyExists is returned when an attempt to register a new user
	// fails because a user with the same login already exists in the database.
	// The create_user invariant (members + public_keys inserted atomically)
	// means this can surface from either table; the wrapped error text names
	// which one collided for operator-facing logs.
	ErrLoginAlreadyExists = errors.New("login already exists")

	// ErrUserNotFound is returned when a query expected to match a member
	// record produces an empty result set.
	ErrUserNotFound = errors.New("no user was found")

	// ErrKeyNotFound is returned when a caller requests a public key for a
	// user who has not yet uploaded one.
	ErrKeyNotFound = errors.New("public key not found")

	// ErrChallengeNotFound is returned when a caller requests the pending
	// authentication challenge for a user with none outstanding.
	ErrChallengeNotFound = errors.New("no pending challenge found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommittingTransaction is returned when committing an open
	// transaction fails. The transaction is considered rolled back at this
	// point.
	ErrCommittingTransaction = errors.New("failed to commit transaction")
)
