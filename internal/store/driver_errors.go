// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"errors"

	sqlite3 "github.com/mattn/go-sqlite3"

	"github.com/jackc/pgerrcode"
)

const uniqueViolationCode = pgerrcode.UniqueViolation

// isUniqueViolation reports whether err is a unique-constraint violation
// from either supported backend: PostgreSQL's unique_violation (23505) via
// pgconn, or SQLite's ErrConstraintUnique via mattn/go-sqlite3. Repository
// methods use this instead of [postgresError] directly so the same code
// path classifies duplicate-key errors identically regardless of which
// driver produced the connection.
func isUniqueViolation(err error) bool {
	if postgresError(err) == uniqueViolationCode {
		return true
	}

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique ||
			sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey
	}

	return false
}
