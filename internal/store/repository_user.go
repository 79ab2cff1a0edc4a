// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/nsheremet/securetext/internal/logger"
	"github.com/nsheremet/securetext/models"
)

// userRepository is the SQL-backed implementation of [UserRepository]. It
// handles member-account creation and lookup against the "members" and
// "public_keys" tables, working unmodified against either the PostgreSQL or
// SQLite connection produced by [NewConnectPostgres] / [NewConnectSQLite].
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new member record and its public key in a single
// transaction, satisfying the create_user atomicity invariant (spec §4.4):
// either both rows are inserted, or neither.
//
// Error handling:
//   - unique_violation on either table → [ErrLoginAlreadyExists], with the
//     wrapped message naming which table collided.
//   - any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) CreateUser(ctx context.Context, username, passwordHash, salt, publicKeyPEM string) (models.User, error) {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error beginning transaction")
		return models.User{}, fmt.Errorf("%w: %v", ErrBeginningTransaction, err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op once committed

	memberQuery, memberArgs, err := buildInsertMemberQuery(ctx, username, passwordHash, salt)
	if err != nil {
		return models.User{}, err
	}

	var user models.User
	row := tx.QueryRowContext(ctx, memberQuery, memberArgs...)
	if err := row.Scan(&user.Login, &user.PasswordHash, &user.Salt, &user.RegistrationTime); err != nil {
		if isUniqueViolation(err) {
			return models.User{}, fmt.Errorf("%w: members table", ErrLoginAlreadyExists)
		}
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error inserting member")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	keyQuery, keyArgs, err := buildInsertPublicKeyQuery(ctx, username, publicKeyPEM)
	if err != nil {
		return models.User{}, err
	}

	if _, err := tx.ExecContext(ctx, keyQuery, keyArgs...); err != nil {
		if isUniqueViolation(err) {
			return models.User{}, fmt.Errorf("%w: public_keys table", ErrLoginAlreadyExists)
		}
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error inserting public key")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	if err := tx.Commit(); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error committing transaction")
		return models.User{}, fmt.Errorf("%w: %v", ErrCommittingTransaction, err)
	}

	user.PublicKeyPEM = publicKeyPEM
	return user, nil
}

// FindUserByLogin retrieves the member record for username.
//
// Error handling:
//   - [sql.ErrNoRows] → [ErrUserNotFound].
//   - any other error → returned wrapped.
func (r *userRepository) FindUserByLogin(ctx context.Context, username string) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindMemberQuery(ctx, username)
	if err != nil {
		return models.User{}, err
	}

	var user models.User
	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&user.Login, &user.PasswordHash, &user.Salt, &user.RegistrationTime); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrUserNotFound
		}
		log.Err(err).Str("func", "*userRepository.FindUserByLogin").Msg("error finding member")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return user, nil
}

// StorePublicKey upserts the public key on file for username.
func (r *userRepository) StorePublicKey(ctx context.Context, username, publicKeyPEM string) error {
	query, args, err := buildUpsertPublicKeyQuery(ctx, username, publicKeyPEM)
	if err != nil {
		return err
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*userRepository.StorePublicKey").Msg("error storing public key")
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	return nil
}

// GetPublicKey retrieves the public key on file for username.
func (r *userRepository) GetPublicKey(ctx context.Context, username string) (string, error) {
	query, args, err := buildGetPublicKeyQuery(ctx, username)
	if err != nil {
		return "", err
	}

	var pem string
	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&pem); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrKeyNotFound
		}
		logger.FromContext(ctx).Err(err).Str("func", "*userRepository.GetPublicKey").Msg("error getting public key")
		return "", fmt.Errorf("unexpected DB error: %w", err)
	}
	return pem, nil
}

// GetSalt retrieves the scrypt salt on file for username.
func (r *userRepository) GetSalt(ctx context.Context, username string) (string, error) {
	query, args, err := buildGetSaltQuery(ctx, username)
	if err != nil {
		return "", err
	}

	var salt string
	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&salt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrUserNotFound
		}
		logger.FromContext(ctx).Err(err).Str("func", "*userRepository.GetSalt").Msg("error getting salt")
		return "", fmt.Errorf("unexpected DB error: %w", err)
	}
	return salt, nil
}
