// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/nsheremet/securetext/internal/logger"
)

// challengeRepository is the SQL-backed implementation of
// [ChallengeRepository]. A challenge is a short-lived, server-generated
// nonce held against the "auth_challenges" table while a login is in
// progress (spec §4.6); at most one challenge is outstanding per user at
// any time, enforced by upsert.
type challengeRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewChallengeRepository constructs a [ChallengeRepository] backed by the
// provided database connection and logger.
func NewChallengeRepository(db *DB, logger *logger.Logger) ChallengeRepository {
	logger.Debug().Msg("creating challenge repository")
	return &challengeRepository{
		db:     db,
		logger: logger,
	}
}

// StoreChallenge upserts the pending challenge for username.
func (r *challengeRepository) StoreChallenge(ctx context.Context, username, challengeB64 string) error {
	query, args, err := buildUpsertChallengeQuery(ctx, username, challengeB64)
	if err != nil {
		return err
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*challengeRepository.StoreChallenge").Msg("error storing challenge")
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	return nil
}

// GetChallenge retrieves the pending challenge for username.
func (r *challengeRepository) GetChallenge(ctx context.Context, username string) (string, error) {
	query, args, err := buildGetChallengeQuery(ctx, username)
	if err != nil {
		return "", err
	}

	var challenge string
	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&challenge); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrChallengeNotFound
		}
		logger.FromContext(ctx).Err(err).Str("func", "*challengeRepository.GetChallenge").Msg("error getting challenge")
		return "", fmt.Errorf("unexpected DB error: %w", err)
	}
	return challenge, nil
}
