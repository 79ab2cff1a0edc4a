// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/nsheremet/securetext/internal/logger"
)

// psql builds queries with $N placeholders. The same placeholder style is
// accepted positionally by both the pgx and mattn/go-sqlite3 drivers, so
// one query set serves both backends.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func buildInsertMemberQuery(ctx context.Context, username, passwordHash, salt string) (string, []any, error) {
	query, args, err := psql.Insert("members").
		Columns("username", "password_hash", "salt").
		Values(username, passwordHash, salt).
		Suffix("RETURNING username, password_hash, salt, registration_date").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}
	logger.FromContext(ctx).Debug().Str("query", query).Msg("built insert member query")
	return query, args, nil
}

func buildInsertPublicKeyQuery(ctx context.Context, username, publicKeyPEM string) (string, []any, error) {
	query, args, err := psql.Insert("public_keys").
		Columns("username", "public_key").
		Values(username, publicKeyPEM).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}
	logger.FromContext(ctx).Debug().Str("query", query).Msg("built insert public key query")
	return query, args, nil
}

func buildUpsertPublicKeyQuery(ctx context.Context, username, publicKeyPEM string) (string, []any, error) {
	query, args, err := psql.Insert("public_keys").
		Columns("username", "public_key").
		Values(username, publicKeyPEM).
		Suffix("ON CONFLICT (username) DO UPDATE SET public_key = EXCLUDED.public_key, key_creation_date = CURRENT_TIMESTAMP").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}
	logger.FromContext(ctx).Debug().Str("query", query).Msg("built upsert public key query")
	return query, args, nil
}

func buildFindMemberQuery(ctx context.Context, username string) (string, []any, error) {
	query, args, err := psql.Select("username", "password_hash", "salt", "registration_date").
		From("members").
		Where(sq.Eq{"username": username}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}
	logger.FromContext(ctx).Debug().Str("query", query).Msg("built find member query")
	return query, args, nil
}

func buildGetPublicKeyQuery(ctx context.Context, username string) (string, []any, error) {
	query, args, err := psql.Select("public_key").
		From("public_keys").
		Where(sq.Eq{"username": username}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}
	logger.FromContext(ctx).Debug().Str("query", query).Msg("built get public key query")
	return query, args, nil
}

func buildGetSaltQuery(ctx context.Context, username string) (string, []any, error) {
	query, args, err := psql.Select("salt").
		From("members").
		Where(sq.Eq{"username": username}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}
	logger.FromContext(ctx).Debug().Str("query", query).Msg("built get salt query")
	return query, args, nil
}

func buildUpsertChallengeQuery(ctx context.Context, username, challengeB64 string) (string, []any, error) {
	query, args, err := psql.Insert("auth_challenges").
		Columns("username", "challenge").
		Values(username, challengeB64).
		Suffix("ON CONFLICT (username) DO UPDATE SET challenge = EXCLUDED.challenge, timestamp = CURRENT_TIMESTAMP").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}
	logger.FromContext(ctx).Debug().Str("query", query).Msg("built upsert challenge query")
	return query, args, nil
}

func buildGetChallengeQuery(ctx context.Context, username string) (string, []any, error) {
	query, args, err := psql.Select("challenge").
		From("auth_challenges").
		Where(sq.Eq{"username": username}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}
	logger.FromContext(ctx).Debug().Str("query", query).Msg("built get challenge query")
	return query, args, nil
}
