// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/nsheremet/securetext/internal/config"
	"github.com/nsheremet/securetext/internal/logger"
)

// Storages groups the repositories the authenticator and session router
// depend on into a single value that can be passed around the application
// (spec §4.4). It owns the underlying *DB connection and is responsible for
// running migrations before the repositories are used.
type Storages struct {
	UserRepository      UserRepository
	ChallengeRepository ChallengeRepository

	db *DB
}

// NewStorages opens a database connection using cfg.DSN, runs pending
// migrations, and wires up [UserRepository] and [ChallengeRepository].
//
// The backend is selected by inspecting the DSN: a "postgres://" or
// "postgresql://" scheme connects via pgx; anything else is treated as a
// SQLite file path, matching the "no required environment variables, runs
// out of the box" default the spec calls for.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	log.Info().Msg("creating new storages...")

	db, err := connect(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("database connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Storages{
		UserRepository:      NewUserRepository(db, log),
		ChallengeRepository: NewChallengeRepository(db, log),
		db:                  db,
	}, nil
}

func connect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	if isPostgresDSN(cfg.DSN) {
		return NewConnectPostgres(ctx, cfg, log)
	}
	return NewConnectSQLite(ctx, cfg, log)
}

func isPostgresDSN(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://")
}

// Close releases the underlying database connection.
func (s *Storages) Close() error {
	return s.db.Close()
}
