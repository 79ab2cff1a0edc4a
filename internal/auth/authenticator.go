// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package auth

import (
	"context"
	"time"

	"github.com/nsheremet/securetext/internal/codec"
	"github.com/nsheremet/securetext/internal/logger"
	"github.com/nsheremet/securetext/internal/store"
	"github.com/nsheremet/securetext/models"
)

// Authenticator drives the registration and login state machines of spec
// §4.6 against a single accepted connection. One Authenticator is shared
// across connections; it holds no per-connection state itself.
type Authenticator struct {
	users       store.UserRepository
	challenges  store.ChallengeRepository
	log         *logger.Logger
	idleTimeout time.Duration
}

// New constructs an Authenticator backed by users and challenges.
// idleTimeout bounds every prompt read (spec §5); pass
// [codec.IdleTimeout] for the protocol default.
func New(users store.UserRepository, challenges store.ChallengeRepository, log *logger.Logger, idleTimeout time.Duration) *Authenticator {
	return &Authenticator{
		users:       users,
		challenges:  challenges,
		log:         log,
		idleTimeout: idleTimeout,
	}
}

// Authenticate reads the mode-select token and dispatches into registration
// (mode "2", immediately followed by login on success) or straight into
// login (mode "1"). It returns the authenticated username, or an error
// already reflected to the client as its own terminal frame.
func (a *Authenticator) Authenticate(ctx context.Context, conn Conn) (string, error) {
	log := a.log.GetChildLogger()

	if err := codec.Send(conn, models.CodeWriteBack, "1) Login  2) Register"); err != nil {
		return "", err
	}

	mode, err := readLine(conn, a.idleTimeout)
	if err != nil {
		return "", err
	}

	switch mode {
	case "2":
		username, err := a.register(ctx, conn)
		if err != nil {
			return "", err
		}
		log.Info().Str("username", username).Msg("registration committed, entering login")
	case "1":
		// fall through into login below
	default:
		_ = codec.Send(conn, models.CodeNoWriteBack, "unrecognized mode, expected 1 or 2")
		return "", ErrProtocolViolation
	}

	return a.login(ctx, conn)
}
