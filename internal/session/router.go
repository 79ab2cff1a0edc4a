// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import (
	"context"
	"errors"
	"time"

	"github.com/nsheremet/securetext/internal/codec"
	"github.com/nsheremet/securetext/internal/command"
	"github.com/nsheremet/securetext/internal/logger"
	"github.com/nsheremet/securetext/internal/store"
	"github.com/nsheremet/securetext/internal/utils"
	"github.com/nsheremet/securetext/models"
)

// Router owns the live-session registry and drives the post-auth command
// loop described in spec §4.7 for each authenticated connection.
type Router struct {
	registry    *Registry
	users       store.UserRepository
	log         *logger.Logger
	idleTimeout time.Duration
	uuids       *utils.UUIDGenerator
}

// NewRouter constructs a Router sharing registry across every connection.
// idleTimeout bounds every command read; pass [codec.IdleTimeout] for the
// protocol default.
func NewRouter(registry *Registry, users store.UserRepository, log *logger.Logger, idleTimeout time.Duration) *Router {
	return &Router{
		registry:    registry,
		users:       users,
		log:         log,
		idleTimeout: idleTimeout,
		uuids:       utils.NewUUIDGenerator(),
	}
}

// Serve registers username's connection in the registry and runs the
// command loop until EXIT, a transport error, or a registry conflict. The
// caller (the connection supervisor) is responsible for closing conn; Serve
// always releases the registry entry before returning, whatever the exit
// path (spec §4.8).
func (rt *Router) Serve(ctx context.Context, username string, conn Conn) error {
	handle := NewHandle(username, rt.uuids.Generate(), conn)
	log := rt.log.GetChildLogger()

	if err := rt.registry.Insert(handle); err != nil {
		_ = codec.Send(conn, models.CodeNoWriteBack, "already logged in")
		log.Warn().Str("username", username).Msg("rejected duplicate login")
		return err
	}
	defer rt.registry.Remove(username, handle)

	log.Info().Str("username", username).Str("conn_id", handle.ConnID).Str("remote_addr", conn.RemoteAddr()).
		Msg("session started")

	for {
		line, err := readLine(conn, rt.idleTimeout)
		if err != nil {
			if errors.Is(err, ErrTimeout) {
				_ = codec.Send(conn, models.CodeError, "idle timeout")
				continue
			}
			return err
		}

		if err := rt.dispatch(ctx, conn, username, line); err != nil {
			if errors.Is(err, errExit) {
				return nil
			}
			return err
		}
	}
}

// errExit is a private sentinel unwinding Serve's loop on the EXIT verb; it
// never reaches the caller as an error (Serve translates it to nil above).
var errExit = errors.New("session: client requested exit")

func (rt *Router) dispatch(ctx context.Context, conn Conn, username, line string) error {
	tokens, err := command.Tokenize(line)
	if err != nil {
		_ = codec.Send(conn, models.CodeError, err.Error())
		return nil
	}
	if len(tokens) == 0 {
		_ = codec.Send(conn, models.CodeError, "empty command")
		return nil
	}

	switch command.ParseVerb(tokens[0]) {
	case command.VerbExit:
		_ = codec.Send(conn, models.CodeExit, "goodbye")
		return errExit
	case command.VerbGetUsers:
		rt.handleGetUsers(conn)
	case command.VerbHelp:
		rt.handleHelp(conn)
	case command.VerbPubKey:
		rt.handlePubKey(ctx, conn, username, tokens)
	case command.VerbGetKey:
		rt.handleGetKey(ctx, conn, tokens)
	case command.VerbGetSalt:
		rt.handleGetSalt(ctx, conn, username)
	case command.VerbSend:
		rt.handleSend(conn, username, tokens)
	default:
		_ = codec.Send(conn, models.CodeError, "unrecognized command")
	}
	return nil
}
