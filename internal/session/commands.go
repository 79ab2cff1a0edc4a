// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/nsheremet/securetext/internal/codec"
	"github.com/nsheremet/securetext/internal/command"
	"github.com/nsheremet/securetext/internal/store"
	"github.com/nsheremet/securetext/models"
)

const helpText = "Commands: SEND <payload> TO <user> | GETUSERS | GETKEY <user> | " +
	"PUBKEY <pem> | GET_SALT | EXIT | HELP"

func (rt *Router) handleGetUsers(conn Conn) {
	_ = codec.Send(conn, models.CodeSuccess, strings.Join(rt.registry.Usernames(), ", "))
}

func (rt *Router) handleHelp(conn Conn) {
	_ = codec.Send(conn, models.CodeSuccess, helpText)
}

// handlePubKey uploads a new public key on file for the caller. Per the
// user-store contract (spec §4.4) this is an idempotent upsert: storing the
// same key twice leaves the store in the same state as storing it once.
func (rt *Router) handlePubKey(ctx context.Context, conn Conn, username string, tokens []string) {
	if len(tokens) < 2 {
		_ = codec.Send(conn, models.CodeError, "PUBKEY requires a public key argument")
		return
	}
	pem := strings.Join(tokens[1:], " ")

	if err := rt.users.StorePublicKey(ctx, username, pem); err != nil {
		_ = codec.Send(conn, models.CodeError, "failed to store public key")
		return
	}
	_ = codec.Send(conn, models.CodeSuccess, "public key updated")
}

// handleGetKey returns the stored PEM for the named user verbatim, prefixed
// by "KEY <username> " so clients can cache peer keys (spec §4.7).
func (rt *Router) handleGetKey(ctx context.Context, conn Conn, tokens []string) {
	if len(tokens) != 2 {
		_ = codec.Send(conn, models.CodeError, "GETKEY requires exactly one username")
		return
	}
	target := tokens[1]

	pem, err := rt.users.GetPublicKey(ctx, target)
	if err != nil {
		if errors.Is(err, store.ErrKeyNotFound) {
			_ = codec.Send(conn, models.CodeError, "no public key on file for "+target)
			return
		}
		_ = codec.Send(conn, models.CodeError, "failed to fetch public key")
		return
	}
	_ = codec.Send(conn, models.CodeSuccess, fmt.Sprintf("KEY %s %s", target, pem))
}

// handleGetSalt serves GET_SALT as a post-auth verb: an authenticated
// caller may re-fetch its own salt, already-public information once logged
// in (recovered from the original implementation; see SPEC_FULL.md).
func (rt *Router) handleGetSalt(ctx context.Context, conn Conn, username string) {
	salt, err := rt.users.GetSalt(ctx, username)
	if err != nil {
		_ = codec.Send(conn, models.CodeError, "failed to fetch salt")
		return
	}
	_ = codec.Send(conn, models.CodeSalt, salt)
}

// handleSend implements SEND <payload> TO <recipient> (spec §4.7): payload
// may span more than one token when it wasn't quoted or brace-delimited, so
// the recipient is always the last token and TO the second-to-last one,
// generalizing the four-token fast path.
func (rt *Router) handleSend(conn Conn, sender string, tokens []string) {
	if len(tokens) < 4 || !strings.EqualFold(tokens[len(tokens)-2], string(command.VerbTo)) {
		_ = codec.Send(conn, models.CodeError, "malformed SEND, expected SEND <payload> TO <user>")
		return
	}
	recipient := tokens[len(tokens)-1]
	payload := strings.Join(tokens[1:len(tokens)-2], " ")

	target, ok := rt.registry.Lookup(recipient)
	if !ok {
		_ = codec.Send(conn, models.CodeError, "no such user: "+recipient)
		return
	}

	framed := fmt.Sprintf("[%s] %s: %s", time.Now().Format(time.RFC3339), sender, payload)
	if err := target.Send(models.CodeSuccess, framed); err != nil {
		rt.log.Warn().Str("recipient", recipient).Err(err).Msg("dropping dead peer after write failure")
		rt.registry.Remove(recipient, target)
		_ = codec.Send(conn, models.CodeError, "failed to deliver to "+recipient)
		return
	}

	_ = codec.Send(conn, models.CodeSuccess, "Message sent to "+recipient)
}
