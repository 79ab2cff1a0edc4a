// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package auth

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"github.com/nsheremet/securetext/internal/codec"
	"github.com/nsheremet/securetext/internal/cryptoenvelope"
	"github.com/nsheremet/securetext/internal/kdf"
	"github.com/nsheremet/securetext/internal/store"
	"github.com/nsheremet/securetext/models"
)

// login runs spec §4.6's ASK_USERNAME → CHECK_USER → ISSUE_CHALLENGE →
// AWAIT_SALT_REQ → SEND_SALT → AWAIT_RESPONSE → VERIFY loop, up to
// [maxAttempts] full passes sharing one counter. A "username not found"
// rejection also counts against the counter, bounding username-enumeration
// cost per spec §4.6.
func (a *Authenticator) login(ctx context.Context, conn Conn) (string, error) {
	attempts := 0

	for attempts < maxAttempts {
		username, ok, err := a.loginAttempt(ctx, conn)
		if err != nil {
			return "", err
		}
		if ok {
			return username, nil
		}
		attempts++
	}

	_ = codec.Send(conn, models.CodeNoWriteBack, "3 Failed Attempts")
	_ = codec.Send(conn, models.CodeExit, "")
	return "", ErrAuthFailed
}

// readOrReject reads one line; an idle timeout is reflected to the client
// as ERROR and reported back as a consumed-attempt rejection rather than a
// fatal error, per spec §5 ("expiry counts as an attempt"). Any other read
// error is fatal and unwinds the connection.
func (a *Authenticator) readOrReject(conn Conn) (line string, rejected bool, err error) {
	line, err = readLine(conn, a.idleTimeout)
	if err == nil {
		return line, false, nil
	}
	if errors.Is(err, ErrTimeout) {
		_ = codec.Send(conn, models.CodeError, "idle timeout")
		return "", true, nil
	}
	return "", false, err
}

// loginAttempt runs a single pass of the login loop. The bool result
// reports whether the pass authenticated the connection; a false result
// with a nil error means the caller should consume an attempt and loop
// again (a terminal frame has already been sent to the client for this
// pass's rejection).
func (a *Authenticator) loginAttempt(ctx context.Context, conn Conn) (string, bool, error) {
	if err := codec.Send(conn, models.CodeWriteBack, "Enter username"); err != nil {
		return "", false, err
	}
	username, rejected, err := a.readOrReject(conn)
	if err != nil {
		return "", false, err
	}
	if rejected {
		return "", false, nil
	}

	user, err := a.users.FindUserByLogin(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			_ = codec.Send(conn, models.CodeNoWriteBack, "no such user")
			return "", false, nil
		}
		return "", false, fmt.Errorf("looking up user: %w", err)
	}

	publicKeyPEM, err := a.users.GetPublicKey(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrKeyNotFound) {
			_ = codec.Send(conn, models.CodeNoWriteBack, "no public key on file, register again")
			return "", false, nil
		}
		return "", false, fmt.Errorf("fetching public key: %w", err)
	}

	challenge, err := kdf.GenerateChallenge()
	if err != nil {
		return "", false, fmt.Errorf("generating challenge: %w", err)
	}
	challengeB64 := base64.StdEncoding.EncodeToString(challenge)

	if err := a.challenges.StoreChallenge(ctx, username, challengeB64); err != nil {
		return "", false, fmt.Errorf("storing challenge: %w", err)
	}

	envelopeJSON, err := cryptoenvelope.Encrypt([]byte(challengeB64), []byte(publicKeyPEM))
	if err != nil {
		return "", false, fmt.Errorf("encrypting challenge: %w", err)
	}
	if err := codec.Send(conn, models.CodeWriteBack, "CHALLENGE "+envelopeJSON); err != nil {
		return "", false, err
	}

	saltReq, rejected, err := a.readOrReject(conn)
	if err != nil {
		return "", false, err
	}
	if rejected {
		return "", false, nil
	}
	if saltReq != "GET_SALT" {
		_ = codec.Send(conn, models.CodeNoWriteBack, "expected GET_SALT")
		return "", false, nil
	}

	salt, err := a.users.GetSalt(ctx, username)
	if err != nil {
		return "", false, fmt.Errorf("fetching salt: %w", err)
	}
	if err := codec.Send(conn, models.CodeSalt, salt); err != nil {
		return "", false, err
	}

	response, rejected, err := a.readOrReject(conn)
	if err != nil {
		return "", false, err
	}
	if rejected {
		return "", false, nil
	}

	ok, err := kdf.VerifyChallengeResponse(user.PasswordHash, challengeB64, response)
	if err != nil {
		return "", false, fmt.Errorf("verifying challenge response: %w", err)
	}
	if !ok {
		_ = codec.Send(conn, models.CodeNoWriteBack, "challenge response incorrect")
		return "", false, nil
	}

	greeting := fmt.Sprintf("Hello %s, logged in at %s", username, time.Now().Format(time.RFC3339))
	if err := codec.Send(conn, models.CodeAuth, greeting); err != nil {
		return "", false, err
	}
	return username, true, nil
}
