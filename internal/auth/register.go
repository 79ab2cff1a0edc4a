// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package auth

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/nsheremet/securetext/internal/codec"
	"github.com/nsheremet/securetext/internal/cryptoenvelope"
	"github.com/nsheremet/securetext/internal/kdf"
	"github.com/nsheremet/securetext/internal/store"
	"github.com/nsheremet/securetext/models"
)

// register runs the ASK_USERNAME → ASK_PASSWORD → ASK_PUBKEY → COMMIT states
// of spec §4.6's registration machine. A duplicate username or an
// unparseable public key fails the authenticator outright: registration is
// not retried within the same connection and does not consume an attempt.
func (a *Authenticator) register(ctx context.Context, conn Conn) (string, error) {
	if err := codec.Send(conn, models.CodeWriteBack, "Enter desired username"); err != nil {
		return "", err
	}
	username, err := readLine(conn, a.idleTimeout)
	if err != nil {
		return "", err
	}

	if _, err := a.users.FindUserByLogin(ctx, username); err == nil {
		_ = codec.Send(conn, models.CodeNoWriteBack, "username already exists")
		return "", ErrDuplicate
	} else if !errors.Is(err, store.ErrUserNotFound) {
		return "", fmt.Errorf("checking username availability: %w", err)
	}

	if err := codec.Send(conn, models.CodeWriteBack, "Enter password"); err != nil {
		return "", err
	}
	password, err := readLine(conn, a.idleTimeout)
	if err != nil {
		return "", err
	}

	salt, err := kdf.GenerateSalt()
	if err != nil {
		return "", fmt.Errorf("generating salt: %w", err)
	}
	hash, err := kdf.HashPassword(password, salt)
	if err != nil {
		return "", fmt.Errorf("hashing password: %w", err)
	}

	if err := codec.Send(conn, models.CodeWriteBack, "Enter public key (PEM)"); err != nil {
		return "", err
	}
	publicKeyPEM, err := readLine(conn, a.idleTimeout)
	if err != nil {
		return "", err
	}

	if _, err := cryptoenvelope.ParsePublicKey([]byte(publicKeyPEM)); err != nil {
		_ = codec.Send(conn, models.CodeNoWriteBack, "public key does not parse as SPKI")
		return "", ErrInvalidPublicKey
	}

	_, err = a.users.CreateUser(ctx, username, hex.EncodeToString(hash), hex.EncodeToString(salt), publicKeyPEM)
	if err != nil {
		if errors.Is(err, store.ErrLoginAlreadyExists) {
			_ = codec.Send(conn, models.CodeNoWriteBack, "username already exists")
			return "", ErrDuplicate
		}
		return "", fmt.Errorf("committing registration: %w", err)
	}

	if err := codec.Send(conn, models.CodeNoWriteBack, "registration successful, please log in"); err != nil {
		return "", err
	}

	return username, nil
}
