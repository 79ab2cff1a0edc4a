// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package auth

import (
	"context"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/nsheremet/securetext/internal/cryptoenvelope"
	"github.com/nsheremet/securetext/internal/kdf"
	"github.com/nsheremet/securetext/models"
)

func TestAuthenticate_LoginMode(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	a, users, challenges := newTestAuthenticator(t, ctrl)

	privPEM, pubPEM, err := cryptoenvelope.GenerateKeyPair()
	require.NoError(t, err)
	salt, err := kdf.GenerateSalt()
	require.NoError(t, err)
	hash, err := kdf.HashPassword("hunter2", salt)
	require.NoError(t, err)
	hashHex := hex.EncodeToString(hash)

	conn := newFakeConn("1", "alice", "GET_SALT", dynamicMarker)
	conn.dynamicFn = computeResponseFromChallenge(t, privPEM, hashHex)

	users.EXPECT().FindUserByLogin(gomock.Any(), "alice").Return(models.User{Login: "alice", PasswordHash: hashHex}, nil)
	users.EXPECT().GetPublicKey(gomock.Any(), "alice").Return(string(pubPEM), nil)
	challenges.EXPECT().StoreChallenge(gomock.Any(), "alice", gomock.Any()).Return(nil)
	users.EXPECT().GetSalt(gomock.Any(), "alice").Return(hex.EncodeToString(salt), nil)

	username, err := a.Authenticate(context.Background(), conn)
	require.NoError(t, err)
	assert.Equal(t, "alice", username)
}

func TestAuthenticate_UnrecognizedMode(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	a, _, _ := newTestAuthenticator(t, ctrl)

	conn := newFakeConn("9")

	_, err := a.Authenticate(context.Background(), conn)
	assert.ErrorIs(t, err, ErrProtocolViolation)
	assert.Equal(t, models.CodeNoWriteBack, conn.last().Code)
}
