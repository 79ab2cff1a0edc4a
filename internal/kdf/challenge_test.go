// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package kdf

import (
	"encoding/base64"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateChallenge_Length(t *testing.T) {
	challenge, err := GenerateChallenge()
	require.NoError(t, err)
	assert.Len(t, challenge, ChallengeSize)
}

func TestComputeChallengeResponse_Deterministic(t *testing.T) {
	salt, err := GenerateSalt()
	require.NoError(t, err)
	hash, err := HashPassword("correct horse battery staple", salt)
	require.NoError(t, err)
	hashHex := hex.EncodeToString(hash)

	challenge := []byte("0123456789abcdef0123456789abcdef")
	challengeB64 := base64.StdEncoding.EncodeToString(challenge)

	r1, err := ComputeChallengeResponse(hashHex, challengeB64)
	require.NoError(t, err)
	r2, err := ComputeChallengeResponse(hashHex, challengeB64)
	require.NoError(t, err)
	assert.Equal(t, r1, r2)
}

func TestVerifyChallengeResponse_RoundTrip(t *testing.T) {
	salt, err := GenerateSalt()
	require.NoError(t, err)
	hash, err := HashPassword("hunter2", salt)
	require.NoError(t, err)
	hashHex := hex.EncodeToString(hash)

	challenge, err := GenerateChallenge()
	require.NoError(t, err)
	challengeB64 := base64.StdEncoding.EncodeToString(challenge)

	response, err := ComputeChallengeResponse(hashHex, challengeB64)
	require.NoError(t, err)

	ok, err := VerifyChallengeResponse(hashHex, challengeB64, response)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = VerifyChallengeResponse(hashHex, challengeB64, "0000000000000000000000000000000000000000000000000000000000000000")
	require.NoError(t, err)
	assert.False(t, ok)
}

