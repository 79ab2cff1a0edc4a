// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cryptoenvelope

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
)

// RSAMaxBytes is the largest plaintext that fits directly under RSA-2048
// OAEP-SHA256 padding: k - 2*hLen - 2, with k=256 and hLen=32 (spec §4.3).
const RSAMaxBytes = 190

const (
	methodRSA    = "rsa"
	methodHybrid = "hybrid"
)

// envelope is the JSON shape carried as the `msg` payload of an encrypted
// SEND or CHALLENGE. Exactly one of the method-specific field groups is
// populated, selected by Method.
type envelope struct {
	Method       string `json:"method"`
	Data         string `json:"data"`
	EncryptedKey string `json:"encrypted_key,omitempty"`
	IV           string `json:"iv,omitempty"`
}

var oaepHash = sha256.New

// Encrypt enciphers message for the holder of recipientPublicPEM. Messages
// of at most [RSAMaxBytes] bytes are wrapped directly with RSA-OAEP
// (`"method":"rsa"`); larger messages are enciphered with a fresh AES-256-CFB
// key that is itself wrapped with RSA-OAEP (`"method":"hybrid"`).
//
// The returned string is the JSON serialization of the envelope, suitable
// for embedding verbatim as a WRITE_BACK/SEND payload.
func Encrypt(message []byte, recipientPublicPEM []byte) (string, error) {
	pub, err := ParsePublicKey(recipientPublicPEM)
	if err != nil {
		return "", err
	}

	if len(message) <= RSAMaxBytes {
		return encryptRSA(message, pub)
	}
	return encryptHybrid(message, pub)
}

func encryptRSA(message []byte, pub *rsa.PublicKey) (string, error) {
	ciphertext, err := rsa.EncryptOAEP(oaepHash(), rand.Reader, pub, message, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrCryptoFailure, err)
	}

	env := envelope{
		Method: methodRSA,
		Data:   base64.StdEncoding.EncodeToString(ciphertext),
	}
	return marshalEnvelope(env)
}

func encryptHybrid(message []byte, pub *rsa.PublicKey) (string, error) {
	aesKey := make([]byte, 32)
	if _, err := io.ReadFull(rand.Reader, aesKey); err != nil {
		return "", fmt.Errorf("generating AES key: %w", err)
	}
	iv := make([]byte, aes.BlockSize)
	if _, err := io.ReadFull(rand.Reader, iv); err != nil {
		return "", fmt.Errorf("generating IV: %w", err)
	}

	block, err := aes.NewCipher(aesKey)
	if err != nil {
		return "", fmt.Errorf("constructing AES cipher: %w", err)
	}
	ciphertext := make([]byte, len(message))
	cipher.NewCFBEncrypter(block, iv).XORKeyStream(ciphertext, message)

	wrappedKey, err := rsa.EncryptOAEP(oaepHash(), rand.Reader, pub, aesKey, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrCryptoFailure, err)
	}

	env := envelope{
		Method:       methodHybrid,
		Data:         base64.StdEncoding.EncodeToString(ciphertext),
		EncryptedKey: base64.StdEncoding.EncodeToString(wrappedKey),
		IV:           base64.StdEncoding.EncodeToString(iv),
	}
	return marshalEnvelope(env)
}

// Decrypt parses envelopeJSON and deciphers it with privatePEM, dispatching
// on the embedded "method" field. Returns the UTF-8 plaintext.
func Decrypt(envelopeJSON string, privatePEM []byte) (string, error) {
	var env envelope
	if err := json.Unmarshal([]byte(envelopeJSON), &env); err != nil {
		return "", fmt.Errorf("%w: %v", ErrBadEnvelope, err)
	}

	priv, err := ParsePrivateKey(privatePEM)
	if err != nil {
		return "", err
	}

	switch env.Method {
	case methodRSA:
		return decryptRSA(env, priv)
	case methodHybrid:
		return decryptHybrid(env, priv)
	default:
		return "", fmt.Errorf("%w: unknown method %q", ErrBadEnvelope, env.Method)
	}
}

func decryptRSA(env envelope, priv *rsa.PrivateKey) (string, error) {
	ciphertext, err := base64.StdEncoding.DecodeString(env.Data)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrBadEnvelope, err)
	}

	plaintext, err := rsa.DecryptOAEP(oaepHash(), rand.Reader, priv, ciphertext, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrCryptoFailure, err)
	}
	return string(plaintext), nil
}

func decryptHybrid(env envelope, priv *rsa.PrivateKey) (string, error) {
	wrappedKey, err := base64.StdEncoding.DecodeString(env.EncryptedKey)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrBadEnvelope, err)
	}
	iv, err := base64.StdEncoding.DecodeString(env.IV)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrBadEnvelope, err)
	}
	ciphertext, err := base64.StdEncoding.DecodeString(env.Data)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrBadEnvelope, err)
	}

	aesKey, err := rsa.DecryptOAEP(oaepHash(), rand.Reader, priv, wrappedKey, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrCryptoFailure, err)
	}

	block, err := aes.NewCipher(aesKey)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrCryptoFailure, err)
	}
	if len(iv) != aes.BlockSize {
		return "", fmt.Errorf("%w: bad IV length", ErrBadEnvelope)
	}

	plaintext := make([]byte, len(ciphertext))
	cipher.NewCFBDecrypter(block, iv).XORKeyStream(plaintext, ciphertext)
	return string(plaintext), nil
}

func marshalEnvelope(env envelope) (string, error) {
	payload, err := json.Marshal(env)
	if err != nil {
		return "", fmt.Errorf("marshaling envelope: %w", err)
	}
	return string(payload), nil
}

// EnvelopeMethod reports the "method" field of a serialized envelope without
// performing any decryption. Used by tests and diagnostics.
func EnvelopeMethod(envelopeJSON string) (string, error) {
	var env envelope
	if err := json.Unmarshal([]byte(envelopeJSON), &env); err != nil {
		return "", fmt.Errorf("%w: %v", ErrBadEnvelope, err)
	}
	return env.Method, nil
}
