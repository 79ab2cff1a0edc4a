// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"

	"github.com/nsheremet/securetext/internal/codec"
)

// StructuredConfig is the top-level configuration container for the chat
// relay server. It aggregates all sub-configurations and is populated by
// merging values from environment variables, command-line flags, and an
// optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Server holds the TCP listen address and per-connection timeouts
	// (spec §4.8, §6 "CLI / env").
	Server Server `envPrefix:"SERVER_"`

	// Storage holds the durable user/challenge store connection settings
	// (spec §4.4).
	Storage Storage `envPrefix:"STORAGE_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Server holds network and timeout settings for the TCP connection
// supervisor (spec §4.8).
type Server struct {
	// ListenAddress is the TCP address the supervisor binds to, in
	// "host:port" format. Defaults to "127.0.0.1:8888" (spec §6).
	// Env: SERVER_ADDRESS
	ListenAddress string `env:"ADDRESS"`

	// IdleTimeout bounds how long a connection may sit idle waiting for a
	// command or authentication prompt response before it is dropped
	// (spec §5 "Cancellation & timeouts"). Defaults to 240s.
	// Env: SERVER_IDLE_TIMEOUT
	IdleTimeout time.Duration `env:"IDLE_TIMEOUT"`

	// BufferSize is the configured per-read buffer size in bytes. Defaults
	// to 2048 and is validated, but it is not passed to the reader: client
	// reads always use the fixed codec.BufferSize.
	// Env: SERVER_BUFFER_SIZE
	BufferSize int `env:"BUFFER_SIZE"`
}

// Storage groups the configuration for the durable user/challenge store.
type Storage struct {
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// DSN is the connection string used to open the database connection.
	// A "postgres://" or "postgresql://" scheme selects the PostgreSQL
	// backend; anything else is treated as a SQLite file path (spec §4.4,
	// "Persisted schema"). Defaults to "securetext.db".
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// DefaultListenAddress is the address the supervisor binds to when none is
// configured (spec §6 "CLI / env").
const DefaultListenAddress = "127.0.0.1:8888"

// DefaultStorageDSN is the SQLite file used when no DSN is configured.
const DefaultStorageDSN = "securetext.db"

// DefaultIdleTimeout matches codec.IdleTimeout, the 240-second idle bound
// applied by both the router and the authenticator (spec §5).
const DefaultIdleTimeout = codec.IdleTimeout

// DefaultBufferSize matches codec.BufferSize (spec §4.1).
const DefaultBufferSize = codec.BufferSize

// applyDefaults fills in zero-valued fields with the protocol defaults so
// that the server runs with no required environment variables (spec §6).
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Server.ListenAddress == "" {
		cfg.Server.ListenAddress = DefaultListenAddress
	}
	if cfg.Server.IdleTimeout == 0 {
		cfg.Server.IdleTimeout = DefaultIdleTimeout
	}
	if cfg.Server.BufferSize == 0 {
		cfg.Server.BufferSize = DefaultBufferSize
	}
	if cfg.Storage.DB.DSN == "" {
		cfg.Storage.DB.DSN = DefaultStorageDSN
	}
}

// GetStructuredConfig loads, merges, and validates the server configuration
// from all available sources in the following priority order (last source
// wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	cfg, err := newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
	if err != nil {
		return nil, err
	}

	cfg.applyDefaults()
	return cfg, cfg.validate()
}
