// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidServerConfigs indicates invalid listen-address, idle-timeout,
	// or buffer-size settings for the connection supervisor.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")

	// ErrInvalidStorageConfigs indicates an empty storage DSN.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
)
