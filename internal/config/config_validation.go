// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup. Defaults have
// already been applied by the time validate runs, so a failure here means
// an explicitly supplied value is nonsensical.
func (cfg *StructuredConfig) validate() error {
	if cfg.Server.ListenAddress == "" {
		return ErrInvalidServerConfigs
	}
	if cfg.Server.IdleTimeout <= 0 {
		return ErrInvalidServerConfigs
	}
	if cfg.Server.BufferSize <= 0 {
		return ErrInvalidServerConfigs
	}
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	return nil
}
