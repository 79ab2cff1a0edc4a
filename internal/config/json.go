// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the JSON-specific representation of the server
// configuration. It mirrors [StructuredConfig] but uses JSON struct tags and
// the custom [Duration] type so that duration values can be expressed as
// human-readable strings (e.g. "240s") in the config file.
//
// After decoding, the values are mapped into a [StructuredConfig] by
// [parseJSON].
type StructuredJSONConfig struct {
	Server struct {
		ListenAddress string   `json:"listen_address"`
		IdleTimeout   Duration `json:"idle_timeout"`
		BufferSize    int      `json:"buffer_size"`
	} `json:"server,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`
}

// parseJSON opens the JSON file at jsonFilePath, decodes it into a
// [StructuredJSONConfig], and maps the result into a [StructuredConfig].
//
// JSONFilePath is intentionally left empty in the returned config so that
// the path is not re-processed during subsequent merge steps.
//
// Returns a wrapped error if the file cannot be opened or its contents
// cannot be decoded as valid JSON.
func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		Server: Server{
			ListenAddress: jsonCfg.Server.ListenAddress,
			IdleTimeout:   time.Duration(jsonCfg.Server.IdleTimeout),
			BufferSize:    jsonCfg.Server.BufferSize,
		},
		Storage: Storage{
			DB: DB{DSN: jsonCfg.Storage.DB.DSN},
		},
		JSONFilePath: "", // intentionally cleared to prevent re-processing
	}

	return cfg, nil
}

// Duration is a thin wrapper around [time.Duration] that adds JSON
// unmarshaling support for human-readable duration strings such as "240s",
// in addition to raw nanosecond integers.
type Duration time.Duration

// UnmarshalJSON implements [json.Unmarshaler] for Duration.
//
// Supported JSON value types:
//   - string: parsed with [time.ParseDuration] (e.g. "240s").
//   - number: treated as a raw nanosecond count (same as time.Duration).
func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

// MarshalJSON implements [json.Marshaler] for Duration.
func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
