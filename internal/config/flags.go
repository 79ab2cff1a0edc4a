// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a server listen address in format [host]:[port]
//	-d storage DSN
//	-idle-timeout idle read timeout (e.g., "240s")
//	-buffer-size maximum per-read buffer size in bytes
//	-c/-config json file path with configs
func ParseFlags() *StructuredConfig {
	var listenAddress NetAddress
	var databaseDSN string
	var jsonConfigPath string
	var idleTimeout time.Duration
	var bufferSize int

	flag.Var(&listenAddress, "a", "Net address host:port")
	flag.StringVar(&databaseDSN, "d", "", "Storage DSN")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.DurationVar(&idleTimeout, "idle-timeout", 0, "Idle read timeout (e.g., 240s)")
	flag.IntVar(&bufferSize, "buffer-size", 0, "Maximum per-read buffer size in bytes")

	flag.Parse()

	return &StructuredConfig{
		Server: Server{
			ListenAddress: listenAddress.String(),
			IdleTimeout:   idleTimeout,
			BufferSize:    bufferSize,
		},
		Storage: Storage{
			DB: DB{DSN: databaseDSN},
		},
		JSONFilePath: jsonConfigPath,
	}
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns the empty string so the
// caller's default (e.g. [DefaultListenAddress]) takes over.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It requires a numeric port of at least 1 (no upper bound is checked),
// checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
