// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package kdf implements the memory-hard password key-derivation scheme used
// by account registration and login (spec §4.2).
//
// Parameters are fixed for this protocol version (N=16384, r=8, p=1,
// dkLen=32) rather than stored per-record; [ProtocolVersion] is provisioned,
// unused, for a future version column per spec §9.
package kdf
