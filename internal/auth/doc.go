// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package auth drives the registration and login state machines described
// in spec §4.6: a fresh connection arrives here immediately after accept and
// leaves either with an authenticated username or a closed socket.
//
// Both state machines share a single three-attempt counter. Every prompt is
// sent as WRITE_BACK, every rejection as NO_WRITE_BACK, and success as AUTH.
// Exhausting the attempt counter sends EXIT; other fatal failures end after
// NO_WRITE_BACK alone.
package auth
