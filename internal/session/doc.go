// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package session owns the live-session registry and the post-auth command
// router described in spec §4.7: the table of currently authenticated
// connections, single-session-per-user enforcement, and the SEND/TO/EXIT/
// GETUSERS/HELP/PUBKEY/GETKEY/GET_SALT dispatch loop that runs once the
// authenticator hands off a connection.
package session
