// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package supervisor implements the connection supervisor of spec §4.8: a
// TCP accept loop that hands each socket through the (authenticator,
// router) pipeline on its own goroutine and guarantees cleanup — registry
// release and writer close — on every exit path, including shutdown.
package supervisor
