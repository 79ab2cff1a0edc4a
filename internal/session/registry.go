// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import (
	"sort"
	"sync"

	"github.com/nsheremet/securetext/internal/codec"
	"github.com/nsheremet/securetext/models"
)

// Handle is the live-session registry's entry for one authenticated
// connection: enough to address its writer for inbound routing (spec §3
// "Live session"). Ownership of the underlying connection is exclusively
// the per-connection task's; the registry only ever holds this lookup-key
// reference, never reads from it.
type Handle struct {
	Username string
	ConnID   string

	conn Conn
	mu   sync.Mutex
}

// NewHandle wraps conn as a registry entry for username, tagged with connID
// (a v7 UUID, logging-only — spec §9's session registry section).
func NewHandle(username, connID string, conn Conn) *Handle {
	return &Handle{Username: username, ConnID: connID, conn: conn}
}

// Send writes one frame to the handle's connection under the handle's own
// mutex, so two router goroutines delivering to the same recipient cannot
// interleave a frame (spec §5: "one router write is atomic per frame").
func (h *Handle) Send(code models.Code, msg string) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	return codec.Send(h.conn, code, msg)
}

// Registry is the in-memory map username → live session (spec §4.7). It
// enforces single-session-per-user and is safe for concurrent use by every
// connection's router goroutine.
type Registry struct {
	mu    sync.Mutex
	users map[string]*Handle
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{users: make(map[string]*Handle)}
}

// Insert adds h under h.Username if no live session already exists for
// that username. Returns [ErrAlreadyLoggedIn] otherwise, without touching
// the existing entry.
func (r *Registry) Insert(h *Handle) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.users[h.Username]; exists {
		return ErrAlreadyLoggedIn
	}
	r.users[h.Username] = h
	return nil
}

// Remove deletes username's entry only if it still points to h. This
// guards against a slow cleanup path evicting a successor's entry after the
// same user reconnected in the meantime (spec §4.7, §9 "Registry
// lifecycle").
func (r *Registry) Remove(username string, h *Handle) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if cur, ok := r.users[username]; ok && cur == h {
		delete(r.users, username)
	}
}

// Lookup returns the live handle for username, if any.
func (r *Registry) Lookup(username string) (*Handle, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	h, ok := r.users[username]
	return h, ok
}

// Usernames returns every currently logged-in username, sorted for stable
// GETUSERS output.
func (r *Registry) Usernames() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	names := make([]string, 0, len(r.users))
	for u := range r.users {
		names = append(names, u)
	}
	sort.Strings(names)
	return names
}
