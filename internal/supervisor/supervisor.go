// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package supervisor

import (
	"context"
	"errors"
	"fmt"
	"net"
	"sync"
	"time"

	"github.com/nsheremet/securetext/internal/auth"
	"github.com/nsheremet/securetext/internal/logger"
	"github.com/nsheremet/securetext/internal/session"
)

// Supervisor accepts TCP connections on a listener and runs each one
// through the (authenticator, router) pipeline described in spec §4.8.
type Supervisor struct {
	listener    net.Listener
	authn       *auth.Authenticator
	router      *session.Router
	log         *logger.Logger
	idleTimeout time.Duration

	mu    sync.Mutex
	conns map[net.Conn]struct{}
}

// Listen binds addr and returns a Supervisor ready to [Supervisor.Run].
func Listen(addr string, authn *auth.Authenticator, router *session.Router, log *logger.Logger, idleTimeout time.Duration) (*Supervisor, error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("binding %s: %w", addr, err)
	}
	log.Info().Str("address", addr).Msg("listening")

	return &Supervisor{
		listener:    ln,
		authn:       authn,
		router:      router,
		log:         log,
		idleTimeout: idleTimeout,
		conns:       make(map[net.Conn]struct{}),
	}, nil
}

// Run accepts connections until ctx is cancelled, spawning one goroutine
// per connection. It blocks until the listener closes and every in-flight
// connection has returned, so the caller can rely on Run's return to mean
// "fully drained" (spec §4.8 "propagates shutdown... cancelling child
// tasks cooperatively").
//
// Cancellation closes every tracked connection in addition to the
// listener, so a blocked authenticator/router read (governed otherwise
// only by its idle-read deadline, up to 240s per spec §5) returns
// immediately instead of stalling shutdown.
func (s *Supervisor) Run(ctx context.Context) error {
	var wg sync.WaitGroup

	done := make(chan struct{})
	go func() {
		select {
		case <-ctx.Done():
			_ = s.listener.Close()
			s.closeAllConns()
		case <-done:
		}
	}()
	defer close(done)

	for {
		conn, err := s.listener.Accept()
		if err != nil {
			wg.Wait()
			if errors.Is(err, net.ErrClosed) {
				return nil
			}
			return err
		}

		s.trackConn(conn)
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer s.untrackConn(conn)
			s.handle(ctx, conn)
		}()
	}
}

func (s *Supervisor) trackConn(conn net.Conn) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.conns[conn] = struct{}{}
}

func (s *Supervisor) untrackConn(conn net.Conn) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.conns, conn)
}

func (s *Supervisor) closeAllConns() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for conn := range s.conns {
		_ = conn.Close()
	}
}

// Close closes the listener directly, for callers that don't want to drive
// shutdown through context cancellation.
func (s *Supervisor) Close() error {
	return s.listener.Close()
}

// Addr returns the listener's bound address, useful when Listen was called
// with a ":0" port and the caller needs to know what was actually bound.
func (s *Supervisor) Addr() string {
	return s.listener.Addr().String()
}

// handle runs one accepted connection end to end and guarantees the
// writer is closed on every exit path: authentication failure, router
// error, or the router's own EXIT handling.
func (s *Supervisor) handle(ctx context.Context, raw net.Conn) {
	conn := newConnWrapper(raw)
	remoteAddr := conn.RemoteAddr()
	log := s.log.GetChildLogger()

	defer func() {
		_ = raw.Close()
	}()

	username, err := s.authn.Authenticate(ctx, conn)
	if err != nil {
		log.Info().Err(err).Str("remote_addr", remoteAddr).Msg("authentication did not complete")
		return
	}

	if err := s.router.Serve(ctx, username, conn); err != nil {
		log.Info().Err(err).Str("username", username).Str("remote_addr", remoteAddr).Msg("session ended")
	}
}
