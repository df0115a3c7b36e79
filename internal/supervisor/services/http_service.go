// Pathwise - Course and Career Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pathwise

package services

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
	"github.com/thejerf/suture/v4"
)

const defaultShutdownTimeout = 10 * time.Second

// apiServer is the part of *http.Server the service drives.
type apiServer interface {
	Serve(ln net.Listener) error
	Shutdown(ctx context.Context) error
}

// HTTPServerService runs the API server under suture.
//
// Serve binds the listener itself, so a bind failure is returned to the
// supervisor (and retried with backoff) instead of being lost in a goroutine.
// Cancellation of the Serve context triggers Shutdown with a fresh context
// bounded by the shutdown timeout.
//
//	server := &http.Server{Addr: ":8000", Handler: router.SetupChi()}
//	tree.AddAPIService(services.NewHTTPServerService(server, 10*time.Second, logger))
type HTTPServerService struct {
	server          apiServer
	addr            string
	shutdownTimeout time.Duration
	logger          zerolog.Logger
	name            string

	bound atomic.Value // string
}

// NewHTTPServerService wraps server, listening on server.Addr. A
// non-positive shutdownTimeout means 10s.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewHTTPServerService(server *http.Server, shutdownTimeout time.Duration, logger zerolog.Logger) *HTTPServerService {
	return newHTTPServerService(server, server.Addr, shutdownTimeout, logger)
}

//nolint:gocritic // logger passed by value is acceptable for zerolog
func newHTTPServerService(server apiServer, addr string, shutdownTimeout time.Duration, logger zerolog.Logger) *HTTPServerService {
	if shutdownTimeout <= 0 {
		shutdownTimeout = defaultShutdownTimeout
	}
	h := &HTTPServerService{
		server:          server,
		addr:            addr,
		shutdownTimeout: shutdownTimeout,
		logger:          logger.With().Str("service", "http-server").Logger(),
		name:            "http-server",
	}
	h.bound.Store("")
	return h
}

// Serve implements suture.Service.
//
// If the server is closed by something other than this service, Serve
// returns suture.ErrDoNotRestart: a closed *http.Server cannot serve again.
func (h *HTTPServerService) Serve(ctx context.Context) error {
	var lc net.ListenConfig
	ln, err := lc.Listen(ctx, "tcp", h.addr)
	if err != nil {
		return fmt.Errorf("http server listen on %q: %w", h.addr, err)
	}
	h.bound.Store(ln.Addr().String())
	defer h.bound.Store("")

	h.logger.Info().Str("addr", ln.Addr().String()).Msg("HTTP server listening")

	errCh := make(chan error, 1)
	go func() {
		errCh <- h.server.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			h.logger.Warn().Msg("HTTP server closed outside the supervisor")
			return suture.ErrDoNotRestart
		}
		return fmt.Errorf("http server failed: %w", err)

	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), h.shutdownTimeout)
		defer cancel()

		h.logger.Info().Dur("timeout", h.shutdownTimeout).Msg("HTTP server shutting down")
		if err := h.server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http server shutdown failed: %w", err)
		}

		<-errCh
		h.logger.Info().Msg("HTTP server stopped")
		return ctx.Err()
	}
}

// ListenAddr returns the bound address while Serve is running, and "" otherwise.
func (h *HTTPServerService) ListenAddr() string {
	return h.bound.Load().(string) //nolint:forcetypeassert // only strings are stored
}

// ShutdownTimeout returns the graceful shutdown bound.
func (h *HTTPServerService) ShutdownTimeout() time.Duration {
	return h.shutdownTimeout
}

// String identifies the service in supervisor events.
func (h *HTTPServerService) String() string {
	return h.name
}
