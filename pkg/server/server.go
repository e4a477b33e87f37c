/*
Copyright © 2025 OpenGeodata Sweden
SPDX-License-Identifier: Apache-2.0
*/

// Package server exposes the validation battery over HTTP so CI systems and
// dashboards can poll the health of the reference data without shelling out
// to the CLI.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

// Server serves validation runs over HTTP.
type Server struct {
	cfg     *Config
	name    string
	version string
	limiter *rate.Limiter

	mu    sync.RWMutex
	ready bool
}

// Option is a functional option for configuring Server instances.
type Option func(*Server)

// WithName returns an Option that sets the server name reported on the
// default route.
func WithName(name string) Option {
	return func(s *Server) {
		s.name = name
	}
}

// WithVersion returns an Option that sets the version reported on the
// default route and recorded in report headers.
func WithVersion(version string) Option {
	return func(s *Server) {
		s.version = version
	}
}

// WithConfig returns an Option that replaces the default configuration.
func WithConfig(cfg *Config) Option {
	return func(s *Server) {
		s.cfg = cfg
	}
}

// New creates a new Server with the provided options.
func New(opts ...Option) *Server {
	s := &Server{
		cfg:     DefaultConfig(),
		name:    "refcheck",
		version: "dev",
	}
	for _, opt := range opts {
		opt(s)
	}
	s.limiter = rate.NewLimiter(s.cfg.RateLimit, s.cfg.RateLimitBurst)
	return s
}

// Run starts the HTTP server and blocks until the context is cancelled or a
// termination signal arrives, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	addr := fmt.Sprintf("%s:%d", s.cfg.Address, s.cfg.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      s.setupRoutes(),
		ReadTimeout:  s.cfg.ReadTimeout,
		WriteTimeout: s.cfg.WriteTimeout,
		IdleTimeout:  s.cfg.IdleTimeout,
	}

	s.setReady(true)
	slog.Info("server listening", "addr", addr, "data_dir", s.cfg.DataDir)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		s.setReady(false)
		slog.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

func (s *Server) setReady(ready bool) {
	s.mu.Lock()
	s.ready = ready
	s.mu.Unlock()
}
