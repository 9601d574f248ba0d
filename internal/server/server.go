// Package server exposes pattern generation over HTTP and WebSocket.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"sync/atomic"

	"github.com/quic-go/quic-go/http3"

	"honnef.co/go/spiro/internal/cache"
	"honnef.co/go/spiro/internal/config"
	"honnef.co/go/spiro/internal/log"
)

// Server represents the spirogen HTTP service
type Server struct {
	config config.Server
	logger log.Log
	cache  *cache.Cache

	handler http.Handler

	// Server state
	running atomic.Bool
	mu      sync.Mutex
	http    *http.Server
	h3      *http3.Server
	addr    net.Addr
	wg      sync.WaitGroup
}

// NewServer creates a new server. c may be nil to disable caching.
func NewServer(cfg config.Config, logger log.Log, c *cache.Cache) *Server {
	s := &Server{
		config: cfg.Server,
		logger: logger.With(log.String("component", "server")),
		cache:  c,
	}
	if cfg.Server.HTTP3Addr != "" {
		s.h3 = &http3.Server{Addr: cfg.Server.HTTP3Addr}
	}
	s.handler = s.routes()
	if s.h3 != nil {
		s.h3.Handler = s.handler
	}

	s.logger.Info("Server created",
		log.String("listen_addr", cfg.Server.ListenAddr),
		log.Bool("http3", s.h3 != nil),
		log.Int("cache_capacity", cfg.Cache.Capacity))

	return s
}

// Handler returns the server's HTTP handler, including its middleware.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Start starts listening and serving in the background.
func (s *Server) Start(_ context.Context) error {
	if !s.running.CompareAndSwap(false, true) {
		return ErrServerAlreadyRunning
	}

	s.logger.Info("Starting server")

	ln, err := net.Listen("tcp", s.config.ListenAddr)
	if err != nil {
		s.running.Store(false)
		s.logger.Error("Failed to create listener", log.Error(err))
		return fmt.Errorf("%w: %w", ErrListenerFailed, err)
	}

	srv := &http.Server{
		Handler:      s.handler,
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
	}

	s.mu.Lock()
	s.http = srv
	s.addr = ln.Addr()
	s.mu.Unlock()

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("HTTP server failed", log.Error(err))
		}
	}()

	if s.h3 != nil {
		s.wg.Add(1)
		go func() {
			defer s.wg.Done()
			err := s.h3.ListenAndServeTLS(s.config.TLSCert, s.config.TLSKey)
			if err != nil && !errors.Is(err, http.ErrServerClosed) {
				s.logger.Error("HTTP/3 server failed", log.Error(err))
			}
		}()
		s.logger.Info("HTTP/3 listening", log.String("addr", s.config.HTTP3Addr))
	}

	s.logger.Info("Server listening", log.String("addr", ln.Addr().String()))
	return nil
}

// Addr returns the address the server listens on, or nil if it isn't
// running.
func (s *Server) Addr() net.Addr {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.addr
}

// Stop gracefully shuts the server down, waiting for in-flight requests up
// to the configured shutdown timeout.
func (s *Server) Stop(ctx context.Context) error {
	if !s.running.CompareAndSwap(true, false) {
		return ErrServerNotRunning
	}

	s.logger.Info("Stopping server")

	if s.config.ShutdownTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.config.ShutdownTimeout)
		defer cancel()
	}

	s.mu.Lock()
	srv := s.http
	s.http = nil
	s.addr = nil
	s.mu.Unlock()

	err := srv.Shutdown(ctx)
	if s.h3 != nil {
		if cerr := s.h3.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	s.wg.Wait()

	if err != nil {
		s.logger.Error("Server shutdown failed", log.Error(err))
		return fmt.Errorf("shutting down: %w", err)
	}
	s.logger.Info("Server stopped")
	return nil
}
