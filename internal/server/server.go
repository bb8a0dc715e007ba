package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"static-page/internal/config"
)

// Server binds the configured port and serves a handler until its context ends
type Server struct {
	cfg        *config.Config
	httpServer *http.Server
}

// New creates a server for handler using cfg
func New(cfg *config.Config, handler http.Handler) *Server {
	return &Server{
		cfg: cfg,
		httpServer: &http.Server{
			Addr:    cfg.Addr(),
			Handler: handler,
		},
	}
}

// Listen binds the configured port. There is no retry; a failure here is fatal
// for the process.
func (s *Server) Listen() (net.Listener, error) {
	ln, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		return nil, fmt.Errorf("failed to bind %s: %w", s.httpServer.Addr, err)
	}
	return ln, nil
}

// Serve logs the readiness message and serves on ln until ctx is cancelled,
// then shuts down gracefully.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	port := s.cfg.Port
	if addr, ok := ln.Addr().(*net.TCPAddr); ok {
		port = addr.Port
	}
	log.Printf("Server running at %d", port)

	errChan := make(chan error, 1)
	go func() {
		errChan <- s.httpServer.Serve(ln)
	}()

	select {
	case err := <-errChan:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Println("shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		// Connections still open past the timeout are dropped
		s.httpServer.Close()
		return fmt.Errorf("error shutting down server: %w", err)
	}

	if err := <-errChan; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server error: %w", err)
	}
	log.Println("server stopped")
	return nil
}

// Run binds the port and serves until ctx is cancelled
func (s *Server) Run(ctx context.Context) error {
	ln, err := s.Listen()
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}
