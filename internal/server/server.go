package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/bobmcallan/stb/internal/app"
	"github.com/bobmcallan/stb/internal/common"
)

const (
	// Requests carry small JSON bodies at most.
	readHeaderTimeout = 5 * time.Second
	readTimeout       = 15 * time.Second
	// Covers the slowest PNG chart render.
	writeTimeout = 30 * time.Second
	idleTimeout  = 90 * time.Second
)

// Server serves the dashboard API and the /ws state feed for one App.
// Hijacked feed connections are outside the listener timeouts.
type Server struct {
	app          *app.App
	server       *http.Server
	logger       *common.Logger
	shutdownChan chan struct{}
}

// NewServer builds the routes and middleware. Nothing listens until Start.
func NewServer(a *app.App) *Server {
	s := &Server{app: a, logger: a.Logger}

	mux := http.NewServeMux()
	s.registerRoutes(mux)

	s.server = &http.Server{
		Addr:              net.JoinHostPort(a.Config.Server.Host, strconv.Itoa(a.Config.Server.Port)),
		Handler:           applyMiddleware(mux, a.Logger),
		ReadHeaderTimeout: readHeaderTimeout,
		ReadTimeout:       readTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
	}
	return s
}

// SetShutdownChannel receives a signal when POST /api/shutdown is accepted.
func (s *Server) SetShutdownChannel(ch chan struct{}) {
	s.shutdownChan = ch
}

// Handler is the routed handler with middleware applied.
func (s *Server) Handler() http.Handler {
	return s.server.Handler
}

// Addr is the host:port the server listens on.
func (s *Server) Addr() string {
	return s.server.Addr
}

// Start listens and blocks. It returns nil once Shutdown has been called.
func (s *Server) Start() error {
	s.logger.Info().Str("addr", s.server.Addr).Msg("Dashboard API listening")
	if err := s.server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests until ctx expires.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}
