package server

import (
	"context"
	"log/slog"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	clientdist "github.com/dangdiep/shinyWidgets/client/dist"
)

// Server owns the websocket endpoint, the embedded client script, and the
// session manager.
type Server struct {
	config   *Config
	logger   *slog.Logger
	sessions *SessionManager
	upgrader websocket.Upgrader

	// OnSessionStart runs after a session is registered, before its read
	// loop starts. Use it to attach input listeners and push initial
	// messages.
	OnSessionStart func(*Session)

	httpServer *http.Server
	mu         sync.Mutex
}

// New creates a Server. A nil config uses DefaultConfig. Config errors
// surface from Run or Handler-time upgrades, not from New.
func New(config *Config) (*Server, error) {
	if config == nil {
		config = DefaultConfig()
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &Server{
		config:   config,
		logger:   config.Logger,
		sessions: NewSessionManager(config.MaxSessions),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 4096,
		},
	}, nil
}

// Sessions returns the session manager.
func (s *Server) Sessions() *SessionManager {
	return s.sessions
}

// Config returns the server configuration.
func (s *Server) Config() *Config {
	return s.config
}

// Logger returns the server logger.
func (s *Server) Logger() *slog.Logger {
	return s.logger
}

// Handler returns the routes under BasePath for mounting in an external
// chi router (or any stdlib mux):
//
//	r := chi.NewRouter()
//	r.Mount("/", srv.Handler())
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	s.Mount(r)
	return r
}

// Mount attaches the websocket, client-script, and metrics routes to an
// existing chi router, for callers composing their own middleware stack.
func (s *Server) Mount(r chi.Router) {
	r.Route(s.config.BasePath, func(r chi.Router) {
		r.Get("/ws", s.HandleWebSocket)
		r.Get("/client.js", s.handleClientScript)
	})
	r.Handle("/metrics", promhttp.Handler())
}

// HandleWebSocket upgrades the request and runs the session loops. It
// returns when the session ends.
func (s *Server) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	if s.config.MaxSessions > 0 && s.sessions.Len() >= s.config.MaxSessions {
		http.Error(w, "too many sessions", http.StatusServiceUnavailable)
		return
	}

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Error("websocket upgrade failed", "error", err)
		metrics().wsErrors.WithLabelValues("upgrade").Inc()
		return
	}

	sess := newSession(conn, s.config, s.logger)
	sess.onClose = func(closed *Session) {
		s.sessions.Unregister(closed)
	}
	if err := s.sessions.Register(sess); err != nil {
		s.logger.Warn("session rejected", "error", err)
		conn.Close()
		return
	}

	s.logger.Info("session started", "session", sess.ID()[:8], "remote", r.RemoteAddr)

	go sess.writeLoop()
	if s.OnSessionStart != nil {
		s.OnSessionStart(sess)
	}
	sess.ReadLoop()
}

// handleClientScript serves the embedded client runtime.
func (s *Server) handleClientScript(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/javascript; charset=utf-8")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.Write(clientdist.ShinyWidgetsJS)
}

// Run starts an HTTP server on the configured address, serving the given
// page handler alongside the websocket routes. Blocks until Shutdown or
// listener failure.
func (s *Server) Run(page http.Handler) error {
	r := chi.NewRouter()
	s.Mount(r)
	if page != nil {
		r.Get("/", func(w http.ResponseWriter, req *http.Request) {
			page.ServeHTTP(w, req)
		})
	}

	s.mu.Lock()
	s.httpServer = &http.Server{
		Addr:    s.config.Address,
		Handler: r,
	}
	srv := s.httpServer
	s.mu.Unlock()

	s.logger.Info("listening", "addr", s.config.Address)
	err := srv.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

// Shutdown stops the HTTP server and closes all sessions.
func (s *Server) Shutdown(ctx context.Context) error {
	s.sessions.CloseAll()
	s.mu.Lock()
	srv := s.httpServer
	s.mu.Unlock()
	if srv == nil {
		return nil
	}
	return srv.Shutdown(ctx)
}
