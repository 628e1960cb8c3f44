package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/getmockd/magemock/pkg/auth"
	"github.com/getmockd/magemock/pkg/catalog"
	"github.com/getmockd/magemock/pkg/fulfillment"
	"github.com/getmockd/magemock/pkg/logging"
	"github.com/getmockd/magemock/pkg/media"
	"github.com/getmockd/magemock/pkg/requestlog"
	"github.com/getmockd/magemock/pkg/store"
)

// Default server settings.
const (
	DefaultAddr         = ":8080"
	DefaultReadTimeout  = 30 * time.Second
	DefaultWriteTimeout = 30 * time.Second
)

// Server serves the mock REST API backed by one Store.
type Server struct {
	store    *store.Store
	engine   *fulfillment.Engine
	media    *media.Manager
	catalog  *catalog.Catalog
	issuer   *auth.Issuer
	requests *requestlog.MemoryStore
	log      *slog.Logger

	handler    http.Handler
	httpServer *http.Server

	mu        sync.Mutex
	running   bool
	startTime time.Time
}

type options struct {
	log             *slog.Logger
	addr            string
	readTimeout     time.Duration
	writeTimeout    time.Duration
	platformVersion string
	auth            auth.Config
	requestLogSize  int
}

// Option configures a Server.
type Option func(*options)

// WithLogger sets the logger passed to every component.
func WithLogger(log *slog.Logger) Option {
	return func(o *options) {
		if log != nil {
			o.log = log
		}
	}
}

// WithAddr sets the listen address used by ListenAndServe.
func WithAddr(addr string) Option {
	return func(o *options) {
		o.addr = addr
	}
}

// WithTimeouts sets the HTTP read and write timeouts.
func WithTimeouts(read, write time.Duration) Option {
	return func(o *options) {
		o.readTimeout = read
		o.writeTimeout = write
	}
}

// WithPlatformVersion sets the platform version the mock imitates.
func WithPlatformVersion(version string) Option {
	return func(o *options) {
		o.platformVersion = version
	}
}

// WithAuth sets the admin credentials and token settings.
func WithAuth(cfg auth.Config) Option {
	return func(o *options) {
		o.auth = cfg
	}
}

// WithRequestLogCapacity sets how many requests the request log keeps.
func WithRequestLogCapacity(n int) Option {
	return func(o *options) {
		o.requestLogSize = n
	}
}

// New creates a Server over st.
func New(st *store.Store, opts ...Option) (*Server, error) {
	if st == nil {
		return nil, errors.New("store cannot be nil")
	}
	o := options{
		log:          logging.Nop(),
		addr:         DefaultAddr,
		readTimeout:  DefaultReadTimeout,
		writeTimeout: DefaultWriteTimeout,
		auth:         auth.DefaultConfig(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	issuer, err := auth.NewIssuer(o.auth)
	if err != nil {
		return nil, err
	}

	s := &Server{
		store:  st,
		engine: fulfillment.New(st, fulfillment.WithLogger(logging.Component(o.log, "fulfillment"))),
		media:  media.New(st, media.WithLogger(logging.Component(o.log, "media"))),
		catalog: catalog.New(st,
			catalog.WithLogger(logging.Component(o.log, "catalog")),
			catalog.WithPlatformVersion(o.platformVersion),
		),
		issuer:   issuer,
		requests: requestlog.NewMemoryStore(o.requestLogSize),
		log:      logging.Component(o.log, "server"),
	}

	mux := http.NewServeMux()
	s.registerRoutes(mux)
	s.handler = newLoggingMiddleware(mux, s.log, s.requests)
	s.httpServer = &http.Server{
		Addr:         o.addr,
		Handler:      s.handler,
		ReadTimeout:  o.readTimeout,
		WriteTimeout: o.writeTimeout,
	}
	return s, nil
}

// Handler returns the HTTP handler of the mock.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Store returns the store the server operates on.
func (s *Server) Store() *store.Store {
	return s.store
}

// ListenAndServe listens on the configured address and serves until
// Shutdown is called.
func (s *Server) ListenAndServe() error {
	ln, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.httpServer.Addr, err)
	}
	return s.Serve(ln)
}

// Serve serves on ln until Shutdown is called. A server that was shut down
// returns nil.
func (s *Server) Serve(ln net.Listener) error {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		_ = ln.Close()
		return errors.New("server is already running")
	}
	s.running = true
	s.startTime = time.Now()
	s.mu.Unlock()

	s.log.Info("starting HTTP server", "addr", ln.Addr().String())
	err := s.httpServer.Serve(ln)
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := s.httpServer.Shutdown(ctx)
	if s.running {
		s.log.Info("HTTP server stopped", "uptime", time.Since(s.startTime).Round(time.Second))
	}
	s.running = false
	if err != nil {
		return fmt.Errorf("HTTP shutdown: %w", err)
	}
	return nil
}

// IsRunning reports whether the server is serving.
func (s *Server) IsRunning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}
