package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"cosmossdk.io/log"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/openalpha/stake-farm/api/middleware"
	"github.com/openalpha/stake-farm/api/websocket"
	"github.com/openalpha/stake-farm/metrics"
)

// Server serves farm state over HTTP and websocket
type Server struct {
	config     *Config
	reader     Reader
	router     *chi.Mux
	httpServer *http.Server
	wsServer   *websocket.Server
	logger     log.Logger

	rateLimiter *middleware.RateLimiter
}

// NewServer creates a server reading farm state from reader
func NewServer(config *Config, reader Reader, logger log.Logger) *Server {
	if config == nil {
		config = DefaultConfig()
	}
	logger = logger.With("module", "farm-api")

	wsConfig := websocket.DefaultServerConfig()
	wsConfig.PollInterval = config.PollInterval
	wsConfig.AllowedOrigins = config.AllowedOrigins
	wsConfig.MaxConnPerIP = config.MaxWSConnPerIP

	s := &Server{
		config:   config,
		reader:   reader,
		router:   chi.NewRouter(),
		wsServer: websocket.NewServer(reader, wsConfig, logger),
		logger:   logger,
	}
	if !config.DisableRateLimit {
		rlConfig := middleware.DefaultRateLimitConfig()
		rlConfig.RequestsPerSecond = config.RateLimitRPS
		rlConfig.Burst = config.RateLimitBurst
		s.rateLimiter = middleware.NewRateLimiter(rlConfig)
	}

	s.setupRoutes()

	s.httpServer = &http.Server{
		Addr:         config.Addr(),
		Handler:      s.router,
		ReadTimeout:  config.ReadTimeout,
		WriteTimeout: config.WriteTimeout,
	}
	return s
}

func (s *Server) setupRoutes() {
	s.router.Use(chimw.Recoverer)
	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins: s.config.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))
	s.router.Use(middleware.RequestMetrics)
	if s.rateLimiter != nil {
		s.router.Use(middleware.RateLimitMiddleware(s.rateLimiter))
	}

	s.router.Get("/health", s.handleHealth)
	s.router.Method(http.MethodGet, "/metrics", metrics.Handler())
	s.router.Method(http.MethodGet, "/ws", s.wsServer)

	s.router.Route("/v1/farm/pools", func(r chi.Router) {
		r.Get("/", s.handleListPools)
		r.Get("/{index}", s.handleGetPool)
		r.Get("/{index}/positions", s.handleListPositions)
		r.Get("/{index}/positions/{depositor}", s.handleGetPosition)
	})
}

// Handler returns the HTTP handler of the server
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start serves until Stop is called or ctx is done. The websocket poller
// runs for as long as ctx.
func (s *Server) Start(ctx context.Context) error {
	go s.wsServer.Run(ctx)

	s.logger.Info("API server starting",
		"addr", s.config.Addr(),
		"node", s.config.NodeURI,
		"rate_limit", !s.config.DisableRateLimit,
	)
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Stop gracefully shuts down the server
func (s *Server) Stop(ctx context.Context) error {
	if s.rateLimiter != nil {
		s.rateLimiter.Stop()
	}
	return s.httpServer.Shutdown(ctx)
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]interface{}{
		"error": message,
	})
}
