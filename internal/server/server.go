// Package server provides the HTTP server and routing for CreditGo.
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"

	"github.com/creditgo/creditgo/internal/database"
	marketplacehandlers "github.com/creditgo/creditgo/internal/modules/marketplace/handlers"
	"github.com/creditgo/creditgo/internal/modules/profile"
	profilehandlers "github.com/creditgo/creditgo/internal/modules/profile/handlers"
	smshandlers "github.com/creditgo/creditgo/internal/modules/sms/handlers"
	validationhandlers "github.com/creditgo/creditgo/internal/modules/validation/handlers"
	"github.com/creditgo/creditgo/pkg/metrics"
)

// Config holds server configuration
type Config struct {
	Log            zerolog.Logger
	AppStateDB     *database.DB
	Metrics        *metrics.Collector
	ProfileService *profile.Service
	Builder        *profile.Builder
	Jobs           JobCounter
	Port           int
	DevMode        bool
}

// Server represents the HTTP server
type Server struct {
	router         *chi.Mux
	server         *http.Server
	log            zerolog.Logger
	appStateDB     *database.DB
	metrics        *metrics.Collector
	profileService *profile.Service
	builder        *profile.Builder
	systemHandlers *SystemHandlers
	port           int
}

// New creates a new HTTP server
func New(cfg Config) *Server {
	s := &Server{
		router:         chi.NewRouter(),
		log:            cfg.Log.With().Str("component", "server").Logger(),
		appStateDB:     cfg.AppStateDB,
		metrics:        cfg.Metrics,
		profileService: cfg.ProfileService,
		builder:        cfg.Builder,
		systemHandlers: NewSystemHandlers(cfg.Log, cfg.AppStateDB, cfg.Jobs),
		port:           cfg.Port,
	}

	s.setupMiddleware(cfg.DevMode)
	s.setupRoutes()

	s.server = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// Handler exposes the router, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.router
}

// setupMiddleware configures middleware
func (s *Server) setupMiddleware(devMode bool) {
	// Recovery from panics
	s.router.Use(middleware.Recoverer)

	// Request ID
	s.router.Use(middleware.RequestID)

	// Real IP
	s.router.Use(middleware.RealIP)

	// Logging
	s.router.Use(s.loggingMiddleware)

	// Timeout
	s.router.Use(middleware.Timeout(60 * time.Second))

	// CORS
	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Compress responses
	if !devMode {
		s.router.Use(middleware.Compress(5))
	}
}

// setupRoutes configures all routes
func (s *Server) setupRoutes() {
	s.router.Get("/health", s.handleHealth)

	if s.metrics != nil {
		s.router.Method(http.MethodGet, "/metrics", s.metrics.Handler())
	}

	// A nil collector must stay an untyped nil inside the recorder interface
	var parseRecorder smshandlers.ParseRecorder
	if s.metrics != nil {
		parseRecorder = s.metrics
	}

	s.router.Route("/api", func(r chi.Router) {
		r.Route("/system", func(r chi.Router) {
			r.Get("/status", s.systemHandlers.HandleSystemStatus)
			r.Get("/database/stats", s.systemHandlers.HandleDatabaseStats)
		})

		smshandlers.NewHandler(parseRecorder, s.log).RegisterRoutes(r)
		validationhandlers.NewHandler(s.log).RegisterRoutes(r)
		marketplacehandlers.NewHandler(s.log).RegisterRoutes(r)

		if s.profileService != nil {
			profilehandlers.NewHandler(s.profileService, s.builder, s.log).RegisterRoutes(r)
		}
	})
}

// Start starts the HTTP server
func (s *Server) Start() error {
	s.log.Info().Int("port", s.port).Msg("Starting HTTP server")
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	s.log.Info().Msg("Shutting down HTTP server")
	return s.server.Shutdown(ctx)
}

// loggingMiddleware logs HTTP requests
func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		s.log.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Int("bytes", ww.BytesWritten()).
			Dur("duration_ms", time.Since(start)).
			Str("request_id", middleware.GetReqID(r.Context())).
			Msg("HTTP request")
	})
}
