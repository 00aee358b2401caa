package server

import (
	"time"

	"copilot/internal/cache"
	"copilot/internal/config"
	"copilot/internal/database"
	"copilot/internal/handlers"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// Server represents the application server
type Server struct {
	echo   *echo.Echo
	db     *sqlx.DB
	store  *database.Store
	config *config.Config
	logger zerolog.Logger
	cache  *cache.Cache
}

// New creates a new server instance
func New(cfg *config.Config, db *sqlx.DB, logger zerolog.Logger) *Server {
	return &Server{
		config: cfg,
		db:     db,
		store:  database.NewStore(db, logger, cfg.SnapshotTimeout),
		logger: logger,
		cache:  cache.New(),
	}
}

// requestIDMiddleware tags every request with an id, reusing the caller's
// X-Request-ID when present.
func (s *Server) requestIDMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id := c.Request().Header.Get(echo.HeaderXRequestID)
			if id == "" {
				id = uuid.NewString()
			}
			c.Set("request_id", id)
			c.Response().Header().Set(echo.HeaderXRequestID, id)
			return next(c)
		}
	}
}

// zerologMiddleware creates a zerolog-based logging middleware for Echo
func (s *Server) zerologMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)

			req := c.Request()
			res := c.Response()
			requestID, _ := c.Get("request_id").(string)

			s.logger.Info().
				Str("method", req.Method).
				Str("uri", req.RequestURI).
				Str("remote_ip", c.RealIP()).
				Str("request_id", requestID).
				Int("status", res.Status).
				Int64("latency_ms", time.Since(start).Milliseconds()).
				Str("user_agent", req.UserAgent()).
				Msg("HTTP request")

			return err
		}
	}
}

// Initialize sets up the Echo framework with middleware and routes
func (s *Server) Initialize() {
	s.echo = echo.New()

	s.echo.Use(s.requestIDMiddleware())
	s.echo.Use(s.zerologMiddleware())
	s.echo.Use(middleware.Recover())
	s.echo.Use(middleware.CORS())

	s.echo.HideBanner = true

	s.setupRoutes()
}

// setupRoutes configures all the application routes
func (s *Server) setupRoutes() {
	api := s.echo.Group("/api")

	// Swagger documentation
	s.echo.GET("/swagger/*", echoSwagger.WrapHandler)

	// Health endpoints (keep at root level for monitoring)
	s.echo.GET("/healthz", handlers.HealthHandler(s.config.Version))
	s.echo.GET("/healthz/db", handlers.DBHealthHandler(s.db))

	// Report catalog
	api.GET("/reports", handlers.ReportsHandler(s.store, s.cache, s.config.ReportCacheTTL))
	api.GET("/reports/dashboard", handlers.DashboardHandler(s.store, s.cache, s.config.ReportCacheTTL))

	// Raw data for the contact-list and chat views
	api.GET("/appointments", handlers.AppointmentsHandler(s.store))
	api.GET("/contacts", handlers.ContactsHandler(s.store))
	api.GET("/messages", handlers.MessagesHandler(s.store))
}

// Start starts the HTTP server
func (s *Server) Start() error {
	s.logger.Info().Str("port", s.config.Port).Msg("Server starting")
	return s.echo.Start(":" + s.config.Port)
}
