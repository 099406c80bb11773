// Package web serves the upload UI: a stateless request handler around the
// record validator with no process-wide mutable state beyond configuration
// loaded once at start-up.
package web

import (
	"context"
	"embed"
	"html/template"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/gondr/validator/engine"
	"github.com/gondr/validator/internal/config"
)

//go:embed templates/*.html
var templateFS embed.FS

// Server hosts the upload form and validation report pages.
type Server struct {
	cfg       *config.Config
	log       zerolog.Logger
	validator *engine.Validator
	tmpl      *template.Template
	echo      *echo.Echo
}

// New creates a Server around an existing validator.
func New(cfg *config.Config, log zerolog.Logger, validator *engine.Validator) (*Server, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}

	s := &Server{
		cfg:       cfg,
		log:       log,
		validator: validator,
		tmpl:      tmpl,
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(echomw.Recover())
	e.Use(s.requestLogger)
	e.Use(echomw.BodyLimit(byteCount(cfg.MaxUploadBytes)))

	e.GET("/", s.handleIndex)
	e.POST("/", s.handleUpload)
	e.GET("/healthz", s.handleHealth)

	s.echo = e
	return s, nil
}

// Start begins serving on the configured address and blocks until shutdown.
func (s *Server) Start() error {
	return s.echo.Start(s.cfg.Addr())
}

// Shutdown drains in-flight requests and stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

// Echo exposes the underlying router for tests.
func (s *Server) Echo() *echo.Echo {
	return s.echo
}

// requestLogger tags every request with an ID and logs method, path, status
// and latency.
func (s *Server) requestLogger(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := uuid.NewString()
		c.Set("request_id", requestID)
		c.Response().Header().Set(echo.HeaderXRequestID, requestID)

		start := time.Now()
		err := next(c)

		s.log.Info().
			Str("request_id", requestID).
			Str("method", c.Request().Method).
			Str("path", c.Request().URL.Path).
			Int("status", c.Response().Status).
			Dur("latency", time.Since(start)).
			Msg("request")

		return err
	}
}

func (s *Server) handleHealth(c echo.Context) error {
	return c.JSON(200, map[string]string{"status": "ok"})
}

// byteCount renders a byte limit in the "<n>K"/"<n>M" form echo's body-limit
// middleware expects, falling back to an exact byte string.
func byteCount(n int64) string {
	const mb = 1 << 20
	if n >= mb && n%mb == 0 {
		return strconv.FormatInt(n/mb, 10) + "M"
	}
	const kb = 1 << 10
	if n >= kb && n%kb == 0 {
		return strconv.FormatInt(n/kb, 10) + "K"
	}
	return strconv.FormatInt(n, 10)
}
