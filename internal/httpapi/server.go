// Package httpapi exposes a drawing session's tool registry over HTTP.
package httpapi

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/recover"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/draftkit/draftkit"
	"github.com/draftkit/draftkit/document"
	"github.com/draftkit/draftkit/geometry"
	"github.com/draftkit/draftkit/spatial"
)

// Server wraps a fiber application serving tool dispatch for one session.
type Server struct {
	app     *fiber.App
	session *draftkit.Session
	log     zerolog.Logger
}

// New builds the HTTP server around an open session.
func New(session *draftkit.Session, log zerolog.Logger) *Server {
	app := fiber.New(fiber.Config{
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		AppName:      "draftkit",
	})

	s := &Server{app: app, session: session, log: log}

	app.Use(recover.New())
	app.Use(s.requestLogger)

	app.Get("/health/live", func(c fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "alive"})
	})
	app.Get("/health/ready", func(c fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ready"})
	})

	app.Get("/summary", s.handleSummary)
	app.Get("/tools", s.handleListTools)
	app.Post("/tools/:name", s.handleDispatch)

	return s
}

// Listen serves requests on addr until the listener fails.
func (s *Server) Listen(addr string) error {
	return s.app.Listen(addr)
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

// requestLogger tags each request with an id and logs its outcome.
func (s *Server) requestLogger(c fiber.Ctx) error {
	reqID := uuid.NewString()
	c.Set("X-Request-Id", reqID)

	start := time.Now()
	err := c.Next()

	s.log.Info().
		Str("request_id", reqID).
		Str("method", c.Method()).
		Str("path", c.Path()).
		Int("status", c.Response().StatusCode()).
		Dur("latency", time.Since(start)).
		Msg("request")
	return err
}

func (s *Server) handleSummary(c fiber.Ctx) error {
	return c.JSON(s.session.Summary())
}

type toolListing struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	InputSchema map[string]any `json:"input_schema"`
}

func (s *Server) handleListTools(c fiber.Ctx) error {
	defs := s.session.Tools().Definitions()
	out := make([]toolListing, len(defs))
	for i, def := range defs {
		out[i] = toolListing{
			Name:        def.Name,
			Description: def.Description,
			InputSchema: def.InputSchema,
		}
	}
	return c.JSON(fiber.Map{"tools": out})
}

func (s *Server) handleDispatch(c fiber.Ctx) error {
	name := c.Params("name")
	res, err := s.session.Tools().Dispatch(name, c.Body())
	if err != nil {
		return s.toolError(c, err)
	}
	return c.JSON(fiber.Map{"result": res})
}

// toolError maps domain errors onto HTTP status codes. Unknown errors
// become a 500 without leaking internals.
func (s *Server) toolError(c fiber.Ctx, err error) error {
	var (
		entityNotFound *document.EntityNotFoundError
		layerNotFound  *document.LayerNotFoundError
		invalidParam   *spatial.InvalidParameterError
		notClosed      *geometry.NotClosedError
		wrongKind      *document.WrongEntityKindError
	)
	switch {
	case errors.As(err, &entityNotFound), errors.As(err, &layerNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	case errors.As(err, &invalidParam):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	case errors.As(err, &notClosed), errors.As(err, &wrongKind):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": err.Error()})
	}
	s.log.Error().Err(err).Msg("tool dispatch failed")
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal error"})
}
