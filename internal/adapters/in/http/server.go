// Package http exposes the atelier over a JSON API built on echo.
//
// Every request runs as the actor of the session named by the X-Session-ID
// header. A request without the header, or with an unknown session, runs in
// client mode.
package http

import (
	"errors"
	"net/http"

	"atelier/internal/core/application/usecases/commands"
	"atelier/internal/core/application/usecases/queries"
	"atelier/internal/core/domain/model/access"
	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/ports"
	"atelier/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// SessionHeader carries the session id of the calling device.
const SessionHeader = "X-Session-ID"

var ErrSessionHeaderIsRequired = errs.NewValueIsRequiredError(SessionHeader)

// Handlers groups the use cases served by the API.
type Handlers struct {
	// Command handlers
	CreateOrder       commands.CreateOrderCommandHandler
	SetStatus         commands.SetStatusCommandHandler
	SetPrice          commands.SetPriceCommandHandler
	AssignOrder       commands.AssignOrderCommandHandler
	ClaimOrder        commands.ClaimOrderCommandHandler
	CreateWorkstation commands.CreateWorkstationCommandHandler
	MarkRead          commands.MarkNotificationReadCommandHandler
	EnterMode         commands.EnterModeCommandHandler
	ExitMode          commands.ExitModeCommandHandler
	Navigate          commands.NavigateCommandHandler

	// Query handlers
	Kanban        queries.GetKanbanQueryHandler
	Orders        queries.GetOrdersQueryHandler
	Notifications queries.GetNotificationsQueryHandler
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	handlers Handlers
	sessions ports.SessionRepository
	// backend serves the aggregate store routes; nil disables them
	backend ports.AtelierStore
}

// NewServer creates a new HTTP server. backend may be nil.
func NewServer(handlers Handlers, sessions ports.SessionRepository, backend ports.AtelierStore) *Server {
	return &Server{
		handlers: handlers,
		sessions: sessions,
		backend:  backend,
	}
}

// Register mounts the routes on e.
func (s *Server) Register(e *echo.Echo) {
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	e.POST("/sessions/manager", s.EnterManager)
	e.POST("/sessions/workstation", s.EnterWorkstation)
	e.DELETE("/sessions/current", s.ExitMode)
	e.POST("/sessions/current/screen", s.Navigate)

	e.POST("/orders", s.CreateOrder)
	e.POST("/orders/:id/status", s.SetStatus)
	e.POST("/orders/:id/assign", s.AssignOrder)
	e.POST("/orders/:id/claim", s.ClaimOrder)
	e.POST("/orders/:id/price", s.SetPrice)

	e.POST("/workstations", s.CreateWorkstation)
	e.GET("/workstations/:id/orders", s.GetWorkstationOrders)

	e.GET("/kanban", s.GetKanban)
	e.GET("/pool", s.GetPool)
	e.GET("/archives", s.GetArchives)

	e.GET("/notifications", s.GetNotifications)
	e.POST("/notifications/read", s.MarkAllNotificationsRead)
	e.POST("/notifications/:id/read", s.MarkNotificationRead)

	if s.backend != nil {
		e.GET("/atelier/:id", s.GetAtelier)
		e.PUT("/atelier/:id/data", s.PutAtelier)
	}
}

// actor resolves the calling actor from the session header.
func (s *Server) actor(c echo.Context) (access.Actor, error) {
	raw := c.Request().Header.Get(SessionHeader)
	if raw == "" {
		return access.Client(), nil
	}
	id, err := kernel.UUIDFromString(raw)
	if err != nil {
		return access.Actor{}, err
	}
	session, err := s.sessions.Get(c.Request().Context(), id)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return access.Client(), nil
	}
	if err != nil {
		return access.Actor{}, err
	}
	return session.Actor(), nil
}

// sessionID returns the session header, or a fresh id when absent and
// allowNew is set.
func sessionID(c echo.Context, allowNew bool) (kernel.UUID, error) {
	raw := c.Request().Header.Get(SessionHeader)
	if raw == "" {
		if allowNew {
			return kernel.NewUUID(), nil
		}
		return kernel.UUID{}, ErrSessionHeaderIsRequired
	}
	return kernel.UUIDFromString(raw)
}

func pathID(c echo.Context) (kernel.UUID, error) {
	return kernel.UUIDFromString(c.Param("id"))
}

// writeError maps domain errors onto HTTP status codes.
func writeError(c echo.Context, err error) error {
	code := http.StatusInternalServerError
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
	case errors.Is(err, errs.ErrUnauthorized):
		code = http.StatusForbidden
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		code = http.StatusBadRequest
	}

	message := err.Error()
	if code == http.StatusInternalServerError {
		c.Logger().Error(err)
		message = http.StatusText(code)
	}
	return c.JSON(code, Error{Code: code, Message: message})
}

func badRequest(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, Error{Code: http.StatusBadRequest, Message: message})
}
