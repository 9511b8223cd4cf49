package http

import (
	"net/http"

	"atelier/internal/core/application/usecases/commands"
	"atelier/internal/core/domain/model/access"

	"github.com/labstack/echo/v4"
)

// EnterManager handles POST /sessions/manager. Without a session header a
// new session is opened; its id is in the response.
func (s *Server) EnterManager(c echo.Context) error {
	return s.enterMode(c, access.ModeManager)
}

// EnterWorkstation handles POST /sessions/workstation.
func (s *Server) EnterWorkstation(c echo.Context) error {
	return s.enterMode(c, access.ModeWorkstation)
}

func (s *Server) enterMode(c echo.Context, mode access.Mode) error {
	var body CodeRequest
	if err := c.Bind(&body); err != nil {
		return badRequest(c, "Invalid request body")
	}
	id, err := sessionID(c, true)
	if err != nil {
		return writeError(c, err)
	}

	cmd, err := commands.NewEnterModeCommand(id, mode, body.Code)
	if err != nil {
		return writeError(c, err)
	}
	session, err := s.handlers.EnterMode.Handle(c.Request().Context(), cmd)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, sessionFromDomain(session))
}

// ExitMode handles DELETE /sessions/current.
func (s *Server) ExitMode(c echo.Context) error {
	id, err := sessionID(c, false)
	if err != nil {
		return writeError(c, err)
	}
	cmd, err := commands.NewExitModeCommand(id)
	if err != nil {
		return writeError(c, err)
	}
	session, err := s.handlers.ExitMode.Handle(c.Request().Context(), cmd)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, sessionFromDomain(session))
}

// Navigate handles POST /sessions/current/screen. The response carries the
// screen actually shown, which differs from the requested one when the
// mode does not allow it.
func (s *Server) Navigate(c echo.Context) error {
	var body ScreenRequest
	if err := c.Bind(&body); err != nil {
		return badRequest(c, "Invalid request body")
	}
	id, err := sessionID(c, false)
	if err != nil {
		return writeError(c, err)
	}
	cmd, err := commands.NewNavigateCommand(id, body.Screen)
	if err != nil {
		return writeError(c, err)
	}
	session, err := s.handlers.Navigate.Handle(c.Request().Context(), cmd)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, sessionFromDomain(session))
}
