package http

import (
	"io"
	"net/http"

	"atelier/internal/adapters/out/document"

	"github.com/labstack/echo/v4"
)

// maxDocumentSize bounds the body of PUT /atelier/:id/data.
const maxDocumentSize = 16 << 20

// GetAtelier handles GET /atelier/:id - the whole aggregate document.
func (s *Server) GetAtelier(c echo.Context) error {
	ctx := c.Request().Context()
	a, err := s.backend.Fetch(ctx, c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}
	body, err := document.Marshal(a)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSONBlob(http.StatusOK, body)
}

// PutAtelier handles PUT /atelier/:id/data - replaces the aggregate. The
// document is validated before it is stored.
func (s *Server) PutAtelier(c echo.Context) error {
	body, err := io.ReadAll(io.LimitReader(c.Request().Body, maxDocumentSize))
	if err != nil {
		return badRequest(c, "Invalid request body")
	}
	a, err := document.Unmarshal(body, c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}
	if a.ID() != c.Param("id") {
		return badRequest(c, "Document id does not match the path")
	}
	if err = s.backend.Replace(c.Request().Context(), a); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
