package http

import (
	"net/http"

	"atelier/internal/adapters/out/document"
	"atelier/internal/core/application/usecases/commands"
	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
)

// CreateOrder handles POST /orders - registers a new order in PendingValidation.
func (s *Server) CreateOrder(c echo.Context) error {
	actor, err := s.actor(c)
	if err != nil {
		return writeError(c, err)
	}

	var body NewOrder
	if err = c.Bind(&body); err != nil {
		return badRequest(c, "Invalid request body")
	}
	orderID := kernel.NewUUID()
	if body.ID != "" {
		if orderID, err = kernel.UUIDFromString(body.ID); err != nil {
			return writeError(c, err)
		}
	}
	date, err := document.ParseDate(body.Date)
	if err != nil {
		return badRequest(c, "Invalid order date: "+body.Date)
	}

	cmd, err := commands.NewCreateOrderCommand(actor, orderID, body.ClientID, body.ModelID, date)
	if err != nil {
		return writeError(c, err)
	}
	if body.Price != nil {
		cmd = cmd.WithPrice(*body.Price)
	}
	cmd = cmd.WithNotes(body.Notes)

	ticket, err := s.handlers.CreateOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, CreatedOrder{ID: orderID.String(), TicketID: ticket.String()})
}

// SetStatus handles POST /orders/:id/status.
func (s *Server) SetStatus(c echo.Context) error {
	actor, err := s.actor(c)
	if err != nil {
		return writeError(c, err)
	}
	orderID, err := pathID(c)
	if err != nil {
		return writeError(c, err)
	}
	var body StatusRequest
	if err = c.Bind(&body); err != nil {
		return badRequest(c, "Invalid request body")
	}
	status, err := order.ParseStatus(body.Status)
	if err != nil {
		return writeError(c, err)
	}

	cmd, err := commands.NewSetStatusCommand(actor, orderID, status)
	if err != nil {
		return writeError(c, err)
	}
	if err = s.handlers.SetStatus.Handle(c.Request().Context(), cmd); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// AssignOrder handles POST /orders/:id/assign. An empty workstationId
// unassigns the order; order.WaitingRoomID sends it to the pool.
func (s *Server) AssignOrder(c echo.Context) error {
	actor, err := s.actor(c)
	if err != nil {
		return writeError(c, err)
	}
	orderID, err := pathID(c)
	if err != nil {
		return writeError(c, err)
	}
	var body AssignRequest
	if err = c.Bind(&body); err != nil {
		return badRequest(c, "Invalid request body")
	}

	cmd, err := commands.NewAssignOrderCommand(actor, orderID, body.WorkstationID)
	if err != nil {
		return writeError(c, err)
	}
	if err = s.handlers.AssignOrder.Handle(c.Request().Context(), cmd); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// ClaimOrder handles POST /orders/:id/claim. A declined claim is a 200 with
// claimed=false and the reason.
func (s *Server) ClaimOrder(c echo.Context) error {
	actor, err := s.actor(c)
	if err != nil {
		return writeError(c, err)
	}
	orderID, err := pathID(c)
	if err != nil {
		return writeError(c, err)
	}

	cmd, err := commands.NewClaimOrderCommand(actor, orderID)
	if err != nil {
		return writeError(c, err)
	}
	result, err := s.handlers.ClaimOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, claimResultFromDomain(result))
}

// SetPrice handles POST /orders/:id/price. A null price clears it.
func (s *Server) SetPrice(c echo.Context) error {
	actor, err := s.actor(c)
	if err != nil {
		return writeError(c, err)
	}
	orderID, err := pathID(c)
	if err != nil {
		return writeError(c, err)
	}
	var body PriceRequest
	if err = c.Bind(&body); err != nil {
		return badRequest(c, "Invalid request body")
	}

	cmd, err := commands.NewSetPriceCommand(actor, orderID, body.Price)
	if err != nil {
		return writeError(c, err)
	}
	if err = s.handlers.SetPrice.Handle(c.Request().Context(), cmd); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// CreateWorkstation handles POST /workstations. The generated access code is
// only returned here.
func (s *Server) CreateWorkstation(c echo.Context) error {
	actor, err := s.actor(c)
	if err != nil {
		return writeError(c, err)
	}
	var body NewWorkstation
	if err = c.Bind(&body); err != nil {
		return badRequest(c, "Invalid request body")
	}
	id := kernel.NewUUID()
	if body.ID != "" {
		if id, err = kernel.UUIDFromString(body.ID); err != nil {
			return writeError(c, err)
		}
	}

	cmd, err := commands.NewCreateWorkstationCommand(actor, id, body.Name)
	if err != nil {
		return writeError(c, err)
	}
	code, err := s.handlers.CreateWorkstation.Handle(c.Request().Context(), cmd)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, CreatedWorkstation{ID: id.String(), AccessCode: code.String()})
}
