package http

import (
	"net/http"

	"atelier/internal/core/application/usecases/commands"
	"atelier/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

// GetKanban handles GET /kanban.
func (s *Server) GetKanban(c echo.Context) error {
	actor, err := s.actor(c)
	if err != nil {
		return writeError(c, err)
	}
	columns, err := s.handlers.Kanban.Handle(c.Request().Context(), queries.NewGetKanbanQuery(actor))
	if err != nil {
		return writeError(c, err)
	}

	response := make([]KanbanColumn, len(columns))
	for i, col := range columns {
		response[i] = KanbanColumn{
			Status: col.Status,
			Label:  col.Label,
			Orders: ordersFromViews(col.Orders),
		}
	}
	return c.JSON(http.StatusOK, response)
}

// GetPool handles GET /pool - orders waiting to be claimed.
func (s *Server) GetPool(c echo.Context) error {
	actor, err := s.actor(c)
	if err != nil {
		return writeError(c, err)
	}
	return s.orders(c, queries.NewGetPoolQuery(actor))
}

// GetArchives handles GET /archives - delivered orders.
func (s *Server) GetArchives(c echo.Context) error {
	actor, err := s.actor(c)
	if err != nil {
		return writeError(c, err)
	}
	return s.orders(c, queries.NewGetArchivesQuery(actor))
}

// GetWorkstationOrders handles GET /workstations/:id/orders.
func (s *Server) GetWorkstationOrders(c echo.Context) error {
	actor, err := s.actor(c)
	if err != nil {
		return writeError(c, err)
	}
	id, err := pathID(c)
	if err != nil {
		return writeError(c, err)
	}
	query, err := queries.NewGetWorkstationOrdersQuery(actor, id)
	if err != nil {
		return writeError(c, err)
	}
	return s.orders(c, query)
}

func (s *Server) orders(c echo.Context, query queries.GetOrdersQuery) error {
	views, err := s.handlers.Orders.Handle(c.Request().Context(), query)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, ordersFromViews(views))
}

// GetNotifications handles GET /notifications. ?unread=true keeps unread entries only.
func (s *Server) GetNotifications(c echo.Context) error {
	actor, err := s.actor(c)
	if err != nil {
		return writeError(c, err)
	}
	unreadOnly := c.QueryParam("unread") == "true"
	views, err := s.handlers.Notifications.Handle(
		c.Request().Context(),
		queries.NewGetNotificationsQuery(actor, unreadOnly),
	)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, notificationsFromViews(views))
}

// MarkNotificationRead handles POST /notifications/:id/read.
func (s *Server) MarkNotificationRead(c echo.Context) error {
	actor, err := s.actor(c)
	if err != nil {
		return writeError(c, err)
	}
	id, err := pathID(c)
	if err != nil {
		return writeError(c, err)
	}
	cmd, err := commands.NewMarkNotificationReadCommand(actor, id)
	if err != nil {
		return writeError(c, err)
	}
	return s.markRead(c, cmd)
}

// MarkAllNotificationsRead handles POST /notifications/read.
func (s *Server) MarkAllNotificationsRead(c echo.Context) error {
	actor, err := s.actor(c)
	if err != nil {
		return writeError(c, err)
	}
	return s.markRead(c, commands.NewMarkAllNotificationsReadCommand(actor))
}

func (s *Server) markRead(c echo.Context, cmd commands.MarkNotificationReadCommand) error {
	n, err := s.handlers.MarkRead.Handle(c.Request().Context(), cmd)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, MarkedRead{Marked: n})
}
