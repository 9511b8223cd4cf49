package http

import (
	"time"

	"atelier/internal/core/application/usecases/queries"
	"atelier/internal/core/domain/model/access"
	"atelier/internal/core/domain/services"
)

// Error is the body of every failed request.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type CodeRequest struct {
	Code string `json:"code"`
}

type ScreenRequest struct {
	Screen string `json:"screen"`
}

type NewOrder struct {
	ID       string `json:"id,omitempty"`
	ClientID string `json:"clientId"`
	ModelID  string `json:"modelId"`
	// Date is a calendar date (2006-01-02) or an RFC 3339 timestamp.
	Date  string `json:"date"`
	Price *int64 `json:"price,omitempty"`
	Notes string `json:"notes,omitempty"`
}

type CreatedOrder struct {
	ID       string `json:"id"`
	TicketID string `json:"ticketId"`
}

type StatusRequest struct {
	Status string `json:"status"`
}

type AssignRequest struct {
	WorkstationID string `json:"workstationId"`
}

type PriceRequest struct {
	Price *int64 `json:"price"`
}

type NewWorkstation struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"name"`
}

type CreatedWorkstation struct {
	ID         string `json:"id"`
	AccessCode string `json:"accessCode"`
}

type ClaimResult struct {
	Claimed bool   `json:"claimed"`
	Reason  string `json:"reason,omitempty"`
}

type MarkedRead struct {
	Marked int `json:"marked"`
}

type Session struct {
	ID            string `json:"id"`
	Mode          string `json:"mode"`
	Screen        string `json:"screen"`
	WorkstationID string `json:"workstationId,omitempty"`
}

type Order struct {
	ID              string    `json:"id"`
	TicketID        string    `json:"ticketId"`
	ClientID        string    `json:"clientId"`
	ClientName      string    `json:"clientName,omitempty"`
	ModelID         string    `json:"modelId,omitempty"`
	Date            time.Time `json:"date"`
	Status          string    `json:"status"`
	StatusLabel     string    `json:"statusLabel"`
	WorkstationID   string    `json:"workstationId,omitempty"`
	WorkstationName string    `json:"workstationName,omitempty"`
	Price           *int64    `json:"price,omitempty"`
	Notes           string    `json:"notes,omitempty"`
}

type KanbanColumn struct {
	Status string  `json:"status"`
	Label  string  `json:"label"`
	Orders []Order `json:"orders"`
}

type Notification struct {
	ID      string    `json:"id"`
	Message string    `json:"message"`
	Date    time.Time `json:"date"`
	Read    bool      `json:"read"`
	OrderID string    `json:"orderId,omitempty"`
}

func sessionFromDomain(s *access.Session) Session {
	out := Session{
		ID:     s.ID().String(),
		Mode:   s.Mode().String(),
		Screen: string(s.Screen()),
	}
	if id, ok := s.Actor().WorkstationID(); ok {
		out.WorkstationID = id.String()
	}
	return out
}

func claimResultFromDomain(r services.ClaimResult) ClaimResult {
	return ClaimResult{Claimed: r.Claimed, Reason: string(r.Reason)}
}

func orderFromView(v queries.OrderView) Order {
	return Order{
		ID:              v.ID,
		TicketID:        v.TicketID,
		ClientID:        v.ClientID,
		ClientName:      v.ClientName,
		ModelID:         v.ModelID,
		Date:            v.Date,
		Status:          v.Status,
		StatusLabel:     v.StatusLabel,
		WorkstationID:   v.WorkstationID,
		WorkstationName: v.WorkstationName,
		Price:           v.Price,
		Notes:           v.Notes,
	}
}

func ordersFromViews(views []queries.OrderView) []Order {
	out := make([]Order, len(views))
	for i, v := range views {
		out[i] = orderFromView(v)
	}
	return out
}

func notificationsFromViews(views []queries.NotificationView) []Notification {
	out := make([]Notification, len(views))
	for i, v := range views {
		out[i] = Notification{
			ID:      v.ID,
			Message: v.Message,
			Date:    v.Date,
			Read:    v.Read,
			OrderID: v.OrderID,
		}
	}
	return out
}
