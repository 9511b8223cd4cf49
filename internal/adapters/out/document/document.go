// Package document converts the atelier aggregate to and from its persisted
// JSON form, the body of GET /atelier/{id} and PUT /atelier/{id}/data.
//
// Top-level keys the core does not own, and every field of clients and
// models, are carried through untouched so that a full replace never drops
// data written by other parts of the product.
package document

import (
	"encoding/json"
	"fmt"
	"time"

	"atelier/internal/core/domain/model/atelier"
	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/notification"
	"atelier/internal/core/domain/model/order"
	"atelier/internal/core/domain/model/workstation"
	"atelier/internal/pkg/errs"
)

const (
	keyID            = "id"
	keyName          = "name"
	keyManagerCode   = "managerCode"
	keySubscription  = "subscription"
	keyOrders        = "orders"
	keyWorkstations  = "workstations"
	keyClients       = "clients"
	keyModels        = "models"
	keyNotifications = "notifications"
)

var ownedKeys = map[string]bool{
	keyID:            true,
	keyName:          true,
	keyManagerCode:   true,
	keySubscription:  true,
	keyOrders:        true,
	keyWorkstations:  true,
	keyClients:       true,
	keyModels:        true,
	keyNotifications: true,
}

type SubscriptionDTO struct {
	Status    string     `json:"status"`
	ExpiresAt *time.Time `json:"expiresAt,omitempty"`
}

type OrderDTO struct {
	ID            string `json:"id"`
	TicketID      string `json:"ticketId"`
	ClientID      string `json:"clientId"`
	ModelID       string `json:"modelId"`
	Date          string `json:"date"`
	Status        string `json:"status"`
	WorkstationID string `json:"workstationId,omitempty"`
	Price         *int64 `json:"price,omitempty"`
	Notes         string `json:"notes,omitempty"`
}

type WorkstationDTO struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	AccessCode string `json:"accessCode"`
}

type NotificationDTO struct {
	ID      string `json:"id"`
	Message string `json:"message"`
	Date    string `json:"date"`
	Read    bool   `json:"read"`
	OrderID string `json:"orderId,omitempty"`
}

type referenceDTO struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ParseDate accepts a calendar date ("2024-05-10") or an RFC 3339 timestamp.
func ParseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.DateOnly, s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}

func formatDate(t time.Time) string {
	return t.Format(time.RFC3339Nano)
}

// Marshal encodes the aggregate.
func Marshal(a *atelier.Atelier) ([]byte, error) {
	if err := a.Validate(); err != nil {
		return nil, err
	}

	doc := make(map[string]json.RawMessage, len(a.Sections())+len(ownedKeys))
	for k, v := range a.Sections() {
		doc[k] = v
	}

	profile := a.Profile()
	sub := SubscriptionDTO{Status: string(profile.Subscription().Status())}
	if exp, ok := profile.Subscription().ExpiresAt(); ok {
		sub.ExpiresAt = &exp
	}

	orders := make([]OrderDTO, 0, len(a.Orders()))
	for _, o := range a.Orders() {
		orders = append(orders, orderFromDomain(o))
	}

	workstations := make([]WorkstationDTO, 0, len(a.Workstations()))
	for _, ws := range a.Workstations() {
		workstations = append(workstations, WorkstationDTO{
			ID:         ws.ID().String(),
			Name:       ws.Name(),
			AccessCode: ws.AccessCode().String(),
		})
	}

	notifications := make([]NotificationDTO, 0, a.Notifications().Len())
	for _, n := range a.Notifications().All() {
		notifications = append(notifications, notificationFromDomain(n))
	}

	fields := map[string]any{
		keyID:            a.ID(),
		keyName:          profile.Name(),
		keyManagerCode:   profile.ManagerCode(),
		keySubscription:  sub,
		keyOrders:        orders,
		keyWorkstations:  workstations,
		keyClients:       referencesFromDomain(a.Clients()),
		keyModels:        referencesFromDomain(a.Models()),
		keyNotifications: notifications,
	}
	for k, v := range fields {
		raw, err := json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("encode %s: %w", k, err)
		}
		doc[k] = raw
	}

	return json.Marshal(doc)
}

// Unmarshal decodes a document. id is used when the document carries none.
func Unmarshal(data []byte, id string) (*atelier.Atelier, error) {
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("atelier document", err)
	}

	var (
		docID, name, managerCode string
		sub                      SubscriptionDTO
		orders                   []OrderDTO
		workstations             []WorkstationDTO
		clients, models          []json.RawMessage
		notifications            []NotificationDTO
	)
	targets := map[string]any{
		keyID:            &docID,
		keyName:          &name,
		keyManagerCode:   &managerCode,
		keySubscription:  &sub,
		keyOrders:        &orders,
		keyWorkstations:  &workstations,
		keyClients:       &clients,
		keyModels:        &models,
		keyNotifications: &notifications,
	}
	sections := make(map[string][]byte)
	for k, raw := range doc {
		target, owned := targets[k]
		if !owned {
			sections[k] = raw
			continue
		}
		if string(raw) == "null" {
			continue
		}
		if err := json.Unmarshal(raw, target); err != nil {
			return nil, errs.NewValueIsInvalidErrorWithCause(k, err)
		}
	}
	if docID == "" {
		docID = id
	}

	profile, err := profileToDomain(name, managerCode, sub)
	if err != nil {
		return nil, err
	}

	domainOrders := make([]*order.Order, 0, len(orders))
	for _, dto := range orders {
		o, orderErr := orderToDomain(dto)
		if orderErr != nil {
			return nil, orderErr
		}
		domainOrders = append(domainOrders, o)
	}

	domainWorkstations := make([]*workstation.Workstation, 0, len(workstations))
	for _, dto := range workstations {
		ws, wsErr := workstationToDomain(dto)
		if wsErr != nil {
			return nil, wsErr
		}
		domainWorkstations = append(domainWorkstations, ws)
	}

	domainClients, err := referencesToDomain(clients)
	if err != nil {
		return nil, err
	}
	domainModels, err := referencesToDomain(models)
	if err != nil {
		return nil, err
	}

	entries := make([]*notification.Notification, 0, len(notifications))
	for _, dto := range notifications {
		n, nErr := notificationToDomain(dto)
		if nErr != nil {
			return nil, nErr
		}
		entries = append(entries, n)
	}
	log, err := notification.NewLog(entries)
	if err != nil {
		return nil, err
	}

	return atelier.RestoreAtelier(
		docID,
		profile,
		domainOrders,
		domainWorkstations,
		domainClients,
		domainModels,
		log,
		sections,
	)
}

func profileToDomain(name, managerCode string, dto SubscriptionDTO) (atelier.Profile, error) {
	status, err := atelier.ParseSubscriptionStatus(dto.Status)
	if err != nil {
		return atelier.Profile{}, err
	}
	sub, err := atelier.NewSubscription(status, dto.ExpiresAt)
	if err != nil {
		return atelier.Profile{}, err
	}
	return atelier.NewProfile(name, managerCode, sub), nil
}

func orderFromDomain(o *order.Order) OrderDTO {
	dto := OrderDTO{
		ID:            o.ID().String(),
		TicketID:      o.TicketID().String(),
		ClientID:      o.ClientID(),
		ModelID:       o.ModelID(),
		Date:          formatDate(o.Date()),
		Status:        o.Status().Code(),
		WorkstationID: o.Routing().String(),
		Notes:         o.Notes(),
	}
	if p, ok := o.Price(); ok {
		dto.Price = &p
	}
	return dto
}

func orderToDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromString(dto.ID)
	if err != nil {
		return nil, err
	}
	ticket, err := kernel.ParseTicketID(dto.TicketID)
	if err != nil {
		return nil, err
	}
	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}
	routing, err := order.ParseRouting(dto.WorkstationID)
	if err != nil {
		return nil, err
	}
	date, err := ParseDate(dto.Date)
	if err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("order date", err)
	}
	return order.RestoreOrder(id, ticket, dto.ClientID, dto.ModelID, date, status, routing, dto.Price, dto.Notes)
}

func workstationToDomain(dto WorkstationDTO) (*workstation.Workstation, error) {
	id, err := kernel.UUIDFromString(dto.ID)
	if err != nil {
		return nil, err
	}
	code, err := kernel.ParseAccessCode(dto.AccessCode)
	if err != nil {
		return nil, err
	}
	return workstation.RestoreWorkstation(id, dto.Name, code)
}

func notificationFromDomain(n *notification.Notification) NotificationDTO {
	dto := NotificationDTO{
		ID:      n.ID().String(),
		Message: n.Message(),
		Date:    formatDate(n.Date()),
		Read:    n.IsRead(),
	}
	if orderID, ok := n.OrderID(); ok {
		dto.OrderID = orderID.String()
	}
	return dto
}

func notificationToDomain(dto NotificationDTO) (*notification.Notification, error) {
	id, err := kernel.UUIDFromString(dto.ID)
	if err != nil {
		return nil, err
	}
	var orderID *kernel.UUID
	if dto.OrderID != "" {
		parsed, parseErr := kernel.UUIDFromString(dto.OrderID)
		if parseErr != nil {
			return nil, parseErr
		}
		orderID = &parsed
	}
	date, err := ParseDate(dto.Date)
	if err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("notification date", err)
	}
	return notification.RestoreNotification(id, dto.Message, date, dto.Read, orderID)
}

func referencesFromDomain(refs []atelier.Reference) []json.RawMessage {
	out := make([]json.RawMessage, 0, len(refs))
	for _, r := range refs {
		if doc := r.Document(); doc != nil {
			out = append(out, doc)
			continue
		}
		raw, _ := json.Marshal(referenceDTO{ID: r.ID(), Name: r.Name()})
		out = append(out, raw)
	}
	return out
}

func referencesToDomain(raws []json.RawMessage) ([]atelier.Reference, error) {
	refs := make([]atelier.Reference, 0, len(raws))
	for _, raw := range raws {
		var dto referenceDTO
		if err := json.Unmarshal(raw, &dto); err != nil {
			return nil, errs.NewValueIsInvalidErrorWithCause("reference", err)
		}
		r, err := atelier.NewReference(dto.ID, dto.Name, raw)
		if err != nil {
			return nil, err
		}
		refs = append(refs, r)
	}
	return refs, nil
}
