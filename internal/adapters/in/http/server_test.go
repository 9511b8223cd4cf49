package http_test

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	httpapi "atelier/internal/adapters/in/http"
	"atelier/internal/adapters/out/document"
	"atelier/internal/adapters/out/memory"
	"atelier/internal/core/application/usecases/commands"
	"atelier/internal/core/application/usecases/queries"
	"atelier/internal/core/domain/model/atelier"
	"atelier/internal/core/domain/model/order"
	"atelier/internal/core/domain/services"
	"atelier/internal/pkg/clock"
	"atelier/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type uowFactory struct{ f *memory.UnitOfWorkFactory }

func (u uowFactory) Create() commands.UoW { return u.f.Create() }

type workstationUoWFactory struct{ f *memory.UnitOfWorkFactory }

func (u workstationUoWFactory) Create() commands.WorkstationUoW { return u.f.Create() }

type notificationUoWFactory struct{ f *memory.UnitOfWorkFactory }

func (u notificationUoWFactory) Create() commands.NotificationUoW { return u.f.Create() }

type accessUoWFactory struct{ f *memory.UnitOfWorkFactory }

func (u accessUoWFactory) Create() commands.AccessUoW { return u.f.Create() }

type mapStore struct {
	mu   sync.Mutex
	data map[string]*atelier.Atelier
}

func (s *mapStore) Fetch(_ context.Context, id string) (*atelier.Atelier, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.data[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("atelierId", id)
	}
	return a.Clone(), nil
}

func (s *mapStore) Replace(_ context.Context, a *atelier.Atelier) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[a.ID()] = a.Clone()
	return nil
}

type api struct {
	e       *echo.Echo
	backend *mapStore
}

func newAPI(t *testing.T) *api {
	t.Helper()

	sub, err := atelier.NewSubscription(atelier.SubscriptionActive, nil)
	require.NoError(t, err)
	client, err := atelier.NewReference("client-1", "Aminata Diallo", nil)
	require.NoError(t, err)
	a, err := atelier.RestoreAtelier(
		"atelier-1",
		atelier.NewProfile("Couture Awa", "1234", sub),
		nil, nil, []atelier.Reference{client}, nil, nil, nil,
	)
	require.NoError(t, err)

	ledger := memory.NewLedger(nil)
	require.NoError(t, ledger.Load(t.Context(), a))
	f := memory.NewUnitOfWorkFactory(ledger)
	c := clock.NewManual(time.Date(2026, 10, 14, 9, 0, 0, 0, time.UTC))
	emitter := services.NewNotificationEmitter(c)
	sessions := memory.NewSessionRepository()

	handlers := httpapi.Handlers{
		CreateOrder:       commands.NewCreateOrderCommandHandler(uowFactory{f}),
		SetStatus:         commands.NewSetStatusCommandHandler(uowFactory{f}, services.NewPipeline(nil), emitter),
		SetPrice:          commands.NewSetPriceCommandHandler(uowFactory{f}),
		AssignOrder:       commands.NewAssignOrderCommandHandler(uowFactory{f}, emitter),
		ClaimOrder:        commands.NewClaimOrderCommandHandler(uowFactory{f}, emitter),
		CreateWorkstation: commands.NewCreateWorkstationCommandHandler(workstationUoWFactory{f}),
		MarkRead:          commands.NewMarkNotificationReadCommandHandler(notificationUoWFactory{f}),
		EnterMode:         commands.NewEnterModeCommandHandler(accessUoWFactory{f}, sessions, c),
		ExitMode:          commands.NewExitModeCommandHandler(sessions),
		Navigate:          commands.NewNavigateCommandHandler(accessUoWFactory{f}, sessions, c),
		Kanban:            queries.NewGetKanbanQueryHandler(ledger),
		Orders:            queries.NewGetOrdersQueryHandler(ledger, c),
		Notifications:     queries.NewGetNotificationsQueryHandler(ledger),
	}

	backend := &mapStore{data: map[string]*atelier.Atelier{}}
	e := echo.New()
	httpapi.NewServer(handlers, sessions, backend).Register(e)
	return &api{e: e, backend: backend}
}

func (a *api) do(t *testing.T, method, path, sessionID, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if sessionID != "" {
		req.Header.Set(httpapi.SessionHeader, sessionID)
	}
	rec := httptest.NewRecorder()
	a.e.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func (a *api) enter(t *testing.T, mode, code string) httpapi.Session {
	t.Helper()
	rec := a.do(t, http.MethodPost, "/sessions/"+mode, "", `{"code":"`+code+`"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	return decode[httpapi.Session](t, rec)
}

func TestServer_Health(t *testing.T) {
	a := newAPI(t)
	rec := a.do(t, http.MethodGet, "/health", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Healthy", rec.Body.String())
}

func TestServer_PoolThenClaim(t *testing.T) {
	a := newAPI(t)

	manager := a.enter(t, "manager", "1234")
	assert.Equal(t, "manager", manager.Mode)
	assert.Equal(t, "dashboard", manager.Screen)

	rec := a.do(t, http.MethodPost, "/orders", manager.ID,
		`{"clientId":"client-1","modelId":"model-1","date":"2026-11-02","price":30000}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	created := decode[httpapi.CreatedOrder](t, rec)
	assert.NotEmpty(t, created.TicketID)

	rec = a.do(t, http.MethodPost, "/workstations", manager.ID, `{"name":"Atelier A"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	ws := decode[httpapi.CreatedWorkstation](t, rec)

	rec = a.do(t, http.MethodPost, "/orders/"+created.ID+"/assign", manager.ID,
		`{"workstationId":"`+order.WaitingRoomID+`"}`)
	require.Equal(t, http.StatusNoContent, rec.Code, rec.Body.String())

	rec = a.do(t, http.MethodGet, "/pool", manager.ID, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]httpapi.Order](t, rec), 1)

	station := a.enter(t, "workstation", strings.ToLower(ws.AccessCode))
	assert.Equal(t, "workstation", station.Mode)
	assert.Equal(t, ws.ID, station.WorkstationID)

	rec = a.do(t, http.MethodPost, "/orders/"+created.ID+"/claim", station.ID, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.True(t, decode[httpapi.ClaimResult](t, rec).Claimed)

	rec = a.do(t, http.MethodPost, "/orders/"+created.ID+"/claim", station.ID, "")
	require.Equal(t, http.StatusOK, rec.Code)
	declined := decode[httpapi.ClaimResult](t, rec)
	assert.False(t, declined.Claimed)
	assert.Equal(t, string(services.DeclineNotInPool), declined.Reason)

	rec = a.do(t, http.MethodGet, "/workstations/"+ws.ID+"/orders", station.ID, "")
	require.Equal(t, http.StatusOK, rec.Code)
	own := decode[[]httpapi.Order](t, rec)
	require.Len(t, own, 1)
	assert.Equal(t, order.Sewing.Code(), own[0].Status)
	assert.Equal(t, "Atelier A", own[0].WorkstationName)

	rec = a.do(t, http.MethodGet, "/notifications?unread=true", manager.ID, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]httpapi.Notification](t, rec), 2)

	rec = a.do(t, http.MethodPost, "/notifications/read", manager.ID, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 2, decode[httpapi.MarkedRead](t, rec).Marked)
}

func TestServer_StatusAndKanban(t *testing.T) {
	a := newAPI(t)
	manager := a.enter(t, "manager", "1234")

	rec := a.do(t, http.MethodPost, "/orders", manager.ID,
		`{"clientId":"client-1","date":"2026-11-02T10:00:00Z"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	created := decode[httpapi.CreatedOrder](t, rec)

	rec = a.do(t, http.MethodPost, "/orders/"+created.ID+"/status", manager.ID, `{"status":"delivered"}`)
	require.Equal(t, http.StatusNoContent, rec.Code, rec.Body.String())

	rec = a.do(t, http.MethodGet, "/kanban", manager.ID, "")
	require.Equal(t, http.StatusOK, rec.Code)
	for _, col := range decode[[]httpapi.KanbanColumn](t, rec) {
		assert.Empty(t, col.Orders, col.Status)
	}

	rec = a.do(t, http.MethodGet, "/archives", manager.ID, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]httpapi.Order](t, rec), 1)

	rec = a.do(t, http.MethodGet, "/notifications", manager.ID, "")
	require.Equal(t, http.StatusOK, rec.Code)
	notes := decode[[]httpapi.Notification](t, rec)
	require.Len(t, notes, 1)
	assert.Contains(t, notes[0].Message, "maintenant Livré")
}

func TestServer_ErrorMapping(t *testing.T) {
	a := newAPI(t)
	manager := a.enter(t, "manager", "1234")

	tests := []struct {
		name      string
		method    string
		path      string
		sessionID string
		body      string
		want      int
	}{
		{"client cannot create orders", http.MethodPost, "/orders", "",
			`{"clientId":"client-1","date":"2026-11-02"}`, http.StatusForbidden},
		{"wrong manager code", http.MethodPost, "/sessions/manager", "", `{"code":"0000"}`, http.StatusForbidden},
		{"unknown order", http.MethodPost, "/orders/0b7c2c80-8e0c-4a8e-9d3c-3f1f3e1a2b4c/status", manager.ID,
			`{"status":"sewing"}`, http.StatusNotFound},
		{"invalid order id", http.MethodPost, "/orders/not-a-uuid/claim", manager.ID, "", http.StatusBadRequest},
		{"unknown status", http.MethodPost, "/orders/0b7c2c80-8e0c-4a8e-9d3c-3f1f3e1a2b4c/status", manager.ID,
			`{"status":"lost"}`, http.StatusBadRequest},
		{"bad date", http.MethodPost, "/orders", manager.ID, `{"clientId":"client-1","date":"soon"}`, http.StatusBadRequest},
		{"missing session header", http.MethodDelete, "/sessions/current", "", "", http.StatusBadRequest},
		{"workstation name required", http.MethodPost, "/workstations", manager.ID, `{"name":" "}`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := a.do(t, tt.method, tt.path, tt.sessionID, tt.body)
			assert.Equal(t, tt.want, rec.Code, rec.Body.String())
			body := decode[httpapi.Error](t, rec)
			assert.Equal(t, tt.want, body.Code)
			assert.NotEmpty(t, body.Message)
		})
	}
}

func TestServer_SessionLifecycle(t *testing.T) {
	a := newAPI(t)
	manager := a.enter(t, "manager", "1234")

	rec := a.do(t, http.MethodPost, "/sessions/current/screen", manager.ID, `{"screen":"kanban"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "kanban", decode[httpapi.Session](t, rec).Screen)

	rec = a.do(t, http.MethodDelete, "/sessions/current", manager.ID, "")
	require.Equal(t, http.StatusOK, rec.Code)
	exited := decode[httpapi.Session](t, rec)
	assert.Equal(t, "client", exited.Mode)
	assert.Equal(t, "accueil", exited.Screen)

	rec = a.do(t, http.MethodPost, "/sessions/current/screen", manager.ID, `{"screen":"kanban"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "accueil", decode[httpapi.Session](t, rec).Screen)

	rec = a.do(t, http.MethodGet, "/kanban", manager.ID, "")
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestServer_BackendRoutes(t *testing.T) {
	a := newAPI(t)

	rec := a.do(t, http.MethodGet, "/atelier/atelier-9", "", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	seed, err := atelier.NewAtelier("atelier-9", atelier.NewProfile("Maison Ndiaye", "9999", atelier.Subscription{}))
	require.NoError(t, err)
	body, err := document.Marshal(seed)
	require.NoError(t, err)

	rec = a.do(t, http.MethodPut, "/atelier/atelier-9/data", "", string(body))
	require.Equal(t, http.StatusNoContent, rec.Code, rec.Body.String())

	rec = a.do(t, http.MethodGet, "/atelier/atelier-9", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	got, err := document.Unmarshal(rec.Body.Bytes(), "atelier-9")
	require.NoError(t, err)
	assert.Equal(t, "Maison Ndiaye", got.Profile().Name())

	rec = a.do(t, http.MethodPut, "/atelier/atelier-9/data", "", `{"orders":"nope"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = a.do(t, http.MethodPut, "/atelier/atelier-3/data", "", string(body))
	assert.Equal(t, http.StatusBadRequest, rec.Code, "id mismatch")
}

func TestRequestLogger(t *testing.T) {
	var buf strings.Builder
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	e := echo.New()
	e.Use(httpapi.RequestLogger(logger))
	e.GET("/ping", func(c echo.Context) error {
		return c.String(http.StatusOK, "pong")
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, buf.String(), "path=/ping")
	assert.Contains(t, buf.String(), "status=200")
	assert.Contains(t, buf.String(), "component=http")
}

func TestRequestLogger_LogsHandlerErrors(t *testing.T) {
	var buf strings.Builder
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	e := echo.New()
	e.Use(httpapi.RequestLogger(logger))
	e.GET("/orders/:id", func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusNotFound, "missing")
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/orders/42", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, buf.String(), "level=WARN")
	assert.Contains(t, buf.String(), "path=/orders/42")
	assert.Contains(t, buf.String(), "route=/orders/:id")
	assert.Contains(t, buf.String(), "status=404")
}
