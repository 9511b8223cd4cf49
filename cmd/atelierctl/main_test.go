package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	httpapi "atelier/internal/adapters/in/http"
	"atelier/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCommand(t *testing.T, server string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--server", server, "--session", "s-1"}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestPoolCommand(t *testing.T) {
	price := int64(30000)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "s-1", r.Header.Get(httpapi.SessionHeader))
		assert.Equal(t, "/pool", r.URL.Path)
		_ = json.NewEncoder(w).Encode([]httpapi.Order{{
			TicketID:        "CMD-7K2Q9A",
			ClientName:      "Aminata Diallo",
			StatusLabel:     "En attente de validation",
			WorkstationName: "Salle d'attente",
			Date:            time.Date(2026, 11, 2, 0, 0, 0, 0, time.UTC),
			Price:           &price,
		}})
	}))
	defer srv.Close()

	out, err := runCommand(t, srv.URL, "pool")
	require.NoError(t, err)
	assert.Contains(t, out, "CMD-7K2Q9A")
	assert.Contains(t, out, "Aminata Diallo")
	assert.Contains(t, out, "30000")
	assert.Contains(t, out, "2026-11-02")
}

func TestClaimCommand_Declined(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		_ = json.NewEncoder(w).Encode(httpapi.ClaimResult{Claimed: false, Reason: "unpriced"})
	}))
	defer srv.Close()

	out, err := runCommand(t, srv.URL, "order", "claim", "0b7c2c80-8e0c-4a8e-9d3c-3f1f3e1a2b4c")
	require.NoError(t, err)
	assert.Contains(t, out, "Claim declined: unpriced")
}

func TestCommand_ReportsServiceErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusForbidden)
		_ = json.NewEncoder(w).Encode(httpapi.Error{Code: http.StatusForbidden, Message: "view board is not permitted in client mode"})
	}))
	defer srv.Close()

	_, err := runCommand(t, srv.URL, "kanban")
	require.Error(t, err)
	var apiErr *apiError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusForbidden, apiErr.Status)
	assert.Contains(t, apiErr.Message, "client mode")
}

func TestOrderCreateCommand_SendsPriceOnlyWhenGiven(t *testing.T) {
	var (
		mu  sync.Mutex
		got httpapi.NewOrder
	)
	lastPrice := func() *int64 {
		mu.Lock()
		defer mu.Unlock()
		return got.Price
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		got = httpapi.NewOrder{}
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		mu.Unlock()
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(httpapi.CreatedOrder{ID: "o-1", TicketID: "CMD-AAAAAA"})
	}))
	defer srv.Close()

	out, err := runCommand(t, srv.URL, "order", "create", "--client", "client-1", "--date", "2026-11-02")
	require.NoError(t, err)
	assert.Contains(t, out, "CMD-AAAAAA")
	assert.Nil(t, lastPrice())

	_, err = runCommand(t, srv.URL, "order", "create", "--client", "client-1", "--date", "2026-11-02", "--price", "0")
	require.NoError(t, err)
	require.NotNil(t, lastPrice())
	assert.Zero(t, *lastPrice())
}

func TestAssignTarget(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		pool     bool
		unassign bool
		want     string
		wantErr  bool
	}{
		{name: "workstation", args: []string{"o", "ws-1"}, want: "ws-1"},
		{name: "pool", args: []string{"o"}, pool: true, want: order.WaitingRoomID},
		{name: "unassign", args: []string{"o"}, unassign: true, want: ""},
		{name: "nothing", args: []string{"o"}, wantErr: true},
		{name: "both", args: []string{"o", "ws-1"}, pool: true, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := assignTarget(tt.args, tt.pool, tt.unassign)
			if tt.wantErr {
				require.ErrorIs(t, err, errAmbiguousTarget)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRenderKanban(t *testing.T) {
	out := renderKanban([]httpapi.KanbanColumn{
		{Status: "sewing", Label: "En couture", Orders: []httpapi.Order{{TicketID: "CMD-BBBBBB", ClientID: "client-2"}}},
		{Status: "finishing", Label: "En finition"},
	})
	assert.Contains(t, out, "En couture (1)")
	assert.Contains(t, out, "En finition (0)")
	assert.Contains(t, out, "client-2")
}
