package services_test

import (
	"testing"
	"time"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/order"
	"atelier/internal/core/domain/model/workstation"

	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 10, 14, 10, 0, 0, 0, time.UTC)

func newOrder(t *testing.T) *order.Order {
	t.Helper()
	ticket, err := kernel.ParseTicketID("CMD-7K2P9Q")
	require.NoError(t, err)
	o, err := order.NewOrder(kernel.NewUUID(), ticket, "client-1", "model-1", testNow)
	require.NoError(t, err)
	return o
}

func newWorkstation(t *testing.T) *workstation.Workstation {
	t.Helper()
	code, err := kernel.ParseAccessCode("POSTE-7QX2")
	require.NoError(t, err)
	ws, err := workstation.NewWorkstation(kernel.NewUUID(), "Atelier A", code)
	require.NoError(t, err)
	return ws
}
