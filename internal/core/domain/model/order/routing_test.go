package order_test

import (
	"testing"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRouting(t *testing.T) {
	t.Run("empty value is unassigned", func(t *testing.T) {
		r, err := order.ParseRouting("")

		require.NoError(t, err)
		assert.True(t, r.IsUnassigned())
		assert.Empty(t, r.String())
	})

	t.Run("sentinel is the waiting room", func(t *testing.T) {
		r, err := order.ParseRouting(order.WaitingRoomID)

		require.NoError(t, err)
		assert.True(t, r.IsWaitingRoom())
		assert.Equal(t, order.WaitingRoomID, r.String())
		_, ok := r.Workstation()
		assert.False(t, ok)
	})

	t.Run("uuid is a workstation", func(t *testing.T) {
		id := kernel.NewUUID()

		r, err := order.ParseRouting(id.String())

		require.NoError(t, err)
		got, ok := r.Workstation()
		assert.True(t, ok)
		assert.True(t, got.IsEqual(id))
		assert.True(t, r.IsHeldBy(id))
		assert.False(t, r.IsHeldBy(kernel.NewUUID()))
	})

	t.Run("garbage is rejected", func(t *testing.T) {
		_, err := order.ParseRouting("poste-1")

		require.Error(t, err)
	})
}

func TestToWorkstation_RejectsZeroUUID(t *testing.T) {
	_, err := order.ToWorkstation(kernel.UUID{})

	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}
