package services_test

import (
	"testing"

	"atelier/internal/core/domain/model/order"
	"atelier/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPipeline_SetStatus(t *testing.T) {
	t.Run("default policy skips straight to delivered", func(t *testing.T) {
		o := newOrder(t)

		require.NoError(t, services.NewPipeline(nil).SetStatus(o, order.Delivered))
		assert.Equal(t, order.Delivered, o.Status())
	})

	t.Run("every status is reachable from every status", func(t *testing.T) {
		pipeline := services.NewPipeline(order.PermissiveTransitions{})
		for _, from := range order.Statuses() {
			for _, to := range order.Statuses() {
				o := newOrder(t)
				require.NoError(t, o.ChangeStatus(from, nil))

				require.NoError(t, pipeline.SetStatus(o, to))
				assert.Equal(t, to, o.Status())
			}
		}
	})

	t.Run("sequential policy refuses a skip", func(t *testing.T) {
		o := newOrder(t)

		err := services.NewPipeline(order.SequentialTransitions{}).SetStatus(o, order.Finishing)

		require.Error(t, err)
		assert.Equal(t, order.PendingValidation, o.Status())
	})
}
