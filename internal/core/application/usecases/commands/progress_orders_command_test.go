package commands_test

import (
	"testing"

	"burritoops/internal/core/application/usecases/commands"
	"burritoops/internal/core/domain/model/kernel"
	"burritoops/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProgressionAction(t *testing.T) {
	orderID := kernel.NewEntityID(kernel.OrderPrefix)

	t.Run("should create action with valid input", func(t *testing.T) {
		action, err := commands.NewProgressionAction(orderID, order.Confirmed, order.Preparing)

		require.NoError(t, err)
		require.NoError(t, action.Validate())
		assert.True(t, action.OrderID().IsEqual(orderID))
		assert.Equal(t, order.Confirmed, action.Expected())
		assert.Equal(t, order.Preparing, action.Next())
	})

	t.Run("should not judge transition legality at construction", func(t *testing.T) {
		// The handler decides legality against the freshly read order.
		_, err := commands.NewProgressionAction(orderID, order.Pending, order.Delivered)

		assert.NoError(t, err)
	})

	t.Run("should return error for zero order id", func(t *testing.T) {
		var zeroID kernel.EntityID

		_, err := commands.NewProgressionAction(zeroID, order.Confirmed, order.Preparing)

		assert.Error(t, err)
	})

	t.Run("should return error for invalid statuses", func(t *testing.T) {
		_, err := commands.NewProgressionAction(orderID, order.StatusUnknown, order.Preparing)
		assert.Error(t, err)

		_, err = commands.NewProgressionAction(orderID, order.Confirmed, order.StatusUnknown)
		assert.Error(t, err)
	})
}

func TestNewProgressOrdersCommand(t *testing.T) {
	t.Run("should accept an empty batch", func(t *testing.T) {
		cmd, err := commands.NewProgressOrdersCommand(nil)

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.Empty(t, cmd.Actions())
	})

	t.Run("should reject a batch containing unconstructed actions", func(t *testing.T) {
		_, err := commands.NewProgressOrdersCommand(
			[]commands.ProgressionAction{{}})

		assert.ErrorIs(t, err, commands.ErrProgressionActionIsNotConstructed)
	})
}
