package commands_test

import (
	"context"
	"testing"

	"burritoops/internal/core/application/usecases/commands"
	"burritoops/internal/core/domain/model/kernel"
	"burritoops/internal/core/domain/model/order"
	"burritoops/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateOrderCommandHandler(t *testing.T) {
	ctx := context.Background()

	t.Run("should place order resolving customer and menu items", func(t *testing.T) {
		f := newFixture(t)
		cust, err := f.customers.Create(ctx, "Maria Lopez", "5551234567", "12 Taco Lane")
		require.NoError(t, err)
		carnitas, err := f.menuItems.Create(ctx, "Carnitas Burrito", 8.99, "")
		require.NoError(t, err)
		veggie, err := f.menuItems.Create(ctx, "Veggie Burrito", 7.99, "")
		require.NoError(t, err)
		handler := commands.NewCreateOrderCommandHandler(f.orders, f.customers, f.menuItems, f.logger)

		cmd, err := commands.NewCreateOrderCommand(cust.ID(), []commands.OrderLineInput{
			{MenuItemID: carnitas.ID(), Quantity: 2},
			{MenuItemID: veggie.ID(), Quantity: 1},
		}, "extra salsa")
		require.NoError(t, err)

		created, err := handler.Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Equal(t, order.Pending, created.Status())
		assert.InDelta(t, 25.97, created.TotalAmount(), 0.001)
		assert.Equal(t, "extra salsa", created.Notes())
		assert.True(t, f.orders.Exists(ctx, created.ID()))
	})

	t.Run("should fail on unknown customer before writing anything", func(t *testing.T) {
		f := newFixture(t)
		carnitas, err := f.menuItems.Create(ctx, "Carnitas Burrito", 8.99, "")
		require.NoError(t, err)
		handler := commands.NewCreateOrderCommandHandler(f.orders, f.customers, f.menuItems, f.logger)

		cmd, err := commands.NewCreateOrderCommand(
			kernel.NewEntityID(kernel.CustomerPrefix),
			[]commands.OrderLineInput{{MenuItemID: carnitas.ID(), Quantity: 1}}, "")
		require.NoError(t, err)

		created, err := handler.Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
		assert.Nil(t, created)
		assert.Equal(t, 0, f.orders.Count(ctx))
	})

	t.Run("should fail on unknown menu item", func(t *testing.T) {
		f := newFixture(t)
		cust, err := f.customers.Create(ctx, "Maria Lopez", "5551234567", "12 Taco Lane")
		require.NoError(t, err)
		handler := commands.NewCreateOrderCommandHandler(f.orders, f.customers, f.menuItems, f.logger)

		cmd, err := commands.NewCreateOrderCommand(cust.ID(), []commands.OrderLineInput{
			{MenuItemID: kernel.NewEntityID(kernel.MenuItemPrefix), Quantity: 1},
		}, "")
		require.NoError(t, err)

		created, err := handler.Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
		assert.Nil(t, created)
		assert.Equal(t, 0, f.orders.Count(ctx))
	})

	t.Run("should reject default constructed command", func(t *testing.T) {
		f := newFixture(t)
		handler := commands.NewCreateOrderCommandHandler(f.orders, f.customers, f.menuItems, f.logger)

		_, err := handler.Handle(ctx, commands.CreateOrderCommand{})

		assert.ErrorIs(t, err, commands.ErrCreateOrderCommandIsNotConstructed)
	})
}

func TestCreateOrderCommand(t *testing.T) {
	validCustomerID := kernel.NewEntityID(kernel.CustomerPrefix)
	validLines := []commands.OrderLineInput{
		{MenuItemID: kernel.NewEntityID(kernel.MenuItemPrefix), Quantity: 1},
	}

	t.Run("should create command with valid input", func(t *testing.T) {
		cmd, err := commands.NewCreateOrderCommand(validCustomerID, validLines, "notes")

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.True(t, cmd.CustomerID().IsEqual(validCustomerID))
		assert.Len(t, cmd.Lines(), 1)
		assert.Equal(t, "notes", cmd.Notes())
	})

	t.Run("should return error for zero customer id", func(t *testing.T) {
		var zeroID kernel.EntityID

		_, err := commands.NewCreateOrderCommand(zeroID, validLines, "")

		assert.Error(t, err)
	})

	t.Run("should return error for empty lines", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(validCustomerID, nil, "")

		assert.ErrorIs(t, err, commands.ErrOrderLinesAreRequired)
	})

	t.Run("should return error for non-positive quantity", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(validCustomerID, []commands.OrderLineInput{
			{MenuItemID: kernel.NewEntityID(kernel.MenuItemPrefix), Quantity: 0},
		}, "")

		assert.ErrorIs(t, err, commands.ErrLineQuantityIsInvalid)
	})
}
