package commands_test

import (
	"context"
	"testing"

	"burritoops/internal/core/application/usecases/commands"
	"burritoops/internal/core/domain/model/driver"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateDriverCommand(t *testing.T) {
	ctx := context.Background()

	t.Run("should register driver through the handler", func(t *testing.T) {
		f := newFixture(t)
		handler := commands.NewCreateDriverCommandHandler(f.drivers, f.logger)

		cmd, err := commands.NewCreateDriverCommand("Alice", driver.Available)
		require.NoError(t, err)

		created, err := handler.Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Equal(t, "Alice", created.Name())
		assert.Equal(t, driver.Available, created.Status())
		assert.True(t, f.drivers.Exists(ctx, created.ID()))
	})

	t.Run("should return error for empty name", func(t *testing.T) {
		_, err := commands.NewCreateDriverCommand("", driver.Available)

		assert.ErrorIs(t, err, commands.ErrDriverNameIsRequired)
	})

	t.Run("should return error for invalid status", func(t *testing.T) {
		_, err := commands.NewCreateDriverCommand("Alice", driver.StatusUnknown)

		assert.Error(t, err)
	})
}

func TestCreateCustomerCommand(t *testing.T) {
	ctx := context.Background()

	t.Run("should register customer through the handler", func(t *testing.T) {
		f := newFixture(t)
		handler := commands.NewCreateCustomerCommandHandler(f.customers, f.logger)

		cmd, err := commands.NewCreateCustomerCommand("Maria Lopez", "5551234567", "12 Taco Lane")
		require.NoError(t, err)

		created, err := handler.Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Equal(t, "Maria Lopez", created.Name())
		assert.True(t, f.customers.Exists(ctx, created.ID()))
	})

	t.Run("should surface domain phone validation from the handler", func(t *testing.T) {
		f := newFixture(t)
		handler := commands.NewCreateCustomerCommandHandler(f.customers, f.logger)

		// The command only rejects blanks; format is the domain's call.
		cmd, err := commands.NewCreateCustomerCommand("Maria Lopez", "not-a-phone!", "12 Taco Lane")
		require.NoError(t, err)

		created, err := handler.Handle(ctx, cmd)

		require.Error(t, err)
		assert.Nil(t, created)
	})

	t.Run("should return error for blank fields", func(t *testing.T) {
		_, err := commands.NewCreateCustomerCommand("", "5551234567", "12 Taco Lane")
		assert.ErrorIs(t, err, commands.ErrCustomerNameIsRequired)

		_, err = commands.NewCreateCustomerCommand("Maria Lopez", "", "12 Taco Lane")
		assert.ErrorIs(t, err, commands.ErrCustomerPhoneIsRequired)

		_, err = commands.NewCreateCustomerCommand("Maria Lopez", "5551234567", "")
		assert.ErrorIs(t, err, commands.ErrCustomerAddressIsRequired)
	})
}

func TestCreateMenuItemCommand(t *testing.T) {
	ctx := context.Background()

	t.Run("should add menu item through the handler", func(t *testing.T) {
		f := newFixture(t)
		handler := commands.NewCreateMenuItemCommandHandler(f.menuItems, f.logger)

		cmd, err := commands.NewCreateMenuItemCommand("Carnitas Burrito", 8.99, "slow-cooked pork")
		require.NoError(t, err)

		created, err := handler.Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Equal(t, "Carnitas Burrito", created.Name())
		assert.InDelta(t, 8.99, created.Price(), 0.001)
		assert.True(t, f.menuItems.Exists(ctx, created.ID()))
	})

	t.Run("should return error for empty name", func(t *testing.T) {
		_, err := commands.NewCreateMenuItemCommand("", 8.99, "")

		assert.ErrorIs(t, err, commands.ErrMenuItemNameIsRequired)
	})

	t.Run("should return error for non-positive price", func(t *testing.T) {
		_, err := commands.NewCreateMenuItemCommand("Burrito", 0, "")

		assert.ErrorIs(t, err, commands.ErrMenuItemPriceIsInvalid)
	})
}
