package services_test

import (
	"testing"

	"burritoops/internal/core/domain/model/customer"
	"burritoops/internal/core/domain/model/driver"
	"burritoops/internal/core/domain/model/kernel"
	"burritoops/internal/core/domain/model/menu"
	"burritoops/internal/core/domain/model/order"
	"burritoops/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createOrderInStatus(t *testing.T, status order.Status, driverID *kernel.EntityID) *order.Order {
	t.Helper()
	cust, err := customer.NewCustomer("Maria Lopez", "5551234567", "12 Taco Lane")
	require.NoError(t, err)
	item, err := menu.NewMenuItem("Burrito", 8.99, "")
	require.NoError(t, err)

	o, err := order.NewOrder(cust, []order.Line{{MenuItem: item, Quantity: 1}}, "")
	require.NoError(t, err)

	if status != order.Pending || driverID != nil {
		req := order.UpdateRequest{AssignedDriverID: driverID}
		if status != order.Pending {
			req.Status = &status
		}
		require.NoError(t, o.Update(req))
	}
	return o
}

func createDriverInStatus(t *testing.T, status driver.Status) *driver.Driver {
	t.Helper()
	d, err := driver.NewDriver("Test Driver", status)
	require.NoError(t, err)
	return d
}

func TestIsLegalTransition(t *testing.T) {
	policy := services.NewTransitionPolicy()

	t.Run("should allow the forward step", func(t *testing.T) {
		assert.True(t, policy.IsLegalTransition(order.Ready, order.OutForDelivery))
	})

	t.Run("should allow cancellation before delivery", func(t *testing.T) {
		assert.True(t, policy.IsLegalTransition(order.Preparing, order.Cancelled))
	})

	t.Run("should reject skipped steps and terminal exits", func(t *testing.T) {
		assert.False(t, policy.IsLegalTransition(order.Pending, order.Ready))
		assert.False(t, policy.IsLegalTransition(order.Delivered, order.Cancelled))
	})
}

func TestShouldReleaseDriver(t *testing.T) {
	policy := services.NewTransitionPolicy()

	t.Run("should release busy driver when order is delivered", func(t *testing.T) {
		d := createDriverInStatus(t, driver.Busy)
		driverID := d.ID()
		o := createOrderInStatus(t, order.OutForDelivery, &driverID)

		assert.True(t, policy.ShouldReleaseDriver(o, order.Delivered, d))
	})

	t.Run("should not release on non-delivery transitions", func(t *testing.T) {
		d := createDriverInStatus(t, driver.Busy)
		driverID := d.ID()
		o := createOrderInStatus(t, order.Ready, &driverID)

		assert.False(t, policy.ShouldReleaseDriver(o, order.OutForDelivery, d))
	})

	t.Run("should not release when no driver is bound", func(t *testing.T) {
		d := createDriverInStatus(t, driver.Busy)
		o := createOrderInStatus(t, order.OutForDelivery, nil)

		assert.False(t, policy.ShouldReleaseDriver(o, order.Delivered, d))
	})

	t.Run("should not release a driver that is not busy", func(t *testing.T) {
		d := createDriverInStatus(t, driver.Offline)
		driverID := d.ID()
		o := createOrderInStatus(t, order.OutForDelivery, &driverID)

		assert.False(t, policy.ShouldReleaseDriver(o, order.Delivered, d))
	})

	t.Run("should tolerate nil order and driver", func(t *testing.T) {
		assert.False(t, policy.ShouldReleaseDriver(nil, order.Delivered, nil))
	})
}

func TestCanAssign(t *testing.T) {
	policy := services.NewTransitionPolicy()

	t.Run("should assign available driver to pending order", func(t *testing.T) {
		o := createOrderInStatus(t, order.Pending, nil)
		d := createDriverInStatus(t, driver.Available)

		assert.True(t, policy.CanAssign(o, d))
	})

	t.Run("should reject non-pending order", func(t *testing.T) {
		o := createOrderInStatus(t, order.Confirmed, nil)
		d := createDriverInStatus(t, driver.Available)

		assert.False(t, policy.CanAssign(o, d))
	})

	t.Run("should reject busy and offline drivers", func(t *testing.T) {
		o := createOrderInStatus(t, order.Pending, nil)

		assert.False(t, policy.CanAssign(o, createDriverInStatus(t, driver.Busy)))
		assert.False(t, policy.CanAssign(o, createDriverInStatus(t, driver.Offline)))
	})

	t.Run("should tolerate nil order and driver", func(t *testing.T) {
		assert.False(t, policy.CanAssign(nil, nil))
	})
}
