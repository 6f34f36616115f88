package queries_test

import (
	"context"
	"testing"

	"burritoops/internal/adapters/out/snapshot/driverrepo"
	"burritoops/internal/core/application/usecases/queries"
	"burritoops/internal/core/domain/model/driver"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetAvailableDriversQueryHandler(t *testing.T) {
	ctx := context.Background()

	t.Run("should return only available drivers", func(t *testing.T) {
		drivers := driverrepo.NewRepository("", discardLogger())
		free, err := drivers.Create(ctx, "Rosa Mendez", driver.Available)
		require.NoError(t, err)
		_, err = drivers.Create(ctx, "Luis Ortega", driver.Busy)
		require.NoError(t, err)
		_, err = drivers.Create(ctx, "Nina Park", driver.Offline)
		require.NoError(t, err)
		handler := queries.NewGetAvailableDriversQueryHandler(drivers)

		responses, err := handler.Handle(ctx, queries.NewGetAvailableDriversQuery())

		require.NoError(t, err)
		require.Len(t, responses, 1)
		assert.Equal(t, free.ID().String(), responses[0].ID)
		assert.Equal(t, "Rosa Mendez", responses[0].Name)
		assert.Equal(t, "available", responses[0].Status)
	})

	t.Run("should keep the store's name order", func(t *testing.T) {
		drivers := driverrepo.NewRepository("", discardLogger())
		for _, name := range []string{"carla", "Ben", "adam"} {
			_, err := drivers.Create(ctx, name, driver.Available)
			require.NoError(t, err)
		}
		handler := queries.NewGetAvailableDriversQueryHandler(drivers)

		responses, err := handler.Handle(ctx, queries.NewGetAvailableDriversQuery())

		require.NoError(t, err)
		require.Len(t, responses, 3)
		assert.Equal(t, "adam", responses[0].Name)
		assert.Equal(t, "Ben", responses[1].Name)
		assert.Equal(t, "carla", responses[2].Name)
	})

	t.Run("should return empty slice when no driver is free", func(t *testing.T) {
		drivers := driverrepo.NewRepository("", discardLogger())
		_, err := drivers.Create(ctx, "Luis Ortega", driver.Busy)
		require.NoError(t, err)
		handler := queries.NewGetAvailableDriversQueryHandler(drivers)

		responses, err := handler.Handle(ctx, queries.NewGetAvailableDriversQuery())

		require.NoError(t, err)
		assert.Empty(t, responses)
	})

	t.Run("should reject default constructed query", func(t *testing.T) {
		drivers := driverrepo.NewRepository("", discardLogger())
		handler := queries.NewGetAvailableDriversQueryHandler(drivers)

		_, err := handler.Handle(ctx, queries.GetAvailableDriversQuery{})

		assert.ErrorIs(t, err, queries.ErrGetAvailableDriversQueryIsNotConstructed)
	})
}
