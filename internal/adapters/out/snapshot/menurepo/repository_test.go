package menurepo_test

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"burritoops/internal/adapters/out/snapshot/menurepo"
	"burritoops/internal/core/domain/model/kernel"
	"burritoops/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestMenuRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("should create and get menu items", func(t *testing.T) {
		repo := menurepo.NewRepository("", discardLogger())

		created, err := repo.Create(ctx, "Carnitas Burrito", 8.99, "slow-cooked pork")
		require.NoError(t, err)

		got, err := repo.Get(ctx, created.ID())
		require.NoError(t, err)
		assert.Equal(t, "Carnitas Burrito", got.Name())
		assert.InDelta(t, 8.99, got.Price(), 0.001)
	})

	t.Run("should reject invalid items at creation", func(t *testing.T) {
		repo := menurepo.NewRepository("", discardLogger())

		_, err := repo.Create(ctx, "", 8.99, "")

		require.Error(t, err)
		assert.Equal(t, 0, repo.Count(ctx))
	})

	t.Run("should return object not found for absent id", func(t *testing.T) {
		repo := menurepo.NewRepository("", discardLogger())

		_, err := repo.Get(ctx, kernel.NewEntityID(kernel.MenuItemPrefix))

		assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("should list by name ascending", func(t *testing.T) {
		repo := menurepo.NewRepository("", discardLogger())
		_, err := repo.Create(ctx, "Veggie Burrito", 7.99, "")
		require.NoError(t, err)
		_, err = repo.Create(ctx, "Carnitas Burrito", 8.99, "")
		require.NoError(t, err)

		listed, err := repo.List(ctx)

		require.NoError(t, err)
		require.Len(t, listed, 2)
		assert.Equal(t, "Carnitas Burrito", listed[0].Name())
		assert.Equal(t, "Veggie Burrito", listed[1].Name())
	})

	t.Run("should round-trip through the snapshot file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "menu_items.json")

		writer := menurepo.NewRepository(path, discardLogger())
		created, err := writer.Create(ctx, "Carnitas Burrito", 8.99, "")
		require.NoError(t, err)

		reader := menurepo.NewRepository(path, discardLogger())
		n, err := reader.Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, n)
		assert.True(t, reader.Exists(ctx, created.ID()))
	})
}
