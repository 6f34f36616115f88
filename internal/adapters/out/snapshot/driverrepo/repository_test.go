package driverrepo_test

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"burritoops/internal/adapters/out/snapshot/driverrepo"
	"burritoops/internal/core/domain/model/driver"
	"burritoops/internal/core/domain/model/kernel"
	"burritoops/internal/core/ports"
	"burritoops/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func writeSnapshot(t *testing.T, path, contents string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
}

func TestDriverRepositoryCRUD(t *testing.T) {
	ctx := context.Background()

	t.Run("should create and get a driver copy", func(t *testing.T) {
		repo := driverrepo.NewRepository("", discardLogger())

		created, err := repo.Create(ctx, "Alice", driver.Available)
		require.NoError(t, err)

		got, err := repo.Get(ctx, created.ID())
		require.NoError(t, err)
		assert.True(t, got.IsEqual(created))
		assert.Equal(t, "Alice", got.Name())

		// Mutating the returned copy must not leak into the store.
		busy := driver.Busy
		require.NoError(t, got.Update(driver.UpdateRequest{Status: &busy}))
		again, err := repo.Get(ctx, created.ID())
		require.NoError(t, err)
		assert.Equal(t, driver.Available, again.Status())
	})

	t.Run("should return object not found for absent id", func(t *testing.T) {
		repo := driverrepo.NewRepository("", discardLogger())

		_, err := repo.Get(ctx, kernel.NewEntityID(kernel.DriverPrefix))

		assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("should update through a partial request", func(t *testing.T) {
		repo := driverrepo.NewRepository("", discardLogger())
		created, err := repo.Create(ctx, "Alice", driver.Available)
		require.NoError(t, err)

		busy := driver.Busy
		updated, err := repo.Update(ctx, created.ID(), driver.UpdateRequest{Status: &busy})

		require.NoError(t, err)
		assert.Equal(t, driver.Busy, updated.Status())
		assert.Equal(t, "Alice", updated.Name())
	})

	t.Run("should keep stored record on invalid update", func(t *testing.T) {
		repo := driverrepo.NewRepository("", discardLogger())
		created, err := repo.Create(ctx, "Alice", driver.Available)
		require.NoError(t, err)

		empty := ""
		_, err = repo.Update(ctx, created.ID(), driver.UpdateRequest{Name: &empty})
		require.Error(t, err)

		got, err := repo.Get(ctx, created.ID())
		require.NoError(t, err)
		assert.Equal(t, "Alice", got.Name())
	})

	t.Run("should delete idempotently", func(t *testing.T) {
		repo := driverrepo.NewRepository("", discardLogger())
		created, err := repo.Create(ctx, "Alice", driver.Available)
		require.NoError(t, err)

		removed, err := repo.Delete(ctx, created.ID())
		require.NoError(t, err)
		assert.True(t, removed)

		removed, err = repo.Delete(ctx, created.ID())
		require.NoError(t, err)
		assert.False(t, removed)
		assert.False(t, repo.Exists(ctx, created.ID()))
	})

	t.Run("should count and clear", func(t *testing.T) {
		repo := driverrepo.NewRepository("", discardLogger())
		_, err := repo.Create(ctx, "Alice", driver.Available)
		require.NoError(t, err)
		_, err = repo.Create(ctx, "Bob", driver.Busy)
		require.NoError(t, err)

		assert.Equal(t, 2, repo.Count(ctx))

		removed, err := repo.Clear(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, removed)
		assert.Equal(t, 0, repo.Count(ctx))
	})
}

func TestDriverRepositoryList(t *testing.T) {
	ctx := context.Background()

	t.Run("should list by name ascending ignoring case", func(t *testing.T) {
		repo := driverrepo.NewRepository("", discardLogger())
		_, err := repo.Create(ctx, "charlie", driver.Available)
		require.NoError(t, err)
		_, err = repo.Create(ctx, "Alice", driver.Available)
		require.NoError(t, err)
		_, err = repo.Create(ctx, "bob", driver.Available)
		require.NoError(t, err)

		listed, err := repo.List(ctx, ports.DriverFilter{})

		require.NoError(t, err)
		require.Len(t, listed, 3)
		assert.Equal(t, "Alice", listed[0].Name())
		assert.Equal(t, "bob", listed[1].Name())
		assert.Equal(t, "charlie", listed[2].Name())
	})

	t.Run("should filter by status", func(t *testing.T) {
		repo := driverrepo.NewRepository("", discardLogger())
		_, err := repo.Create(ctx, "Alice", driver.Available)
		require.NoError(t, err)
		_, err = repo.Create(ctx, "Bob", driver.Busy)
		require.NoError(t, err)

		available := driver.Available
		listed, err := repo.List(ctx, ports.DriverFilter{Status: &available})

		require.NoError(t, err)
		require.Len(t, listed, 1)
		assert.Equal(t, "Alice", listed[0].Name())
	})

	t.Run("should return empty list when nothing matches", func(t *testing.T) {
		repo := driverrepo.NewRepository("", discardLogger())

		offline := driver.Offline
		listed, err := repo.List(ctx, ports.DriverFilter{Status: &offline})

		require.NoError(t, err)
		assert.Empty(t, listed)
	})
}

func TestDriverRepositoryPersistence(t *testing.T) {
	ctx := context.Background()

	t.Run("should round-trip drivers through the snapshot file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "drivers.json")

		writer := driverrepo.NewRepository(path, discardLogger())
		created, err := writer.Create(ctx, "Alice", driver.Busy)
		require.NoError(t, err)

		reader := driverrepo.NewRepository(path, discardLogger())
		n, err := reader.Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, n)

		got, err := reader.Get(ctx, created.ID())
		require.NoError(t, err)
		assert.Equal(t, "Alice", got.Name())
		assert.Equal(t, driver.Busy, got.Status())
	})

	t.Run("should load empty from a missing file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "drivers.json")
		repo := driverrepo.NewRepository(path, discardLogger())

		n, err := repo.Load(ctx)

		require.NoError(t, err)
		assert.Equal(t, 0, n)
	})

	t.Run("should fail the load on a schema-violating record", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "drivers.json")
		writeSnapshot(t, path, `{
			"version": 1,
			"saved_at": "2026-01-01T00:00:00Z",
			"entities": [
				{"id": "drv-1-bad", "name": "Alice", "status": "sleeping"}
			]
		}`)
		repo := driverrepo.NewRepository(path, discardLogger())

		n, err := repo.Load(ctx)

		require.Error(t, err)
		assert.Equal(t, 0, n)
		assert.Equal(t, 0, repo.Count(ctx))
	})
}
