package snapshot_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"burritoops/internal/adapters/out/snapshot"
	"burritoops/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testDTO struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Rank int    `json:"rank"`
}

func newTestCollection(t *testing.T, path string) *snapshot.Collection[testDTO] {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return snapshot.NewCollection(
		path,
		func(d testDTO) string { return d.ID },
		func(a, b testDTO) bool {
			if a.Rank != b.Rank {
				return a.Rank < b.Rank
			}
			return a.ID < b.ID
		},
		logger,
	)
}

func TestCollectionInMemory(t *testing.T) {
	t.Run("should put, get, and replace by id", func(t *testing.T) {
		col := newTestCollection(t, "")

		require.NoError(t, col.Put(testDTO{ID: "a", Name: "first", Rank: 1}))
		require.NoError(t, col.Put(testDTO{ID: "a", Name: "replaced", Rank: 1}))

		got, ok := col.Get("a")
		require.True(t, ok)
		assert.Equal(t, "replaced", got.Name)
		assert.Equal(t, 1, col.Count())
	})

	t.Run("should report absence on get", func(t *testing.T) {
		col := newTestCollection(t, "")

		_, ok := col.Get("missing")

		assert.False(t, ok)
		assert.False(t, col.Exists("missing"))
	})

	t.Run("should delete idempotently", func(t *testing.T) {
		col := newTestCollection(t, "")
		require.NoError(t, col.Put(testDTO{ID: "a", Rank: 1}))

		removed, err := col.Delete("a")
		require.NoError(t, err)
		assert.True(t, removed)

		removed, err = col.Delete("a")
		require.NoError(t, err)
		assert.False(t, removed)
	})

	t.Run("should match with conjunction-friendly predicate in sorted order", func(t *testing.T) {
		col := newTestCollection(t, "")
		require.NoError(t, col.Put(testDTO{ID: "c", Rank: 3}))
		require.NoError(t, col.Put(testDTO{ID: "a", Rank: 1}))
		require.NoError(t, col.Put(testDTO{ID: "b", Rank: 2}))

		matched := col.Match(func(d testDTO) bool { return d.Rank >= 2 })

		require.Len(t, matched, 2)
		assert.Equal(t, "b", matched[0].ID)
		assert.Equal(t, "c", matched[1].ID)
	})

	t.Run("should match everything on nil predicate", func(t *testing.T) {
		col := newTestCollection(t, "")
		require.NoError(t, col.Put(testDTO{ID: "a", Rank: 1}))
		require.NoError(t, col.Put(testDTO{ID: "b", Rank: 2}))

		assert.Len(t, col.Match(nil), 2)
	})

	t.Run("should clear and report the removed count", func(t *testing.T) {
		col := newTestCollection(t, "")
		require.NoError(t, col.Put(testDTO{ID: "a", Rank: 1}))
		require.NoError(t, col.Put(testDTO{ID: "b", Rank: 2}))

		removed, err := col.Clear()

		require.NoError(t, err)
		assert.Equal(t, 2, removed)
		assert.Equal(t, 0, col.Count())

		removed, err = col.Clear()
		require.NoError(t, err)
		assert.Equal(t, 0, removed)
	})

	t.Run("should load empty with no file configured", func(t *testing.T) {
		col := newTestCollection(t, "")

		n, err := col.Load()

		require.NoError(t, err)
		assert.Equal(t, 0, n)
	})
}

func TestCollectionSnapshotFile(t *testing.T) {
	t.Run("should round-trip through the snapshot file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "test.json")

		writer := newTestCollection(t, path)
		require.NoError(t, writer.Put(testDTO{ID: "a", Name: "first", Rank: 1}))
		require.NoError(t, writer.Put(testDTO{ID: "b", Name: "second", Rank: 2}))

		reader := newTestCollection(t, path)
		n, err := reader.Load()

		require.NoError(t, err)
		assert.Equal(t, 2, n)
		got, ok := reader.Get("b")
		require.True(t, ok)
		assert.Equal(t, "second", got.Name)
	})

	t.Run("should write a versioned document", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "test.json")
		col := newTestCollection(t, path)
		require.NoError(t, col.Put(testDTO{ID: "a", Rank: 1}))

		raw, err := os.ReadFile(path)
		require.NoError(t, err)

		var doc struct {
			Version  int       `json:"version"`
			Entities []testDTO `json:"entities"`
		}
		require.NoError(t, json.Unmarshal(raw, &doc))
		assert.Equal(t, snapshot.FormatVersion, doc.Version)
		assert.Len(t, doc.Entities, 1)
	})

	t.Run("should load empty from a missing file without error", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "never-written.json")
		col := newTestCollection(t, path)

		n, err := col.Load()

		require.NoError(t, err)
		assert.Equal(t, 0, n)
	})

	t.Run("should surface malformed files and start empty", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "corrupt.json")
		require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))
		col := newTestCollection(t, path)

		n, err := col.Load()

		require.Error(t, err)
		assert.Equal(t, 0, n)
		assert.Equal(t, 0, col.Count())
	})

	t.Run("should reject version mismatches", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "old.json")
		require.NoError(t, os.WriteFile(path,
			[]byte(`{"version": 99, "entities": []}`), 0o644))
		col := newTestCollection(t, path)

		_, err := col.Load()

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrVersionIsInvalid)
		assert.Contains(t, err.Error(), "version")
	})

	t.Run("should discard in-memory state on load", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "test.json")
		col := newTestCollection(t, path)
		require.NoError(t, col.Put(testDTO{ID: "a", Rank: 1}))
		require.NoError(t, col.Save())
		require.NoError(t, col.Put(testDTO{ID: "b", Rank: 2}))
		// b was persisted by Put, so overwrite the file with just a.
		other := newTestCollection(t, path)
		require.NoError(t, other.Put(testDTO{ID: "a", Rank: 1}))

		n, err := col.Load()

		require.NoError(t, err)
		assert.Equal(t, 1, n)
		assert.False(t, col.Exists("b"))
	})

	t.Run("should leave the file untouched on reset", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "test.json")
		col := newTestCollection(t, path)
		require.NoError(t, col.Put(testDTO{ID: "a", Rank: 1}))

		col.Reset()

		assert.Equal(t, 0, col.Count())
		n, err := col.Load()
		require.NoError(t, err)
		assert.Equal(t, 1, n)
	})

	t.Run("should remove entities from the file on delete and clear", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "test.json")
		col := newTestCollection(t, path)
		require.NoError(t, col.Put(testDTO{ID: "a", Rank: 1}))
		require.NoError(t, col.Put(testDTO{ID: "b", Rank: 2}))

		_, err := col.Delete("a")
		require.NoError(t, err)

		reader := newTestCollection(t, path)
		n, err := reader.Load()
		require.NoError(t, err)
		assert.Equal(t, 1, n)
		assert.True(t, reader.Exists("b"))
	})
}
