// Package snapshot implements the storage engine behind every entity store:
// a mutex-guarded in-memory index of persistence DTOs, optionally backed by
// a durable snapshot file.
//
// The snapshot is a whole-file overwrite, not an append log: each write
// produces a complete JSON document carrying a format version, a snapshot
// timestamp, and the full entity list. The design assumes a single writer
// process per file; a crash mid-write can corrupt the snapshot, and
// recovery from a corrupt file is "log loudly, start empty, surface the
// error" so callers can decide whether an empty store is acceptable.
//
// Per-entity repositories (orderrepo, driverrepo, customerrepo, menurepo)
// wrap a Collection and translate between domain aggregates and their DTOs.
// Because the collection holds DTOs and every read re-materializes a domain
// object, callers always receive copies, never live references into the
// index.
package snapshot

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"sort"
	"sync"
	"time"

	"burritoops/internal/pkg/errs"
)

// FormatVersion tags every snapshot document. Load rejects documents
// carrying a different version.
const FormatVersion = 1

// document is the on-disk shape of a snapshot file.
type document[D any] struct {
	Version  int       `json:"version"`
	SavedAt  time.Time `json:"saved_at"`
	Entities []D       `json:"entities"`
}

// Collection is a generic in-memory index of DTOs keyed by entity id.
// All operations are guarded by a single lock because update sequences are
// read-merge-write and would not be atomic without one.
//
// With an empty path the collection is memory-only; otherwise every
// mutation rewrites the snapshot file.
type Collection[D any] struct {
	mu     sync.Mutex
	path   string
	items  map[string]D
	idOf   func(D) string
	less   func(a, b D) bool
	logger *slog.Logger
}

// NewCollection creates an empty collection.
//
// path may be empty for a memory-only collection. idOf extracts the entity
// id from a DTO; less defines the deterministic listing order.
func NewCollection[D any](
	path string,
	idOf func(D) string,
	less func(a, b D) bool,
	logger *slog.Logger,
) *Collection[D] {
	return &Collection[D]{
		path:   path,
		items:  make(map[string]D),
		idOf:   idOf,
		less:   less,
		logger: logger,
	}
}

// Put inserts or replaces the DTO keyed by its id and persists the change.
// On a persistence failure the in-memory state keeps the new value and
// stays authoritative for the running process; the error tells the caller
// that durability was not achieved.
func (c *Collection[D]) Put(d D) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items[c.idOf(d)] = d
	return c.persistLocked()
}

// Get returns the DTO for the id and whether it was present.
func (c *Collection[D]) Get(id string) (D, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	d, ok := c.items[id]
	return d, ok
}

// Delete removes the id, reporting whether anything was removed. An absent
// id is not an error and does not trigger a rewrite.
func (c *Collection[D]) Delete(id string) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.items[id]; !ok {
		return false, nil
	}
	delete(c.items, id)
	return true, c.persistLocked()
}

// Match returns the DTOs satisfying pred, sorted by the collection's order.
// A nil pred matches everything.
func (c *Collection[D]) Match(pred func(D) bool) []D {
	c.mu.Lock()
	defer c.mu.Unlock()

	matched := make([]D, 0, len(c.items))
	for _, d := range c.items {
		if pred == nil || pred(d) {
			matched = append(matched, d)
		}
	}
	sort.SliceStable(matched, func(i, j int) bool {
		return c.less(matched[i], matched[j])
	})
	return matched
}

// Count returns the number of stored DTOs.
func (c *Collection[D]) Count() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.items)
}

// Exists reports whether the id is present.
func (c *Collection[D]) Exists(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	_, ok := c.items[id]
	return ok
}

// Clear removes everything and persists the empty state, returning the
// number removed.
func (c *Collection[D]) Clear() (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	removed := len(c.items)
	c.items = make(map[string]D)
	return removed, c.persistLocked()
}

// Reset empties the in-memory index without touching the snapshot file.
// Used by repositories when record validation fails after a load: the
// store operates as empty but the file is left in place for inspection.
func (c *Collection[D]) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = make(map[string]D)
}

// Save writes a full snapshot to the collection's file. A no-op for
// memory-only collections.
func (c *Collection[D]) Save() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.saveLocked()
}

// Load replaces the in-memory index from the snapshot file, discarding any
// prior in-memory state, and returns the number of entities loaded.
//
// A missing file yields an empty collection and no error. A malformed file
// or a version mismatch is logged, yields an empty collection, and returns
// the failure so startup code can refuse to continue instead of silently
// losing durable state.
func (c *Collection[D]) Load() (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = make(map[string]D)
	if c.path == "" {
		return 0, nil
	}

	raw, err := os.ReadFile(c.path)
	if os.IsNotExist(err) {
		return 0, nil
	}
	if err != nil {
		c.logger.Error("snapshot read failed", "path", c.path, "error", err)
		return 0, fmt.Errorf("read snapshot %s: %w", c.path, err)
	}

	var doc document[D]
	if err := json.Unmarshal(raw, &doc); err != nil {
		c.logger.Error("snapshot is malformed, starting empty", "path", c.path, "error", err)
		return 0, fmt.Errorf("decode snapshot %s: %w", c.path, err)
	}
	if doc.Version != FormatVersion {
		c.logger.Error("snapshot version mismatch, starting empty", "path", c.path, "version", doc.Version)
		return 0, errs.NewVersionIsInvalidError(c.path,
			fmt.Errorf("snapshot has version %d, want %d", doc.Version, FormatVersion))
	}

	for _, d := range doc.Entities {
		c.items[c.idOf(d)] = d
	}
	return len(c.items), nil
}

// persistLocked rewrites the snapshot after a mutation. Memory-only
// collections skip it. Callers must hold the lock.
func (c *Collection[D]) persistLocked() error {
	if c.path == "" {
		return nil
	}
	return c.saveLocked()
}

func (c *Collection[D]) saveLocked() error {
	if c.path == "" {
		return nil
	}

	doc := document[D]{
		Version:  FormatVersion,
		SavedAt:  time.Now().UTC(),
		Entities: c.allLocked(),
	}

	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode snapshot %s: %w", c.path, err)
	}
	if err := os.WriteFile(c.path, raw, 0o644); err != nil {
		c.logger.Error("snapshot write failed, in-memory state not durable", "path", c.path, "error", err)
		return fmt.Errorf("write snapshot %s: %w", c.path, err)
	}
	return nil
}

// allLocked collects every DTO in sorted order. Callers must hold the lock.
func (c *Collection[D]) allLocked() []D {
	all := make([]D, 0, len(c.items))
	for _, d := range c.items {
		all = append(all, d)
	}
	sort.SliceStable(all, func(i, j int) bool {
		return c.less(all[i], all[j])
	})
	return all
}
