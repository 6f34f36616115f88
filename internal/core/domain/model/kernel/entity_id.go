package kernel

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"burritoops/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrEntityIDIsNotConstructed indicates that an EntityID was not properly
// initialized through NewEntityID or ParseEntityID. This error is returned
// when validating a zero-value EntityID.
var ErrEntityIDIsNotConstructed = errs.NewValueIsRequiredError(
	"EntityID must be created via NewEntityID or ParseEntityID")

// IDPrefix identifies the entity type an EntityID belongs to.
// Each entity family in the system has its own prefix, making raw ids
// self-describing in logs, snapshots, and reports.
type IDPrefix string

// Known id prefixes, one per entity family.
const (
	OrderPrefix    IDPrefix = "ord"
	DriverPrefix   IDPrefix = "drv"
	CustomerPrefix IDPrefix = "cust"
	MenuItemPrefix IDPrefix = "menu"
)

// Validate checks the prefix against the known set.
func (p IDPrefix) Validate() error {
	switch p {
	case OrderPrefix, DriverPrefix, CustomerPrefix, MenuItemPrefix:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("id prefix",
			fmt.Errorf("%q is not a known entity prefix", string(p)))
	}
}

// EntityID is a value object that identifies an entity within its family.
// The textual form is "<prefix>-<unix-nanos>-<8 hex chars>", combining the
// entity-type prefix, a high-resolution creation timestamp, and a random
// suffix. Uniqueness is probabilistic; the collision space is large enough
// to treat ids as coordinate-free for the target load.
//
// The zero value of EntityID is invalid and must be constructed using
// NewEntityID or ParseEntityID. EntityID is immutable and safe for
// concurrent use.
//
// Example usage:
//
//	id := kernel.NewEntityID(kernel.OrderPrefix)
//	fmt.Println(id.String()) // e.g. "ord-1736532000123456789-a1b2c3d4"
type EntityID struct {
	prefix IDPrefix
	value  string
}

// NewEntityID generates a fresh identifier for the given entity family.
// The timestamp segment records creation time with nanosecond resolution;
// the suffix comes from a random UUID.
func NewEntityID(prefix IDPrefix) EntityID {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return EntityID{
		prefix: prefix,
		value:  fmt.Sprintf("%s-%d-%s", prefix, time.Now().UnixNano(), suffix),
	}
}

// ParseEntityID reconstructs an EntityID from its string form, checking
// that it carries the expected prefix and the three-segment shape.
// This function is used when loading entities from persistence or when ids
// arrive from external callers.
func ParseEntityID(prefix IDPrefix, s string) (EntityID, error) {
	if err := prefix.Validate(); err != nil {
		return EntityID{}, err
	}

	parts := strings.SplitN(s, "-", 3)
	if len(parts) != 3 || parts[0] != string(prefix) || parts[1] == "" || parts[2] == "" {
		return EntityID{}, errs.NewValueIsInvalidErrorWithCause("entity id",
			fmt.Errorf("%q is not a valid %s id", s, prefix))
	}

	if _, err := strconv.ParseInt(parts[1], 10, 64); err != nil {
		return EntityID{}, errs.NewValueIsInvalidErrorWithCause("entity id",
			fmt.Errorf("%q has a malformed timestamp segment", s))
	}

	return EntityID{prefix: prefix, value: s}, nil
}

// String returns the textual representation of the id.
// For a zero value this returns the empty string.
func (e EntityID) String() string {
	return e.value
}

// Prefix returns the entity family the id belongs to.
func (e EntityID) Prefix() IDPrefix {
	return e.prefix
}

// CreatedAt extracts the creation timestamp embedded in the id.
// Returns the zero time for a zero-value id.
func (e EntityID) CreatedAt() time.Time {
	parts := strings.SplitN(e.value, "-", 3)
	if len(parts) != 3 {
		return time.Time{}
	}
	nanos, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return time.Time{}
	}
	return time.Unix(0, nanos).UTC()
}

// IsEqual compares two ids for equality by their full textual value.
func (e EntityID) IsEqual(other EntityID) bool {
	return e.value == other.value
}

// Validate checks that the id was created through a constructor.
// Returns ErrEntityIDIsNotConstructed for the zero value.
func (e EntityID) Validate() error {
	if e.value == "" {
		return ErrEntityIDIsNotConstructed
	}
	return nil
}
