// Package idx generates the ULID identifiers used for teams, memberships and
// invites. ULIDs sort lexically in creation order, which the membership store
// relies on as a tie-break when two rows share a created_at timestamp.
package idx

import (
	"crypto/rand"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

type ID string

// Zero is the empty ID. Only use it as a placeholder.
const Zero ID = ""

// ErrInvalid reports a malformed ULID string.
var ErrInvalid = errors.New("idx: invalid ulid")

var (
	globalOnce sync.Once
	global     *generator
)

// generator hands out ULIDs from a single monotonic entropy source so IDs
// minted within the same millisecond still increase.
type generator struct {
	mu      sync.Mutex
	entropy *ulid.MonotonicEntropy
}

func (g *generator) newAt(t time.Time) ID {
	g.mu.Lock()
	defer g.mu.Unlock()

	u := ulid.MustNew(ulid.Timestamp(t), g.entropy)
	return ID(u.String())
}

func initGlobal() {
	global = &generator{entropy: ulid.Monotonic(rand.Reader, 0)}
}

// New returns a new ULID stamped with the current UTC time.
func New() ID {
	return NewAt(time.Now().UTC())
}

// NewAt generates an ID at the provided time, handy for tests that need a
// known ordering.
func NewAt(t time.Time) ID {
	globalOnce.Do(initGlobal)
	return global.newAt(t.UTC())
}

// Parse validates s as a canonical ULID.
func Parse(s string) (ID, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Zero, ErrInvalid
	}

	if _, err := ulid.ParseStrict(s); err != nil {
		return Zero, ErrInvalid
	}

	return ID(s), nil
}

// IsValid reports whether s parses as a ULID. Team ids taken from requests
// are checked with this before they reach the store.
func IsValid(s string) bool {
	_, err := Parse(s)
	return err == nil
}

func (id ID) IsZero() bool { return id == Zero }

func (id ID) String() string { return string(id) }

// Time extracts the embedded timestamp. Zero or invalid IDs return the zero
// time.
func (id ID) Time() time.Time {
	if id.IsZero() {
		return time.Time{}
	}

	u, err := ulid.ParseStrict(id.String())
	if err != nil {
		return time.Time{}
	}

	return ulid.Time(u.Time())
}

// Compare reports the ordering between a and b: -1, 0 or +1.
func Compare(a, b ID) int {
	return strings.Compare(a.String(), b.String())
}
