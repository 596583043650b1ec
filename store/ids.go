// ABOUTME: Record identifier generation
// ABOUTME: Produces prefixed, sortable ULID-based IDs for new records
package store

import (
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

// Collection ID prefixes, matching the seed fixtures.
const (
	prefixClient        = "cli"
	prefixPolicy        = "pol"
	prefixClaim         = "clm"
	prefixQuote         = "quo"
	prefixCommission    = "rev"
	prefixCompliance    = "cmp"
	prefixDocument      = "doc"
	prefixPartner       = "par"
	prefixCommunication = "com"
	prefixWorkflow      = "flw"
)

var (
	entropyMu sync.Mutex
	entropy   = ulid.Monotonic(rand.New(rand.NewSource(time.Now().UnixNano())), 0)
)

// newID generates a unique record identifier like "cli-01hq3...".
func newID(prefix string) string {
	entropyMu.Lock()
	defer entropyMu.Unlock()
	id := ulid.MustNew(ulid.Timestamp(time.Now()), entropy)
	return prefix + "-" + strings.ToLower(id.String())
}
