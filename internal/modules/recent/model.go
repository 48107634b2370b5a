// README: Bounded recently-viewed places list per user.
package recent

import (
	"time"

	"rumbo/internal/types"
)

// MaxEntries caps the list per user. Inserting beyond the cap eagerly evicts
// the oldest rows so the list reconciles to the newest MaxEntries. Two
// concurrent inserts may briefly overshoot; the next insert's eviction pass
// heals it.
const MaxEntries = 10

// Entry is one viewed place. Re-recording the same place refreshes ViewedAt
// instead of duplicating.
type Entry struct {
	UserID   types.ID
	PlaceID  types.ID
	Name     string
	Address  string
	Category string
	Position types.Point
	Rating   float64
	PhotoRef string
	ViewedAt time.Time
}
