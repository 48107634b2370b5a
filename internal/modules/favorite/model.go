// README: Bounded favorite places list per user with toggle semantics.
package favorite

import (
	"time"

	"rumbo/internal/types"
)

// MaxEntries caps the list per user, evicted eagerly like the recents list.
const MaxEntries = 10

// Entry is one favorited place.
type Entry struct {
	UserID   types.ID
	PlaceID  types.ID
	Name     string
	Address  string
	Category string
	Position types.Point
	Rating   float64
	PhotoRef string
	SavedAt  time.Time
}
