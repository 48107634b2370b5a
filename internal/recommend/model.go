// README: User context, request signals, and the scored recommendation.
package recommend

import (
	"time"

	"rumbo/internal/places"
	"rumbo/internal/types"
)

// TimeOfDay is the coarse daypart used by the time-context sub-score and by
// itinerary slot assignment.
type TimeOfDay string

const (
	Morning   TimeOfDay = "morning"
	Afternoon TimeOfDay = "afternoon"
	Evening   TimeOfDay = "evening"
)

// TimeOfDayAt buckets a clock time into a daypart.
func TimeOfDayAt(t time.Time) TimeOfDay {
	switch h := t.Hour(); {
	case h < 12:
		return Morning
	case h < 18:
		return Afternoon
	default:
		return Evening
	}
}

// UserContext aggregates a user's history as seen by the scorer. All fields
// are optional; the zero value scores every place on rating and distance
// alone.
type UserContext struct {
	FavoriteCategories []string // raw provider category strings
	FrequentTags       []string
	AveragePriceLevel  float64 // 0..4
	LastVisitedPlaces  []types.ID
}

// Signals are the request-time environmental inputs to scoring.
type Signals struct {
	Origin    types.Point
	RadiusKm  float64
	Weather   string // lowercase condition ("rain", "clear", ...); empty = unknown
	TimeOfDay TimeOfDay
}

// Recommendation is one scored candidate.
type Recommendation struct {
	Place             places.Place
	Score             float64 // 0..100
	Reason            string
	DistanceKm        float64
	EstimatedDuration time.Duration
}
