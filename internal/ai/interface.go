package ai

import (
	"context"

	"rumbo/internal/itinerary"
)

// ItineraryGenerator produces the narrative content of a travel plan.
// Implementations may fail; callers fall back to placeholder content so plan
// assembly always completes.
type ItineraryGenerator interface {
	// Generate returns narrative content for the request. placeNames are the
	// top-ranked nearby places, in rank order, for the model to weave in.
	Generate(ctx context.Context, req itinerary.Request, placeNames []string) (*itinerary.GeneratedContent, error)

	Close()
}
