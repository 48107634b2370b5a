// README: Wire payloads shared across handlers.
package handlers

import (
	"time"

	"rumbo/internal/places"
	"rumbo/internal/recommend"
	"rumbo/internal/types"
)

type placePayload struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Address    string   `json:"address,omitempty"`
	Lat        float64  `json:"lat"`
	Lng        float64  `json:"lng"`
	Category   string   `json:"category"`
	PriceLevel int      `json:"price_level"`
	Rating     float64  `json:"rating"`
	Tags       []string `json:"tags,omitempty"`
	PhotoRef   string   `json:"photo_ref,omitempty"`
}

func (p placePayload) toPlace() places.Place {
	return places.Place{
		ID:         types.ID(p.ID),
		Name:       p.Name,
		Address:    p.Address,
		Position:   types.Point{Lat: p.Lat, Lng: p.Lng},
		Category:   p.Category,
		PriceLevel: p.PriceLevel,
		Rating:     p.Rating,
		Tags:       p.Tags,
		PhotoRef:   p.PhotoRef,
	}
}

func fromPlace(p places.Place) placePayload {
	return placePayload{
		ID:         string(p.ID),
		Name:       p.Name,
		Address:    p.Address,
		Lat:        p.Position.Lat,
		Lng:        p.Position.Lng,
		Category:   p.Category,
		PriceLevel: p.PriceLevel,
		Rating:     p.Rating,
		Tags:       p.Tags,
		PhotoRef:   p.PhotoRef,
	}
}

type recommendationPayload struct {
	Place           placePayload `json:"place"`
	Score           float64      `json:"score"`
	Reason          string       `json:"reason"`
	DistanceKm      float64      `json:"distance_km"`
	DurationMinutes int          `json:"estimated_duration_minutes"`
}

func fromRecommendation(r recommend.Recommendation) recommendationPayload {
	return recommendationPayload{
		Place:           fromPlace(r.Place),
		Score:           r.Score,
		Reason:          r.Reason,
		DistanceKm:      r.DistanceKm,
		DurationMinutes: int(r.EstimatedDuration / time.Minute),
	}
}
