// README: Google Places provider; maps SDK results into the Place model.
package places

import (
	"context"
	"fmt"

	"googlemaps.github.io/maps"

	"rumbo/internal/types"
)

// Provider fetches candidate places near a location. Implementations may
// return duplicates across calls; callers merge through Aggregate.
type Provider interface {
	FetchPlaces(ctx context.Context, origin types.Point, radiusKm float64, limit int, category Category) ([]Place, error)
}

// GoogleProvider implements Provider against the Google Places API.
type GoogleProvider struct {
	client *maps.Client
}

// NewGoogleProvider creates a GoogleProvider with the given API key.
func NewGoogleProvider(apiKey string) (*GoogleProvider, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}
	return &GoogleProvider{client: client}, nil
}

// FetchPlaces runs a nearby search and maps the results defensively: missing
// numeric fields become 0 and missing collections become empty, so a partial
// API payload never breaks downstream scoring. category may be
// CategoryUnmatched (or zero) for an unfiltered search.
func (g *GoogleProvider) FetchPlaces(ctx context.Context, origin types.Point, radiusKm float64, limit int, category Category) ([]Place, error) {
	r := &maps.NearbySearchRequest{
		Location: &maps.LatLng{Lat: origin.Lat, Lng: origin.Lng},
		Radius:   uint(radiusKm * 1000),
	}
	if info := Info(category); len(info.Raw) > 0 {
		// The API accepts a single type filter; the first raw string of a
		// category is its canonical provider type.
		r.Type = maps.PlaceType(info.Raw[0])
	}

	resp, err := g.client.NearbySearch(ctx, r)
	if err != nil {
		return nil, fmt.Errorf("places api error: %w", err)
	}

	out := make([]Place, 0, len(resp.Results))
	for _, result := range resp.Results {
		p := fromSearchResult(result)
		out = append(out, p)
		if limit > 0 && len(out) >= limit {
			break
		}
	}
	return out, nil
}

func fromSearchResult(r maps.PlacesSearchResult) Place {
	p := Place{
		ID:   types.ID(r.PlaceID),
		Name: r.Name,
		Position: types.Point{
			Lat: r.Geometry.Location.Lat,
			Lng: r.Geometry.Location.Lng,
		},
		PriceLevel: r.PriceLevel,
		Rating:     float64(r.Rating),
	}
	p.Address = r.Vicinity
	if p.Address == "" {
		p.Address = r.FormattedAddress
	}
	if len(r.Types) > 0 {
		p.Category = r.Types[0]
		p.Tags = append([]string(nil), r.Types...)
	}
	if len(r.Photos) > 0 {
		p.PhotoRef = r.Photos[0].PhotoReference
	}
	cat, _ := Classify(p.Category)
	p.WeatherSuitable = weatherSuitableFor(cat)
	return p.Sanitize()
}

// weatherSuitableFor derives the weather suitability set from the category.
// Outdoor categories only work in dry weather. Unmatched categories get the
// full set rather than an empty one, since an empty set suits no weather at
// all and would zero out every uncategorized place.
func weatherSuitableFor(cat Category) []string {
	switch cat {
	case CategoryParks:
		return []string{"clear", "clouds"}
	default:
		return []string{"clear", "clouds", "rain", "snow"}
	}
}
