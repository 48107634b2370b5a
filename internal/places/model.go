// README: Place model returned by providers and consumed by ranking.
package places

import "rumbo/internal/types"

// Place is a point of interest fetched from an upstream provider. Instances
// are transient per request and never mutated locally; stores reference them
// by ID only.
type Place struct {
	ID              types.ID
	Name            string
	Address         string
	Position        types.Point
	Category        string // raw provider category string, see taxonomy.go
	PriceLevel      int    // 0..4
	Rating          float64
	Tags            []string
	WeatherSuitable []string // weather conditions the place works in; empty suits none when weather is known
	PhotoRef        string
}

// Sanitize clamps numeric fields into their valid ranges and replaces nil
// collections with empty ones so downstream scoring never has to nil-check.
func (p Place) Sanitize() Place {
	if p.PriceLevel < 0 {
		p.PriceLevel = 0
	}
	if p.PriceLevel > 4 {
		p.PriceLevel = 4
	}
	if p.Rating < 0 {
		p.Rating = 0
	}
	if p.Rating > 5 {
		p.Rating = 5
	}
	if p.Tags == nil {
		p.Tags = []string{}
	}
	if p.WeatherSuitable == nil {
		p.WeatherSuitable = []string{}
	}
	return p
}
