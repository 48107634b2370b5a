// README: Google provider mapping tests (pure parts only).
package places

import "testing"

func TestWeatherSuitableFor(t *testing.T) {
	tests := []struct {
		name string
		cat  Category
		want int
	}{
		{"parks are dry weather only", CategoryParks, 2},
		{"restaurants suit all weather", CategoryRestaurants, 4},
		{"unmatched suits all weather", CategoryUnmatched, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := weatherSuitableFor(tt.cat)
			// Never empty: an empty set would score zero in any known weather.
			if len(got) != tt.want {
				t.Errorf("weatherSuitableFor(%v) = %v, want %d entries", tt.cat, got, tt.want)
			}
		})
	}
}
