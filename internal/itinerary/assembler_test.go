package itinerary

import (
	"testing"
	"time"

	"rumbo/internal/places"
	"rumbo/internal/recommend"
	"rumbo/internal/types"
)

var testNow = time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

func rec(id, name string) recommend.Recommendation {
	return recommend.Recommendation{
		Place: places.Place{
			ID:       types.ID(id),
			Name:     name,
			Address:  "Calle Mayor 1",
			Category: "museum",
		},
		Score:             80,
		Reason:            "Highly rated",
		EstimatedDuration: 2 * time.Hour,
	}
}

func TestTripDuration(t *testing.T) {
	tests := []struct {
		name       string
		start, end string
		want       int
		parsed     bool
	}{
		{"same day", "01/01/2025", "01/01/2025", 1, true},
		{"three days", "01/01/2025", "03/01/2025", 3, true},
		{"iso layout", "2025-01-01", "2025-01-05", 5, true},
		{"end before start", "05/01/2025", "01/01/2025", 1, true},
		{"garbage start", "soon", "03/01/2025", 1, false},
		{"empty dates", "", "", 1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, got, ok := tripDuration(tt.start, tt.end)
			if got != tt.want || ok != tt.parsed {
				t.Errorf("tripDuration(%q, %q) = (%d, %v), want (%d, %v)",
					tt.start, tt.end, got, ok, tt.want, tt.parsed)
			}
		})
	}
}

func TestAssembleDaysContiguous(t *testing.T) {
	req := Request{Destination: "Madrid", StartDate: "01/01/2025", EndDate: "04/01/2025"}
	resp := Assemble(req, nil, nil, testNow)

	if resp.Duration != 4 || len(resp.Days) != 4 {
		t.Fatalf("duration = %d, days = %d, want 4", resp.Duration, len(resp.Days))
	}
	for i, d := range resp.Days {
		if d.Day != i+1 {
			t.Errorf("day %d numbered %d", i, d.Day)
		}
		if d.Activities == nil {
			t.Errorf("day %d has nil activities", d.Day)
		}
		if len(d.Meals) == 0 {
			t.Errorf("day %d has no meal suggestions", d.Day)
		}
	}
	if resp.Days[0].Date != "01/01/2025" || resp.Days[3].Date != "04/01/2025" {
		t.Errorf("day dates = %q..%q", resp.Days[0].Date, resp.Days[3].Date)
	}
	if resp.Warning != "" {
		t.Errorf("unexpected warning %q", resp.Warning)
	}
}

func TestAssembleUnparsableDates(t *testing.T) {
	req := Request{Destination: "Madrid", StartDate: "next week", EndDate: "later"}
	resp := Assemble(req, []recommend.Recommendation{rec("p1", "Prado")}, nil, testNow)

	if resp.Duration != 1 || len(resp.Days) != 1 {
		t.Fatalf("duration = %d, days = %d, want 1", resp.Duration, len(resp.Days))
	}
	if resp.Warning == "" {
		t.Error("expected a warning for unparsable dates")
	}
	if resp.Days[0].Date != "" {
		t.Errorf("date should be empty, got %q", resp.Days[0].Date)
	}
}

func TestAssembleRoundRobin(t *testing.T) {
	req := Request{Destination: "Madrid", StartDate: "01/01/2025", EndDate: "02/01/2025"}
	ranked := []recommend.Recommendation{
		rec("a", "First"), rec("b", "Second"), rec("c", "Third"), rec("d", "Fourth"),
	}
	resp := Assemble(req, ranked, nil, testNow)

	// 4 places over 2 days: a,c on day 1 and b,d on day 2, rank order kept.
	d1, d2 := resp.Days[0], resp.Days[1]
	if len(d1.Activities) != 2 || len(d2.Activities) != 2 {
		t.Fatalf("activity split = %d/%d, want 2/2", len(d1.Activities), len(d2.Activities))
	}
	if d1.Activities[0].Name != "First" || d1.Activities[1].Name != "Third" {
		t.Errorf("day 1 order = %q, %q", d1.Activities[0].Name, d1.Activities[1].Name)
	}
	if d2.Activities[0].Name != "Second" || d2.Activities[1].Name != "Fourth" {
		t.Errorf("day 2 order = %q, %q", d2.Activities[0].Name, d2.Activities[1].Name)
	}

	// Slots cycle within a day.
	if d1.Activities[0].Slot != recommend.Morning || d1.Activities[1].Slot != recommend.Afternoon {
		t.Errorf("slots = %v, %v", d1.Activities[0].Slot, d1.Activities[1].Slot)
	}
}

func TestAssembleMealDetection(t *testing.T) {
	req := Request{Destination: "Madrid", StartDate: "01/01/2025", EndDate: "01/01/2025"}
	ranked := []recommend.Recommendation{
		rec("a", "Prado Museum"),
		rec("b", "Brunch Club Malasaña"),
	}
	resp := Assemble(req, ranked, nil, testNow)

	acts := resp.Days[0].Activities
	if acts[0].Kind != KindActivity {
		t.Errorf("museum tagged %v", acts[0].Kind)
	}
	if acts[1].Kind != KindMeal {
		t.Errorf("brunch tagged %v", acts[1].Kind)
	}
}

func TestAssembleGeneratedContent(t *testing.T) {
	req := Request{Destination: "Madrid", StartDate: "01/01/2025", EndDate: "02/01/2025"}
	gen := &GeneratedContent{
		Narrative: "Two days of art and tapas.",
		Days: []GeneratedDay{
			{Title: "Art triangle", Meals: []Meal{{Type: Dinner, Recommendation: "Tapas crawl"}}},
		},
	}
	resp := Assemble(req, nil, gen, testNow)

	if resp.Narrative != "Two days of art and tapas." {
		t.Errorf("narrative = %q", resp.Narrative)
	}
	if resp.Days[0].Title != "Art triangle" {
		t.Errorf("day 1 title = %q", resp.Days[0].Title)
	}
	if len(resp.Days[0].Meals) != 1 || resp.Days[0].Meals[0].Recommendation != "Tapas crawl" {
		t.Errorf("day 1 meals = %+v", resp.Days[0].Meals)
	}
	// Day 2 has no generated entry and falls back to defaults.
	if resp.Days[1].Title == "" || len(resp.Days[1].Meals) != 3 {
		t.Errorf("day 2 fallback missing: %+v", resp.Days[1])
	}
}

func TestAssembleDeterministic(t *testing.T) {
	req := Request{Destination: "Madrid", StartDate: "01/01/2025", EndDate: "03/01/2025"}
	ranked := []recommend.Recommendation{rec("a", "First"), rec("b", "Second")}

	first := Assemble(req, ranked, nil, testNow)
	second := Assemble(req, ranked, nil, testNow)
	if first.EstimatedCost != second.EstimatedCost || first.Narrative != second.Narrative {
		t.Error("assembly not deterministic")
	}
	if len(first.Days) != len(second.Days) {
		t.Fatalf("day count differs")
	}
}

func TestEstimateActivityCost(t *testing.T) {
	park := places.Place{ID: "p", Category: "park", PriceLevel: 2}
	if got := EstimateActivityCost(park); got.Amount != 0 {
		t.Errorf("park cost = %d, want 0", got.Amount)
	}

	cheap := places.Place{ID: "r", Category: "restaurant", PriceLevel: 0}
	fancy := places.Place{ID: "r2", Category: "restaurant", PriceLevel: 4}
	if EstimateActivityCost(cheap).Amount >= EstimateActivityCost(fancy).Amount {
		t.Error("price level does not scale cost")
	}

	unknown := places.Place{ID: "u", Category: "laundromat", PriceLevel: 2}
	if got := EstimateActivityCost(unknown); got.Amount <= 0 {
		t.Errorf("unknown category cost = %d, want > 0", got.Amount)
	}
}

func TestTripCost(t *testing.T) {
	days := []DayPlan{
		{
			Activities: []Activity{{Cost: types.Money{Amount: 1000, Currency: "EUR"}}},
			Meals:      []Meal{{Cost: types.Money{Amount: 500, Currency: "EUR"}}},
		},
		{
			Activities: []Activity{{Cost: types.Money{Amount: 2000, Currency: "EUR"}}},
		},
	}
	if got := TripCost(days); got.Amount != 3500 {
		t.Errorf("TripCost = %d, want 3500", got.Amount)
	}
}
