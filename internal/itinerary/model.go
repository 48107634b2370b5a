// README: Itinerary request/response model shared by the assembler and the AI generator.
package itinerary

import (
	"time"

	"rumbo/internal/recommend"
	"rumbo/internal/types"
)

// ActivityKind distinguishes meal stops from generic activities for rendering.
type ActivityKind string

const (
	KindActivity ActivityKind = "activity"
	KindMeal     ActivityKind = "meal"
)

// MealType is the daypart a meal suggestion belongs to.
type MealType string

const (
	Breakfast MealType = "breakfast"
	Lunch     MealType = "lunch"
	Dinner    MealType = "dinner"
)

// Request describes one planning call. Dates arrive as strings in the mobile
// client's dd/mm/yyyy format; ISO yyyy-mm-dd is accepted as well.
type Request struct {
	Destination string   `json:"destination"`
	StartDate   string   `json:"start_date"`
	EndDate     string   `json:"end_date"`
	BudgetTier  string   `json:"budget_tier"` // low, medium, high
	Interests   []string `json:"interests"`
	TravelStyle string   `json:"travel_style"`
	Companions  string   `json:"companions"`
}

// Activity is one scheduled item inside a day.
type Activity struct {
	Slot        recommend.TimeOfDay `json:"slot"`
	Kind        ActivityKind        `json:"kind"`
	Name        string              `json:"name"`
	Description string              `json:"description"`
	Location    string              `json:"location,omitempty"`
	Cost        types.Money         `json:"cost"`
	Duration    time.Duration       `json:"duration"`
}

// Meal is one suggested meal for a day.
type Meal struct {
	Type           MealType    `json:"type"`
	Recommendation string      `json:"recommendation"`
	Cost           types.Money `json:"cost"`
}

// DayPlan is one calendar day of the trip. Days are 1-indexed and contiguous;
// an empty Activities list is valid.
type DayPlan struct {
	Day        int        `json:"day"`
	Date       string     `json:"date,omitempty"` // dd/mm/yyyy, empty when dates were unparsable
	Title      string     `json:"title"`
	Activities []Activity `json:"activities"`
	Meals      []Meal     `json:"meals"`
}

// Response is the assembled plan. It is always structurally valid: Days holds
// exactly Duration entries numbered 1..Duration even when inputs were empty.
type Response struct {
	Destination     string                     `json:"destination"`
	Duration        int                        `json:"duration"`
	Narrative       string                     `json:"narrative"`
	Days            []DayPlan                  `json:"days"`
	EstimatedCost   types.Money                `json:"estimated_cost"`
	Tips            []string                   `json:"tips,omitempty"`
	Recommendations []recommend.Recommendation `json:"recommendations,omitempty"`
	Warning         string                     `json:"warning,omitempty"`
	GeneratedAt     time.Time                  `json:"generated_at"`
}

// GeneratedContent is the narrative material produced by the AI generator.
// A nil *GeneratedContent means the generator was unavailable; the assembler
// substitutes placeholders so the response stays valid.
type GeneratedContent struct {
	Narrative string
	Days      []GeneratedDay
	Tips      []string
}

// GeneratedDay carries per-day narrative extras keyed by position (day 1 is
// index 0). Missing entries fall back to defaults.
type GeneratedDay struct {
	Title string
	Meals []Meal
}
