package ai

import "rumbo/internal/itinerary"

// generatedResponse mirrors the JSON schema requested from the model.
type generatedResponse struct {
	Narrative string         `json:"narrative"`
	Days      []generatedDay `json:"days"`
	Tips      []string       `json:"tips"`
}

type generatedDay struct {
	Title string          `json:"title"`
	Meals []generatedMeal `json:"meals"`
}

type generatedMeal struct {
	Type           string `json:"type"` // breakfast, lunch, dinner
	Recommendation string `json:"recommendation"`
	CostCents      int64  `json:"cost_cents"`
}

func (r generatedResponse) toContent() *itinerary.GeneratedContent {
	out := &itinerary.GeneratedContent{
		Narrative: r.Narrative,
		Tips:      r.Tips,
	}
	for _, d := range r.Days {
		day := itinerary.GeneratedDay{Title: d.Title}
		for _, m := range d.Meals {
			day.Meals = append(day.Meals, itinerary.Meal{
				Type:           itinerary.MealType(m.Type),
				Recommendation: m.Recommendation,
				Cost:           mealMoney(m.CostCents),
			})
		}
		out.Days = append(out.Days, day)
	}
	return out
}
