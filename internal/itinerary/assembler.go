// README: Pure day-by-day plan assembly over ranked places.
package itinerary

import (
	"fmt"
	"strings"
	"time"

	"rumbo/internal/recommend"
)

// dateLayouts are tried in order when parsing client-supplied dates.
var dateLayouts = []string{"02/01/2006", "2006-01-02"}

const warnUnparsableDates = "dates could not be parsed; defaulted to a 1-day plan"

var slotOrder = []recommend.TimeOfDay{recommend.Morning, recommend.Afternoon, recommend.Evening}

// mealKeywords tag an activity as a meal stop when its name matches.
var mealKeywords = []string{
	"breakfast", "brunch", "lunch", "dinner",
	"desayuno", "almuerzo", "cena",
}

// Assemble builds a complete day-by-day plan. It is pure and total: any
// combination of inputs, including an empty ranked list, unparsable dates,
// or a nil generated content, yields a structurally valid Response with
// exactly Duration DayPlan entries numbered 1..Duration.
func Assemble(req Request, ranked []recommend.Recommendation, generated *GeneratedContent, now time.Time) Response {
	start, duration, datesOK := tripDuration(req.StartDate, req.EndDate)

	days := make([]DayPlan, duration)
	for i := range days {
		days[i] = DayPlan{
			Day:        i + 1,
			Title:      dayTitle(generated, i, req.Destination),
			Activities: []Activity{},
			Meals:      dayMeals(generated, i, req.Destination),
		}
		if datesOK {
			days[i].Date = start.AddDate(0, 0, i).Format("02/01/2006")
		}
	}

	// Round-robin over days; rank order is preserved within each day and
	// slots cycle morning, afternoon, evening.
	for i, rec := range ranked {
		d := i % duration
		slot := slotOrder[len(days[d].Activities)%len(slotOrder)]
		days[d].Activities = append(days[d].Activities, Activity{
			Slot:        slot,
			Kind:        classifyActivity(rec.Place.Name),
			Name:        rec.Place.Name,
			Description: rec.Reason,
			Location:    rec.Place.Address,
			Cost:        EstimateActivityCost(rec.Place),
			Duration:    rec.EstimatedDuration,
		})
	}

	resp := Response{
		Destination:     req.Destination,
		Duration:        duration,
		Narrative:       narrative(generated, req.Destination, duration),
		Days:            days,
		EstimatedCost:   TripCost(days),
		Recommendations: ranked,
		GeneratedAt:     now,
	}
	if generated != nil {
		resp.Tips = generated.Tips
	}
	if !datesOK {
		resp.Warning = warnUnparsableDates
	}
	return resp
}

// tripDuration computes the inclusive trip length in days. Unparsable dates
// or an end before the start degrade to a single day rather than failing.
func tripDuration(startStr, endStr string) (time.Time, int, bool) {
	start, err1 := parseDate(startStr)
	end, err2 := parseDate(endStr)
	if err1 != nil || err2 != nil {
		return time.Time{}, 1, false
	}
	days := int(end.Sub(start).Hours()/24) + 1
	if days < 1 {
		days = 1
	}
	return start, days, true
}

func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	var lastErr error
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	if lastErr == nil {
		lastErr = fmt.Errorf("empty date")
	}
	return time.Time{}, lastErr
}

func classifyActivity(name string) ActivityKind {
	lower := strings.ToLower(name)
	for _, kw := range mealKeywords {
		if strings.Contains(lower, kw) {
			return KindMeal
		}
	}
	return KindActivity
}

func dayTitle(g *GeneratedContent, i int, destination string) string {
	if g != nil && i < len(g.Days) && g.Days[i].Title != "" {
		return g.Days[i].Title
	}
	return fmt.Sprintf("Day %d in %s", i+1, destination)
}

func dayMeals(g *GeneratedContent, i int, destination string) []Meal {
	if g != nil && i < len(g.Days) && len(g.Days[i].Meals) > 0 {
		return g.Days[i].Meals
	}
	return defaultMeals(destination)
}

func defaultMeals(destination string) []Meal {
	return []Meal{
		{Type: Breakfast, Recommendation: "Breakfast at a local café", Cost: mealCost(Breakfast)},
		{Type: Lunch, Recommendation: "Lunch near the day's activities", Cost: mealCost(Lunch)},
		{Type: Dinner, Recommendation: "Dinner at a recommended restaurant in " + destination, Cost: mealCost(Dinner)},
	}
}

func narrative(g *GeneratedContent, destination string, duration int) string {
	if g != nil && g.Narrative != "" {
		return g.Narrative
	}
	return fmt.Sprintf("A %d-day trip to %s built from your top-ranked nearby places.", duration, destination)
}
