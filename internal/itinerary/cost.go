// README: Static cost estimation tables for activities and meals.
package itinerary

import (
	"rumbo/internal/places"
	"rumbo/internal/types"
)

const costCurrency = "EUR"

// baseActivityCost is the per-visit estimate in cents for a mid-range place
// of each category. Free categories carry a zero base.
var baseActivityCost = map[places.Category]int64{
	places.CategoryRestaurants: 2500,
	places.CategoryParks:       0,
	places.CategoryCulture:     1500,
	places.CategoryShopping:    3000,
	places.CategoryNightlife:   2000,
	places.CategoryHotels:      8000,
}

// priceLevelFactor scales the base by the provider's 0..4 price level.
var priceLevelFactor = [5]float64{0.5, 0.75, 1.0, 1.5, 2.5}

var mealCosts = map[MealType]int64{
	Breakfast: 800,
	Lunch:     1500,
	Dinner:    2500,
}

// EstimateActivityCost returns a rough per-person cost for visiting a place.
// Unknown categories estimate as a generic paid attraction.
func EstimateActivityCost(p places.Place) types.Money {
	p = p.Sanitize()
	cat, ok := places.Classify(p.Category)
	base := int64(1000)
	if ok {
		base = baseActivityCost[cat]
	}
	amount := int64(float64(base) * priceLevelFactor[p.PriceLevel])
	return types.Money{Amount: amount, Currency: costCurrency}
}

func mealCost(t MealType) types.Money {
	return types.Money{Amount: mealCosts[t], Currency: costCurrency}
}

// TripCost sums activity and meal estimates across all days.
func TripCost(days []DayPlan) types.Money {
	var total int64
	for _, d := range days {
		for _, a := range d.Activities {
			total += a.Cost.Amount
		}
		for _, m := range d.Meals {
			total += m.Cost.Amount
		}
	}
	return types.Money{Amount: total, Currency: costCurrency}
}
