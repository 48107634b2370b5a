// README: Fixed six-category taxonomy over raw provider category strings.
package places

// Category is one of the six top-level groupings shown as filter tabs in the
// app, plus Unmatched for raw categories we do not recognise.
type Category string

const (
	CategoryRestaurants Category = "restaurants"
	CategoryParks       Category = "parks"
	CategoryCulture     Category = "culture"
	CategoryShopping    Category = "shopping"
	CategoryNightlife   Category = "nightlife"
	CategoryHotels      Category = "hotels"
	CategoryUnmatched   Category = "unmatched"
)

// CategoryInfo carries the per-category display data and the raw provider
// strings that classify into it.
type CategoryInfo struct {
	Display string
	Emoji   string
	Raw     []string
}

// Categories lists the six selectable categories in tab order.
var Categories = []Category{
	CategoryRestaurants,
	CategoryParks,
	CategoryCulture,
	CategoryShopping,
	CategoryNightlife,
	CategoryHotels,
}

var categoryTable = map[Category]CategoryInfo{
	CategoryRestaurants: {
		Display: "Restaurants & Cafés",
		Emoji:   "🍽️",
		Raw:     []string{"restaurant", "cafe", "bakery", "meal_takeaway", "food"},
	},
	CategoryParks: {
		Display: "Parks & Nature",
		Emoji:   "🌳",
		Raw:     []string{"park", "natural_feature", "campground", "zoo", "aquarium"},
	},
	CategoryCulture: {
		Display: "Culture & Leisure",
		Emoji:   "🎭",
		Raw:     []string{"museum", "art_gallery", "movie_theater", "tourist_attraction", "library", "stadium"},
	},
	CategoryShopping: {
		Display: "Shopping",
		Emoji:   "🛍️",
		Raw:     []string{"shopping_mall", "department_store", "clothing_store", "supermarket", "store"},
	},
	CategoryNightlife: {
		Display: "Nightlife",
		Emoji:   "🌙",
		Raw:     []string{"bar", "night_club", "casino"},
	},
	CategoryHotels: {
		Display: "Hotels",
		Emoji:   "🏨",
		Raw:     []string{"lodging", "hotel", "hostel", "guest_house"},
	},
}

// rawIndex is the inverse mapping, built once at init.
var rawIndex = func() map[string]Category {
	idx := make(map[string]Category)
	for cat, info := range categoryTable {
		for _, raw := range info.Raw {
			idx[raw] = cat
		}
	}
	return idx
}()

// Classify maps a raw provider category string to its top-level category.
// Unknown strings return (CategoryUnmatched, false); such places are excluded
// from category-filtered views but remain eligible for generic ranking.
func Classify(raw string) (Category, bool) {
	cat, ok := rawIndex[raw]
	if !ok {
		return CategoryUnmatched, false
	}
	return cat, true
}

// Info returns the display data for a category. The zero CategoryInfo is
// returned for CategoryUnmatched.
func Info(cat Category) CategoryInfo {
	return categoryTable[cat]
}
