package places

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		raw     string
		want    Category
		matched bool
	}{
		{"restaurant", CategoryRestaurants, true},
		{"cafe", CategoryRestaurants, true},
		{"park", CategoryParks, true},
		{"museum", CategoryCulture, true},
		{"shopping_mall", CategoryShopping, true},
		{"night_club", CategoryNightlife, true},
		{"lodging", CategoryHotels, true},
		{"laundromat", CategoryUnmatched, false},
		{"", CategoryUnmatched, false},
		{"Restaurant", CategoryUnmatched, false}, // raw strings are case sensitive
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, ok := Classify(tt.raw)
			if got != tt.want || ok != tt.matched {
				t.Errorf("Classify(%q) = (%v, %v), want (%v, %v)",
					tt.raw, got, ok, tt.want, tt.matched)
			}
		})
	}
}

func TestRawStringsDisjoint(t *testing.T) {
	seen := make(map[string]Category)
	for cat, info := range categoryTable {
		for _, raw := range info.Raw {
			if prev, dup := seen[raw]; dup {
				t.Errorf("raw string %q mapped to both %v and %v", raw, prev, cat)
			}
			seen[raw] = cat
		}
	}
}

func TestCategoriesHaveInfo(t *testing.T) {
	for _, cat := range Categories {
		info := Info(cat)
		if info.Display == "" || info.Emoji == "" || len(info.Raw) == 0 {
			t.Errorf("category %v has incomplete info: %+v", cat, info)
		}
	}
	if got := Info(CategoryUnmatched); got.Display != "" {
		t.Errorf("Info(unmatched) = %+v, want zero value", got)
	}
}
