// README: Weighted linear scorer and deterministic ranking.
package recommend

import (
	"math"
	"sort"
	"strings"
	"time"

	"rumbo/internal/places"
)

const partialCategoryCredit = 0.3

// reasonThreshold is the minimum weighted contribution for a sub-score to be
// cited in the explanation.
const reasonThreshold = 0.12

// timeContextDefault applies when no daypart rule exists for a category.
const timeContextDefault = 0.5

// timeContextTable maps daypart × category to a suitability constant.
// Bars score low in the morning; parks score low at night.
var timeContextTable = map[TimeOfDay]map[places.Category]float64{
	Morning: {
		places.CategoryRestaurants: 0.8,
		places.CategoryParks:       0.9,
		places.CategoryCulture:     0.6,
		places.CategoryNightlife:   0.1,
		places.CategoryHotels:      0.3,
	},
	Afternoon: {
		places.CategoryCulture:  0.9,
		places.CategoryShopping: 0.8,
		places.CategoryParks:    0.7,
		places.CategoryNightlife: 0.3,
	},
	Evening: {
		places.CategoryRestaurants: 0.9,
		places.CategoryNightlife:   1.0,
		places.CategoryParks:       0.4,
		places.CategoryShopping:    0.4,
		places.CategoryHotels:      0.7,
	},
}

// visitDuration is the rough time budget a user spends per category, used to
// pre-fill the recommendation's estimated duration for itinerary slotting.
var visitDuration = map[places.Category]time.Duration{
	places.CategoryRestaurants: 90 * time.Minute,
	places.CategoryParks:       2 * time.Hour,
	places.CategoryCulture:     2 * time.Hour,
	places.CategoryShopping:    time.Hour,
	places.CategoryNightlife:   2 * time.Hour,
	places.CategoryHotels:      30 * time.Minute,
}

type subScores struct {
	category float64
	tag      float64
	rating   float64
	distance float64
	price    float64
	time     float64
	weather  float64
}

// Score computes the 0–100 suitability of a single place for the given user
// and request signals. It is pure and deterministic: identical inputs always
// produce an identical Recommendation, and malformed places are defensively
// defaulted rather than rejected.
func Score(p places.Place, user UserContext, sig Signals, w Weights) Recommendation {
	p = p.Sanitize()
	w = w.Normalize()

	distKm := haversineKm(sig.Origin.Lat, sig.Origin.Lng, p.Position.Lat, p.Position.Lng)
	cat, _ := places.Classify(p.Category)

	var s subScores
	s.category = categoryScore(p.Category, cat, user.FavoriteCategories)
	s.tag = tagScore(p.Tags, user.FrequentTags)
	s.rating = p.Rating / 5.0
	s.distance = distanceScore(distKm, sig.RadiusKm)
	s.price = priceScore(p.PriceLevel, user.AveragePriceLevel)
	s.time = timeContextScore(sig.TimeOfDay, cat)
	s.weather = weatherScore(sig.Weather, p.WeatherSuitable)

	total := w.CategoryMatch*s.category +
		w.TagMatch*s.tag +
		w.Rating*s.rating +
		w.Distance*s.distance +
		w.PriceMatch*s.price +
		w.TimeContext*s.time +
		w.WeatherMatch*s.weather

	score := math.Min(100, math.Max(0, total*100))

	dur := visitDuration[cat]
	if dur == 0 {
		dur = time.Hour
	}

	return Recommendation{
		Place:             p,
		Score:             score,
		Reason:            buildReason(s, w),
		DistanceKm:        distKm,
		EstimatedDuration: dur,
	}
}

// Rank scores every candidate and orders the result by score descending.
// Ties break by rating descending, then distance ascending, then place ID
// ascending, so the ranking is stable under input reordering. An empty
// candidate list yields an empty (non-nil) result.
func Rank(candidates []places.Place, user UserContext, sig Signals, w Weights) []Recommendation {
	out := make([]Recommendation, 0, len(candidates))
	for _, p := range candidates {
		out = append(out, Score(p, user, sig, w))
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		if a.Place.Rating != b.Place.Rating {
			return a.Place.Rating > b.Place.Rating
		}
		if a.DistanceKm != b.DistanceKm {
			return a.DistanceKm < b.DistanceKm
		}
		return a.Place.ID < b.Place.ID
	})
	return out
}

func categoryScore(raw string, cat places.Category, favorites []string) float64 {
	for _, fav := range favorites {
		if fav == raw {
			return 1.0
		}
	}
	if cat == places.CategoryUnmatched {
		return 0
	}
	for _, fav := range favorites {
		if favCat, ok := places.Classify(fav); ok && favCat == cat {
			return partialCategoryCredit
		}
	}
	return 0
}

func tagScore(tags, frequent []string) float64 {
	if len(tags) == 0 {
		return 0
	}
	freq := make(map[string]struct{}, len(frequent))
	for _, t := range frequent {
		freq[strings.ToLower(t)] = struct{}{}
	}
	matched := 0
	for _, t := range tags {
		if _, ok := freq[strings.ToLower(t)]; ok {
			matched++
		}
	}
	return float64(matched) / float64(len(tags))
}

func distanceScore(distKm, radiusKm float64) float64 {
	if radiusKm <= 0 {
		return 0
	}
	return math.Max(0, 1-distKm/radiusKm)
}

func priceScore(priceLevel int, avg float64) float64 {
	s := 1 - math.Abs(float64(priceLevel)-avg)/4
	return math.Min(1, math.Max(0, s))
}

func timeContextScore(tod TimeOfDay, cat places.Category) float64 {
	if rules, ok := timeContextTable[tod]; ok {
		if v, ok := rules[cat]; ok {
			return v
		}
	}
	return timeContextDefault
}

// weatherScore is 1.0 when the current weather is unknown or listed in the
// place's suitability set. An empty set suits nothing in known weather.
func weatherScore(weather string, suitable []string) float64 {
	if weather == "" {
		return 1.0
	}
	for _, w := range suitable {
		if strings.EqualFold(w, weather) {
			return 1.0
		}
	}
	return 0
}

// buildReason cites the dominant weighted sub-scores in a short template.
func buildReason(s subScores, w Weights) string {
	type term struct {
		contribution float64
		text         string
	}
	terms := []term{
		{w.CategoryMatch * s.category, "matches your favorite categories"},
		{w.TagMatch * s.tag, "matches what you usually look for"},
		{w.Rating * s.rating, "highly rated"},
		{w.Distance * s.distance, "close to you"},
		{w.PriceMatch * s.price, "fits your budget"},
		{w.TimeContext * s.time, "a good pick for this time of day"},
		{w.WeatherMatch * s.weather, "suits the current weather"},
	}
	sort.SliceStable(terms, func(i, j int) bool {
		return terms[i].contribution > terms[j].contribution
	})

	picked := make([]string, 0, 2)
	for _, t := range terms {
		if t.contribution < reasonThreshold || len(picked) == 2 {
			break
		}
		picked = append(picked, t.text)
	}
	if len(picked) == 0 {
		return "A balanced match for your preferences"
	}
	reason := strings.ToUpper(picked[0][:1]) + picked[0][1:]
	if len(picked) == 2 {
		reason += " and " + picked[1]
	}
	return reason
}
