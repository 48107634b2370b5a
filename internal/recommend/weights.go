// README: Scoring weights and normalization.
package recommend

// Weights sets the relative importance of each scoring feature. Weights are
// non-negative and normalized to sum 1.0 before use; callers may hand in any
// non-negative vector.
type Weights struct {
	CategoryMatch float64
	TagMatch      float64
	Rating        float64
	Distance      float64
	PriceMatch    float64
	TimeContext   float64
	WeatherMatch  float64
}

// DefaultWeights returns the production weight vector (already normalized).
func DefaultWeights() Weights {
	return Weights{
		CategoryMatch: 0.25,
		TagMatch:      0.15,
		Rating:        0.20,
		Distance:      0.15,
		PriceMatch:    0.10,
		TimeContext:   0.10,
		WeatherMatch:  0.05,
	}
}

// Normalize rescales the vector to sum 1.0. Negative components are clamped
// to zero first; an all-zero vector falls back to the defaults.
func (w Weights) Normalize() Weights {
	clamp := func(v float64) float64 {
		if v < 0 {
			return 0
		}
		return v
	}
	w.CategoryMatch = clamp(w.CategoryMatch)
	w.TagMatch = clamp(w.TagMatch)
	w.Rating = clamp(w.Rating)
	w.Distance = clamp(w.Distance)
	w.PriceMatch = clamp(w.PriceMatch)
	w.TimeContext = clamp(w.TimeContext)
	w.WeatherMatch = clamp(w.WeatherMatch)

	sum := w.CategoryMatch + w.TagMatch + w.Rating + w.Distance +
		w.PriceMatch + w.TimeContext + w.WeatherMatch
	if sum == 0 {
		return DefaultWeights()
	}
	w.CategoryMatch /= sum
	w.TagMatch /= sum
	w.Rating /= sum
	w.Distance /= sum
	w.PriceMatch /= sum
	w.TimeContext /= sum
	w.WeatherMatch /= sum
	return w
}
