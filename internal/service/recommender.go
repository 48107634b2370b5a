// README: Recommender orchestrates candidate fetch, aggregation, and ranking.
package service

import (
	"context"

	"go.uber.org/zap"

	"rumbo/internal/places"
	"rumbo/internal/recommend"
	"rumbo/internal/types"
)

// Recommender runs the discovery pipeline. The pure scoring core never sees
// transport errors: a failing provider contributes an empty candidate list
// and the pipeline still returns a valid (possibly empty) ranking.
type Recommender struct {
	provider      places.Provider
	maxCandidates int
	log           *zap.Logger
}

func NewRecommender(provider places.Provider, maxCandidates int, log *zap.Logger) *Recommender {
	return &Recommender{provider: provider, maxCandidates: maxCandidates, log: log}
}

// DiscoverCommand describes one discovery request.
type DiscoverCommand struct {
	Origin    types.Point
	RadiusKm  float64
	Limit     int
	Category  places.Category // empty = all categories
	Weather   string
	TimeOfDay recommend.TimeOfDay
	User      recommend.UserContext
	Weights   recommend.Weights
}

// Discover fetches candidates, deduplicates them, and returns the ranked
// recommendations truncated to cmd.Limit.
func (r *Recommender) Discover(ctx context.Context, cmd DiscoverCommand) []recommend.Recommendation {
	categories := []places.Category{cmd.Category}
	if cmd.Category == "" {
		categories = places.Categories
	}

	lists := make([][]places.Place, 0, len(categories))
	for _, cat := range categories {
		batch, err := r.provider.FetchPlaces(ctx, cmd.Origin, cmd.RadiusKm, cmd.Limit, cat)
		if err != nil {
			r.log.Warn("place fetch failed, continuing with partial candidates",
				zap.String("category", string(cat)), zap.Error(err))
			continue
		}
		lists = append(lists, batch)
	}

	candidates := places.Aggregate(lists, r.maxCandidates)

	sig := recommend.Signals{
		Origin:    cmd.Origin,
		RadiusKm:  cmd.RadiusKm,
		Weather:   cmd.Weather,
		TimeOfDay: cmd.TimeOfDay,
	}
	ranked := recommend.Rank(candidates, cmd.User, sig, cmd.Weights)
	if cmd.Limit > 0 && len(ranked) > cmd.Limit {
		ranked = ranked[:cmd.Limit]
	}
	return ranked
}
