// README: Discovery handler (ranked nearby places + category taxonomy).
package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"rumbo/internal/places"
	"rumbo/internal/recommend"
	"rumbo/internal/service"
	"rumbo/internal/types"
)

type DiscoverHandler struct {
	rec             *service.Recommender
	defaultRadiusKm float64
	defaultLimit    int
}

func NewDiscoverHandler(rec *service.Recommender, defaultRadiusKm float64, defaultLimit int) *DiscoverHandler {
	return &DiscoverHandler{rec: rec, defaultRadiusKm: defaultRadiusKm, defaultLimit: defaultLimit}
}

type discoverReq struct {
	Lat       float64 `json:"lat"`
	Lng       float64 `json:"lng"`
	RadiusKm  float64 `json:"radius_km"`
	Limit     int     `json:"limit"`
	Category  string  `json:"category"`
	Weather   string  `json:"weather"`
	TimeOfDay string  `json:"time_of_day"`

	FavoriteCategories []string `json:"favorite_categories"`
	FrequentTags       []string `json:"frequent_tags"`
	AveragePriceLevel  float64  `json:"average_price_level"`
}

// Discover handles POST /api/discover.
func (h *DiscoverHandler) Discover(c *gin.Context) {
	var req discoverReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}

	origin := types.Point{Lat: req.Lat, Lng: req.Lng}
	if !origin.Valid() {
		writeError(c, http.StatusBadRequest, "invalid location")
		return
	}

	var category places.Category
	if req.Category != "" {
		category = places.Category(req.Category)
		if len(places.Info(category).Raw) == 0 {
			writeError(c, http.StatusBadRequest, "unknown category")
			return
		}
	}

	tod := recommend.TimeOfDay(req.TimeOfDay)
	switch tod {
	case recommend.Morning, recommend.Afternoon, recommend.Evening:
	case "":
		tod = recommend.TimeOfDayAt(time.Now())
	default:
		writeError(c, http.StatusBadRequest, "unknown time_of_day")
		return
	}

	radius := req.RadiusKm
	if radius <= 0 {
		radius = h.defaultRadiusKm
	}
	limit := req.Limit
	if limit <= 0 {
		limit = h.defaultLimit
	}

	ranked := h.rec.Discover(c.Request.Context(), service.DiscoverCommand{
		Origin:    origin,
		RadiusKm:  radius,
		Limit:     limit,
		Category:  category,
		Weather:   req.Weather,
		TimeOfDay: tod,
		User: recommend.UserContext{
			FavoriteCategories: req.FavoriteCategories,
			FrequentTags:       req.FrequentTags,
			AveragePriceLevel:  req.AveragePriceLevel,
		},
		Weights: recommend.DefaultWeights(),
	})

	out := make([]recommendationPayload, 0, len(ranked))
	for _, r := range ranked {
		out = append(out, fromRecommendation(r))
	}
	writeJSON(c, http.StatusOK, gin.H{"recommendations": out})
}

type categoryPayload struct {
	ID      string `json:"id"`
	Display string `json:"display"`
	Emoji   string `json:"emoji"`
}

// Categories handles GET /api/categories.
func (h *DiscoverHandler) Categories(c *gin.Context) {
	out := make([]categoryPayload, 0, len(places.Categories))
	for _, cat := range places.Categories {
		info := places.Info(cat)
		out = append(out, categoryPayload{ID: string(cat), Display: info.Display, Emoji: info.Emoji})
	}
	writeJSON(c, http.StatusOK, gin.H{"categories": out})
}
