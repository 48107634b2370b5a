// README: Travel plan handler (creation consumes the monthly free quota).
package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"rumbo/internal/http/middleware"
	"rumbo/internal/itinerary"
	"rumbo/internal/modules/plan"
	"rumbo/internal/recommend"
	"rumbo/internal/service"
	"rumbo/internal/types"
)

// planCandidateLimit is how many ranked nearby places feed into a new plan.
const planCandidateLimit = 12

type PlanHandler struct {
	plans *plan.Service
	rec   *service.Recommender
}

func NewPlanHandler(plans *plan.Service, rec *service.Recommender) *PlanHandler {
	return &PlanHandler{plans: plans, rec: rec}
}

type planCreateReq struct {
	Destination string   `json:"destination"`
	StartDate   string   `json:"start_date"`
	EndDate     string   `json:"end_date"`
	BudgetTier  string   `json:"budget_tier"`
	Interests   []string `json:"interests"`
	TravelStyle string   `json:"travel_style"`
	Companions  string   `json:"companions"`
	DeviceToken string   `json:"device_token"`

	// Optional: where to look for nearby places to slot into the plan.
	Lat      float64 `json:"lat"`
	Lng      float64 `json:"lng"`
	RadiusKm float64 `json:"radius_km"`
}

// Create handles POST /api/plans.
func (h *PlanHandler) Create(c *gin.Context) {
	var req planCreateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}

	uid := middleware.CallerUID(c)

	var ranked []recommend.Recommendation
	origin := types.Point{Lat: req.Lat, Lng: req.Lng}
	if origin.Valid() && (req.Lat != 0 || req.Lng != 0) {
		radius := req.RadiusKm
		if radius <= 0 {
			radius = 5
		}
		ranked = h.rec.Discover(c.Request.Context(), service.DiscoverCommand{
			Origin:    origin,
			RadiusKm:  radius,
			Limit:     planCandidateLimit,
			TimeOfDay: recommend.TimeOfDayAt(time.Now()),
			User:      recommend.UserContext{FrequentTags: req.Interests},
			Weights:   recommend.DefaultWeights(),
		})
	}

	res, err := h.plans.Create(c.Request.Context(), plan.CreateCommand{
		UserID: types.ID(uid),
		Request: itinerary.Request{
			Destination: req.Destination,
			StartDate:   req.StartDate,
			EndDate:     req.EndDate,
			BudgetTier:  req.BudgetTier,
			Interests:   req.Interests,
			TravelStyle: req.TravelStyle,
			Companions:  req.Companions,
		},
		Ranked:      ranked,
		DeviceToken: req.DeviceToken,
	})
	if err != nil {
		writeServiceError(c, err)
		return
	}

	writeJSON(c, http.StatusCreated, gin.H{
		"plan":     res.Plan,
		"response": res.Response,
		"warning":  res.Warning,
	})
}

// Get handles GET /api/plans/:id.
func (h *PlanHandler) Get(c *gin.Context) {
	uid := middleware.CallerUID(c)
	p, err := h.plans.Get(c.Request.Context(), types.ID(uid), types.ID(c.Param("id")))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, p)
}

// List handles GET /api/plans.
func (h *PlanHandler) List(c *gin.Context) {
	uid := middleware.CallerUID(c)
	out, err := h.plans.List(c.Request.Context(), types.ID(uid))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"plans": out})
}
