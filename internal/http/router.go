// README: HTTP router registration.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"rumbo/internal/http/handlers"
	"rumbo/internal/http/middleware"
	"rumbo/internal/infra"
	"rumbo/internal/modules/favorite"
	"rumbo/internal/modules/plan"
	"rumbo/internal/modules/recent"
	"rumbo/internal/service"
)

type RouterDeps struct {
	Recommender *service.Recommender
	Plans       *plan.Service
	Recents     *recent.Service
	Favorites   *favorite.Service
	Verifier    infra.TokenVerifier
	Log         *zap.Logger

	DefaultRadiusKm float64
	DefaultLimit    int
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Recovery(deps.Log))
	r.Use(middleware.Logging(deps.Log))

	discover := handlers.NewDiscoverHandler(deps.Recommender, deps.DefaultRadiusKm, deps.DefaultLimit)
	plans := handlers.NewPlanHandler(deps.Plans, deps.Recommender)
	recents := handlers.NewRecentHandler(deps.Recents)
	favorites := handlers.NewFavoriteHandler(deps.Favorites)

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	api := r.Group("/api")
	api.POST("/discover", discover.Discover)
	api.GET("/categories", discover.Categories)

	authed := api.Group("")
	authed.Use(middleware.Auth(deps.Verifier))
	authed.POST("/plans", plans.Create)
	authed.GET("/plans", plans.List)
	authed.GET("/plans/:id", plans.Get)
	authed.GET("/recents", recents.List)
	authed.POST("/recents", recents.Record)
	authed.DELETE("/recents", recents.Clear)
	authed.DELETE("/recents/:id", recents.Remove)
	authed.GET("/favorites", favorites.List)
	authed.POST("/favorites/toggle", favorites.Toggle)

	return r
}
