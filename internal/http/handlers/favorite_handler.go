// README: Favorite places handler (toggle + list).
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"rumbo/internal/http/middleware"
	"rumbo/internal/modules/favorite"
	"rumbo/internal/types"
)

type FavoriteHandler struct {
	favorites *favorite.Service
}

func NewFavoriteHandler(favorites *favorite.Service) *FavoriteHandler {
	return &FavoriteHandler{favorites: favorites}
}

// Toggle handles POST /api/favorites/toggle.
func (h *FavoriteHandler) Toggle(c *gin.Context) {
	var req placePayload
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}

	uid := middleware.CallerUID(c)
	favorited, err := h.favorites.Toggle(c.Request.Context(), types.ID(uid), req.toPlace())
	if err != nil {
		writeServiceError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"favorited": favorited})
}

// List handles GET /api/favorites.
func (h *FavoriteHandler) List(c *gin.Context) {
	uid := middleware.CallerUID(c)
	entries, err := h.favorites.List(c.Request.Context(), types.ID(uid))
	if err != nil {
		writeServiceError(c, err)
		return
	}

	out := make([]placePayload, 0, len(entries))
	for _, e := range entries {
		out = append(out, placePayload{
			ID:       string(e.PlaceID),
			Name:     e.Name,
			Address:  e.Address,
			Lat:      e.Position.Lat,
			Lng:      e.Position.Lng,
			Category: e.Category,
			Rating:   e.Rating,
			PhotoRef: e.PhotoRef,
		})
	}
	writeJSON(c, http.StatusOK, gin.H{"favorites": out})
}
