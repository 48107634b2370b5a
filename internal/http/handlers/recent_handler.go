// README: Recently-viewed places handler.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"rumbo/internal/http/middleware"
	"rumbo/internal/modules/recent"
	"rumbo/internal/types"
)

type RecentHandler struct {
	recents *recent.Service
}

func NewRecentHandler(recents *recent.Service) *RecentHandler {
	return &RecentHandler{recents: recents}
}

// Record handles POST /api/recents.
func (h *RecentHandler) Record(c *gin.Context) {
	var req placePayload
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}

	uid := middleware.CallerUID(c)
	if err := h.recents.Record(c.Request.Context(), types.ID(uid), req.toPlace()); err != nil {
		writeServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// List handles GET /api/recents.
func (h *RecentHandler) List(c *gin.Context) {
	uid := middleware.CallerUID(c)
	entries, err := h.recents.List(c.Request.Context(), types.ID(uid))
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
	writeJSON(c, http.StatusOK, gin.H{"recents": out})
}

// Remove handles DELETE /api/recents/:id.
func (h *RecentHandler) Remove(c *gin.Context) {
	placeID := c.Param("id")
	uid := middleware.CallerUID(c)
	if err := h.recents.Remove(c.Request.Context(), types.ID(uid), types.ID(placeID)); err != nil {
		writeServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Clear handles DELETE /api/recents.
func (h *RecentHandler) Clear(c *gin.Context) {
	uid := middleware.CallerUID(c)
	if err := h.recents.Clear(c.Request.Context(), types.ID(uid)); err != nil {
		writeServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
