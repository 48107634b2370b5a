// README: Base handler utilities (JSON helpers, error mapping).
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"rumbo/internal/modules/favorite"
	"rumbo/internal/modules/plan"
	"rumbo/internal/modules/quota"
	"rumbo/internal/modules/recent"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(c *gin.Context, status int, v any) {
	c.JSON(status, v)
}

func writeError(c *gin.Context, status int, msg string) {
	writeJSON(c, status, errorResponse{Error: msg})
}

// writeServiceError maps module sentinel errors onto HTTP statuses.
func writeServiceError(c *gin.Context, err error) {
	switch err {
	case plan.ErrBadRequest, recent.ErrBadRequest, favorite.ErrBadRequest:
		writeError(c, http.StatusBadRequest, err.Error())
	case plan.ErrUnauthenticated, recent.ErrUnauthenticated, favorite.ErrUnauthenticated:
		writeError(c, http.StatusUnauthorized, err.Error())
	case plan.ErrNotFound:
		writeError(c, http.StatusNotFound, err.Error())
	case quota.ErrQuotaExhausted:
		writeError(c, http.StatusTooManyRequests, err.Error())
	default:
		writeError(c, http.StatusInternalServerError, "internal error")
	}
}
