// README: Discovery handler tests over a stub place provider.
package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"rumbo/internal/places"
	"rumbo/internal/service"
	"rumbo/internal/types"
)

type stubProvider struct {
	result []places.Place
}

func (s *stubProvider) FetchPlaces(_ context.Context, _ types.Point, _ float64, _ int, _ places.Category) ([]places.Place, error) {
	return s.result, nil
}

func newDiscoverRouter(provider places.Provider) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewDiscoverHandler(service.NewRecommender(provider, 30, zap.NewNop()), 5, 20)
	r := gin.New()
	r.POST("/api/discover", h.Discover)
	r.GET("/api/categories", h.Categories)
	return r
}

func TestDiscoverHandler(t *testing.T) {
	provider := &stubProvider{result: []places.Place{{
		ID:       "g1",
		Name:     "Retiro Park",
		Category: "park",
		Position: types.Point{Lat: 40.415, Lng: -3.684},
		Rating:   4.7,
	}}}
	r := newDiscoverRouter(provider)

	body := `{"lat": 40.4168, "lng": -3.7038, "category": "parks"}`
	req := httptest.NewRequest(http.MethodPost, "/api/discover", strings.NewReader(body))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var resp struct {
		Recommendations []struct {
			Place struct {
				ID string `json:"id"`
			} `json:"place"`
			Score  float64 `json:"score"`
			Reason string  `json:"reason"`
		} `json:"recommendations"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Recommendations) != 1 {
		t.Fatalf("recommendations = %d, want 1", len(resp.Recommendations))
	}
	got := resp.Recommendations[0]
	if got.Place.ID != "g1" || got.Score < 0 || got.Score > 100 || got.Reason == "" {
		t.Errorf("unexpected recommendation: %+v", got)
	}
}

func TestDiscoverHandlerRejectsBadInput(t *testing.T) {
	r := newDiscoverRouter(&stubProvider{})

	tests := []struct {
		name string
		body string
	}{
		{"invalid json", `{`},
		{"invalid location", `{"lat": 123.0, "lng": -3.7}`},
		{"unknown category", `{"lat": 40.4, "lng": -3.7, "category": "volcanoes"}`},
		{"unknown time of day", `{"lat": 40.4, "lng": -3.7, "time_of_day": "midnight"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/discover", strings.NewReader(tt.body))
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			if w.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", w.Code)
			}
		})
	}
}

func TestCategoriesHandler(t *testing.T) {
	r := newDiscoverRouter(&stubProvider{})

	req := httptest.NewRequest(http.MethodGet, "/api/categories", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var resp struct {
		Categories []struct {
			ID      string `json:"id"`
			Display string `json:"display"`
			Emoji   string `json:"emoji"`
		} `json:"categories"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Categories) != 6 {
		t.Fatalf("categories = %d, want 6", len(resp.Categories))
	}
	for _, c := range resp.Categories {
		if c.ID == "" || c.Display == "" || c.Emoji == "" {
			t.Errorf("incomplete category: %+v", c)
		}
	}
}
