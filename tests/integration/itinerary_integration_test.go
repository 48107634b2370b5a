// README: End-to-end generation test against live Gemini (env-gated).
package integration

import (
	"context"
	"os"
	"strings"
	"testing"
	"time"

	"rumbo/internal/ai"
	"rumbo/internal/itinerary"
)

func TestGeminiItineraryGeneration(t *testing.T) {
	apiKey := strings.TrimSpace(os.Getenv("GEMINI_API_KEY"))
	if apiKey == "" {
		t.Skip("GEMINI_API_KEY not set; skipping live Gemini test")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	gen, err := ai.NewGeminiGenerator(ctx, apiKey)
	if err != nil {
		t.Fatalf("init generator: %v", err)
	}
	defer gen.Close()

	req := itinerary.Request{
		Destination: "Madrid",
		StartDate:   "01/06/2026",
		EndDate:     "02/06/2026",
		BudgetTier:  "medium",
		Interests:   []string{"art", "food"},
	}

	content, err := gen.Generate(ctx, req, []string{"Museo del Prado", "Parque del Retiro"})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if content.Narrative == "" {
		t.Error("empty narrative")
	}
	if len(content.Days) == 0 {
		t.Fatal("no generated days")
	}

	// The assembled plan must stay structurally valid regardless of how many
	// days the model returned.
	resp := itinerary.Assemble(req, nil, content, time.Now())
	if resp.Duration != 2 || len(resp.Days) != 2 {
		t.Fatalf("duration = %d, days = %d, want 2", resp.Duration, len(resp.Days))
	}
	for _, d := range resp.Days {
		if len(d.Meals) == 0 {
			t.Errorf("day %d has no meals", d.Day)
		}
	}
}
