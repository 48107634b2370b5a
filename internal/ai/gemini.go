package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"rumbo/internal/itinerary"
	"rumbo/internal/types"
)

// GeminiGenerator implements ItineraryGenerator using Google's Gemini models.
type GeminiGenerator struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

// NewGeminiGenerator initializes a new Gemini client.
// apiKey should be provided from environment variables.
func NewGeminiGenerator(ctx context.Context, apiKey string) (*GeminiGenerator, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	// Gemini 2.0 Flash for low latency and cost efficiency.
	model := client.GenerativeModel("gemini-2.0-flash")

	// Force JSON response for structured parsing.
	model.ResponseMIMEType = "application/json"
	model.SetTemperature(0.4)

	return &GeminiGenerator{
		client: client,
		model:  model,
	}, nil
}

// Close cleans up the Gemini client resources.
func (g *GeminiGenerator) Close() {
	g.client.Close()
}

// Generate asks the model for a day-by-day narrative in the JSON schema the
// assembler understands. Errors are returned as-is; the caller degrades to
// placeholder content.
func (g *GeminiGenerator) Generate(ctx context.Context, req itinerary.Request, placeNames []string) (*itinerary.GeneratedContent, error) {
	prompt := buildItineraryPrompt(req, placeNames)

	resp, err := g.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return nil, fmt.Errorf("gemini generation error: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil, fmt.Errorf("no response candidates from Gemini")
	}

	var responseText strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			responseText.WriteString(string(txt))
		}
	}

	cleanJSON := cleanJSONString(responseText.String())

	var result generatedResponse
	if err := json.Unmarshal([]byte(cleanJSON), &result); err != nil {
		return nil, fmt.Errorf("failed to parse JSON response: %w. Raw: %s", err, cleanJSON)
	}

	return result.toContent(), nil
}

func buildItineraryPrompt(req itinerary.Request, placeNames []string) string {
	interests := strings.Join(req.Interests, ", ")
	if interests == "" {
		interests = "general sightseeing"
	}
	placesLine := strings.Join(placeNames, "; ")
	if placesLine == "" {
		placesLine = "NONE"
	}

	return fmt.Sprintf(`Role: You are a travel planner writing a short, practical itinerary.
Trip:
- Destination: %s
- Dates: %s to %s
- Budget tier: %s
- Interests: %s
- Travel style: %s
- Companions: %s
- Nearby ranked places to weave in (in order): %s

Write a concise narrative overview and one entry per trip day. Each day gets a
short title and exactly three meal suggestions (breakfast, lunch, dinner) with
a rough per-person cost in euro cents. Mention the listed places where they
fit naturally; never invent opening hours or prices you cannot estimate.

Output JSON Schema:
{
  "narrative": "string (2-4 sentence trip overview)",
  "days": [
    {
      "title": "string",
      "meals": [
        {"type": "breakfast" | "lunch" | "dinner", "recommendation": "string", "cost_cents": integer}
      ]
    }
  ],
  "tips": ["string"]
}
`, req.Destination, req.StartDate, req.EndDate, req.BudgetTier, interests,
		req.TravelStyle, req.Companions, placesLine)
}

func mealMoney(cents int64) types.Money {
	if cents < 0 {
		cents = 0
	}
	return types.Money{Amount: cents, Currency: "EUR"}
}

// cleanJSONString removes markdown code blocks if present (e.g. ```json ... ```)
func cleanJSONString(input string) string {
	input = strings.TrimSpace(input)
	input = strings.TrimPrefix(input, "```json")
	input = strings.TrimPrefix(input, "```")
	input = strings.TrimSuffix(input, "```")
	return strings.TrimSpace(input)
}
