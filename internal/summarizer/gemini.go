package summarizer

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"github.com/noteflowhq/noteflow/internal/model"
)

const chunkPrompt = `Summarize the following transcript excerpt into a single condensed paragraph of roughly %d to %d words. Output only the summary, with no preamble and no formatting.

Transcript excerpt:
---
%s
---`

type geminiModel struct {
	client *genai.Client
	name   string
}

// NewGeminiModel creates a Model backed by the Gemini API. A client that
// cannot be constructed is reported as ErrModelUnavailable.
func NewGeminiModel(ctx context.Context, apiKey, modelName string) (Model, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("%w: GEMINI_API_KEY is not set", model.ErrModelUnavailable)
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: create gemini client: %v", model.ErrModelUnavailable, err)
	}

	return &geminiModel{client: client, name: modelName}, nil
}

// Summarize sends one chunk to Gemini. Sampling is disabled (temperature 0,
// fixed seed) so repeated calls on the same chunk produce the same summary.
func (g *geminiModel) Summarize(ctx context.Context, text string, maxLen, minLen int) (string, error) {
	prompt := fmt.Sprintf(chunkPrompt, minLen, maxLen, text)

	temperature := float32(0)
	seed := int32(0)
	cfg := &genai.GenerateContentConfig{
		Temperature:    &temperature,
		Seed:           &seed,
		CandidateCount: 1,
	}

	result, err := g.client.Models.GenerateContent(ctx, g.name, genai.Text(prompt), cfg)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	if result == nil || len(result.Candidates) == 0 || result.Candidates[0].Content == nil {
		return "", fmt.Errorf("empty response from gemini")
	}

	var out string
	for _, part := range result.Candidates[0].Content.Parts {
		if part.Text != "" {
			out += part.Text
		}
	}
	return out, nil
}
