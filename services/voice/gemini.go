// File: services/voice/gemini.go
package voice

import (
	"context"
	"fmt"
	"strings"

	genai "github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiCompleter implements Completer on top of the Gemini API.
type GeminiCompleter struct {
	model *genai.GenerativeModel
}

// NewGeminiCompleter builds a Gemini-backed delegate. The model is asked
// for JSON output so the extractor can parse the item array directly.
func NewGeminiCompleter(apiKey string) (*GeminiCompleter, error) {
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := client.GenerativeModel("models/gemini-1.5-pro")
	model.ResponseMIMEType = "application/json"
	return &GeminiCompleter{model: model}, nil
}

func (g *GeminiCompleter) Complete(ctx context.Context, systemPrompt, userText string) (string, error) {
	resp, err := g.model.GenerateContent(ctx, genai.Text(systemPrompt), genai.Text(userText))
	if err != nil {
		return "", fmt.Errorf("gemini generate error: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("gemini returned no candidates")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if textPart, ok := part.(genai.Text); ok {
			sb.WriteString(string(textPart))
		}
	}
	return sb.String(), nil
}
