// Package ai is the single seam to the language model. Everything behind it
// is treated as unreliable: implementations may return malformed JSON, fenced
// markdown, or fail outright, and callers own the fallback behavior.
package ai

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// CompletionRequest carries one prompt to the model boundary.
type CompletionRequest struct {
	System      string
	User        string
	MaxTokens   int32
	Temperature float32
}

// Completer executes a single prompt against a language model.
type Completer interface {
	Complete(ctx context.Context, req CompletionRequest) (string, error)
}

// Gemini is the production Completer backed by the GenAI API.
type Gemini struct {
	client *genai.Client
	model  string
}

// NewGemini creates a Gemini-backed completer. The API key may be empty, in
// which case the client library falls back to its ambient credentials.
func NewGemini(ctx context.Context, apiKey, model string) (*Gemini, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:      apiKey,
		HTTPOptions: genai.HTTPOptions{APIVersion: "v1"},
	})
	if err != nil {
		return nil, fmt.Errorf("NewGemini: create genai client: %w", err)
	}
	return &Gemini{client: client, model: model}, nil
}

// Complete sends one prompt and returns the raw model text.
func (g *Gemini) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	contents := []*genai.Content{
		{
			Role:  "user",
			Parts: []*genai.Part{{Text: req.User}},
		},
	}

	cfg := &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(req.Temperature),
		MaxOutputTokens: req.MaxTokens,
	}
	if req.System != "" {
		cfg.SystemInstruction = &genai.Content{Parts: []*genai.Part{{Text: req.System}}}
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, contents, cfg)
	if err != nil {
		return "", fmt.Errorf("gemini: generate content: %w", err)
	}

	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("gemini: empty response from model")
	}
	return text, nil
}
