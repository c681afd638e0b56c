package completion

import (
	"context"
	"strings"

	genai "google.golang.org/genai"
)

// GeminiProvider is a thin wrapper around the official genai client
type GeminiProvider struct {
	cli   *genai.Client
	model string
}

// NewGeminiProvider creates a Gemini provider for the Gemini API backend
func NewGeminiProvider(ctx context.Context, apiKey, model string) (*GeminiProvider, error) {
	if IsPlaceholderKey(apiKey) {
		return nil, ErrMissingCredentials
	}
	if model == "" {
		model = "gemini-2.5-flash"
	}
	cli, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, err
	}
	return &GeminiProvider{cli: cli, model: model}, nil
}

// Name returns the provider name
func (g *GeminiProvider) Name() string { return "gemini:" + g.model }

// Complete maps system messages onto the system instruction and the
// assistant role onto Gemini's "model" role.
func (g *GeminiProvider) Complete(ctx context.Context, messages []Message, opts Options) (string, error) {
	model := g.model
	if opts.Model != "" {
		model = opts.Model
	}

	var system []string
	contents := make([]*genai.Content, 0, len(messages))
	for _, m := range messages {
		switch m.Role {
		case RoleSystem:
			system = append(system, m.Content)
		case RoleAssistant:
			contents = append(contents, &genai.Content{Role: "model", Parts: []*genai.Part{{Text: m.Content}}})
		default:
			contents = append(contents, &genai.Content{Role: "user", Parts: []*genai.Part{{Text: m.Content}}})
		}
	}
	if len(contents) == 0 {
		return "", ErrEmptyCompletion
	}

	cfg := &genai.GenerateContentConfig{}
	if len(system) > 0 {
		cfg.SystemInstruction = &genai.Content{Parts: []*genai.Part{{Text: strings.Join(system, "\n\n")}}}
	}
	if opts.MaxTokens > 0 {
		cfg.MaxOutputTokens = int32(opts.MaxTokens)
	}
	if opts.JSON {
		cfg.ResponseMIMEType = "application/json"
	}

	resp, err := g.cli.Models.GenerateContent(ctx, model, contents, cfg)
	if err != nil {
		return "", err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", ErrEmptyCompletion
	}
	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if part != nil {
			sb.WriteString(part.Text)
		}
	}
	return sb.String(), nil
}
