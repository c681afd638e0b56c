package completion

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// ChatProvider calls an OpenAI-compatible Chat Completions endpoint.
type ChatProvider struct {
	http    *http.Client
	apiKey  string
	model   string
	baseURL string
}

// NewChatProvider creates a chat completions provider. Timeouts come from
// the caller's context, so the underlying http.Client has none.
func NewChatProvider(apiKey, model, baseURL string) *ChatProvider {
	if baseURL == "" {
		baseURL = "https://api.openai.com/v1/chat/completions"
	}
	return &ChatProvider{
		http:    &http.Client{},
		apiKey:  apiKey,
		model:   model,
		baseURL: baseURL,
	}
}

// Name returns the provider name
func (p *ChatProvider) Name() string { return "openai:" + p.model }

type chatRequest struct {
	Model          string            `json:"model"`
	Messages       []Message         `json:"messages"`
	MaxTokens      int               `json:"max_tokens,omitempty"`
	Temperature    float32           `json:"temperature"`
	ResponseFormat map[string]string `json:"response_format,omitempty"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Complete sends one request and returns the first choice's content
func (p *ChatProvider) Complete(ctx context.Context, messages []Message, opts Options) (string, error) {
	if IsPlaceholderKey(p.apiKey) {
		return "", ErrMissingCredentials
	}

	model := p.model
	if opts.Model != "" {
		model = opts.Model
	}
	reqBody := chatRequest{
		Model:       model,
		Messages:    messages,
		MaxTokens:   opts.MaxTokens,
		Temperature: 0.3,
	}
	if opts.JSON {
		reqBody.Temperature = 0
		reqBody.ResponseFormat = map[string]string{"type": "json_object"}
	}

	b, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL, bytes.NewReader(b))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+p.apiKey)

	resp, err := p.http.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return "", ErrRateLimited
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return "", fmt.Errorf("chat completions: unexpected status %s: %s", resp.Status, strings.TrimSpace(string(body)))
	}

	var out chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("chat completions: decode response: %w", err)
	}
	if len(out.Choices) == 0 {
		return "", ErrEmptyCompletion
	}
	return out.Choices[0].Message.Content, nil
}
