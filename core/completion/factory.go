package completion

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"paint-quote/internal/config"
	"paint-quote/internal/logging"
)

var placeholderKeys = map[string]bool{
	"":               true,
	"changeme":       true,
	"your-api-key":   true,
	"your_api_key":   true,
	"sk-placeholder": true,
	"sk-xxx":         true,
	"placeholder":    true,
}

// IsPlaceholderKey reports whether key is empty or an obvious template value
func IsPlaceholderKey(key string) bool {
	k := strings.ToLower(strings.TrimSpace(key))
	return placeholderKeys[k] || strings.HasPrefix(k, "your_") || strings.HasPrefix(k, "your-")
}

// NewFromConfig builds a Client for the configured provider. Providers that
// cannot be constructed leave the client in permanent fallback mode.
func NewFromConfig(ctx context.Context, cfg config.CompletionConfig) *Client {
	opts := []ClientOption{WithTimeout(cfg.Timeout()), WithMaxTokens(cfg.MaxTokens)}

	var provider Provider
	switch strings.ToLower(cfg.Provider) {
	case "mock":
		provider = NewMockProvider()
	case "gemini":
		g, err := NewGeminiProvider(ctx, cfg.APIKey, cfg.Model)
		if err != nil {
			logging.Warn("gemini provider unavailable, completions will use mock responses", zap.Error(err))
			return NewClient(nil, opts...)
		}
		provider = g
	default:
		if IsPlaceholderKey(cfg.APIKey) {
			logging.Warn("no completion API key configured, completions will use mock responses",
				zap.String("provider", cfg.Provider))
			return NewClient(nil, opts...)
		}
		provider = NewChatProvider(cfg.APIKey, cfg.Model, cfg.BaseURL)
	}
	return NewClient(provider, opts...)
}
