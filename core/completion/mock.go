package completion

import (
	"context"
	"strings"
)

// MockPrefix labels every fallback reply
const MockPrefix = "[mock response]"

// MockProvider returns deterministic replies for offline use and tests.
// JSON requests get an empty object so extraction degrades to defaults.
type MockProvider struct{}

// NewMockProvider creates a mock provider
func NewMockProvider() *MockProvider {
	return &MockProvider{}
}

// Name returns the provider name
func (m *MockProvider) Name() string { return "mock" }

// Complete returns a fixed reply derived only from the latest user message
func (m *MockProvider) Complete(ctx context.Context, messages []Message, opts Options) (string, error) {
	if opts.JSON {
		return "{}", nil
	}

	last := ""
	for i := len(messages) - 1; i >= 0; i-- {
		if messages[i].Role == RoleUser {
			last = strings.TrimSpace(messages[i].Content)
			break
		}
	}
	if last == "" {
		return MockPrefix + " Hello! I can help you put together a painting quote. What kind of project do you have in mind?", nil
	}
	return MockPrefix + " Thanks, I've noted that: \"" + truncate(last, 80) + "\". " +
		"Could you share the customer's name, the property address and approximate wall square footage?", nil
}

// IsMock reports whether text was produced by the mock provider
func IsMock(text string) bool {
	return strings.HasPrefix(text, MockPrefix)
}

func truncate(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	return string(r[:maxLen-3]) + "..."
}
