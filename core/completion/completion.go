// Package completion is the client for the external text-completion oracle.
//
// Providers talk to a concrete service and may fail. Client wraps a provider
// with a bounded timeout and a deterministic mock fallback so callers always
// receive text: oracle failures are logged, never returned.
package completion

import (
	"context"
	stderrors "errors"
	"strings"
	"time"

	"go.uber.org/zap"

	"paint-quote/internal/errors"
	"paint-quote/internal/logging"
)

// Role is a chat message role understood by every provider
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one entry of the ordered message list sent to the oracle
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// Options tune a single completion call
type Options struct {
	// Model overrides the provider's default model
	Model string

	// MaxTokens caps the completion length
	MaxTokens int

	// JSON asks the provider for a JSON object response
	JSON bool
}

// Provider is a concrete completion backend
type Provider interface {
	Name() string
	Complete(ctx context.Context, messages []Message, opts Options) (string, error)
}

// Completer is what the rest of the core depends on. Implementations
// never fail; Client is the production implementation.
type Completer interface {
	Complete(ctx context.Context, messages []Message, opts Options) string
}

var (
	// ErrMissingCredentials is returned by providers configured without a usable key
	ErrMissingCredentials = stderrors.New("completion: missing or placeholder credentials")

	// ErrRateLimited is returned when the provider answers 429
	ErrRateLimited = stderrors.New("completion: rate limited")

	// ErrEmptyCompletion is returned when the provider produced no text
	ErrEmptyCompletion = stderrors.New("completion: empty response")
)

// DefaultTimeout bounds a completion call when none is configured
const DefaultTimeout = 30 * time.Second

// Client is the fallback-safe completion client
type Client struct {
	provider  Provider
	mock      *MockProvider
	timeout   time.Duration
	maxTokens int
	log       *zap.Logger
}

// ClientOption configures a Client
type ClientOption func(*Client)

// WithTimeout sets the per-call timeout
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithMaxTokens sets the default completion budget
func WithMaxTokens(n int) ClientOption {
	return func(c *Client) {
		if n > 0 {
			c.maxTokens = n
		}
	}
}

// NewClient wraps provider. A nil provider makes every call fall back.
func NewClient(provider Provider, opts ...ClientOption) *Client {
	c := &Client{
		provider:  provider,
		mock:      NewMockProvider(),
		timeout:   DefaultTimeout,
		maxTokens: 1024,
		log:       logging.Named("completion"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ProviderName returns the name of the wrapped provider
func (c *Client) ProviderName() string {
	if c.provider == nil {
		return "none"
	}
	return c.provider.Name()
}

// Complete sends messages to the provider once. On any failure, including
// caller cancellation, it returns the deterministic mock reply.
func (c *Client) Complete(ctx context.Context, messages []Message, opts Options) string {
	if opts.MaxTokens <= 0 {
		opts.MaxTokens = c.maxTokens
	}
	if c.provider == nil {
		return c.fallback(messages, opts, ErrMissingCredentials)
	}

	callCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	start := time.Now()
	text, err := c.provider.Complete(callCtx, messages, opts)
	if err == nil && strings.TrimSpace(text) == "" {
		err = ErrEmptyCompletion
	}
	if err != nil {
		return c.fallback(messages, opts, err)
	}

	c.log.Debug("completion succeeded",
		zap.String("provider", c.provider.Name()),
		zap.Int("messages", len(messages)),
		zap.Bool("json", opts.JSON),
		zap.Duration("duration", time.Since(start)))
	return text
}

func (c *Client) fallback(messages []Message, opts Options, cause error) string {
	oracleErr := errors.Oracle(c.ProviderName(), cause)
	c.log.Warn("completion failed, using mock response",
		zap.String("provider", c.ProviderName()),
		zap.String("reason", reason(cause)),
		zap.Error(oracleErr))
	text, _ := c.mock.Complete(context.Background(), messages, opts)
	return text
}

func reason(err error) string {
	switch {
	case stderrors.Is(err, ErrMissingCredentials):
		return "missing_credentials"
	case stderrors.Is(err, ErrRateLimited):
		return "rate_limited"
	case stderrors.Is(err, ErrEmptyCompletion):
		return "empty_response"
	case stderrors.Is(err, context.DeadlineExceeded):
		return "timeout"
	case stderrors.Is(err, context.Canceled):
		return "canceled"
	default:
		return "error"
	}
}
