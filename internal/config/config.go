// Package config provides configuration management.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/joho/godotenv"

	"paint-quote/internal/logging"
)

// Config is the main application configuration
type Config struct {
	// Version is the configuration version
	Version string `json:"version"`

	// Completion configures the text-completion oracle
	Completion CompletionConfig `json:"completion"`

	// Pricing contains pricing configuration
	Pricing PricingConfig `json:"pricing"`

	// Output contains output configuration
	Output OutputConfig `json:"output"`

	// Logging contains logging configuration
	Logging logging.Config `json:"logging"`
}

// CompletionConfig selects and configures the completion provider
type CompletionConfig struct {
	// Provider is one of "openai", "gemini" or "mock"
	Provider string `json:"provider"`

	// Model is the provider model name
	Model string `json:"model"`

	// APIKey is usually supplied through the environment, not the file
	APIKey string `json:"api_key,omitempty"`

	// BaseURL is the chat completions endpoint for OpenAI-compatible providers
	BaseURL string `json:"base_url,omitempty"`

	// TimeoutSeconds bounds a single completion call
	TimeoutSeconds int `json:"timeout_seconds"`

	// MaxTokens is the default completion budget
	MaxTokens int `json:"max_tokens"`
}

// Timeout returns the completion timeout as a duration
func (c CompletionConfig) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return 30 * time.Second
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// PricingConfig contains pricing-related settings
type PricingConfig struct {
	// RateCardDir holds one rate card per company (<company_id>.hcl or .json)
	RateCardDir string `json:"rate_card_dir"`

	// RateCardFile is used when no company-specific card is requested
	RateCardFile string `json:"rate_card_file,omitempty"`

	// CacheSize is the number of rate cards kept in memory
	CacheSize int `json:"cache_size"`
}

// OutputConfig contains output-related settings
type OutputConfig struct {
	// DefaultFormat is the default output format
	DefaultFormat string `json:"default_format"`

	// ShowDetails shows line items
	ShowDetails bool `json:"show_details"`

	// ShowConfidence shows extraction confidence in chat output
	ShowConfidence bool `json:"show_confidence"`
}

// Default returns a default configuration
func Default() *Config {
	homeDir, _ := os.UserHomeDir()

	return &Config{
		Version: "1.0",
		Completion: CompletionConfig{
			Provider:       "openai",
			Model:          "gpt-4o-mini",
			BaseURL:        "https://api.openai.com/v1/chat/completions",
			TimeoutSeconds: 30,
			MaxTokens:      1024,
		},
		Pricing: PricingConfig{
			RateCardDir: filepath.Join(homeDir, ".paint-quote", "ratecards"),
			CacheSize:   128,
		},
		Output: OutputConfig{
			DefaultFormat:  "cli",
			ShowDetails:    true,
			ShowConfidence: true,
		},
		Logging: logging.DefaultConfig(),
	}
}

// DefaultPath returns the default configuration file location
func DefaultPath() string {
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".paint-quote.json")
}

// Load loads configuration from a file and applies environment overrides.
// A missing file yields the defaults.
func Load(path string) (*Config, error) {
	config := Default()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := json.Unmarshal(data, config); err != nil {
			return nil, err
		}
	case os.IsNotExist(err):
	default:
		return nil, err
	}

	config.ApplyEnv()
	return config, nil
}

// ApplyEnv loads a .env file when present and overlays environment variables
func (c *Config) ApplyEnv() {
	_ = godotenv.Load()

	if v := env("PAINTQUOTE_PROVIDER"); v != "" {
		c.Completion.Provider = strings.ToLower(v)
	}
	if v := env("PAINTQUOTE_MODEL"); v != "" {
		c.Completion.Model = v
	}
	if v := env("PAINTQUOTE_BASE_URL"); v != "" {
		c.Completion.BaseURL = v
	}
	if v := env("PAINTQUOTE_TIMEOUT"); v != "" {
		if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
			c.Completion.TimeoutSeconds = secs
		}
	}
	if c.Completion.APIKey == "" {
		switch c.Completion.Provider {
		case "gemini":
			c.Completion.APIKey = firstNonEmpty(env("GEMINI_API_KEY"), env("GOOGLE_API_KEY"))
		default:
			c.Completion.APIKey = env("OPENAI_API_KEY")
		}
	}
	if v := env("PAINTQUOTE_RATECARD_DIR"); v != "" {
		c.Pricing.RateCardDir = v
	}
	if v := env("PAINTQUOTE_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
}

// Save saves configuration to a file. The API key is never written.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	redacted := *c
	redacted.Completion.APIKey = ""
	data, err := json.MarshalIndent(&redacted, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0600)
}

func env(key string) string {
	return strings.TrimSpace(os.Getenv(key))
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

var (
	globalMu     sync.RWMutex
	globalConfig = Default()
)

// Get returns the global configuration
func Get() *Config {
	globalMu.RLock()
	defer globalMu.RUnlock()
	return globalConfig
}

// Set sets the global configuration
func Set(config *Config) {
	globalMu.Lock()
	globalConfig = config
	globalMu.Unlock()
}
