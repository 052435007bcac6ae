package llm

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// Config selects a backend and holds the settings of every backend, so
// switching Provider keeps the others' keys.
type Config struct {
	// Provider is anthropic, openai, gemini, openrouter or mock.
	Provider string

	Anthropic  AnthropicConfig
	OpenAI     OpenAIConfig
	Gemini     GeminiConfig
	OpenRouter OpenRouterConfig
	Retry      RetryConfig

	// Timeout bounds one story request, retries included.
	Timeout time.Duration
}

type AnthropicConfig struct {
	APIKey string
	Model  string
}

type OpenAIConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

type GeminiConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

type OpenRouterConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
}

// backend points at one provider's settings inside a Config.
type backend struct {
	name string
	// stdKey is the vendor's own environment variable, used for discovery.
	stdKey  string
	key     *string
	model   *string
	baseURL *string // nil when the backend has no endpoint override
}

// backends lists the real providers in discovery order.
func (c *Config) backends() []backend {
	return []backend{
		{"gemini", "GEMINI_API_KEY", &c.Gemini.APIKey, &c.Gemini.Model, &c.Gemini.BaseURL},
		{"openai", "OPENAI_API_KEY", &c.OpenAI.APIKey, &c.OpenAI.Model, &c.OpenAI.BaseURL},
		{"anthropic", "ANTHROPIC_API_KEY", &c.Anthropic.APIKey, &c.Anthropic.Model, nil},
		{"openrouter", "OPENROUTER_API_KEY", &c.OpenRouter.APIKey, &c.OpenRouter.Model, &c.OpenRouter.BaseURL},
	}
}

func (c *Config) selected() (backend, bool) {
	for _, b := range c.backends() {
		if b.name == c.Provider {
			return b, true
		}
	}
	return backend{}, false
}

// envPrefix turns "openai" into "KAKEZAN_OPENAI_".
func envPrefix(name string) string {
	return "KAKEZAN_" + strings.ToUpper(name) + "_"
}

func DefaultConfig() Config {
	return Config{
		Provider:   "anthropic",
		Anthropic:  AnthropicConfig{Model: "claude-haiku"},
		OpenAI:     OpenAIConfig{Model: "gpt-4o-mini"},
		Gemini:     GeminiConfig{Model: "gemini-flash"},
		OpenRouter: OpenRouterConfig{Model: "google/gemini-2.0-flash-exp"},
		Retry: RetryConfig{
			MaxAttempts: 3,
			InitialWait: time.Second,
			MaxWait:     10 * time.Second,
			Multiplier:  2,
		},
		Timeout: 30 * time.Second,
	}
}

// ConfigFromEnv overlays KAKEZAN_LLM_PROVIDER and the per-backend
// KAKEZAN_<NAME>_API_KEY, _MODEL and _BASE_URL variables on the defaults.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()
	if p := os.Getenv("KAKEZAN_LLM_PROVIDER"); p != "" {
		cfg.Provider = p
	}
	for _, b := range cfg.backends() {
		prefix := envPrefix(b.name)
		setFromEnv(b.key, prefix+"API_KEY")
		setFromEnv(b.model, prefix+"MODEL")
		if b.baseURL != nil {
			setFromEnv(b.baseURL, prefix+"BASE_URL")
		}
	}
	return cfg
}

func setFromEnv(dst *string, name string) {
	if v := os.Getenv(name); v != "" {
		*dst = v
	}
}

// DiscoverConfig picks the first backend whose vendor API key variable
// is set, in the order Gemini, OpenAI, Anthropic, OpenRouter.
func DiscoverConfig() (Config, bool) {
	cfg := DefaultConfig()
	for _, b := range cfg.backends() {
		if k := os.Getenv(b.stdKey); k != "" {
			cfg.Provider = b.name
			*b.key = k
			return cfg, true
		}
	}
	return Config{}, false
}

// Validate checks the selected backend is known and has a key.
func (c Config) Validate() error {
	if c.Provider == "mock" {
		return nil
	}
	b, ok := c.selected()
	if !ok {
		return fmt.Errorf("unknown LLM provider %q", c.Provider)
	}
	if *b.key == "" {
		return fmt.Errorf("%sAPI_KEY is required for the %s provider", envPrefix(b.name), b.name)
	}
	return nil
}

// SetModel overrides the selected backend's model. Empty is a no-op.
func (c *Config) SetModel(model string) {
	if b, ok := c.selected(); ok && model != "" {
		*b.model = model
	}
}

// SetAPIKey overrides the selected backend's key. Empty is a no-op.
func (c *Config) SetAPIKey(key string) {
	if b, ok := c.selected(); ok && key != "" {
		*b.key = key
	}
}
