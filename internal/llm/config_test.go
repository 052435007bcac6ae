package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearKeys(t *testing.T) {
	for _, k := range []string{"GEMINI_API_KEY", "OPENAI_API_KEY", "ANTHROPIC_API_KEY", "OPENROUTER_API_KEY", "KAKEZAN_LLM_PROVIDER"} {
		t.Setenv(k, "")
	}
}

func TestConfigFromEnv(t *testing.T) {
	clearKeys(t)
	t.Setenv("KAKEZAN_LLM_PROVIDER", "openai")
	t.Setenv("KAKEZAN_OPENAI_API_KEY", "sk-1")
	t.Setenv("KAKEZAN_OPENAI_BASE_URL", "http://localhost:8080/v1")
	t.Setenv("KAKEZAN_GEMINI_MODEL", "gemini-2.5-flash")

	cfg := ConfigFromEnv()
	assert.Equal(t, "openai", cfg.Provider)
	assert.Equal(t, "sk-1", cfg.OpenAI.APIKey)
	assert.Equal(t, "http://localhost:8080/v1", cfg.OpenAI.BaseURL)
	assert.Equal(t, "gpt-4o-mini", cfg.OpenAI.Model)
	assert.Equal(t, "gemini-2.5-flash", cfg.Gemini.Model)
	assert.NoError(t, cfg.Validate())
}

func TestDiscoverConfig(t *testing.T) {
	clearKeys(t)
	_, ok := DiscoverConfig()
	assert.False(t, ok)

	t.Setenv("ANTHROPIC_API_KEY", "a-key")
	t.Setenv("OPENROUTER_API_KEY", "or-key")
	cfg, ok := DiscoverConfig()
	require.True(t, ok)
	assert.Equal(t, "anthropic", cfg.Provider, "anthropic is checked before openrouter")
	assert.Equal(t, "a-key", cfg.Anthropic.APIKey)

	t.Setenv("GEMINI_API_KEY", "g-key")
	cfg, _ = DiscoverConfig()
	assert.Equal(t, "gemini", cfg.Provider)
}

func TestConfigValidate(t *testing.T) {
	cfg := DefaultConfig()
	assert.EqualError(t, cfg.Validate(), "KAKEZAN_ANTHROPIC_API_KEY is required for the anthropic provider")

	cfg.Provider = "mock"
	assert.NoError(t, cfg.Validate())

	cfg.Provider = "llama"
	assert.ErrorContains(t, cfg.Validate(), "unknown")
	cfg.SetAPIKey("ignored")
	assert.Empty(t, cfg.Anthropic.APIKey)
}
