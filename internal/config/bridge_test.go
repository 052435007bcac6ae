package config

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlaybackSettings(t *testing.T) {
	isolate(t)
	t.Setenv("KAKEZAN_PLAYBACK_RATE", "0.7")
	t.Setenv("KAKEZAN_PLAYBACK_INTRO_PAUSE", "0s")
	t.Setenv("KAKEZAN_PLAYBACK_EXT", "mp3")

	cfg, err := Load(Options{})
	require.NoError(t, err)

	s := cfg.PlaybackSettings()
	assert.Equal(t, 0.7, s.Rate)
	assert.Equal(t, time.Duration(0), s.IntroPause)
	assert.Equal(t, 450*time.Millisecond, s.Gap)
	assert.Equal(t, "mp3", s.Ext)
	assert.Equal(t, "kuku/3-4.mp3", s.PhrasePath(3, 4))
}

func TestClipRoot(t *testing.T) {
	dir := isolate(t)
	t.Setenv("XDG_DATA_HOME", filepath.Join(dir, "data"))

	cfg := &Config{}
	assert.Equal(t, filepath.Join(dir, "data", "kakezan"), cfg.ClipRoot())

	cfg.Playback.ClipDir = "/srv/clips"
	assert.Equal(t, "/srv/clips", cfg.ClipRoot())
}

func TestSpeechConfigKeyFallback(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-env")
	t.Setenv("GEMINI_API_KEY", "")

	cfg := &Config{Speech: SpeechConfig{Backend: "openai", GeminiKey: "g-cfg", OpenAIVoice: "alloy"}}
	sc := cfg.SpeechConfig()

	assert.Equal(t, "openai", sc.Backend)
	assert.Equal(t, "sk-env", sc.OpenAI.APIKey)
	assert.Equal(t, "alloy", sc.OpenAI.Voice)
	assert.Equal(t, "g-cfg", sc.Gemini.APIKey)
}

func TestLLMConfig(t *testing.T) {
	for _, k := range []string{"GEMINI_API_KEY", "OPENAI_API_KEY", "ANTHROPIC_API_KEY", "OPENROUTER_API_KEY"} {
		t.Setenv(k, "")
	}

	t.Run("disabled", func(t *testing.T) {
		_, ok := (&Config{LLM: LLMConfig{Provider: "none"}}).LLMConfig()
		assert.False(t, ok)
	})

	t.Run("nothing discovered", func(t *testing.T) {
		_, ok := (&Config{}).LLMConfig()
		assert.False(t, ok)
	})

	t.Run("discovered", func(t *testing.T) {
		t.Setenv("OPENAI_API_KEY", "sk-env")
		got, ok := (&Config{}).LLMConfig()
		require.True(t, ok)
		assert.Equal(t, "openai", got.Provider)
		assert.Equal(t, "sk-env", got.OpenAI.APIKey)
	})

	t.Run("explicit with overrides", func(t *testing.T) {
		cfg := &Config{LLM: LLMConfig{Provider: "anthropic", Model: "claude-sonnet", APIKey: "sk-ant", Timeout: 5 * time.Second}}
		got, ok := cfg.LLMConfig()
		require.True(t, ok)
		assert.Equal(t, "anthropic", got.Provider)
		assert.Equal(t, "claude-sonnet", got.Anthropic.Model)
		assert.Equal(t, "sk-ant", got.Anthropic.APIKey)
		assert.Equal(t, 5*time.Second, got.Timeout)
		assert.NoError(t, got.Validate())
	})
}
