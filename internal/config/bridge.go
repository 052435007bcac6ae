package config

import (
	"os"
	"path/filepath"

	"github.com/abhisek/kakezan/internal/llm"
	"github.com/abhisek/kakezan/internal/playback"
	"github.com/abhisek/kakezan/internal/speech"
)

// PlaybackSettings converts the playback section into engine settings.
func (c *Config) PlaybackSettings() playback.Settings {
	p := c.Playback
	s := playback.DefaultSettings()
	s.Rate = p.Rate
	s.Pitch = p.Pitch
	s.Lang = p.Lang
	s.IntroPause = p.IntroPause
	s.Gap = p.Gap
	s.IntroEnabled = p.Intro
	s.MinDan = p.MinDan
	s.MaxDan = p.MaxDan
	if p.Ext != "" {
		s.Ext = p.Ext
	}
	return s.Normalize()
}

// ClipRoot is the directory holding the kuku/ clip folder: the configured
// clip_dir, else $XDG_DATA_HOME/kakezan.
func (c *Config) ClipRoot() string {
	if c.Playback.ClipDir != "" {
		return c.Playback.ClipDir
	}
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "."
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "kakezan")
}

// SpeechConfig converts the speech section. Missing keys fall back to the
// providers' standard environment variables.
func (c *Config) SpeechConfig() speech.Config {
	s := c.Speech
	cfg := speech.Config{
		Backend:   s.Backend,
		GoogleURL: s.GoogleURL,
		CacheDir:  s.CacheDir,
		OpenAI: speech.OpenAIConfig{
			APIKey: firstNonEmpty(s.OpenAIKey, os.Getenv("OPENAI_API_KEY")),
			Model:  s.OpenAIModel,
			Voice:  s.OpenAIVoice,
		},
		Gemini: speech.GeminiConfig{
			APIKey: firstNonEmpty(s.GeminiKey, os.Getenv("GEMINI_API_KEY")),
			Model:  s.GeminiModel,
			Voice:  s.GeminiVoice,
		},
	}
	return cfg
}

// LLMConfig resolves the story provider. It reports false when story
// generation is disabled or no provider could be discovered.
func (c *Config) LLMConfig() (llm.Config, bool) {
	var cfg llm.Config
	switch c.LLM.Provider {
	case "none":
		return llm.Config{}, false
	case "":
		discovered, ok := llm.DiscoverConfig()
		if !ok {
			return llm.Config{}, false
		}
		cfg = discovered
	default:
		cfg = llm.ConfigFromEnv()
		cfg.Provider = c.LLM.Provider
	}

	cfg.SetModel(c.LLM.Model)
	cfg.SetAPIKey(c.LLM.APIKey)
	if c.LLM.Timeout > 0 {
		cfg.Timeout = c.LLM.Timeout
	}
	return cfg, true
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
