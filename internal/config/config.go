// Package config loads kakezan's settings from defaults, an optional YAML
// file, KAKEZAN_* environment variables and command-line flags, in that
// order of precedence.
package config

import "time"

// Config holds all application configuration.
type Config struct {
	// DB is the journal database path. Empty means the XDG default.
	DB string `mapstructure:"db"`

	Log      LogConfig      `mapstructure:"log"`
	Playback PlaybackConfig `mapstructure:"playback"`
	Speech   SpeechConfig   `mapstructure:"speech"`
	LLM      LLMConfig      `mapstructure:"llm"`
}

// LogConfig controls diagnostic logging.
type LogConfig struct {
	Level string `mapstructure:"level" validate:"oneof=debug info warn error"`
	// File receives log output. Empty discards logs in the TUI and uses
	// stderr for headless commands.
	File string `mapstructure:"file"`
}

// PlaybackConfig configures the "by ear" drill.
type PlaybackConfig struct {
	Rate       float64       `mapstructure:"rate" validate:"gte=0.7,lte=1.1"`
	Pitch      float64       `mapstructure:"pitch" validate:"gte=0.5,lte=2"`
	Lang       string        `mapstructure:"lang" validate:"required,bcp47_language_tag"`
	IntroPause time.Duration `mapstructure:"intro_pause" validate:"min=0,max=800ms"`
	Gap        time.Duration `mapstructure:"gap" validate:"min=200ms,max=1200ms"`
	Intro      bool          `mapstructure:"intro"`
	MinDan     int           `mapstructure:"min_dan" validate:"min=1,max=9"`
	MaxDan     int           `mapstructure:"max_dan" validate:"min=1,max=9,gtefield=MinDan"`
	ClipDir    string        `mapstructure:"clip_dir"`
	Ext        string        `mapstructure:"ext" validate:"oneof=wav mp3"`
	SampleRate int           `mapstructure:"sample_rate" validate:"min=8000,max=192000"`
}

// SpeechConfig selects the synthesized-speech fallback.
type SpeechConfig struct {
	Backend   string `mapstructure:"backend" validate:"oneof=none google openai gemini"`
	CacheDir  string `mapstructure:"cache_dir"`
	GoogleURL string `mapstructure:"google_url" validate:"omitempty,url"`

	OpenAIKey   string `mapstructure:"openai_api_key"`
	OpenAIModel string `mapstructure:"openai_model"`
	OpenAIVoice string `mapstructure:"openai_voice"`

	GeminiKey   string `mapstructure:"gemini_api_key"`
	GeminiModel string `mapstructure:"gemini_model"`
	GeminiVoice string `mapstructure:"gemini_voice"`
}

// LLMConfig enables story generation. Provider keys are read by the llm
// package from KAKEZAN_<PROVIDER>_API_KEY or the providers' standard
// variables; APIKey here overrides them for the selected provider.
type LLMConfig struct {
	// Provider is empty for auto-discovery or "none" to disable.
	Provider string        `mapstructure:"provider" validate:"omitempty,oneof=none anthropic openai gemini openrouter mock"`
	Model    string        `mapstructure:"model"`
	APIKey   string        `mapstructure:"api_key"`
	Timeout  time.Duration `mapstructure:"timeout" validate:"min=0"`
}
