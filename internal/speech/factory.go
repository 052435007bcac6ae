package speech

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/abhisek/kakezan/internal/playback"
)

// Config selects and configures the speech backend.
type Config struct {
	// Backend is one of "none", "google", "openai", "gemini".
	Backend string

	OpenAI    OpenAIConfig
	Gemini    GeminiConfig
	GoogleURL string

	// CacheDir holds fetched clips. Empty uses DefaultCacheDir; "-"
	// disables caching.
	CacheDir string
}

// NewSynthesizer builds the configured synthesizer. "none" yields Silent.
func NewSynthesizer(ctx context.Context, cfg Config, sink Sink) (playback.Synthesizer, error) {
	var backend Backend
	var err error

	switch cfg.Backend {
	case "", "none":
		return Silent{}, nil
	case "google":
		backend = NewGoogleTranslate(cfg.GoogleURL)
	case "openai":
		backend, err = NewOpenAI(cfg.OpenAI)
	case "gemini":
		backend, err = NewGemini(ctx, cfg.Gemini)
	default:
		return nil, fmt.Errorf("unknown speech backend: %q", cfg.Backend)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s speech: %w", cfg.Backend, err)
	}

	cache, err := openCache(cfg.CacheDir)
	if err != nil {
		// Speech still works, every phrase is just fetched again.
		slog.Warn("speech cache disabled", "error", err)
	}
	return New(backend, sink, cache), nil
}

func openCache(dir string) (*Cache, error) {
	if dir == "-" {
		return nil, nil
	}
	if dir == "" {
		d, err := DefaultCacheDir()
		if err != nil {
			return nil, err
		}
		dir = d
	}
	return NewCache(dir)
}
