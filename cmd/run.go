package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/gopxl/beep/v2"
	"github.com/spf13/cobra"

	"github.com/abhisek/kakezan/internal/app"
	"github.com/abhisek/kakezan/internal/audio"
	"github.com/abhisek/kakezan/internal/llm"
	"github.com/abhisek/kakezan/internal/playback"
	"github.com/abhisek/kakezan/internal/speech"
	"github.com/abhisek/kakezan/internal/store"
	"github.com/abhisek/kakezan/internal/story"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	eventRepo := st.EventRepo()
	opts := app.Options{
		Journal: eventRepo,
		Teller:  newTeller(ctx, eventRepo),
	}

	newEngine, err := newEngineFactory(ctx, playback.WithJournal(eventRepo))
	if err != nil {
		// The drills still work without audio.
		fmt.Fprintln(os.Stderr, "Audio not configured:", err)
		fmt.Fprintln(os.Stderr, "The listening drill will be unavailable.")
	} else {
		opts.NewEngine = newEngine
	}

	return app.Run(opts)
}

// newTeller returns the LLM story teller when a provider is configured,
// else the template teller.
func newTeller(ctx context.Context, eventRepo store.EventRepo) story.Teller {
	llmCfg, ok := cfg.LLMConfig()
	if !ok {
		slog.Info("no LLM provider configured, using template stories")
		return story.Template{}
	}
	provider, err := llm.NewProvider(ctx, llmCfg, eventRepo)
	if err != nil {
		slog.Warn("LLM provider unavailable, using template stories", "provider", llmCfg.Provider, "error", err)
		return story.Template{}
	}
	slog.Info("story generation enabled", "provider", provider.Name(), "model", provider.ModelID())
	return story.NewLLM(provider)
}

// newEngineFactory wires clips from the configured clip root and the
// configured speech fallback into a constructor for playback engines.
func newEngineFactory(ctx context.Context, opts ...playback.Option) (func() *playback.Engine, error) {
	out := audio.NewOutput(beep.SampleRate(cfg.Playback.SampleRate))

	root := cfg.ClipRoot()
	clips := audio.NewPlayer(os.DirFS(root), out)
	slog.Debug("clip root", "dir", root)

	synth, err := speech.NewSynthesizer(ctx, cfg.SpeechConfig(), out)
	if err != nil {
		return nil, err
	}

	settings := cfg.PlaybackSettings()
	return func() *playback.Engine {
		return playback.New(clips, synth, settings, opts...)
	}, nil
}
