package speech

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/genai"

	"github.com/abhisek/kakezan/internal/playback"
)

// geminiSampleRate is the fixed rate of Gemini TTS output.
const geminiSampleRate = 24000

// GeminiConfig configures the Gemini text-to-speech backend.
type GeminiConfig struct {
	APIKey string
	Model  string // Default: gemini-2.5-flash-preview-tts
	Voice  string // Default: Kore
}

// Gemini fetches raw PCM speech from a Gemini TTS model.
type Gemini struct {
	client *genai.Client
	model  string
	voice  string
}

// NewGemini creates the backend.
func NewGemini(ctx context.Context, cfg GeminiConfig) (*Gemini, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("gemini API key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create Gemini client: %w", err)
	}

	g := &Gemini{client: client, model: "gemini-2.5-flash-preview-tts", voice: "Kore"}
	if cfg.Model != "" {
		g.model = cfg.Model
	}
	if cfg.Voice != "" {
		g.voice = cfg.Voice
	}
	return g, nil
}

func (g *Gemini) Name() string { return "gemini" }

// Fetch asks for audio-only output. Rate and pitch have no direct knob, so
// a slow rate is requested in the prompt.
func (g *Gemini) Fetch(ctx context.Context, u playback.Utterance) (Clip, error) {
	prompt := u.Text
	if u.Rate < 0.9 {
		prompt = "ゆっくり読んでください: " + u.Text
	}

	config := &genai.GenerateContentConfig{
		ResponseModalities: []string{"AUDIO"},
		SpeechConfig: &genai.SpeechConfig{
			LanguageCode: u.Lang,
			VoiceConfig: &genai.VoiceConfig{
				PrebuiltVoiceConfig: &genai.PrebuiltVoiceConfig{VoiceName: g.voice},
			},
		},
	}

	result, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), config)
	if err != nil {
		return Clip{}, fmt.Errorf("generate speech: %w", err)
	}

	for _, c := range result.Candidates {
		if c.Content == nil {
			continue
		}
		for _, p := range c.Content.Parts {
			if p.InlineData != nil && len(p.InlineData.Data) > 0 {
				return Clip{Encoding: EncodingPCM, SampleRate: geminiSampleRate, Data: p.InlineData.Data}, nil
			}
		}
	}
	return Clip{}, errors.New("no audio in Gemini response")
}
