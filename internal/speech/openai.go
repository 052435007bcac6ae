package speech

import (
	"context"
	"errors"
	"fmt"
	"io"

	openai "github.com/sashabaranov/go-openai"

	"github.com/abhisek/kakezan/internal/playback"
)

// OpenAIConfig configures the OpenAI text-to-speech backend.
type OpenAIConfig struct {
	APIKey  string
	Model   string // Default: tts-1
	Voice   string // Default: nova
	BaseURL string
}

// OpenAI fetches MP3 speech from the OpenAI audio API.
type OpenAI struct {
	client *openai.Client
	model  openai.SpeechModel
	voice  openai.SpeechVoice
}

// NewOpenAI creates the backend.
func NewOpenAI(cfg OpenAIConfig) (*OpenAI, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("openai API key is required")
	}

	config := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		config.BaseURL = cfg.BaseURL
	}

	o := &OpenAI{
		client: openai.NewClientWithConfig(config),
		model:  openai.TTSModel1,
		voice:  openai.VoiceNova,
	}
	if cfg.Model != "" {
		o.model = openai.SpeechModel(cfg.Model)
	}
	if cfg.Voice != "" {
		o.voice = openai.SpeechVoice(cfg.Voice)
	}
	return o, nil
}

func (o *OpenAI) Name() string { return "openai" }

// Fetch requests MP3 audio. The API has no language or pitch parameter:
// the language follows the text and the rate maps onto speed.
func (o *OpenAI) Fetch(ctx context.Context, u playback.Utterance) (Clip, error) {
	resp, err := o.client.CreateSpeech(ctx, openai.CreateSpeechRequest{
		Model:          o.model,
		Input:          u.Text,
		Voice:          o.voice,
		ResponseFormat: openai.SpeechResponseFormatMp3,
		Speed:          u.Rate,
	})
	if err != nil {
		return Clip{}, fmt.Errorf("create speech: %w", err)
	}
	defer resp.Close()

	data, err := io.ReadAll(resp)
	if err != nil {
		return Clip{}, fmt.Errorf("read speech: %w", err)
	}
	if len(data) == 0 {
		return Clip{}, errors.New("empty speech response")
	}
	return Clip{Encoding: EncodingMP3, Data: data}, nil
}
