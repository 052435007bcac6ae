package speech

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/abhisek/kakezan/internal/playback"
)

const (
	googleTTSURL     = "https://translate.google.com/translate_tts"
	googleTTSTimeout = 10 * time.Second
)

// GoogleTranslate fetches MP3 speech from the Google Translate endpoint.
// It needs no API key.
type GoogleTranslate struct {
	client  *http.Client
	baseURL string
}

// NewGoogleTranslate creates the backend. An empty baseURL uses the public
// endpoint.
func NewGoogleTranslate(baseURL string) *GoogleTranslate {
	if baseURL == "" {
		baseURL = googleTTSURL
	}
	return &GoogleTranslate{
		client:  &http.Client{Timeout: googleTTSTimeout},
		baseURL: baseURL,
	}
}

func (g *GoogleTranslate) Name() string { return "google" }

func (g *GoogleTranslate) Fetch(ctx context.Context, u playback.Utterance) (Clip, error) {
	lang := u.Lang
	if i := strings.IndexByte(lang, '-'); i > 0 {
		lang = lang[:i]
	}

	params := url.Values{}
	params.Set("ie", "UTF-8")
	params.Set("q", u.Text)
	params.Set("tl", lang)
	params.Set("client", "tw-ob")
	params.Set("textlen", strconv.Itoa(len([]rune(u.Text))))
	if u.Rate < 0.9 {
		params.Set("ttsspeed", "0.24")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return Clip{}, fmt.Errorf("create request: %w", err)
	}
	// The endpoint rejects requests without a browser user agent.
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36")

	resp, err := g.client.Do(req)
	if err != nil {
		return Clip{}, fmt.Errorf("fetch audio: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Clip{}, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return Clip{}, fmt.Errorf("read audio: %w", err)
	}
	return Clip{Encoding: EncodingMP3, Data: data}, nil
}
