package llm

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var storySchema = &Schema{
	Name:        "test-story",
	Description: "A one-line story",
	Definition: map[string]any{
		"type":                 "object",
		"properties":           map[string]any{"text": map[string]any{"type": "string", "minLength": 5}},
		"required":             []string{"text"},
		"additionalProperties": false,
	},
}

func storyRequest() Request {
	return Request{
		System:    "こどもむけの もんだいを つくってください。",
		Messages:  []Message{{Role: RoleUser, Content: "3 × 4"}},
		Schema:    storySchema,
		MaxTokens: 256,
	}
}

const storyJSON = `{"text":"あめが 3こ ずつ 4ふくろ。ぜんぶで なんこ？"}`

// serve starts a test server that records the last request body.
func serve(t *testing.T, h http.HandlerFunc) (*httptest.Server, *[]byte) {
	t.Helper()
	var body []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ = io.ReadAll(r.Body)
		h(w, r)
	}))
	t.Cleanup(srv.Close)
	return srv, &body
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func anthropicReply(text, stop string) map[string]any {
	return map[string]any{
		"id":          "msg_1",
		"type":        "message",
		"role":        "assistant",
		"model":       "claude-haiku-4-5-20251001",
		"content":     []map[string]any{{"type": "text", "text": text}},
		"stop_reason": stop,
		"usage":       map[string]any{"input_tokens": 50, "output_tokens": 30},
	}
}

func newAnthropic(t *testing.T, h http.HandlerFunc) (*AnthropicProvider, *[]byte) {
	t.Helper()
	srv, body := serve(t, h)
	p, err := NewAnthropicProvider(AnthropicConfig{APIKey: "k", Model: "claude-haiku"},
		option.WithBaseURL(srv.URL), option.WithMaxRetries(0))
	require.NoError(t, err)
	return p, body
}

func TestAnthropic_Generate(t *testing.T) {
	p, body := newAnthropic(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, anthropicReply(storyJSON, "end_turn"))
	})

	resp, err := p.Generate(context.Background(), storyRequest())
	require.NoError(t, err)
	assert.JSONEq(t, storyJSON, string(resp.Content))
	assert.Equal(t, Usage{InputTokens: 50, OutputTokens: 30, TotalTokens: 80}, resp.Usage)
	assert.Equal(t, StopEnd, resp.StopReason)
	assert.Equal(t, "claude-haiku-4-5-20251001", resp.Model)
	assert.Equal(t, "anthropic", p.Name())

	var sent map[string]any
	require.NoError(t, json.Unmarshal(*body, &sent))
	assert.Equal(t, "claude-haiku-4-5-20251001", sent["model"])
	assert.Contains(t, sent, "output_config")
}

func TestAnthropic_Failures(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
		kind    ErrorKind
		after   time.Duration
	}{
		{"rate limited", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Retry-After", "7")
			writeJSON(w, http.StatusTooManyRequests, map[string]any{"type": "error", "error": map[string]any{"type": "rate_limit_error"}})
		}, KindRateLimited, 7 * time.Second},
		{"overloaded", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, 529, map[string]any{"type": "error", "error": map[string]any{"type": "overloaded_error"}})
		}, KindUnavailable, 0},
		{"bad key", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusUnauthorized, map[string]any{"type": "error", "error": map[string]any{"type": "authentication_error"}})
		}, KindRejected, 0},
		{"truncated", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, anthropicReply(`{"text":"あめが 3こ`, "max_tokens"))
		}, KindTruncated, 0},
		{"schema violation", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, anthropicReply(`{"story":"x"}`, "end_turn"))
		}, KindInvalid, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, _ := newAnthropic(t, tt.handler)
			_, err := p.Generate(context.Background(), storyRequest())

			var e *Error
			require.ErrorAs(t, err, &e)
			assert.Equal(t, tt.kind, e.Kind)
			assert.Equal(t, "anthropic", e.Provider)
			assert.Equal(t, tt.after, e.RetryAfter)
		})
	}
}

func openaiReply(content, finish string) map[string]any {
	return map[string]any{
		"id":      "chatcmpl-1",
		"object":  "chat.completion",
		"model":   "gpt-4o-mini-2024-07-18",
		"choices": []map[string]any{{"index": 0, "message": map[string]any{"role": "assistant", "content": content}, "finish_reason": finish}},
		"usage":   map[string]any{"prompt_tokens": 40, "completion_tokens": 25, "total_tokens": 65},
	}
}

func TestOpenAI_Generate(t *testing.T) {
	srv, body := serve(t, func(w http.ResponseWriter, r *http.Request) {
		assert.True(t, strings.HasSuffix(r.URL.Path, "/chat/completions"), r.URL.Path)
		writeJSON(w, http.StatusOK, openaiReply(storyJSON, "stop"))
	})
	p, err := NewOpenAIProvider(OpenAIConfig{APIKey: "k", Model: "gpt-4o-mini", BaseURL: srv.URL})
	require.NoError(t, err)

	resp, err := p.Generate(context.Background(), storyRequest())
	require.NoError(t, err)
	assert.JSONEq(t, storyJSON, string(resp.Content))
	assert.Equal(t, 65, resp.Usage.TotalTokens)
	assert.Equal(t, "gpt-4o-mini-2024-07-18", resp.Model)

	var sent struct {
		Messages       []map[string]any `json:"messages"`
		ResponseFormat struct {
			Type       string `json:"type"`
			JSONSchema struct {
				Name   string `json:"name"`
				Strict bool   `json:"strict"`
			} `json:"json_schema"`
		} `json:"response_format"`
	}
	require.NoError(t, json.Unmarshal(*body, &sent))
	require.Len(t, sent.Messages, 2)
	assert.Equal(t, "system", sent.Messages[0]["role"])
	assert.Equal(t, "json_schema", sent.ResponseFormat.Type)
	assert.Equal(t, "test-story", sent.ResponseFormat.JSONSchema.Name)
	assert.True(t, sent.ResponseFormat.JSONSchema.Strict)
}

func TestOpenAI_Failures(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
		kind    ErrorKind
	}{
		{"rate limited", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusTooManyRequests, map[string]any{"error": map[string]any{"message": "slow down", "type": "tokens"}})
		}, KindRateLimited},
		{"server error", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusInternalServerError, map[string]any{"error": map[string]any{"message": "boom", "type": "server_error"}})
		}, KindUnavailable},
		{"length", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, openaiReply(`{"text":"あ`, "length"))
		}, KindTruncated},
		{"content filter", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, openaiReply(storyJSON, "content_filter"))
		}, KindInvalid},
		{"no choices", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, map[string]any{"id": "x", "choices": []any{}})
		}, KindInvalid},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, _ := serve(t, tt.handler)
			p, err := NewOpenAIProvider(OpenAIConfig{APIKey: "k", Model: "gpt-4o-mini", BaseURL: srv.URL})
			require.NoError(t, err)

			_, err = p.Generate(context.Background(), storyRequest())
			assert.True(t, IsKind(err, tt.kind), "got %v", err)
		})
	}
}

func TestOpenRouter(t *testing.T) {
	_, err := NewOpenRouterProvider(OpenRouterConfig{Model: "google/gemini-2.0-flash-exp"})
	require.Error(t, err)

	srv, _ := serve(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer sk-or", r.Header.Get("Authorization"))
		writeJSON(w, http.StatusOK, openaiReply(storyJSON, "stop"))
	})
	p, err := NewOpenRouterProvider(OpenRouterConfig{APIKey: "sk-or", Model: "google/gemini-2.0-flash-exp", BaseURL: srv.URL})
	require.NoError(t, err)
	assert.Equal(t, "openrouter", p.Name())
	assert.Equal(t, "google/gemini-2.0-flash-exp", p.ModelID(), "models pass through unresolved")

	_, err = p.Generate(context.Background(), storyRequest())
	require.NoError(t, err)
}

func TestGemini_Generate(t *testing.T) {
	srv, body := serve(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Contains(t, r.URL.Path, "gemini-2.0-flash:generateContent")
		writeJSON(w, http.StatusOK, map[string]any{
			"candidates": []map[string]any{{
				"content":      map[string]any{"role": "model", "parts": []map[string]any{{"text": storyJSON}}},
				"finishReason": "STOP",
			}},
			"usageMetadata": map[string]any{"promptTokenCount": 12, "candidatesTokenCount": 20, "totalTokenCount": 32},
		})
	})
	p, err := NewGeminiProvider(context.Background(), GeminiConfig{APIKey: "k", Model: "gemini-flash", BaseURL: srv.URL})
	require.NoError(t, err)

	resp, err := p.Generate(context.Background(), storyRequest())
	require.NoError(t, err)
	assert.JSONEq(t, storyJSON, string(resp.Content))
	assert.Equal(t, Usage{InputTokens: 12, OutputTokens: 20, TotalTokens: 32}, resp.Usage)
	assert.Contains(t, string(*body), `"responseMimeType":"application/json"`)
}

func TestGemini_Failures(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
		kind    ErrorKind
	}{
		{"rate limited", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusTooManyRequests, map[string]any{"error": map[string]any{"code": 429, "message": "quota", "status": "RESOURCE_EXHAUSTED"}})
		}, KindRateLimited},
		{"unavailable", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusServiceUnavailable, map[string]any{"error": map[string]any{"code": 503, "message": "busy", "status": "UNAVAILABLE"}})
		}, KindUnavailable},
		{"safety", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, map[string]any{"candidates": []map[string]any{{"finishReason": "SAFETY"}}})
		}, KindInvalid},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, _ := serve(t, tt.handler)
			p, err := NewGeminiProvider(context.Background(), GeminiConfig{APIKey: "k", Model: "gemini-flash", BaseURL: srv.URL})
			require.NoError(t, err)

			_, err = p.Generate(context.Background(), storyRequest())
			assert.True(t, IsKind(err, tt.kind), "got %v", err)
		})
	}
}

func TestGeminiSchema(t *testing.T) {
	s := geminiSchema(map[string]any{
		"type": "object",
		"properties": map[string]any{
			"text":  map[string]any{"type": "string", "minLength": 5, "maxLength": float64(120)},
			"mood":  map[string]any{"type": "string", "enum": []any{"happy", "calm"}},
			"dans":  map[string]any{"type": "array", "items": map[string]any{"type": "integer"}},
			"other": map[string]any{"type": "date"},
		},
		"required": []string{"text"},
	})

	assert.Equal(t, "OBJECT", string(s.Type))
	assert.Equal(t, []string{"text"}, s.Required)
	text := s.Properties["text"]
	require.NotNil(t, text.MinLength)
	require.NotNil(t, text.MaxLength)
	assert.EqualValues(t, 5, *text.MinLength)
	assert.EqualValues(t, 120, *text.MaxLength)
	assert.Equal(t, []string{"happy", "calm"}, s.Properties["mood"].Enum)
	assert.Equal(t, "INTEGER", string(s.Properties["dans"].Items.Type))
	assert.Equal(t, "STRING", string(s.Properties["other"].Type))
}

func TestResolveModel(t *testing.T) {
	assert.Equal(t, "gemini-2.0-flash", resolveModel("gemini-flash", geminiModels))
	assert.Equal(t, "claude-sonnet-4-20250514", resolveModel("claude-sonnet", anthropicModels))
	assert.Equal(t, "gpt-4.1", resolveModel("gpt-4.1", openaiModels))
}
