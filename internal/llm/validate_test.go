package llm

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateResponse(t *testing.T) {
	schema := &Schema{
		Name: "test-validate",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"text": map[string]any{"type": "string", "minLength": 3},
				"dan":  map[string]any{"type": "integer", "minimum": 1, "maximum": 9},
				"mood": map[string]any{"type": "string", "enum": []string{"happy", "calm"}},
			},
			"required": []string{"text", "dan"},
		},
	}

	tests := []struct {
		name  string
		raw   string
		valid bool
	}{
		{"valid", `{"text":"ねこが 3びき","dan":3,"mood":"calm"}`, true},
		{"optional omitted", `{"text":"ねこが 3びき","dan":3}`, true},
		{"missing required", `{"text":"ねこが 3びき"}`, false},
		{"wrong type", `{"text":"ねこ","dan":"three"}`, false},
		{"out of range", `{"text":"ねこ","dan":10}`, false},
		{"bad enum", `{"text":"ねこ","dan":3,"mood":"angry"}`, false},
		{"too short", `{"text":"ね","dan":3}`, false},
		{"malformed", `{not json}`, false},
		{"empty", ``, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateResponse(schema, json.RawMessage(tt.raw))
			if tt.valid {
				assert.NoError(t, err)
				return
			}
			var e *Error
			require.ErrorAs(t, err, &e)
			assert.Equal(t, KindInvalid, e.Kind)
			assert.Equal(t, tt.raw, string(e.Content))
		})
	}

	assert.NoError(t, ValidateResponse(nil, json.RawMessage(`"anything"`)))
}

func TestClassifyStatus(t *testing.T) {
	h := http.Header{}
	h.Set("Retry-After", "12")

	tests := []struct {
		status int
		header http.Header
		kind   ErrorKind
		after  time.Duration
	}{
		{http.StatusTooManyRequests, h, KindRateLimited, 12 * time.Second},
		{http.StatusTooManyRequests, nil, KindRateLimited, 0},
		{http.StatusBadRequest, nil, KindRejected, 0},
		{http.StatusForbidden, nil, KindRejected, 0},
		{http.StatusRequestTimeout, nil, KindUnavailable, 0},
		{http.StatusBadGateway, nil, KindUnavailable, 0},
		{0, nil, KindUnavailable, 0},
	}
	for _, tt := range tests {
		e := classifyStatus("openai", tt.status, tt.header, nil)
		assert.Equal(t, tt.kind, e.Kind, "status %d", tt.status)
		assert.Equal(t, tt.after, e.RetryAfter, "status %d", tt.status)
	}

	h.Set("Retry-After", "Wed, 21 Oct 2026 07:28:00 GMT")
	assert.Zero(t, parseRetryAfter(h), "HTTP dates fall back to backoff")
}

func TestErrorMessage(t *testing.T) {
	e := &Error{Kind: KindRateLimited, Provider: "gemini", RetryAfter: 2 * time.Second}
	assert.Equal(t, "gemini: rate limited (retry after 2s)", e.Error())

	k, ok := KindOf(e)
	assert.True(t, ok)
	assert.Equal(t, KindRateLimited, k)
	_, ok = KindOf(assert.AnError)
	assert.False(t, ok)
}

func TestLookupPrice(t *testing.T) {
	tests := []struct {
		model string
		want  Price
		found bool
	}{
		{"gpt-4o-mini", Price{0.15, 0.6}, true},
		{"gpt-4o-mini-2024-07-18", Price{0.15, 0.6}, true},
		{"claude-haiku-4-5-20251001", Price{1, 5}, true},
		{"google/gemini-2.0-flash-exp", Price{0.1, 0.4}, true},
		{"gemini-2.0-flash-001", Price{0.1, 0.4}, true},
		{"meta-llama/llama-3-8b", Price{}, false},
		{"", Price{}, false},
	}
	for _, tt := range tests {
		got, ok := LookupPrice(tt.model)
		assert.Equal(t, tt.found, ok, tt.model)
		assert.Equal(t, tt.want, got, tt.model)
	}

	assert.InDelta(t, 0.75, Price{Input: 1, Output: 5}.Cost(250_000, 100_000), 1e-9)
}
