package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/kakezan/internal/store"
)

// newTestRetry returns a retry decorator that records its waits instead
// of sleeping.
func newTestRetry(p Provider, attempts int) (*RetryProvider, *[]time.Duration) {
	var waits []time.Duration
	r := &RetryProvider{
		inner: p,
		config: RetryConfig{
			MaxAttempts: attempts,
			InitialWait: 100 * time.Millisecond,
			MaxWait:     time.Second,
			Multiplier:  2,
		},
		sleep: func(_ context.Context, d time.Duration) error {
			waits = append(waits, d)
			return nil
		},
	}
	return r, &waits
}

func unavailable() MockResponse {
	return MockResponse{Err: &Error{Kind: KindUnavailable, Err: errors.New("down")}}
}

func TestRetry(t *testing.T) {
	ok := MockResponse{Content: json.RawMessage(storyJSON)}
	invalid := MockResponse{Content: json.RawMessage(`{"story":"x"}`)}

	tests := []struct {
		name    string
		script  []MockResponse
		calls   int
		wantErr ErrorKind
	}{
		{"first attempt", []MockResponse{ok}, 1, -1},
		{"transient then success", []MockResponse{unavailable(), ok}, 2, -1},
		{"gives up after max attempts", []MockResponse{unavailable(), unavailable(), unavailable(), ok}, 3, KindUnavailable},
		{"one retry for invalid content", []MockResponse{invalid, ok}, 2, -1},
		{"second invalid stops", []MockResponse{invalid, invalid, ok}, 2, KindInvalid},
		{"truncation is final", []MockResponse{{Content: json.RawMessage(`{"te`), Stop: StopMaxTokens}, ok}, 1, KindTruncated},
		{"rejection is final", []MockResponse{{Err: &Error{Kind: KindRejected}}, ok}, 1, KindRejected},
		{"unclassified is final", []MockResponse{{Err: errors.New("boom")}, ok}, 1, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := NewMockProvider(tt.script...)
			r, _ := newTestRetry(mock, 3)

			resp, err := r.Generate(context.Background(), storyRequest())
			assert.Len(t, mock.Calls(), tt.calls)
			switch {
			case tt.wantErr >= 0:
				assert.True(t, IsKind(err, tt.wantErr), "got %v", err)
			case tt.name == "unclassified is final":
				assert.EqualError(t, err, "boom")
			default:
				require.NoError(t, err)
				assert.JSONEq(t, storyJSON, string(resp.Content))
			}
		})
	}
}

func TestRetry_Waits(t *testing.T) {
	mock := NewMockProvider(
		unavailable(),
		MockResponse{Err: &Error{Kind: KindRateLimited, RetryAfter: 30 * time.Second}},
		MockResponse{Err: &Error{Kind: KindRateLimited, RetryAfter: 200 * time.Millisecond}},
		MockResponse{Content: json.RawMessage(storyJSON)},
	)
	r, waits := newTestRetry(mock, 4)

	_, err := r.Generate(context.Background(), storyRequest())
	require.NoError(t, err)
	require.Len(t, *waits, 3)
	assert.InDelta(t, 100*time.Millisecond, (*waits)[0], float64(20*time.Millisecond), "jitter stays within 20%")
	assert.Equal(t, time.Second, (*waits)[1], "Retry-After is capped at MaxWait")
	assert.Equal(t, 200*time.Millisecond, (*waits)[2])
}

func TestRetry_StopsOnCancel(t *testing.T) {
	mock := NewMockProvider(unavailable(), unavailable())
	r := WithRetry(mock, RetryConfig{MaxAttempts: 3, InitialWait: time.Hour, MaxWait: time.Hour, Multiplier: 1})

	ctx, cancel := context.WithCancel(context.Background())
	time.AfterFunc(10*time.Millisecond, cancel)

	_, err := r.Generate(ctx, storyRequest())
	assert.ErrorIs(t, err, context.Canceled)
	assert.Len(t, mock.Calls(), 1)
}

type recordingRepo struct {
	store.EventRepo
	events []store.LLMRequestEventData
	err    error
}

func (r *recordingRepo) AppendLLMRequest(_ context.Context, ev store.LLMRequestEventData) error {
	r.events = append(r.events, ev)
	return r.err
}

func TestLogging(t *testing.T) {
	mock := NewMockProvider(MockResponse{Content: json.RawMessage(storyJSON), Usage: Usage{InputTokens: 120, OutputTokens: 40}})
	repo := &recordingRepo{}
	p := WithLogging(mock, repo)

	ctx := WithItem(WithSession(WithPurpose(context.Background(), "story"), "s1"), "3x4")
	_, err := p.Generate(ctx, storyRequest())
	require.NoError(t, err)

	require.Len(t, repo.events, 1)
	ev := repo.events[0]
	assert.Equal(t, "mock", ev.Provider)
	assert.Equal(t, "story", ev.Purpose)
	assert.Equal(t, "s1", ev.SessionID)
	assert.Equal(t, "3x4", ev.ItemKey)
	assert.True(t, ev.Success)
	assert.Equal(t, 120, ev.InputTokens)
	assert.Contains(t, ev.RequestBody, "[schema test-story]")
	assert.Contains(t, ev.RequestBody, "[user]\n3 × 4")
	assert.Contains(t, ev.ResponseBody, "あめ")
}

func TestLogging_FailuresAndJournalErrors(t *testing.T) {
	mock := NewMockProvider(MockResponse{Content: json.RawMessage(`{"story":"x"}`)})
	repo := &recordingRepo{err: errors.New("disk full")}
	p := WithLogging(mock, repo)

	_, err := p.Generate(context.Background(), storyRequest())
	assert.True(t, IsKind(err, KindInvalid), "journal errors must not replace the provider error")

	require.Len(t, repo.events, 1)
	ev := repo.events[0]
	assert.False(t, ev.Success)
	assert.Equal(t, "unknown", ev.Purpose)
	assert.NotEmpty(t, ev.ErrorMessage)
	assert.Equal(t, `{"story":"x"}`, ev.ResponseBody, "rejected content is kept for debugging")
}

func TestLogging_EachRetryIsJournaled(t *testing.T) {
	mock := NewMockProvider(unavailable(), MockResponse{Content: json.RawMessage(storyJSON)})
	repo := &recordingRepo{}
	r, _ := newTestRetry(WithLogging(mock, repo), 3)

	_, err := r.Generate(context.Background(), storyRequest())
	require.NoError(t, err)
	require.Len(t, repo.events, 2)
	assert.False(t, repo.events[0].Success)
	assert.True(t, repo.events[1].Success)
}

type blockingProvider struct{}

func (blockingProvider) Generate(ctx context.Context, _ Request) (*Response, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}
func (blockingProvider) Name() string    { return "blocking" }
func (blockingProvider) ModelID() string { return "blocking-1" }

func TestTimeout(t *testing.T) {
	p := WithTimeout(blockingProvider{}, 10*time.Millisecond)

	start := time.Now()
	_, err := p.Generate(context.Background(), Request{})
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), time.Second)
	assert.Equal(t, "blocking", p.Name())
	assert.Equal(t, "blocking-1", p.ModelID())
}

func TestNewProvider(t *testing.T) {
	ctx := context.Background()

	p, err := NewProvider(ctx, Config{Provider: "mock"}, nil)
	require.NoError(t, err)
	assert.Equal(t, "mock", p.Name())
	_, err = p.Generate(ctx, storyRequest())
	assert.True(t, IsKind(err, KindUnavailable), "an empty mock exercises the template fallback")

	cfg := DefaultConfig()
	cfg.Provider = "openrouter"
	cfg.SetAPIKey("sk-or-test")
	cfg.SetModel("meta-llama/llama-3-8b")
	p, err = NewProvider(ctx, cfg, &recordingRepo{})
	require.NoError(t, err)
	assert.Equal(t, "openrouter", p.Name())
	assert.Equal(t, "meta-llama/llama-3-8b", p.ModelID())
	assert.IsType(t, &TimeoutProvider{}, p)

	_, err = NewProvider(ctx, Config{Provider: "openai"}, nil)
	assert.ErrorContains(t, err, "KAKEZAN_OPENAI_API_KEY")
	_, err = NewProvider(ctx, Config{Provider: "llama"}, nil)
	assert.Error(t, err)
}

func TestConfig_Overrides(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = "gemini"
	cfg.SetModel("")
	cfg.SetAPIKey("g-key")
	cfg.SetModel("gemini-pro")

	assert.Equal(t, "g-key", cfg.Gemini.APIKey)
	assert.Equal(t, "gemini-pro", cfg.Gemini.Model)
	assert.Empty(t, cfg.Anthropic.APIKey)
	assert.NoError(t, cfg.Validate())
}

func TestTags(t *testing.T) {
	assert.Equal(t, Tags{Purpose: "unknown"}, TagsFrom(context.Background()))

	ctx := WithSession(context.Background(), "s1")
	ctx = WithPurpose(ctx, "story")
	ctx = WithItem(ctx, "2x9")
	assert.Equal(t, Tags{Purpose: "story", SessionID: "s1", ItemKey: "2x9"}, TagsFrom(ctx))
}
