package store

import (
	"context"
	"fmt"
	"strings"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	s, err := Open(context.Background(), dsn)
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestWithPragmas(t *testing.T) {
	got := withPragmas("/tmp/journal.db")
	if !strings.HasPrefix(got, "/tmp/journal.db?_pragma=busy_timeout(5000)&_pragma=") {
		t.Errorf("path dsn = %q", got)
	}
	got = withPragmas("file:x?mode=memory")
	if !strings.HasPrefix(got, "file:x?mode=memory&_pragma=") || strings.Count(got, "_pragma=") != len(pragmas) {
		t.Errorf("uri dsn = %q", got)
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases.
		{"foreign_keys", "1"},
		{"busy_timeout", "5000"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSequence(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	sc, err := openSequence(ctx, s.DB())
	if err != nil {
		t.Fatalf("open sequence: %v", err)
	}

	for i := 0; i < 5; i++ {
		seq, err := sc.next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		if want := int64(i + 1); seq != want {
			t.Errorf("seq[%d] = %d, want %d", i, seq, want)
		}
	}
}

func TestAutoMigrationCreatesTables(t *testing.T) {
	s := openTestStore(t)

	for _, table := range []string{
		"session_events", "answer_events", "hint_events", "playback_events", "llm_request_events",
	} {
		var name string
		err := s.DB().QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		if err != nil {
			t.Errorf("table %s: %v", table, err)
		}
	}
}

func TestRecentOrdersAcrossTables(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	steps := []func() error{
		func() error {
			return repo.AppendSessionEvent(ctx, SessionEventData{
				SessionID: "s1", Mode: "concept", Deck: "A", Action: "start", Items: 8,
			})
		},
		func() error {
			return repo.AppendHintEvent(ctx, HintEventData{SessionID: "s1", Mode: "concept", ItemKey: "3x4", Level: 1})
		},
		func() error {
			return repo.AppendAnswerEvent(ctx, AnswerEventData{
				SessionID: "s1", Mode: "concept", ItemKey: "3x4", Expected: 12, Given: 12, Correct: true, HintLevel: 1,
			})
		},
		func() error {
			return repo.AppendPlaybackEvent(ctx, PlaybackEventData{
				Token: 1, Kind: "phrase", Dan: 6, Multiplier: 1, Source: "speech",
			})
		},
		func() error {
			return repo.AppendLLMRequest(ctx, LLMRequestEventData{
				Provider: "mock", Model: "mock", Purpose: "story", Success: true,
			})
		},
	}
	for i, step := range steps {
		if err := step(); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	entries, err := repo.Recent(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	wantKinds := []string{"llm", "playback", "answer", "hint", "session"}
	if len(entries) != len(wantKinds) {
		t.Fatalf("entries = %d, want %d", len(entries), len(wantKinds))
	}
	for i, want := range wantKinds {
		if entries[i].Kind != want {
			t.Errorf("entries[%d].Kind = %q, want %q", i, entries[i].Kind, want)
		}
	}

	limited, err := repo.Recent(ctx, QueryOpts{Limit: 2})
	if err != nil {
		t.Fatalf("recent limited: %v", err)
	}
	if len(limited) != 2 || limited[0].Kind != "llm" || limited[1].Kind != "playback" {
		t.Errorf("limited = %+v", limited)
	}

	after, err := repo.Recent(ctx, QueryOpts{After: entries[1].Sequence})
	if err != nil {
		t.Fatalf("recent after: %v", err)
	}
	if len(after) != 1 || after[0].Kind != "llm" {
		t.Errorf("after = %+v", after)
	}
}

func TestSessionTotals(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	answers := []AnswerEventData{
		{SessionID: "s1", Mode: "concept", ItemKey: "2x3", Expected: 6, Given: 5},
		{SessionID: "s1", Mode: "concept", ItemKey: "2x3", Expected: 6, Given: 6, Correct: true},
		{SessionID: "s2", Mode: "concept", ItemKey: "4x4", Expected: 16, Given: 16, Correct: true},
	}
	for _, a := range answers {
		if err := repo.AppendAnswerEvent(ctx, a); err != nil {
			t.Fatalf("append answer: %v", err)
		}
	}
	if err := repo.AppendHintEvent(ctx, HintEventData{SessionID: "s1", Mode: "shape", Index: 1, ItemKey: "2x3", Level: 1}); err != nil {
		t.Fatalf("append hint: %v", err)
	}

	got, err := repo.SessionTotals(ctx, "s1")
	if err != nil {
		t.Fatalf("totals: %v", err)
	}
	want := SessionTotals{Answers: 2, Correct: 1, HintsUsed: 1}
	if got != want {
		t.Errorf("totals = %+v, want %+v", got, want)
	}
}

func TestLLMEventQueries(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	calls := []LLMRequestEventData{
		{Provider: "openai", Model: "gpt-4o-mini", Purpose: "story", InputTokens: 100, OutputTokens: 20, LatencyMs: 300, Success: true},
		{Provider: "openai", Model: "gpt-4o-mini", Purpose: "story", InputTokens: 50, OutputTokens: 10, LatencyMs: 100, Success: true},
		{Provider: "gemini", Model: "gemini-2.5-flash", Purpose: "story", SessionID: "s9", ItemKey: "7x8", LatencyMs: 200, ErrorMessage: "rate limited"},
	}
	for _, c := range calls {
		if err := repo.AppendLLMRequest(ctx, c); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 2})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 2 || events[0].Model != "gemini-2.5-flash" {
		t.Fatalf("events = %+v", events)
	}

	e, err := repo.GetLLMEvent(ctx, events[0].ID)
	if err != nil || e == nil {
		t.Fatalf("get: %v %v", e, err)
	}
	if e.ErrorMessage != "rate limited" || e.Success || e.SessionID != "s9" || e.ItemKey != "7x8" {
		t.Errorf("event = %+v", e)
	}

	recent, err := repo.Recent(ctx, QueryOpts{Limit: 1})
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(recent) != 1 || recent[0].SessionID != "s9" || !strings.Contains(recent[0].Summary, "story 7x8") {
		t.Errorf("recent = %+v", recent)
	}

	missing, err := repo.GetLLMEvent(ctx, 9999)
	if err != nil || missing != nil {
		t.Errorf("get missing = %v, %v; want nil, nil", missing, err)
	}

	byPurpose, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("by purpose: %v", err)
	}
	if len(byPurpose) != 1 || byPurpose[0].Calls != 3 || byPurpose[0].InputTokens != 150 || byPurpose[0].AvgLatencyMs != 200 {
		t.Errorf("by purpose = %+v", byPurpose)
	}

	byModel, err := repo.LLMUsageByModel(ctx)
	if err != nil {
		t.Fatalf("by model: %v", err)
	}
	if len(byModel) != 2 || byModel[0].Model != "gemini-2.5-flash" || byModel[1].Calls != 2 {
		t.Errorf("by model = %+v", byModel)
	}
}
