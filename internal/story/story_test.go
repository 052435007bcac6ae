package story

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/abhisek/kakezan/internal/catalog"
	"github.com/abhisek/kakezan/internal/llm"
	"github.com/abhisek/kakezan/internal/problemgen"
)

func stepA(t *testing.T) catalog.Profile {
	t.Helper()
	p, ok := catalog.LookupProfile(catalog.StepA)
	if !ok {
		t.Fatal("profile A missing")
	}
	return p
}

func TestTemplate(t *testing.T) {
	s := Template{}.Tell(context.Background(), stepA(t), problemgen.Question{A: 3, B: 4})

	want := "あめが 3つ入った ふくろが 4ふくろあります。あめは ぜんぶで なんこありますか？"
	if s.Text != want {
		t.Fatalf("got %q, want %q", s.Text, want)
	}
	if s.Source != SourceTemplate {
		t.Fatalf("unexpected source %q", s.Source)
	}
}

func TestLLM_UsesGeneratedText(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"text":"こうえんに ベンチが 4つ。ひとつに 3にん ずつ すわると、みんなで なんにん？"}`),
	})
	s := NewLLM(mock).Tell(context.Background(), stepA(t), problemgen.Question{A: 3, B: 4})

	if s.Source != SourceLLM {
		t.Fatalf("expected llm source, got %q (%s)", s.Source, s.Text)
	}
	if !strings.Contains(s.Text, "ベンチ") {
		t.Fatalf("unexpected text %q", s.Text)
	}

	req := mock.Calls()[0]
	if req.Schema != StorySchema {
		t.Fatal("request must carry the story schema")
	}
	if !strings.Contains(req.Messages[0].Content, "3 × 4") {
		t.Fatalf("prompt missing factors: %q", req.Messages[0].Content)
	}
}

// tagRecorder captures the journal tags a teller puts on its requests.
type tagRecorder struct {
	*llm.MockProvider
	tags llm.Tags
}

func (r *tagRecorder) Generate(ctx context.Context, req llm.Request) (*llm.Response, error) {
	r.tags = llm.TagsFrom(ctx)
	return r.MockProvider.Generate(ctx, req)
}

func TestLLM_TagsRequests(t *testing.T) {
	rec := &tagRecorder{MockProvider: llm.NewMockProvider()}
	ctx := llm.WithSession(context.Background(), "s1")
	NewLLM(rec).Tell(ctx, stepA(t), problemgen.Question{A: 7, B: 8})

	want := llm.Tags{Purpose: Purpose, SessionID: "s1", ItemKey: "7x8"}
	if rec.tags != want {
		t.Fatalf("tags = %+v, want %+v", rec.tags, want)
	}
}

func TestLLM_FallsBack(t *testing.T) {
	tests := []struct {
		name string
		resp llm.MockResponse
	}{
		{"provider error", llm.MockResponse{Err: &llm.Error{Kind: llm.KindUnavailable, Err: errors.New("down")}}},
		{"truncated", llm.MockResponse{
			Content: json.RawMessage(`{"text":"こうえんに ベンチが 4つ。ひとつに 3にん ずつ"}`),
			Stop:    llm.StopMaxTokens,
		}},
		{"schema violation", llm.MockResponse{Content: json.RawMessage(`{"story":"x"}`)}},
		{"missing factor", llm.MockResponse{Content: json.RawMessage(`{"text":"りんごが 3こ ずつ はいった かごが あります。ぜんぶで なんこ？"}`)}},
		{"not json", llm.MockResponse{Content: json.RawMessage(`"just text"`)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := llm.NewMockProvider(tt.resp)
			q := problemgen.Question{A: 3, B: 4}
			s := NewLLM(mock).Tell(context.Background(), stepA(t), q)

			if s.Source != SourceTemplate {
				t.Fatalf("expected template fallback, got %q", s.Text)
			}
			if s.Text != TemplateText(stepA(t), q) {
				t.Fatalf("unexpected fallback text %q", s.Text)
			}
		})
	}
}

func TestMentionsFactors(t *testing.T) {
	tests := []struct {
		text string
		a, b int
		want bool
	}{
		{"3こ ずつ 4つ", 3, 4, true},
		{"３こ ずつ ４つ", 3, 4, true},
		{"3こ ずつ", 3, 4, false},
		{"13こ と 4つ", 3, 4, false},
		{"2こ ずつ 2つ", 2, 2, true},
		{"2こ ずつ みっつ", 2, 2, false},
	}
	for _, tt := range tests {
		if got := mentionsFactors(tt.text, tt.a, tt.b); got != tt.want {
			t.Errorf("mentionsFactors(%q, %d, %d) = %v, want %v", tt.text, tt.a, tt.b, got, tt.want)
		}
	}
}
