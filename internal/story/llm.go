package story

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strconv"
	"strings"

	"github.com/abhisek/kakezan/internal/catalog"
	"github.com/abhisek/kakezan/internal/llm"
	"github.com/abhisek/kakezan/internal/problemgen"
)

// Purpose labels story requests in the LLM journal.
const Purpose = "story"

const systemPrompt = `あなたは 小学2年生の かけ算（九九）の もんだいを つくる せんせいです。
- ひらがなを おおく つかい、かんたんな ことばで かいてください。
- かけられる数と かける数を そのまま 数字で つかってください。
- こたえは かかないでください。さいごは しつもんで おわります。
- 1〜2文で みじかく。`

// ErrMissingFactor reports a story that does not mention both factors.
var ErrMissingFactor = errors.New("story does not mention both factors")

// LLM asks a provider for a fresh word problem and falls back to the
// template when the request fails or the text is unusable.
type LLM struct {
	provider llm.Provider
	fallback Template
}

// NewLLM creates an LLM teller.
func NewLLM(provider llm.Provider) *LLM {
	return &LLM{provider: provider}
}

func (t *LLM) Tell(ctx context.Context, p catalog.Profile, q problemgen.Question) Story {
	text, err := t.generate(ctx, p, q)
	if err != nil {
		slog.Debug("story generation failed, using template", "item", q.Key(), "error", err)
		return t.fallback.Tell(ctx, p, q)
	}
	return Story{Text: text, Source: SourceLLM}
}

func (t *LLM) generate(ctx context.Context, p catalog.Profile, q problemgen.Question) (string, error) {
	ctx = llm.WithItem(llm.WithPurpose(ctx, Purpose), q.Key())

	resp, err := t.provider.Generate(ctx, llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{{
			Role:    llm.RoleUser,
			Content: buildPrompt(p, q),
		}},
		Schema:      StorySchema,
		MaxTokens:   256,
		Temperature: 0.8,
	})
	if err != nil {
		return "", err
	}
	var out struct {
		Text string `json:"text"`
	}
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return "", fmt.Errorf("decode story: %w", err)
	}

	text := strings.TrimSpace(out.Text)
	if !mentionsFactors(text, q.A, q.B) {
		return "", fmt.Errorf("%w: %q", ErrMissingFactor, text)
	}
	return text, nil
}

func buildPrompt(p catalog.Profile, q problemgen.Question) string {
	var b strings.Builder
	fmt.Fprintf(&b, "「%d × %d」の もんだいを つくってください。\n", q.A, q.B)
	fmt.Fprintf(&b, "%dこ ずつ はいった まとまりが %dつ ある ばめんに してください。\n", q.A, q.B)
	fmt.Fprintf(&b, "れい: %s\n", TemplateText(p, q))
	b.WriteString("ちがう ものや ばしょを つかって かまいません。")
	return b.String()
}

var numberRe = regexp.MustCompile(`[0-9０-９]+`)

// mentionsFactors reports whether both factors appear as numbers in text.
// Full-width digits count.
func mentionsFactors(text string, a, b int) bool {
	seen := map[int]int{}
	for _, m := range numberRe.FindAllString(text, -1) {
		n, err := strconv.Atoi(toHalfWidth(m))
		if err == nil {
			seen[n]++
		}
	}
	if a == b {
		return seen[a] >= 2
	}
	return seen[a] > 0 && seen[b] > 0
}

func toHalfWidth(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= '０' && r <= '９' {
			return r - '０' + '0'
		}
		return r
	}, s)
}
