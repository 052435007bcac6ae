// Package story narrates concept-trainer questions as short word problems.
package story

import (
	"context"
	"fmt"

	"github.com/abhisek/kakezan/internal/catalog"
	"github.com/abhisek/kakezan/internal/problemgen"
)

// Source reports where a story came from.
type Source string

const (
	SourceTemplate Source = "template"
	SourceLLM      Source = "llm"
)

// Story is the narration shown above a question.
type Story struct {
	Text   string
	Source Source
}

// Teller narrates a question. Tell never fails: a teller that cannot
// produce its own text returns the template narration.
type Teller interface {
	Tell(ctx context.Context, p catalog.Profile, q problemgen.Question) Story
}

// Template renders the fixed sentence built from the profile's labels.
type Template struct{}

func (Template) Tell(_ context.Context, p catalog.Profile, q problemgen.Question) Story {
	return Story{Text: TemplateText(p, q), Source: SourceTemplate}
}

// TemplateText is "{item}が {a}つ入った {container}が {b}{counter}あります。…".
func TemplateText(p catalog.Profile, q problemgen.Question) string {
	return fmt.Sprintf("%sが %dつ入った %sが %d%sあります。%sは ぜんぶで なんこありますか？",
		p.ItemLabel, q.A, p.ContainerLabel, q.B, p.ContainerCounter, p.ItemLabel)
}
