package story

import "github.com/abhisek/kakezan/internal/llm"

// StorySchema defines the JSON schema for LLM story responses.
var StorySchema = &llm.Schema{
	Name:        "kuku-story",
	Description: "A one- or two-sentence multiplication word problem for a young child",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"text": map[string]any{
				"type":        "string",
				"minLength":   8,
				"maxLength":   200,
				"description": "The word problem in hiragana-friendly Japanese. Uses both numbers as digits and ends with a question.",
			},
		},
		"required":             []any{"text"},
		"additionalProperties": false,
	},
}
