package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// LLMRequestEvent is one provider call, retries journaled separately.
// The bodies are kept whole so `kakezan llm view` can replay a failure.
type LLMRequestEvent struct {
	ent.Schema
}

func (LLMRequestEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (LLMRequestEvent) Fields() []ent.Field {
	optional := func(name string) ent.Field { return field.String(name).Default("") }
	count := func(name string) ent.Field { return field.Int(name).Default(0).NonNegative() }

	return []ent.Field{
		field.String("provider"),
		field.String("model").Comment("as reported by the provider"),
		field.String("purpose"),
		optional("session_id"),
		optional("item_key"),

		count("input_tokens"),
		count("output_tokens"),
		field.Int64("latency_ms").Default(0),

		field.Bool("success"),
		optional("error_message"),
		field.Text("request_body").Default(""),
		field.Text("response_body").Default(""),
	}
}

func (LLMRequestEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("purpose", "success"),
		index.Fields("session_id"),
		index.Fields("model"),
	}
}
