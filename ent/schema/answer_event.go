package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AnswerEvent is one well-formed submission. Malformed input never
// reaches the journal.
type AnswerEvent struct {
	ent.Schema
}

func (AnswerEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}, ItemMixin{}}
}

func (AnswerEvent) Fields() []ent.Field {
	return []ent.Field{
		field.Int("expected"),
		field.Int("given"),
		field.Bool("correct"),
		field.Int("hint_level").Default(0).NonNegative(),
		field.Int("time_ms").NonNegative().
			Comment("since the item was shown"),
	}
}

func (AnswerEvent) Indexes() []ent.Index {
	return []ent.Index{index.Fields("correct")}
}
