package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SessionEvent marks a drill run starting, finishing or being abandoned.
// The counts are the tallies at that moment.
type SessionEvent struct {
	ent.Schema
}

func (SessionEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (SessionEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").NotEmpty(),
		field.String("mode").NotEmpty(),
		field.String("deck").Default("").
			Comment("profile or dan the run was dealt from"),
		field.String("action").NotEmpty(),
		field.Int("item_count").Default(0).NonNegative(),
		field.Int("correct_count").Default(0).NonNegative(),
		field.Int("wrong_count").Default(0).NonNegative(),
	}
}

func (SessionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id", "action"),
	}
}
