package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PlaybackEvent is one listening step that ran to completion, with the
// source that finally voiced it.
type PlaybackEvent struct {
	ent.Schema
}

func (PlaybackEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (PlaybackEvent) Fields() []ent.Field {
	return []ent.Field{
		field.Int64("token"),
		field.String("kind").NotEmpty(),
		field.Int("dan").Range(1, 9),
		field.Int("multiplier").Default(0).Range(0, 9).
			Comment("0 for the dan intro"),
		field.String("source").NotEmpty(),
		field.String("error_message").Default("").
			Comment("why the step fell back, if it did"),
	}
}

func (PlaybackEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("dan", "multiplier"),
		index.Fields("source"),
	}
}
