package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// HintEvent is written each time the child asks for a stronger hint on a
// drill item. Level 1 is the grouping picture, higher levels reveal more.
type HintEvent struct {
	ent.Schema
}

func (HintEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}, ItemMixin{}}
}

func (HintEvent) Fields() []ent.Field {
	return []ent.Field{
		field.Int("level").Range(1, 3),
	}
}
