package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"entgo.io/ent/schema/mixin"
)

// EventMixin is shared by every journal table. The sequence comes from
// one counter across all tables, so a hint, its answer and a story
// request interleave correctly when the journal merges them.
type EventMixin struct {
	mixin.Schema
}

func (EventMixin) Fields() []ent.Field {
	return []ent.Field{
		field.Int64("sequence").Unique().Immutable(),
		field.Time("timestamp").
			Default(func() time.Time { return time.Now().UTC() }).
			Immutable(),
	}
}

// Indexes covers the --since filter. sequence is already unique.
func (EventMixin) Indexes() []ent.Index {
	return []ent.Index{index.Fields("timestamp")}
}

// ItemMixin locates an event at one dealt item of a drill run.
type ItemMixin struct {
	mixin.Schema
}

func (ItemMixin) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").NotEmpty(),
		field.String("mode").NotEmpty(),
		field.Int("position").NonNegative(),
		field.String("item_key").NotEmpty().
			Comment(`"7x8", or "last_digit:6x7" for shape drills`),
	}
}

func (ItemMixin) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id", "position"),
		index.Fields("item_key"),
	}
}
