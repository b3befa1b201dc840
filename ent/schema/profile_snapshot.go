package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ProfileSnapshot holds the learner's full progress state as one serialized
// blob. The table acts as a single durable slot: Save replaces the previous
// row, Load reads the newest one.
type ProfileSnapshot struct {
	ent.Schema
}

func (ProfileSnapshot) Fields() []ent.Field {
	return []ent.Field{
		field.String("data").
			Comment("Progress state as a JSON document"),
		field.Time("saved_at").
			Default(time.Now).
			Comment("When the snapshot was written"),
	}
}

func (ProfileSnapshot) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("saved_at"),
	}
}
