package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Lesson is the persisted form of one course day: the full document plus
// its question set, exactly as produced by an accepted package.
type Lesson struct {
	ent.Schema
}

func (Lesson) Fields() []ent.Field {
	return []ent.Field{
		field.String("lesson_id").
			NotEmpty().
			Unique().
			Comment("Stable lesson identifier carried across re-imports"),
		field.Int("day").
			Positive().
			Comment("Ordinal day number within the course"),
		field.String("language").
			NotEmpty(),
		field.String("title").
			NotEmpty(),
		field.Text("content").
			Comment("Full lesson document including the machine-owned sections"),
		field.JSON("questions", []map[string]any{}).
			Comment("Question set in the package export shape"),
	}
}

func (Lesson) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("day"),
	}
}
