package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AuditEvent records one package audit run, accepted or rejected, so the
// content team can trace when a package version was certified and why a
// regeneration failed.
type AuditEvent struct {
	ent.Schema
}

func (AuditEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("run_id").
			NotEmpty().
			Unique().
			Comment("UUID of the assembly/audit run"),
		field.Time("timestamp").
			Default(time.Now),
		field.Int("lesson_count").
			Comment("Lessons in the audited candidate"),
		field.Bool("passed"),
		field.Text("detail").
			Optional().
			Comment("Failure detail when passed is false"),
	}
}

func (AuditEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("timestamp"),
	}
}
