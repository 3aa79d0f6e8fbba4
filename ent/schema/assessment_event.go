package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AssessmentEvent records a gap analysis run against a target role.
type AssessmentEvent struct {
	ent.Schema
}

func (AssessmentEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AssessmentEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("role").
			NotEmpty().
			Comment("Target role the user was assessed against"),
		field.Float("readiness").
			Comment("Readiness percentage, 0-100"),
		field.Int("gap_count").
			Default(0).
			Comment("Number of skills below the required level"),
		field.String("source").
			NotEmpty().
			Comment("self, resume, or quiz"),
	}
}

func (AssessmentEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("role"),
		index.Fields("source"),
	}
}
