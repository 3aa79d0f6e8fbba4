package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// QuizEvent records quiz lifecycle events (start/finish).
type QuizEvent struct {
	ent.Schema
}

func (QuizEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (QuizEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("quiz_id").
			NotEmpty().
			Comment("UUID grouping events in a quiz run"),
		field.String("action").
			NotEmpty().
			Comment("start or finish"),
		field.Strings("skills").
			Optional().
			Comment("Skills covered by the quiz (on start only)"),
		field.Int("questions_served").
			Default(0).
			Comment("Total questions (on finish only)"),
		field.Int("correct_answers").
			Default(0).
			Comment("Total correct (on finish only)"),
	}
}

func (QuizEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("quiz_id"),
		index.Fields("action"),
	}
}
