package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AnswerEvent records a single answered question within a quiz.
type AnswerEvent struct {
	ent.Schema
}

func (AnswerEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AnswerEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("quiz_id").
			NotEmpty().
			Comment("Links to QuizEvent"),
		field.String("skill").
			NotEmpty().
			Comment("Skill this question tested"),
		field.String("difficulty").
			NotEmpty().
			Comment("beginner, intermediate, advanced, or expert"),
		field.String("question_text").
			NotEmpty().
			Comment("The question shown"),
		field.Int("selected_index").
			Comment("Option the user picked, -1 if skipped"),
		field.Int("correct_index").
			Comment("Index of the correct option"),
		field.Bool("correct").
			Comment("Whether the answer was correct"),
	}
}

func (AnswerEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("quiz_id"),
		index.Fields("skill"),
		index.Fields("correct"),
	}
}
