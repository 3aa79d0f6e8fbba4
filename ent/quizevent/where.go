// Code generated by ent, DO NOT EDIT.

package quizevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/skillforge/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldEQ(FieldTimestamp, v))
}

// QuizID applies equality check predicate on the "quiz_id" field. It's identical to QuizIDEQ.
func QuizID(v string) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldEQ(FieldQuizID, v))
}

// Action applies equality check predicate on the "action" field. It's identical to ActionEQ.
func Action(v string) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldEQ(FieldAction, v))
}

// QuestionsServed applies equality check predicate on the "questions_served" field. It's identical to QuestionsServedEQ.
func QuestionsServed(v int) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldEQ(FieldQuestionsServed, v))
}

// CorrectAnswers applies equality check predicate on the "correct_answers" field. It's identical to CorrectAnswersEQ.
func CorrectAnswers(v int) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldEQ(FieldCorrectAnswers, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldLTE(FieldTimestamp, v))
}

// QuizIDEQ applies the EQ predicate on the "quiz_id" field.
func QuizIDEQ(v string) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldEQ(FieldQuizID, v))
}

// QuizIDNEQ applies the NEQ predicate on the "quiz_id" field.
func QuizIDNEQ(v string) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldNEQ(FieldQuizID, v))
}

// QuizIDIn applies the In predicate on the "quiz_id" field.
func QuizIDIn(vs ...string) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldIn(FieldQuizID, vs...))
}

// QuizIDNotIn applies the NotIn predicate on the "quiz_id" field.
func QuizIDNotIn(vs ...string) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldNotIn(FieldQuizID, vs...))
}

// QuizIDGT applies the GT predicate on the "quiz_id" field.
func QuizIDGT(v string) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldGT(FieldQuizID, v))
}

// QuizIDGTE applies the GTE predicate on the "quiz_id" field.
func QuizIDGTE(v string) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldGTE(FieldQuizID, v))
}

// QuizIDLT applies the LT predicate on the "quiz_id" field.
func QuizIDLT(v string) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldLT(FieldQuizID, v))
}

// QuizIDLTE applies the LTE predicate on the "quiz_id" field.
func QuizIDLTE(v string) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldLTE(FieldQuizID, v))
}

// QuizIDContains applies the Contains predicate on the "quiz_id" field.
func QuizIDContains(v string) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldContains(FieldQuizID, v))
}

// QuizIDHasPrefix applies the HasPrefix predicate on the "quiz_id" field.
func QuizIDHasPrefix(v string) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldHasPrefix(FieldQuizID, v))
}

// QuizIDHasSuffix applies the HasSuffix predicate on the "quiz_id" field.
func QuizIDHasSuffix(v string) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldHasSuffix(FieldQuizID, v))
}

// QuizIDEqualFold applies the EqualFold predicate on the "quiz_id" field.
func QuizIDEqualFold(v string) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldEqualFold(FieldQuizID, v))
}

// QuizIDContainsFold applies the ContainsFold predicate on the "quiz_id" field.
func QuizIDContainsFold(v string) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldContainsFold(FieldQuizID, v))
}

// ActionEQ applies the EQ predicate on the "action" field.
func ActionEQ(v string) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldEQ(FieldAction, v))
}

// ActionNEQ applies the NEQ predicate on the "action" field.
func ActionNEQ(v string) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldNEQ(FieldAction, v))
}

// ActionIn applies the In predicate on the "action" field.
func ActionIn(vs ...string) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldIn(FieldAction, vs...))
}

// ActionNotIn applies the NotIn predicate on the "action" field.
func ActionNotIn(vs ...string) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldNotIn(FieldAction, vs...))
}

// ActionGT applies the GT predicate on the "action" field.
func ActionGT(v string) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldGT(FieldAction, v))
}

// ActionGTE applies the GTE predicate on the "action" field.
func ActionGTE(v string) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldGTE(FieldAction, v))
}

// ActionLT applies the LT predicate on the "action" field.
func ActionLT(v string) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldLT(FieldAction, v))
}

// ActionLTE applies the LTE predicate on the "action" field.
func ActionLTE(v string) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldLTE(FieldAction, v))
}

// ActionContains applies the Contains predicate on the "action" field.
func ActionContains(v string) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldContains(FieldAction, v))
}

// ActionHasPrefix applies the HasPrefix predicate on the "action" field.
func ActionHasPrefix(v string) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldHasPrefix(FieldAction, v))
}

// ActionHasSuffix applies the HasSuffix predicate on the "action" field.
func ActionHasSuffix(v string) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldHasSuffix(FieldAction, v))
}

// ActionEqualFold applies the EqualFold predicate on the "action" field.
func ActionEqualFold(v string) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldEqualFold(FieldAction, v))
}

// ActionContainsFold applies the ContainsFold predicate on the "action" field.
func ActionContainsFold(v string) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldContainsFold(FieldAction, v))
}

// SkillsIsNil applies the IsNil predicate on the "skills" field.
func SkillsIsNil() predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldIsNull(FieldSkills))
}

// SkillsNotNil applies the NotNil predicate on the "skills" field.
func SkillsNotNil() predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldNotNull(FieldSkills))
}

// QuestionsServedEQ applies the EQ predicate on the "questions_served" field.
func QuestionsServedEQ(v int) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldEQ(FieldQuestionsServed, v))
}

// QuestionsServedNEQ applies the NEQ predicate on the "questions_served" field.
func QuestionsServedNEQ(v int) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldNEQ(FieldQuestionsServed, v))
}

// QuestionsServedIn applies the In predicate on the "questions_served" field.
func QuestionsServedIn(vs ...int) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldIn(FieldQuestionsServed, vs...))
}

// QuestionsServedNotIn applies the NotIn predicate on the "questions_served" field.
func QuestionsServedNotIn(vs ...int) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldNotIn(FieldQuestionsServed, vs...))
}

// QuestionsServedGT applies the GT predicate on the "questions_served" field.
func QuestionsServedGT(v int) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldGT(FieldQuestionsServed, v))
}

// QuestionsServedGTE applies the GTE predicate on the "questions_served" field.
func QuestionsServedGTE(v int) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldGTE(FieldQuestionsServed, v))
}

// QuestionsServedLT applies the LT predicate on the "questions_served" field.
func QuestionsServedLT(v int) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldLT(FieldQuestionsServed, v))
}

// QuestionsServedLTE applies the LTE predicate on the "questions_served" field.
func QuestionsServedLTE(v int) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldLTE(FieldQuestionsServed, v))
}

// CorrectAnswersEQ applies the EQ predicate on the "correct_answers" field.
func CorrectAnswersEQ(v int) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldEQ(FieldCorrectAnswers, v))
}

// CorrectAnswersNEQ applies the NEQ predicate on the "correct_answers" field.
func CorrectAnswersNEQ(v int) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldNEQ(FieldCorrectAnswers, v))
}

// CorrectAnswersIn applies the In predicate on the "correct_answers" field.
func CorrectAnswersIn(vs ...int) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldIn(FieldCorrectAnswers, vs...))
}

// CorrectAnswersNotIn applies the NotIn predicate on the "correct_answers" field.
func CorrectAnswersNotIn(vs ...int) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldNotIn(FieldCorrectAnswers, vs...))
}

// CorrectAnswersGT applies the GT predicate on the "correct_answers" field.
func CorrectAnswersGT(v int) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldGT(FieldCorrectAnswers, v))
}

// CorrectAnswersGTE applies the GTE predicate on the "correct_answers" field.
func CorrectAnswersGTE(v int) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldGTE(FieldCorrectAnswers, v))
}

// CorrectAnswersLT applies the LT predicate on the "correct_answers" field.
func CorrectAnswersLT(v int) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldLT(FieldCorrectAnswers, v))
}

// CorrectAnswersLTE applies the LTE predicate on the "correct_answers" field.
func CorrectAnswersLTE(v int) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldLTE(FieldCorrectAnswers, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.QuizEvent) predicate.QuizEvent {
	return predicate.QuizEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.QuizEvent) predicate.QuizEvent {
	return predicate.QuizEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.QuizEvent) predicate.QuizEvent {
	return predicate.QuizEvent(sql.NotPredicates(p))
}
