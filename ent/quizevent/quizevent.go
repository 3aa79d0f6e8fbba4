// Code generated by ent, DO NOT EDIT.

package quizevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the quizevent type in the database.
	Label = "quiz_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldQuizID holds the string denoting the quiz_id field in the database.
	FieldQuizID = "quiz_id"
	// FieldAction holds the string denoting the action field in the database.
	FieldAction = "action"
	// FieldSkills holds the string denoting the skills field in the database.
	FieldSkills = "skills"
	// FieldQuestionsServed holds the string denoting the questions_served field in the database.
	FieldQuestionsServed = "questions_served"
	// FieldCorrectAnswers holds the string denoting the correct_answers field in the database.
	FieldCorrectAnswers = "correct_answers"
	// Table holds the table name of the quizevent in the database.
	Table = "quiz_events"
)

// Columns holds all SQL columns for quizevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldQuizID,
	FieldAction,
	FieldSkills,
	FieldQuestionsServed,
	FieldCorrectAnswers,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
	// QuizIDValidator is a validator for the "quiz_id" field. It is called by the builders before save.
	QuizIDValidator func(string) error
	// ActionValidator is a validator for the "action" field. It is called by the builders before save.
	ActionValidator func(string) error
	// DefaultQuestionsServed holds the default value on creation for the "questions_served" field.
	DefaultQuestionsServed int
	// DefaultCorrectAnswers holds the default value on creation for the "correct_answers" field.
	DefaultCorrectAnswers int
)

// OrderOption defines the ordering options for the QuizEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// ByQuizID orders the results by the quiz_id field.
func ByQuizID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuizID, opts...).ToFunc()
}

// ByAction orders the results by the action field.
func ByAction(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAction, opts...).ToFunc()
}

// ByQuestionsServed orders the results by the questions_served field.
func ByQuestionsServed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuestionsServed, opts...).ToFunc()
}

// ByCorrectAnswers orders the results by the correct_answers field.
func ByCorrectAnswers(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCorrectAnswers, opts...).ToFunc()
}
