// Code generated by ent, DO NOT EDIT.

package answerevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the answerevent type in the database.
	Label = "answer_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldQuizID holds the string denoting the quiz_id field in the database.
	FieldQuizID = "quiz_id"
	// FieldSkill holds the string denoting the skill field in the database.
	FieldSkill = "skill"
	// FieldDifficulty holds the string denoting the difficulty field in the database.
	FieldDifficulty = "difficulty"
	// FieldQuestionText holds the string denoting the question_text field in the database.
	FieldQuestionText = "question_text"
	// FieldSelectedIndex holds the string denoting the selected_index field in the database.
	FieldSelectedIndex = "selected_index"
	// FieldCorrectIndex holds the string denoting the correct_index field in the database.
	FieldCorrectIndex = "correct_index"
	// FieldCorrect holds the string denoting the correct field in the database.
	FieldCorrect = "correct"
	// Table holds the table name of the answerevent in the database.
	Table = "answer_events"
)

// Columns holds all SQL columns for answerevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldQuizID,
	FieldSkill,
	FieldDifficulty,
	FieldQuestionText,
	FieldSelectedIndex,
	FieldCorrectIndex,
	FieldCorrect,
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
	// SkillValidator is a validator for the "skill" field. It is called by the builders before save.
	SkillValidator func(string) error
	// DifficultyValidator is a validator for the "difficulty" field. It is called by the builders before save.
	DifficultyValidator func(string) error
	// QuestionTextValidator is a validator for the "question_text" field. It is called by the builders before save.
	QuestionTextValidator func(string) error
)

// OrderOption defines the ordering options for the AnswerEvent queries.
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

// BySkill orders the results by the skill field.
func BySkill(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSkill, opts...).ToFunc()
}

// ByDifficulty orders the results by the difficulty field.
func ByDifficulty(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDifficulty, opts...).ToFunc()
}

// ByQuestionText orders the results by the question_text field.
func ByQuestionText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuestionText, opts...).ToFunc()
}

// BySelectedIndex orders the results by the selected_index field.
func BySelectedIndex(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSelectedIndex, opts...).ToFunc()
}

// ByCorrectIndex orders the results by the correct_index field.
func ByCorrectIndex(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCorrectIndex, opts...).ToFunc()
}

// ByCorrect orders the results by the correct field.
func ByCorrect(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCorrect, opts...).ToFunc()
}
