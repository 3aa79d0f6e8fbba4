// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/skillforge/ent/quizevent"
)

// QuizEvent is the model entity for the QuizEvent schema.
type QuizEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// UUID grouping events in a quiz run
	QuizID string `json:"quiz_id,omitempty"`
	// start or finish
	Action string `json:"action,omitempty"`
	// Skills covered by the quiz (on start only)
	Skills []string `json:"skills,omitempty"`
	// Total questions (on finish only)
	QuestionsServed int `json:"questions_served,omitempty"`
	// Total correct (on finish only)
	CorrectAnswers int `json:"correct_answers,omitempty"`
	selectValues   sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*QuizEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case quizevent.FieldSkills:
			values[i] = new([]byte)
		case quizevent.FieldID, quizevent.FieldSequence, quizevent.FieldQuestionsServed, quizevent.FieldCorrectAnswers:
			values[i] = new(sql.NullInt64)
		case quizevent.FieldQuizID, quizevent.FieldAction:
			values[i] = new(sql.NullString)
		case quizevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the QuizEvent fields.
func (_m *QuizEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case quizevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case quizevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case quizevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case quizevent.FieldQuizID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field quiz_id", values[i])
			} else if value.Valid {
				_m.QuizID = value.String
			}
		case quizevent.FieldAction:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field action", values[i])
			} else if value.Valid {
				_m.Action = value.String
			}
		case quizevent.FieldSkills:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field skills", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Skills); err != nil {
					return fmt.Errorf("unmarshal field skills: %w", err)
				}
			}
		case quizevent.FieldQuestionsServed:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field questions_served", values[i])
			} else if value.Valid {
				_m.QuestionsServed = int(value.Int64)
			}
		case quizevent.FieldCorrectAnswers:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field correct_answers", values[i])
			} else if value.Valid {
				_m.CorrectAnswers = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the QuizEvent.
// This includes values selected through modifiers, order, etc.
func (_m *QuizEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this QuizEvent.
// Note that you need to call QuizEvent.Unwrap() before calling this method if this QuizEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *QuizEvent) Update() *QuizEventUpdateOne {
	return NewQuizEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the QuizEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *QuizEvent) Unwrap() *QuizEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: QuizEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *QuizEvent) String() string {
	var builder strings.Builder
	builder.WriteString("QuizEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("quiz_id=")
	builder.WriteString(_m.QuizID)
	builder.WriteString(", ")
	builder.WriteString("action=")
	builder.WriteString(_m.Action)
	builder.WriteString(", ")
	builder.WriteString("skills=")
	builder.WriteString(fmt.Sprintf("%v", _m.Skills))
	builder.WriteString(", ")
	builder.WriteString("questions_served=")
	builder.WriteString(fmt.Sprintf("%v", _m.QuestionsServed))
	builder.WriteString(", ")
	builder.WriteString("correct_answers=")
	builder.WriteString(fmt.Sprintf("%v", _m.CorrectAnswers))
	builder.WriteByte(')')
	return builder.String()
}

// QuizEvents is a parsable slice of QuizEvent.
type QuizEvents []*QuizEvent
