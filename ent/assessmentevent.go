// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/skillforge/ent/assessmentevent"
)

// AssessmentEvent is the model entity for the AssessmentEvent schema.
type AssessmentEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// Target role the user was assessed against
	Role string `json:"role,omitempty"`
	// Readiness percentage, 0-100
	Readiness float64 `json:"readiness,omitempty"`
	// Number of skills below the required level
	GapCount int `json:"gap_count,omitempty"`
	// self, resume, or quiz
	Source       string `json:"source,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AssessmentEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case assessmentevent.FieldReadiness:
			values[i] = new(sql.NullFloat64)
		case assessmentevent.FieldID, assessmentevent.FieldSequence, assessmentevent.FieldGapCount:
			values[i] = new(sql.NullInt64)
		case assessmentevent.FieldRole, assessmentevent.FieldSource:
			values[i] = new(sql.NullString)
		case assessmentevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AssessmentEvent fields.
func (_m *AssessmentEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case assessmentevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case assessmentevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case assessmentevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case assessmentevent.FieldRole:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field role", values[i])
			} else if value.Valid {
				_m.Role = value.String
			}
		case assessmentevent.FieldReadiness:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field readiness", values[i])
			} else if value.Valid {
				_m.Readiness = value.Float64
			}
		case assessmentevent.FieldGapCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field gap_count", values[i])
			} else if value.Valid {
				_m.GapCount = int(value.Int64)
			}
		case assessmentevent.FieldSource:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source", values[i])
			} else if value.Valid {
				_m.Source = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the AssessmentEvent.
// This includes values selected through modifiers, order, etc.
func (_m *AssessmentEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this AssessmentEvent.
// Note that you need to call AssessmentEvent.Unwrap() before calling this method if this AssessmentEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *AssessmentEvent) Update() *AssessmentEventUpdateOne {
	return NewAssessmentEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the AssessmentEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *AssessmentEvent) Unwrap() *AssessmentEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: AssessmentEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *AssessmentEvent) String() string {
	var builder strings.Builder
	builder.WriteString("AssessmentEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("role=")
	builder.WriteString(_m.Role)
	builder.WriteString(", ")
	builder.WriteString("readiness=")
	builder.WriteString(fmt.Sprintf("%v", _m.Readiness))
	builder.WriteString(", ")
	builder.WriteString("gap_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.GapCount))
	builder.WriteString(", ")
	builder.WriteString("source=")
	builder.WriteString(_m.Source)
	builder.WriteByte(')')
	return builder.String()
}

// AssessmentEvents is a parsable slice of AssessmentEvent.
type AssessmentEvents []*AssessmentEvent
