// Code generated by ent, DO NOT EDIT.

package assessmentevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/skillforge/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldEQ(FieldTimestamp, v))
}

// Role applies equality check predicate on the "role" field. It's identical to RoleEQ.
func Role(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldEQ(FieldRole, v))
}

// Readiness applies equality check predicate on the "readiness" field. It's identical to ReadinessEQ.
func Readiness(v float64) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldEQ(FieldReadiness, v))
}

// GapCount applies equality check predicate on the "gap_count" field. It's identical to GapCountEQ.
func GapCount(v int) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldEQ(FieldGapCount, v))
}

// Source applies equality check predicate on the "source" field. It's identical to SourceEQ.
func Source(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldEQ(FieldSource, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldLTE(FieldTimestamp, v))
}

// RoleEQ applies the EQ predicate on the "role" field.
func RoleEQ(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldEQ(FieldRole, v))
}

// RoleNEQ applies the NEQ predicate on the "role" field.
func RoleNEQ(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldNEQ(FieldRole, v))
}

// RoleIn applies the In predicate on the "role" field.
func RoleIn(vs ...string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldIn(FieldRole, vs...))
}

// RoleNotIn applies the NotIn predicate on the "role" field.
func RoleNotIn(vs ...string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldNotIn(FieldRole, vs...))
}

// RoleGT applies the GT predicate on the "role" field.
func RoleGT(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldGT(FieldRole, v))
}

// RoleGTE applies the GTE predicate on the "role" field.
func RoleGTE(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldGTE(FieldRole, v))
}

// RoleLT applies the LT predicate on the "role" field.
func RoleLT(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldLT(FieldRole, v))
}

// RoleLTE applies the LTE predicate on the "role" field.
func RoleLTE(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldLTE(FieldRole, v))
}

// RoleContains applies the Contains predicate on the "role" field.
func RoleContains(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldContains(FieldRole, v))
}

// RoleHasPrefix applies the HasPrefix predicate on the "role" field.
func RoleHasPrefix(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldHasPrefix(FieldRole, v))
}

// RoleHasSuffix applies the HasSuffix predicate on the "role" field.
func RoleHasSuffix(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldHasSuffix(FieldRole, v))
}

// RoleEqualFold applies the EqualFold predicate on the "role" field.
func RoleEqualFold(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldEqualFold(FieldRole, v))
}

// RoleContainsFold applies the ContainsFold predicate on the "role" field.
func RoleContainsFold(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldContainsFold(FieldRole, v))
}

// ReadinessEQ applies the EQ predicate on the "readiness" field.
func ReadinessEQ(v float64) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldEQ(FieldReadiness, v))
}

// ReadinessNEQ applies the NEQ predicate on the "readiness" field.
func ReadinessNEQ(v float64) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldNEQ(FieldReadiness, v))
}

// ReadinessIn applies the In predicate on the "readiness" field.
func ReadinessIn(vs ...float64) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldIn(FieldReadiness, vs...))
}

// ReadinessNotIn applies the NotIn predicate on the "readiness" field.
func ReadinessNotIn(vs ...float64) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldNotIn(FieldReadiness, vs...))
}

// ReadinessGT applies the GT predicate on the "readiness" field.
func ReadinessGT(v float64) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldGT(FieldReadiness, v))
}

// ReadinessGTE applies the GTE predicate on the "readiness" field.
func ReadinessGTE(v float64) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldGTE(FieldReadiness, v))
}

// ReadinessLT applies the LT predicate on the "readiness" field.
func ReadinessLT(v float64) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldLT(FieldReadiness, v))
}

// ReadinessLTE applies the LTE predicate on the "readiness" field.
func ReadinessLTE(v float64) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldLTE(FieldReadiness, v))
}

// GapCountEQ applies the EQ predicate on the "gap_count" field.
func GapCountEQ(v int) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldEQ(FieldGapCount, v))
}

// GapCountNEQ applies the NEQ predicate on the "gap_count" field.
func GapCountNEQ(v int) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldNEQ(FieldGapCount, v))
}

// GapCountIn applies the In predicate on the "gap_count" field.
func GapCountIn(vs ...int) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldIn(FieldGapCount, vs...))
}

// GapCountNotIn applies the NotIn predicate on the "gap_count" field.
func GapCountNotIn(vs ...int) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldNotIn(FieldGapCount, vs...))
}

// GapCountGT applies the GT predicate on the "gap_count" field.
func GapCountGT(v int) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldGT(FieldGapCount, v))
}

// GapCountGTE applies the GTE predicate on the "gap_count" field.
func GapCountGTE(v int) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldGTE(FieldGapCount, v))
}

// GapCountLT applies the LT predicate on the "gap_count" field.
func GapCountLT(v int) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldLT(FieldGapCount, v))
}

// GapCountLTE applies the LTE predicate on the "gap_count" field.
func GapCountLTE(v int) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldLTE(FieldGapCount, v))
}

// SourceEQ applies the EQ predicate on the "source" field.
func SourceEQ(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldEQ(FieldSource, v))
}

// SourceNEQ applies the NEQ predicate on the "source" field.
func SourceNEQ(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldNEQ(FieldSource, v))
}

// SourceIn applies the In predicate on the "source" field.
func SourceIn(vs ...string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldIn(FieldSource, vs...))
}

// SourceNotIn applies the NotIn predicate on the "source" field.
func SourceNotIn(vs ...string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldNotIn(FieldSource, vs...))
}

// SourceGT applies the GT predicate on the "source" field.
func SourceGT(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldGT(FieldSource, v))
}

// SourceGTE applies the GTE predicate on the "source" field.
func SourceGTE(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldGTE(FieldSource, v))
}

// SourceLT applies the LT predicate on the "source" field.
func SourceLT(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldLT(FieldSource, v))
}

// SourceLTE applies the LTE predicate on the "source" field.
func SourceLTE(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldLTE(FieldSource, v))
}

// SourceContains applies the Contains predicate on the "source" field.
func SourceContains(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldContains(FieldSource, v))
}

// SourceHasPrefix applies the HasPrefix predicate on the "source" field.
func SourceHasPrefix(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldHasPrefix(FieldSource, v))
}

// SourceHasSuffix applies the HasSuffix predicate on the "source" field.
func SourceHasSuffix(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldHasSuffix(FieldSource, v))
}

// SourceEqualFold applies the EqualFold predicate on the "source" field.
func SourceEqualFold(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldEqualFold(FieldSource, v))
}

// SourceContainsFold applies the ContainsFold predicate on the "source" field.
func SourceContainsFold(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldContainsFold(FieldSource, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AssessmentEvent) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AssessmentEvent) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AssessmentEvent) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.NotPredicates(p))
}
