// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/skillforge/ent/assessmentevent"
	"github.com/abhisek/skillforge/ent/predicate"
)

// AssessmentEventUpdate is the builder for updating AssessmentEvent entities.
type AssessmentEventUpdate struct {
	config
	hooks    []Hook
	mutation *AssessmentEventMutation
}

// Where appends a list predicates to the AssessmentEventUpdate builder.
func (_u *AssessmentEventUpdate) Where(ps ...predicate.AssessmentEvent) *AssessmentEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetRole sets the "role" field.
func (_u *AssessmentEventUpdate) SetRole(v string) *AssessmentEventUpdate {
	_u.mutation.SetRole(v)
	return _u
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_u *AssessmentEventUpdate) SetNillableRole(v *string) *AssessmentEventUpdate {
	if v != nil {
		_u.SetRole(*v)
	}
	return _u
}

// SetReadiness sets the "readiness" field.
func (_u *AssessmentEventUpdate) SetReadiness(v float64) *AssessmentEventUpdate {
	_u.mutation.ResetReadiness()
	_u.mutation.SetReadiness(v)
	return _u
}

// SetNillableReadiness sets the "readiness" field if the given value is not nil.
func (_u *AssessmentEventUpdate) SetNillableReadiness(v *float64) *AssessmentEventUpdate {
	if v != nil {
		_u.SetReadiness(*v)
	}
	return _u
}

// AddReadiness adds value to the "readiness" field.
func (_u *AssessmentEventUpdate) AddReadiness(v float64) *AssessmentEventUpdate {
	_u.mutation.AddReadiness(v)
	return _u
}

// SetGapCount sets the "gap_count" field.
func (_u *AssessmentEventUpdate) SetGapCount(v int) *AssessmentEventUpdate {
	_u.mutation.ResetGapCount()
	_u.mutation.SetGapCount(v)
	return _u
}

// SetNillableGapCount sets the "gap_count" field if the given value is not nil.
func (_u *AssessmentEventUpdate) SetNillableGapCount(v *int) *AssessmentEventUpdate {
	if v != nil {
		_u.SetGapCount(*v)
	}
	return _u
}

// AddGapCount adds value to the "gap_count" field.
func (_u *AssessmentEventUpdate) AddGapCount(v int) *AssessmentEventUpdate {
	_u.mutation.AddGapCount(v)
	return _u
}

// SetSource sets the "source" field.
func (_u *AssessmentEventUpdate) SetSource(v string) *AssessmentEventUpdate {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *AssessmentEventUpdate) SetNillableSource(v *string) *AssessmentEventUpdate {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// Mutation returns the AssessmentEventMutation object of the builder.
func (_u *AssessmentEventUpdate) Mutation() *AssessmentEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AssessmentEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AssessmentEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AssessmentEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AssessmentEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AssessmentEventUpdate) check() error {
	if v, ok := _u.mutation.Role(); ok {
		if err := assessmentevent.RoleValidator(v); err != nil {
			return &ValidationError{Name: "role", err: fmt.Errorf(`ent: validator failed for field "AssessmentEvent.role": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Source(); ok {
		if err := assessmentevent.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "AssessmentEvent.source": %w`, err)}
		}
	}
	return nil
}

func (_u *AssessmentEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(assessmentevent.Table, assessmentevent.Columns, sqlgraph.NewFieldSpec(assessmentevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Role(); ok {
		_spec.SetField(assessmentevent.FieldRole, field.TypeString, value)
	}
	if value, ok := _u.mutation.Readiness(); ok {
		_spec.SetField(assessmentevent.FieldReadiness, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedReadiness(); ok {
		_spec.AddField(assessmentevent.FieldReadiness, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.GapCount(); ok {
		_spec.SetField(assessmentevent.FieldGapCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedGapCount(); ok {
		_spec.AddField(assessmentevent.FieldGapCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(assessmentevent.FieldSource, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{assessmentevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AssessmentEventUpdateOne is the builder for updating a single AssessmentEvent entity.
type AssessmentEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AssessmentEventMutation
}

// SetRole sets the "role" field.
func (_u *AssessmentEventUpdateOne) SetRole(v string) *AssessmentEventUpdateOne {
	_u.mutation.SetRole(v)
	return _u
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_u *AssessmentEventUpdateOne) SetNillableRole(v *string) *AssessmentEventUpdateOne {
	if v != nil {
		_u.SetRole(*v)
	}
	return _u
}

// SetReadiness sets the "readiness" field.
func (_u *AssessmentEventUpdateOne) SetReadiness(v float64) *AssessmentEventUpdateOne {
	_u.mutation.ResetReadiness()
	_u.mutation.SetReadiness(v)
	return _u
}

// SetNillableReadiness sets the "readiness" field if the given value is not nil.
func (_u *AssessmentEventUpdateOne) SetNillableReadiness(v *float64) *AssessmentEventUpdateOne {
	if v != nil {
		_u.SetReadiness(*v)
	}
	return _u
}

// AddReadiness adds value to the "readiness" field.
func (_u *AssessmentEventUpdateOne) AddReadiness(v float64) *AssessmentEventUpdateOne {
	_u.mutation.AddReadiness(v)
	return _u
}

// SetGapCount sets the "gap_count" field.
func (_u *AssessmentEventUpdateOne) SetGapCount(v int) *AssessmentEventUpdateOne {
	_u.mutation.ResetGapCount()
	_u.mutation.SetGapCount(v)
	return _u
}

// SetNillableGapCount sets the "gap_count" field if the given value is not nil.
func (_u *AssessmentEventUpdateOne) SetNillableGapCount(v *int) *AssessmentEventUpdateOne {
	if v != nil {
		_u.SetGapCount(*v)
	}
	return _u
}

// AddGapCount adds value to the "gap_count" field.
func (_u *AssessmentEventUpdateOne) AddGapCount(v int) *AssessmentEventUpdateOne {
	_u.mutation.AddGapCount(v)
	return _u
}

// SetSource sets the "source" field.
func (_u *AssessmentEventUpdateOne) SetSource(v string) *AssessmentEventUpdateOne {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *AssessmentEventUpdateOne) SetNillableSource(v *string) *AssessmentEventUpdateOne {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// Mutation returns the AssessmentEventMutation object of the builder.
func (_u *AssessmentEventUpdateOne) Mutation() *AssessmentEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the AssessmentEventUpdate builder.
func (_u *AssessmentEventUpdateOne) Where(ps ...predicate.AssessmentEvent) *AssessmentEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AssessmentEventUpdateOne) Select(field string, fields ...string) *AssessmentEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AssessmentEvent entity.
func (_u *AssessmentEventUpdateOne) Save(ctx context.Context) (*AssessmentEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AssessmentEventUpdateOne) SaveX(ctx context.Context) *AssessmentEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AssessmentEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AssessmentEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AssessmentEventUpdateOne) check() error {
	if v, ok := _u.mutation.Role(); ok {
		if err := assessmentevent.RoleValidator(v); err != nil {
			return &ValidationError{Name: "role", err: fmt.Errorf(`ent: validator failed for field "AssessmentEvent.role": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Source(); ok {
		if err := assessmentevent.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "AssessmentEvent.source": %w`, err)}
		}
	}
	return nil
}

func (_u *AssessmentEventUpdateOne) sqlSave(ctx context.Context) (_node *AssessmentEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(assessmentevent.Table, assessmentevent.Columns, sqlgraph.NewFieldSpec(assessmentevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AssessmentEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, assessmentevent.FieldID)
		for _, f := range fields {
			if !assessmentevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != assessmentevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Role(); ok {
		_spec.SetField(assessmentevent.FieldRole, field.TypeString, value)
	}
	if value, ok := _u.mutation.Readiness(); ok {
		_spec.SetField(assessmentevent.FieldReadiness, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedReadiness(); ok {
		_spec.AddField(assessmentevent.FieldReadiness, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.GapCount(); ok {
		_spec.SetField(assessmentevent.FieldGapCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedGapCount(); ok {
		_spec.AddField(assessmentevent.FieldGapCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(assessmentevent.FieldSource, field.TypeString, value)
	}
	_node = &AssessmentEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{assessmentevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
