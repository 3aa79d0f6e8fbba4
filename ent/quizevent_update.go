// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/skillforge/ent/predicate"
	"github.com/abhisek/skillforge/ent/quizevent"
)

// QuizEventUpdate is the builder for updating QuizEvent entities.
type QuizEventUpdate struct {
	config
	hooks    []Hook
	mutation *QuizEventMutation
}

// Where appends a list predicates to the QuizEventUpdate builder.
func (_u *QuizEventUpdate) Where(ps ...predicate.QuizEvent) *QuizEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetQuizID sets the "quiz_id" field.
func (_u *QuizEventUpdate) SetQuizID(v string) *QuizEventUpdate {
	_u.mutation.SetQuizID(v)
	return _u
}

// SetNillableQuizID sets the "quiz_id" field if the given value is not nil.
func (_u *QuizEventUpdate) SetNillableQuizID(v *string) *QuizEventUpdate {
	if v != nil {
		_u.SetQuizID(*v)
	}
	return _u
}

// SetAction sets the "action" field.
func (_u *QuizEventUpdate) SetAction(v string) *QuizEventUpdate {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *QuizEventUpdate) SetNillableAction(v *string) *QuizEventUpdate {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetSkills sets the "skills" field.
func (_u *QuizEventUpdate) SetSkills(v []string) *QuizEventUpdate {
	_u.mutation.SetSkills(v)
	return _u
}

// AppendSkills appends value to the "skills" field.
func (_u *QuizEventUpdate) AppendSkills(v []string) *QuizEventUpdate {
	_u.mutation.AppendSkills(v)
	return _u
}

// ClearSkills clears the value of the "skills" field.
func (_u *QuizEventUpdate) ClearSkills() *QuizEventUpdate {
	_u.mutation.ClearSkills()
	return _u
}

// SetQuestionsServed sets the "questions_served" field.
func (_u *QuizEventUpdate) SetQuestionsServed(v int) *QuizEventUpdate {
	_u.mutation.ResetQuestionsServed()
	_u.mutation.SetQuestionsServed(v)
	return _u
}

// SetNillableQuestionsServed sets the "questions_served" field if the given value is not nil.
func (_u *QuizEventUpdate) SetNillableQuestionsServed(v *int) *QuizEventUpdate {
	if v != nil {
		_u.SetQuestionsServed(*v)
	}
	return _u
}

// AddQuestionsServed adds value to the "questions_served" field.
func (_u *QuizEventUpdate) AddQuestionsServed(v int) *QuizEventUpdate {
	_u.mutation.AddQuestionsServed(v)
	return _u
}

// SetCorrectAnswers sets the "correct_answers" field.
func (_u *QuizEventUpdate) SetCorrectAnswers(v int) *QuizEventUpdate {
	_u.mutation.ResetCorrectAnswers()
	_u.mutation.SetCorrectAnswers(v)
	return _u
}

// SetNillableCorrectAnswers sets the "correct_answers" field if the given value is not nil.
func (_u *QuizEventUpdate) SetNillableCorrectAnswers(v *int) *QuizEventUpdate {
	if v != nil {
		_u.SetCorrectAnswers(*v)
	}
	return _u
}

// AddCorrectAnswers adds value to the "correct_answers" field.
func (_u *QuizEventUpdate) AddCorrectAnswers(v int) *QuizEventUpdate {
	_u.mutation.AddCorrectAnswers(v)
	return _u
}

// Mutation returns the QuizEventMutation object of the builder.
func (_u *QuizEventUpdate) Mutation() *QuizEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *QuizEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuizEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *QuizEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuizEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuizEventUpdate) check() error {
	if v, ok := _u.mutation.QuizID(); ok {
		if err := quizevent.QuizIDValidator(v); err != nil {
			return &ValidationError{Name: "quiz_id", err: fmt.Errorf(`ent: validator failed for field "QuizEvent.quiz_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Action(); ok {
		if err := quizevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "QuizEvent.action": %w`, err)}
		}
	}
	return nil
}

func (_u *QuizEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(quizevent.Table, quizevent.Columns, sqlgraph.NewFieldSpec(quizevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.QuizID(); ok {
		_spec.SetField(quizevent.FieldQuizID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(quizevent.FieldAction, field.TypeString, value)
	}
	if value, ok := _u.mutation.Skills(); ok {
		_spec.SetField(quizevent.FieldSkills, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSkills(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, quizevent.FieldSkills, value)
		})
	}
	if _u.mutation.SkillsCleared() {
		_spec.ClearField(quizevent.FieldSkills, field.TypeJSON)
	}
	if value, ok := _u.mutation.QuestionsServed(); ok {
		_spec.SetField(quizevent.FieldQuestionsServed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestionsServed(); ok {
		_spec.AddField(quizevent.FieldQuestionsServed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CorrectAnswers(); ok {
		_spec.SetField(quizevent.FieldCorrectAnswers, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrectAnswers(); ok {
		_spec.AddField(quizevent.FieldCorrectAnswers, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{quizevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// QuizEventUpdateOne is the builder for updating a single QuizEvent entity.
type QuizEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *QuizEventMutation
}

// SetQuizID sets the "quiz_id" field.
func (_u *QuizEventUpdateOne) SetQuizID(v string) *QuizEventUpdateOne {
	_u.mutation.SetQuizID(v)
	return _u
}

// SetNillableQuizID sets the "quiz_id" field if the given value is not nil.
func (_u *QuizEventUpdateOne) SetNillableQuizID(v *string) *QuizEventUpdateOne {
	if v != nil {
		_u.SetQuizID(*v)
	}
	return _u
}

// SetAction sets the "action" field.
func (_u *QuizEventUpdateOne) SetAction(v string) *QuizEventUpdateOne {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *QuizEventUpdateOne) SetNillableAction(v *string) *QuizEventUpdateOne {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetSkills sets the "skills" field.
func (_u *QuizEventUpdateOne) SetSkills(v []string) *QuizEventUpdateOne {
	_u.mutation.SetSkills(v)
	return _u
}

// AppendSkills appends value to the "skills" field.
func (_u *QuizEventUpdateOne) AppendSkills(v []string) *QuizEventUpdateOne {
	_u.mutation.AppendSkills(v)
	return _u
}

// ClearSkills clears the value of the "skills" field.
func (_u *QuizEventUpdateOne) ClearSkills() *QuizEventUpdateOne {
	_u.mutation.ClearSkills()
	return _u
}

// SetQuestionsServed sets the "questions_served" field.
func (_u *QuizEventUpdateOne) SetQuestionsServed(v int) *QuizEventUpdateOne {
	_u.mutation.ResetQuestionsServed()
	_u.mutation.SetQuestionsServed(v)
	return _u
}

// SetNillableQuestionsServed sets the "questions_served" field if the given value is not nil.
func (_u *QuizEventUpdateOne) SetNillableQuestionsServed(v *int) *QuizEventUpdateOne {
	if v != nil {
		_u.SetQuestionsServed(*v)
	}
	return _u
}

// AddQuestionsServed adds value to the "questions_served" field.
func (_u *QuizEventUpdateOne) AddQuestionsServed(v int) *QuizEventUpdateOne {
	_u.mutation.AddQuestionsServed(v)
	return _u
}

// SetCorrectAnswers sets the "correct_answers" field.
func (_u *QuizEventUpdateOne) SetCorrectAnswers(v int) *QuizEventUpdateOne {
	_u.mutation.ResetCorrectAnswers()
	_u.mutation.SetCorrectAnswers(v)
	return _u
}

// SetNillableCorrectAnswers sets the "correct_answers" field if the given value is not nil.
func (_u *QuizEventUpdateOne) SetNillableCorrectAnswers(v *int) *QuizEventUpdateOne {
	if v != nil {
		_u.SetCorrectAnswers(*v)
	}
	return _u
}

// AddCorrectAnswers adds value to the "correct_answers" field.
func (_u *QuizEventUpdateOne) AddCorrectAnswers(v int) *QuizEventUpdateOne {
	_u.mutation.AddCorrectAnswers(v)
	return _u
}

// Mutation returns the QuizEventMutation object of the builder.
func (_u *QuizEventUpdateOne) Mutation() *QuizEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the QuizEventUpdate builder.
func (_u *QuizEventUpdateOne) Where(ps ...predicate.QuizEvent) *QuizEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *QuizEventUpdateOne) Select(field string, fields ...string) *QuizEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated QuizEvent entity.
func (_u *QuizEventUpdateOne) Save(ctx context.Context) (*QuizEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuizEventUpdateOne) SaveX(ctx context.Context) *QuizEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *QuizEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuizEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuizEventUpdateOne) check() error {
	if v, ok := _u.mutation.QuizID(); ok {
		if err := quizevent.QuizIDValidator(v); err != nil {
			return &ValidationError{Name: "quiz_id", err: fmt.Errorf(`ent: validator failed for field "QuizEvent.quiz_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Action(); ok {
		if err := quizevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "QuizEvent.action": %w`, err)}
		}
	}
	return nil
}

func (_u *QuizEventUpdateOne) sqlSave(ctx context.Context) (_node *QuizEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(quizevent.Table, quizevent.Columns, sqlgraph.NewFieldSpec(quizevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "QuizEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, quizevent.FieldID)
		for _, f := range fields {
			if !quizevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != quizevent.FieldID {
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
	if value, ok := _u.mutation.QuizID(); ok {
		_spec.SetField(quizevent.FieldQuizID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(quizevent.FieldAction, field.TypeString, value)
	}
	if value, ok := _u.mutation.Skills(); ok {
		_spec.SetField(quizevent.FieldSkills, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSkills(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, quizevent.FieldSkills, value)
		})
	}
	if _u.mutation.SkillsCleared() {
		_spec.ClearField(quizevent.FieldSkills, field.TypeJSON)
	}
	if value, ok := _u.mutation.QuestionsServed(); ok {
		_spec.SetField(quizevent.FieldQuestionsServed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestionsServed(); ok {
		_spec.AddField(quizevent.FieldQuestionsServed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CorrectAnswers(); ok {
		_spec.SetField(quizevent.FieldCorrectAnswers, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrectAnswers(); ok {
		_spec.AddField(quizevent.FieldCorrectAnswers, field.TypeInt, value)
	}
	_node = &QuizEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{quizevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
