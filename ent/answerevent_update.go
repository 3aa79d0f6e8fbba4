// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/skillforge/ent/answerevent"
	"github.com/abhisek/skillforge/ent/predicate"
)

// AnswerEventUpdate is the builder for updating AnswerEvent entities.
type AnswerEventUpdate struct {
	config
	hooks    []Hook
	mutation *AnswerEventMutation
}

// Where appends a list predicates to the AnswerEventUpdate builder.
func (_u *AnswerEventUpdate) Where(ps ...predicate.AnswerEvent) *AnswerEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetQuizID sets the "quiz_id" field.
func (_u *AnswerEventUpdate) SetQuizID(v string) *AnswerEventUpdate {
	_u.mutation.SetQuizID(v)
	return _u
}

// SetNillableQuizID sets the "quiz_id" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableQuizID(v *string) *AnswerEventUpdate {
	if v != nil {
		_u.SetQuizID(*v)
	}
	return _u
}

// SetSkill sets the "skill" field.
func (_u *AnswerEventUpdate) SetSkill(v string) *AnswerEventUpdate {
	_u.mutation.SetSkill(v)
	return _u
}

// SetNillableSkill sets the "skill" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableSkill(v *string) *AnswerEventUpdate {
	if v != nil {
		_u.SetSkill(*v)
	}
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *AnswerEventUpdate) SetDifficulty(v string) *AnswerEventUpdate {
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableDifficulty(v *string) *AnswerEventUpdate {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// SetQuestionText sets the "question_text" field.
func (_u *AnswerEventUpdate) SetQuestionText(v string) *AnswerEventUpdate {
	_u.mutation.SetQuestionText(v)
	return _u
}

// SetNillableQuestionText sets the "question_text" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableQuestionText(v *string) *AnswerEventUpdate {
	if v != nil {
		_u.SetQuestionText(*v)
	}
	return _u
}

// SetSelectedIndex sets the "selected_index" field.
func (_u *AnswerEventUpdate) SetSelectedIndex(v int) *AnswerEventUpdate {
	_u.mutation.ResetSelectedIndex()
	_u.mutation.SetSelectedIndex(v)
	return _u
}

// SetNillableSelectedIndex sets the "selected_index" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableSelectedIndex(v *int) *AnswerEventUpdate {
	if v != nil {
		_u.SetSelectedIndex(*v)
	}
	return _u
}

// AddSelectedIndex adds value to the "selected_index" field.
func (_u *AnswerEventUpdate) AddSelectedIndex(v int) *AnswerEventUpdate {
	_u.mutation.AddSelectedIndex(v)
	return _u
}

// SetCorrectIndex sets the "correct_index" field.
func (_u *AnswerEventUpdate) SetCorrectIndex(v int) *AnswerEventUpdate {
	_u.mutation.ResetCorrectIndex()
	_u.mutation.SetCorrectIndex(v)
	return _u
}

// SetNillableCorrectIndex sets the "correct_index" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableCorrectIndex(v *int) *AnswerEventUpdate {
	if v != nil {
		_u.SetCorrectIndex(*v)
	}
	return _u
}

// AddCorrectIndex adds value to the "correct_index" field.
func (_u *AnswerEventUpdate) AddCorrectIndex(v int) *AnswerEventUpdate {
	_u.mutation.AddCorrectIndex(v)
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *AnswerEventUpdate) SetCorrect(v bool) *AnswerEventUpdate {
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableCorrect(v *bool) *AnswerEventUpdate {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// Mutation returns the AnswerEventMutation object of the builder.
func (_u *AnswerEventUpdate) Mutation() *AnswerEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AnswerEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AnswerEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AnswerEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AnswerEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AnswerEventUpdate) check() error {
	if v, ok := _u.mutation.QuizID(); ok {
		if err := answerevent.QuizIDValidator(v); err != nil {
			return &ValidationError{Name: "quiz_id", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.quiz_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Skill(); ok {
		if err := answerevent.SkillValidator(v); err != nil {
			return &ValidationError{Name: "skill", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.skill": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Difficulty(); ok {
		if err := answerevent.DifficultyValidator(v); err != nil {
			return &ValidationError{Name: "difficulty", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.difficulty": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuestionText(); ok {
		if err := answerevent.QuestionTextValidator(v); err != nil {
			return &ValidationError{Name: "question_text", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.question_text": %w`, err)}
		}
	}
	return nil
}

func (_u *AnswerEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(answerevent.Table, answerevent.Columns, sqlgraph.NewFieldSpec(answerevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.QuizID(); ok {
		_spec.SetField(answerevent.FieldQuizID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Skill(); ok {
		_spec.SetField(answerevent.FieldSkill, field.TypeString, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(answerevent.FieldDifficulty, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionText(); ok {
		_spec.SetField(answerevent.FieldQuestionText, field.TypeString, value)
	}
	if value, ok := _u.mutation.SelectedIndex(); ok {
		_spec.SetField(answerevent.FieldSelectedIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSelectedIndex(); ok {
		_spec.AddField(answerevent.FieldSelectedIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CorrectIndex(); ok {
		_spec.SetField(answerevent.FieldCorrectIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrectIndex(); ok {
		_spec.AddField(answerevent.FieldCorrectIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(answerevent.FieldCorrect, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{answerevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AnswerEventUpdateOne is the builder for updating a single AnswerEvent entity.
type AnswerEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AnswerEventMutation
}

// SetQuizID sets the "quiz_id" field.
func (_u *AnswerEventUpdateOne) SetQuizID(v string) *AnswerEventUpdateOne {
	_u.mutation.SetQuizID(v)
	return _u
}

// SetNillableQuizID sets the "quiz_id" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableQuizID(v *string) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetQuizID(*v)
	}
	return _u
}

// SetSkill sets the "skill" field.
func (_u *AnswerEventUpdateOne) SetSkill(v string) *AnswerEventUpdateOne {
	_u.mutation.SetSkill(v)
	return _u
}

// SetNillableSkill sets the "skill" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableSkill(v *string) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetSkill(*v)
	}
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *AnswerEventUpdateOne) SetDifficulty(v string) *AnswerEventUpdateOne {
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableDifficulty(v *string) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// SetQuestionText sets the "question_text" field.
func (_u *AnswerEventUpdateOne) SetQuestionText(v string) *AnswerEventUpdateOne {
	_u.mutation.SetQuestionText(v)
	return _u
}

// SetNillableQuestionText sets the "question_text" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableQuestionText(v *string) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetQuestionText(*v)
	}
	return _u
}

// SetSelectedIndex sets the "selected_index" field.
func (_u *AnswerEventUpdateOne) SetSelectedIndex(v int) *AnswerEventUpdateOne {
	_u.mutation.ResetSelectedIndex()
	_u.mutation.SetSelectedIndex(v)
	return _u
}

// SetNillableSelectedIndex sets the "selected_index" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableSelectedIndex(v *int) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetSelectedIndex(*v)
	}
	return _u
}

// AddSelectedIndex adds value to the "selected_index" field.
func (_u *AnswerEventUpdateOne) AddSelectedIndex(v int) *AnswerEventUpdateOne {
	_u.mutation.AddSelectedIndex(v)
	return _u
}

// SetCorrectIndex sets the "correct_index" field.
func (_u *AnswerEventUpdateOne) SetCorrectIndex(v int) *AnswerEventUpdateOne {
	_u.mutation.ResetCorrectIndex()
	_u.mutation.SetCorrectIndex(v)
	return _u
}

// SetNillableCorrectIndex sets the "correct_index" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableCorrectIndex(v *int) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetCorrectIndex(*v)
	}
	return _u
}

// AddCorrectIndex adds value to the "correct_index" field.
func (_u *AnswerEventUpdateOne) AddCorrectIndex(v int) *AnswerEventUpdateOne {
	_u.mutation.AddCorrectIndex(v)
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *AnswerEventUpdateOne) SetCorrect(v bool) *AnswerEventUpdateOne {
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableCorrect(v *bool) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// Mutation returns the AnswerEventMutation object of the builder.
func (_u *AnswerEventUpdateOne) Mutation() *AnswerEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the AnswerEventUpdate builder.
func (_u *AnswerEventUpdateOne) Where(ps ...predicate.AnswerEvent) *AnswerEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AnswerEventUpdateOne) Select(field string, fields ...string) *AnswerEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AnswerEvent entity.
func (_u *AnswerEventUpdateOne) Save(ctx context.Context) (*AnswerEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AnswerEventUpdateOne) SaveX(ctx context.Context) *AnswerEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AnswerEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AnswerEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AnswerEventUpdateOne) check() error {
	if v, ok := _u.mutation.QuizID(); ok {
		if err := answerevent.QuizIDValidator(v); err != nil {
			return &ValidationError{Name: "quiz_id", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.quiz_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Skill(); ok {
		if err := answerevent.SkillValidator(v); err != nil {
			return &ValidationError{Name: "skill", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.skill": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Difficulty(); ok {
		if err := answerevent.DifficultyValidator(v); err != nil {
			return &ValidationError{Name: "difficulty", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.difficulty": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuestionText(); ok {
		if err := answerevent.QuestionTextValidator(v); err != nil {
			return &ValidationError{Name: "question_text", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.question_text": %w`, err)}
		}
	}
	return nil
}

func (_u *AnswerEventUpdateOne) sqlSave(ctx context.Context) (_node *AnswerEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(answerevent.Table, answerevent.Columns, sqlgraph.NewFieldSpec(answerevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AnswerEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, answerevent.FieldID)
		for _, f := range fields {
			if !answerevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != answerevent.FieldID {
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
		_spec.SetField(answerevent.FieldQuizID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Skill(); ok {
		_spec.SetField(answerevent.FieldSkill, field.TypeString, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(answerevent.FieldDifficulty, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionText(); ok {
		_spec.SetField(answerevent.FieldQuestionText, field.TypeString, value)
	}
	if value, ok := _u.mutation.SelectedIndex(); ok {
		_spec.SetField(answerevent.FieldSelectedIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSelectedIndex(); ok {
		_spec.AddField(answerevent.FieldSelectedIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CorrectIndex(); ok {
		_spec.SetField(answerevent.FieldCorrectIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrectIndex(); ok {
		_spec.AddField(answerevent.FieldCorrectIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(answerevent.FieldCorrect, field.TypeBool, value)
	}
	_node = &AnswerEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{answerevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
