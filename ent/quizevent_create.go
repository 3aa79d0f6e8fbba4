// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/skillforge/ent/quizevent"
)

// QuizEventCreate is the builder for creating a QuizEvent entity.
type QuizEventCreate struct {
	config
	mutation *QuizEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *QuizEventCreate) SetSequence(v int64) *QuizEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *QuizEventCreate) SetTimestamp(v time.Time) *QuizEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *QuizEventCreate) SetNillableTimestamp(v *time.Time) *QuizEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetQuizID sets the "quiz_id" field.
func (_c *QuizEventCreate) SetQuizID(v string) *QuizEventCreate {
	_c.mutation.SetQuizID(v)
	return _c
}

// SetAction sets the "action" field.
func (_c *QuizEventCreate) SetAction(v string) *QuizEventCreate {
	_c.mutation.SetAction(v)
	return _c
}

// SetSkills sets the "skills" field.
func (_c *QuizEventCreate) SetSkills(v []string) *QuizEventCreate {
	_c.mutation.SetSkills(v)
	return _c
}

// SetQuestionsServed sets the "questions_served" field.
func (_c *QuizEventCreate) SetQuestionsServed(v int) *QuizEventCreate {
	_c.mutation.SetQuestionsServed(v)
	return _c
}

// SetNillableQuestionsServed sets the "questions_served" field if the given value is not nil.
func (_c *QuizEventCreate) SetNillableQuestionsServed(v *int) *QuizEventCreate {
	if v != nil {
		_c.SetQuestionsServed(*v)
	}
	return _c
}

// SetCorrectAnswers sets the "correct_answers" field.
func (_c *QuizEventCreate) SetCorrectAnswers(v int) *QuizEventCreate {
	_c.mutation.SetCorrectAnswers(v)
	return _c
}

// SetNillableCorrectAnswers sets the "correct_answers" field if the given value is not nil.
func (_c *QuizEventCreate) SetNillableCorrectAnswers(v *int) *QuizEventCreate {
	if v != nil {
		_c.SetCorrectAnswers(*v)
	}
	return _c
}

// Mutation returns the QuizEventMutation object of the builder.
func (_c *QuizEventCreate) Mutation() *QuizEventMutation {
	return _c.mutation
}

// Save creates the QuizEvent in the database.
func (_c *QuizEventCreate) Save(ctx context.Context) (*QuizEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *QuizEventCreate) SaveX(ctx context.Context) *QuizEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuizEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuizEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *QuizEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := quizevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.QuestionsServed(); !ok {
		v := quizevent.DefaultQuestionsServed
		_c.mutation.SetQuestionsServed(v)
	}
	if _, ok := _c.mutation.CorrectAnswers(); !ok {
		v := quizevent.DefaultCorrectAnswers
		_c.mutation.SetCorrectAnswers(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *QuizEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "QuizEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "QuizEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.QuizID(); !ok {
		return &ValidationError{Name: "quiz_id", err: errors.New(`ent: missing required field "QuizEvent.quiz_id"`)}
	}
	if v, ok := _c.mutation.QuizID(); ok {
		if err := quizevent.QuizIDValidator(v); err != nil {
			return &ValidationError{Name: "quiz_id", err: fmt.Errorf(`ent: validator failed for field "QuizEvent.quiz_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Action(); !ok {
		return &ValidationError{Name: "action", err: errors.New(`ent: missing required field "QuizEvent.action"`)}
	}
	if v, ok := _c.mutation.Action(); ok {
		if err := quizevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "QuizEvent.action": %w`, err)}
		}
	}
	if _, ok := _c.mutation.QuestionsServed(); !ok {
		return &ValidationError{Name: "questions_served", err: errors.New(`ent: missing required field "QuizEvent.questions_served"`)}
	}
	if _, ok := _c.mutation.CorrectAnswers(); !ok {
		return &ValidationError{Name: "correct_answers", err: errors.New(`ent: missing required field "QuizEvent.correct_answers"`)}
	}
	return nil
}

func (_c *QuizEventCreate) sqlSave(ctx context.Context) (*QuizEvent, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *QuizEventCreate) createSpec() (*QuizEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &QuizEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(quizevent.Table, sqlgraph.NewFieldSpec(quizevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(quizevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(quizevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.QuizID(); ok {
		_spec.SetField(quizevent.FieldQuizID, field.TypeString, value)
		_node.QuizID = value
	}
	if value, ok := _c.mutation.Action(); ok {
		_spec.SetField(quizevent.FieldAction, field.TypeString, value)
		_node.Action = value
	}
	if value, ok := _c.mutation.Skills(); ok {
		_spec.SetField(quizevent.FieldSkills, field.TypeJSON, value)
		_node.Skills = value
	}
	if value, ok := _c.mutation.QuestionsServed(); ok {
		_spec.SetField(quizevent.FieldQuestionsServed, field.TypeInt, value)
		_node.QuestionsServed = value
	}
	if value, ok := _c.mutation.CorrectAnswers(); ok {
		_spec.SetField(quizevent.FieldCorrectAnswers, field.TypeInt, value)
		_node.CorrectAnswers = value
	}
	return _node, _spec
}

// QuizEventCreateBulk is the builder for creating many QuizEvent entities in bulk.
type QuizEventCreateBulk struct {
	config
	err      error
	builders []*QuizEventCreate
}

// Save creates the QuizEvent entities in the database.
func (_c *QuizEventCreateBulk) Save(ctx context.Context) ([]*QuizEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*QuizEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*QuizEventMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *QuizEventCreateBulk) SaveX(ctx context.Context) []*QuizEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuizEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuizEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
