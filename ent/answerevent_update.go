// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/kakezan/ent/answerevent"
	"github.com/abhisek/kakezan/ent/predicate"
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

// SetSessionID sets the "session_id" field.
func (_u *AnswerEventUpdate) SetSessionID(v string) *AnswerEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableSessionID(v *string) *AnswerEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetMode sets the "mode" field.
func (_u *AnswerEventUpdate) SetMode(v string) *AnswerEventUpdate {
	_u.mutation.SetMode(v)
	return _u
}

// SetNillableMode sets the "mode" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableMode(v *string) *AnswerEventUpdate {
	if v != nil {
		_u.SetMode(*v)
	}
	return _u
}

// SetPosition sets the "position" field.
func (_u *AnswerEventUpdate) SetPosition(v int) *AnswerEventUpdate {
	_u.mutation.ResetPosition()
	_u.mutation.SetPosition(v)
	return _u
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillablePosition(v *int) *AnswerEventUpdate {
	if v != nil {
		_u.SetPosition(*v)
	}
	return _u
}

// AddPosition adds value to the "position" field.
func (_u *AnswerEventUpdate) AddPosition(v int) *AnswerEventUpdate {
	_u.mutation.AddPosition(v)
	return _u
}

// SetItemKey sets the "item_key" field.
func (_u *AnswerEventUpdate) SetItemKey(v string) *AnswerEventUpdate {
	_u.mutation.SetItemKey(v)
	return _u
}

// SetNillableItemKey sets the "item_key" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableItemKey(v *string) *AnswerEventUpdate {
	if v != nil {
		_u.SetItemKey(*v)
	}
	return _u
}

// SetExpected sets the "expected" field.
func (_u *AnswerEventUpdate) SetExpected(v int) *AnswerEventUpdate {
	_u.mutation.ResetExpected()
	_u.mutation.SetExpected(v)
	return _u
}

// SetNillableExpected sets the "expected" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableExpected(v *int) *AnswerEventUpdate {
	if v != nil {
		_u.SetExpected(*v)
	}
	return _u
}

// AddExpected adds value to the "expected" field.
func (_u *AnswerEventUpdate) AddExpected(v int) *AnswerEventUpdate {
	_u.mutation.AddExpected(v)
	return _u
}

// SetGiven sets the "given" field.
func (_u *AnswerEventUpdate) SetGiven(v int) *AnswerEventUpdate {
	_u.mutation.ResetGiven()
	_u.mutation.SetGiven(v)
	return _u
}

// SetNillableGiven sets the "given" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableGiven(v *int) *AnswerEventUpdate {
	if v != nil {
		_u.SetGiven(*v)
	}
	return _u
}

// AddGiven adds value to the "given" field.
func (_u *AnswerEventUpdate) AddGiven(v int) *AnswerEventUpdate {
	_u.mutation.AddGiven(v)
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

// SetHintLevel sets the "hint_level" field.
func (_u *AnswerEventUpdate) SetHintLevel(v int) *AnswerEventUpdate {
	_u.mutation.ResetHintLevel()
	_u.mutation.SetHintLevel(v)
	return _u
}

// SetNillableHintLevel sets the "hint_level" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableHintLevel(v *int) *AnswerEventUpdate {
	if v != nil {
		_u.SetHintLevel(*v)
	}
	return _u
}

// AddHintLevel adds value to the "hint_level" field.
func (_u *AnswerEventUpdate) AddHintLevel(v int) *AnswerEventUpdate {
	_u.mutation.AddHintLevel(v)
	return _u
}

// SetTimeMs sets the "time_ms" field.
func (_u *AnswerEventUpdate) SetTimeMs(v int) *AnswerEventUpdate {
	_u.mutation.ResetTimeMs()
	_u.mutation.SetTimeMs(v)
	return _u
}

// SetNillableTimeMs sets the "time_ms" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableTimeMs(v *int) *AnswerEventUpdate {
	if v != nil {
		_u.SetTimeMs(*v)
	}
	return _u
}

// AddTimeMs adds value to the "time_ms" field.
func (_u *AnswerEventUpdate) AddTimeMs(v int) *AnswerEventUpdate {
	_u.mutation.AddTimeMs(v)
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
	if v, ok := _u.mutation.SessionID(); ok {
		if err := answerevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Mode(); ok {
		if err := answerevent.ModeValidator(v); err != nil {
			return &ValidationError{Name: "mode", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.mode": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Position(); ok {
		if err := answerevent.PositionValidator(v); err != nil {
			return &ValidationError{Name: "position", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.position": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ItemKey(); ok {
		if err := answerevent.ItemKeyValidator(v); err != nil {
			return &ValidationError{Name: "item_key", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.item_key": %w`, err)}
		}
	}
	if v, ok := _u.mutation.HintLevel(); ok {
		if err := answerevent.HintLevelValidator(v); err != nil {
			return &ValidationError{Name: "hint_level", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.hint_level": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TimeMs(); ok {
		if err := answerevent.TimeMsValidator(v); err != nil {
			return &ValidationError{Name: "time_ms", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.time_ms": %w`, err)}
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
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(answerevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Mode(); ok {
		_spec.SetField(answerevent.FieldMode, field.TypeString, value)
	}
	if value, ok := _u.mutation.Position(); ok {
		_spec.SetField(answerevent.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPosition(); ok {
		_spec.AddField(answerevent.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ItemKey(); ok {
		_spec.SetField(answerevent.FieldItemKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.Expected(); ok {
		_spec.SetField(answerevent.FieldExpected, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedExpected(); ok {
		_spec.AddField(answerevent.FieldExpected, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Given(); ok {
		_spec.SetField(answerevent.FieldGiven, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedGiven(); ok {
		_spec.AddField(answerevent.FieldGiven, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(answerevent.FieldCorrect, field.TypeBool, value)
	}
	if value, ok := _u.mutation.HintLevel(); ok {
		_spec.SetField(answerevent.FieldHintLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedHintLevel(); ok {
		_spec.AddField(answerevent.FieldHintLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TimeMs(); ok {
		_spec.SetField(answerevent.FieldTimeMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimeMs(); ok {
		_spec.AddField(answerevent.FieldTimeMs, field.TypeInt, value)
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

// SetSessionID sets the "session_id" field.
func (_u *AnswerEventUpdateOne) SetSessionID(v string) *AnswerEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableSessionID(v *string) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetMode sets the "mode" field.
func (_u *AnswerEventUpdateOne) SetMode(v string) *AnswerEventUpdateOne {
	_u.mutation.SetMode(v)
	return _u
}

// SetNillableMode sets the "mode" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableMode(v *string) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetMode(*v)
	}
	return _u
}

// SetPosition sets the "position" field.
func (_u *AnswerEventUpdateOne) SetPosition(v int) *AnswerEventUpdateOne {
	_u.mutation.ResetPosition()
	_u.mutation.SetPosition(v)
	return _u
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillablePosition(v *int) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetPosition(*v)
	}
	return _u
}

// AddPosition adds value to the "position" field.
func (_u *AnswerEventUpdateOne) AddPosition(v int) *AnswerEventUpdateOne {
	_u.mutation.AddPosition(v)
	return _u
}

// SetItemKey sets the "item_key" field.
func (_u *AnswerEventUpdateOne) SetItemKey(v string) *AnswerEventUpdateOne {
	_u.mutation.SetItemKey(v)
	return _u
}

// SetNillableItemKey sets the "item_key" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableItemKey(v *string) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetItemKey(*v)
	}
	return _u
}

// SetExpected sets the "expected" field.
func (_u *AnswerEventUpdateOne) SetExpected(v int) *AnswerEventUpdateOne {
	_u.mutation.ResetExpected()
	_u.mutation.SetExpected(v)
	return _u
}

// SetNillableExpected sets the "expected" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableExpected(v *int) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetExpected(*v)
	}
	return _u
}

// AddExpected adds value to the "expected" field.
func (_u *AnswerEventUpdateOne) AddExpected(v int) *AnswerEventUpdateOne {
	_u.mutation.AddExpected(v)
	return _u
}

// SetGiven sets the "given" field.
func (_u *AnswerEventUpdateOne) SetGiven(v int) *AnswerEventUpdateOne {
	_u.mutation.ResetGiven()
	_u.mutation.SetGiven(v)
	return _u
}

// SetNillableGiven sets the "given" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableGiven(v *int) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetGiven(*v)
	}
	return _u
}

// AddGiven adds value to the "given" field.
func (_u *AnswerEventUpdateOne) AddGiven(v int) *AnswerEventUpdateOne {
	_u.mutation.AddGiven(v)
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

// SetHintLevel sets the "hint_level" field.
func (_u *AnswerEventUpdateOne) SetHintLevel(v int) *AnswerEventUpdateOne {
	_u.mutation.ResetHintLevel()
	_u.mutation.SetHintLevel(v)
	return _u
}

// SetNillableHintLevel sets the "hint_level" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableHintLevel(v *int) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetHintLevel(*v)
	}
	return _u
}

// AddHintLevel adds value to the "hint_level" field.
func (_u *AnswerEventUpdateOne) AddHintLevel(v int) *AnswerEventUpdateOne {
	_u.mutation.AddHintLevel(v)
	return _u
}

// SetTimeMs sets the "time_ms" field.
func (_u *AnswerEventUpdateOne) SetTimeMs(v int) *AnswerEventUpdateOne {
	_u.mutation.ResetTimeMs()
	_u.mutation.SetTimeMs(v)
	return _u
}

// SetNillableTimeMs sets the "time_ms" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableTimeMs(v *int) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetTimeMs(*v)
	}
	return _u
}

// AddTimeMs adds value to the "time_ms" field.
func (_u *AnswerEventUpdateOne) AddTimeMs(v int) *AnswerEventUpdateOne {
	_u.mutation.AddTimeMs(v)
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
	if v, ok := _u.mutation.SessionID(); ok {
		if err := answerevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Mode(); ok {
		if err := answerevent.ModeValidator(v); err != nil {
			return &ValidationError{Name: "mode", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.mode": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Position(); ok {
		if err := answerevent.PositionValidator(v); err != nil {
			return &ValidationError{Name: "position", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.position": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ItemKey(); ok {
		if err := answerevent.ItemKeyValidator(v); err != nil {
			return &ValidationError{Name: "item_key", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.item_key": %w`, err)}
		}
	}
	if v, ok := _u.mutation.HintLevel(); ok {
		if err := answerevent.HintLevelValidator(v); err != nil {
			return &ValidationError{Name: "hint_level", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.hint_level": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TimeMs(); ok {
		if err := answerevent.TimeMsValidator(v); err != nil {
			return &ValidationError{Name: "time_ms", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.time_ms": %w`, err)}
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
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(answerevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Mode(); ok {
		_spec.SetField(answerevent.FieldMode, field.TypeString, value)
	}
	if value, ok := _u.mutation.Position(); ok {
		_spec.SetField(answerevent.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPosition(); ok {
		_spec.AddField(answerevent.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ItemKey(); ok {
		_spec.SetField(answerevent.FieldItemKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.Expected(); ok {
		_spec.SetField(answerevent.FieldExpected, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedExpected(); ok {
		_spec.AddField(answerevent.FieldExpected, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Given(); ok {
		_spec.SetField(answerevent.FieldGiven, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedGiven(); ok {
		_spec.AddField(answerevent.FieldGiven, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(answerevent.FieldCorrect, field.TypeBool, value)
	}
	if value, ok := _u.mutation.HintLevel(); ok {
		_spec.SetField(answerevent.FieldHintLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedHintLevel(); ok {
		_spec.AddField(answerevent.FieldHintLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TimeMs(); ok {
		_spec.SetField(answerevent.FieldTimeMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimeMs(); ok {
		_spec.AddField(answerevent.FieldTimeMs, field.TypeInt, value)
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
