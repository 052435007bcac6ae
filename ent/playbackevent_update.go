// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/kakezan/ent/playbackevent"
	"github.com/abhisek/kakezan/ent/predicate"
)

// PlaybackEventUpdate is the builder for updating PlaybackEvent entities.
type PlaybackEventUpdate struct {
	config
	hooks    []Hook
	mutation *PlaybackEventMutation
}

// Where appends a list predicates to the PlaybackEventUpdate builder.
func (_u *PlaybackEventUpdate) Where(ps ...predicate.PlaybackEvent) *PlaybackEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetToken sets the "token" field.
func (_u *PlaybackEventUpdate) SetToken(v int64) *PlaybackEventUpdate {
	_u.mutation.ResetToken()
	_u.mutation.SetToken(v)
	return _u
}

// SetNillableToken sets the "token" field if the given value is not nil.
func (_u *PlaybackEventUpdate) SetNillableToken(v *int64) *PlaybackEventUpdate {
	if v != nil {
		_u.SetToken(*v)
	}
	return _u
}

// AddToken adds value to the "token" field.
func (_u *PlaybackEventUpdate) AddToken(v int64) *PlaybackEventUpdate {
	_u.mutation.AddToken(v)
	return _u
}

// SetKind sets the "kind" field.
func (_u *PlaybackEventUpdate) SetKind(v string) *PlaybackEventUpdate {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *PlaybackEventUpdate) SetNillableKind(v *string) *PlaybackEventUpdate {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetDan sets the "dan" field.
func (_u *PlaybackEventUpdate) SetDan(v int) *PlaybackEventUpdate {
	_u.mutation.ResetDan()
	_u.mutation.SetDan(v)
	return _u
}

// SetNillableDan sets the "dan" field if the given value is not nil.
func (_u *PlaybackEventUpdate) SetNillableDan(v *int) *PlaybackEventUpdate {
	if v != nil {
		_u.SetDan(*v)
	}
	return _u
}

// AddDan adds value to the "dan" field.
func (_u *PlaybackEventUpdate) AddDan(v int) *PlaybackEventUpdate {
	_u.mutation.AddDan(v)
	return _u
}

// SetMultiplier sets the "multiplier" field.
func (_u *PlaybackEventUpdate) SetMultiplier(v int) *PlaybackEventUpdate {
	_u.mutation.ResetMultiplier()
	_u.mutation.SetMultiplier(v)
	return _u
}

// SetNillableMultiplier sets the "multiplier" field if the given value is not nil.
func (_u *PlaybackEventUpdate) SetNillableMultiplier(v *int) *PlaybackEventUpdate {
	if v != nil {
		_u.SetMultiplier(*v)
	}
	return _u
}

// AddMultiplier adds value to the "multiplier" field.
func (_u *PlaybackEventUpdate) AddMultiplier(v int) *PlaybackEventUpdate {
	_u.mutation.AddMultiplier(v)
	return _u
}

// SetSource sets the "source" field.
func (_u *PlaybackEventUpdate) SetSource(v string) *PlaybackEventUpdate {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *PlaybackEventUpdate) SetNillableSource(v *string) *PlaybackEventUpdate {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *PlaybackEventUpdate) SetErrorMessage(v string) *PlaybackEventUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *PlaybackEventUpdate) SetNillableErrorMessage(v *string) *PlaybackEventUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// Mutation returns the PlaybackEventMutation object of the builder.
func (_u *PlaybackEventUpdate) Mutation() *PlaybackEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PlaybackEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PlaybackEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PlaybackEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PlaybackEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PlaybackEventUpdate) check() error {
	if v, ok := _u.mutation.Kind(); ok {
		if err := playbackevent.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "PlaybackEvent.kind": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Dan(); ok {
		if err := playbackevent.DanValidator(v); err != nil {
			return &ValidationError{Name: "dan", err: fmt.Errorf(`ent: validator failed for field "PlaybackEvent.dan": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Multiplier(); ok {
		if err := playbackevent.MultiplierValidator(v); err != nil {
			return &ValidationError{Name: "multiplier", err: fmt.Errorf(`ent: validator failed for field "PlaybackEvent.multiplier": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Source(); ok {
		if err := playbackevent.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "PlaybackEvent.source": %w`, err)}
		}
	}
	return nil
}

func (_u *PlaybackEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(playbackevent.Table, playbackevent.Columns, sqlgraph.NewFieldSpec(playbackevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Token(); ok {
		_spec.SetField(playbackevent.FieldToken, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedToken(); ok {
		_spec.AddField(playbackevent.FieldToken, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(playbackevent.FieldKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.Dan(); ok {
		_spec.SetField(playbackevent.FieldDan, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDan(); ok {
		_spec.AddField(playbackevent.FieldDan, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Multiplier(); ok {
		_spec.SetField(playbackevent.FieldMultiplier, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMultiplier(); ok {
		_spec.AddField(playbackevent.FieldMultiplier, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(playbackevent.FieldSource, field.TypeString, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(playbackevent.FieldErrorMessage, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{playbackevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PlaybackEventUpdateOne is the builder for updating a single PlaybackEvent entity.
type PlaybackEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PlaybackEventMutation
}

// SetToken sets the "token" field.
func (_u *PlaybackEventUpdateOne) SetToken(v int64) *PlaybackEventUpdateOne {
	_u.mutation.ResetToken()
	_u.mutation.SetToken(v)
	return _u
}

// SetNillableToken sets the "token" field if the given value is not nil.
func (_u *PlaybackEventUpdateOne) SetNillableToken(v *int64) *PlaybackEventUpdateOne {
	if v != nil {
		_u.SetToken(*v)
	}
	return _u
}

// AddToken adds value to the "token" field.
func (_u *PlaybackEventUpdateOne) AddToken(v int64) *PlaybackEventUpdateOne {
	_u.mutation.AddToken(v)
	return _u
}

// SetKind sets the "kind" field.
func (_u *PlaybackEventUpdateOne) SetKind(v string) *PlaybackEventUpdateOne {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *PlaybackEventUpdateOne) SetNillableKind(v *string) *PlaybackEventUpdateOne {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetDan sets the "dan" field.
func (_u *PlaybackEventUpdateOne) SetDan(v int) *PlaybackEventUpdateOne {
	_u.mutation.ResetDan()
	_u.mutation.SetDan(v)
	return _u
}

// SetNillableDan sets the "dan" field if the given value is not nil.
func (_u *PlaybackEventUpdateOne) SetNillableDan(v *int) *PlaybackEventUpdateOne {
	if v != nil {
		_u.SetDan(*v)
	}
	return _u
}

// AddDan adds value to the "dan" field.
func (_u *PlaybackEventUpdateOne) AddDan(v int) *PlaybackEventUpdateOne {
	_u.mutation.AddDan(v)
	return _u
}

// SetMultiplier sets the "multiplier" field.
func (_u *PlaybackEventUpdateOne) SetMultiplier(v int) *PlaybackEventUpdateOne {
	_u.mutation.ResetMultiplier()
	_u.mutation.SetMultiplier(v)
	return _u
}

// SetNillableMultiplier sets the "multiplier" field if the given value is not nil.
func (_u *PlaybackEventUpdateOne) SetNillableMultiplier(v *int) *PlaybackEventUpdateOne {
	if v != nil {
		_u.SetMultiplier(*v)
	}
	return _u
}

// AddMultiplier adds value to the "multiplier" field.
func (_u *PlaybackEventUpdateOne) AddMultiplier(v int) *PlaybackEventUpdateOne {
	_u.mutation.AddMultiplier(v)
	return _u
}

// SetSource sets the "source" field.
func (_u *PlaybackEventUpdateOne) SetSource(v string) *PlaybackEventUpdateOne {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *PlaybackEventUpdateOne) SetNillableSource(v *string) *PlaybackEventUpdateOne {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *PlaybackEventUpdateOne) SetErrorMessage(v string) *PlaybackEventUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *PlaybackEventUpdateOne) SetNillableErrorMessage(v *string) *PlaybackEventUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// Mutation returns the PlaybackEventMutation object of the builder.
func (_u *PlaybackEventUpdateOne) Mutation() *PlaybackEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the PlaybackEventUpdate builder.
func (_u *PlaybackEventUpdateOne) Where(ps ...predicate.PlaybackEvent) *PlaybackEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PlaybackEventUpdateOne) Select(field string, fields ...string) *PlaybackEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PlaybackEvent entity.
func (_u *PlaybackEventUpdateOne) Save(ctx context.Context) (*PlaybackEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PlaybackEventUpdateOne) SaveX(ctx context.Context) *PlaybackEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PlaybackEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PlaybackEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PlaybackEventUpdateOne) check() error {
	if v, ok := _u.mutation.Kind(); ok {
		if err := playbackevent.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "PlaybackEvent.kind": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Dan(); ok {
		if err := playbackevent.DanValidator(v); err != nil {
			return &ValidationError{Name: "dan", err: fmt.Errorf(`ent: validator failed for field "PlaybackEvent.dan": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Multiplier(); ok {
		if err := playbackevent.MultiplierValidator(v); err != nil {
			return &ValidationError{Name: "multiplier", err: fmt.Errorf(`ent: validator failed for field "PlaybackEvent.multiplier": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Source(); ok {
		if err := playbackevent.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "PlaybackEvent.source": %w`, err)}
		}
	}
	return nil
}

func (_u *PlaybackEventUpdateOne) sqlSave(ctx context.Context) (_node *PlaybackEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(playbackevent.Table, playbackevent.Columns, sqlgraph.NewFieldSpec(playbackevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PlaybackEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, playbackevent.FieldID)
		for _, f := range fields {
			if !playbackevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != playbackevent.FieldID {
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
	if value, ok := _u.mutation.Token(); ok {
		_spec.SetField(playbackevent.FieldToken, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedToken(); ok {
		_spec.AddField(playbackevent.FieldToken, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(playbackevent.FieldKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.Dan(); ok {
		_spec.SetField(playbackevent.FieldDan, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDan(); ok {
		_spec.AddField(playbackevent.FieldDan, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Multiplier(); ok {
		_spec.SetField(playbackevent.FieldMultiplier, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMultiplier(); ok {
		_spec.AddField(playbackevent.FieldMultiplier, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(playbackevent.FieldSource, field.TypeString, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(playbackevent.FieldErrorMessage, field.TypeString, value)
	}
	_node = &PlaybackEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{playbackevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
