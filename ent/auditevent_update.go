// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/openlearn/coursepack/ent/auditevent"
	"github.com/openlearn/coursepack/ent/predicate"
)

// AuditEventUpdate is the builder for updating AuditEvent entities.
type AuditEventUpdate struct {
	config
	hooks    []Hook
	mutation *AuditEventMutation
}

// Where appends a list predicates to the AuditEventUpdate builder.
func (_u *AuditEventUpdate) Where(ps ...predicate.AuditEvent) *AuditEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetRunID sets the "run_id" field.
func (_u *AuditEventUpdate) SetRunID(v string) *AuditEventUpdate {
	_u.mutation.SetRunID(v)
	return _u
}

// SetNillableRunID sets the "run_id" field if the given value is not nil.
func (_u *AuditEventUpdate) SetNillableRunID(v *string) *AuditEventUpdate {
	if v != nil {
		_u.SetRunID(*v)
	}
	return _u
}

// SetTimestamp sets the "timestamp" field.
func (_u *AuditEventUpdate) SetTimestamp(v time.Time) *AuditEventUpdate {
	_u.mutation.SetTimestamp(v)
	return _u
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_u *AuditEventUpdate) SetNillableTimestamp(v *time.Time) *AuditEventUpdate {
	if v != nil {
		_u.SetTimestamp(*v)
	}
	return _u
}

// SetLessonCount sets the "lesson_count" field.
func (_u *AuditEventUpdate) SetLessonCount(v int) *AuditEventUpdate {
	_u.mutation.ResetLessonCount()
	_u.mutation.SetLessonCount(v)
	return _u
}

// SetNillableLessonCount sets the "lesson_count" field if the given value is not nil.
func (_u *AuditEventUpdate) SetNillableLessonCount(v *int) *AuditEventUpdate {
	if v != nil {
		_u.SetLessonCount(*v)
	}
	return _u
}

// AddLessonCount adds value to the "lesson_count" field.
func (_u *AuditEventUpdate) AddLessonCount(v int) *AuditEventUpdate {
	_u.mutation.AddLessonCount(v)
	return _u
}

// SetPassed sets the "passed" field.
func (_u *AuditEventUpdate) SetPassed(v bool) *AuditEventUpdate {
	_u.mutation.SetPassed(v)
	return _u
}

// SetNillablePassed sets the "passed" field if the given value is not nil.
func (_u *AuditEventUpdate) SetNillablePassed(v *bool) *AuditEventUpdate {
	if v != nil {
		_u.SetPassed(*v)
	}
	return _u
}

// SetDetail sets the "detail" field.
func (_u *AuditEventUpdate) SetDetail(v string) *AuditEventUpdate {
	_u.mutation.SetDetail(v)
	return _u
}

// SetNillableDetail sets the "detail" field if the given value is not nil.
func (_u *AuditEventUpdate) SetNillableDetail(v *string) *AuditEventUpdate {
	if v != nil {
		_u.SetDetail(*v)
	}
	return _u
}

// ClearDetail clears the value of the "detail" field.
func (_u *AuditEventUpdate) ClearDetail() *AuditEventUpdate {
	_u.mutation.ClearDetail()
	return _u
}

// Mutation returns the AuditEventMutation object of the builder.
func (_u *AuditEventUpdate) Mutation() *AuditEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AuditEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AuditEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AuditEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AuditEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AuditEventUpdate) check() error {
	if v, ok := _u.mutation.RunID(); ok {
		if err := auditevent.RunIDValidator(v); err != nil {
			return &ValidationError{Name: "run_id", err: fmt.Errorf(`ent: validator failed for field "AuditEvent.run_id": %w`, err)}
		}
	}
	return nil
}

func (_u *AuditEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(auditevent.Table, auditevent.Columns, sqlgraph.NewFieldSpec(auditevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.RunID(); ok {
		_spec.SetField(auditevent.FieldRunID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Timestamp(); ok {
		_spec.SetField(auditevent.FieldTimestamp, field.TypeTime, value)
	}
	if value, ok := _u.mutation.LessonCount(); ok {
		_spec.SetField(auditevent.FieldLessonCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLessonCount(); ok {
		_spec.AddField(auditevent.FieldLessonCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Passed(); ok {
		_spec.SetField(auditevent.FieldPassed, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Detail(); ok {
		_spec.SetField(auditevent.FieldDetail, field.TypeString, value)
	}
	if _u.mutation.DetailCleared() {
		_spec.ClearField(auditevent.FieldDetail, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{auditevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AuditEventUpdateOne is the builder for updating a single AuditEvent entity.
type AuditEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AuditEventMutation
}

// SetRunID sets the "run_id" field.
func (_u *AuditEventUpdateOne) SetRunID(v string) *AuditEventUpdateOne {
	_u.mutation.SetRunID(v)
	return _u
}

// SetNillableRunID sets the "run_id" field if the given value is not nil.
func (_u *AuditEventUpdateOne) SetNillableRunID(v *string) *AuditEventUpdateOne {
	if v != nil {
		_u.SetRunID(*v)
	}
	return _u
}

// SetTimestamp sets the "timestamp" field.
func (_u *AuditEventUpdateOne) SetTimestamp(v time.Time) *AuditEventUpdateOne {
	_u.mutation.SetTimestamp(v)
	return _u
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_u *AuditEventUpdateOne) SetNillableTimestamp(v *time.Time) *AuditEventUpdateOne {
	if v != nil {
		_u.SetTimestamp(*v)
	}
	return _u
}

// SetLessonCount sets the "lesson_count" field.
func (_u *AuditEventUpdateOne) SetLessonCount(v int) *AuditEventUpdateOne {
	_u.mutation.ResetLessonCount()
	_u.mutation.SetLessonCount(v)
	return _u
}

// SetNillableLessonCount sets the "lesson_count" field if the given value is not nil.
func (_u *AuditEventUpdateOne) SetNillableLessonCount(v *int) *AuditEventUpdateOne {
	if v != nil {
		_u.SetLessonCount(*v)
	}
	return _u
}

// AddLessonCount adds value to the "lesson_count" field.
func (_u *AuditEventUpdateOne) AddLessonCount(v int) *AuditEventUpdateOne {
	_u.mutation.AddLessonCount(v)
	return _u
}

// SetPassed sets the "passed" field.
func (_u *AuditEventUpdateOne) SetPassed(v bool) *AuditEventUpdateOne {
	_u.mutation.SetPassed(v)
	return _u
}

// SetNillablePassed sets the "passed" field if the given value is not nil.
func (_u *AuditEventUpdateOne) SetNillablePassed(v *bool) *AuditEventUpdateOne {
	if v != nil {
		_u.SetPassed(*v)
	}
	return _u
}

// SetDetail sets the "detail" field.
func (_u *AuditEventUpdateOne) SetDetail(v string) *AuditEventUpdateOne {
	_u.mutation.SetDetail(v)
	return _u
}

// SetNillableDetail sets the "detail" field if the given value is not nil.
func (_u *AuditEventUpdateOne) SetNillableDetail(v *string) *AuditEventUpdateOne {
	if v != nil {
		_u.SetDetail(*v)
	}
	return _u
}

// ClearDetail clears the value of the "detail" field.
func (_u *AuditEventUpdateOne) ClearDetail() *AuditEventUpdateOne {
	_u.mutation.ClearDetail()
	return _u
}

// Mutation returns the AuditEventMutation object of the builder.
func (_u *AuditEventUpdateOne) Mutation() *AuditEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the AuditEventUpdate builder.
func (_u *AuditEventUpdateOne) Where(ps ...predicate.AuditEvent) *AuditEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AuditEventUpdateOne) Select(field string, fields ...string) *AuditEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AuditEvent entity.
func (_u *AuditEventUpdateOne) Save(ctx context.Context) (*AuditEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AuditEventUpdateOne) SaveX(ctx context.Context) *AuditEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AuditEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AuditEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AuditEventUpdateOne) check() error {
	if v, ok := _u.mutation.RunID(); ok {
		if err := auditevent.RunIDValidator(v); err != nil {
			return &ValidationError{Name: "run_id", err: fmt.Errorf(`ent: validator failed for field "AuditEvent.run_id": %w`, err)}
		}
	}
	return nil
}

func (_u *AuditEventUpdateOne) sqlSave(ctx context.Context) (_node *AuditEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(auditevent.Table, auditevent.Columns, sqlgraph.NewFieldSpec(auditevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AuditEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, auditevent.FieldID)
		for _, f := range fields {
			if !auditevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != auditevent.FieldID {
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
	if value, ok := _u.mutation.RunID(); ok {
		_spec.SetField(auditevent.FieldRunID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Timestamp(); ok {
		_spec.SetField(auditevent.FieldTimestamp, field.TypeTime, value)
	}
	if value, ok := _u.mutation.LessonCount(); ok {
		_spec.SetField(auditevent.FieldLessonCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLessonCount(); ok {
		_spec.AddField(auditevent.FieldLessonCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Passed(); ok {
		_spec.SetField(auditevent.FieldPassed, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Detail(); ok {
		_spec.SetField(auditevent.FieldDetail, field.TypeString, value)
	}
	if _u.mutation.DetailCleared() {
		_spec.ClearField(auditevent.FieldDetail, field.TypeString)
	}
	_node = &AuditEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{auditevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
