// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"dtr-engine/gen/ent/predicate"
	"dtr-engine/gen/ent/unknowndtrformat"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// UnknownDtrFormatUpdate is the builder for updating UnknownDtrFormat entities.
type UnknownDtrFormatUpdate struct {
	config
	hooks    []Hook
	mutation *UnknownDtrFormatMutation
}

// Where appends a list predicates to the UnknownDtrFormatUpdate builder.
func (_u *UnknownDtrFormatUpdate) Where(ps ...predicate.UnknownDtrFormat) *UnknownDtrFormatUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetIsProcessed sets the "is_processed" field.
func (_u *UnknownDtrFormatUpdate) SetIsProcessed(v bool) *UnknownDtrFormatUpdate {
	_u.mutation.SetIsProcessed(v)
	return _u
}

// SetNillableIsProcessed sets the "is_processed" field if the given value is not nil.
func (_u *UnknownDtrFormatUpdate) SetNillableIsProcessed(v *bool) *UnknownDtrFormatUpdate {
	if v != nil {
		_u.SetIsProcessed(*v)
	}
	return _u
}

// Mutation returns the UnknownDtrFormatMutation object of the builder.
func (_u *UnknownDtrFormatUpdate) Mutation() *UnknownDtrFormatMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *UnknownDtrFormatUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UnknownDtrFormatUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *UnknownDtrFormatUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UnknownDtrFormatUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *UnknownDtrFormatUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(unknowndtrformat.Table, unknowndtrformat.Columns, sqlgraph.NewFieldSpec(unknowndtrformat.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.ImageDataCleared() {
		_spec.ClearField(unknowndtrformat.FieldImageData, field.TypeBytes)
	}
	if _u.mutation.CompanyIDCleared() {
		_spec.ClearField(unknowndtrformat.FieldCompanyID, field.TypeUUID)
	}
	if _u.mutation.ParsedDataCleared() {
		_spec.ClearField(unknowndtrformat.FieldParsedData, field.TypeJSON)
	}
	if value, ok := _u.mutation.IsProcessed(); ok {
		_spec.SetField(unknowndtrformat.FieldIsProcessed, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{unknowndtrformat.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// UnknownDtrFormatUpdateOne is the builder for updating a single UnknownDtrFormat entity.
type UnknownDtrFormatUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *UnknownDtrFormatMutation
}

// SetIsProcessed sets the "is_processed" field.
func (_u *UnknownDtrFormatUpdateOne) SetIsProcessed(v bool) *UnknownDtrFormatUpdateOne {
	_u.mutation.SetIsProcessed(v)
	return _u
}

// SetNillableIsProcessed sets the "is_processed" field if the given value is not nil.
func (_u *UnknownDtrFormatUpdateOne) SetNillableIsProcessed(v *bool) *UnknownDtrFormatUpdateOne {
	if v != nil {
		_u.SetIsProcessed(*v)
	}
	return _u
}

// Mutation returns the UnknownDtrFormatMutation object of the builder.
func (_u *UnknownDtrFormatUpdateOne) Mutation() *UnknownDtrFormatMutation {
	return _u.mutation
}

// Where appends a list predicates to the UnknownDtrFormatUpdate builder.
func (_u *UnknownDtrFormatUpdateOne) Where(ps ...predicate.UnknownDtrFormat) *UnknownDtrFormatUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *UnknownDtrFormatUpdateOne) Select(field string, fields ...string) *UnknownDtrFormatUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated UnknownDtrFormat entity.
func (_u *UnknownDtrFormatUpdateOne) Save(ctx context.Context) (*UnknownDtrFormat, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UnknownDtrFormatUpdateOne) SaveX(ctx context.Context) *UnknownDtrFormat {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *UnknownDtrFormatUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UnknownDtrFormatUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *UnknownDtrFormatUpdateOne) sqlSave(ctx context.Context) (_node *UnknownDtrFormat, err error) {
	_spec := sqlgraph.NewUpdateSpec(unknowndtrformat.Table, unknowndtrformat.Columns, sqlgraph.NewFieldSpec(unknowndtrformat.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "UnknownDtrFormat.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, unknowndtrformat.FieldID)
		for _, f := range fields {
			if !unknowndtrformat.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != unknowndtrformat.FieldID {
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
	if _u.mutation.ImageDataCleared() {
		_spec.ClearField(unknowndtrformat.FieldImageData, field.TypeBytes)
	}
	if _u.mutation.CompanyIDCleared() {
		_spec.ClearField(unknowndtrformat.FieldCompanyID, field.TypeUUID)
	}
	if _u.mutation.ParsedDataCleared() {
		_spec.ClearField(unknowndtrformat.FieldParsedData, field.TypeJSON)
	}
	if value, ok := _u.mutation.IsProcessed(); ok {
		_spec.SetField(unknowndtrformat.FieldIsProcessed, field.TypeBool, value)
	}
	_node = &UnknownDtrFormat{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{unknowndtrformat.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
