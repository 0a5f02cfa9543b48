// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"dtr-engine/gen/ent/predicate"
	"dtr-engine/gen/ent/unknowndtrformat"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// UnknownDtrFormatDelete is the builder for deleting a UnknownDtrFormat entity.
type UnknownDtrFormatDelete struct {
	config
	hooks    []Hook
	mutation *UnknownDtrFormatMutation
}

// Where appends a list predicates to the UnknownDtrFormatDelete builder.
func (_d *UnknownDtrFormatDelete) Where(ps ...predicate.UnknownDtrFormat) *UnknownDtrFormatDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *UnknownDtrFormatDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *UnknownDtrFormatDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *UnknownDtrFormatDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(unknowndtrformat.Table, sqlgraph.NewFieldSpec(unknowndtrformat.FieldID, field.TypeUUID))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// UnknownDtrFormatDeleteOne is the builder for deleting a single UnknownDtrFormat entity.
type UnknownDtrFormatDeleteOne struct {
	_d *UnknownDtrFormatDelete
}

// Where appends a list predicates to the UnknownDtrFormatDelete builder.
func (_d *UnknownDtrFormatDeleteOne) Where(ps ...predicate.UnknownDtrFormat) *UnknownDtrFormatDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *UnknownDtrFormatDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{unknowndtrformat.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *UnknownDtrFormatDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
