// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"dtr-engine/gen/ent/dtrformat"
	"dtr-engine/gen/ent/predicate"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// DtrFormatDelete is the builder for deleting a DtrFormat entity.
type DtrFormatDelete struct {
	config
	hooks    []Hook
	mutation *DtrFormatMutation
}

// Where appends a list predicates to the DtrFormatDelete builder.
func (_d *DtrFormatDelete) Where(ps ...predicate.DtrFormat) *DtrFormatDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *DtrFormatDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *DtrFormatDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *DtrFormatDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(dtrformat.Table, sqlgraph.NewFieldSpec(dtrformat.FieldID, field.TypeUUID))
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

// DtrFormatDeleteOne is the builder for deleting a single DtrFormat entity.
type DtrFormatDeleteOne struct {
	_d *DtrFormatDelete
}

// Where appends a list predicates to the DtrFormatDelete builder.
func (_d *DtrFormatDeleteOne) Where(ps ...predicate.DtrFormat) *DtrFormatDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *DtrFormatDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{dtrformat.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *DtrFormatDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
