// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"dtr-engine/gen/ent/unknowndtrformat"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// UnknownDtrFormatCreate is the builder for creating a UnknownDtrFormat entity.
type UnknownDtrFormatCreate struct {
	config
	mutation *UnknownDtrFormatMutation
	hooks    []Hook
}

// SetRawText sets the "raw_text" field.
func (_c *UnknownDtrFormatCreate) SetRawText(v string) *UnknownDtrFormatCreate {
	_c.mutation.SetRawText(v)
	return _c
}

// SetImageData sets the "image_data" field.
func (_c *UnknownDtrFormatCreate) SetImageData(v []byte) *UnknownDtrFormatCreate {
	_c.mutation.SetImageData(v)
	return _c
}

// SetCompanyID sets the "company_id" field.
func (_c *UnknownDtrFormatCreate) SetCompanyID(v uuid.UUID) *UnknownDtrFormatCreate {
	_c.mutation.SetCompanyID(v)
	return _c
}

// SetNillableCompanyID sets the "company_id" field if the given value is not nil.
func (_c *UnknownDtrFormatCreate) SetNillableCompanyID(v *uuid.UUID) *UnknownDtrFormatCreate {
	if v != nil {
		_c.SetCompanyID(*v)
	}
	return _c
}

// SetParsedData sets the "parsed_data" field.
func (_c *UnknownDtrFormatCreate) SetParsedData(v map[string]string) *UnknownDtrFormatCreate {
	_c.mutation.SetParsedData(v)
	return _c
}

// SetIsProcessed sets the "is_processed" field.
func (_c *UnknownDtrFormatCreate) SetIsProcessed(v bool) *UnknownDtrFormatCreate {
	_c.mutation.SetIsProcessed(v)
	return _c
}

// SetNillableIsProcessed sets the "is_processed" field if the given value is not nil.
func (_c *UnknownDtrFormatCreate) SetNillableIsProcessed(v *bool) *UnknownDtrFormatCreate {
	if v != nil {
		_c.SetIsProcessed(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *UnknownDtrFormatCreate) SetCreatedAt(v time.Time) *UnknownDtrFormatCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *UnknownDtrFormatCreate) SetNillableCreatedAt(v *time.Time) *UnknownDtrFormatCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *UnknownDtrFormatCreate) SetID(v uuid.UUID) *UnknownDtrFormatCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *UnknownDtrFormatCreate) SetNillableID(v *uuid.UUID) *UnknownDtrFormatCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the UnknownDtrFormatMutation object of the builder.
func (_c *UnknownDtrFormatCreate) Mutation() *UnknownDtrFormatMutation {
	return _c.mutation
}

// Save creates the UnknownDtrFormat in the database.
func (_c *UnknownDtrFormatCreate) Save(ctx context.Context) (*UnknownDtrFormat, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *UnknownDtrFormatCreate) SaveX(ctx context.Context) *UnknownDtrFormat {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UnknownDtrFormatCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UnknownDtrFormatCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *UnknownDtrFormatCreate) defaults() {
	if _, ok := _c.mutation.IsProcessed(); !ok {
		v := unknowndtrformat.DefaultIsProcessed
		_c.mutation.SetIsProcessed(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := unknowndtrformat.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := unknowndtrformat.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *UnknownDtrFormatCreate) check() error {
	if _, ok := _c.mutation.RawText(); !ok {
		return &ValidationError{Name: "raw_text", err: errors.New(`ent: missing required field "UnknownDtrFormat.raw_text"`)}
	}
	if v, ok := _c.mutation.RawText(); ok {
		if err := unknowndtrformat.RawTextValidator(v); err != nil {
			return &ValidationError{Name: "raw_text", err: fmt.Errorf(`ent: validator failed for field "UnknownDtrFormat.raw_text": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IsProcessed(); !ok {
		return &ValidationError{Name: "is_processed", err: errors.New(`ent: missing required field "UnknownDtrFormat.is_processed"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "UnknownDtrFormat.created_at"`)}
	}
	return nil
}

func (_c *UnknownDtrFormatCreate) sqlSave(ctx context.Context) (*UnknownDtrFormat, error) {
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
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *UnknownDtrFormatCreate) createSpec() (*UnknownDtrFormat, *sqlgraph.CreateSpec) {
	var (
		_node = &UnknownDtrFormat{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(unknowndtrformat.Table, sqlgraph.NewFieldSpec(unknowndtrformat.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.RawText(); ok {
		_spec.SetField(unknowndtrformat.FieldRawText, field.TypeString, value)
		_node.RawText = value
	}
	if value, ok := _c.mutation.ImageData(); ok {
		_spec.SetField(unknowndtrformat.FieldImageData, field.TypeBytes, value)
		_node.ImageData = value
	}
	if value, ok := _c.mutation.CompanyID(); ok {
		_spec.SetField(unknowndtrformat.FieldCompanyID, field.TypeUUID, value)
		_node.CompanyID = &value
	}
	if value, ok := _c.mutation.ParsedData(); ok {
		_spec.SetField(unknowndtrformat.FieldParsedData, field.TypeJSON, value)
		_node.ParsedData = value
	}
	if value, ok := _c.mutation.IsProcessed(); ok {
		_spec.SetField(unknowndtrformat.FieldIsProcessed, field.TypeBool, value)
		_node.IsProcessed = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(unknowndtrformat.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// UnknownDtrFormatCreateBulk is the builder for creating many UnknownDtrFormat entities in bulk.
type UnknownDtrFormatCreateBulk struct {
	config
	err      error
	builders []*UnknownDtrFormatCreate
}

// Save creates the UnknownDtrFormat entities in the database.
func (_c *UnknownDtrFormatCreateBulk) Save(ctx context.Context) ([]*UnknownDtrFormat, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*UnknownDtrFormat, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*UnknownDtrFormatMutation)
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
func (_c *UnknownDtrFormatCreateBulk) SaveX(ctx context.Context) []*UnknownDtrFormat {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UnknownDtrFormatCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UnknownDtrFormatCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
