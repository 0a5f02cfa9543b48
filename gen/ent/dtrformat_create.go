// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"dtr-engine/gen/ent/dtrformat"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// DtrFormatCreate is the builder for creating a DtrFormat entity.
type DtrFormatCreate struct {
	config
	mutation *DtrFormatMutation
	hooks    []Hook
}

// SetName sets the "name" field.
func (_c *DtrFormatCreate) SetName(v string) *DtrFormatCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetCompanyID sets the "company_id" field.
func (_c *DtrFormatCreate) SetCompanyID(v uuid.UUID) *DtrFormatCreate {
	_c.mutation.SetCompanyID(v)
	return _c
}

// SetNillableCompanyID sets the "company_id" field if the given value is not nil.
func (_c *DtrFormatCreate) SetNillableCompanyID(v *uuid.UUID) *DtrFormatCreate {
	if v != nil {
		_c.SetCompanyID(*v)
	}
	return _c
}

// SetPattern sets the "pattern" field.
func (_c *DtrFormatCreate) SetPattern(v string) *DtrFormatCreate {
	_c.mutation.SetPattern(v)
	return _c
}

// SetExtractionRules sets the "extraction_rules" field.
func (_c *DtrFormatCreate) SetExtractionRules(v map[string]string) *DtrFormatCreate {
	_c.mutation.SetExtractionRules(v)
	return _c
}

// SetExample sets the "example" field.
func (_c *DtrFormatCreate) SetExample(v string) *DtrFormatCreate {
	_c.mutation.SetExample(v)
	return _c
}

// SetNillableExample sets the "example" field if the given value is not nil.
func (_c *DtrFormatCreate) SetNillableExample(v *string) *DtrFormatCreate {
	if v != nil {
		_c.SetExample(*v)
	}
	return _c
}

// SetIsActive sets the "is_active" field.
func (_c *DtrFormatCreate) SetIsActive(v bool) *DtrFormatCreate {
	_c.mutation.SetIsActive(v)
	return _c
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_c *DtrFormatCreate) SetNillableIsActive(v *bool) *DtrFormatCreate {
	if v != nil {
		_c.SetIsActive(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *DtrFormatCreate) SetCreatedAt(v time.Time) *DtrFormatCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *DtrFormatCreate) SetNillableCreatedAt(v *time.Time) *DtrFormatCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *DtrFormatCreate) SetID(v uuid.UUID) *DtrFormatCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *DtrFormatCreate) SetNillableID(v *uuid.UUID) *DtrFormatCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the DtrFormatMutation object of the builder.
func (_c *DtrFormatCreate) Mutation() *DtrFormatMutation {
	return _c.mutation
}

// Save creates the DtrFormat in the database.
func (_c *DtrFormatCreate) Save(ctx context.Context) (*DtrFormat, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DtrFormatCreate) SaveX(ctx context.Context) *DtrFormat {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DtrFormatCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DtrFormatCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DtrFormatCreate) defaults() {
	if _, ok := _c.mutation.IsActive(); !ok {
		v := dtrformat.DefaultIsActive
		_c.mutation.SetIsActive(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := dtrformat.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := dtrformat.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DtrFormatCreate) check() error {
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "DtrFormat.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := dtrformat.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "DtrFormat.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Pattern(); !ok {
		return &ValidationError{Name: "pattern", err: errors.New(`ent: missing required field "DtrFormat.pattern"`)}
	}
	if v, ok := _c.mutation.Pattern(); ok {
		if err := dtrformat.PatternValidator(v); err != nil {
			return &ValidationError{Name: "pattern", err: fmt.Errorf(`ent: validator failed for field "DtrFormat.pattern": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ExtractionRules(); !ok {
		return &ValidationError{Name: "extraction_rules", err: errors.New(`ent: missing required field "DtrFormat.extraction_rules"`)}
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		return &ValidationError{Name: "is_active", err: errors.New(`ent: missing required field "DtrFormat.is_active"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "DtrFormat.created_at"`)}
	}
	return nil
}

func (_c *DtrFormatCreate) sqlSave(ctx context.Context) (*DtrFormat, error) {
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

func (_c *DtrFormatCreate) createSpec() (*DtrFormat, *sqlgraph.CreateSpec) {
	var (
		_node = &DtrFormat{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(dtrformat.Table, sqlgraph.NewFieldSpec(dtrformat.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(dtrformat.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.CompanyID(); ok {
		_spec.SetField(dtrformat.FieldCompanyID, field.TypeUUID, value)
		_node.CompanyID = &value
	}
	if value, ok := _c.mutation.Pattern(); ok {
		_spec.SetField(dtrformat.FieldPattern, field.TypeString, value)
		_node.Pattern = value
	}
	if value, ok := _c.mutation.ExtractionRules(); ok {
		_spec.SetField(dtrformat.FieldExtractionRules, field.TypeJSON, value)
		_node.ExtractionRules = value
	}
	if value, ok := _c.mutation.Example(); ok {
		_spec.SetField(dtrformat.FieldExample, field.TypeString, value)
		_node.Example = value
	}
	if value, ok := _c.mutation.IsActive(); ok {
		_spec.SetField(dtrformat.FieldIsActive, field.TypeBool, value)
		_node.IsActive = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(dtrformat.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// DtrFormatCreateBulk is the builder for creating many DtrFormat entities in bulk.
type DtrFormatCreateBulk struct {
	config
	err      error
	builders []*DtrFormatCreate
}

// Save creates the DtrFormat entities in the database.
func (_c *DtrFormatCreateBulk) Save(ctx context.Context) ([]*DtrFormat, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*DtrFormat, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DtrFormatMutation)
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
func (_c *DtrFormatCreateBulk) SaveX(ctx context.Context) []*DtrFormat {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DtrFormatCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DtrFormatCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
