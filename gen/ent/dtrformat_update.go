// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"dtr-engine/gen/ent/dtrformat"
	"dtr-engine/gen/ent/predicate"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// DtrFormatUpdate is the builder for updating DtrFormat entities.
type DtrFormatUpdate struct {
	config
	hooks    []Hook
	mutation *DtrFormatMutation
}

// Where appends a list predicates to the DtrFormatUpdate builder.
func (_u *DtrFormatUpdate) Where(ps ...predicate.DtrFormat) *DtrFormatUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *DtrFormatUpdate) SetName(v string) *DtrFormatUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *DtrFormatUpdate) SetNillableName(v *string) *DtrFormatUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetCompanyID sets the "company_id" field.
func (_u *DtrFormatUpdate) SetCompanyID(v uuid.UUID) *DtrFormatUpdate {
	_u.mutation.SetCompanyID(v)
	return _u
}

// SetNillableCompanyID sets the "company_id" field if the given value is not nil.
func (_u *DtrFormatUpdate) SetNillableCompanyID(v *uuid.UUID) *DtrFormatUpdate {
	if v != nil {
		_u.SetCompanyID(*v)
	}
	return _u
}

// ClearCompanyID clears the value of the "company_id" field.
func (_u *DtrFormatUpdate) ClearCompanyID() *DtrFormatUpdate {
	_u.mutation.ClearCompanyID()
	return _u
}

// SetPattern sets the "pattern" field.
func (_u *DtrFormatUpdate) SetPattern(v string) *DtrFormatUpdate {
	_u.mutation.SetPattern(v)
	return _u
}

// SetNillablePattern sets the "pattern" field if the given value is not nil.
func (_u *DtrFormatUpdate) SetNillablePattern(v *string) *DtrFormatUpdate {
	if v != nil {
		_u.SetPattern(*v)
	}
	return _u
}

// SetExtractionRules sets the "extraction_rules" field.
func (_u *DtrFormatUpdate) SetExtractionRules(v map[string]string) *DtrFormatUpdate {
	_u.mutation.SetExtractionRules(v)
	return _u
}

// SetExample sets the "example" field.
func (_u *DtrFormatUpdate) SetExample(v string) *DtrFormatUpdate {
	_u.mutation.SetExample(v)
	return _u
}

// SetNillableExample sets the "example" field if the given value is not nil.
func (_u *DtrFormatUpdate) SetNillableExample(v *string) *DtrFormatUpdate {
	if v != nil {
		_u.SetExample(*v)
	}
	return _u
}

// ClearExample clears the value of the "example" field.
func (_u *DtrFormatUpdate) ClearExample() *DtrFormatUpdate {
	_u.mutation.ClearExample()
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *DtrFormatUpdate) SetIsActive(v bool) *DtrFormatUpdate {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *DtrFormatUpdate) SetNillableIsActive(v *bool) *DtrFormatUpdate {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// Mutation returns the DtrFormatMutation object of the builder.
func (_u *DtrFormatUpdate) Mutation() *DtrFormatMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DtrFormatUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DtrFormatUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DtrFormatUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DtrFormatUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DtrFormatUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := dtrformat.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "DtrFormat.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Pattern(); ok {
		if err := dtrformat.PatternValidator(v); err != nil {
			return &ValidationError{Name: "pattern", err: fmt.Errorf(`ent: validator failed for field "DtrFormat.pattern": %w`, err)}
		}
	}
	return nil
}

func (_u *DtrFormatUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(dtrformat.Table, dtrformat.Columns, sqlgraph.NewFieldSpec(dtrformat.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(dtrformat.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.CompanyID(); ok {
		_spec.SetField(dtrformat.FieldCompanyID, field.TypeUUID, value)
	}
	if _u.mutation.CompanyIDCleared() {
		_spec.ClearField(dtrformat.FieldCompanyID, field.TypeUUID)
	}
	if value, ok := _u.mutation.Pattern(); ok {
		_spec.SetField(dtrformat.FieldPattern, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExtractionRules(); ok {
		_spec.SetField(dtrformat.FieldExtractionRules, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.Example(); ok {
		_spec.SetField(dtrformat.FieldExample, field.TypeString, value)
	}
	if _u.mutation.ExampleCleared() {
		_spec.ClearField(dtrformat.FieldExample, field.TypeString)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(dtrformat.FieldIsActive, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{dtrformat.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DtrFormatUpdateOne is the builder for updating a single DtrFormat entity.
type DtrFormatUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DtrFormatMutation
}

// SetName sets the "name" field.
func (_u *DtrFormatUpdateOne) SetName(v string) *DtrFormatUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *DtrFormatUpdateOne) SetNillableName(v *string) *DtrFormatUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetCompanyID sets the "company_id" field.
func (_u *DtrFormatUpdateOne) SetCompanyID(v uuid.UUID) *DtrFormatUpdateOne {
	_u.mutation.SetCompanyID(v)
	return _u
}

// SetNillableCompanyID sets the "company_id" field if the given value is not nil.
func (_u *DtrFormatUpdateOne) SetNillableCompanyID(v *uuid.UUID) *DtrFormatUpdateOne {
	if v != nil {
		_u.SetCompanyID(*v)
	}
	return _u
}

// ClearCompanyID clears the value of the "company_id" field.
func (_u *DtrFormatUpdateOne) ClearCompanyID() *DtrFormatUpdateOne {
	_u.mutation.ClearCompanyID()
	return _u
}

// SetPattern sets the "pattern" field.
func (_u *DtrFormatUpdateOne) SetPattern(v string) *DtrFormatUpdateOne {
	_u.mutation.SetPattern(v)
	return _u
}

// SetNillablePattern sets the "pattern" field if the given value is not nil.
func (_u *DtrFormatUpdateOne) SetNillablePattern(v *string) *DtrFormatUpdateOne {
	if v != nil {
		_u.SetPattern(*v)
	}
	return _u
}

// SetExtractionRules sets the "extraction_rules" field.
func (_u *DtrFormatUpdateOne) SetExtractionRules(v map[string]string) *DtrFormatUpdateOne {
	_u.mutation.SetExtractionRules(v)
	return _u
}

// SetExample sets the "example" field.
func (_u *DtrFormatUpdateOne) SetExample(v string) *DtrFormatUpdateOne {
	_u.mutation.SetExample(v)
	return _u
}

// SetNillableExample sets the "example" field if the given value is not nil.
func (_u *DtrFormatUpdateOne) SetNillableExample(v *string) *DtrFormatUpdateOne {
	if v != nil {
		_u.SetExample(*v)
	}
	return _u
}

// ClearExample clears the value of the "example" field.
func (_u *DtrFormatUpdateOne) ClearExample() *DtrFormatUpdateOne {
	_u.mutation.ClearExample()
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *DtrFormatUpdateOne) SetIsActive(v bool) *DtrFormatUpdateOne {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *DtrFormatUpdateOne) SetNillableIsActive(v *bool) *DtrFormatUpdateOne {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// Mutation returns the DtrFormatMutation object of the builder.
func (_u *DtrFormatUpdateOne) Mutation() *DtrFormatMutation {
	return _u.mutation
}

// Where appends a list predicates to the DtrFormatUpdate builder.
func (_u *DtrFormatUpdateOne) Where(ps ...predicate.DtrFormat) *DtrFormatUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DtrFormatUpdateOne) Select(field string, fields ...string) *DtrFormatUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated DtrFormat entity.
func (_u *DtrFormatUpdateOne) Save(ctx context.Context) (*DtrFormat, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DtrFormatUpdateOne) SaveX(ctx context.Context) *DtrFormat {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DtrFormatUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DtrFormatUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DtrFormatUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := dtrformat.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "DtrFormat.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Pattern(); ok {
		if err := dtrformat.PatternValidator(v); err != nil {
			return &ValidationError{Name: "pattern", err: fmt.Errorf(`ent: validator failed for field "DtrFormat.pattern": %w`, err)}
		}
	}
	return nil
}

func (_u *DtrFormatUpdateOne) sqlSave(ctx context.Context) (_node *DtrFormat, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(dtrformat.Table, dtrformat.Columns, sqlgraph.NewFieldSpec(dtrformat.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "DtrFormat.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, dtrformat.FieldID)
		for _, f := range fields {
			if !dtrformat.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != dtrformat.FieldID {
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
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(dtrformat.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.CompanyID(); ok {
		_spec.SetField(dtrformat.FieldCompanyID, field.TypeUUID, value)
	}
	if _u.mutation.CompanyIDCleared() {
		_spec.ClearField(dtrformat.FieldCompanyID, field.TypeUUID)
	}
	if value, ok := _u.mutation.Pattern(); ok {
		_spec.SetField(dtrformat.FieldPattern, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExtractionRules(); ok {
		_spec.SetField(dtrformat.FieldExtractionRules, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.Example(); ok {
		_spec.SetField(dtrformat.FieldExample, field.TypeString, value)
	}
	if _u.mutation.ExampleCleared() {
		_spec.ClearField(dtrformat.FieldExample, field.TypeString)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(dtrformat.FieldIsActive, field.TypeBool, value)
	}
	_node = &DtrFormat{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{dtrformat.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
