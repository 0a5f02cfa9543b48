// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"dtr-engine/gen/ent/dtrformat"
	"dtr-engine/gen/ent/predicate"
	"dtr-engine/gen/ent/unknowndtrformat"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeDtrFormat        = "DtrFormat"
	TypeUnknownDtrFormat = "UnknownDtrFormat"
)

// DtrFormatMutation represents an operation that mutates the DtrFormat nodes in the graph.
type DtrFormatMutation struct {
	config
	op               Op
	typ              string
	id               *uuid.UUID
	name             *string
	company_id       *uuid.UUID
	pattern          *string
	extraction_rules *map[string]string
	example          *string
	is_active        *bool
	created_at       *time.Time
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*DtrFormat, error)
	predicates       []predicate.DtrFormat
}

var _ ent.Mutation = (*DtrFormatMutation)(nil)

// dtrformatOption allows management of the mutation configuration using functional options.
type dtrformatOption func(*DtrFormatMutation)

// newDtrFormatMutation creates new mutation for the DtrFormat entity.
func newDtrFormatMutation(c config, op Op, opts ...dtrformatOption) *DtrFormatMutation {
	m := &DtrFormatMutation{
		config:        c,
		op:            op,
		typ:           TypeDtrFormat,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDtrFormatID sets the ID field of the mutation.
func withDtrFormatID(id uuid.UUID) dtrformatOption {
	return func(m *DtrFormatMutation) {
		var (
			err   error
			once  sync.Once
			value *DtrFormat
		)
		m.oldValue = func(ctx context.Context) (*DtrFormat, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().DtrFormat.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDtrFormat sets the old DtrFormat of the mutation.
func withDtrFormat(node *DtrFormat) dtrformatOption {
	return func(m *DtrFormatMutation) {
		m.oldValue = func(context.Context) (*DtrFormat, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DtrFormatMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DtrFormatMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of DtrFormat entities.
func (m *DtrFormatMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DtrFormatMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DtrFormatMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().DtrFormat.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *DtrFormatMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *DtrFormatMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the DtrFormat entity.
// If the DtrFormat object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DtrFormatMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *DtrFormatMutation) ResetName() {
	m.name = nil
}

// SetCompanyID sets the "company_id" field.
func (m *DtrFormatMutation) SetCompanyID(u uuid.UUID) {
	m.company_id = &u
}

// CompanyID returns the value of the "company_id" field in the mutation.
func (m *DtrFormatMutation) CompanyID() (r uuid.UUID, exists bool) {
	v := m.company_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCompanyID returns the old "company_id" field's value of the DtrFormat entity.
// If the DtrFormat object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DtrFormatMutation) OldCompanyID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompanyID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompanyID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompanyID: %w", err)
	}
	return oldValue.CompanyID, nil
}

// ClearCompanyID clears the value of the "company_id" field.
func (m *DtrFormatMutation) ClearCompanyID() {
	m.company_id = nil
	m.clearedFields[dtrformat.FieldCompanyID] = struct{}{}
}

// CompanyIDCleared returns if the "company_id" field was cleared in this mutation.
func (m *DtrFormatMutation) CompanyIDCleared() bool {
	_, ok := m.clearedFields[dtrformat.FieldCompanyID]
	return ok
}

// ResetCompanyID resets all changes to the "company_id" field.
func (m *DtrFormatMutation) ResetCompanyID() {
	m.company_id = nil
	delete(m.clearedFields, dtrformat.FieldCompanyID)
}

// SetPattern sets the "pattern" field.
func (m *DtrFormatMutation) SetPattern(s string) {
	m.pattern = &s
}

// Pattern returns the value of the "pattern" field in the mutation.
func (m *DtrFormatMutation) Pattern() (r string, exists bool) {
	v := m.pattern
	if v == nil {
		return
	}
	return *v, true
}

// OldPattern returns the old "pattern" field's value of the DtrFormat entity.
// If the DtrFormat object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DtrFormatMutation) OldPattern(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPattern is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPattern requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPattern: %w", err)
	}
	return oldValue.Pattern, nil
}

// ResetPattern resets all changes to the "pattern" field.
func (m *DtrFormatMutation) ResetPattern() {
	m.pattern = nil
}

// SetExtractionRules sets the "extraction_rules" field.
func (m *DtrFormatMutation) SetExtractionRules(value map[string]string) {
	m.extraction_rules = &value
}

// ExtractionRules returns the value of the "extraction_rules" field in the mutation.
func (m *DtrFormatMutation) ExtractionRules() (r map[string]string, exists bool) {
	v := m.extraction_rules
	if v == nil {
		return
	}
	return *v, true
}

// OldExtractionRules returns the old "extraction_rules" field's value of the DtrFormat entity.
// If the DtrFormat object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DtrFormatMutation) OldExtractionRules(ctx context.Context) (v map[string]string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExtractionRules is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExtractionRules requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExtractionRules: %w", err)
	}
	return oldValue.ExtractionRules, nil
}

// ResetExtractionRules resets all changes to the "extraction_rules" field.
func (m *DtrFormatMutation) ResetExtractionRules() {
	m.extraction_rules = nil
}

// SetExample sets the "example" field.
func (m *DtrFormatMutation) SetExample(s string) {
	m.example = &s
}

// Example returns the value of the "example" field in the mutation.
func (m *DtrFormatMutation) Example() (r string, exists bool) {
	v := m.example
	if v == nil {
		return
	}
	return *v, true
}

// OldExample returns the old "example" field's value of the DtrFormat entity.
// If the DtrFormat object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DtrFormatMutation) OldExample(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExample is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExample requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExample: %w", err)
	}
	return oldValue.Example, nil
}

// ClearExample clears the value of the "example" field.
func (m *DtrFormatMutation) ClearExample() {
	m.example = nil
	m.clearedFields[dtrformat.FieldExample] = struct{}{}
}

// ExampleCleared returns if the "example" field was cleared in this mutation.
func (m *DtrFormatMutation) ExampleCleared() bool {
	_, ok := m.clearedFields[dtrformat.FieldExample]
	return ok
}

// ResetExample resets all changes to the "example" field.
func (m *DtrFormatMutation) ResetExample() {
	m.example = nil
	delete(m.clearedFields, dtrformat.FieldExample)
}

// SetIsActive sets the "is_active" field.
func (m *DtrFormatMutation) SetIsActive(b bool) {
	m.is_active = &b
}

// IsActive returns the value of the "is_active" field in the mutation.
func (m *DtrFormatMutation) IsActive() (r bool, exists bool) {
	v := m.is_active
	if v == nil {
		return
	}
	return *v, true
}

// OldIsActive returns the old "is_active" field's value of the DtrFormat entity.
// If the DtrFormat object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DtrFormatMutation) OldIsActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsActive: %w", err)
	}
	return oldValue.IsActive, nil
}

// ResetIsActive resets all changes to the "is_active" field.
func (m *DtrFormatMutation) ResetIsActive() {
	m.is_active = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *DtrFormatMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *DtrFormatMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the DtrFormat entity.
// If the DtrFormat object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DtrFormatMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *DtrFormatMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the DtrFormatMutation builder.
func (m *DtrFormatMutation) Where(ps ...predicate.DtrFormat) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DtrFormatMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DtrFormatMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.DtrFormat, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DtrFormatMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DtrFormatMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (DtrFormat).
func (m *DtrFormatMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DtrFormatMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.name != nil {
		fields = append(fields, dtrformat.FieldName)
	}
	if m.company_id != nil {
		fields = append(fields, dtrformat.FieldCompanyID)
	}
	if m.pattern != nil {
		fields = append(fields, dtrformat.FieldPattern)
	}
	if m.extraction_rules != nil {
		fields = append(fields, dtrformat.FieldExtractionRules)
	}
	if m.example != nil {
		fields = append(fields, dtrformat.FieldExample)
	}
	if m.is_active != nil {
		fields = append(fields, dtrformat.FieldIsActive)
	}
	if m.created_at != nil {
		fields = append(fields, dtrformat.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DtrFormatMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case dtrformat.FieldName:
		return m.Name()
	case dtrformat.FieldCompanyID:
		return m.CompanyID()
	case dtrformat.FieldPattern:
		return m.Pattern()
	case dtrformat.FieldExtractionRules:
		return m.ExtractionRules()
	case dtrformat.FieldExample:
		return m.Example()
	case dtrformat.FieldIsActive:
		return m.IsActive()
	case dtrformat.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DtrFormatMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case dtrformat.FieldName:
		return m.OldName(ctx)
	case dtrformat.FieldCompanyID:
		return m.OldCompanyID(ctx)
	case dtrformat.FieldPattern:
		return m.OldPattern(ctx)
	case dtrformat.FieldExtractionRules:
		return m.OldExtractionRules(ctx)
	case dtrformat.FieldExample:
		return m.OldExample(ctx)
	case dtrformat.FieldIsActive:
		return m.OldIsActive(ctx)
	case dtrformat.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown DtrFormat field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DtrFormatMutation) SetField(name string, value ent.Value) error {
	switch name {
	case dtrformat.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case dtrformat.FieldCompanyID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompanyID(v)
		return nil
	case dtrformat.FieldPattern:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPattern(v)
		return nil
	case dtrformat.FieldExtractionRules:
		v, ok := value.(map[string]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExtractionRules(v)
		return nil
	case dtrformat.FieldExample:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExample(v)
		return nil
	case dtrformat.FieldIsActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsActive(v)
		return nil
	case dtrformat.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown DtrFormat field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DtrFormatMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DtrFormatMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DtrFormatMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown DtrFormat numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DtrFormatMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(dtrformat.FieldCompanyID) {
		fields = append(fields, dtrformat.FieldCompanyID)
	}
	if m.FieldCleared(dtrformat.FieldExample) {
		fields = append(fields, dtrformat.FieldExample)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DtrFormatMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DtrFormatMutation) ClearField(name string) error {
	switch name {
	case dtrformat.FieldCompanyID:
		m.ClearCompanyID()
		return nil
	case dtrformat.FieldExample:
		m.ClearExample()
		return nil
	}
	return fmt.Errorf("unknown DtrFormat nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DtrFormatMutation) ResetField(name string) error {
	switch name {
	case dtrformat.FieldName:
		m.ResetName()
		return nil
	case dtrformat.FieldCompanyID:
		m.ResetCompanyID()
		return nil
	case dtrformat.FieldPattern:
		m.ResetPattern()
		return nil
	case dtrformat.FieldExtractionRules:
		m.ResetExtractionRules()
		return nil
	case dtrformat.FieldExample:
		m.ResetExample()
		return nil
	case dtrformat.FieldIsActive:
		m.ResetIsActive()
		return nil
	case dtrformat.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown DtrFormat field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DtrFormatMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DtrFormatMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DtrFormatMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DtrFormatMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DtrFormatMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DtrFormatMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DtrFormatMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown DtrFormat unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DtrFormatMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown DtrFormat edge %s", name)
}

// UnknownDtrFormatMutation represents an operation that mutates the UnknownDtrFormat nodes in the graph.
type UnknownDtrFormatMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	raw_text      *string
	image_data    *[]byte
	company_id    *uuid.UUID
	parsed_data   *map[string]string
	is_processed  *bool
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*UnknownDtrFormat, error)
	predicates    []predicate.UnknownDtrFormat
}

var _ ent.Mutation = (*UnknownDtrFormatMutation)(nil)

// unknowndtrformatOption allows management of the mutation configuration using functional options.
type unknowndtrformatOption func(*UnknownDtrFormatMutation)

// newUnknownDtrFormatMutation creates new mutation for the UnknownDtrFormat entity.
func newUnknownDtrFormatMutation(c config, op Op, opts ...unknowndtrformatOption) *UnknownDtrFormatMutation {
	m := &UnknownDtrFormatMutation{
		config:        c,
		op:            op,
		typ:           TypeUnknownDtrFormat,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withUnknownDtrFormatID sets the ID field of the mutation.
func withUnknownDtrFormatID(id uuid.UUID) unknowndtrformatOption {
	return func(m *UnknownDtrFormatMutation) {
		var (
			err   error
			once  sync.Once
			value *UnknownDtrFormat
		)
		m.oldValue = func(ctx context.Context) (*UnknownDtrFormat, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().UnknownDtrFormat.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withUnknownDtrFormat sets the old UnknownDtrFormat of the mutation.
func withUnknownDtrFormat(node *UnknownDtrFormat) unknowndtrformatOption {
	return func(m *UnknownDtrFormatMutation) {
		m.oldValue = func(context.Context) (*UnknownDtrFormat, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m UnknownDtrFormatMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m UnknownDtrFormatMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of UnknownDtrFormat entities.
func (m *UnknownDtrFormatMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *UnknownDtrFormatMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *UnknownDtrFormatMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().UnknownDtrFormat.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetRawText sets the "raw_text" field.
func (m *UnknownDtrFormatMutation) SetRawText(s string) {
	m.raw_text = &s
}

// RawText returns the value of the "raw_text" field in the mutation.
func (m *UnknownDtrFormatMutation) RawText() (r string, exists bool) {
	v := m.raw_text
	if v == nil {
		return
	}
	return *v, true
}

// OldRawText returns the old "raw_text" field's value of the UnknownDtrFormat entity.
// If the UnknownDtrFormat object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UnknownDtrFormatMutation) OldRawText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRawText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRawText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRawText: %w", err)
	}
	return oldValue.RawText, nil
}

// ResetRawText resets all changes to the "raw_text" field.
func (m *UnknownDtrFormatMutation) ResetRawText() {
	m.raw_text = nil
}

// SetImageData sets the "image_data" field.
func (m *UnknownDtrFormatMutation) SetImageData(b []byte) {
	m.image_data = &b
}

// ImageData returns the value of the "image_data" field in the mutation.
func (m *UnknownDtrFormatMutation) ImageData() (r []byte, exists bool) {
	v := m.image_data
	if v == nil {
		return
	}
	return *v, true
}

// OldImageData returns the old "image_data" field's value of the UnknownDtrFormat entity.
// If the UnknownDtrFormat object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UnknownDtrFormatMutation) OldImageData(ctx context.Context) (v []byte, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldImageData is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldImageData requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldImageData: %w", err)
	}
	return oldValue.ImageData, nil
}

// ClearImageData clears the value of the "image_data" field.
func (m *UnknownDtrFormatMutation) ClearImageData() {
	m.image_data = nil
	m.clearedFields[unknowndtrformat.FieldImageData] = struct{}{}
}

// ImageDataCleared returns if the "image_data" field was cleared in this mutation.
func (m *UnknownDtrFormatMutation) ImageDataCleared() bool {
	_, ok := m.clearedFields[unknowndtrformat.FieldImageData]
	return ok
}

// ResetImageData resets all changes to the "image_data" field.
func (m *UnknownDtrFormatMutation) ResetImageData() {
	m.image_data = nil
	delete(m.clearedFields, unknowndtrformat.FieldImageData)
}

// SetCompanyID sets the "company_id" field.
func (m *UnknownDtrFormatMutation) SetCompanyID(u uuid.UUID) {
	m.company_id = &u
}

// CompanyID returns the value of the "company_id" field in the mutation.
func (m *UnknownDtrFormatMutation) CompanyID() (r uuid.UUID, exists bool) {
	v := m.company_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCompanyID returns the old "company_id" field's value of the UnknownDtrFormat entity.
// If the UnknownDtrFormat object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UnknownDtrFormatMutation) OldCompanyID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompanyID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompanyID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompanyID: %w", err)
	}
	return oldValue.CompanyID, nil
}

// ClearCompanyID clears the value of the "company_id" field.
func (m *UnknownDtrFormatMutation) ClearCompanyID() {
	m.company_id = nil
	m.clearedFields[unknowndtrformat.FieldCompanyID] = struct{}{}
}

// CompanyIDCleared returns if the "company_id" field was cleared in this mutation.
func (m *UnknownDtrFormatMutation) CompanyIDCleared() bool {
	_, ok := m.clearedFields[unknowndtrformat.FieldCompanyID]
	return ok
}

// ResetCompanyID resets all changes to the "company_id" field.
func (m *UnknownDtrFormatMutation) ResetCompanyID() {
	m.company_id = nil
	delete(m.clearedFields, unknowndtrformat.FieldCompanyID)
}

// SetParsedData sets the "parsed_data" field.
func (m *UnknownDtrFormatMutation) SetParsedData(value map[string]string) {
	m.parsed_data = &value
}

// ParsedData returns the value of the "parsed_data" field in the mutation.
func (m *UnknownDtrFormatMutation) ParsedData() (r map[string]string, exists bool) {
	v := m.parsed_data
	if v == nil {
		return
	}
	return *v, true
}

// OldParsedData returns the old "parsed_data" field's value of the UnknownDtrFormat entity.
// If the UnknownDtrFormat object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UnknownDtrFormatMutation) OldParsedData(ctx context.Context) (v map[string]string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParsedData is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParsedData requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParsedData: %w", err)
	}
	return oldValue.ParsedData, nil
}

// ClearParsedData clears the value of the "parsed_data" field.
func (m *UnknownDtrFormatMutation) ClearParsedData() {
	m.parsed_data = nil
	m.clearedFields[unknowndtrformat.FieldParsedData] = struct{}{}
}

// ParsedDataCleared returns if the "parsed_data" field was cleared in this mutation.
func (m *UnknownDtrFormatMutation) ParsedDataCleared() bool {
	_, ok := m.clearedFields[unknowndtrformat.FieldParsedData]
	return ok
}

// ResetParsedData resets all changes to the "parsed_data" field.
func (m *UnknownDtrFormatMutation) ResetParsedData() {
	m.parsed_data = nil
	delete(m.clearedFields, unknowndtrformat.FieldParsedData)
}

// SetIsProcessed sets the "is_processed" field.
func (m *UnknownDtrFormatMutation) SetIsProcessed(b bool) {
	m.is_processed = &b
}

// IsProcessed returns the value of the "is_processed" field in the mutation.
func (m *UnknownDtrFormatMutation) IsProcessed() (r bool, exists bool) {
	v := m.is_processed
	if v == nil {
		return
	}
	return *v, true
}

// OldIsProcessed returns the old "is_processed" field's value of the UnknownDtrFormat entity.
// If the UnknownDtrFormat object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UnknownDtrFormatMutation) OldIsProcessed(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsProcessed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsProcessed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsProcessed: %w", err)
	}
	return oldValue.IsProcessed, nil
}

// ResetIsProcessed resets all changes to the "is_processed" field.
func (m *UnknownDtrFormatMutation) ResetIsProcessed() {
	m.is_processed = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *UnknownDtrFormatMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *UnknownDtrFormatMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the UnknownDtrFormat entity.
// If the UnknownDtrFormat object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UnknownDtrFormatMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *UnknownDtrFormatMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the UnknownDtrFormatMutation builder.
func (m *UnknownDtrFormatMutation) Where(ps ...predicate.UnknownDtrFormat) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the UnknownDtrFormatMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *UnknownDtrFormatMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.UnknownDtrFormat, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *UnknownDtrFormatMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *UnknownDtrFormatMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (UnknownDtrFormat).
func (m *UnknownDtrFormatMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *UnknownDtrFormatMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.raw_text != nil {
		fields = append(fields, unknowndtrformat.FieldRawText)
	}
	if m.image_data != nil {
		fields = append(fields, unknowndtrformat.FieldImageData)
	}
	if m.company_id != nil {
		fields = append(fields, unknowndtrformat.FieldCompanyID)
	}
	if m.parsed_data != nil {
		fields = append(fields, unknowndtrformat.FieldParsedData)
	}
	if m.is_processed != nil {
		fields = append(fields, unknowndtrformat.FieldIsProcessed)
	}
	if m.created_at != nil {
		fields = append(fields, unknowndtrformat.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *UnknownDtrFormatMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case unknowndtrformat.FieldRawText:
		return m.RawText()
	case unknowndtrformat.FieldImageData:
		return m.ImageData()
	case unknowndtrformat.FieldCompanyID:
		return m.CompanyID()
	case unknowndtrformat.FieldParsedData:
		return m.ParsedData()
	case unknowndtrformat.FieldIsProcessed:
		return m.IsProcessed()
	case unknowndtrformat.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *UnknownDtrFormatMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case unknowndtrformat.FieldRawText:
		return m.OldRawText(ctx)
	case unknowndtrformat.FieldImageData:
		return m.OldImageData(ctx)
	case unknowndtrformat.FieldCompanyID:
		return m.OldCompanyID(ctx)
	case unknowndtrformat.FieldParsedData:
		return m.OldParsedData(ctx)
	case unknowndtrformat.FieldIsProcessed:
		return m.OldIsProcessed(ctx)
	case unknowndtrformat.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown UnknownDtrFormat field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UnknownDtrFormatMutation) SetField(name string, value ent.Value) error {
	switch name {
	case unknowndtrformat.FieldRawText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRawText(v)
		return nil
	case unknowndtrformat.FieldImageData:
		v, ok := value.([]byte)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetImageData(v)
		return nil
	case unknowndtrformat.FieldCompanyID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompanyID(v)
		return nil
	case unknowndtrformat.FieldParsedData:
		v, ok := value.(map[string]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParsedData(v)
		return nil
	case unknowndtrformat.FieldIsProcessed:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsProcessed(v)
		return nil
	case unknowndtrformat.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown UnknownDtrFormat field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *UnknownDtrFormatMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *UnknownDtrFormatMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UnknownDtrFormatMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown UnknownDtrFormat numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *UnknownDtrFormatMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(unknowndtrformat.FieldImageData) {
		fields = append(fields, unknowndtrformat.FieldImageData)
	}
	if m.FieldCleared(unknowndtrformat.FieldCompanyID) {
		fields = append(fields, unknowndtrformat.FieldCompanyID)
	}
	if m.FieldCleared(unknowndtrformat.FieldParsedData) {
		fields = append(fields, unknowndtrformat.FieldParsedData)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *UnknownDtrFormatMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *UnknownDtrFormatMutation) ClearField(name string) error {
	switch name {
	case unknowndtrformat.FieldImageData:
		m.ClearImageData()
		return nil
	case unknowndtrformat.FieldCompanyID:
		m.ClearCompanyID()
		return nil
	case unknowndtrformat.FieldParsedData:
		m.ClearParsedData()
		return nil
	}
	return fmt.Errorf("unknown UnknownDtrFormat nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *UnknownDtrFormatMutation) ResetField(name string) error {
	switch name {
	case unknowndtrformat.FieldRawText:
		m.ResetRawText()
		return nil
	case unknowndtrformat.FieldImageData:
		m.ResetImageData()
		return nil
	case unknowndtrformat.FieldCompanyID:
		m.ResetCompanyID()
		return nil
	case unknowndtrformat.FieldParsedData:
		m.ResetParsedData()
		return nil
	case unknowndtrformat.FieldIsProcessed:
		m.ResetIsProcessed()
		return nil
	case unknowndtrformat.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown UnknownDtrFormat field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *UnknownDtrFormatMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *UnknownDtrFormatMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *UnknownDtrFormatMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *UnknownDtrFormatMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *UnknownDtrFormatMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *UnknownDtrFormatMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *UnknownDtrFormatMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown UnknownDtrFormat unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *UnknownDtrFormatMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown UnknownDtrFormat edge %s", name)
}
