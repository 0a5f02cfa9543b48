// Code generated by ent, DO NOT EDIT.

package ent

import (
	"dtr-engine/gen/ent/dtrformat"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

// DtrFormat is the model entity for the DtrFormat schema.
type DtrFormat struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// CompanyID holds the value of the "company_id" field.
	CompanyID *uuid.UUID `json:"company_id,omitempty"`
	// Pattern holds the value of the "pattern" field.
	Pattern string `json:"pattern,omitempty"`
	// ExtractionRules holds the value of the "extraction_rules" field.
	ExtractionRules map[string]string `json:"extraction_rules,omitempty"`
	// Example holds the value of the "example" field.
	Example string `json:"example,omitempty"`
	// IsActive holds the value of the "is_active" field.
	IsActive bool `json:"is_active,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*DtrFormat) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case dtrformat.FieldCompanyID:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case dtrformat.FieldExtractionRules:
			values[i] = new([]byte)
		case dtrformat.FieldIsActive:
			values[i] = new(sql.NullBool)
		case dtrformat.FieldName, dtrformat.FieldPattern, dtrformat.FieldExample:
			values[i] = new(sql.NullString)
		case dtrformat.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case dtrformat.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the DtrFormat fields.
func (_m *DtrFormat) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case dtrformat.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case dtrformat.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case dtrformat.FieldCompanyID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field company_id", values[i])
			} else if value.Valid {
				_m.CompanyID = new(uuid.UUID)
				*_m.CompanyID = *value.S.(*uuid.UUID)
			}
		case dtrformat.FieldPattern:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field pattern", values[i])
			} else if value.Valid {
				_m.Pattern = value.String
			}
		case dtrformat.FieldExtractionRules:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field extraction_rules", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ExtractionRules); err != nil {
					return fmt.Errorf("unmarshal field extraction_rules: %w", err)
				}
			}
		case dtrformat.FieldExample:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field example", values[i])
			} else if value.Valid {
				_m.Example = value.String
			}
		case dtrformat.FieldIsActive:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_active", values[i])
			} else if value.Valid {
				_m.IsActive = value.Bool
			}
		case dtrformat.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the DtrFormat.
// This includes values selected through modifiers, order, etc.
func (_m *DtrFormat) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this DtrFormat.
// Note that you need to call DtrFormat.Unwrap() before calling this method if this DtrFormat
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *DtrFormat) Update() *DtrFormatUpdateOne {
	return NewDtrFormatClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the DtrFormat entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *DtrFormat) Unwrap() *DtrFormat {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: DtrFormat is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *DtrFormat) String() string {
	var builder strings.Builder
	builder.WriteString("DtrFormat(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	if v := _m.CompanyID; v != nil {
		builder.WriteString("company_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("pattern=")
	builder.WriteString(_m.Pattern)
	builder.WriteString(", ")
	builder.WriteString("extraction_rules=")
	builder.WriteString(fmt.Sprintf("%v", _m.ExtractionRules))
	builder.WriteString(", ")
	builder.WriteString("example=")
	builder.WriteString(_m.Example)
	builder.WriteString(", ")
	builder.WriteString("is_active=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsActive))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// DtrFormats is a parsable slice of DtrFormat.
type DtrFormats []*DtrFormat
