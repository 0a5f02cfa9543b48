// Code generated by ent, DO NOT EDIT.

package ent

import (
	"dtr-engine/gen/ent/unknowndtrformat"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

// UnknownDtrFormat is the model entity for the UnknownDtrFormat schema.
type UnknownDtrFormat struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// RawText holds the value of the "raw_text" field.
	RawText string `json:"raw_text,omitempty"`
	// ImageData holds the value of the "image_data" field.
	ImageData []byte `json:"image_data,omitempty"`
	// CompanyID holds the value of the "company_id" field.
	CompanyID *uuid.UUID `json:"company_id,omitempty"`
	// ParsedData holds the value of the "parsed_data" field.
	ParsedData map[string]string `json:"parsed_data,omitempty"`
	// IsProcessed holds the value of the "is_processed" field.
	IsProcessed bool `json:"is_processed,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*UnknownDtrFormat) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case unknowndtrformat.FieldCompanyID:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case unknowndtrformat.FieldImageData, unknowndtrformat.FieldParsedData:
			values[i] = new([]byte)
		case unknowndtrformat.FieldIsProcessed:
			values[i] = new(sql.NullBool)
		case unknowndtrformat.FieldRawText:
			values[i] = new(sql.NullString)
		case unknowndtrformat.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case unknowndtrformat.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the UnknownDtrFormat fields.
func (_m *UnknownDtrFormat) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case unknowndtrformat.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case unknowndtrformat.FieldRawText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field raw_text", values[i])
			} else if value.Valid {
				_m.RawText = value.String
			}
		case unknowndtrformat.FieldImageData:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field image_data", values[i])
			} else if value != nil {
				_m.ImageData = *value
			}
		case unknowndtrformat.FieldCompanyID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field company_id", values[i])
			} else if value.Valid {
				_m.CompanyID = new(uuid.UUID)
				*_m.CompanyID = *value.S.(*uuid.UUID)
			}
		case unknowndtrformat.FieldParsedData:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field parsed_data", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ParsedData); err != nil {
					return fmt.Errorf("unmarshal field parsed_data: %w", err)
				}
			}
		case unknowndtrformat.FieldIsProcessed:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_processed", values[i])
			} else if value.Valid {
				_m.IsProcessed = value.Bool
			}
		case unknowndtrformat.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the UnknownDtrFormat.
// This includes values selected through modifiers, order, etc.
func (_m *UnknownDtrFormat) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this UnknownDtrFormat.
// Note that you need to call UnknownDtrFormat.Unwrap() before calling this method if this UnknownDtrFormat
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *UnknownDtrFormat) Update() *UnknownDtrFormatUpdateOne {
	return NewUnknownDtrFormatClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the UnknownDtrFormat entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *UnknownDtrFormat) Unwrap() *UnknownDtrFormat {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: UnknownDtrFormat is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *UnknownDtrFormat) String() string {
	var builder strings.Builder
	builder.WriteString("UnknownDtrFormat(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("raw_text=")
	builder.WriteString(_m.RawText)
	builder.WriteString(", ")
	builder.WriteString("image_data=")
	builder.WriteString(fmt.Sprintf("%v", _m.ImageData))
	builder.WriteString(", ")
	if v := _m.CompanyID; v != nil {
		builder.WriteString("company_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("parsed_data=")
	builder.WriteString(fmt.Sprintf("%v", _m.ParsedData))
	builder.WriteString(", ")
	builder.WriteString("is_processed=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsProcessed))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// UnknownDtrFormats is a parsable slice of UnknownDtrFormat.
type UnknownDtrFormats []*UnknownDtrFormat
