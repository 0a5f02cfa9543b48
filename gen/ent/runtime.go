// Code generated by ent, DO NOT EDIT.

package ent

import (
	"dtr-engine/db/ent/schema"
	"dtr-engine/gen/ent/dtrformat"
	"dtr-engine/gen/ent/unknowndtrformat"
	"time"

	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	dtrformatFields := schema.DtrFormat{}.Fields()
	_ = dtrformatFields
	// dtrformatDescName is the schema descriptor for name field.
	dtrformatDescName := dtrformatFields[1].Descriptor()
	// dtrformat.NameValidator is a validator for the "name" field. It is called by the builders before save.
	dtrformat.NameValidator = dtrformatDescName.Validators[0].(func(string) error)
	// dtrformatDescPattern is the schema descriptor for pattern field.
	dtrformatDescPattern := dtrformatFields[3].Descriptor()
	// dtrformat.PatternValidator is a validator for the "pattern" field. It is called by the builders before save.
	dtrformat.PatternValidator = dtrformatDescPattern.Validators[0].(func(string) error)
	// dtrformatDescIsActive is the schema descriptor for is_active field.
	dtrformatDescIsActive := dtrformatFields[6].Descriptor()
	// dtrformat.DefaultIsActive holds the default value on creation for the is_active field.
	dtrformat.DefaultIsActive = dtrformatDescIsActive.Default.(bool)
	// dtrformatDescCreatedAt is the schema descriptor for created_at field.
	dtrformatDescCreatedAt := dtrformatFields[7].Descriptor()
	// dtrformat.DefaultCreatedAt holds the default value on creation for the created_at field.
	dtrformat.DefaultCreatedAt = dtrformatDescCreatedAt.Default.(func() time.Time)
	// dtrformatDescID is the schema descriptor for id field.
	dtrformatDescID := dtrformatFields[0].Descriptor()
	// dtrformat.DefaultID holds the default value on creation for the id field.
	dtrformat.DefaultID = dtrformatDescID.Default.(func() uuid.UUID)
	unknowndtrformatFields := schema.UnknownDtrFormat{}.Fields()
	_ = unknowndtrformatFields
	// unknowndtrformatDescRawText is the schema descriptor for raw_text field.
	unknowndtrformatDescRawText := unknowndtrformatFields[1].Descriptor()
	// unknowndtrformat.RawTextValidator is a validator for the "raw_text" field. It is called by the builders before save.
	unknowndtrformat.RawTextValidator = unknowndtrformatDescRawText.Validators[0].(func(string) error)
	// unknowndtrformatDescIsProcessed is the schema descriptor for is_processed field.
	unknowndtrformatDescIsProcessed := unknowndtrformatFields[5].Descriptor()
	// unknowndtrformat.DefaultIsProcessed holds the default value on creation for the is_processed field.
	unknowndtrformat.DefaultIsProcessed = unknowndtrformatDescIsProcessed.Default.(bool)
	// unknowndtrformatDescCreatedAt is the schema descriptor for created_at field.
	unknowndtrformatDescCreatedAt := unknowndtrformatFields[6].Descriptor()
	// unknowndtrformat.DefaultCreatedAt holds the default value on creation for the created_at field.
	unknowndtrformat.DefaultCreatedAt = unknowndtrformatDescCreatedAt.Default.(func() time.Time)
	// unknowndtrformatDescID is the schema descriptor for id field.
	unknowndtrformatDescID := unknowndtrformatFields[0].Descriptor()
	// unknowndtrformat.DefaultID holds the default value on creation for the id field.
	unknowndtrformat.DefaultID = unknowndtrformatDescID.Default.(func() uuid.UUID)
}
