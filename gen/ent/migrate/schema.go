// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// DtrFormatsColumns holds the columns for the "dtr_formats" table.
	DtrFormatsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString},
		{Name: "company_id", Type: field.TypeUUID, Nullable: true},
		{Name: "pattern", Type: field.TypeString, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "extraction_rules", Type: field.TypeJSON},
		{Name: "example", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "is_active", Type: field.TypeBool, Default: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// DtrFormatsTable holds the schema information for the "dtr_formats" table.
	DtrFormatsTable = &schema.Table{
		Name:       "dtr_formats",
		Columns:    DtrFormatsColumns,
		PrimaryKey: []*schema.Column{DtrFormatsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "dtrformat_company_id_is_active",
				Unique:  false,
				Columns: []*schema.Column{DtrFormatsColumns[2], DtrFormatsColumns[6]},
			},
			{
				Name:    "dtrformat_created_at",
				Unique:  false,
				Columns: []*schema.Column{DtrFormatsColumns[7]},
			},
		},
	}
	// UnknownDtrFormatsColumns holds the columns for the "unknown_dtr_formats" table.
	UnknownDtrFormatsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "raw_text", Type: field.TypeString, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "image_data", Type: field.TypeBytes, Nullable: true},
		{Name: "company_id", Type: field.TypeUUID, Nullable: true},
		{Name: "parsed_data", Type: field.TypeJSON, Nullable: true},
		{Name: "is_processed", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
	}
	// UnknownDtrFormatsTable holds the schema information for the "unknown_dtr_formats" table.
	UnknownDtrFormatsTable = &schema.Table{
		Name:       "unknown_dtr_formats",
		Columns:    UnknownDtrFormatsColumns,
		PrimaryKey: []*schema.Column{UnknownDtrFormatsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "unknowndtrformat_is_processed_created_at",
				Unique:  false,
				Columns: []*schema.Column{UnknownDtrFormatsColumns[5], UnknownDtrFormatsColumns[6]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		DtrFormatsTable,
		UnknownDtrFormatsTable,
	}
)

func init() {
	DtrFormatsTable.Annotation = &entsql.Annotation{
		Table: "dtr_formats",
	}
	UnknownDtrFormatsTable.Annotation = &entsql.Annotation{
		Table: "unknown_dtr_formats",
	}
}
