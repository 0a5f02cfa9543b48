// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// DtrFormat is the predicate function for dtrformat builders.
type DtrFormat func(*sql.Selector)

// UnknownDtrFormat is the predicate function for unknowndtrformat builders.
type UnknownDtrFormat func(*sql.Selector)
