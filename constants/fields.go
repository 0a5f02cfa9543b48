package constants

import "strings"

// Field is a logical DTR field that an extraction rule can target.
type Field string

// Stable values (stored verbatim in extraction_rules JSON).
const (
	FieldEmployeeName  Field = "employeeName"
	FieldEmployeeID    Field = "employeeId"
	FieldDate          Field = "date"
	FieldTimeIn        Field = "timeIn"
	FieldTimeOut       Field = "timeOut"
	FieldBreakHours    Field = "breakHours"
	FieldOvertimeHours Field = "overtimeHours"
)

var allFields = []Field{
	FieldEmployeeName,
	FieldEmployeeID,
	FieldDate,
	FieldTimeIn,
	FieldTimeOut,
	FieldBreakHours,
	FieldOvertimeHours,
}

// AsStringSlice returns all logical field names.
func AsStringSlice() []string {
	result := make([]string, len(allFields))
	for i, f := range allFields {
		result[i] = string(f)
	}
	return result
}

// IsKnownField reports whether name is a recognized logical field
// (case-sensitive; rule authors use the exact camelCase names).
func IsKnownField(name string) bool {
	for _, f := range allFields {
		if string(f) == name {
			return true
		}
	}
	return false
}

// NormalizeField trims surrounding whitespace from a rule key.
func NormalizeField(name string) string {
	return strings.TrimSpace(name)
}
