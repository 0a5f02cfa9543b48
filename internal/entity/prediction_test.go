package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPredictionFields(t *testing.T) {
	id := 777
	p := &Prediction{
		EmployeeName:  "Jane Molina",
		EmployeeID:    &id,
		Date:          "2023-05-15",
		TimeIn:        "08:30",
		TimeOut:       "17:30",
		BreakHours:    0.5,
		OvertimeHours: 2,
	}

	got := p.Fields()
	assert.Equal(t, map[string]string{
		"employeeName":  "Jane Molina",
		"employeeId":    "777",
		"date":          "2023-05-15",
		"timeIn":        "08:30",
		"timeOut":       "17:30",
		"breakHours":    "0.5",
		"overtimeHours": "2",
	}, got)
}

func TestPredictionFieldsOmitsUnsetStrings(t *testing.T) {
	p := &Prediction{BreakHours: 1}
	got := p.Fields()
	assert.Equal(t, map[string]string{
		"breakHours":    "1",
		"overtimeHours": "0",
	}, got)
	assert.NotContains(t, got, "employeeId")
	assert.NotContains(t, got, "employeeName")
}
