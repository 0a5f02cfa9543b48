package entity

import (
	"strconv"

	"github.com/google/uuid"
)

// Prediction is the transient output of the extraction pipeline for one
// document. It is never persisted as its own entity; callers hand it to
// downstream payroll logic or to the review queue.
type Prediction struct {
	Date          string     `json:"date,omitempty"`
	TimeIn        string     `json:"time_in,omitempty"`
	TimeOut       string     `json:"time_out,omitempty"`
	BreakHours    float64    `json:"break_hours"`
	OvertimeHours float64    `json:"overtime_hours"`
	RegularHours  float64    `json:"regular_hours"`
	EmployeeName  string     `json:"employee_name,omitempty"`
	EmployeeID    *int       `json:"employee_id,omitempty"`
	CompanyID     *uuid.UUID `json:"company_id,omitempty"`
	FormatID      *uuid.UUID `json:"format_id,omitempty"`
	Confidence    float32    `json:"confidence"`
	NeedsReview   bool       `json:"needs_review"`
	IsNewFormat   bool       `json:"is_new_format"`
	RawText       string     `json:"raw_text"`
}

// Fields returns the extracted values as a flat string map, used as the
// best-effort parsed_data attached to an intake record.
func (p *Prediction) Fields() map[string]string {
	out := map[string]string{}
	if p.EmployeeName != "" {
		out["employeeName"] = p.EmployeeName
	}
	if p.Date != "" {
		out["date"] = p.Date
	}
	if p.TimeIn != "" {
		out["timeIn"] = p.TimeIn
	}
	if p.TimeOut != "" {
		out["timeOut"] = p.TimeOut
	}
	if p.EmployeeID != nil {
		out["employeeId"] = strconv.Itoa(*p.EmployeeID)
	}
	out["breakHours"] = strconv.FormatFloat(p.BreakHours, 'g', -1, 64)
	out["overtimeHours"] = strconv.FormatFloat(p.OvertimeHours, 'g', -1, 64)
	return out
}
