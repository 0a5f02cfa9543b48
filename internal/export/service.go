package export

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/xuri/excelize/v2"

	"dtr-engine/internal/entity"
)

// Service produces XLSX bytes for a batch of attendance predictions, for
// hand-off to payroll or for operator spot checks.
type Service struct {
	logger *slog.Logger
}

func NewService(logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{logger: logger}
}

// AttendanceXLSX returns an XLSX workbook (as bytes) for the given
// predictions, one row per document in input order.
func (s *Service) AttendanceXLSX(preds []*entity.Prediction) ([]byte, error) {
	start := time.Now()

	f := excelize.NewFile()
	const sheet = "Attendance"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		_, err := f.NewSheet(sheet)
		if err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"Employee Name",
		"Employee ID",
		"Date",
		"Time In",
		"Time Out",
		"Break Hours",
		"Overtime Hours",
		"Regular Hours",
		"Confidence",
		"Needs Review",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, p := range preds {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}

		write(1, p.EmployeeName)
		if p.EmployeeID != nil {
			write(2, *p.EmployeeID)
		} else {
			write(2, "")
		}
		write(3, p.Date)
		write(4, p.TimeIn)
		write(5, p.TimeOut)
		write(6, p.BreakHours)
		write(7, p.OvertimeHours)
		write(8, p.RegularHours)
		write(9, fmt.Sprintf("%.2f", p.Confidence))
		write(10, p.NeedsReview)

		row++
	}

	// Widen a few columns
	_ = f.SetColWidth(sheet, "A", "A", 28) // name
	_ = f.SetColWidth(sheet, "B", "B", 12) // id
	_ = f.SetColWidth(sheet, "C", "C", 14) // date
	_ = f.SetColWidth(sheet, "D", "E", 10) // times
	_ = f.SetColWidth(sheet, "F", "H", 14) // hours
	_ = f.SetColWidth(sheet, "I", "J", 12) // review flags

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"rows", len(preds),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}
