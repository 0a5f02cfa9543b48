package export

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"dtr-engine/internal/entity"
)

func TestAttendanceXLSX(t *testing.T) {
	id := 12345
	preds := []*entity.Prediction{
		{
			EmployeeName: "John Smith",
			EmployeeID:   &id,
			Date:         "2023-05-15",
			TimeIn:       "08:30",
			TimeOut:      "17:30",
			BreakHours:   1,
			RegularHours: 8,
			Confidence:   0.85,
		},
		{
			Date:        "2023-05-16",
			NeedsReview: true,
			Confidence:  0.15,
		},
	}

	buf, err := NewService(nil).AttendanceXLSX(preds)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(buf))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Attendance")
	require.NoError(t, err)
	require.Len(t, rows, 3) // header + two predictions

	assert.Equal(t, "Employee Name", rows[0][0])
	assert.Equal(t, "John Smith", rows[1][0])
	assert.Equal(t, "12345", rows[1][1])
	assert.Equal(t, "2023-05-15", rows[1][2])
	assert.Equal(t, "08:30", rows[1][3])
	assert.Equal(t, "2023-05-16", rows[2][2])
}

func TestAttendanceXLSXEmpty(t *testing.T) {
	buf, err := NewService(nil).AttendanceXLSX(nil)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(buf))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Attendance")
	require.NoError(t, err)
	require.Len(t, rows, 1)
}
