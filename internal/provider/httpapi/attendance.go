package httpapi

import (
	"context"
	"net/url"
	"time"

	"github.com/cmlabs-hris/attendance-insights-go/internal/domain/attendance"
)

// AttendanceClient fetches raw attendance rows from GET /attendance.
type AttendanceClient struct {
	client *Client
}

func NewAttendanceClient(client *Client) attendance.Provider {
	return &AttendanceClient{client: client}
}

// attendanceRow mirrors the upstream attendance payload. The date field
// is named differently per endpoint generation (date, attendance_date,
// work_date), as are the clock fields.
type attendanceRow struct {
	EmployeeID     looseID `json:"employee_id"`
	Date           string  `json:"date"`
	AttendanceDate string  `json:"attendance_date"`
	WorkDate       string  `json:"work_date"`
	Status         string  `json:"status"`
	TimeIn         string  `json:"time_in"`
	ClockIn        string  `json:"clock_in"`
	TimeOut        string  `json:"time_out"`
	ClockOut       string  `json:"clock_out"`
}

func (c *AttendanceClient) ListByDate(ctx context.Context, date time.Time) ([]attendance.Record, error) {
	return c.ListByRange(ctx, date, date)
}

func (c *AttendanceClient) ListByRange(ctx context.Context, start, end time.Time) ([]attendance.Record, error) {
	query := url.Values{}
	query.Set("start_date", start.Format("2006-01-02"))
	query.Set("end_date", end.Format("2006-01-02"))

	var rows []attendanceRow
	if err := c.client.getCollection(ctx, "/attendance", query, &rows); err != nil {
		return nil, err
	}

	records := make([]attendance.Record, 0, len(rows))
	for _, row := range rows {
		records = append(records, attendance.Record{
			EmployeeID: string(row.EmployeeID),
			Date:       parseLooseDate(firstNonEmpty(row.Date, row.AttendanceDate, row.WorkDate)),
			Status:     row.Status,
			TimeIn:     firstNonEmpty(row.TimeIn, row.ClockIn),
			TimeOut:    firstNonEmpty(row.TimeOut, row.ClockOut),
		})
	}
	return records, nil
}
