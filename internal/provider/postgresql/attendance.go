package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/attendance-insights-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-insights-go/internal/pkg/database"
)

type AttendanceRepository struct {
	db database.Querier
}

func NewAttendanceRepository(db database.Querier) attendance.Provider {
	return &AttendanceRepository{db: db}
}

func (r *AttendanceRepository) ListByDate(ctx context.Context, date time.Time) ([]attendance.Record, error) {
	return r.ListByRange(ctx, date, date)
}

func (r *AttendanceRepository) ListByRange(ctx context.Context, start, end time.Time) ([]attendance.Record, error) {
	query := `
		SELECT employee_id, date, COALESCE(status, ''),
			COALESCE(to_char(clock_in, 'HH24:MI'), ''),
			COALESCE(to_char(clock_out, 'HH24:MI'), '')
		FROM attendances
		WHERE date >= $1 AND date <= $2
	`

	rows, err := r.db.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to query attendance: %w", err)
	}
	defer rows.Close()

	var records []attendance.Record
	for rows.Next() {
		var rec attendance.Record
		var date time.Time
		if err := rows.Scan(&rec.EmployeeID, &date, &rec.Status, &rec.TimeIn, &rec.TimeOut); err != nil {
			return nil, fmt.Errorf("failed to scan attendance row: %w", err)
		}
		rec.Date = time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read attendance rows: %w", err)
	}
	return records, nil
}
