package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/attendance-insights-go/internal/domain/leave"
	"github.com/cmlabs-hris/attendance-insights-go/internal/pkg/database"
)

type LeaveRepository struct {
	db database.Querier
}

func NewLeaveRepository(db database.Querier) leave.Provider {
	return &LeaveRepository{db: db}
}

// ListApproved returns approved intervals overlapping [start, end].
func (r *LeaveRepository) ListApproved(ctx context.Context, start, end time.Time) ([]leave.Interval, error) {
	query := `
		SELECT employee_id, start_date, end_date, status, COALESCE(reason, '')
		FROM leave_requests
		WHERE status = 'approved'
			AND start_date <= $2
			AND end_date >= $1
	`

	rows, err := r.db.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to query leave requests: %w", err)
	}
	defer rows.Close()

	var intervals []leave.Interval
	for rows.Next() {
		var iv leave.Interval
		var startDate, endDate time.Time
		var status string
		if err := rows.Scan(&iv.EmployeeID, &startDate, &endDate, &status, &iv.Reason); err != nil {
			return nil, fmt.Errorf("failed to scan leave request: %w", err)
		}
		iv.StartDate = time.Date(startDate.Year(), startDate.Month(), startDate.Day(), 0, 0, 0, 0, time.UTC)
		iv.EndDate = time.Date(endDate.Year(), endDate.Month(), endDate.Day(), 0, 0, 0, 0, time.UTC)
		iv.Status = leave.ApprovalStatus(status)
		intervals = append(intervals, iv)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read leave requests: %w", err)
	}
	return intervals, nil
}
