package httpapi

import (
	"context"
	"net/url"
	"time"

	"github.com/cmlabs-hris/attendance-insights-go/internal/domain/leave"
)

// LeaveClient fetches approved leave intervals from GET /leaves.
type LeaveClient struct {
	client *Client
}

func NewLeaveClient(client *Client) leave.Provider {
	return &LeaveClient{client: client}
}

type leaveRow struct {
	EmployeeID     looseID `json:"employee_id"`
	StartDate      string  `json:"start_date"`
	DateFrom       string  `json:"date_from"`
	EndDate        string  `json:"end_date"`
	DateTo         string  `json:"date_to"`
	Status         string  `json:"status"`
	ApprovalStatus string  `json:"approval_status"`
	Reason         string  `json:"reason"`
}

func (c *LeaveClient) ListApproved(ctx context.Context, start, end time.Time) ([]leave.Interval, error) {
	query := url.Values{}
	query.Set("start_date", start.Format("2006-01-02"))
	query.Set("end_date", end.Format("2006-01-02"))
	query.Set("status", string(leave.ApprovalStatusApproved))

	var rows []leaveRow
	if err := c.client.getCollection(ctx, "/leaves", query, &rows); err != nil {
		return nil, err
	}

	intervals := make([]leave.Interval, 0, len(rows))
	for _, row := range rows {
		status := firstNonEmpty(row.Status, row.ApprovalStatus)
		if status == "" {
			// Endpoint pre-filters to approved but omits the field in
			// some generations; trust the filter.
			status = string(leave.ApprovalStatusApproved)
		}
		intervals = append(intervals, leave.Interval{
			EmployeeID: string(row.EmployeeID),
			StartDate:  parseLooseDate(firstNonEmpty(row.StartDate, row.DateFrom)),
			EndDate:    parseLooseDate(firstNonEmpty(row.EndDate, row.DateTo)),
			Status:     leave.ApprovalStatus(status),
			Reason:     row.Reason,
		})
	}
	return intervals, nil
}
