package leave

import "time"

type ApprovalStatus string

const (
	ApprovalStatusWaiting  ApprovalStatus = "waiting_approval"
	ApprovalStatusApproved ApprovalStatus = "approved"
	ApprovalStatusRejected ApprovalStatus = "rejected"
)

// Interval is an approved (or pending) leave request reduced to the shape
// classification needs: an inclusive calendar date range during which the
// employee is excused from attendance. StartDate and EndDate are midnight
// UTC calendar days.
type Interval struct {
	EmployeeID string
	StartDate  time.Time
	EndDate    time.Time
	Status     ApprovalStatus
	Reason     string
}

// Covers reports whether date falls inside the inclusive [StartDate,
// EndDate] range. Intervals with a zero bound never cover anything.
func (i Interval) Covers(date time.Time) bool {
	if i.StartDate.IsZero() || i.EndDate.IsZero() {
		return false
	}
	return !date.Before(i.StartDate) && !date.After(i.EndDate)
}
