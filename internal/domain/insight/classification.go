package insight

import (
	"strings"
	"time"

	"github.com/cmlabs-hris/attendance-insights-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-insights-go/internal/domain/leave"
	"github.com/cmlabs-hris/attendance-insights-go/internal/domain/roster"
)

// Status is the daily bucket an active employee lands in. The five
// buckets are mutually exclusive and together cover the whole active
// roster for a given day.
type Status string

const (
	StatusPresent   Status = "present"
	StatusLate      Status = "late"
	StatusUndertime Status = "undertime"
	StatusLeave     Status = "leave"
	StatusAbsent    Status = "absent"
)

// DailyClassification is the derived per-employee result for one day. It
// is recomputed on every request and never persisted.
type DailyClassification struct {
	EmployeeID string
	Date       time.Time
	Status     Status
	TimeIn     string
	TimeOut    string
	// LeaveReason carries the reason text of the covering interval when
	// Status is leave, empty otherwise.
	LeaveReason string
}

// attendanceRank orders conflicting same-day attendance tags. When a
// pathological dataset reports several rows for one employee and date,
// the highest rank wins: late over undertime over present. Ties keep the
// first row seen so clock times stay stable.
var attendanceRank = map[Status]int{
	StatusPresent:   1,
	StatusUndertime: 2,
	StatusLate:      3,
}

// Classify buckets every active employee for targetDate into exactly one
// of present, late, undertime, leave or absent.
//
// Attendance rows bucket first; an approved leave interval covering the
// day applies only to employees not already bucketed by attendance; every
// remaining active employee is absent. Malformed rows (blank employee id,
// missing or mismatched date) contribute to no bucket and never abort the
// run. The result covers the active roster exactly once.
func Classify(
	employees []roster.Employee,
	records []attendance.Record,
	leaves []leave.Interval,
	targetDate time.Time,
) map[string]DailyClassification {
	active := make(map[string]struct{}, len(employees))
	for _, emp := range employees {
		if emp.ID == "" || !emp.IsActive() {
			continue
		}
		active[emp.ID] = struct{}{}
	}

	byAttendance := make(map[string]DailyClassification)
	for _, rec := range records {
		if rec.EmployeeID == "" {
			continue
		}
		if _, ok := active[rec.EmployeeID]; !ok {
			continue
		}
		if rec.Date.IsZero() || !sameDay(rec.Date, targetDate) {
			continue
		}

		status, ok := attendanceBucket(rec)
		if !ok {
			// Unknown tag: no bucket, and it does not block a later
			// leave match either.
			continue
		}

		current, seen := byAttendance[rec.EmployeeID]
		if seen && attendanceRank[status] <= attendanceRank[current.Status] {
			continue
		}
		byAttendance[rec.EmployeeID] = DailyClassification{
			EmployeeID: rec.EmployeeID,
			Date:       targetDate,
			Status:     status,
			TimeIn:     rec.TimeIn,
			TimeOut:    rec.TimeOut,
		}
	}

	result := make(map[string]DailyClassification, len(active))
	for id, cls := range byAttendance {
		result[id] = cls
	}

	for _, interval := range leaves {
		if interval.EmployeeID == "" || interval.Status != leave.ApprovalStatusApproved {
			continue
		}
		if _, ok := active[interval.EmployeeID]; !ok {
			continue
		}
		if !interval.Covers(targetDate) {
			continue
		}
		// Attendance takes precedence over leave.
		if _, bucketed := result[interval.EmployeeID]; bucketed {
			continue
		}
		result[interval.EmployeeID] = DailyClassification{
			EmployeeID:  interval.EmployeeID,
			Date:        targetDate,
			Status:      StatusLeave,
			LeaveReason: interval.Reason,
		}
	}

	// Absent is always the remainder, never tallied on its own, so the
	// partition over the active roster holds whatever upstream reports.
	for id := range active {
		if _, ok := result[id]; !ok {
			result[id] = DailyClassification{
				EmployeeID: id,
				Date:       targetDate,
				Status:     StatusAbsent,
			}
		}
	}

	return result
}

// attendanceBucket maps a raw attendance row to its classification
// bucket. A row with no recognized tag still counts as present when it
// carries a real clock-in or clock-out.
func attendanceBucket(rec attendance.Record) (Status, bool) {
	switch strings.TrimSpace(strings.ToLower(rec.Status)) {
	case attendance.StatusLate:
		return StatusLate, true
	case attendance.StatusUndertime:
		return StatusUndertime, true
	case attendance.StatusPresent:
		return StatusPresent, true
	}
	if hasClockValue(rec.TimeIn) || hasClockValue(rec.TimeOut) {
		return StatusPresent, true
	}
	return "", false
}

// hasClockValue reports whether a raw clock string carries an actual
// time. Upstream exports use "", "0" and all-zero placeholders such as
// "00:00:00" for missing values.
func hasClockValue(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	for _, r := range s {
		switch r {
		case '0', ':', '-', ' ', '.':
		default:
			return true
		}
	}
	return false
}

// sameDay compares two normalized calendar days.
func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
