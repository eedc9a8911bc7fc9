package attendance

import "time"

// Status tags as reported by the upstream attendance service. Unknown tags
// are carried through untouched; the classifier decides what to do with
// them.
const (
	StatusPresent   = "present"
	StatusLate      = "late"
	StatusUndertime = "undertime"
	StatusAbsent    = "absent"
	StatusLeave     = "leave"
)

// Record is one raw attendance row for an employee on a calendar date.
// Date is normalized to midnight UTC and stands for the local calendar
// day; TimeIn/TimeOut are the clock strings as reported upstream
// (e.g. "08:03"), empty when not recorded.
type Record struct {
	EmployeeID string
	Date       time.Time
	Status     string
	TimeIn     string
	TimeOut    string
}
