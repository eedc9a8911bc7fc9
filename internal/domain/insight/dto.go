package insight

// ========== DAILY CLASSIFICATION ==========

// ClassificationItem is one employee row in the daily view. Clock times
// appear only for attendance-backed buckets; the leave reason only when
// the bucket is leave.
type ClassificationItem struct {
	EmployeeID   string `json:"employee_id"`
	EmployeeName string `json:"employee_name"`
	Department   string `json:"department"`
	Status       string `json:"status"`
	TimeIn       string `json:"time_in,omitempty"`
	TimeOut      string `json:"time_out,omitempty"`
	LeaveReason  string `json:"leave_reason,omitempty"`
}

// DailyInsightResponse is the full per-employee classification for a day.
type DailyInsightResponse struct {
	Date  string               `json:"date"` // Format: "YYYY-MM-DD"
	Items []ClassificationItem `json:"items"`

	// Degraded lists upstream sources that failed and were replaced by
	// empty collections. Surfaced in the response meta, not the body.
	Degraded []string `json:"-"`
}

// ========== SUMMARY (cards / pie chart) ==========

// SummaryCounts carries the bucket totals plus the percentages the
// summary cards render.
type SummaryCounts struct {
	Present          int64   `json:"present"`
	Late             int64   `json:"late"`
	Undertime        int64   `json:"undertime"`
	OnLeave          int64   `json:"on_leave"`
	Absent           int64   `json:"absent"`
	TotalActive      int64   `json:"total_active"`
	PresentPercent   float64 `json:"present_percent"`
	LatePercent      float64 `json:"late_percent"`
	UndertimePercent float64 `json:"undertime_percent"`
	OnLeavePercent   float64 `json:"on_leave_percent"`
	AbsentPercent    float64 `json:"absent_percent"`
}

// DepartmentSummary is one department's slice of the daily totals.
type DepartmentSummary struct {
	Department string `json:"department"`
	SummaryCounts
}

// SummaryResponse is the aggregate view for one day, optionally broken
// down by department.
type SummaryResponse struct {
	Date string `json:"date"` // Format: "YYYY-MM-DD"
	SummaryCounts
	Departments []DepartmentSummary `json:"departments,omitempty"`

	Degraded []string `json:"-"`
}

// ========== RANGE REPORT ==========

// DaySummary is one day's aggregates inside a range report.
type DaySummary struct {
	Date string `json:"date"` // Format: "YYYY-MM-DD"
	SummaryCounts
}

// LeaveRangeItem is one consolidated leave row: adjacent leave days for
// the same employee merged into a single start-to-end span.
type LeaveRangeItem struct {
	EmployeeID   string `json:"employee_id"`
	EmployeeName string `json:"employee_name"`
	Department   string `json:"department"`
	Reason       string `json:"reason,omitempty"`
	StartDate    string `json:"start_date"` // Format: "YYYY-MM-DD"
	EndDate      string `json:"end_date"`   // Format: "YYYY-MM-DD"
	Days         int    `json:"days"`
}

// RangeInsightResponse is the per-day aggregate series over an inclusive
// date range plus the consolidated leave rows for the same window.
type RangeInsightResponse struct {
	StartDate   string           `json:"start_date"`
	EndDate     string           `json:"end_date"`
	Days        []DaySummary     `json:"days"`
	LeaveRanges []LeaveRangeItem `json:"leave_ranges"`

	Degraded []string `json:"-"`
}

// LeaveRangesResponse is the consolidated leave list on its own.
type LeaveRangesResponse struct {
	StartDate string           `json:"start_date"`
	EndDate   string           `json:"end_date"`
	Ranges    []LeaveRangeItem `json:"ranges"`

	Degraded []string `json:"-"`
}
