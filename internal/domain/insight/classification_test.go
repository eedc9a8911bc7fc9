package insight

import (
	"testing"
	"time"

	"github.com/cmlabs-hris/attendance-insights-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-insights-go/internal/domain/leave"
	"github.com/cmlabs-hris/attendance-insights-go/internal/domain/roster"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02", value)
	require.NoError(t, err)
	return parsed.UTC()
}

func activeEmployee(id string) roster.Employee {
	return roster.Employee{ID: id, FirstName: "First" + id, LastName: "Last" + id, EmploymentStatus: roster.EmploymentStatusActive}
}

func TestClassify_Scenario_LateLeaveAbsent(t *testing.T) {
	t.Parallel()
	today := day(t, "2024-03-11")

	employees := []roster.Employee{activeEmployee("A"), activeEmployee("B"), activeEmployee("C")}
	records := []attendance.Record{
		{EmployeeID: "A", Date: today, Status: attendance.StatusLate},
	}
	leaves := []leave.Interval{
		{EmployeeID: "B", StartDate: today.AddDate(0, 0, -2), EndDate: today.AddDate(0, 0, 2), Status: leave.ApprovalStatusApproved, Reason: "family event"},
	}

	result := Classify(employees, records, leaves, today)

	require.Len(t, result, 3)
	assert.Equal(t, StatusLate, result["A"].Status)
	assert.Equal(t, StatusLeave, result["B"].Status)
	assert.Equal(t, "family event", result["B"].LeaveReason)
	assert.Equal(t, StatusAbsent, result["C"].Status)

	counts := Rollup(result)
	assert.Equal(t, int64(0), counts.Present)
	assert.Equal(t, int64(1), counts.Late)
	assert.Equal(t, int64(0), counts.Undertime)
	assert.Equal(t, int64(1), counts.OnLeave)
	assert.Equal(t, int64(1), counts.Absent)
}

func TestClassify_AttendancePrecedenceOverLeave(t *testing.T) {
	t.Parallel()
	today := day(t, "2024-03-11")

	employees := []roster.Employee{activeEmployee("D")}
	records := []attendance.Record{
		{EmployeeID: "D", Date: today, Status: attendance.StatusPresent, TimeIn: "08:00"},
	}
	leaves := []leave.Interval{
		{EmployeeID: "D", StartDate: today, EndDate: today, Status: leave.ApprovalStatusApproved},
	}

	result := Classify(employees, records, leaves, today)

	require.Len(t, result, 1)
	assert.Equal(t, StatusPresent, result["D"].Status)
	assert.Equal(t, "08:00", result["D"].TimeIn)
	assert.Empty(t, result["D"].LeaveReason)
}

func TestClassify_UndertimePrecedenceOverLeave(t *testing.T) {
	t.Parallel()
	today := day(t, "2024-03-11")

	employees := []roster.Employee{activeEmployee("U")}
	records := []attendance.Record{
		{EmployeeID: "U", Date: today, Status: attendance.StatusUndertime, TimeIn: "08:00", TimeOut: "14:00"},
	}
	leaves := []leave.Interval{
		{EmployeeID: "U", StartDate: today, EndDate: today, Status: leave.ApprovalStatusApproved},
	}

	result := Classify(employees, records, leaves, today)

	assert.Equal(t, StatusUndertime, result["U"].Status)
}

func TestClassify_ConflictingDuplicates_LateWins(t *testing.T) {
	t.Parallel()
	today := day(t, "2024-03-11")
	employees := []roster.Employee{activeEmployee("A")}

	// Priority must hold regardless of row order.
	orderings := [][]attendance.Record{
		{
			{EmployeeID: "A", Date: today, Status: attendance.StatusLate, TimeIn: "09:12"},
			{EmployeeID: "A", Date: today, Status: attendance.StatusPresent, TimeIn: "08:00"},
		},
		{
			{EmployeeID: "A", Date: today, Status: attendance.StatusPresent, TimeIn: "08:00"},
			{EmployeeID: "A", Date: today, Status: attendance.StatusLate, TimeIn: "09:12"},
		},
	}

	for _, records := range orderings {
		result := Classify(employees, records, nil, today)
		require.Len(t, result, 1)
		assert.Equal(t, StatusLate, result["A"].Status)
		assert.Equal(t, "09:12", result["A"].TimeIn)
	}
}

func TestClassify_ConflictingDuplicates_UndertimeBeatsPresent(t *testing.T) {
	t.Parallel()
	today := day(t, "2024-03-11")
	employees := []roster.Employee{activeEmployee("A")}
	records := []attendance.Record{
		{EmployeeID: "A", Date: today, Status: attendance.StatusPresent},
		{EmployeeID: "A", Date: today, Status: attendance.StatusUndertime},
	}

	result := Classify(employees, records, nil, today)

	assert.Equal(t, StatusUndertime, result["A"].Status)
}

func TestClassify_DuplicateSameStatus_KeepsFirstTimes(t *testing.T) {
	t.Parallel()
	today := day(t, "2024-03-11")
	employees := []roster.Employee{activeEmployee("A")}
	records := []attendance.Record{
		{EmployeeID: "A", Date: today, Status: attendance.StatusPresent, TimeIn: "08:00"},
		{EmployeeID: "A", Date: today, Status: attendance.StatusPresent, TimeIn: "10:30"},
	}

	result := Classify(employees, records, nil, today)

	assert.Equal(t, "08:00", result["A"].TimeIn)
}

func TestClassify_InactiveEmployeesExcluded(t *testing.T) {
	t.Parallel()
	today := day(t, "2024-03-11")

	inactive := roster.Employee{ID: "X", EmploymentStatus: roster.EmploymentStatusInactive}
	employees := []roster.Employee{activeEmployee("A"), inactive}
	records := []attendance.Record{
		{EmployeeID: "X", Date: today, Status: attendance.StatusPresent, TimeIn: "08:00"},
	}
	leaves := []leave.Interval{
		{EmployeeID: "X", StartDate: today, EndDate: today, Status: leave.ApprovalStatusApproved},
	}

	result := Classify(employees, records, leaves, today)

	require.Len(t, result, 1)
	_, found := result["X"]
	assert.False(t, found)
	assert.Equal(t, StatusAbsent, result["A"].Status)
}

func TestClassify_BlankStatusCountsAsActive(t *testing.T) {
	t.Parallel()
	today := day(t, "2024-03-11")

	employees := []roster.Employee{{ID: "B"}}

	result := Classify(employees, nil, nil, today)

	require.Len(t, result, 1)
	assert.Equal(t, StatusAbsent, result["B"].Status)
}

func TestClassify_ClockTimeImpliesPresent(t *testing.T) {
	t.Parallel()
	today := day(t, "2024-03-11")
	employees := []roster.Employee{activeEmployee("A"), activeEmployee("B"), activeEmployee("C")}
	records := []attendance.Record{
		// Unknown tag but a real clock-in.
		{EmployeeID: "A", Date: today, Status: "checked", TimeIn: "07:58"},
		// Zero placeholder clocks carry no time.
		{EmployeeID: "B", Date: today, Status: "", TimeIn: "00:00:00"},
		{EmployeeID: "C", Date: today, Status: "", TimeOut: "0"},
	}

	result := Classify(employees, records, nil, today)

	assert.Equal(t, StatusPresent, result["A"].Status)
	assert.Equal(t, StatusAbsent, result["B"].Status)
	assert.Equal(t, StatusAbsent, result["C"].Status)
}

func TestClassify_UnknownTagDoesNotBlockLeave(t *testing.T) {
	t.Parallel()
	today := day(t, "2024-03-11")
	employees := []roster.Employee{activeEmployee("A")}
	records := []attendance.Record{
		{EmployeeID: "A", Date: today, Status: "pending_review"},
	}
	leaves := []leave.Interval{
		{EmployeeID: "A", StartDate: today, EndDate: today, Status: leave.ApprovalStatusApproved},
	}

	result := Classify(employees, records, leaves, today)

	assert.Equal(t, StatusLeave, result["A"].Status)
}

func TestClassify_MalformedRowsSkipped(t *testing.T) {
	t.Parallel()
	today := day(t, "2024-03-11")

	employees := []roster.Employee{activeEmployee("A"), activeEmployee("B")}
	// No id, zero date, wrong day, not on roster.
	records := []attendance.Record{
		{EmployeeID: "", Date: today, Status: attendance.StatusPresent},
		{EmployeeID: "A", Status: attendance.StatusPresent},
		{EmployeeID: "A", Date: today.AddDate(0, 0, 1), Status: attendance.StatusPresent},
		{EmployeeID: "ghost", Date: today, Status: attendance.StatusPresent},
	}
	// Zero start, no id, not approved.
	leaves := []leave.Interval{
		{EmployeeID: "B", EndDate: today, Status: leave.ApprovalStatusApproved},
		{EmployeeID: "", StartDate: today, EndDate: today, Status: leave.ApprovalStatusApproved},
		{EmployeeID: "B", StartDate: today, EndDate: today, Status: leave.ApprovalStatusWaiting},
	}

	result := Classify(employees, records, leaves, today)

	require.Len(t, result, 2)
	assert.Equal(t, StatusAbsent, result["A"].Status)
	assert.Equal(t, StatusAbsent, result["B"].Status)
}

func TestClassify_EveryActiveEmployeeBucketedOnce(t *testing.T) {
	t.Parallel()
	today := day(t, "2024-03-11")

	employees := []roster.Employee{
		activeEmployee("A"), activeEmployee("B"), activeEmployee("C"),
		activeEmployee("D"), activeEmployee("E"),
		{ID: "Z", EmploymentStatus: "resigned"},
	}
	records := []attendance.Record{
		{EmployeeID: "A", Date: today, Status: attendance.StatusPresent, TimeIn: "08:01"},
		{EmployeeID: "B", Date: today, Status: attendance.StatusLate, TimeIn: "09:40"},
		{EmployeeID: "B", Date: today, Status: attendance.StatusPresent, TimeIn: "09:40"},
		{EmployeeID: "C", Date: today, Status: attendance.StatusUndertime},
		{EmployeeID: "Z", Date: today, Status: attendance.StatusPresent},
	}
	leaves := []leave.Interval{
		{EmployeeID: "C", StartDate: today, EndDate: today, Status: leave.ApprovalStatusApproved},
		{EmployeeID: "D", StartDate: today.AddDate(0, 0, -1), EndDate: today, Status: leave.ApprovalStatusApproved},
	}

	result := Classify(employees, records, leaves, today)

	// Exactly the five active employees, each in exactly one bucket.
	require.Len(t, result, 5)
	for _, id := range []string{"A", "B", "C", "D", "E"} {
		_, found := result[id]
		assert.True(t, found, "missing %s", id)
	}

	counts := Rollup(result)
	sum := counts.Present + counts.Late + counts.Undertime + counts.OnLeave + counts.Absent
	assert.Equal(t, counts.TotalActive, sum)
	assert.Equal(t, counts.Absent, counts.TotalActive-(counts.Present+counts.Late+counts.Undertime+counts.OnLeave))
}

func TestClassify_LargeRosterFullyBucketed(t *testing.T) {
	t.Parallel()
	today := day(t, "2024-03-11")

	var employees []roster.Employee
	var records []attendance.Record
	var intervals []leave.Interval
	for i := 0; i < 60; i++ {
		id := uuid.NewString()
		employees = append(employees, roster.Employee{ID: id})
		switch i % 4 {
		case 0:
			records = append(records, attendance.Record{EmployeeID: id, Date: today, Status: attendance.StatusPresent, TimeIn: "08:00"})
		case 1:
			records = append(records, attendance.Record{EmployeeID: id, Date: today, Status: attendance.StatusLate, TimeIn: "09:30"})
			// Conflicting duplicate plus an overlapping leave for good measure.
			records = append(records, attendance.Record{EmployeeID: id, Date: today, Status: attendance.StatusPresent})
			intervals = append(intervals, leave.Interval{EmployeeID: id, StartDate: today, EndDate: today, Status: leave.ApprovalStatusApproved})
		case 2:
			intervals = append(intervals, leave.Interval{EmployeeID: id, StartDate: today.AddDate(0, 0, -3), EndDate: today.AddDate(0, 0, 3), Status: leave.ApprovalStatusApproved})
		}
	}

	result := Classify(employees, records, intervals, today)

	require.Len(t, result, 60)
	counts := Rollup(result)
	assert.Equal(t, int64(60), counts.TotalActive)
	assert.Equal(t, int64(15), counts.Present)
	assert.Equal(t, int64(15), counts.Late)
	assert.Equal(t, int64(15), counts.OnLeave)
	assert.Equal(t, int64(15), counts.Absent)
	assert.Equal(t, counts.TotalActive, counts.Present+counts.Late+counts.Undertime+counts.OnLeave+counts.Absent)
}

func TestClassify_Idempotent(t *testing.T) {
	t.Parallel()
	today := day(t, "2024-03-11")

	employees := []roster.Employee{activeEmployee("A"), activeEmployee("B")}
	records := []attendance.Record{
		{EmployeeID: "A", Date: today, Status: attendance.StatusLate, TimeIn: "09:15"},
	}
	leaves := []leave.Interval{
		{EmployeeID: "B", StartDate: today, EndDate: today, Status: leave.ApprovalStatusApproved},
	}

	first := Classify(employees, records, leaves, today)
	second := Classify(employees, records, leaves, today)

	assert.Equal(t, first, second)
}

func TestClassify_EmptyInputsEveryoneAbsent(t *testing.T) {
	t.Parallel()
	today := day(t, "2024-03-11")

	employees := []roster.Employee{activeEmployee("A"), activeEmployee("B")}

	result := Classify(employees, nil, nil, today)

	require.Len(t, result, 2)
	for _, cls := range result {
		assert.Equal(t, StatusAbsent, cls.Status)
	}
}
