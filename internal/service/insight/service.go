package insight

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"github.com/cmlabs-hris/attendance-insights-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-insights-go/internal/domain/insight"
	"github.com/cmlabs-hris/attendance-insights-go/internal/domain/leave"
	"github.com/cmlabs-hris/attendance-insights-go/internal/domain/roster"
	"golang.org/x/sync/errgroup"
)

// maxRangeDays caps range reports at one quarter; longer windows belong
// in offline exports.
const maxRangeDays = 92

const dateLayout = "2006-01-02"

type InsightServiceImpl struct {
	directory  roster.Directory
	attendance attendance.Provider
	leaves     leave.Provider
	logger     *slog.Logger
}

func NewInsightService(
	directory roster.Directory,
	attendanceProvider attendance.Provider,
	leaveProvider leave.Provider,
	logger *slog.Logger,
) insight.Service {
	return &InsightServiceImpl{
		directory:  directory,
		attendance: attendanceProvider,
		leaves:     leaveProvider,
		logger:     logger,
	}
}

// parseDate parses YYYY-MM-DD, defaulting to today's local calendar day.
// The result is normalized to midnight UTC so all downstream comparisons
// are calendar arithmetic.
func parseDate(date string) (time.Time, error) {
	if date == "" {
		return normalizeDay(time.Now()), nil
	}
	parsed, err := time.Parse(dateLayout, date)
	if err != nil {
		return time.Time{}, insight.ErrInvalidDate
	}
	return normalizeDay(parsed), nil
}

func normalizeDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// inputs is the joined result of the three upstream fetches. Degraded
// names the sources that failed and were replaced by empty collections.
type inputs struct {
	employees []roster.Employee
	records   []attendance.Record
	leaves    []leave.Interval
	degraded  []string
}

// fetchInputs fans out to the three providers and joins the results. A
// failed fetch degrades to an empty collection instead of failing the
// view: the dashboard renders with whatever arrived, and the response
// meta names what is missing.
func (s *InsightServiceImpl) fetchInputs(ctx context.Context, start, end time.Time) inputs {
	var in inputs
	var directoryDown, attendanceDown, leaveDown bool

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		employees, err := s.directory.ListEmployees(gCtx)
		if err != nil {
			s.logger.Warn("employee directory fetch failed", slog.Any("error", err))
			directoryDown = true
			return nil
		}
		in.employees = employees
		return nil
	})

	g.Go(func() error {
		var records []attendance.Record
		var err error
		if start.Equal(end) {
			records, err = s.attendance.ListByDate(gCtx, start)
		} else {
			records, err = s.attendance.ListByRange(gCtx, start, end)
		}
		if err != nil {
			s.logger.Warn("attendance fetch failed", slog.Any("error", err))
			attendanceDown = true
			return nil
		}
		in.records = records
		return nil
	})

	g.Go(func() error {
		intervals, err := s.leaves.ListApproved(gCtx, start, end)
		if err != nil {
			s.logger.Warn("leave fetch failed", slog.Any("error", err))
			leaveDown = true
			return nil
		}
		in.leaves = intervals
		return nil
	})

	// The goroutines swallow fetch errors, so Wait only joins.
	_ = g.Wait()

	if directoryDown {
		in.degraded = append(in.degraded, "directory")
	}
	if attendanceDown {
		in.degraded = append(in.degraded, "attendance")
	}
	if leaveDown {
		in.degraded = append(in.degraded, "leave")
	}
	return in
}

// GetDailyInsight returns the classification of every active employee for
// one day, sorted by last name, first name, then id.
func (s *InsightServiceImpl) GetDailyInsight(ctx context.Context, date string) (*insight.DailyInsightResponse, error) {
	day, err := parseDate(date)
	if err != nil {
		return nil, err
	}

	in := s.fetchInputs(ctx, day, day)
	classification := insight.Classify(in.employees, in.records, in.leaves, day)

	byID := employeeIndex(in.employees)
	items := make([]insight.ClassificationItem, 0, len(classification))
	for id, cls := range classification {
		emp := byID[id]
		items = append(items, insight.ClassificationItem{
			EmployeeID:   id,
			EmployeeName: emp.FullName(),
			Department:   emp.Department,
			Status:       string(cls.Status),
			TimeIn:       cls.TimeIn,
			TimeOut:      cls.TimeOut,
			LeaveReason:  cls.LeaveReason,
		})
	}
	sort.Slice(items, func(i, j int) bool {
		a, b := byID[items[i].EmployeeID], byID[items[j].EmployeeID]
		if a.LastName != b.LastName {
			return a.LastName < b.LastName
		}
		if a.FirstName != b.FirstName {
			return a.FirstName < b.FirstName
		}
		return items[i].EmployeeID < items[j].EmployeeID
	})

	return &insight.DailyInsightResponse{
		Date:     day.Format(dateLayout),
		Items:    items,
		Degraded: in.degraded,
	}, nil
}

// GetSummary returns the bucket totals for one day, optionally broken
// down per department.
func (s *InsightServiceImpl) GetSummary(ctx context.Context, date string, groupBy string) (*insight.SummaryResponse, error) {
	if groupBy != "" && groupBy != "department" {
		return nil, insight.ErrInvalidGroupBy
	}

	day, err := parseDate(date)
	if err != nil {
		return nil, err
	}

	in := s.fetchInputs(ctx, day, day)
	classification := insight.Classify(in.employees, in.records, in.leaves, day)

	resp := &insight.SummaryResponse{
		Date:          day.Format(dateLayout),
		SummaryCounts: summarize(insight.Rollup(classification)),
		Degraded:      in.degraded,
	}

	if groupBy == "department" {
		resp.Departments = departmentBreakdown(classification, in.employees)
	}
	return resp, nil
}

// GetRangeInsight returns one aggregate row per day of the inclusive
// range plus the consolidated leave rows for the same window.
func (s *InsightServiceImpl) GetRangeInsight(ctx context.Context, start, end string) (*insight.RangeInsightResponse, error) {
	from, to, err := parseRange(start, end)
	if err != nil {
		return nil, err
	}

	in := s.fetchInputs(ctx, from, to)
	days, leaveDays := s.classifyRange(in, from, to)

	return &insight.RangeInsightResponse{
		StartDate:   from.Format(dateLayout),
		EndDate:     to.Format(dateLayout),
		Days:        days,
		LeaveRanges: leaveRangeItems(insight.ConsolidateLeaveRanges(leaveDays)),
		Degraded:    in.degraded,
	}, nil
}

// GetLeaveRanges returns only the consolidated leave rows for the range.
func (s *InsightServiceImpl) GetLeaveRanges(ctx context.Context, start, end string) (*insight.LeaveRangesResponse, error) {
	from, to, err := parseRange(start, end)
	if err != nil {
		return nil, err
	}

	in := s.fetchInputs(ctx, from, to)
	_, leaveDays := s.classifyRange(in, from, to)

	return &insight.LeaveRangesResponse{
		StartDate: from.Format(dateLayout),
		EndDate:   to.Format(dateLayout),
		Ranges:    leaveRangeItems(insight.ConsolidateLeaveRanges(leaveDays)),
		Degraded:  in.degraded,
	}, nil
}

// classifyRange applies the daily classifier to every day of the range
// and collects the per-day aggregates plus the employee-days on leave.
func (s *InsightServiceImpl) classifyRange(in inputs, from, to time.Time) ([]insight.DaySummary, []insight.LeaveDay) {
	recordsByDay := make(map[string][]attendance.Record)
	for _, rec := range in.records {
		if rec.Date.IsZero() {
			continue
		}
		key := rec.Date.Format(dateLayout)
		recordsByDay[key] = append(recordsByDay[key], rec)
	}

	byID := employeeIndex(in.employees)

	var days []insight.DaySummary
	var leaveDays []insight.LeaveDay
	for day := from; !day.After(to); day = day.AddDate(0, 0, 1) {
		classification := insight.Classify(in.employees, recordsByDay[day.Format(dateLayout)], in.leaves, day)
		days = append(days, insight.DaySummary{
			Date:          day.Format(dateLayout),
			SummaryCounts: summarize(insight.Rollup(classification)),
		})
		for id, cls := range classification {
			if cls.Status != insight.StatusLeave {
				continue
			}
			emp := byID[id]
			leaveDays = append(leaveDays, insight.LeaveDay{
				EmployeeID: id,
				Date:       day,
				FirstName:  emp.FirstName,
				LastName:   emp.LastName,
				Department: emp.Department,
				Reason:     cls.LeaveReason,
			})
		}
	}
	return days, leaveDays
}

func parseRange(start, end string) (time.Time, time.Time, error) {
	if start == "" || end == "" {
		return time.Time{}, time.Time{}, insight.ErrInvalidDate
	}
	from, err := parseDate(start)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	to, err := parseDate(end)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if from.After(to) {
		return time.Time{}, time.Time{}, insight.ErrInvalidRange
	}
	// Both bounds are midnight UTC, so the division is an exact day count.
	if int(to.Sub(from).Hours()/24)+1 > maxRangeDays {
		return time.Time{}, time.Time{}, insight.ErrRangeTooLong
	}
	return from, to, nil
}

func employeeIndex(employees []roster.Employee) map[string]roster.Employee {
	byID := make(map[string]roster.Employee, len(employees))
	for _, emp := range employees {
		byID[emp.ID] = emp
	}
	return byID
}

// summarize attaches the card percentages to a rollup.
func summarize(counts insight.AggregateCounts) insight.SummaryCounts {
	s := insight.SummaryCounts{
		Present:     counts.Present,
		Late:        counts.Late,
		Undertime:   counts.Undertime,
		OnLeave:     counts.OnLeave,
		Absent:      counts.Absent,
		TotalActive: counts.TotalActive,
	}
	if counts.TotalActive > 0 {
		total := float64(counts.TotalActive)
		s.PresentPercent = float64(counts.Present) / total * 100
		s.LatePercent = float64(counts.Late) / total * 100
		s.UndertimePercent = float64(counts.Undertime) / total * 100
		s.OnLeavePercent = float64(counts.OnLeave) / total * 100
		s.AbsentPercent = float64(counts.Absent) / total * 100
	}
	return s
}

// departmentBreakdown splits one day's classification per department and
// rolls each slice up independently. Departments come out sorted by name;
// employees without one group under "unassigned".
func departmentBreakdown(classification map[string]insight.DailyClassification, employees []roster.Employee) []insight.DepartmentSummary {
	byID := employeeIndex(employees)

	perDept := make(map[string]map[string]insight.DailyClassification)
	for id, cls := range classification {
		dept := byID[id].Department
		if dept == "" {
			dept = "unassigned"
		}
		if perDept[dept] == nil {
			perDept[dept] = make(map[string]insight.DailyClassification)
		}
		perDept[dept][id] = cls
	}

	names := make([]string, 0, len(perDept))
	for dept := range perDept {
		names = append(names, dept)
	}
	sort.Strings(names)

	summaries := make([]insight.DepartmentSummary, 0, len(names))
	for _, dept := range names {
		summaries = append(summaries, insight.DepartmentSummary{
			Department:    dept,
			SummaryCounts: summarize(insight.Rollup(perDept[dept])),
		})
	}
	return summaries
}

func leaveRangeItems(ranges []insight.LeaveRange) []insight.LeaveRangeItem {
	items := make([]insight.LeaveRangeItem, 0, len(ranges))
	for _, r := range ranges {
		name := r.FirstName + " " + r.LastName
		if r.FirstName == "" || r.LastName == "" {
			name = r.FirstName + r.LastName
		}
		items = append(items, insight.LeaveRangeItem{
			EmployeeID:   r.EmployeeID,
			EmployeeName: name,
			Department:   r.Department,
			Reason:       r.Reason,
			StartDate:    r.Start.Format(dateLayout),
			EndDate:      r.End.Format(dateLayout),
			Days:         int(r.End.Sub(r.Start).Hours()/24) + 1,
		})
	}
	return items
}
