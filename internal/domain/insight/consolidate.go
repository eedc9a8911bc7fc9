package insight

import (
	"sort"
	"time"
)

// LeaveDay is one employee-day known to be on leave, typically produced
// by applying Classify across a date range. Display fields ride along
// from whichever source row carried them.
type LeaveDay struct {
	EmployeeID string
	Date       time.Time
	FirstName  string
	LastName   string
	Department string
	Reason     string
}

// LeaveRange is a maximal run of adjacent leave days for one employee.
// An isolated day has Start == End.
type LeaveRange struct {
	EmployeeID string
	FirstName  string
	LastName   string
	Department string
	Reason     string
	Start      time.Time
	End        time.Time
}

// ConsolidateLeaveRanges merges each employee's contiguous leave days
// into minimal maximal date ranges. Duplicate dates collapse; a gap of
// even one calendar day closes the current range. Adjacency is calendar
// arithmetic (AddDate), never 24h elapsed, so DST shifts cannot split or
// join ranges. Output ordering is last name, first name, then range
// start, and is stable across runs.
func ConsolidateLeaveRanges(days []LeaveDay) []LeaveRange {
	byEmployee := make(map[string][]LeaveDay)
	for _, day := range days {
		if day.EmployeeID == "" || day.Date.IsZero() {
			continue
		}
		byEmployee[day.EmployeeID] = append(byEmployee[day.EmployeeID], day)
	}

	var ranges []LeaveRange
	for _, group := range byEmployee {
		seen := make(map[string]struct{}, len(group))
		unique := group[:0:0]
		for _, day := range group {
			key := day.Date.Format("2006-01-02")
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			unique = append(unique, day)
		}
		sort.Slice(unique, func(i, j int) bool {
			return unique[i].Date.Before(unique[j].Date)
		})

		current := rangeFromDay(unique[0])
		for _, day := range unique[1:] {
			if sameDay(day.Date, current.End.AddDate(0, 0, 1)) {
				current.End = day.Date
				continue
			}
			ranges = append(ranges, current)
			current = rangeFromDay(day)
		}
		ranges = append(ranges, current)
	}

	sort.Slice(ranges, func(i, j int) bool {
		a, b := ranges[i], ranges[j]
		if a.LastName != b.LastName {
			return a.LastName < b.LastName
		}
		if a.FirstName != b.FirstName {
			return a.FirstName < b.FirstName
		}
		return a.Start.Before(b.Start)
	})
	return ranges
}

func rangeFromDay(day LeaveDay) LeaveRange {
	return LeaveRange{
		EmployeeID: day.EmployeeID,
		FirstName:  day.FirstName,
		LastName:   day.LastName,
		Department: day.Department,
		Reason:     day.Reason,
		Start:      day.Date,
		End:        day.Date,
	}
}
