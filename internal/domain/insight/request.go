package insight

import (
	"github.com/cmlabs-hris/attendance-insights-go/internal/pkg/validator"
)

// DailyRequest carries the query parameters of the single-day endpoints.
type DailyRequest struct {
	Date    string `json:"date"`
	GroupBy string `json:"by"`
}

func (r *DailyRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsEmpty(r.Date) {
		if _, ok := validator.IsValidDate(r.Date); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "date",
				Message: "date must be YYYY-MM-DD",
			})
		}
	}

	if !validator.IsEmpty(r.GroupBy) && !validator.IsInSlice(r.GroupBy, []string{"department"}) {
		errs = append(errs, validator.ValidationError{
			Field:   "by",
			Message: "by must be empty or 'department'",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// RangeRequest carries the query parameters of the range endpoints.
type RangeRequest struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

func (r *RangeRequest) Validate() error {
	var errs validator.ValidationErrors

	start, startOK := validator.IsValidDate(r.Start)
	if validator.IsEmpty(r.Start) || !startOK {
		errs = append(errs, validator.ValidationError{
			Field:   "start",
			Message: "start must be YYYY-MM-DD",
		})
	}

	end, endOK := validator.IsValidDate(r.End)
	if validator.IsEmpty(r.End) || !endOK {
		errs = append(errs, validator.ValidationError{
			Field:   "end",
			Message: "end must be YYYY-MM-DD",
		})
	}

	if startOK && endOK && start.After(end) {
		errs = append(errs, validator.ValidationError{
			Field:   "start",
			Message: "start must not be after end",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
