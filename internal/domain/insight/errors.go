package insight

import "errors"

var (
	ErrInvalidDate    = errors.New("Invalid date, expected YYYY-MM-DD")
	ErrInvalidRange   = errors.New("Invalid date range, start must not be after end")
	ErrRangeTooLong   = errors.New("Date range too long")
	ErrInvalidGroupBy = errors.New("Invalid 'by' value, expected 'department'")
)
