package attendance

import (
	"context"
	"time"
)

// Provider fetches raw attendance rows from the upstream service. Dates
// are calendar days at midnight UTC.
type Provider interface {
	// ListByDate returns the rows recorded for a single calendar day.
	ListByDate(ctx context.Context, date time.Time) ([]Record, error)

	// ListByRange returns the rows recorded between start and end inclusive.
	ListByRange(ctx context.Context, start, end time.Time) ([]Record, error)
}
