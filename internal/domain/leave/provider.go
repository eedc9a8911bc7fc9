package leave

import (
	"context"
	"time"
)

// Provider fetches approved leave intervals from the upstream service.
type Provider interface {
	// ListApproved returns approved intervals overlapping the inclusive
	// [start, end] window. A single-day window passes start == end.
	ListApproved(ctx context.Context, start, end time.Time) ([]Interval, error)
}
