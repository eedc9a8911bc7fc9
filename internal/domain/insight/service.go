package insight

import "context"

// Service defines the dashboard insight operations
type Service interface {
	// GetDailyInsight returns the per-employee classification for a day.
	// An empty date means today.
	GetDailyInsight(ctx context.Context, date string) (*DailyInsightResponse, error)

	// GetSummary returns bucket totals for a day. groupBy may be "" or
	// "department".
	GetSummary(ctx context.Context, date string, groupBy string) (*SummaryResponse, error)

	// GetRangeInsight returns the per-day aggregate series and
	// consolidated leave rows for an inclusive date range.
	GetRangeInsight(ctx context.Context, start, end string) (*RangeInsightResponse, error)

	// GetLeaveRanges returns only the consolidated leave rows for an
	// inclusive date range.
	GetLeaveRanges(ctx context.Context, start, end string) (*LeaveRangesResponse, error)
}
