package insight

// AggregateCounts are the scalar bucket totals behind summary cards and
// charts.
type AggregateCounts struct {
	Present     int64
	Late        int64
	Undertime   int64
	OnLeave     int64
	Absent      int64
	TotalActive int64
}

// Rollup tallies bucket membership in a single pass. Absent is never
// tallied directly; it is the active total minus every other bucket.
func Rollup(classification map[string]DailyClassification) AggregateCounts {
	counts := AggregateCounts{TotalActive: int64(len(classification))}
	for _, cls := range classification {
		switch cls.Status {
		case StatusPresent:
			counts.Present++
		case StatusLate:
			counts.Late++
		case StatusUndertime:
			counts.Undertime++
		case StatusLeave:
			counts.OnLeave++
		}
	}
	counts.Absent = counts.TotalActive - (counts.Present + counts.Late + counts.Undertime + counts.OnLeave)
	return counts
}
