package ranking

// Record is one valid (respondent, course) rating observation in long
// format. Records only exist for cells that survived coercion and the
// range filter.
type Record struct {
	Course string
	Rating float64
}

// CourseRanking is one row of the final rank-ordered table.
type CourseRanking struct {
	// Rank is the 1-based position in the sorted order. Ranks are strictly
	// sequential; ties do not share a rank.
	Rank int
	// Course is the short course name records were grouped by.
	Course string
	// AverageRating is the arithmetic mean of the course's ratings,
	// rounded to 3 decimals.
	AverageRating float64
	// ResponseCount is the number of valid ratings behind the average.
	ResponseCount int
}

// Result carries the ranking together with run diagnostics.
type Result struct {
	// Rankings is the full table in rank order.
	Rankings []CourseRanking
	// ValidRecords is the number of long-format records that entered the
	// aggregation.
	ValidRecords int
	// DroppedCells counts non-blank cells excluded as non-numeric or
	// out-of-range. Diagnostic only; it never changes which values are
	// included.
	DroppedCells int
}

// Top returns the first n rankings, or all of them when fewer exist.
func (r *Result) Top(n int) []CourseRanking {
	if n > len(r.Rankings) {
		n = len(r.Rankings)
	}
	return r.Rankings[:n]
}
