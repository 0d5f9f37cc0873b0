package domain

// Overlaps reports whether two half-open minute intervals
// [aStart, aEnd) and [bStart, bEnd) intersect. Touching boundaries
// (aEnd == bStart or bEnd == aStart) are not an overlap.
//
// This is the single overlap test for recurring blocks, ad-hoc blocks
// and bookings alike; nothing else in the codebase compares interval
// boundaries directly.
func Overlaps(aStart, aEnd, bStart, bEnd int) bool {
	return aStart < bEnd && bStart < aEnd
}
