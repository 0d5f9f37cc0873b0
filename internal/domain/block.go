package domain

import (
	"time"

	"github.com/avdeevlv/barber-booking-service/pkg/types"
)

// BlockKind discriminates the two kinds of admin exclusions
type BlockKind string

const (
	// BlockFullDay закрывает весь день целиком
	BlockFullDay BlockKind = "full_day"
	// BlockRange закрывает конкретный интервал времени
	BlockRange BlockKind = "range"
)

// AdHocBlock is an admin-created, date-specific exclusion: either the
// whole day or a time range. Blocks are immutable after creation and
// disappear only by explicit admin removal. StartTime/EndTime are set
// only for BlockRange.
type AdHocBlock struct {
	ID        int64
	Date      time.Time
	Kind      BlockKind
	StartTime *types.TimeString
	EndTime   *types.TimeString
	Reason    *string
	CreatedBy int64
	CreatedAt time.Time
}

// IsFullDay reports whether the block closes the entire day
func (b *AdHocBlock) IsFullDay() bool {
	return b.Kind == BlockFullDay
}

// OverlapsInterval reports whether the block intersects [start, end)
// in minutes-of-day. A full-day block intersects everything.
func (b *AdHocBlock) OverlapsInterval(start, end int) bool {
	if b.IsFullDay() {
		return true
	}
	if b.StartTime == nil || b.EndTime == nil {
		return false
	}
	return Overlaps(start, end, b.StartTime.Minutes(), b.EndTime.Minutes())
}

// HasFullDayBlock reports whether any of the blocks closes the whole day
func HasFullDayBlock(blocks []*AdHocBlock) bool {
	for _, b := range blocks {
		if b.IsFullDay() {
			return true
		}
	}
	return false
}
