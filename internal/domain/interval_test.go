package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name                           string
		aStart, aEnd, bStart, bEnd     int
		want                           bool
	}{
		{"identical intervals", 600, 660, 600, 660, true},
		{"partial overlap", 600, 660, 630, 690, true},
		{"contained interval", 600, 720, 630, 660, true},
		{"adjacent intervals do not overlap", 600, 660, 660, 720, false},
		{"adjacent intervals reversed", 660, 720, 600, 660, false},
		{"disjoint intervals", 600, 660, 720, 780, false},
		{"one minute overlap", 600, 661, 660, 720, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Overlaps(tt.aStart, tt.aEnd, tt.bStart, tt.bEnd))
		})
	}
}
