package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestOverlaps(t *testing.T) {
	at := func(hour, minute int) time.Time {
		return time.Date(2026, 3, 14, hour, minute, 0, 0, time.UTC)
	}

	tests := []struct {
		name         string
		aStart, aEnd time.Time
		bStart, bEnd time.Time
		want         bool
	}{
		{"identical windows", at(10, 0), at(12, 0), at(10, 0), at(12, 0), true},
		{"partial overlap", at(10, 0), at(12, 0), at(11, 0), at(13, 0), true},
		{"contained window", at(10, 0), at(14, 0), at(11, 0), at(12, 0), true},
		{"one minute overlap", at(10, 0), at(12, 0), at(11, 59), at(13, 0), true},
		{"back to back", at(10, 0), at(11, 0), at(11, 0), at(12, 0), false},
		{"back to back reversed", at(11, 0), at(12, 0), at(10, 0), at(11, 0), false},
		{"disjoint", at(10, 0), at(11, 0), at(14, 0), at(15, 0), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Overlaps(tt.aStart, tt.aEnd, tt.bStart, tt.bEnd))
			// The predicate is symmetric.
			assert.Equal(t, tt.want, Overlaps(tt.bStart, tt.bEnd, tt.aStart, tt.aEnd))
		})
	}
}
