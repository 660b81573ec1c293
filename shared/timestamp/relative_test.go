package timestamp_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"epoch/shared/timestamp"
)

func TestRelativeTime(t *testing.T) {
	now := time.Date(2025, 5, 16, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		target time.Time
		want   string
	}{
		{name: "zero difference lands in the ago branch", target: now, want: "0 seconds ago"},
		{name: "thirty seconds ahead", target: now.Add(30 * time.Second), want: "in 30 seconds"},
		{name: "one second ahead is singular", target: now.Add(time.Second), want: "in 1 second"},
		{name: "one minute back is singular", target: now.Add(-time.Minute), want: "1 minute ago"},
		{name: "fifty-nine minutes ahead", target: now.Add(59 * time.Minute), want: "in 59 minutes"},
		{name: "one hour ahead", target: now.Add(time.Hour), want: "in 1 hour"},
		{name: "five hours back", target: now.Add(-5 * time.Hour), want: "5 hours ago"},
		{name: "two days ahead", target: now.Add(48 * time.Hour), want: "in 2 days"},
		{name: "six days stays in days", target: now.Add(6 * 24 * time.Hour), want: "in 6 days"},
		{name: "exactly seven days promotes to weeks", target: now.Add(7 * 24 * time.Hour), want: "in 1 week"},
		{name: "three weeks back", target: now.Add(-21 * 24 * time.Hour), want: "3 weeks ago"},
		{name: "exactly 365 days promotes to years", target: now.Add(365 * 24 * time.Hour), want: "in 1 year"},
		{name: "two years back", target: now.Add(-730 * 24 * time.Hour), want: "2 years ago"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, timestamp.RelativeTime(tt.target, now))
		})
	}
}

// The unit chain rounds each value from the previous already-rounded unit, so
// 89.5 seconds becomes 90 seconds, then 90/60 rounds up to 2 minutes, where an
// independent calculation would say 1. The compounding is intentional.
func TestRelativeTime_CascadingRounding(t *testing.T) {
	now := time.Date(2025, 5, 16, 12, 0, 0, 0, time.UTC)
	target := now.Add(89*time.Second + 500*time.Millisecond)

	assert.Equal(t, "in 2 minutes", timestamp.RelativeTime(target, now))
}

func TestRelativeTime_PluralizationBoundary(t *testing.T) {
	now := time.Date(2025, 5, 16, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, "in 1 minute", timestamp.RelativeTime(now.Add(time.Minute), now))
	assert.Equal(t, "in 2 minutes", timestamp.RelativeTime(now.Add(2*time.Minute), now))
	assert.Equal(t, "1 week ago", timestamp.RelativeTime(now.Add(-7*24*time.Hour), now))
	assert.Equal(t, "0 seconds ago", timestamp.RelativeTime(now, now))
}
