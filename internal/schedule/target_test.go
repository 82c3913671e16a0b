package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/CodexForgeBR/alrm/internal/timeparse"
)

func TestNextOccurrence_Future(t *testing.T) {
	now := time.Date(2026, time.August, 23, 15, 0, 0, 0, time.Local)

	target := NextOccurrence(now, timeparse.Time{Hour: 18, Minute: 30})

	assert.Equal(t, now.Day(), target.Day(), "a time still ahead stays on today")
	assert.Equal(t, 18, target.Hour())
	assert.Equal(t, 30, target.Minute())
	assert.Equal(t, 0, target.Second())
	assert.True(t, target.After(now))
}

func TestNextOccurrence_PastRollsToTomorrow(t *testing.T) {
	now := time.Date(2026, time.August, 23, 15, 0, 0, 0, time.Local)

	target := NextOccurrence(now, timeparse.Time{Hour: 9})

	tomorrow := now.AddDate(0, 0, 1)
	assert.Equal(t, tomorrow.Day(), target.Day())
	assert.Equal(t, 9, target.Hour())
	assert.True(t, target.After(now))
}

func TestNextOccurrence_ExactNowStaysToday(t *testing.T) {
	now := time.Date(2026, time.August, 23, 15, 0, 0, 0, time.Local)

	target := NextOccurrence(now, timeparse.Time{Hour: 15})

	assert.Equal(t, now, target)
}

func TestNextOccurrence_MonthBoundary(t *testing.T) {
	now := time.Date(2026, time.August, 31, 23, 0, 0, 0, time.Local)

	target := NextOccurrence(now, timeparse.Time{Hour: 1})

	assert.Equal(t, time.September, target.Month())
	assert.Equal(t, 1, target.Day())
}

func TestRelativeDay(t *testing.T) {
	now := time.Date(2026, time.August, 23, 15, 0, 0, 0, time.Local)

	assert.Equal(t, "today", RelativeDay(now, now.Add(2*time.Hour)))
	assert.Equal(t, "tomorrow", RelativeDay(now, now.AddDate(0, 0, 1)))
}
