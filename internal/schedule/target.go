// Package schedule turns a parsed time of day into a concrete target
// instant: today if the time is still ahead, tomorrow if it has passed.
package schedule

import (
	"time"

	"github.com/CodexForgeBR/alrm/internal/timeparse"
)

// NextOccurrence returns the next instant whose wall clock reads t,
// evaluated against now in now's location. A time earlier than now rolls
// over to tomorrow.
func NextOccurrence(now time.Time, t timeparse.Time) time.Time {
	target := time.Date(now.Year(), now.Month(), now.Day(),
		t.Hour, t.Minute, t.Second, 0, now.Location())
	if target.Before(now) {
		target = target.AddDate(0, 0, 1)
	}
	return target
}

// RelativeDay describes target relative to now's calendar day, returning
// "today" or "tomorrow".
func RelativeDay(now, target time.Time) string {
	ny, nm, nd := now.Date()
	ty, tm, td := target.Date()
	if ny == ty && nm == tm && nd == td {
		return "today"
	}
	return "tomorrow"
}
