// Package availability decides whether the store accepts orders at a given instant.
package availability

import (
	"time"

	"github.com/aaravmahajanofficial/easymenu/internal/models"
)

// IsOpen reports whether the business is open at now. now is taken at face
// value: callers convert it to the business time zone first.
//
// Manual mode (automatic opening off) is always open. Otherwise the day's
// window is inclusive on both ends at minute resolution. A malformed or
// overnight window (close before open) never matches.
func IsOpen(b models.Business, now time.Time) bool {
	if !b.Settings.IsAutomaticOpen {
		return true
	}

	day := b.OperationalHours.Day(models.WeekdayOf(now))
	if day.Closed {
		return false
	}

	open, ok := clockMinutes(day.Open)
	if !ok {
		return false
	}

	closing, ok := clockMinutes(day.Close)
	if !ok {
		return false
	}

	current := now.Hour()*60 + now.Minute()

	return open <= current && current <= closing
}

// clockMinutes parses a zero-padded "HH:MM".
func clockMinutes(s string) (int, bool) {
	if len(s) != 5 || s[2] != ':' {
		return 0, false
	}

	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, false
	}

	return t.Hour()*60 + t.Minute(), true
}
