package cache

import (
	"time"
)

// TimeUntilNext8AMIST returns the duration until the next 08:00 IST, ahead
// of the NSE cash open, when the instrument reference list is refreshed.
func TimeUntilNext8AMIST() time.Duration {
	loc, _ := time.LoadLocation("Asia/Kolkata")
	now := time.Now().In(loc)

	next8am := time.Date(now.Year(), now.Month(), now.Day(), 8, 0, 0, 0, loc)

	// If today's 08:00 has already passed, use tomorrow's
	if now.After(next8am) {
		next8am = next8am.Add(24 * time.Hour)
	}

	return next8am.Sub(now)
}
