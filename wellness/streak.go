package wellness

import "time"

// StreakRecord is the consecutive-day engagement counter for one user.
type StreakRecord struct {
	Count    int    `json:"count"`
	LastDate string `json:"lastDate"`
}

// DayString is the canonical calendar-day key used for plans and streaks.
func DayString(t time.Time) string {
	return t.Format("2006-01-02")
}

// BumpStreak advances the streak for today. Calling it twice on the same
// calendar day is a no-op; a one-day gap increments the count; anything
// larger (or no prior record) resets it to 1.
func BumpStreak(rec StreakRecord, today time.Time) StreakRecord {
	day := DayString(today)
	if rec.LastDate == day {
		return rec
	}
	if rec.LastDate == DayString(today.AddDate(0, 0, -1)) {
		return StreakRecord{Count: rec.Count + 1, LastDate: day}
	}
	return StreakRecord{Count: 1, LastDate: day}
}
