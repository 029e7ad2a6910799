package utils

import "time"

// DateOnly canonicalizes t to midnight UTC of its calendar date. Date-only
// values built in different locations (date-string parsing yields UTC,
// time.Now() is local) then compare equal in database queries.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// SameDay reports whether a and b fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
