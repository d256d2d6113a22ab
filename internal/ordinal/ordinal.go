// Package ordinal converts calendar time to the compact, comparable day
// ordinal used on the wire: the number of days since 0001-01-01 in the
// proleptic Gregorian calendar, with 0001-01-01 itself being day 1.
package ordinal

import "time"

// Days from 0000-03-01 to 1970-01-01, and the ordinal of 1970-01-01
const (
	daysToUnixEpoch = 719468
	unixEpochOrdinal = 719163
)

// FromTime returns the day ordinal for t, or 0 for the zero time
// (an unset end_time serializes as 0)
func FromTime(t time.Time) int {
	if t.IsZero() {
		return 0
	}
	y, m, d := t.UTC().Date()
	return daysFromUnixEpoch(y, int(m), d) + unixEpochOrdinal
}

// ToTime returns the UTC midnight corresponding to a day ordinal.
// The zero ordinal maps back to the zero time.
func ToTime(ord int) time.Time {
	if ord == 0 {
		return time.Time{}
	}
	return time.Date(1, time.January, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, ord-1)
}

// daysFromUnixEpoch counts days from 1970-01-01 to the given civil date.
// Plain integer date arithmetic: spans of two millennia overflow the
// nanosecond range of time.Duration, so time.Time.Sub is unusable here.
func daysFromUnixEpoch(y, m, d int) int {
	if m <= 2 {
		y--
	}
	era := y / 400
	if y < 0 && y%400 != 0 {
		era--
	}
	yoe := y - era*400
	var moy int
	if m > 2 {
		moy = m - 3
	} else {
		moy = m + 9
	}
	doy := (153*moy+2)/5 + d - 1
	doe := yoe*365 + yoe/4 - yoe/100 + doy
	return era*146097 + doe - daysToUnixEpoch
}
