package core

import (
	"time"

	"cloud.google.com/go/civil"
)

// DateLayout is the wire format of every calendar date.
const DateLayout = "2006-01-02"

// Today returns the calendar date of `now` in `loc`.
func Today(now time.Time, loc *time.Location) civil.Date {
	if loc == nil {
		loc = time.UTC
	}
	return civil.DateOf(now.In(loc))
}

// DateFromTime drops the time-of-day of a DB value without shifting it to another zone.
// Postgres DATE columns come back as midnight UTC.
func DateFromTime(t time.Time) civil.Date {
	return civil.Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}
}

// Weekday returns the day of the week of d, Sunday-first as time.Weekday.
func Weekday(d civil.Date) time.Weekday {
	return d.In(time.UTC).Weekday()
}

// MondayIndex converts Go's Sunday-first weekday into a Monday-first column index (Monday=0..Sunday=6).
func MondayIndex(wd time.Weekday) int {
	return (int(wd) + 6) % 7
}

// DaysIn returns the number of days in the given month.
func DaysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
